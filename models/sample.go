package models

import (
	"cmp"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrNoSamples = errors.New("no sample names")
	ErrEmptyName = errors.New("empty sample name")
)

// Sample is one input archive together with the number used to label its rows.
type Sample struct {
	Number   int
	Basename string
	Path     string
}

// BaseName strips the directory and everything from the first dot on:
// "runs/scan_010.ProcSpec" -> "scan_010".
func BaseName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}

// CommonPrefixLen returns the index of the first byte at which any name
// differs from the first one.
//
// When no difference shows up within the shortest name it returns
// len(shortest)-1, so a single name, or a name that prefixes another, still
// leaves one trailing character to parse as the sample number.
func CommonPrefixLen(names []string) (int, error) {
	if len(names) == 0 {
		return 0, ErrNoSamples
	}
	minLen := len(names[0])
	for _, s := range names[1:] {
		minLen = min(minLen, len(s))
	}
	if minLen == 0 {
		return 0, ErrEmptyName
	}
	for i := 0; i < minLen; i++ {
		for _, s := range names {
			if names[0][i] != s[i] {
				return i, nil
			}
		}
	}
	return minLen - 1, nil
}

// SampleNumbers parses the suffix left after the common prefix of each name.
// The result is in input order.
func SampleNumbers(names []string) ([]int, error) {
	i, err := CommonPrefixLen(names)
	if err != nil {
		return nil, err
	}
	nums := make([]int, len(names))
	for k, name := range names {
		n, err := strconv.Atoi(strings.TrimSpace(name[i:]))
		if err != nil {
			return nil, fmt.Errorf("sample number of %q: %w", name, err)
		}
		nums[k] = n
	}
	return nums, nil
}

// NewSamples builds the sample list for the given input paths, in input order.
func NewSamples(paths []string) ([]Sample, error) {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = BaseName(p)
	}
	nums, err := SampleNumbers(names)
	if err != nil {
		return nil, err
	}
	samples := make([]Sample, len(paths))
	for i := range paths {
		samples[i] = Sample{Number: nums[i], Basename: names[i], Path: paths[i]}
	}
	return samples, nil
}

// SortByNumber orders samples by sample number, keeping input order for ties.
func SortByNumber(samples []Sample) {
	slices.SortStableFunc(samples, func(a, b Sample) int {
		return cmp.Compare(a.Number, b.Number)
	})
}
