package ingest

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zip"
)

// DefaultMemberPrefix names the spectrum member inside an instrument archive.
const DefaultMemberPrefix = "ps_"

var ErrMemberNotFound = errors.New("no spectrum member in archive")

// ReadMember opens the zip archive at path and returns the name and content
// of the first entry, in listing order, whose name starts with prefix.
func ReadMember(path, prefix string) (string, []byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", nil, fmt.Errorf("open archive %s: %w", path, err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		if !strings.HasPrefix(f.Name, prefix) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", nil, fmt.Errorf("open member %s in %s: %w", f.Name, path, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", nil, fmt.Errorf("read member %s in %s: %w", f.Name, path, err)
		}
		return f.Name, data, nil
	}
	return "", nil, fmt.Errorf("%w: %s (prefix %q)", ErrMemberNotFound, path, prefix)
}
