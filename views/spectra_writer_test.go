package views

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestSpectraWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewSpectraWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow("Samplenum", []float64{400.0, 450.5, 500.25}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow("1", []float64{10, 20, 30}); err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow("2", []float64{-1.5, 0, 1e-7}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	want := "Samplenum\t400.000000\t450.500000\t500.250000\t\n" +
		"1\t10.000000\t20.000000\t30.000000\t\n" +
		"2\t-1.500000\t0.000000\t0.000000\t\n"
	if diff := cmp.Diff(want, readFile(t, path)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
	if w.Rows() != 3 {
		t.Errorf("Rows = %d, want 3", w.Rows())
	}
}

func TestSpectraWriter_NonFinite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewSpectraWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteRow("1", []float64{math.NaN(), math.Inf(1), math.Inf(-1), 2}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("1\tnan\tinf\t-inf\t2.000000\t\n", readFile(t, path)); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestSpectraWriter_SameRowTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	w, err := NewSpectraWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	v := []float64{1.25, 2.5}
	for _, label := range []string{"4", "4", "5"} {
		if err := w.WriteRow(label, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(readFile(t, path), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	if lines[0] != lines[1] {
		t.Errorf("identical rows differ: %q vs %q", lines[0], lines[1])
	}
	if strings.TrimPrefix(lines[0], "4") != strings.TrimPrefix(lines[2], "5") {
		t.Errorf("rows differ beyond the label: %q vs %q", lines[0], lines[2])
	}
}

func TestSpectraWriter_Truncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewSpectraWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, path); got != "" {
		t.Errorf("file = %q, want empty", got)
	}
}

func TestNewSpectraWriter_BadDir(t *testing.T) {
	if _, err := NewSpectraWriter(filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Error("expected error")
	}
}
