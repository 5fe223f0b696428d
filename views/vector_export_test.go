package views

import (
	"bufio"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteDataVector_RoundTrip(t *testing.T) {
	in := []float64{400, 450.5, 500.25, 1234.5678901, -0.125, 3e-7}
	path := filepath.Join(t.TempDir(), "out-lambda.csv")
	if err := WriteDataVector(path, in, LambdaTitle); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	if !sc.Scan() || sc.Text() != LambdaTitle {
		t.Fatalf("title = %q, want %q", sc.Text(), LambdaTitle)
	}
	var got []float64
	for sc.Scan() {
		v, err := strconv.ParseFloat(sc.Text(), 64)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
	}
	if len(got) != len(in) {
		t.Fatalf("read %d values, want %d", len(got), len(in))
	}
	for i := range in {
		if math.Abs(got[i]-in[i]) > 5e-7 {
			t.Errorf("value %d = %v, want %v within 6 decimals", i, got[i], in[i])
		}
	}
}

func TestWriteDataVector_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.csv")
	if err := WriteDataVector(path, []float64{400, 450.5}, "lambda"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("lambda\n400.000000\n450.500000\n", readFile(t, path)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteStrVector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out-times.csv")
	lines := []string{"1000, Thu Jan  1 00:00:01 1970", "2000, Thu Jan  1 00:00:02 1970"}
	if err := WriteStrVector(path, lines, TimesTitle); err != nil {
		t.Fatal(err)
	}
	want := "timestamp, time\n1000, Thu Jan  1 00:00:01 1970\n2000, Thu Jan  1 00:00:02 1970\n"
	if diff := cmp.Diff(want, readFile(t, path)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}

	// Overwrites, never appends.
	if err := WriteStrVector(path, nil, TimesTitle); err != nil {
		t.Fatal(err)
	}
	if got := readFile(t, path); got != "timestamp, time\n" {
		t.Errorf("after rewrite = %q", got)
	}
}
