package views

import (
	"bufio"
	"fmt"
	"os"

	"github.com/belfhi/FP-Spektren/models"
)

// writeLines overwrites path with a title line followed by one line per item.
func writeLines(path, title string, n int, line func(i int) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	bw.WriteString(title)
	bw.WriteByte('\n')
	for i := 0; i < n; i++ {
		bw.WriteString(line(i))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteDataVector writes title and then one "%f" value per line.
func WriteDataVector(path string, v []float64, title string) error {
	return writeLines(path, title, len(v), func(i int) string {
		return models.FormatValue(v[i])
	})
}

// WriteStrVector writes title and then every string as-is, one per line.
func WriteStrVector(path string, v []string, title string) error {
	return writeLines(path, title, len(v), func(i int) string {
		return v[i]
	})
}
