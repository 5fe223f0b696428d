package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/belfhi/FP-Spektren/models"
)

// SpectraWriter is a buffered, tab-separated row writer that stays open for
// a whole batch: one header row of wavelengths, then one row per sample.
//
// Every field, the last one included, is followed by a tab.
type SpectraWriter struct {
	path string
	file *os.File
	buf  *bufio.Writer
	tsv  *csv.Writer
	rows uint64
}

// NewSpectraWriter creates (or truncates) the file at path.
func NewSpectraWriter(path string) (*SpectraWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriterSize(f, 64*1024)
	tw := csv.NewWriter(bw)
	tw.Comma = '\t'
	return &SpectraWriter{path: path, file: f, buf: bw, tsv: tw}, nil
}

// WriteRow appends one row: label, then every value as "%f".
func (w *SpectraWriter) WriteRow(label string, values []float64) error {
	return w.Write(models.SpectrumRow{Label: label, Values: values})
}

// Write appends any row-shaped model.
func (w *SpectraWriter) Write(r models.RowWriter) error {
	// The empty trailing field yields the tab after the last value.
	if err := w.tsv.Write(append(r.RowFields(), "")); err != nil {
		return fmt.Errorf("write row to %s: %w", w.path, err)
	}
	w.rows++
	return nil
}

// Flush pushes buffered rows to the OS.
func (w *SpectraWriter) Flush() error {
	w.tsv.Flush()
	if err := w.tsv.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", w.path, err)
	}
	if err := w.buf.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", w.path, err)
	}
	return nil
}

// Close flushes remaining rows and closes the file. Safe to call twice.
func (w *SpectraWriter) Close() error {
	if w.file == nil {
		return nil
	}
	ferr := w.Flush()
	cerr := w.file.Close()
	w.file = nil
	if ferr != nil {
		return ferr
	}
	if cerr != nil {
		return fmt.Errorf("close %s: %w", w.path, cerr)
	}
	return nil
}

// Rows returns the number of rows written, header included.
func (w *SpectraWriter) Rows() uint64 { return w.rows }

// Path returns the file the writer was opened on.
func (w *SpectraWriter) Path() string { return w.path }
