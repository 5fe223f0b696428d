package views

import (
	"bufio"
	"fmt"
	"os"

	"github.com/belfhi/FP-Spektren/models"
)

// WriteMetadata overwrites path with one "<name right-aligned to 20>:   <value>"
// line per summary field.
func WriteMetadata(path string, meta *models.Metadata) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	for _, fld := range meta.SummaryFields() {
		fmt.Fprintf(bw, "%20s:   %s\n", fld.Name, fld.Value)
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
