package views

import (
	"fmt"
	"path/filepath"
)

// OutputKind identifies one of the files a batch produces.
type OutputKind int

const (
	OutputProcessed OutputKind = iota
	OutputSource
	OutputMetadata
	OutputLambda
	OutputTimes
	OutputDark
	OutputReference
)

var outputNames = map[OutputKind]string{
	OutputProcessed: "processed",
	OutputSource:    "source",
	OutputMetadata:  "metadata",
	OutputLambda:    "lambda",
	OutputTimes:     "times",
	OutputDark:      "dark",
	OutputReference: "reference",
}

func (k OutputKind) String() string {
	if n, ok := outputNames[k]; ok {
		return n
	}
	return "unknown"
}

// fileSuffix is appended to the output basename.
var fileSuffix = map[OutputKind]string{
	OutputProcessed: ".csv",
	OutputSource:    "-source.csv",
	OutputMetadata:  "-metadata.txt",
	OutputLambda:    "-lambda.csv",
	OutputTimes:     "-times.csv",
	OutputDark:      "-dark.csv",
	OutputReference: "-reference.csv",
}

// Titles of the single-column files.
const (
	LambdaTitle = "lambda"
	TimesTitle  = "timestamp, time"
)

// OutputSet names the files of one batch: <dir>/<basename><suffix>.
type OutputSet struct {
	Dir      string
	Basename string
}

// Path returns the file path for kind.
func (o OutputSet) Path(kind OutputKind) string {
	suffix, ok := fileSuffix[kind]
	if !ok {
		panic(fmt.Sprintf("views: no file name for output kind %d", kind))
	}
	return filepath.Join(o.Dir, o.Basename+suffix)
}

// RowKinds lists the tab-separated spectra files kept open during a batch.
// Dark and reference files only exist when references are extracted.
func RowKinds(references bool) []OutputKind {
	kinds := []OutputKind{OutputProcessed, OutputSource}
	if references {
		kinds = append(kinds, OutputDark, OutputReference)
	}
	return kinds
}
