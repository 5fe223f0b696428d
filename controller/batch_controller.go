package controller

import (
	"errors"
	"fmt"
	"os"

	"github.com/belfhi/FP-Spektren/models"
	"github.com/belfhi/FP-Spektren/services/extract"
	"github.com/belfhi/FP-Spektren/services/ingest"
	"github.com/belfhi/FP-Spektren/utils"
	"github.com/belfhi/FP-Spektren/views"
)

// BatchController converts a list of instrument archives into the output
// file set:
//   - <base>.csv and <base>-source.csv, one row per sample (plus -dark.csv and
//     -reference.csv when references are extracted)
//   - <base>-metadata.txt and <base>-lambda.csv, taken from the last archive
//   - <base>-times.csv, one acquisition time per archive
//
// Archives are processed one at a time; the first failure aborts the batch.
type BatchController struct {
	cfg       *utils.Config
	outputs   views.OutputSet
	extractor *extract.Extractor

	writers map[views.OutputKind]*views.SpectraWriter
	times   []string
	last    *models.SpectrumRecord
}

// Summary reports what a finished batch wrote.
type Summary struct {
	Samples int
	Files   []string
}

// NewBatchController prepares a controller; no file is touched until Run.
func NewBatchController(cfg *utils.Config) *BatchController {
	return &BatchController{
		cfg:       cfg,
		outputs:   views.OutputSet{Dir: cfg.Output.Dir, Basename: cfg.Output.Basename},
		extractor: extract.New(cfg.Extract),
	}
}

// Run processes paths and writes every output file.
func (bc *BatchController) Run(paths []string) (*Summary, error) {
	samples, err := bc.init(paths)
	if err != nil {
		return nil, err
	}
	defer bc.closeWriters()

	for i, s := range samples {
		if err := bc.process(s, i == 0); err != nil {
			return nil, fmt.Errorf("%s: %w", s.Path, err)
		}
	}
	return bc.finalize(len(samples))
}

// init derives sample numbers and opens the row files.
func (bc *BatchController) init(paths []string) ([]models.Sample, error) {
	samples, err := models.NewSamples(paths)
	if err != nil {
		return nil, fmt.Errorf("sample numbers: %w", err)
	}
	names := make([]string, len(samples))
	for i, s := range samples {
		names[i] = s.Basename
	}
	utils.L().Debug("basenames: %v", names)

	if bc.cfg.Extract.SortBySample {
		models.SortByNumber(samples)
	}

	if err := os.MkdirAll(bc.outputs.Dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	bc.writers = make(map[views.OutputKind]*views.SpectraWriter)
	for _, kind := range views.RowKinds(bc.cfg.Extract.References) {
		w, err := views.NewSpectraWriter(bc.outputs.Path(kind))
		if err != nil {
			bc.closeWriters()
			return nil, err
		}
		bc.writers[kind] = w
	}
	bc.times = bc.times[:0]
	bc.last = nil
	return samples, nil
}

// process handles one archive. The wavelength header goes out with the first.
func (bc *BatchController) process(s models.Sample, first bool) error {
	utils.L().Debug("parsing %s", s.Basename)
	doc, err := ingest.ParseDocument(s.Path, bc.cfg.Extract.MemberPrefix)
	if err != nil {
		return err
	}
	rec, err := bc.extractor.Extract(doc)
	if err != nil {
		return err
	}

	if first {
		header := models.WavelengthHeader(rec.Wavelengths)
		for _, kind := range views.RowKinds(bc.cfg.Extract.References) {
			if err := bc.writers[kind].Write(header); err != nil {
				return err
			}
		}
	}

	rows := map[views.OutputKind][]float64{
		views.OutputSource:    rec.Source,
		views.OutputProcessed: rec.Processed,
		views.OutputDark:      rec.Dark,
		views.OutputReference: rec.Reference,
	}
	for _, kind := range views.RowKinds(bc.cfg.Extract.References) {
		if err := bc.writers[kind].Write(models.SampleRow(s.Number, rows[kind])); err != nil {
			return err
		}
	}

	bc.times = append(bc.times, rec.TimesLine())
	bc.last = rec
	utils.L().Info("sample %d  %s  pixels=%d  acquired=%s", s.Number, s.Basename, len(rec.Processed), rec.Metadata.Date)
	return nil
}

// finalize closes the row files and writes the summary files. Metadata and
// wavelengths come from the last archive only.
func (bc *BatchController) finalize(n int) (*Summary, error) {
	sum := &Summary{Samples: n}
	for _, kind := range views.RowKinds(bc.cfg.Extract.References) {
		sum.Files = append(sum.Files, bc.writers[kind].Path())
	}
	if err := bc.closeWriters(); err != nil {
		return nil, err
	}

	metaPath := bc.outputs.Path(views.OutputMetadata)
	if err := views.WriteMetadata(metaPath, &bc.last.Metadata); err != nil {
		return nil, err
	}
	lambdaPath := bc.outputs.Path(views.OutputLambda)
	if err := views.WriteDataVector(lambdaPath, bc.last.Wavelengths, views.LambdaTitle); err != nil {
		return nil, err
	}
	timesPath := bc.outputs.Path(views.OutputTimes)
	if err := views.WriteStrVector(timesPath, bc.times, views.TimesTitle); err != nil {
		return nil, err
	}
	sum.Files = append(sum.Files, metaPath, lambdaPath, timesPath)

	utils.L().Info("batch finished  (samples=%d, basename=%s)", n, bc.outputs.Basename)
	return sum, nil
}

// closeWriters flushes and closes every open row file.
func (bc *BatchController) closeWriters() error {
	var errs []error
	for kind, w := range bc.writers {
		if err := w.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(bc.writers, kind)
	}
	return errors.Join(errs...)
}

// Last returns the record of the last processed archive, or nil.
func (bc *BatchController) Last() *models.SpectrumRecord { return bc.last }
