// Package extract turns a parsed instrument document into a SpectrumRecord.
package extract

import (
	"errors"
	"fmt"

	"github.com/beevik/etree"

	"github.com/belfhi/FP-Spektren/models"
	"github.com/belfhi/FP-Spektren/services/xmlnav"
	"github.com/belfhi/FP-Spektren/utils"
)

// Top-level sections below the document root.
const (
	SourceSection    = "sourceSpectra"
	ProcessedSection = "certificates"
)

// DefaultMinProcessedChildren is the child-node count a processedPixels
// element must exceed to be taken for the processed spectrum. Smaller ones
// are placeholders.
const DefaultMinProcessedChildren = 10

var ErrSectionMissing = errors.New("document section missing")

// Extractor pulls spectra and metadata out of one document.
type Extractor struct {
	// ExtractReferences reads the dark and reference spectra too. When false
	// they are left empty.
	ExtractReferences    bool
	MinProcessedChildren int
}

// New builds an Extractor from the extract section of the config.
func New(cfg utils.ExtractConfig) *Extractor {
	return &Extractor{
		ExtractReferences:    cfg.References,
		MinProcessedChildren: cfg.MinProcessedChildren,
	}
}

// Extract reads every semantic group of the document into a SpectrumRecord.
func (x *Extractor) Extract(doc *etree.Document) (*models.SpectrumRecord, error) {
	meta, err := Metadata(doc)
	if err != nil {
		return nil, fmt.Errorf("metadata: %w", err)
	}
	source, processed, err := Sections(doc)
	if err != nil {
		return nil, err
	}

	rec := &models.SpectrumRecord{Metadata: *meta}
	if rec.Wavelengths, err = Wavelengths(source); err != nil {
		return nil, fmt.Errorf("wavelengths: %w", err)
	}
	if x.ExtractReferences {
		if rec.Dark, err = DarkSpectrum(processed); err != nil {
			return nil, fmt.Errorf("dark spectrum: %w", err)
		}
		if rec.Reference, err = ReferenceSpectrum(processed); err != nil {
			return nil, fmt.Errorf("reference spectrum: %w", err)
		}
	}
	if rec.Source, err = SourceSpectrum(source); err != nil {
		return nil, fmt.Errorf("source spectrum: %w", err)
	}
	if rec.Processed, err = ProcessedSpectrum(processed, x.MinProcessedChildren); err != nil {
		return nil, fmt.Errorf("processed spectrum: %w", err)
	}
	return rec, nil
}

// Sections finds the source and processed sections among the children of
// the document root.
func Sections(doc *etree.Document) (source, processed *etree.Element, err error) {
	root := doc.Root()
	if root == nil {
		return nil, nil, fmt.Errorf("%w: no root element", ErrSectionMissing)
	}
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case SourceSection:
			source = child
		case ProcessedSection:
			processed = child
		}
	}
	if source == nil {
		return nil, nil, fmt.Errorf("%w: <%s>", ErrSectionMissing, SourceSection)
	}
	if processed == nil {
		return nil, nil, fmt.Errorf("%w: <%s>", ErrSectionMissing, ProcessedSection)
	}
	return source, processed, nil
}

func floatsAt(node *etree.Element, path ...string) ([]float64, error) {
	elems, err := xmlnav.FindByPath(node, path...)
	if err != nil {
		return nil, err
	}
	return xmlnav.Floats(elems)
}

func Wavelengths(source *etree.Element) ([]float64, error) {
	return floatsAt(source, "channelWavelengths", "double")
}

func DarkSpectrum(processed *etree.Element) ([]float64, error) {
	return floatsAt(processed, "darkSpectrum", "pixelValues", "double")
}

func ReferenceSpectrum(processed *etree.Element) ([]float64, error) {
	return floatsAt(processed, "referenceSpectrum", "pixelValues", "double")
}

func SourceSpectrum(source *etree.Element) ([]float64, error) {
	return floatsAt(source, "pixelValues", "double")
}

// ProcessedSpectrum reads the doubles of the first processedPixels element
// with more than minChildren child nodes. Text and comment nodes count. If
// none is large enough the last processedPixels element is used.
func ProcessedSpectrum(processed *etree.Element, minChildren int) ([]float64, error) {
	candidates := xmlnav.Descendants(processed, "processedPixels")
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: processedPixels", xmlnav.ErrPathNotFound)
	}
	picked := candidates[len(candidates)-1]
	for _, el := range candidates {
		if len(el.Child) > minChildren {
			picked = el
			break
		}
	}
	return xmlnav.Floats(xmlnav.Descendants(picked, "double"))
}

// Timestamp returns the raw acquisition milliTime of the document.
func Timestamp(doc *etree.Document) (string, error) {
	elems, err := xmlnav.FindByPath(&doc.Element, SourceSection, "acquisitionTime", "milliTime")
	if err != nil {
		return "", err
	}
	if len(elems) == 0 {
		return "", fmt.Errorf("%w: %s/acquisitionTime/milliTime", xmlnav.ErrPathNotFound, SourceSection)
	}
	return xmlnav.Text(elems[0])
}
