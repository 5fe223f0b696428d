package extract

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/belfhi/FP-Spektren/models"
	"github.com/belfhi/FP-Spektren/services/xmlnav"
	"github.com/belfhi/FP-Spektren/utils"
)

// Scalar tags read from the source section.
const (
	tagNumberOfPixels  = "spectrometerNumberOfPixels"
	tagMaxIntensity    = "spectrometerMaximumIntensity"
	tagFirmware        = "spectrometerFirmwareVersion"
	tagSerialNumber    = "spectrometerSerialNumber"
	tagNDarkPixels     = "spectrometerNumberOfDarkPixels"
	tagUser            = "userName"
	tagIntegrationTime = "integrationTime"
	tagBoxcarWidth     = "boxcarWidth"
	tagSaturated       = "saturated"
	tagScansToAverage  = "scansToAverage"
)

// scalarReader reads the first element of a tag under one section and keeps
// the first error it hits, so the field list below stays flat.
type scalarReader struct {
	section *etree.Element
	err     error
}

func (r *scalarReader) element(tag string) *etree.Element {
	if r.err != nil {
		return nil
	}
	el := xmlnav.First(r.section, tag)
	if el == nil {
		r.err = fmt.Errorf("%w: %s/%s", xmlnav.ErrPathNotFound, r.section.Tag, tag)
	}
	return el
}

func (r *scalarReader) readInt(tag string) int {
	el := r.element(tag)
	if el == nil {
		return 0
	}
	v, err := xmlnav.Int(el)
	if err != nil {
		r.err = err
	}
	return v
}

func (r *scalarReader) readFloat(tag string) float64 {
	el := r.element(tag)
	if el == nil {
		return 0
	}
	v, err := xmlnav.Float(el)
	if err != nil {
		r.err = err
	}
	return v
}

// readString tolerates an empty element and returns "", not a "None"
// placeholder.
func (r *scalarReader) readString(tag string) string {
	el := r.element(tag)
	if el == nil {
		return ""
	}
	s, _ := xmlnav.FirstText(el)
	return s
}

// Metadata reads the scalar instrument fields from the first sourceSpectra
// element of the document, plus the acquisition timestamp.
func Metadata(doc *etree.Document) (*models.Metadata, error) {
	ss := xmlnav.First(&doc.Element, SourceSection)
	if ss == nil {
		return nil, fmt.Errorf("%w: <%s>", ErrSectionMissing, SourceSection)
	}
	r := &scalarReader{section: ss}
	m := &models.Metadata{
		NumberOfPixels: r.readInt(tagNumberOfPixels),
		MaxIntensity:   r.readFloat(tagMaxIntensity),
		Firmware:       r.readString(tagFirmware),
		SerialNumber:   r.readString(tagSerialNumber),
		NDarkPixels:    r.readInt(tagNDarkPixels),
		User:           r.readString(tagUser),
	}
	if r.err != nil {
		return nil, r.err
	}

	ts, err := Timestamp(doc)
	if err != nil {
		return nil, fmt.Errorf("timestamp: %w", err)
	}
	date, err := utils.Ctime(ts)
	if err != nil {
		return nil, err
	}
	m.Timestamp = ts
	m.Date = date

	m.IntegrationTime = r.readFloat(tagIntegrationTime)
	m.BoxcarWidth = r.readInt(tagBoxcarWidth)
	m.Saturated = r.readString(tagSaturated)
	m.ScansToAverage = r.readInt(tagScansToAverage)
	if r.err != nil {
		return nil, r.err
	}
	return m, nil
}
