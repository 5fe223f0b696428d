// Package ingesttest builds synthetic instrument archives for tests.
package ingesttest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
)

// Spectrum describes the content of one synthetic ps_ document.
type Spectrum struct {
	Wavelengths []float64
	Source      []float64
	Processed   []float64
	Dark        []float64
	Reference   []float64
	MilliTime   string

	Firmware     string
	SerialNumber string
	User         string
	Saturated    string
}

// Default returns a small, complete spectrum with three pixels.
func Default() Spectrum {
	return Spectrum{
		Wavelengths:  []float64{400.0, 450.5, 500.25},
		Source:       []float64{1000, 2000, 3000},
		Processed:    []float64{10, 20, 30},
		Dark:         []float64{1, 2, 3},
		Reference:    []float64{4000, 4100, 4200},
		MilliTime:    "1000",
		Firmware:     "3.00.1",
		SerialNumber: "USB4C01234",
		User:         "lab",
		Saturated:    "false",
	}
}

func doubles(b *strings.Builder, indent string, v []float64) {
	for _, x := range v {
		fmt.Fprintf(b, "%s<double>%v</double>\n", indent, x)
	}
}

// XML renders the document the way the acquisition software lays it out:
// a single root whose children are sourceSpectra and certificates. The
// certificates section starts with an empty processedPixels placeholder.
func (s Spectrum) XML() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString("<com.oceanoptics.omnidriver.spectra.OmniSpectrum>\n")
	b.WriteString(" <sourceSpectra>\n")
	fmt.Fprintf(&b, "  <spectrometerNumberOfPixels>%d</spectrometerNumberOfPixels>\n", len(s.Wavelengths))
	b.WriteString("  <spectrometerMaximumIntensity>65535.0</spectrometerMaximumIntensity>\n")
	fmt.Fprintf(&b, "  <spectrometerFirmwareVersion>%s</spectrometerFirmwareVersion>\n", s.Firmware)
	fmt.Fprintf(&b, "  <spectrometerSerialNumber>%s</spectrometerSerialNumber>\n", s.SerialNumber)
	b.WriteString("  <spectrometerNumberOfDarkPixels>18</spectrometerNumberOfDarkPixels>\n")
	fmt.Fprintf(&b, "  <userName>%s</userName>\n", s.User)
	fmt.Fprintf(&b, "  <acquisitionTime>\n   <milliTime>%s</milliTime>\n  </acquisitionTime>\n", s.MilliTime)
	b.WriteString("  <integrationTime>100000</integrationTime>\n")
	b.WriteString("  <boxcarWidth>5</boxcarWidth>\n")
	fmt.Fprintf(&b, "  <saturated>%s</saturated>\n", s.Saturated)
	b.WriteString("  <scansToAverage>3</scansToAverage>\n")
	b.WriteString("  <channelWavelengths>\n")
	doubles(&b, "   ", s.Wavelengths)
	b.WriteString("  </channelWavelengths>\n")
	b.WriteString("  <pixelValues>\n")
	doubles(&b, "   ", s.Source)
	b.WriteString("  </pixelValues>\n")
	b.WriteString(" </sourceSpectra>\n")
	b.WriteString(" <certificates>\n")
	b.WriteString("  <processedPixels/>\n")
	b.WriteString("  <darkSpectrum>\n   <pixelValues>\n")
	doubles(&b, "    ", s.Dark)
	b.WriteString("   </pixelValues>\n  </darkSpectrum>\n")
	b.WriteString("  <referenceSpectrum>\n   <pixelValues>\n")
	doubles(&b, "    ", s.Reference)
	b.WriteString("   </pixelValues>\n  </referenceSpectrum>\n")
	b.WriteString("  <processedPixels>\n")
	doubles(&b, "   ", s.Processed)
	b.WriteString("  </processedPixels>\n")
	b.WriteString(" </certificates>\n")
	b.WriteString("</com.oceanoptics.omnidriver.spectra.OmniSpectrum>\n")
	return b.String()
}

// Member is one named entry of a synthetic archive.
type Member struct {
	Name string
	Data []byte
}

// WriteArchive writes a zip with the given members, in order, to dir/name
// and returns its path.
func WriteArchive(t testing.TB, dir, name string, members ...Member) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	zw := zip.NewWriter(f)
	for _, m := range members {
		w, err := zw.Create(m.Name)
		if err != nil {
			t.Fatalf("create member %s: %v", m.Name, err)
		}
		if _, err := w.Write(m.Data); err != nil {
			t.Fatalf("write member %s: %v", m.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
	return path
}

// WriteSpectrum writes an archive whose ps_ member holds s.XML(), next to an
// unrelated member listed first.
func WriteSpectrum(t testing.TB, dir, name string, s Spectrum) string {
	t.Helper()
	return WriteArchive(t, dir, name,
		Member{Name: "OOISignatures.xml", Data: []byte("<signatures/>")},
		Member{Name: "ps_test.xml", Data: []byte(s.XML())},
	)
}
