package models

// SpectrumRecord is everything extracted from one instrument archive.
// Dark and Reference are empty unless reference extraction was requested.
type SpectrumRecord struct {
	Wavelengths []float64 `json:"wavelengths"`
	Source      []float64 `json:"source"`
	Processed   []float64 `json:"processed"`
	Dark        []float64 `json:"dark,omitempty"`
	Reference   []float64 `json:"reference,omitempty"`
	Metadata    Metadata  `json:"metadata"`
}

// TimesLine is the "<rawMillis>, <ctime>" entry written to the times file.
func (r *SpectrumRecord) TimesLine() string {
	return r.Metadata.Timestamp + ", " + r.Metadata.Date
}

// SpectrumRow is one labelled line of a spectra file: a sample number (or the
// "Samplenum" header label) followed by one value per pixel.
type SpectrumRow struct {
	Label  string
	Values []float64
}

// HeaderLabel labels the wavelength row at the top of every spectra file.
const HeaderLabel = "Samplenum"

// WavelengthHeader builds the header row of a spectra file.
func WavelengthHeader(lambda []float64) SpectrumRow {
	return SpectrumRow{Label: HeaderLabel, Values: lambda}
}

// SampleRow builds a data row labelled with the sample number.
func SampleRow(number int, values []float64) SpectrumRow {
	return SpectrumRow{Label: itoa(number), Values: values}
}

// RowFields returns the label and the formatted values.
func (r SpectrumRow) RowFields() []string {
	row := make([]string, 0, len(r.Values)+1)
	row = append(row, r.Label)
	for _, v := range r.Values {
		row = append(row, FormatValue(v))
	}
	return row
}
