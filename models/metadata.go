package models

// Metadata holds the scalar instrument fields read from the sourceSpectra
// section of one archive.
type Metadata struct {
	NumberOfPixels  int     `json:"numberOfPixels"`
	MaxIntensity    float64 `json:"maxIntensity"`
	Firmware        string  `json:"Firmware"`
	SerialNumber    string  `json:"Serialnumber"`
	NDarkPixels     int     `json:"nDarkPixels"`
	User            string  `json:"user"`
	Timestamp       string  `json:"timestamp"` // epoch milliseconds, raw text
	Date            string  `json:"date"`      // Timestamp rendered as local ctime
	IntegrationTime float64 `json:"integrationTime"`
	BoxcarWidth     int     `json:"boxcarWidth"`
	Saturated       string  `json:"saturated"`
	ScansToAverage  int     `json:"scansToAverage"`
}

// Field is one named line of the metadata summary.
type Field struct {
	Name  string
	Value string
}

// SummaryFields returns the fields written to the metadata summary, in file
// order. NDarkPixels is extracted but not part of the summary.
func (m *Metadata) SummaryFields() []Field {
	return []Field{
		{"Firmware", m.Firmware},
		{"Serialnumber", m.SerialNumber},
		{"user", m.User},
		{"timestamp", m.Timestamp},
		{"date", m.Date},
		{"numberOfPixels", itoa(m.NumberOfPixels)},
		{"maxIntensity", FormatScalar(m.MaxIntensity)},
		{"integrationTime", FormatScalar(m.IntegrationTime)},
		{"boxcarWidth", itoa(m.BoxcarWidth)},
		{"scansToAverage", itoa(m.ScansToAverage)},
		{"saturated", m.Saturated},
	}
}
