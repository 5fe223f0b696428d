package models

import (
	"math"
	"strconv"
	"strings"
)

// ─── shared formatting helpers ──────────────────────────────────────────

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// nonFinite spells NaN and the infinities in lower case ("nan", "inf", "-inf").
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "nan", true
	case math.IsInf(v, 1):
		return "inf", true
	case math.IsInf(v, -1):
		return "-inf", true
	}
	return "", false
}

// FormatValue renders one spectrum value the way the row and vector files
// carry it: fixed notation, six decimals ("%f"). Non-finite values are
// written as nan, inf and -inf.
func FormatValue(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return ftoa(v, 6)
}

// FormatScalar renders a float the way the metadata summary shows it: the
// shortest round-tripping repr, always with a decimal point or exponent
// ("65535.0", "0.0001", "1e-05", "1e+16").
func FormatScalar(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// RowWriter is satisfied by anything that can be written as one
// tab-separated spectra row.
type RowWriter interface {
	RowFields() []string
}
