package ingest

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// IllegalRunes are stray bytes the acquisition software leaves inside
// otherwise well-formed XML. After a Latin-1 decode each byte is one rune.
var IllegalRunes = []rune{0xa0, 0x89, 0x80, 0xe2, 0xb0, 0x88, 0x9e}

func isIllegal(r rune) bool {
	for _, x := range IllegalRunes {
		if r == x {
			return true
		}
	}
	return false
}

// Sanitize decodes raw as ISO-8859-1 and drops every IllegalRunes value.
// The patch is byte-level: a multi-byte UTF-8 sequence that contains one of
// those bytes comes out mangled.
func Sanitize(raw []byte) (string, error) {
	t := transform.Chain(
		charmap.ISO8859_1.NewDecoder(),
		runes.Remove(runes.Predicate(isIllegal)),
	)
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", fmt.Errorf("sanitize: %w", err)
	}
	return string(out), nil
}
