package ingest

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/dustin/go-humanize"

	"github.com/belfhi/FP-Spektren/utils"
)

// ParseDocument reads the spectrum member of the archive at path, sanitizes
// it and parses it into an element tree.
func ParseDocument(path, prefix string) (*etree.Document, error) {
	name, raw, err := ReadMember(path, prefix)
	if err != nil {
		return nil, err
	}
	utils.L().Debug("read %s from %s (%s)", name, path, humanize.Bytes(uint64(len(raw))))

	text, err := Sanitize(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc, err := ParseString(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s in %s: %w", name, path, err)
	}
	return doc, nil
}

// ParseString parses already sanitized text. The text is UTF-8 by then, so
// whatever encoding the XML prolog declares is passed through untouched.
func ParseString(text string) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	if err := doc.ReadFromString(text); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	return doc, nil
}
