// Package xmlnav looks up elements of a parsed instrument document by tag
// name. It knows nothing about the instrument schema; callers supply the
// tag paths.
package xmlnav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

var (
	ErrPathNotFound = errors.New("xml path not found")
	ErrNoText       = errors.New("element has no text")
)

// Descendants returns every element below root whose tag is tag, in
// document order. root itself is never included.
func Descendants(root *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	walk(root, func(el *etree.Element) bool {
		if el.Tag == tag {
			out = append(out, el)
		}
		return true
	})
	return out
}

// First returns the first element below root whose tag is tag, or nil.
func First(root *etree.Element, tag string) *etree.Element {
	var found *etree.Element
	walk(root, func(el *etree.Element) bool {
		if el.Tag == tag {
			found = el
			return false
		}
		return true
	})
	return found
}

// walk visits the descendants of root in preorder until visit returns false.
func walk(root *etree.Element, visit func(*etree.Element) bool) bool {
	for _, child := range root.ChildElements() {
		if !visit(child) || !walk(child, visit) {
			return false
		}
	}
	return true
}

// FindByPath descends through the first match of every segment but the last
// and returns all descendants matching the last segment under that node.
//
//	FindByPath(doc, "darkSpectrum", "pixelValues", "double")
//
// A missing intermediate segment is an error; an empty final match is not.
func FindByPath(root *etree.Element, path ...string) ([]*etree.Element, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrPathNotFound)
	}
	node := root
	for i, tag := range path[:len(path)-1] {
		next := First(node, tag)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, strings.Join(path[:i+1], "/"))
		}
		node = next
	}
	return Descendants(node, path[len(path)-1]), nil
}

// FirstText returns the element's first child when that child is character
// data, with commas replaced by spaces. ok is false for elements that are
// empty or start with a nested element, a comment or a CDATA section.
func FirstText(el *etree.Element) (text string, ok bool) {
	if len(el.Child) == 0 {
		return "", false
	}
	cd, isText := el.Child[0].(*etree.CharData)
	if !isText || cd.IsCData() {
		return "", false
	}
	return strings.ReplaceAll(cd.Data, ",", " "), true
}

// Text is FirstText with a missing text node reported as ErrNoText.
func Text(el *etree.Element) (string, error) {
	s, ok := FirstText(el)
	if !ok {
		return "", fmt.Errorf("%w: <%s>", ErrNoText, el.Tag)
	}
	return s, nil
}

// Float parses the element's text as a float64, ignoring surrounding space.
func Float(el *etree.Element) (float64, error) {
	s, err := Text(el)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("<%s>: %w", el.Tag, err)
	}
	return v, nil
}

// Int parses the element's text as a decimal int, ignoring surrounding space.
func Int(el *etree.Element) (int, error) {
	s, err := Text(el)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("<%s>: %w", el.Tag, err)
	}
	return v, nil
}

// Floats parses every element with Float. The result is never nil.
func Floats(elems []*etree.Element) ([]float64, error) {
	out := make([]float64, 0, len(elems))
	for i, el := range elems {
		v, err := Float(el)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
