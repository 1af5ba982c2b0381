package drmdxml

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Tree navigation helpers. Elements are matched by namespace URI and
// local name so the parser is independent of the prefixes a document
// happens to declare.

// childElem returns the first direct child of e with the given namespace
// URI and local name, or nil.
func childElem(e *etree.Element, nsURI, local string) *etree.Element {
	if e == nil {
		return nil
	}
	for _, c := range e.ChildElements() {
		if c.Tag == local && c.NamespaceURI() == nsURI {
			return c
		}
	}
	return nil
}

// childElems returns all direct children of e with the given namespace
// URI and local name, in document order.
func childElems(e *etree.Element, nsURI, local string) []*etree.Element {
	if e == nil {
		return nil
	}
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if c.Tag == local && c.NamespaceURI() == nsURI {
			out = append(out, c)
		}
	}
	return out
}

// descend follows a chain of (nsURI, local) pairs from e, taking the
// first match at each level. Returns nil as soon as a level is missing.
func descend(e *etree.Element, steps ...[2]string) *etree.Element {
	cur := e
	for _, step := range steps {
		cur = childElem(cur, step[0], step[1])
		if cur == nil {
			return nil
		}
	}
	return cur
}

// descendants returns every element below e (excluding e itself) with
// the given namespace URI and local name, in document order.
func descendants(e *etree.Element, nsURI, local string) []*etree.Element {
	if e == nil {
		return nil
	}
	var out []*etree.Element
	var walk func(*etree.Element)
	walk = func(cur *etree.Element) {
		for _, c := range cur.ChildElements() {
			if c.Tag == local && c.NamespaceURI() == nsURI {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(e)
	return out
}

// firstDescendant returns the first descendant matching the namespace
// URI and local name, or nil.
func firstDescendant(e *etree.Element, nsURI, local string) *etree.Element {
	all := descendants(e, nsURI, local)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// elemText returns the trimmed text of e, or "" for a nil element.
func elemText(e *etree.Element) string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Text())
}

// collapseSpace normalizes internal whitespace runs to single spaces and
// trims the ends.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// isTrue implements the case-insensitive boolean convention of the
// document: only the literal "true" encodes true.
func isTrue(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "true")
}

// decimalPattern accepts non-negative plain decimals only; signs,
// exponents and anything else are treated as absent values.
var decimalPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)

// parseDecimal converts document text to a float. It returns nil for
// blank or non-numeric content instead of an error; the import policy is
// to drop malformed numbers, not to fail on them.
func parseDecimal(s string) *float64 {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formatFloat renders a float in plain decimal notation so the output
// survives the parser's decimal guard on re-import.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
