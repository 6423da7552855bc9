package scanner

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/cockroachdb/errors"
)

// XSNamespace is the XML Schema namespace.
const XSNamespace = "http://www.w3.org/2001/XMLSchema"

// IsXS reports whether e is the XML Schema element with the given local name.
// Elements whose prefix is not declared are accepted when they use one of the
// customary "xs"/"xsd" prefixes.
func IsXS(e *etree.Element, local string) bool {
	if e == nil || e.Tag != local {
		return false
	}
	uri, declared := namespaceOf(e, e.Space)
	if !declared {
		return e.Space == "xs" || e.Space == "xsd"
	}
	return uri == XSNamespace
}

// namespaceOf resolves prefix (empty for the default namespace) against the
// xmlns declarations in scope at e.
func namespaceOf(e *etree.Element, prefix string) (string, bool) {
	for n := e; n != nil; n = n.Parent() {
		for _, a := range n.Attr {
			if prefix == "" && a.Space == "" && a.Key == "xmlns" {
				return a.Value, true
			}
			if prefix != "" && a.Space == "xmlns" && a.Key == prefix {
				return a.Value, true
			}
		}
	}
	return "", false
}

// ChildrenXS returns the direct XML Schema children of e named local.
func ChildrenXS(e *etree.Element, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		if IsXS(c, local) {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildXS returns the first direct XML Schema child of e named local.
func FirstChildXS(e *etree.Element, local string) *etree.Element {
	for _, c := range e.ChildElements() {
		if IsXS(c, local) {
			return c
		}
	}
	return nil
}

// Walk calls fn for e and all its descendant elements in document order.
func Walk(e *etree.Element, fn func(*etree.Element)) {
	fn(e)
	for _, c := range e.ChildElements() {
		Walk(c, fn)
	}
}

// FindXS returns every descendant of e (e excluded) that is the XML Schema
// element named local, in document order.
func FindXS(e *etree.Element, local string) []*etree.Element {
	var out []*etree.Element
	for _, c := range e.ChildElements() {
		Walk(c, func(n *etree.Element) {
			if IsXS(n, local) {
				out = append(out, n)
			}
		})
	}
	return out
}

// firstLocal returns the first descendant of e (e excluded) with the given
// local name, regardless of namespace.
func firstLocal(e *etree.Element, local string) *etree.Element {
	var found *etree.Element
	for _, c := range e.ChildElements() {
		Walk(c, func(n *etree.Element) {
			if found == nil && n.Tag == local {
				found = n
			}
		})
		if found != nil {
			break
		}
	}
	return found
}

// Name returns the name attribute of e and whether it is set.
func Name(e *etree.Element) (string, bool) {
	a := e.SelectAttr("name")
	if a == nil {
		return "", false
	}
	return a.Value, true
}

// text returns the trimmed character data of e, or nil when it is empty.
func text(e *etree.Element) *string {
	if e == nil {
		return nil
	}
	s := strings.TrimSpace(e.Text())
	if s == "" {
		return nil
	}
	return &s
}

// LoadSchema parses the schema file at path.
func LoadSchema(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errors.Wrapf(err, "parse schema %s", path)
	}
	if doc.Root() == nil {
		return nil, errors.Newf("schema %s has no root element", path)
	}
	return doc, nil
}
