// Package jaxb rewrites XML schemas with the JAXB binding customisations
// needed to generate usable Java classes: typesafe enum classes and members,
// class names without the "Type" suffix and collapsed choices.
package jaxb

import (
	"log/slog"
	"regexp"

	"github.com/beevik/etree"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/scanner"
)

const (
	NamespaceJAXB     = "http://java.sun.com/xml/ns/jaxb"
	NamespaceXJC      = "http://java.sun.com/xml/ns/jaxb/xjc"
	NamespaceSimplify = "http://jaxb2-commons.dev.java.net/basic/simplify"

	// DefaultMaxEnum is the largest enumeration still mapped to a Java enum.
	DefaultMaxEnum = 300
)

var typeNameRe = regexp.MustCompile(`^(\w+)Type$`)

type Options struct {
	// Package, when set, becomes the target package of the generated classes.
	Package string
	// MaxEnum defaults to DefaultMaxEnum when zero or negative.
	MaxEnum int
}

func (o Options) maxEnum() int {
	if o.MaxEnum <= 0 {
		return DefaultMaxEnum
	}
	return o.MaxEnum
}

// Changes counts the customisations added by Annotate.
type Changes struct {
	Enums   int
	Members int
	Choices int
	Classes int
}

// Annotate adds the binding customisations to doc in place. Nodes that
// already carry their customisation are left alone, so annotating an
// annotated schema changes nothing but the root declarations.
func Annotate(logger *slog.Logger, doc *etree.Document, opts Options) Changes {
	root := doc.Root()
	root.CreateAttr("xmlns:jaxb", NamespaceJAXB)
	root.CreateAttr("jaxb:version", "1.0")
	root.CreateAttr("xmlns:xjc", NamespaceXJC)
	root.CreateAttr("xmlns:simplify", NamespaceSimplify)
	root.CreateAttr("jaxb:extensionBindingPrefixes", "xjc simplify")

	var ch Changes
	if opts.Package != "" {
		setPackage(root, opts.Package)
	}
	for _, st := range scanner.FindXS(root, "simpleType") {
		if n, ok := annotateEnum(logger, st, opts.maxEnum()); ok {
			ch.Enums++
			ch.Members += n
		}
	}
	for _, choice := range scanner.FindXS(root, "choice") {
		if hasBinding(choice, "simplify", "as-element-property") {
			continue
		}
		appInfo(choice).CreateElement("simplify:as-element-property")
		ch.Choices++
	}
	for _, ct := range scanner.FindXS(root, "complexType") {
		name, _ := scanner.Name(ct)
		m := typeNameRe.FindStringSubmatch(name)
		if m == nil || hasBinding(ct, "jaxb", "class") {
			continue
		}
		class := common.FirstUpper(m[1])
		logger.Debug("Renaming class", "type", name, "class", class)
		appInfo(ct).CreateElement("jaxb:class").CreateAttr("name", class)
		ch.Classes++
	}
	return ch
}

// annotateEnum binds a simpleType restricted to enumeration values to a
// typesafe enum class and returns the number of member names it had to set.
func annotateEnum(logger *slog.Logger, st *etree.Element, maxEnum int) (int, bool) {
	restriction := scanner.FirstChildXS(st, "restriction")
	if restriction == nil {
		return 0, false
	}
	enums := scanner.ChildrenXS(restriction, "enumeration")
	if len(enums) == 0 || hasBinding(st, "jaxb", "typesafeEnumClass") {
		return 0, false
	}

	class := appInfo(st).CreateElement("jaxb:typesafeEnumClass")
	if owner := st.Parent(); owner != nil {
		if name, ok := scanner.Name(owner); ok {
			class.CreateAttr("name", name+"Enum")
		}
	}
	if len(enums) > maxEnum {
		logger.Debug("Enumeration too large for a Java enum", "values", len(enums), "max", maxEnum)
		class.CreateAttr("map", "false")
	}

	members := 0
	seen := map[string]string{}
	for _, e := range enums {
		value := e.SelectAttrValue("value", "")
		if common.IsIdentifier(value) {
			continue
		}
		name := common.Sanitize(value)
		if prev, dup := seen[name]; dup {
			logger.Warn("Enumeration values share a member name", "name", name, "first", prev, "value", value)
		}
		seen[name] = value
		m := class.CreateElement("jaxb:typesafeEnumMember")
		m.CreateAttr("value", value)
		m.CreateAttr("name", name)
		members++
	}
	return members, true
}

// setPackage points the schema bindings of root at pkg, reusing existing
// bindings when present.
func setPackage(root *etree.Element, pkg string) {
	info := appInfo(root)
	bindings := childBinding(info, "jaxb", "schemaBindings")
	if bindings == nil {
		bindings = info.CreateElement("jaxb:schemaBindings")
	}
	p := childBinding(bindings, "jaxb", "package")
	if p == nil {
		p = bindings.CreateElement("jaxb:package")
	}
	p.CreateAttr("name", pkg)
}

// appInfo returns the first xs:appinfo of the first xs:annotation of e,
// creating both as needed. A new annotation is inserted as the first child.
func appInfo(e *etree.Element) *etree.Element {
	ann := scanner.FirstChildXS(e, "annotation")
	if ann == nil {
		ann = etree.NewElement(qualify(e.Space, "annotation"))
		e.InsertChildAt(0, ann)
	}
	info := scanner.FirstChildXS(ann, "appinfo")
	if info == nil {
		info = ann.CreateElement(qualify(e.Space, "appinfo"))
	}
	return info
}

// hasBinding reports whether any appinfo of e's own annotations already
// holds the element space:tag.
func hasBinding(e *etree.Element, space, tag string) bool {
	for _, ann := range scanner.ChildrenXS(e, "annotation") {
		for _, info := range scanner.ChildrenXS(ann, "appinfo") {
			if childBinding(info, space, tag) != nil {
				return true
			}
		}
	}
	return false
}

func childBinding(e *etree.Element, space, tag string) *etree.Element {
	for _, c := range e.ChildElements() {
		if c.Space == space && c.Tag == tag {
			return c
		}
	}
	return nil
}

func qualify(space, tag string) string {
	if space == "" {
		return tag
	}
	return space + ":" + tag
}
