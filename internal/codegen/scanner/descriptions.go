package scanner

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/meta"
)

// ScanDescriptions collects the description of every named schema component
// that carries an xs:annotation/xs:documentation, in document order. Keys are
// the component names with their first letter lowercased. Duplicates within
// the document follow the table's first-wins policy and are reported.
func ScanDescriptions(root *etree.Element) (*meta.Descriptions, []meta.Conflict) {
	table := meta.NewDescriptions()
	var conflicts []meta.Conflict

	Walk(root, func(e *etree.Element) {
		name, ok := Name(e)
		if !ok {
			return
		}
		doc := documentation(e)
		if doc == nil {
			return
		}

		d := meta.Description{
			Desc:      text(doc),
			Mandatory: mandatory(e),
		}
		for _, ann := range ChildrenXS(e, "annotation") {
			if d.Label == nil {
				d.Label = text(firstLocal(ann, "label"))
			}
			if d.Recommended == nil {
				d.Recommended = parseBool(firstLocal(ann, "recommended"))
			}
		}

		if c, ok := table.Put(common.FirstLower(name), d); !ok {
			conflicts = append(conflicts, c)
		}
	})
	return table, conflicts
}

// documentation returns the first xs:documentation found in the annotations
// directly attached to e.
func documentation(e *etree.Element) *etree.Element {
	for _, ann := range ChildrenXS(e, "annotation") {
		if doc := FirstChildXS(ann, "documentation"); doc != nil {
			return doc
		}
	}
	return nil
}

// mandatory reports whether minOccurs is 1, its default.
func mandatory(e *etree.Element) bool {
	v := strings.TrimSpace(e.SelectAttrValue("minOccurs", "1"))
	n, err := strconv.Atoi(v)
	return err == nil && n == 1
}

func parseBool(e *etree.Element) *bool {
	s := text(e)
	if s == nil {
		return nil
	}
	b, err := strconv.ParseBool(*s)
	if err != nil {
		return nil
	}
	return &b
}
