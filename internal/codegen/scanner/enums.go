package scanner

import (
	"github.com/beevik/etree"

	"github.com/openminted/xsdgen/internal/codegen/meta"
)

// ScanEnums collects every enumeration of the document. An xs:enumeration
// belongs to its nearest named ancestor; each owner yields a header entry
// (its appinfo label, or its name) followed by its values in document order.
// Owners sharing a name with an earlier one are dropped and reported.
func ScanEnums(root *etree.Element) (*meta.Enums, []meta.Conflict) {
	var owners []*etree.Element
	owned := map[*etree.Element][]*etree.Element{}
	for _, enum := range FindXS(root, "enumeration") {
		owner := namedAncestor(enum)
		if owner == nil {
			continue
		}
		if _, seen := owned[owner]; !seen {
			owners = append(owners, owner)
		}
		owned[owner] = append(owned[owner], enum)
	}

	table := meta.NewEnums()
	var conflicts []meta.Conflict
	for _, owner := range owners {
		name, _ := Name(owner)
		values := make([]meta.EnumValue, 0, len(owned[owner])+1)
		values = append(values, meta.Header(groupLabel(owner, name)))
		for _, enum := range owned[owner] {
			value := enum.SelectAttrValue("value", "")
			label := value
			if l := text(firstLocal(enum, "label")); l != nil {
				label = *l
			}
			values = append(values, meta.EnumValue{Value: &value, Label: label})
		}
		if c, ok := table.Put(name, values); !ok {
			conflicts = append(conflicts, c)
		}
	}
	return table, conflicts
}

func namedAncestor(e *etree.Element) *etree.Element {
	for p := e.Parent(); p != nil; p = p.Parent() {
		if _, ok := Name(p); ok {
			return p
		}
	}
	return nil
}

// groupLabel returns the first label under the owner's own
// xs:annotation/xs:appinfo, falling back to name.
func groupLabel(owner *etree.Element, name string) string {
	for _, ann := range ChildrenXS(owner, "annotation") {
		for _, info := range ChildrenXS(ann, "appinfo") {
			for _, c := range info.ChildElements() {
				if c.Tag == "label" {
					if l := text(c); l != nil {
						return *l
					}
				}
			}
		}
	}
	return name
}
