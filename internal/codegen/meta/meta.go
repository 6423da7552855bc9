// Package meta holds the tables scanned from a schema directory and shared by
// the generators: type descriptions and enumeration values. Both tables keep
// first-seen order so that generated files are reproducible.
package meta

import (
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Description documents a single schema type.
type Description struct {
	Desc        *string `json:"desc,omitempty"`
	Label       *string `json:"label,omitempty"`
	Mandatory   bool    `json:"mandatory"`
	Recommended *bool   `json:"recommended,omitempty"`
}

// EnumValue is one entry of an enumeration. Value is nil for the group header
// pseudo-entry that opens every enumeration.
type EnumValue struct {
	Value *string `json:"value"`
	Label string  `json:"label"`
}

// Header builds the pseudo-entry that precedes the values of an enumeration.
func Header(label string) EnumValue {
	return EnumValue{Label: fmt.Sprintf("--%s--", label)}
}

// Resolution tells how a duplicate definition was handled.
type Resolution string

const (
	// Backfilled: the first definition had no description and took the later one's.
	Backfilled Resolution = "backfilled description"
	// IgnoredUndocumented: neither definition carries a description, the later one is ignored.
	IgnoredUndocumented Resolution = "ignored duplicate without description"
	// KeptFirst: the first definition wins and the duplicate is ignored.
	KeptFirst Resolution = "kept first definition"
	// Dropped: a duplicate enumeration was dropped entirely.
	Dropped Resolution = "dropped duplicate enumeration"
)

// Conflict records a duplicate name encountered while merging.
type Conflict struct {
	Name       string     `json:"name"`
	Source     string     `json:"source,omitempty"`
	Resolution Resolution `json:"resolution"`
}

func (c Conflict) String() string {
	if c.Source == "" {
		return fmt.Sprintf("%s: %s", c.Name, c.Resolution)
	}
	return fmt.Sprintf("%s (%s): %s", c.Name, c.Source, c.Resolution)
}

// Descriptions maps lowercased-first-letter type names to their description.
type Descriptions struct {
	m *orderedmap.OrderedMap[string, Description]
}

func NewDescriptions() *Descriptions {
	return &Descriptions{m: orderedmap.New[string, Description]()}
}

// Put adds d under name. When name is already present the first definition
// wins; its missing description is backfilled from d. The returned conflict
// is only meaningful when ok is false.
func (t *Descriptions) Put(name string, d Description) (c Conflict, ok bool) {
	first, present := t.m.Get(name)
	if !present {
		t.m.Set(name, d)
		return Conflict{}, true
	}

	c = Conflict{Name: name}
	switch {
	case first.Desc == nil && d.Desc != nil:
		first.Desc = d.Desc
		t.m.Set(name, first)
		c.Resolution = Backfilled
	case first.Desc == nil:
		c.Resolution = IgnoredUndocumented
	default:
		c.Resolution = KeptFirst
	}
	return c, false
}

// Merge folds other into t in other's order and reports every duplicate.
func (t *Descriptions) Merge(other *Descriptions) []Conflict {
	var conflicts []Conflict
	for name, d := range other.All() {
		if c, ok := t.Put(name, d); !ok {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

func (t *Descriptions) Lookup(name string) (Description, bool) {
	if t == nil {
		return Description{}, false
	}
	return t.m.Get(name)
}

func (t *Descriptions) Len() int {
	if t == nil {
		return 0
	}
	return t.m.Len()
}

// All iterates the table in insertion order.
func (t *Descriptions) All() iter.Seq2[string, Description] {
	return func(yield func(string, Description) bool) {
		if t == nil {
			return
		}
		for p := t.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the table as an object in insertion order.
func (t *Descriptions) MarshalJSON() ([]byte, error) {
	return t.m.MarshalJSON()
}

// Enums maps enumeration type names to their ordered values.
type Enums struct {
	m *orderedmap.OrderedMap[string, []EnumValue]
}

func NewEnums() *Enums {
	return &Enums{m: orderedmap.New[string, []EnumValue]()}
}

// Put adds values under name unless name is already taken, in which case the
// whole new definition is dropped.
func (t *Enums) Put(name string, values []EnumValue) (c Conflict, ok bool) {
	if _, present := t.m.Get(name); present {
		return Conflict{Name: name, Resolution: Dropped}, false
	}
	t.m.Set(name, values)
	return Conflict{}, true
}

// Merge folds other into t in other's order and reports every duplicate.
func (t *Enums) Merge(other *Enums) []Conflict {
	var conflicts []Conflict
	for name, values := range other.All() {
		if c, ok := t.Put(name, values); !ok {
			conflicts = append(conflicts, c)
		}
	}
	return conflicts
}

func (t *Enums) Lookup(name string) ([]EnumValue, bool) {
	if t == nil {
		return nil, false
	}
	return t.m.Get(name)
}

func (t *Enums) Len() int {
	if t == nil {
		return 0
	}
	return t.m.Len()
}

// All iterates the table in insertion order.
func (t *Enums) All() iter.Seq2[string, []EnumValue] {
	return func(yield func(string, []EnumValue) bool) {
		if t == nil {
			return
		}
		for p := t.m.Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// MarshalJSON encodes the table as an object in insertion order.
func (t *Enums) MarshalJSON() ([]byte, error) {
	return t.m.MarshalJSON()
}
