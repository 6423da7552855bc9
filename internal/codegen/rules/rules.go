// Package rules holds the omit and rename rules applied when declarations are
// injected into a TypeScript file.
package rules

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Set is read-only once a run has started.
type Set struct {
	// Omit maps a type name to its replacement. Interfaces with that name are
	// dropped and fields of that type use the replacement instead.
	Omit map[string]string `json:"omit" yaml:"omit" toml:"omit"`
	// Rename maps an interface name to the name it is emitted under.
	Rename map[string]string `json:"rename" yaml:"rename" toml:"rename"`
}

// Default returns the rules used for the OpenMinTeD vocabulary.
func Default() Set {
	return Set{
		Omit: map[string]string{
			"XMLGregorianCalendar": "Date",
		},
		Rename: map[string]string{
			"Component":                 "OMTDComponent",
			"Corpus":                    "OMTDCorpus",
			"LanguageDescription":       "OMTDLanguageDescription",
			"Model":                     "OMTDModel",
			"LexicalConceptualResource": "OMTDLexicalConceptualResource",
		},
	}
}

// Load reads a rule file. The format is chosen by extension: .yaml/.yml,
// .toml or .json.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, errors.Wrapf(err, "read rules %s", path)
	}

	var s Set
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	case ".toml":
		err = toml.Unmarshal(data, &s)
	case ".json":
		err = json.Unmarshal(data, &s)
	default:
		return Set{}, errors.WithHint(
			errors.Newf("unsupported rules format %q", ext),
			"use a .yaml, .yml, .toml or .json file",
		)
	}
	if err != nil {
		return Set{}, errors.Wrapf(err, "decode rules %s", path)
	}
	return s, nil
}

// With returns a copy of s where the given entries are added to, or replace,
// the existing ones. s is left untouched.
func (s Set) With(omit, rename map[string]string) Set {
	out := Set{
		Omit:   make(map[string]string, len(s.Omit)+len(omit)),
		Rename: make(map[string]string, len(s.Rename)+len(rename)),
	}
	maps.Copy(out.Omit, s.Omit)
	maps.Copy(out.Omit, omit)
	maps.Copy(out.Rename, s.Rename)
	maps.Copy(out.Rename, rename)
	return out
}

// Omitted reports whether declarations named name are omitted.
func (s Set) Omitted(name string) bool {
	_, ok := s.Omit[name]
	return ok
}

// FieldType returns the type a field declared with typ is emitted with.
func (s Set) FieldType(typ string) string {
	if r, ok := s.Omit[typ]; ok {
		return r
	}
	return typ
}

// Name returns the name an interface declared as name is emitted under.
func (s Set) Name(name string) string {
	if r, ok := s.Rename[name]; ok {
		return r
	}
	return name
}
