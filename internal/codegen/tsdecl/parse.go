package tsdecl

import (
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/cockroachdb/errors"
)

var declLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|/\*([^*]|\*+[^*/])*\*+/`},
	{Name: "String", Pattern: `"[A-Za-z0-9_]+"`},
	{Name: "Ident", Pattern: `[A-Za-z0-9_<>\[\]]+`},
	{Name: "Punct", Pattern: `[{}:;|=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[File](
	participle.Lexer(declLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

// Parse parses src. Input that does not follow the grammar is rejected as a
// whole; there is no partial result.
func Parse(filename string, src []byte) (*File, error) {
	f, err := parser.ParseBytes(filename, src)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "parse %s", filename),
			"only exported interfaces followed by exported string-literal union types are supported",
		)
	}
	if err := f.validate(filename); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseFile reads and parses the declaration file at path.
func ParseFile(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return Parse(path, src)
}

// validate enforces what the struct grammar leaves open: the file declares
// something, and every interface precedes the first type alias.
func (f *File) validate(filename string) error {
	if len(f.Decls) == 0 {
		return errors.Newf("%s: no declarations", filename)
	}
	var firstAlias *TypeAlias
	for _, d := range f.Decls {
		switch {
		case d.Alias != nil && firstAlias == nil:
			firstAlias = d.Alias
		case d.Interface != nil && firstAlias != nil:
			return errors.Newf("%s: interface %s declared after type %s (%s)",
				d.Pos, d.Interface.Name, firstAlias.Name, firstAlias.Pos)
		}
	}
	return nil
}

// Interfaces returns the interface declarations of f in source order.
func (f *File) Interfaces() []*Interface {
	var out []*Interface
	for _, d := range f.Decls {
		if d.Interface != nil {
			out = append(out, d.Interface)
		}
	}
	return out
}

// Aliases returns the type alias declarations of f in source order.
func (f *File) Aliases() []*TypeAlias {
	var out []*TypeAlias
	for _, d := range f.Decls {
		if d.Alias != nil {
			out = append(out, d.Alias)
		}
	}
	return out
}
