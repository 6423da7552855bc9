// Package tsdecl parses the restricted TypeScript declaration files emitted by
// the Java-to-TypeScript generator: exported interfaces followed by exported
// string-literal union types.
//
//	File      = Decl* .
//	Decl      = "export" ( Interface | TypeAlias ) .
//	Interface = "interface" Ident [ "extends" Ident ] "{" Field* "}" .
//	Field     = Ident ":" Ident ";" .
//	TypeAlias = "type" Ident "=" String { "|" String } ";" .
//
// Identifiers are opaque runs of letters, digits, '_', '<', '>', '[' and ']',
// so generic-looking types such as Array<string> or string[] are kept as text.
package tsdecl

import "github.com/alecthomas/participle/v2/lexer"

type File struct {
	Pos   lexer.Position
	Decls []*Decl `@@*`
}

// Decl is one exported declaration. Exactly one of Interface and Alias is set.
type Decl struct {
	Pos       lexer.Position
	Interface *Interface `"export" ( @@`
	Alias     *TypeAlias `         | @@ )`
}

type Interface struct {
	Pos     lexer.Position
	Name    string   `"interface" @Ident`
	Extends string   `( "extends" @Ident )?`
	Fields  []*Field `"{" @@* "}"`
}

type Field struct {
	Pos  lexer.Position
	Name string `@Ident ":"`
	Type string `@Ident ";"`
}

// TypeAlias is a union of string literals, turned into an enum by the emitter.
type TypeAlias struct {
	Pos    lexer.Position
	Name   string   `"type" @Ident "="`
	Values []string `@String ( "|" @String )* ";"`
}

// Visitor receives the declarations of a file in source order.
type Visitor interface {
	VisitInterface(*Interface)
	VisitTypeAlias(*TypeAlias)
}

// Walk dispatches every declaration of f to v.
func Walk(f *File, v Visitor) {
	for _, d := range f.Decls {
		switch {
		case d.Interface != nil:
			v.VisitInterface(d.Interface)
		case d.Alias != nil:
			v.VisitTypeAlias(d.Alias)
		}
	}
}
