package tsdecl

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `/* tslint:disable */
// Generated using typescript-generator

export interface Corpus extends Resource {
    corpusInfo: CorpusInfo;
    created: XMLGregorianCalendar;
    names: string[];
    tags: Array<string>;
}

export interface Resource {
}

export type Status = "draft" | "published" |
    "archived";

export type Unit = "words";
`

func TestParse(t *testing.T) {
	f, err := Parse("sample.d.ts", []byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Decls, 4)

	ifaces := f.Interfaces()
	require.Len(t, ifaces, 2)
	corpus := ifaces[0]
	assert.Equal(t, "Corpus", corpus.Name)
	assert.Equal(t, "Resource", corpus.Extends)
	require.Len(t, corpus.Fields, 4)
	assert.Equal(t, "corpusInfo", corpus.Fields[0].Name)
	assert.Equal(t, "CorpusInfo", corpus.Fields[0].Type)
	assert.Equal(t, "string[]", corpus.Fields[2].Type)
	assert.Equal(t, "Array<string>", corpus.Fields[3].Type)
	assert.Equal(t, 4, corpus.Pos.Line)

	assert.Empty(t, ifaces[1].Extends)
	assert.Empty(t, ifaces[1].Fields)

	aliases := f.Aliases()
	require.Len(t, aliases, 2)
	assert.Equal(t, "Status", aliases[0].Name)
	assert.Equal(t, []string{"draft", "published", "archived"}, aliases[0].Values)
	assert.Equal(t, []string{"words"}, aliases[1].Values)
}

func TestParseInterfaceOnly(t *testing.T) {
	f, err := Parse("foo.d.ts", []byte("export interface Foo { bar: string; }"))
	require.NoError(t, err)
	require.Len(t, f.Interfaces(), 1)
	assert.Empty(t, f.Aliases())
}

func TestParseRejects(t *testing.T) {
	cases := map[string]string{
		"empty":                 "",
		"missing semicolon":     "export interface Foo { bar: string }",
		"missing export":        "interface Foo { bar: string; }",
		"optional field":        "export interface Foo { bar?: string; }",
		"literal with space":    `export type T = "a b";`,
		"numeric union":         "export type T = 1 | 2;",
		"interface after alias": "export type T = \"a\";\nexport interface Foo { }",
		"unterminated":          "export interface Foo {",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := Parse("bad.d.ts", []byte(src))
			require.Error(t, err)
			assert.Nil(t, f)
		})
	}
}

func TestParseErrorMentionsFile(t *testing.T) {
	_, err := Parse("bad.d.ts", []byte("export interface Foo { bar string; }"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "bad.d.ts"), err.Error())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.d.ts")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Decls, 4)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.d.ts"))
	require.Error(t, err)
}

type recorder struct{ seen []string }

func (r *recorder) VisitInterface(i *Interface) { r.seen = append(r.seen, "interface "+i.Name) }
func (r *recorder) VisitTypeAlias(a *TypeAlias) { r.seen = append(r.seen, "type "+a.Name) }

func TestWalkOrder(t *testing.T) {
	f, err := Parse("sample.d.ts", []byte(sample))
	require.NoError(t, err)

	r := &recorder{}
	Walk(f, r)
	assert.Equal(t, []string{"interface Corpus", "interface Resource", "type Status", "type Unit"}, r.seen)
}
