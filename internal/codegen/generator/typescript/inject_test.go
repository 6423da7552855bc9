package typescript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openminted/xsdgen/internal/codegen/meta"
	"github.com/openminted/xsdgen/internal/codegen/rules"
	"github.com/openminted/xsdgen/internal/codegen/tsdecl"
	th "github.com/openminted/xsdgen/internal/testing"
)

func ptr[T any](v T) *T { return &v }

func parse(t *testing.T, src string) *tsdecl.File {
	t.Helper()
	f, err := tsdecl.Parse("test.d.ts", []byte(src))
	require.NoError(t, err)
	return f
}

func TestInjectPlainInterface(t *testing.T) {
	f := parse(t, "export interface Foo { bar: string; }")
	assert.Equal(t, "export class Foo  {\n\tbar : string;\n}\n\n", Inject(f, rules.Set{}, nil))
}

func TestInjectOmittedInterface(t *testing.T) {
	f := parse(t, "export interface XMLGregorianCalendar { }")
	assert.Empty(t, Inject(f, rules.Default(), nil))
}

func TestInjectRules(t *testing.T) {
	f := parse(t, `export interface Corpus extends Component {
    created: XMLGregorianCalendar;
    name: string;
}
export interface Component {
}`)
	want := "export class OMTDCorpus extends OMTDComponent {\n" +
		"\tcreated : Date;\n" +
		"\tname : string;\n" +
		"}\n\n" +
		"export class OMTDComponent  {\n" +
		"}\n\n"
	assert.Equal(t, want, Inject(f, rules.Default(), nil))
}

func TestInjectMetadata(t *testing.T) {
	descs := meta.NewDescriptions()
	descs.Put("corpus", meta.Description{Desc: ptr(`A "curated" collection`), Label: ptr("Corpus")})
	descs.Put("dataset", meta.Description{Desc: ptr("Some data")})
	descs.Put("tool", meta.Description{Label: ptr("Tool")})

	f := parse(t, `export interface Corpus { }
export interface Dataset { }
export interface Tool { }
export interface Other { }`)
	want := "export class OMTDCorpus  {\n}\n\n" +
		"OMTDCorpus.prototype.desc=\"A \\\"curated\\\" collection\";\n" +
		"OMTDCorpus.prototype.label=\"Corpus\";\n\n" +
		"export class Dataset  {\n}\n\n" +
		"Dataset.prototype.desc=\"Some data\";\n" +
		"export class Tool  {\n}\n\n" +
		"Tool.prototype.label=\"Tool\";\n\n" +
		"export class Other  {\n}\n\n"
	assert.Equal(t, want, Inject(f, rules.Default(), descs))
}

func TestInjectRenamedUsesDeclaredName(t *testing.T) {
	descs := meta.NewDescriptions()
	descs.Put("corpus", meta.Description{Desc: ptr("A collection of texts")})
	rs := rules.Set{Rename: map[string]string{"Corpus": "Collection", "Tool": "Component"}}

	f := parse(t, `export interface Corpus { }
export interface Tool { }`)
	_, ok := descs.Lookup("collection")
	require.False(t, ok)

	want := "export class Collection  {\n}\n\n" +
		"Collection.prototype.desc=\"A collection of texts\";\n" +
		"export class Component  {\n}\n\n"
	assert.Equal(t, want, Inject(f, rs, descs))

	descs.Put("component", meta.Description{Desc: ptr("Keyed by the new name")})
	assert.NotContains(t, Inject(f, rs, descs), "Keyed by the new name")
}

func TestInjectEnums(t *testing.T) {
	f := parse(t, `export interface Foo { }
export type Status = "draft" | "published";
export type Unit = "words";`)
	want := "export class Foo  {\n}\n\n" +
		"export enum Status {\n\tdraft,\n\tpublished\n}\n\n" +
		"export enum Unit {\n\twords\n}\n\n"
	assert.Equal(t, want, Inject(f, rules.Set{}, nil))
}

func TestInjectIdempotentRules(t *testing.T) {
	f := parse(t, "export interface Model { size: XMLGregorianCalendar; }")
	first := Inject(f, rules.Default(), nil)
	second := Inject(f, rules.Default(), nil)
	assert.Equal(t, first, second)
	assert.Equal(t, "export class OMTDModel  {\n\tsize : Date;\n}\n\n", first)
}

func TestWriteInjectedWarnsOnInvalidMembers(t *testing.T) {
	logger, logs := th.CaptureLogger()
	path := filepath.Join(t.TempDir(), InjectedFile)
	f := parse(t, `export interface Foo { }
export type Speed = "2fast" | "slow";`)

	require.NoError(t, WriteInjected(logger, path, f, rules.Set{}, nil))
	assert.Contains(t, logs.String(), "member=2fast")
	assert.NotContains(t, logs.String(), "member=slow")
}

func TestWriteInjected(t *testing.T) {
	logger := th.Logger(t)
	path := filepath.Join(t.TempDir(), "out", InjectedFile)
	f := parse(t, "export interface Foo { bar: string; }")

	require.NoError(t, WriteInjected(logger, path, f, rules.Set{}, nil))
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "export class Foo  {\n\tbar : string;\n}\n\n", string(got))
}
