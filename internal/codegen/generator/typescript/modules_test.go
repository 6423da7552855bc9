package typescript

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openminted/xsdgen/internal/codegen/meta"
	th "github.com/openminted/xsdgen/internal/testing"
)

var stamp = time.Date(2017, time.March, 7, 10, 0, 0, 0, time.UTC)

const header = "\n/**\n * Generated at 07/Mar/2017\n */\n"

func TestRenderDescriptions(t *testing.T) {
	descs := meta.NewDescriptions()
	descs.Put("corpusInfo", meta.Description{
		Desc:        ptr(`Groups "corpus" info`),
		Label:       ptr("Corpus info"),
		Mandatory:   true,
		Recommended: ptr(true),
	})
	descs.Put("size", meta.Description{})

	var buf bytes.Buffer
	require.NoError(t, RenderDescriptions(&buf, stamp, descs))

	want := header + `
export class Description {
    desc : string;
    label : string;
    mandatory : boolean;
    recommended : boolean;
};
export var corpusInfoDesc = {
	desc : "Groups \"corpus\" info",
	label : "Corpus info",
	mandatory : true,
	recommended : true
};

export var sizeDesc = {
	desc : "Description not available",
	label : "size",
	mandatory : false,
	recommended : false
};

`
	assert.Equal(t, want, buf.String())
}

func TestRenderEnumerations(t *testing.T) {
	enums := meta.NewEnums()
	enums.Put("status", []meta.EnumValue{
		meta.Header("Status"),
		{Value: ptr("draft"), Label: "Draft"},
		{Value: ptr("text/xml"), Label: "XML"},
	})
	enums.Put("unit", []meta.EnumValue{meta.Header("unit")})

	var buf bytes.Buffer
	require.NoError(t, RenderEnumerations(&buf, stamp, enums))

	want := header + `
export class EnumValues {
    key : string;
    value : string;
};
export var statusEnum = [
	{key : "", value : "--Status--"},
	{key : "DRAFT", value : "Draft"},
	{key : "TEXT_XML", value : "XML"}
];

export var unitEnum = [
	{key : "", value : "--unit--"}
];

`
	assert.Equal(t, want, buf.String())
}

func TestRenderEmptyTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDescriptions(&buf, stamp, meta.NewDescriptions()))
	assert.Contains(t, buf.String(), "export class Description {")
	assert.NotContains(t, buf.String(), "export var")

	buf.Reset()
	require.NoError(t, RenderEnumerations(&buf, stamp, meta.NewEnums()))
	assert.Contains(t, buf.String(), "export class EnumValues {")
	assert.NotContains(t, buf.String(), "export var")
}

func TestWriteModules(t *testing.T) {
	logger := th.Logger(t)
	dir := filepath.Join(t.TempDir(), "ts")

	descs := meta.NewDescriptions()
	descs.Put("size", meta.Description{Desc: ptr("The size")})
	enums := meta.NewEnums()
	enums.Put("unit", []meta.EnumValue{meta.Header("unit"), {Value: ptr("words"), Label: "words"}})

	require.NoError(t, WriteDescriptions(logger, filepath.Join(dir, DescriptionsFile), stamp, descs))
	require.NoError(t, WriteEnumerations(logger, filepath.Join(dir, EnumerationsFile), stamp, enums))

	got, err := os.ReadFile(filepath.Join(dir, DescriptionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(got), "export var sizeDesc = {\n\tdesc : \"The size\",")

	got, err = os.ReadFile(filepath.Join(dir, EnumerationsFile))
	require.NoError(t, err)
	assert.Contains(t, string(got), "\t{key : \"WORDS\", value : \"words\"}\n];")
}

func TestWriteModulesWarnsOnInvalidNames(t *testing.T) {
	logger, logs := th.CaptureLogger()
	dir := t.TempDir()

	descs := meta.NewDescriptions()
	descs.Put("foo-bar", meta.Description{Desc: ptr("Hyphenated")})
	descs.Put("size", meta.Description{Desc: ptr("The size")})
	enums := meta.NewEnums()
	enums.Put("unit.kind", []meta.EnumValue{meta.Header("unit.kind")})

	require.NoError(t, WriteDescriptions(logger, filepath.Join(dir, DescriptionsFile), stamp, descs))
	require.NoError(t, WriteEnumerations(logger, filepath.Join(dir, EnumerationsFile), stamp, enums))

	out := logs.String()
	assert.Contains(t, out, "element=foo-barDesc")
	assert.Contains(t, out, "enum=unit.kindEnum")
	assert.NotContains(t, out, "sizeDesc")

	got, err := os.ReadFile(filepath.Join(dir, DescriptionsFile))
	require.NoError(t, err)
	assert.Contains(t, string(got), "export var foo-barDesc = {", "names are emitted unchanged")
}
