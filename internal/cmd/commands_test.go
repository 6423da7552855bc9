package cmd

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openminted/xsdgen/internal/codegen/generator"
	th "github.com/openminted/xsdgen/internal/testing"
)

const schema = `<?xml version="1.0" encoding="UTF-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
	<xs:element name="Corpus">
		<xs:annotation>
			<xs:documentation>A collection of texts</xs:documentation>
		</xs:annotation>
		<xs:simpleType>
			<xs:restriction base="xs:string">
				<xs:enumeration value="text/xml"/>
			</xs:restriction>
		</xs:simpleType>
	</xs:element>
</xs:schema>
`

func schemaDir(t *testing.T) string {
	t.Helper()
	return th.SchemaDir(t, map[string]string{"corpus.xsd": schema})
}

func TestAnnotateRun(t *testing.T) {
	out := t.TempDir()
	cmd := &Annotate{Directory: schemaDir(t), Output: out, Package: "eu.openminted", MaxEnum: 300}
	require.NoError(t, cmd.Run(th.Logger(t)))

	data, err := os.ReadFile(filepath.Join(out, "corpus.xsd"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<jaxb:typesafeEnumClass name="CorpusEnum">`)
	assert.Contains(t, string(data), `<jaxb:package name="eu.openminted"/>`)
}

func TestDescribeRun(t *testing.T) {
	out := t.TempDir()
	cmd := &Describe{Directory: schemaDir(t), Output: out, Descriptions: "descriptions.ts", Enumerations: "enumerations.ts"}
	require.NoError(t, cmd.Run(th.Logger(t)))

	assert.FileExists(t, filepath.Join(out, "descriptions.ts"))
	data, err := os.ReadFile(filepath.Join(out, "enumerations.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `{key : "TEXT_XML", value : "text/xml"}`)
}

func TestInjectRun(t *testing.T) {
	work := t.TempDir()
	in := filepath.Join(work, "sample.d.ts")
	out := filepath.Join(work, "injsample.d.ts")
	require.NoError(t, os.WriteFile(in, []byte("export interface Corpus { size: number; }\n"), 0o644))

	cmd := &Inject{
		Directory: schemaDir(t),
		Name:      in,
		Output:    out,
		Rename:    map[string]string{"Corpus": "Collection"},
	}
	require.NoError(t, cmd.Run(th.Logger(t)))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "export class Collection  {\n\tsize : number;\n}\n\n"+
		"Collection.prototype.desc=\"A collection of texts\";\n", string(data))
}

func TestWatchOptionsTriggerOnSchemaWrites(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.MkdirAll("schemas", 0o755))

	tests := []struct {
		name string
		opts generator.WatchOptions
	}{
		{"describe with default output", (&Describe{Directory: "schemas", Output: "."}).watchOptions()},
		{"annotate into an ancestor", (&Annotate{Directory: "schemas", Output: "."}).watchOptions()},
		{"annotate with default output", (&Annotate{Directory: "schemas", Output: "annotated"}).watchOptions()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			opts.Debounce = 20 * time.Millisecond
			w, err := generator.New(th.Logger(t)).Watch(opts)
			require.NoError(t, err)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan error, 1)
			var runs atomic.Int32
			go func() {
				done <- w.Run(ctx, func() error {
					runs.Add(1)
					return nil
				})
			}()

			th.WriteFile(t, filepath.Join("schemas", "corpus.xsd"), schema)
			require.Eventually(t, func() bool { return runs.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

			cancel()
			require.NoError(t, <-done)
		})
	}
}
