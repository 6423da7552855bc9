package typescript

import (
	"io"
	"log/slog"
	"text/template"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/meta"
)

// EnumerationsFile is the default name of the enumerations module.
const EnumerationsFile = "enumerations.ts"

const enumerationsTemplate = `{{writeFileHeaderTS}}
export class EnumValues {
    key : string;
    value : string;
};
{{range .}}export var {{.Name}}Enum = [
{{range $i, $v := .Values}}{{if $i}},
{{end}}	{key : "{{ts $v.Key}}", value : "{{ts $v.Value}}"}{{end}}
];

{{end}}`

type enumEntry struct {
	Name   string
	Values []enumValue
}

type enumValue struct {
	Key   string
	Value string
}

func enumEntries(enums *meta.Enums) []enumEntry {
	entries := make([]enumEntry, 0, enums.Len())
	for name, values := range enums.All() {
		e := enumEntry{Name: name, Values: make([]enumValue, 0, len(values))}
		for _, v := range values {
			key := ""
			if v.Value != nil {
				key = common.Sanitize(*v.Value)
			}
			e.Values = append(e.Values, enumValue{Key: key, Value: v.Label})
		}
		entries = append(entries, e)
	}
	return entries
}

// RenderEnumerations writes one key/value array per enumeration. The header
// pseudo-entry of each enumeration is rendered with an empty key.
func RenderEnumerations(w io.Writer, stamp time.Time, enums *meta.Enums) error {
	tmpl := template.Must(template.New("enumerations").Funcs(templateFuncs(stamp)).Parse(enumerationsTemplate))
	if err := tmpl.Execute(w, enumEntries(enums)); err != nil {
		return errors.Wrap(err, "execute enumerations template")
	}
	return nil
}

func WriteEnumerations(logger *slog.Logger, path string, stamp time.Time, enums *meta.Enums) error {
	logger.Debug("Generating enumerations", "file", path, "enums", enums.Len())
	for name := range enums.All() {
		warnInvalid(logger, path, "enum", name+"Enum")
	}
	return writeFile(path, func(w io.Writer) error {
		return RenderEnumerations(w, stamp, enums)
	})
}
