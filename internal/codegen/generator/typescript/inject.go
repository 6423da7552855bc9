package typescript

import (
	"io"
	"log/slog"
	"strings"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/meta"
	"github.com/openminted/xsdgen/internal/codegen/rules"
	"github.com/openminted/xsdgen/internal/codegen/tsdecl"
)

// Inject turns the interfaces of f into classes carrying the schema
// documentation and its string unions into enums. Rules are looked up by the
// declared names, so applying them is idempotent.
func Inject(f *tsdecl.File, rs rules.Set, descs *meta.Descriptions) string {
	e := &emitter{rules: rs, descs: descs}
	tsdecl.Walk(f, e)
	return e.b.String()
}

// InjectedFile is the default name of the injected declaration file.
const InjectedFile = "injsample.d.ts"

func WriteInjected(logger *slog.Logger, path string, f *tsdecl.File, rs rules.Set, descs *meta.Descriptions) error {
	logger.Debug("Generating injected declarations", "file", path, "declarations", len(f.Decls))
	for _, d := range f.Decls {
		if d.Alias != nil {
			warnInvalid(logger, path, "member", d.Alias.Values...)
		}
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, Inject(f, rs, descs))
		return err
	})
}

type emitter struct {
	rules rules.Set
	descs *meta.Descriptions
	b     strings.Builder
}

func (e *emitter) VisitInterface(i *tsdecl.Interface) {
	if e.rules.Omitted(i.Name) {
		return
	}
	name := e.rules.Name(i.Name)

	extends := ""
	if i.Extends != "" {
		extends = "extends " + e.rules.Name(i.Extends)
	}
	e.b.WriteString("export class " + name + " " + extends + " {\n")
	for _, f := range i.Fields {
		e.b.WriteString("\t" + f.Name + " : " + e.rules.FieldType(f.Type) + ";\n")
	}
	e.b.WriteString("}\n\n")

	d, ok := e.descs.Lookup(common.FirstLower(i.Name))
	if !ok {
		return
	}
	if d.Desc != nil {
		e.b.WriteString(name + `.prototype.desc="` + common.EscapeTS(*d.Desc) + "\";\n")
	}
	if d.Label != nil {
		e.b.WriteString(name + `.prototype.label="` + common.EscapeTS(*d.Label) + "\";\n\n")
	}
}

func (e *emitter) VisitTypeAlias(a *tsdecl.TypeAlias) {
	e.b.WriteString("export enum " + a.Name + " {\n")
	e.b.WriteString("\t" + strings.Join(a.Values, ",\n\t") + "\n")
	e.b.WriteString("}\n\n")
}
