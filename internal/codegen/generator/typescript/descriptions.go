package typescript

import (
	"io"
	"log/slog"
	"text/template"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/openminted/xsdgen/internal/codegen/meta"
)

// DescriptionsFile is the default name of the descriptions module.
const DescriptionsFile = "descriptions.ts"

const noDescription = "Description not available"

const descriptionsTemplate = `{{writeFileHeaderTS}}
export class Description {
    desc : string;
    label : string;
    mandatory : boolean;
    recommended : boolean;
};
{{range .}}export var {{.Name}}Desc = {
	desc : "{{ts .Desc}}",
	label : "{{ts .Label}}",
	mandatory : {{.Mandatory}},
	recommended : {{.Recommended}}
};

{{end}}`

type descriptionEntry struct {
	Name        string
	Desc        string
	Label       string
	Mandatory   bool
	Recommended bool
}

func descriptionEntries(descs *meta.Descriptions) []descriptionEntry {
	entries := make([]descriptionEntry, 0, descs.Len())
	for name, d := range descs.All() {
		e := descriptionEntry{
			Name:      name,
			Desc:      noDescription,
			Label:     name,
			Mandatory: d.Mandatory,
		}
		if d.Desc != nil {
			e.Desc = *d.Desc
		}
		if d.Label != nil {
			e.Label = *d.Label
		}
		if d.Recommended != nil {
			e.Recommended = *d.Recommended
		}
		entries = append(entries, e)
	}
	return entries
}

// RenderDescriptions writes one description object per table entry, in
// table order. stamp dates the file header.
func RenderDescriptions(w io.Writer, stamp time.Time, descs *meta.Descriptions) error {
	tmpl := template.Must(template.New("descriptions").Funcs(templateFuncs(stamp)).Parse(descriptionsTemplate))
	if err := tmpl.Execute(w, descriptionEntries(descs)); err != nil {
		return errors.Wrap(err, "execute descriptions template")
	}
	return nil
}

func WriteDescriptions(logger *slog.Logger, path string, stamp time.Time, descs *meta.Descriptions) error {
	logger.Debug("Generating descriptions", "file", path, "entries", descs.Len())
	for name := range descs.All() {
		warnInvalid(logger, path, "element", name+"Desc")
	}
	return writeFile(path, func(w io.Writer) error {
		return RenderDescriptions(w, stamp, descs)
	})
}
