package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/meta"
)

// SchemaExt is the extension of the files picked up from a schema directory.
const SchemaExt = ".xsd"

// Result holds the tables built from every schema of a directory.
type Result struct {
	Files        []string
	Descriptions *meta.Descriptions
	Enums        *meta.Enums
	Conflicts    []meta.Conflict
	// ModTime is the newest modification time among Files.
	ModTime time.Time
}

// SchemaFiles lists the schema files directly inside dir in lexical order.
func SchemaFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrapf(err, "read schema directory %s", dir),
			"pass the directory holding the .xsd files with --directory",
		)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), SchemaExt) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

// ScanDir scans every schema of dir and merges the per-file tables. Files are
// visited in lexical order, so the first definition of a duplicate name is
// the one from the lexically smallest file.
func ScanDir(dir string) (*Result, error) {
	files, err := SchemaFiles(dir)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Files:        files,
		Descriptions: meta.NewDescriptions(),
		Enums:        meta.NewEnums(),
	}
	for _, file := range files {
		doc, err := LoadSchema(file)
		if err != nil {
			return nil, err
		}
		source := filepath.Base(file)

		descs, conflicts := ScanDescriptions(doc.Root())
		conflicts = append(conflicts, res.Descriptions.Merge(descs)...)

		enums, enumConflicts := ScanEnums(doc.Root())
		conflicts = append(conflicts, enumConflicts...)
		conflicts = append(conflicts, res.Enums.Merge(enums)...)

		for _, c := range conflicts {
			c.Source = source
			res.Conflicts = append(res.Conflicts, c)
		}
	}

	if res.ModTime, err = common.NewestModTime(files...); err != nil {
		return nil, err
	}
	return res, nil
}
