package typescript

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"text/template"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/openminted/xsdgen/internal/codegen/common"
)

var tsIdentifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// warnInvalid logs each name that is emitted verbatim into an identifier
// position but is not a TypeScript identifier. The output is still written.
func warnInvalid(logger *slog.Logger, file, kind string, names ...string) {
	for _, name := range names {
		if !tsIdentifierRe.MatchString(name) {
			logger.Warn("Name is not a valid TypeScript identifier", "file", file, kind, name)
		}
	}
}

func templateFuncs(stamp time.Time) template.FuncMap {
	return template.FuncMap{
		"writeFileHeaderTS": func() string { return common.FileHeaderTS(stamp) },
		"ts":                common.EscapeTS,
	}
}

// writeFile renders completely before touching path; a failed render leaves
// path as it was.
func writeFile(path string, render func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create directory %s", dir)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "write %s", filepath.Base(path))
	}
	return nil
}
