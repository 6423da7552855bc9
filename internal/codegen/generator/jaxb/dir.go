package jaxb

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/scanner"
)

type DirOptions struct {
	Options
	Input  string
	Output string
	// Force rewrites outputs that are newer than their schema.
	Force bool
}

// Stats reports what AnnotateDir did with each schema it found.
type Stats struct {
	Written []string
	Skipped []string
}

// AnnotateDir annotates every schema below opts.Input and writes it to the
// same relative path below opts.Output. Outputs newer than their schema are
// left untouched unless opts.Force is set.
func AnnotateDir(logger *slog.Logger, opts DirOptions) (Stats, error) {
	var stats Stats

	in, err := filepath.Abs(opts.Input)
	if err != nil {
		return stats, errors.Wrapf(err, "resolve %s", opts.Input)
	}
	out, err := filepath.Abs(opts.Output)
	if err != nil {
		return stats, errors.Wrapf(err, "resolve %s", opts.Output)
	}
	if in == out {
		return stats, errors.WithHint(
			errors.Newf("output directory %s is the schema directory", opts.Output),
			"annotated schemas would overwrite their sources; pass a different --output",
		)
	}
	if info, err := os.Stat(in); err != nil {
		return stats, errors.Wrapf(err, "schema directory %s", opts.Input)
	} else if !info.IsDir() {
		return stats, errors.Newf("schema directory %s is not a directory", opts.Input)
	}

	err = filepath.WalkDir(in, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == out {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), scanner.SchemaExt) {
			return nil
		}

		rel, err := filepath.Rel(in, path)
		if err != nil {
			return errors.Wrapf(err, "relative path of %s", path)
		}
		dst := filepath.Join(out, rel)

		stale, err := common.IsStale(dst, path)
		if err != nil {
			return err
		}
		if !stale && !opts.Force {
			logger.Debug("Unchanged schema", "file", rel)
			stats.Skipped = append(stats.Skipped, dst)
			return nil
		}

		if err := annotateFile(logger, path, dst, opts.Options); err != nil {
			return err
		}
		logger.Info("Annotated schema", "file", rel, "output", dst, "forced", !stale)
		stats.Written = append(stats.Written, dst)
		return nil
	})
	if err != nil {
		return stats, errors.Wrapf(err, "annotate %s", opts.Input)
	}
	return stats, nil
}

func annotateFile(logger *slog.Logger, src, dst string, opts Options) error {
	doc, err := scanner.LoadSchema(src)
	if err != nil {
		return err
	}
	ch := Annotate(logger.With("file", filepath.Base(src)), doc, opts)
	logger.Debug("Added bindings", "file", filepath.Base(src),
		"enums", ch.Enums, "members", ch.Members, "choices", ch.Choices, "classes", ch.Classes)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return errors.Wrapf(err, "create directory %s", filepath.Dir(dst))
	}
	if err := doc.WriteToFile(dst); err != nil {
		return errors.Wrapf(err, "write %s", dst)
	}
	return nil
}
