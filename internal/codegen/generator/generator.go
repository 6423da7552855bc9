package generator

import (
	"log/slog"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/openminted/xsdgen/internal/codegen/common"
	"github.com/openminted/xsdgen/internal/codegen/generator/jaxb"
	"github.com/openminted/xsdgen/internal/codegen/generator/typescript"
	"github.com/openminted/xsdgen/internal/codegen/rules"
	"github.com/openminted/xsdgen/internal/codegen/scanner"
	"github.com/openminted/xsdgen/internal/codegen/tsdecl"
)

type Generator struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Generator {
	return &Generator{logger: logger}
}

// Scan builds the description and enumeration tables of a schema directory.
// Duplicate names are not fatal; they are logged as warnings.
func (g *Generator) Scan(dir string) (*scanner.Result, error) {
	g.logger.Info("Scanning schemas", "dir", dir)

	res, err := scanner.ScanDir(dir)
	if err != nil {
		return nil, err
	}
	for _, c := range res.Conflicts {
		g.logger.Warn("Duplicate definition", "name", c.Name, "file", c.Source, "resolution", string(c.Resolution))
	}
	g.logger.Info("Scanned schemas",
		"files", len(res.Files),
		"descriptions", res.Descriptions.Len(),
		"enums", res.Enums.Len(),
		"duplicates", len(res.Conflicts))
	return res, nil
}

type AnnotateOptions = jaxb.DirOptions

// Annotate writes a JAXB-annotated copy of every schema below opts.Input.
func (g *Generator) Annotate(opts AnnotateOptions) (jaxb.Stats, error) {
	g.logger.Info("Annotating schemas", "dir", opts.Input, "output", opts.Output, "package", opts.Package)

	stats, err := jaxb.AnnotateDir(g.logger, opts)
	if err != nil {
		return stats, err
	}
	g.logger.Info("Annotation complete", "written", len(stats.Written), "unchanged", len(stats.Skipped))
	return stats, nil
}

type DescribeOptions struct {
	Directory    string
	Output       string
	Descriptions string
	Enumerations string
	Force        bool
}

func (o DescribeOptions) paths() (descriptions, enumerations string) {
	descriptions, enumerations = o.Descriptions, o.Enumerations
	if descriptions == "" {
		descriptions = typescript.DescriptionsFile
	}
	if enumerations == "" {
		enumerations = typescript.EnumerationsFile
	}
	return filepath.Join(o.Output, descriptions), filepath.Join(o.Output, enumerations)
}

// Describe writes the descriptions and enumerations modules of a schema
// directory. It reports whether anything was written: both modules are left
// alone when they are newer than every schema, unless opts.Force is set.
func (g *Generator) Describe(opts DescribeOptions) (bool, error) {
	descPath, enumPath := opts.paths()

	if !opts.Force {
		files, err := scanner.SchemaFiles(opts.Directory)
		if err != nil {
			return false, err
		}
		fresh, err := g.fresh(files, descPath, enumPath)
		if err != nil || fresh {
			return false, err
		}
	}

	res, err := g.Scan(opts.Directory)
	if err != nil {
		return false, err
	}
	if err := typescript.WriteDescriptions(g.logger, descPath, res.ModTime, res.Descriptions); err != nil {
		return false, err
	}
	if err := typescript.WriteEnumerations(g.logger, enumPath, res.ModTime, res.Enums); err != nil {
		return false, err
	}
	g.logger.Info("Generated TypeScript modules", "descriptions", descPath, "enumerations", enumPath)
	return true, nil
}

type InjectOptions struct {
	Directory string
	// Input is the declaration file to rewrite.
	Input  string
	Output string
	// RulesFile replaces the built-in rules when set.
	RulesFile string
	// Omit and Rename are applied on top of the rules.
	Omit   map[string]string
	Rename map[string]string
	Force  bool
}

// Rules resolves the rule set of an injection run.
func (o InjectOptions) Rules() (rules.Set, error) {
	rs := rules.Default()
	if o.RulesFile != "" {
		loaded, err := rules.Load(o.RulesFile)
		if err != nil {
			return rules.Set{}, err
		}
		rs = loaded
	}
	return rs.With(o.Omit, o.Rename), nil
}

// Inject rewrites the declaration file opts.Input into opts.Output with the
// documentation of the schemas in opts.Directory attached. It reports whether
// the output was written.
func (g *Generator) Inject(opts InjectOptions) (bool, error) {
	if opts.Input == "" || opts.Output == "" {
		return false, errors.New("inject needs both an input and an output file")
	}
	rs, err := opts.Rules()
	if err != nil {
		return false, err
	}

	if !opts.Force {
		files, err := scanner.SchemaFiles(opts.Directory)
		if err != nil {
			return false, err
		}
		sources := append(files, opts.Input)
		if opts.RulesFile != "" {
			sources = append(sources, opts.RulesFile)
		}
		fresh, err := g.fresh(sources, opts.Output)
		if err != nil || fresh {
			return false, err
		}
	}

	f, err := tsdecl.ParseFile(opts.Input)
	if err != nil {
		return false, err
	}
	res, err := g.Scan(opts.Directory)
	if err != nil {
		return false, err
	}

	for _, i := range f.Interfaces() {
		switch {
		case rs.Omitted(i.Name):
			g.logger.Debug("Omitting interface", "interface", i.Name)
		case rs.Name(i.Name) != i.Name:
			g.logger.Info("Renaming interface", "interface", i.Name, "to", rs.Name(i.Name))
		}
	}

	if err := typescript.WriteInjected(g.logger, opts.Output, f, rs, res.Descriptions); err != nil {
		return false, err
	}
	g.logger.Info("Injected declarations", "input", opts.Input, "output", opts.Output,
		"interfaces", len(f.Interfaces()), "enums", len(f.Aliases()))
	return true, nil
}

// fresh reports whether every output is newer than all sources.
func (g *Generator) fresh(sources []string, outputs ...string) (bool, error) {
	for _, out := range outputs {
		stale, err := common.IsStale(out, sources...)
		if err != nil {
			return false, err
		}
		if stale {
			return false, nil
		}
	}
	g.logger.Info("Outputs are up to date", "outputs", outputs)
	return true, nil
}
