package cmd

import (
	"log/slog"

	"github.com/openminted/xsdgen/internal/codegen/generator"
	"github.com/openminted/xsdgen/internal/codegen/generator/jaxb"
)

type Annotate struct {
	Directory string `short:"d" help:"Directory containing the schemas, searched recursively" required:"" type:"existingdir" env:"XSDGEN_DIRECTORY"`
	Output    string `short:"o" help:"Directory the annotated schemas are written to" default:"annotated" env:"XSDGEN_ANNOTATE_OUTPUT"`
	Package   string `short:"p" help:"Java package of the generated classes" env:"XSDGEN_PACKAGE"`
	MaxEnum   int    `help:"Largest enumeration still mapped to a Java enum" default:"300" env:"XSDGEN_MAX_ENUM"`
	Force     bool   `short:"f" help:"Regenerate outputs even when they are up to date" env:"XSDGEN_FORCE"`
	Watch     bool   `help:"Keep running and regenerate when a schema changes"`
}

func (a *Annotate) options() generator.AnnotateOptions {
	return generator.AnnotateOptions{
		Options: jaxb.Options{Package: a.Package, MaxEnum: a.MaxEnum},
		Input:   a.Directory,
		Output:  a.Output,
		Force:   a.Force,
	}
}

// watchOptions ignores Output, which only takes effect when it is nested in
// Directory.
func (a *Annotate) watchOptions() generator.WatchOptions {
	return generator.WatchOptions{
		Dir:       a.Directory,
		Recursive: true,
		Ignore:    []string{a.Output},
	}
}

// Run is called by Kong when the annotate command is executed.
func (a *Annotate) Run(logger *slog.Logger) error {
	gen := generator.New(logger)
	if _, err := gen.Annotate(a.options()); err != nil {
		return err
	}
	if !a.Watch {
		return nil
	}

	opts := a.options()
	opts.Force = false
	return watch(gen, a.watchOptions(), func() error {
		_, err := gen.Annotate(opts)
		return err
	})
}
