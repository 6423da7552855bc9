package cmd

import (
	"log/slog"

	"github.com/openminted/xsdgen/internal/codegen/generator"
)

type Describe struct {
	Directory    string `short:"d" help:"Directory containing the schemas" required:"" type:"existingdir" env:"XSDGEN_DIRECTORY"`
	Output       string `short:"o" help:"Directory the TypeScript modules are written to" default:"." env:"XSDGEN_DESCRIBE_OUTPUT"`
	Descriptions string `help:"File name of the descriptions module" default:"descriptions.ts" env:"XSDGEN_DESCRIPTIONS"`
	Enumerations string `help:"File name of the enumerations module" default:"enumerations.ts" env:"XSDGEN_ENUMERATIONS"`
	Force        bool   `short:"f" help:"Regenerate outputs even when they are up to date" env:"XSDGEN_FORCE"`
	Watch        bool   `help:"Keep running and regenerate when a schema changes"`
}

func (d *Describe) options() generator.DescribeOptions {
	return generator.DescribeOptions{
		Directory:    d.Directory,
		Output:       d.Output,
		Descriptions: d.Descriptions,
		Enumerations: d.Enumerations,
		Force:        d.Force,
	}
}

// watchOptions watches the schema directory only. The modules written to
// Output are not schemas, so no output directory needs to be ignored.
func (d *Describe) watchOptions() generator.WatchOptions {
	return generator.WatchOptions{Dir: d.Directory}
}

// Run is called by Kong when the describe command is executed.
func (d *Describe) Run(logger *slog.Logger) error {
	gen := generator.New(logger)
	if _, err := gen.Describe(d.options()); err != nil {
		return err
	}
	if !d.Watch {
		return nil
	}

	opts := d.options()
	opts.Force = false
	return watch(gen, d.watchOptions(), func() error {
		_, err := gen.Describe(opts)
		return err
	})
}
