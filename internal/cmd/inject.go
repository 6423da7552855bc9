package cmd

import (
	"log/slog"

	"github.com/openminted/xsdgen/internal/codegen/generator"
)

type Inject struct {
	Directory string            `short:"d" help:"Directory containing the schemas" required:"" type:"existingdir" env:"XSDGEN_DIRECTORY"`
	Name      string            `short:"n" help:"Declaration file to read" default:"sample.d.ts" env:"XSDGEN_INJECT_NAME"`
	Output    string            `short:"o" help:"Declaration file to write" default:"injsample.d.ts" env:"XSDGEN_INJECT_OUTPUT"`
	Rules     string            `help:"YAML, TOML or JSON file replacing the built-in omit and rename rules" env:"XSDGEN_RULES"`
	Omit      map[string]string `help:"Extra omit rules as Type=Replacement pairs separated by ';'" mapsep:";"`
	Rename    map[string]string `help:"Extra rename rules as Interface=NewName pairs separated by ';'" mapsep:";"`
	Force     bool              `short:"f" help:"Regenerate the output even when it is up to date" env:"XSDGEN_FORCE"`
}

// Run is called by Kong when the inject command is executed.
func (i *Inject) Run(logger *slog.Logger) error {
	gen := generator.New(logger)
	_, err := gen.Inject(generator.InjectOptions{
		Directory: i.Directory,
		Input:     i.Name,
		Output:    i.Output,
		RulesFile: i.Rules,
		Omit:      i.Omit,
		Rename:    i.Rename,
		Force:     i.Force,
	})
	return err
}
