// Package config defines the command line of xsdgen.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/openminted/xsdgen/internal/cmd"
	"github.com/openminted/xsdgen/internal/log"
)

type CLI struct {
	ConfigFile string           `name:"config" help:"Configuration file (JSON, YAML or TOML)" type:"path" env:"XSDGEN_CONFIG"`
	Verbose    bool             `short:"v" help:"Shorthand for --log.level=debug"`
	Version    kong.VersionFlag `help:"Print the version and exit"`
	Log        log.Config       `embed:"" prefix:"log."`

	Annotate cmd.Annotate      `cmd:"" help:"Write a copy of the schemas with JAXB binding customisations"`
	Describe cmd.Describe      `cmd:"" help:"Generate the TypeScript descriptions and enumerations modules"`
	Inject   cmd.Inject        `cmd:"" help:"Turn a TypeScript declaration file into documented classes and enums"`
	Config   cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

// LogLevel resolves the effective log level.
func (c *CLI) LogLevel() string {
	if c.Verbose {
		return "debug"
	}
	return c.Log.Level
}
