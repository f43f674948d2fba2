package main

import (
	"github.com/alecthomas/kong"
)

type globalOptions struct {
	ConfigFile string `type:"path" short:"c" help:"Path to an engine config file"`
	LogLevel   string `default:"warn" enum:"debug,info,warn,error" help:"Only log messages with the given severity or above."`
	LogFormat  string `default:"logfmt" enum:"logfmt,json" help:"Output log messages in the given format."`
}

type cli struct {
	globalOptions

	Infer   inferCmd   `cmd:"" help:"Infer the type of every node of the trees in a YAML file"`
	Facts   factsCmd   `cmd:"" help:"Print the base relations extracted from the trees in a YAML file"`
	Lattice latticeCmd `cmd:"" help:"Compare two types and print their join and meet"`
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("arrayinfer-cli"),
		kong.Description("Type inference for array construction expressions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&c.globalOptions)
	ctx.FatalIfErrorf(err)
}
