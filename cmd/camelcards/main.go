package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/camelcards/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Solve    SolveCmd         `cmd:"" default:"withargs" help:"Print the total winnings for an input"`
	Rank     RankCmd          `cmd:"" help:"Show every hand with its rank and score"`
	Classify ClassifyCmd      `cmd:"" help:"Classify one or more hands"`
	Compare  CompareCmd       `cmd:"" help:"Compare two hands and explain the result"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options()...)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("camelcards"),
		kong.Description("Rank camel cards hands and compute total winnings"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
			"config":  config.DefaultFile,
		},
		kong.BindTo(os.Stdout, (*io.Writer)(nil)),
	}
}
