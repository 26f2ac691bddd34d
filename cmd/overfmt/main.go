// Command overfmt formats and evaluates OVER files: fmt rewrites a file to
// canonical form, eval parses a file (or an ad hoc expression) and prints
// the result, optionally as YAML for inspection.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/m-cat/over/internal/meta"
)

func main() {
	err := run(context.Background(), os.Exit, os.Args[1:]...)
	if err != nil {
		defaultLogger().Error("run failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// cli is the top-level command-line interface for overfmt.
type cli struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	IncludePath []string `help:"Additional directories to search for '<include>' targets" name:"include-path" short:"I" type:"path"`

	Fmt  fmtCmd  `cmd:"" help:"Rewrite a file to canonical OVER text"`
	Eval evalCmd `cmd:"" default:"withargs" help:"Parse a file or expression and print the result"`
}

func run(ctx context.Context, exit func(code int), args ...string) error {
	var c cli

	parser, err := kong.New(&c,
		kong.Name(meta.Name),
		kong.Description(meta.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		c.Pprof.vars(),
		kong.ExplicitGroups([]kong.Group{c.Log.group(), c.Pprof.group()}),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
			Tree:    true,
		}),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := c.Log.build()
	ctx = withLogger(ctx, logger)

	defer c.Pprof.start(ctx, logger)()

	return ktx.Run(ctx, &c, logger)
}
