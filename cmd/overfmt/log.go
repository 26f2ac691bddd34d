package main

import (
	"context"
	"os"

	"github.com/alecthomas/kong"

	"github.com/m-cat/over/log"
)

// logConfig is the log-related flag group, following the same shape as the
// aenv CLI's logging flags: an enum level/format pair plus pretty-printing
// and caller-info toggles, all fed straight into a single log.Logger built
// once flags are parsed (no process-wide singleton mutation).
type logConfig struct {
	Level      string `default:"info" enum:"debug,info,warn,error,trace" help:"Set log level."`
	Format     string `default:"text" enum:"json,text"                   help:"Set log format."`
	Caller     bool   `default:"false"                                   help:"Include caller information." negatable:""`
	Pretty     bool   `default:"true"                                    help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

func (c *logConfig) build() log.Logger {
	opts := []log.Option{
		log.WithLevel(log.ParseLevel(c.Level)),
		log.WithFormat(log.ParseFormat(c.Format)),
		log.WithCaller(c.Caller),
		log.WithPretty(c.Pretty),
	}

	return log.Make(os.Stderr, opts...)
}

func defaultLogger() log.Logger {
	return log.Make(os.Stderr)
}

type loggerKey struct{}

func withLogger(ctx context.Context, l log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}
