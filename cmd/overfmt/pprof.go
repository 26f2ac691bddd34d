//go:build pprof

package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/m-cat/over/internal/meta"
	"github.com/m-cat/over/log"
	"github.com/m-cat/over/profile"
)

type pprofConfig struct {
	Mode string `default:""                    enum:",${pprofModeEnum}" help:"Enable profiling" placeholder:"${enum}" short:"p"`
	Dir  string `default:"${pprofDir}"                                  help:"Profile output directory" type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{
		"pprofModeEnum": strings.Join(profile.Modes(), ","),
		"pprofDir":      filepath.Join(meta.CacheDir(), profile.Tag),
	}
}

func (pprofConfig) group() kong.Group {
	return kong.Group{Key: "pprof", Title: "Profiling (pprof)"}
}

func (f pprofConfig) start(ctx context.Context, logger log.Logger) (stop func()) {
	if f.Mode == "" {
		return func() {}
	}

	logger.DebugContext(ctx, "pprof start", slog.String("mode", f.Mode), slog.String("dir", f.Dir))

	var cfg profile.Config = func() (string, string, bool) { return "", "", false }

	cfg = profile.WithMode(f.Mode)(cfg)
	cfg = profile.WithPath(f.Dir)(cfg)
	cfg = profile.WithQuiet(true)(cfg)

	profiler := cfg.Start()

	return func() {
		logger.DebugContext(ctx, "pprof stop", slog.String("mode", f.Mode), slog.String("dir", f.Dir))
		profiler.Stop()
	}
}
