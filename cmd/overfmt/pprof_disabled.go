//go:build !pprof

package main

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/m-cat/over/log"
)

// pprofConfig is empty when built without the pprof tag.
type pprofConfig struct{}

func (pprofConfig) vars() kong.Vars { return kong.Vars{} }

func (pprofConfig) group() kong.Group { return kong.Group{} }

func (pprofConfig) start(context.Context, log.Logger) (stop func()) { return func() {} }
