package parser

import (
	"github.com/m-cat/over/include"
	"github.com/m-cat/over/log"
)

// Resource limits recommended in §5, applied unless overridden.
const (
	DefaultMaxIncludeDepth = 64
	DefaultMaxNestingDepth = 200
)

// Options configures a top-level Parse call.
type Options struct {
	MaxIncludeDepth int
	MaxNestingDepth int
	Loader          include.Loader
	Logger          log.Logger
}

// Option mutates Options; see With* constructors below.
type Option func(*Options)

// WithMaxIncludeDepth overrides the active-include-stack depth limit.
func WithMaxIncludeDepth(n int) Option {
	return func(o *Options) { o.MaxIncludeDepth = n }
}

// WithMaxNestingDepth overrides the container nesting depth limit.
func WithMaxNestingDepth(n int) Option {
	return func(o *Options) { o.MaxNestingDepth = n }
}

// WithLoader overrides the include content loader (default: the OS
// filesystem via include.OSLoader).
func WithLoader(l include.Loader) Option {
	return func(o *Options) { o.Loader = l }
}

// WithLogger overrides the log.Logger used for trace-level diagnostics
// (default: a silent zero-value Logger).
func WithLogger(l log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func defaultOptions() Options {
	return Options{
		MaxIncludeDepth: DefaultMaxIncludeDepth,
		MaxNestingDepth: DefaultMaxNestingDepth,
		Loader:          include.OSLoader{},
	}
}

func applyOptions(opts []Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	return o
}
