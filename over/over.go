// Package over is the public library surface described in §6.1: parsing
// OVER source text or files into an immutable value tree, and writing any
// value back to canonical OVER text. It is a thin facade over parser,
// value, and writer — those packages hold the real implementation, this
// one just gives callers a single import.
package over

import (
	"context"
	"io"
	"os"

	"github.com/m-cat/over/log"
	"github.com/m-cat/over/parser"
	"github.com/m-cat/over/value"
	"github.com/m-cat/over/writer"
)

// Type aliases so callers never need to import the internal packages
// directly.
type (
	Value  = value.Value
	Type   = value.Type
	Obj    = value.Obj
	Arr    = value.Arr
	Tup    = value.Tup
	Kind   = value.Kind
	Global = value.Global

	// Source is the file/line/col a field was bound at, as returned by
	// Obj.GetWithSource.
	Source = value.Source

	Option  = parser.Option
	Options = parser.Options

	// Logger is the structured logger accepted by WithLogger. Build one
	// with log.Make(w) to see trace-level include diagnostics; the zero
	// value is a silent no-op.
	Logger = log.Logger
)

// Re-exported constructors and constants.
var (
	Null    = value.Null
	Bool    = value.Bool
	Int     = value.Int
	Frac    = value.Frac
	Char    = value.Char
	Str     = value.Str
	Any     = value.Any
	FromObj = value.FromObj
	FromArr = value.FromArr
	FromTup = value.FromTup

	WithMaxIncludeDepth = parser.WithMaxIncludeDepth
	WithMaxNestingDepth = parser.WithMaxNestingDepth
	WithLoader          = parser.WithLoader
	WithLogger          = parser.WithLogger
)

// ParseString parses OVER source text held entirely in memory. origin is
// used only to resolve relative includes and to annotate errors; pass ""
// for input with no meaningful file identity.
func ParseString(source, origin string, opts ...Option) (*Obj, error) {
	return parser.Parse(context.Background(), source, origin, opts...)
}

// ParseFile reads and parses the OVER file at path.
func ParseFile(path string, opts ...Option) (*Obj, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseString(string(data), path, opts...)
}

// ParseReader parses OVER source text from r. origin is used the same way
// as in ParseString.
func ParseReader(r io.Reader, origin string, opts ...Option) (*Obj, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return ParseString(string(data), origin, opts...)
}

// Write renders v as canonical OVER text.
func Write(v Value) string { return writer.Write(v) }

// WriteFile renders v and atomically writes it to path.
func WriteFile(v Value, path string) error { return writer.WriteFile(v, path) }
