// Package errs defines the structured error type shared by every OVER
// package: the lexer, the value model, the parser/evaluator, the include
// manager, and the writer all construct and wrap their failures through
// this package so that callers get a single family of errors regardless of
// which subsystem raised them.
package errs

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// New creates a new Error with a message.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// From wraps a standard error into an Error, reusing the original Error
// value (and its attributes) if err already is one.
func From(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// LogValue implements slog.LogValuer for structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap returns a copy of e with err set as the wrapped cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{msg: e.msg, err: err, attrs: e.attrs}
}

// With returns a copy of e with the given attributes appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{msg: e.msg, err: e.err, attrs: newAttrs}
}

// At returns a copy of e tagged with a source position.
func (e *Error) At(file string, line, col int) *Error {
	attrs := []slog.Attr{slog.Int("line", line), slog.Int("col", col)}
	if file != "" {
		attrs = append(attrs, slog.String("file", file))
	}

	return e.With(attrs...)
}

// Sentinel error kinds, one per §7 taxonomy entry. Each is a distinct
// *Error value so callers can errors.Is against it while still carrying
// rich structured detail through With/Wrap.
var (
	// Lex errors.
	ErrBadCharacter    = New("unexpected character")
	ErrUnterminated    = New("unterminated string or character literal")
	ErrInvalidEscape   = New("invalid escape sequence")
	ErrMalformedNumber = New("malformed numeric literal")

	// Parse errors.
	ErrUnexpectedToken  = New("unexpected token")
	ErrMissingColon     = New("missing ':' after field or global name")
	ErrUnbalancedBraket = New("unbalanced bracket")
	ErrReservedKeyword  = New("reserved keyword used as field name")
	ErrDuplicateField   = New("duplicate field")
	ErrDuplicateGlobal  = New("duplicate global")
	ErrMultipleParent   = New("object has more than one '^' binding")
	ErrInvalidFieldName = New("invalid field name")
	ErrMaxDepthExceeded = New("maximum container nesting depth exceeded")

	// Name errors.
	ErrUnresolvedName   = New("unresolved identifier")
	ErrUnresolvedGlobal = New("unresolved global")

	// Type errors.
	ErrTypeMismatch    = New("type mismatch")
	ErrArrayJoin       = New("array element type join failed")
	ErrWrongVariant    = New("wrong value variant for this operation")
	ErrIncludeKindMismatch = New("include kind does not match produced value")

	// Index errors.
	ErrIndexOutOfRange = New("index out of range")
	ErrNegativeIndex   = New("negative index")

	// Arithmetic errors.
	ErrDivideByZero        = New("division by zero")
	ErrModuloByZero        = New("modulo by zero")
	ErrIncompatibleOperand = New("operator applied to incompatible operand types")

	// Include errors.
	ErrIncludeNotFound = New("include target not found")
	ErrCyclicInclude   = New("cyclic include")
	ErrIncludeIO       = New("include I/O failure")

	// Writer errors.
	ErrWrite = New("write failed")
)

// ParseError is the rich, position-carrying error returned to callers of
// the top-level parse entry points. It renders a source snippet with a
// caret pointing at the offending column, in the style every OVER error
// message uses.
type ParseError struct {
	Cause  *Error
	File   string
	Line   int
	Col    int
	Source string // full source text of the file being parsed, for context
}

// NewParseError builds a ParseError from a sentinel/Cause error and a
// position. Source may be set later via WithSource once the caller knows
// the full text (e.g. once ParseString has the whole input in hand).
func NewParseError(cause *Error, file string, line, col int) *ParseError {
	return &ParseError{Cause: cause, File: file, Line: line, Col: col}
}

// WithSource attaches the full source text used to render a caret snippet.
func (e *ParseError) WithSource(source string) *ParseError {
	if e == nil {
		return nil
	}

	cp := *e
	cp.Source = source

	return &cp
}

// Error implements the error interface, rendering a caret-pointed snippet
// of the offending line when the source text is available.
func (e *ParseError) Error() string {
	var buf strings.Builder

	buf.WriteString("parse error")

	if e.File != "" {
		buf.WriteString(" in ")
		buf.WriteString(e.File)
	}

	buf.WriteString(" at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Col))
	buf.WriteString(": ")
	buf.WriteString(e.Cause.Error())

	if snippet := e.snippet(); snippet != "" {
		buf.WriteString("\n")
		buf.WriteString(snippet)
	}

	return buf.String()
}

// Unwrap exposes the underlying sentinel/cause error for errors.Is/As.
func (e *ParseError) Unwrap() error { return e.Cause }

// snippet renders the offending source line with a '^' marker under the
// reported column.
func (e *ParseError) snippet() string {
	if e.Source == "" || e.Line <= 0 {
		return ""
	}

	lines := strings.Split(e.Source, "\n")
	if e.Line > len(lines) {
		return ""
	}

	line := lines[e.Line-1]

	var buf strings.Builder

	lineNum := strconv.Itoa(e.Line)
	buf.WriteString("  ")
	buf.WriteString(lineNum)
	buf.WriteString(" | ")
	buf.WriteString(line)
	buf.WriteRune('\n')

	padding := strings.Repeat(" ", len(lineNum)+5)
	if e.Col > 0 {
		padding += strings.Repeat(" ", e.Col-1)
	}

	buf.WriteString(padding)
	buf.WriteString("^")

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *ParseError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("cause", e.Cause.Error()),
		slog.String("file", e.File),
		slog.Int("line", e.Line),
		slog.Int("col", e.Col),
	)
}
