// Package parser implements the OVER recursive-descent parser/evaluator of
// §4.4: it parses directly into evaluated Values against a scope built from
// the Obj under construction, resolving variable references, dot paths,
// parent inheritance, arithmetic, and include directives in a single
// top-down pass. Forward references within an object body are rejected,
// per the "single top-down pass" resolution of the open question in §9.
package parser

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/include"
	"github.com/m-cat/over/lexer"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// Parser holds the mutable state of a single top-level parse: the lexer's
// current lookahead token, the file-scoped global table, and the include
// manager shared across every nested include this parse triggers.
type Parser struct {
	lex     *lexer.Lexer
	file    string
	source  string
	cur     token.Token
	globals *globalTable
	curObj  *value.Obj
	mgr     *include.Manager
	opts    Options
	depth   int

	errLine, errCol int
	haveErrPos      bool
}

// Parse evaluates OVER source text into its root object.
func Parse(ctx context.Context, source, file string, opts ...Option) (*value.Obj, error) {
	o := applyOptions(opts)

	p := &Parser{
		file:    file,
		globals: newGlobalTable(),
		opts:    o,
	}
	p.mgr = include.NewManager(o.Loader, o.MaxIncludeDepth, o.Logger)

	return p.run(ctx, source)
}

// run parses source as a complete file: a top-level binding* against a
// fresh root object, per §4.5's "fresh global namespace and empty scope
// chain" rule for each file a parse touches (top-level or included).
func (p *Parser) run(ctx context.Context, source string) (*value.Obj, error) {
	p.source = source
	p.lex = lexer.New([]rune(source), p.file)

	if err := p.next(); err != nil {
		return nil, p.wrap(err)
	}

	root := value.NewObj()
	p.curObj = root

	if err := p.parseBindings(ctx, root, token.EOF); err != nil {
		return nil, p.wrap(err)
	}

	if p.cur.Kind != token.EOF {
		return nil, p.wrap(errs.ErrUnexpectedToken.With(slog.String("token", p.cur.String())))
	}

	root.SetGlobals(p.globals.entries())

	return root, nil
}

// next advances the lookahead token, recording the lexer's failure
// position (if any) so wrap can report it accurately even though p.cur
// itself does not advance on error.
func (p *Parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		p.errLine, p.errCol = p.lex.Position()
		p.haveErrPos = true

		return err
	}

	p.cur = tok

	return nil
}

// expect consumes the current token if it has kind k, otherwise fails.
func (p *Parser) expect(k token.Kind) error {
	if p.cur.Kind != k {
		return errs.ErrUnexpectedToken.With(
			slog.String("want", k.String()),
			slog.String("got", p.cur.String()),
		)
	}

	return p.next()
}

// enter increments the container nesting depth, failing if the configured
// limit is exceeded. Each successful enter must be paired with a leave.
func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxNestingDepth {
		return errs.ErrMaxDepthExceeded.With(slog.Int("depth", p.depth))
	}

	return nil
}

func (p *Parser) leave() { p.depth-- }

// wrap turns an internal error into the rich *errs.ParseError returned
// across the package boundary, attaching the position of the token active
// when the error was raised (or the lexer's failure position, if the
// error came from tokenizing rather than parsing).
func (p *Parser) wrap(err error) error {
	if err == nil {
		return nil
	}

	var e *errs.Error
	if !errors.As(err, &e) {
		e = errs.From(err)
	}

	line, col := p.cur.Line, p.cur.Col
	if p.haveErrPos {
		line, col = p.errLine, p.errCol
	}

	return errs.NewParseError(e, p.file, line, col).WithSource(p.source)
}
