package parser

import (
	"context"
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/lexer"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// parseInclude implements include := '<' KIND? STRING '>', delegating the
// actual load and cycle bookkeeping to the include manager and evaluating
// the loaded bytes according to kind, per §4.5.
func (p *Parser) parseInclude(ctx context.Context) (value.Value, error) {
	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	kind := token.KwObj

	if p.cur.Kind == token.Keyword {
		switch p.cur.Lexeme {
		case token.KwObj, token.KwStr, token.KwArr, token.KwTup:
			kind = p.cur.Lexeme

			if err := p.next(); err != nil {
				return value.Value{}, err
			}
		default:
			return value.Value{}, errs.ErrUnexpectedToken.With(slog.String("token", p.cur.String()))
		}
	}

	if p.cur.Kind != token.Str {
		return value.Value{}, errs.ErrUnexpectedToken.With(slog.String("want", "include path string"))
	}

	path := p.cur.Lexeme

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	if err := p.expect(token.Gt); err != nil {
		return value.Value{}, err
	}

	canonical, data, slot, err := p.mgr.Acquire(ctx, p.file, path)
	if err != nil {
		return value.Value{}, err
	}

	defer p.mgr.Release()

	v, err := slot.Do(func() (value.Value, error) {
		return p.evalInclude(ctx, kind, canonical, string(data))
	})
	if err != nil {
		return value.Value{}, err
	}

	if v.Kind().String() != kind {
		return value.Value{}, errs.ErrIncludeKindMismatch.With(
			slog.String("want", kind),
			slog.String("got", v.Kind().String()),
			slog.String("path", canonical),
		)
	}

	return v, nil
}

// evalInclude turns the raw bytes of an included file into a Value
// according to its declared kind (§4.5, steps 4-7): Obj parses the file
// as an ordinary binding sequence with a fresh scope; Str is verbatim, no
// parsing; Arr/Tup parse the file as a bare whitespace-separated element
// sequence of that kind.
func (p *Parser) evalInclude(ctx context.Context, kind, file, source string) (value.Value, error) {
	switch kind {
	case token.KwStr:
		return value.Str(source), nil

	case token.KwObj:
		sub := &Parser{file: file, globals: newGlobalTable(), opts: p.opts, mgr: p.mgr}

		obj, err := sub.run(ctx, source)
		if err != nil {
			return value.Value{}, err
		}

		return value.FromObj(obj), nil

	case token.KwArr:
		return p.parseSequenceInclude(ctx, file, source, false)

	case token.KwTup:
		return p.parseSequenceInclude(ctx, file, source, true)

	default:
		return value.Value{}, errs.ErrUnexpectedToken.With(slog.String("kind", kind))
	}
}

// parseSequenceInclude parses source as a bare sequence of expressions
// (no surrounding brackets, no binding syntax), used for Arr/Tup-kind
// includes.
func (p *Parser) parseSequenceInclude(ctx context.Context, file, source string, tup bool) (value.Value, error) {
	sub := &Parser{file: file, globals: newGlobalTable(), opts: p.opts, mgr: p.mgr}
	sub.source = source
	sub.lex = lexer.New([]rune(source), file)
	sub.curObj = value.NewObj()

	if err := sub.next(); err != nil {
		return value.Value{}, sub.wrap(err)
	}

	var elems []value.Value

	for sub.cur.Kind != token.EOF {
		v, err := sub.parseExpr(ctx)
		if err != nil {
			return value.Value{}, sub.wrap(err)
		}

		elems = append(elems, v)
	}

	if tup {
		return value.FromTup(value.NewTup(elems)), nil
	}

	arr, idx, ok := value.NewArr(elems)
	if !ok {
		return value.Value{}, errs.ErrArrayJoin.With(slog.Int("index", idx))
	}

	return value.FromArr(arr), nil
}
