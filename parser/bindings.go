package parser

import (
	"context"
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// parseBindings consumes binding* until it sees stop (token.EOF for the
// file root, token.RBrace for an object body), per §6.2's
// `binding := ( '@'? IDENT | '^' ) ':' expr`.
func (p *Parser) parseBindings(ctx context.Context, obj *value.Obj, stop token.Kind) error {
	sawParent := false

	for p.cur.Kind != stop {
		if p.cur.Kind == token.EOF {
			return errs.ErrUnbalancedBraket.With()
		}

		switch p.cur.Kind {
		case token.Caret:
			if sawParent {
				return errs.ErrMultipleParent.With()
			}

			sawParent = true

			line, col := p.cur.Line, p.cur.Col

			if err := p.next(); err != nil {
				return err
			}

			if err := p.expect(token.Colon); err != nil {
				return err
			}

			v, err := p.parseExpr(ctx)
			if err != nil {
				return err
			}

			parentObj, ok := v.AsObj()
			if !ok {
				return errs.ErrTypeMismatch.With(
					slog.String("want", "Obj"),
					slog.String("got", v.Kind().String()),
					slog.Int("line", line),
					slog.Int("col", col),
				)
			}

			obj.SetParent(parentObj)

		case token.At:
			if err := p.next(); err != nil {
				return err
			}

			if p.cur.Kind != token.Ident {
				return errs.ErrUnexpectedToken.With(slog.String("want", "identifier after '@'"))
			}

			name := p.cur.Lexeme

			if err := p.next(); err != nil {
				return err
			}

			if err := p.expect(token.Colon); err != nil {
				return err
			}

			v, err := p.parseExpr(ctx)
			if err != nil {
				return err
			}

			if p.globals.has(name) {
				return errs.ErrDuplicateGlobal.With(slog.String("name", name))
			}

			p.globals.set(name, v)

		case token.Ident:
			name := p.cur.Lexeme
			line, col := p.cur.Line, p.cur.Col

			if err := p.next(); err != nil {
				return err
			}

			if err := p.expect(token.Colon); err != nil {
				return err
			}

			v, err := p.parseExpr(ctx)
			if err != nil {
				return err
			}

			if obj.Has(name) {
				return errs.ErrDuplicateField.With(slog.String("name", name))
			}

			obj.Set(name, v, p.file, line, col)

		case token.Keyword:
			return errs.ErrReservedKeyword.With(slog.String("name", p.cur.Lexeme))

		default:
			return errs.ErrUnexpectedToken.With(slog.String("token", p.cur.String()))
		}
	}

	return nil
}
