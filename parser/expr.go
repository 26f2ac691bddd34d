package parser

import (
	"context"
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// parseExpr parses a full expression: expr := addExpr.
func (p *Parser) parseExpr(ctx context.Context) (value.Value, error) {
	return p.parseAdd(ctx)
}

// parseAdd implements addExpr := mulExpr ( ('+'|'-') mulExpr )*, requiring
// the operator to be adjacent to both operands (§4.2's adjacency rule): a
// whitespace gap before the operator terminates the expression, and a gap
// between the operator and its right operand is an error.
func (p *Parser) parseAdd(ctx context.Context) (value.Value, error) {
	left, err := p.parseMul(ctx)
	if err != nil {
		return value.Value{}, err
	}

	for (p.cur.Kind == token.Plus || p.cur.Kind == token.Minus) && p.cur.Adjacent {
		op := p.cur.Kind

		if err := p.next(); err != nil {
			return value.Value{}, err
		}

		if !p.cur.Adjacent {
			return value.Value{}, errs.ErrUnexpectedToken.With(
				slog.String("reason", "operator must be adjacent to its right operand"),
			)
		}

		right, err := p.parseMul(ctx)
		if err != nil {
			return value.Value{}, err
		}

		left, err = binaryOp(op, left, right)
		if err != nil {
			return value.Value{}, err
		}
	}

	return left, nil
}

// parseMul implements mulExpr := primary ( ('*'|'/'|'%') primary )*, with
// the same adjacency requirement as parseAdd.
func (p *Parser) parseMul(ctx context.Context) (value.Value, error) {
	left, err := p.parsePrimary(ctx)
	if err != nil {
		return value.Value{}, err
	}

	for p.cur.Kind.IsPriority() && p.cur.Adjacent {
		op := p.cur.Kind

		if err := p.next(); err != nil {
			return value.Value{}, err
		}

		if !p.cur.Adjacent {
			return value.Value{}, errs.ErrUnexpectedToken.With(
				slog.String("reason", "operator must be adjacent to its right operand"),
			)
		}

		right, err := p.parsePrimary(ctx)
		if err != nil {
			return value.Value{}, err
		}

		left, err = binaryOp(op, left, right)
		if err != nil {
			return value.Value{}, err
		}
	}

	return left, nil
}

// parsePrimary implements the primary production of §6.2.
func (p *Parser) parsePrimary(ctx context.Context) (value.Value, error) {
	switch p.cur.Kind {
	case token.Plus, token.Minus:
		return p.parseSignedNumber()

	case token.Int, token.Frac, token.Dec:
		return p.parseNumberLiteral()

	case token.Str:
		v := value.Str(p.cur.Lexeme)

		return v, p.next()

	case token.Char:
		runes := []rune(p.cur.Lexeme)

		var r rune
		if len(runes) > 0 {
			r = runes[0]
		}

		v := value.Char(r)

		return v, p.next()

	case token.Keyword:
		switch p.cur.Lexeme {
		case token.KwNull:
			return value.Null(), p.next()
		case token.KwTrue:
			return value.Bool(true), p.next()
		case token.KwFalse:
			return value.Bool(false), p.next()
		default:
			return value.Value{}, errs.ErrUnexpectedToken.With(slog.String("token", p.cur.String()))
		}

	case token.At, token.Ident:
		return p.parseRefOrDotted()

	case token.LBrack:
		return p.parseArr(ctx)

	case token.LParen:
		return p.parseTup(ctx)

	case token.LBrace:
		return p.parseObj(ctx)

	case token.Lt:
		return p.parseInclude(ctx)

	default:
		return value.Value{}, errs.ErrUnexpectedToken.With(slog.String("token", p.cur.String()))
	}
}

// parseSignedNumber handles a leading '+'/'-' at primary position, letting
// the lexer decide (via AbsorbSign) whether it starts a signed numeric
// literal.
func (p *Parser) parseSignedNumber() (value.Value, error) {
	tok, ok, err := p.lex.AbsorbSign(p.cur)
	if err != nil {
		return value.Value{}, err
	}

	if !ok {
		return value.Value{}, errs.ErrUnexpectedToken.With(
			slog.String("reason", "'+'/'-' not followed by a numeric literal"),
			slog.String("token", p.cur.String()),
		)
	}

	v, err := numberFromToken(tok)
	if err != nil {
		return value.Value{}, err
	}

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	return v, nil
}

func (p *Parser) parseNumberLiteral() (value.Value, error) {
	v, err := numberFromToken(p.cur)
	if err != nil {
		return value.Value{}, err
	}

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	return v, nil
}
