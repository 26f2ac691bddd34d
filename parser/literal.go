package parser

import (
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/numeric"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// numberFromToken converts a lexed Int/Frac/Dec token into its Value, per
// the conversions of §4.1.
func numberFromToken(tok token.Token) (value.Value, error) {
	switch tok.Kind {
	case token.Int:
		s := tok.IntPart
		if tok.Neg {
			s = "-" + s
		}

		i, ok := numeric.NewInt(s)
		if !ok {
			return value.Value{}, errs.ErrMalformedNumber.With(slog.String("literal", tok.Lexeme))
		}

		return value.Int(i), nil

	case token.Frac:
		if tok.MixedSep != 0 {
			r, err := numeric.NewMixed(tok.Neg, tok.IntPart, tok.FracPart, tok.DenPart)
			if err != nil {
				return value.Value{}, err
			}

			return value.Frac(r), nil
		}

		num, ok := numeric.NewInt(tok.IntPart)
		if !ok {
			return value.Value{}, errs.ErrMalformedNumber.With(slog.String("literal", tok.Lexeme))
		}

		den, ok := numeric.NewInt(tok.DenPart)
		if !ok {
			return value.Value{}, errs.ErrMalformedNumber.With(slog.String("literal", tok.Lexeme))
		}

		if tok.Neg {
			num.Neg(num)
		}

		r, err := numeric.NewFraction(num, den)
		if err != nil {
			return value.Value{}, err
		}

		return value.Frac(r), nil

	case token.Dec:
		r, err := numeric.NewDecimal(tok.Neg, tok.IntPart, tok.FracPart)
		if err != nil {
			return value.Value{}, err
		}

		return value.Frac(r), nil

	default:
		return value.Value{}, errs.ErrMalformedNumber.With()
	}
}
