package parser

import (
	"log/slog"
	"math/big"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/numeric"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// binaryOp applies op to a and b following the type-promotion table of
// §4.4/§4.1: Int/Int arithmetic stays exact-integer where the operator
// permits it, any Int paired with a Frac promotes to Frac, '+' additionally
// overloads onto Char/Str concatenation and Arr concatenation, and '%' is
// defined only for Int/Int.
func binaryOp(op token.Kind, a, b value.Value) (value.Value, error) {
	switch op {
	case token.Plus:
		return applyPlus(a, b)
	case token.Minus:
		return applyMinus(a, b)
	case token.Star:
		return applyStar(a, b)
	case token.Slash:
		return applySlash(a, b)
	case token.Percent:
		return applyPercent(a, b)
	default:
		return value.Value{}, errs.ErrIncompatibleOperand.With()
	}
}

func applyPlus(a, b value.Value) (value.Value, error) {
	if ai, aok := a.AsInt(); aok {
		if bi, bok := b.AsInt(); bok {
			return value.Int(new(big.Int).Add(ai, bi)), nil
		}
	}

	if a.IsNumeric() && b.IsNumeric() {
		ar, _ := a.AsRat()
		br, _ := b.AsRat()

		return value.Frac(new(big.Rat).Add(ar, br)), nil
	}

	if ac, aok := a.AsChar(); aok {
		if bc, bok := b.AsChar(); bok {
			return value.Str(string(ac) + string(bc)), nil
		}

		if bs, bok := b.AsStr(); bok {
			return value.Str(string(ac) + bs), nil
		}
	}

	if as, aok := a.AsStr(); aok {
		if bc, bok := b.AsChar(); bok {
			return value.Str(as + string(bc)), nil
		}

		if bs, bok := b.AsStr(); bok {
			return value.Str(as + bs), nil
		}
	}

	if aArr, aok := a.AsArr(); aok {
		if bArr, bok := b.AsArr(); bok {
			return concatArr(aArr, bArr)
		}
	}

	return value.Value{}, incompatible(a, b)
}

func applyMinus(a, b value.Value) (value.Value, error) {
	if ai, aok := a.AsInt(); aok {
		if bi, bok := b.AsInt(); bok {
			return value.Int(new(big.Int).Sub(ai, bi)), nil
		}
	}

	if a.IsNumeric() && b.IsNumeric() {
		ar, _ := a.AsRat()
		br, _ := b.AsRat()

		return value.Frac(new(big.Rat).Sub(ar, br)), nil
	}

	return value.Value{}, incompatible(a, b)
}

func applyStar(a, b value.Value) (value.Value, error) {
	if ai, aok := a.AsInt(); aok {
		if bi, bok := b.AsInt(); bok {
			return value.Int(new(big.Int).Mul(ai, bi)), nil
		}
	}

	if a.IsNumeric() && b.IsNumeric() {
		ar, _ := a.AsRat()
		br, _ := b.AsRat()

		return value.Frac(new(big.Rat).Mul(ar, br)), nil
	}

	return value.Value{}, incompatible(a, b)
}

func applySlash(a, b value.Value) (value.Value, error) {
	if ai, aok := a.AsInt(); aok {
		if bi, bok := b.AsInt(); bok {
			r, err := numeric.Quotient(ai, bi)
			if err != nil {
				return value.Value{}, err
			}

			return value.Frac(r), nil
		}
	}

	if a.IsNumeric() && b.IsNumeric() {
		ar, _ := a.AsRat()
		br, _ := b.AsRat()

		r, err := numeric.FracQuotient(ar, br)
		if err != nil {
			return value.Value{}, err
		}

		return value.Frac(r), nil
	}

	return value.Value{}, incompatible(a, b)
}

func applyPercent(a, b value.Value) (value.Value, error) {
	ai, aok := a.AsInt()
	bi, bok := b.AsInt()

	if !aok || !bok {
		return value.Value{}, incompatible(a, b)
	}

	r, err := numeric.Modulo(ai, bi)
	if err != nil {
		return value.Value{}, err
	}

	return value.Int(r), nil
}

func concatArr(a, b *value.Arr) (value.Value, error) {
	elems := make([]value.Value, 0, a.Len()+b.Len())

	for _, v := range collect(a) {
		elems = append(elems, v)
	}

	for _, v := range collect(b) {
		elems = append(elems, v)
	}

	arr, idx, ok := value.NewArr(elems)
	if !ok {
		return value.Value{}, errs.ErrArrayJoin.With()
	}

	_ = idx

	return value.FromArr(arr), nil
}

func collect(a *value.Arr) []value.Value {
	out := make([]value.Value, 0, a.Len())
	for _, v := range a.Iter() {
		out = append(out, v)
	}

	return out
}

func incompatible(a, b value.Value) error {
	return errs.ErrIncompatibleOperand.With(
		slog.String("left", a.Kind().String()),
		slog.String("right", b.Kind().String()),
	)
}
