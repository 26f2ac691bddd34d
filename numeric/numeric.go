// Package numeric implements the arbitrary-precision numeric core described
// in the OVER data model: signed unbounded integers, exact reduced
// rationals over those integers, and the literal-to-rational conversions
// the parser needs for decimal, fraction, and mixed-fraction number
// syntax. It is the one leaf package in this module grounded on the
// standard library rather than a third-party dependency — see DESIGN.md
// for why: math/big.Int and math/big.Rat already maintain the exact
// canonical-fraction invariant OVER requires (denominator positive,
// reduced to lowest terms), and no bignum/rational library appears
// anywhere in the retrieval pack.
package numeric

import (
	"math/big"

	"github.com/m-cat/over/errs"
)

// NewInt parses a base-10 signed integer literal. ok is false if s is not
// a valid integer (empty, or containing non-digit characters other than a
// single leading sign).
func NewInt(s string) (*big.Int, bool) {
	if s == "" {
		return nil, false
	}

	i, ok := new(big.Int).SetString(s, 10)

	return i, ok
}

// NewFraction builds the reduced rational num/den, rejecting a zero
// denominator with errs.ErrDivideByZero.
func NewFraction(num, den *big.Int) (*big.Rat, error) {
	if den.Sign() == 0 {
		return nil, errs.ErrDivideByZero.With()
	}

	return new(big.Rat).SetFrac(num, den), nil
}

// NewDecimal converts a decimal literal split into integer and fractional
// digit strings into the exact rational
//
//	sign * (D * 10^|F| + F) / 10^|F|
//
// per §4.1. Either intPart or fracPart (but not both) may be empty.
func NewDecimal(negative bool, intPart, fracPart string) (*big.Rat, error) {
	if intPart == "" && fracPart == "" {
		return nil, errs.ErrMalformedNumber.With()
	}

	whole := new(big.Int)
	if intPart != "" {
		w, ok := new(big.Int).SetString(intPart, 10)
		if !ok {
			return nil, errs.ErrMalformedNumber.With()
		}

		whole = w
	}

	den := big.NewInt(1)
	frac := new(big.Int)

	if fracPart != "" {
		f, ok := new(big.Int).SetString(fracPart, 10)
		if !ok {
			return nil, errs.ErrMalformedNumber.With()
		}

		frac = f
		den = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(len(fracPart))), nil)
	}

	num := new(big.Int).Mul(whole, den)
	num.Add(num, frac)

	if negative {
		num.Neg(num)
	}

	return new(big.Rat).SetFrac(num, den), nil
}

// NewMixed builds the rational for a mixed-fraction literal `A<sep>B/C`
// (where <sep> is ',', '+', or '-'): sign(A) * (|A| + B/C), C != 0, per
// §4.1's "historical" mixed literal form.
func NewMixed(negative bool, whole, num, den string) (*big.Rat, error) {
	w, ok := new(big.Int).SetString(whole, 10)
	if !ok {
		return nil, errs.ErrMalformedNumber.With()
	}

	n, ok := new(big.Int).SetString(num, 10)
	if !ok {
		return nil, errs.ErrMalformedNumber.With()
	}

	d, ok := new(big.Int).SetString(den, 10)
	if !ok {
		return nil, errs.ErrMalformedNumber.With()
	}

	if d.Sign() == 0 {
		return nil, errs.ErrDivideByZero.With()
	}

	frac := new(big.Rat).SetFrac(n, d)
	result := new(big.Rat).SetInt(w)
	result.Add(result, frac)

	if negative {
		result.Neg(result)
	}

	return result, nil
}

// IsIntegral reports whether r has denominator 1.
func IsIntegral(r *big.Rat) bool {
	return r.IsInt()
}

// RatFromInt promotes an integer to a rational with denominator 1.
func RatFromInt(i *big.Int) *big.Rat {
	return new(big.Rat).SetInt(i)
}

// DivMod-by-zero guarded integer operations used by the evaluator's
// arithmetic on Int/Int operands.

// Quotient returns a/b as an exact rational (Int / Int always yields Frac
// per §4.4's arithmetic promotion, even when the division is exact — the
// caller demotes to Int only when the surface syntax requires it, which
// OVER's grammar never does: '/' is always a Frac-producing operator).
func Quotient(a, b *big.Int) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, errs.ErrDivideByZero.With()
	}

	return new(big.Rat).SetFrac(a, b), nil
}

// Modulo returns a % b using truncated division (Go's native big.Int.Rem
// semantics, sign follows the dividend), erroring on b == 0.
func Modulo(a, b *big.Int) (*big.Int, error) {
	if b.Sign() == 0 {
		return nil, errs.ErrModuloByZero.With()
	}

	return new(big.Int).Rem(a, b), nil
}

// FracQuotient divides two rationals, erroring when the divisor is zero.
func FracQuotient(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, errs.ErrDivideByZero.With()
	}

	return new(big.Rat).Quo(a, b), nil
}
