// Package value implements the OVER data model of §3: the immutable typed
// value tree (Null, Bool, Int, Frac, Char, Str, Arr, Tup, Obj), structural
// equality, and the type inference/join lattice of §4.3. Containers use
// shared ownership (a Value holding an Arr/Tup/Obj carries a pointer to it,
// so copying a Value aliases rather than deep-copies) per the concurrency
// model of §5.
package value

import (
	"math/big"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/numeric"
)

// Kind identifies the variant of a Value.
type Kind int

// Value variants, per §3.
const (
	KNull Kind = iota
	KBool
	KInt
	KFrac
	KChar
	KStr
	KArr
	KTup
	KObj
)

func (k Kind) String() string {
	switch k {
	case KNull:
		return "Null"
	case KBool:
		return "Bool"
	case KInt:
		return "Int"
	case KFrac:
		return "Frac"
	case KChar:
		return "Char"
	case KStr:
		return "Str"
	case KArr:
		return "Arr"
	case KTup:
		return "Tup"
	case KObj:
		return "Obj"
	default:
		return "Unknown"
	}
}

// Value is the tagged union described in §3. Exactly one payload field is
// meaningful, selected by Kind. Once constructed, a Value is never
// mutated; it may be freely copied and shared.
type Value struct {
	kind Kind

	b bool
	i *big.Int
	f *big.Rat
	c rune
	s string

	arr *Arr
	tup *Tup
	obj *Obj
}

// Kind returns the value's variant.
func (v Value) Kind() Kind { return v.kind }

// Constructors.

// Null returns the Null value.
func Null() Value { return Value{kind: KNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KBool, b: b} }

// Int wraps an arbitrary-precision signed integer.
func Int(i *big.Int) Value { return Value{kind: KInt, i: i} }

// Frac wraps an exact rational. The caller is responsible for having
// obtained r from math/big.Rat, which always keeps r reduced with a
// positive denominator, satisfying invariant 1 of §3.
func Frac(r *big.Rat) Value { return Value{kind: KFrac, f: r} }

// Char wraps a single Unicode scalar.
func Char(r rune) Value { return Value{kind: KChar, c: r} }

// Str wraps a Unicode scalar sequence.
func Str(s string) Value { return Value{kind: KStr, s: s} }

// FromArr wraps a pre-built Arr.
func FromArr(a *Arr) Value { return Value{kind: KArr, arr: a} }

// FromTup wraps a pre-built Tup.
func FromTup(t *Tup) Value { return Value{kind: KTup, tup: t} }

// FromObj wraps an Obj.
func FromObj(o *Obj) Value { return Value{kind: KObj, obj: o} }

// Accessors. Each As* reports ok=false if the value is not of that kind.

func (v Value) AsBool() (bool, bool)       { return v.b, v.kind == KBool }
func (v Value) AsInt() (*big.Int, bool)    { return v.i, v.kind == KInt }
func (v Value) AsFrac() (*big.Rat, bool)   { return v.f, v.kind == KFrac }
func (v Value) AsChar() (rune, bool)       { return v.c, v.kind == KChar }
func (v Value) AsStr() (string, bool)      { return v.s, v.kind == KStr }
func (v Value) AsArr() (*Arr, bool)        { return v.arr, v.kind == KArr }
func (v Value) AsTup() (*Tup, bool)        { return v.tup, v.kind == KTup }
func (v Value) AsObj() (*Obj, bool)        { return v.obj, v.kind == KObj }

// IsNumeric reports whether v is an Int or Frac.
func (v Value) IsNumeric() bool { return v.kind == KInt || v.kind == KFrac }

// Type computes v's Type, consulting the stored inner type for Arr and the
// element type vector for Tup.
func (v Value) Type() Type {
	switch v.kind {
	case KNull:
		return simple(TNull)
	case KBool:
		return simple(TBool)
	case KInt:
		return simple(TInt)
	case KFrac:
		return simple(TFrac)
	case KChar:
		return simple(TChar)
	case KStr:
		return simple(TStr)
	case KArr:
		return ArrType(v.arr.InnerType())
	case KTup:
		return TupType(v.tup.InnerTypes())
	case KObj:
		return simple(TObj)
	default:
		return Any
	}
}

// AsRat returns v's numeric value promoted to a rational. ok is false if v
// is neither Int nor Frac.
func (v Value) AsRat() (*big.Rat, bool) {
	switch v.kind {
	case KInt:
		return numeric.RatFromInt(v.i), true
	case KFrac:
		return v.f, true
	default:
		return nil, false
	}
}

// Equal implements the structural equality rules of §4.3.
func (a Value) Equal(b Value) bool {
	// Cross-kind numeric equality: Int(a) == Frac(b) iff b is integral and
	// equals a.
	if a.kind == KInt && b.kind == KFrac {
		return numeric.IsIntegral(b.f) && b.f.Num().Cmp(a.i) == 0
	}

	if a.kind == KFrac && b.kind == KInt {
		return numeric.IsIntegral(a.f) && a.f.Num().Cmp(b.i) == 0
	}

	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KNull:
		return true
	case KBool:
		return a.b == b.b
	case KInt:
		return a.i.Cmp(b.i) == 0
	case KFrac:
		return a.f.Cmp(b.f) == 0
	case KChar:
		return a.c == b.c
	case KStr:
		return a.s == b.s
	case KArr:
		return a.arr.Equal(b.arr)
	case KTup:
		return a.tup.Equal(b.tup)
	case KObj:
		return a.obj.Equal(b.obj)
	default:
		return false
	}
}

// EqualInt reports whether v is numerically equal to n, per §4.3/§6.1's
// equality of a Value against a host integer type: an Int or an integral
// Frac compares equal to any int64 carrying the same value; every other
// kind compares unequal.
func (v Value) EqualInt(n int64) bool {
	switch v.kind {
	case KInt:
		return v.i.Cmp(big.NewInt(n)) == 0
	case KFrac:
		return numeric.IsIntegral(v.f) && v.f.Num().Cmp(big.NewInt(n)) == 0
	default:
		return false
	}
}

// arithmetic errors are surfaced via errs sentinels; helper used by the
// parser package's evaluator.

// CheckDivisor is a small guard shared by the parser's arithmetic so both
// Int and Frac division report the same sentinel.
func CheckDivisor(v Value) error {
	switch v.kind {
	case KInt:
		if v.i.Sign() == 0 {
			return errs.ErrDivideByZero.With()
		}
	case KFrac:
		if v.f.Sign() == 0 {
			return errs.ErrDivideByZero.With()
		}
	}

	return nil
}
