package value

import "fmt"

// TypeKind identifies the variant of a Type.
type TypeKind int

// Type kinds mirroring the Value variants, plus Any as the lattice bottom.
const (
	TAny TypeKind = iota
	TNull
	TBool
	TInt
	TFrac
	TChar
	TStr
	TArr
	TTup
	TObj
)

// Type is the parallel tagged union over Value described in §3/§4.3: a
// lattice with Any at the bottom, compound Arr/Tup types carrying child
// types.
type Type struct {
	Kind  TypeKind
	Elem  *Type  // set when Kind == TArr
	Elems []Type // set when Kind == TTup
}

// Any is the lattice bottom, assignable to (and absorbed by) any type.
var Any = Type{Kind: TAny}

func simple(k TypeKind) Type { return Type{Kind: k} }

// ArrType constructs the type of a homogeneous array with the given
// element type.
func ArrType(elem Type) Type { return Type{Kind: TArr, Elem: &elem} }

// TupType constructs the type of a fixed-arity heterogeneous tuple.
func TupType(elems []Type) Type { return Type{Kind: TTup, Elems: elems} }

func (t Type) String() string {
	switch t.Kind {
	case TAny:
		return "Any"
	case TNull:
		return "Null"
	case TBool:
		return "Bool"
	case TInt:
		return "Int"
	case TFrac:
		return "Frac"
	case TChar:
		return "Char"
	case TStr:
		return "Str"
	case TArr:
		return fmt.Sprintf("Arr(%s)", t.Elem.String())
	case TTup:
		s := "Tup("
		for i, e := range t.Elems {
			if i > 0 {
				s += " "
			}
			s += e.String()
		}
		return s + ")"
	case TObj:
		return "Obj"
	default:
		return "Unknown"
	}
}

// HasAny reports whether t is Any or contains Any anywhere in its
// structure (an empty nested Arr, for instance).
func HasAny(t Type) bool {
	switch t.Kind {
	case TAny:
		return true
	case TArr:
		return HasAny(*t.Elem)
	case TTup:
		for _, e := range t.Elems {
			if HasAny(e) {
				return true
			}
		}

		return false
	default:
		return false
	}
}

// Equal reports structural type equality.
func Equal(a, b Type) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case TArr:
		return Equal(*a.Elem, *b.Elem)
	case TTup:
		if len(a.Elems) != len(b.Elems) {
			return false
		}

		for i := range a.Elems {
			if !Equal(a.Elems[i], b.Elems[i]) {
				return false
			}
		}

		return true
	default:
		return true
	}
}

// Join computes the least upper bound of a and b in the type lattice, per
// §4.3: Any absorbs into the other operand; compound types join
// element-wise; anything else requires exact equality. ok is false when no
// join exists (an array-element type mismatch).
func Join(a, b Type) (Type, bool) {
	if a.Kind == TAny {
		return b, true
	}

	if b.Kind == TAny {
		return a, true
	}

	if a.Kind != b.Kind {
		return Type{}, false
	}

	switch a.Kind {
	case TArr:
		elem, ok := Join(*a.Elem, *b.Elem)
		if !ok {
			return Type{}, false
		}

		return ArrType(elem), true
	case TTup:
		if len(a.Elems) != len(b.Elems) {
			return Type{}, false
		}

		elems := make([]Type, len(a.Elems))

		for i := range a.Elems {
			j, ok := Join(a.Elems[i], b.Elems[i])
			if !ok {
				return Type{}, false
			}

			elems[i] = j
		}

		return TupType(elems), true
	default:
		return a, true
	}
}

// JoinAll folds Join across a sequence of element types, per Arr's
// inner-type inference rule. An empty slice yields Any. index is the
// 0-based position of the first element that failed to join, valid only
// when ok is false.
func JoinAll(types []Type) (result Type, index int, ok bool) {
	result = Any

	for i, t := range types {
		joined, jok := Join(result, t)
		if !jok {
			return Type{}, i, false
		}

		result = joined
	}

	return result, -1, true
}

// MostSpecific returns the more specific of two types: Any never wins
// over a concrete type; for compound types the choice recurses
// element-wise. ok is false when the two types are structurally
// incompatible (different kind, and neither is Any).
func MostSpecific(a, b Type) (Type, bool) {
	if a.Kind == TAny {
		return b, true
	}

	if b.Kind == TAny {
		return a, true
	}

	if a.Kind != b.Kind {
		return Type{}, false
	}

	switch a.Kind {
	case TArr:
		elem, ok := MostSpecific(*a.Elem, *b.Elem)
		if !ok {
			return Type{}, false
		}

		return ArrType(elem), true
	case TTup:
		if len(a.Elems) != len(b.Elems) {
			return Type{}, false
		}

		elems := make([]Type, len(a.Elems))

		for i := range a.Elems {
			e, ok := MostSpecific(a.Elems[i], b.Elems[i])
			if !ok {
				return Type{}, false
			}

			elems[i] = e
		}

		return TupType(elems), true
	default:
		return a, true
	}
}
