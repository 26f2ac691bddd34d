package value

import "iter"

// Arr is a homogeneous, dynamically-sized array, per §3. Its inner type is
// tracked separately from its elements so that an empty array still
// carries one: Any when built by NewArr, or the type given to NewEmptyArr.
// An Arr is never extended after construction.
type Arr struct {
	elems []Value
	inner Type
}

// NewArr builds an Arr from elems, inferring the inner type as the join of
// every element's type. An explicit empty-array inner type should be built
// with NewEmptyArr instead. ok is false, with idx set to the offending
// element, when the elements' types do not join.
func NewArr(elems []Value) (*Arr, int, bool) {
	types := make([]Type, len(elems))
	for i, e := range elems {
		types[i] = e.Type()
	}

	inner, idx, ok := JoinAll(types)
	if !ok {
		return nil, idx, false
	}

	return &Arr{elems: append([]Value(nil), elems...), inner: inner}, -1, true
}

// NewEmptyArr builds an empty array with an explicit element type.
func NewEmptyArr(inner Type) *Arr {
	return &Arr{inner: inner}
}

// Len returns the number of elements.
func (a *Arr) Len() int { return len(a.elems) }

// At returns the element at index i. The caller must ensure i is in range;
// bounds checking against §7's index-error taxonomy is the parser's job.
func (a *Arr) At(i int) Value { return a.elems[i] }

// InnerType returns the array's element type.
func (a *Arr) InnerType() Type { return a.inner }

// Iter yields (index, element) pairs in order.
func (a *Arr) Iter() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, e := range a.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Equal reports whether two arrays have the same inner type and elements
// in the same order.
func (a *Arr) Equal(b *Arr) bool {
	if a == b {
		return true
	}

	if !Equal(a.inner, b.inner) || len(a.elems) != len(b.elems) {
		return false
	}

	for i := range a.elems {
		if !a.elems[i].Equal(b.elems[i]) {
			return false
		}
	}

	return true
}

// Tup is a fixed-arity, heterogeneous tuple, per §3.
type Tup struct {
	elems []Value
}

// NewTup builds a Tup from elems.
func NewTup(elems []Value) *Tup {
	return &Tup{elems: append([]Value(nil), elems...)}
}

// Len returns the tuple's arity.
func (t *Tup) Len() int { return len(t.elems) }

// At returns the element at index i.
func (t *Tup) At(i int) Value { return t.elems[i] }

// Iter yields (index, element) pairs in order.
func (t *Tup) Iter() iter.Seq2[int, Value] {
	return func(yield func(int, Value) bool) {
		for i, e := range t.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// InnerTypes returns the tuple's element-type vector, one Type per element
// in order (§6.1's `inner_type_vec`).
func (t *Tup) InnerTypes() []Type {
	types := make([]Type, len(t.elems))
	for i, e := range t.elems {
		types[i] = e.Type()
	}

	return types
}

// Equal reports whether two tuples have the same arity and equal elements
// pairwise; tuple element types need not be considered separately since
// Value.Equal already accounts for them.
func (t *Tup) Equal(o *Tup) bool {
	if t == o {
		return true
	}

	if len(t.elems) != len(o.elems) {
		return false
	}

	for i := range t.elems {
		if !t.elems[i].Equal(o.elems[i]) {
			return false
		}
	}

	return true
}
