package value

import (
	"iter"
	"sync/atomic"

	"github.com/m-cat/over/errs"
)

var objSeq atomic.Uint64

// field is one name/value pair of an Obj, in declaration order.
type field struct {
	name string
	val  Value
	file string
	line int
	col  int
}

// Source is the file/line/col a field was bound at, returned by
// GetWithSource for diagnostics (§3's "source location retained for
// diagnostics").
type Source struct {
	File string
	Line int
	Col  int
}

// Obj is an ordered, scoped collection of named fields with optional
// single inheritance, per §3. Fields are stored in insertion order; own
// fields shadow the parent's Get lookups (§4.5 dot-path resolution
// consults the parent chain but Iter, per the supplemented behavior in
// SPEC_FULL.md, walks only an object's own fields).
type Obj struct {
	id     uint64
	fields []field
	index  map[string]int
	parent *Obj

	globals []Global
}

// Global is one file-scoped `@name` binding. It is retained only on the
// root Obj a top-level (or Obj-kind include) parse returns, purely so the
// writer can round-trip global bindings; globals are never part of any
// Obj's own field set (see Set/Get below and §3's invariant 3).
type Global struct {
	Name string
	Val  Value
}

// SetGlobals attaches the file's ordered global bindings to o. Called by
// the parser once on the object it is about to return from a file-level
// parse.
func (o *Obj) SetGlobals(globals []Global) { o.globals = globals }

// Globals returns the global bindings attached via SetGlobals, in
// declaration order.
func (o *Obj) Globals() []Global { return o.globals }

// NewObj creates an empty object with no parent.
func NewObj() *Obj {
	return &Obj{
		id:    objSeq.Add(1),
		index: make(map[string]int),
	}
}

// ID returns a process-unique identity for this object, assigned at
// construction. Two objects with identical fields are still distinct
// objects; ID exists for diagnostic and cache-keying use, not for
// Value.Equal, which is purely structural.
func (o *Obj) ID() uint64 { return o.id }

// SetParent installs o's parent, per the `^` inheritance binding. It is an
// error to call this more than once on the same Obj (§7 ErrMultipleParent
// is raised by the parser before this would be reached twice).
func (o *Obj) SetParent(p *Obj) { o.parent = p }

// Parent returns o's parent, or nil if it has none.
func (o *Obj) Parent() *Obj { return o.parent }

// Set inserts or overwrites a field by name, recording its source
// position for diagnostics. The parser is responsible for rejecting
// duplicate field names (ErrDuplicateField) before ever calling Set
// twice with the same name.
func (o *Obj) Set(name string, v Value, file string, line, col int) {
	if i, ok := o.index[name]; ok {
		o.fields[i].val = v
		return
	}

	o.index[name] = len(o.fields)
	o.fields = append(o.fields, field{name: name, val: v, file: file, line: line, col: col})
}

// Has reports whether o (not its ancestors) declares name.
func (o *Obj) Has(name string) bool {
	_, ok := o.index[name]
	return ok
}

// Get resolves name against o's own fields, then walks the parent chain,
// per §4.5's non-global dot-path rule: lookups climb inheritance but never
// cross into an enclosing lexical scope.
func (o *Obj) Get(name string) (Value, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if i, ok := cur.index[name]; ok {
			return cur.fields[i].val, true
		}
	}

	return Value{}, false
}

// GetOwn resolves name against o's own fields only, ignoring the parent
// chain.
func (o *Obj) GetOwn(name string) (Value, bool) {
	if i, ok := o.index[name]; ok {
		return o.fields[i].val, true
	}

	return Value{}, false
}

// GetWithSource resolves name the same way Get does, additionally
// reporting the file/line/col the winning binding was declared at.
func (o *Obj) GetWithSource(name string) (Value, Source, bool) {
	for cur := o; cur != nil; cur = cur.parent {
		if i, ok := cur.index[name]; ok {
			f := cur.fields[i]
			return f.val, Source{File: f.file, Line: f.line, Col: f.col}, true
		}
	}

	return Value{}, Source{}, false
}

// MustGet is Get with a structured error instead of a bool, for callers
// that already know the name should resolve (e.g. re-lookups after
// binding).
func (o *Obj) MustGet(name string) (Value, error) {
	v, ok := o.Get(name)
	if !ok {
		return Value{}, errs.ErrUnresolvedName.With()
	}

	return v, nil
}

// Len returns the number of fields o declares itself, excluding ancestors.
func (o *Obj) Len() int { return len(o.fields) }

// Iter yields o's own fields (name, value) in declaration order,
// excluding any inherited from a parent.
func (o *Obj) Iter() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, f := range o.fields {
			if !yield(f.name, f.val) {
				return
			}
		}
	}
}

// Equal reports structural equality: same own fields (name and value,
// order-independent) and equal parents (both nil, or both non-nil and
// themselves Equal).
func (o *Obj) Equal(other *Obj) bool {
	if o == other {
		return true
	}

	if len(o.fields) != len(other.fields) {
		return false
	}

	for _, f := range o.fields {
		ov, ok := other.GetOwn(f.name)
		if !ok || !f.val.Equal(ov) {
			return false
		}
	}

	if (o.parent == nil) != (other.parent == nil) {
		return false
	}

	if o.parent != nil && !o.parent.Equal(other.parent) {
		return false
	}

	return true
}
