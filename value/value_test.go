package value_test

import (
	"math/big"
	"testing"

	"github.com/m-cat/over/value"
)

func TestValueEqualCrossKindIntFrac(t *testing.T) {
	i := value.Int(big.NewInt(2))
	f := value.Frac(big.NewRat(4, 2))

	if !i.Equal(f) {
		t.Error("Int(2) should equal Frac(4/2) per §4.3's numeric equality rule")
	}

	if !f.Equal(i) {
		t.Error("Equal should be symmetric")
	}
}

func TestValueEqualDistinguishesKinds(t *testing.T) {
	if value.Str("1").Equal(value.Int(big.NewInt(1))) {
		t.Error("Str and Int must never compare equal")
	}
}

func TestValueEqualInt(t *testing.T) {
	if !value.Int(big.NewInt(5)).EqualInt(5) {
		t.Error("Int(5) should EqualInt(5)")
	}

	if !value.Frac(big.NewRat(10, 2)).EqualInt(5) {
		t.Error("Frac(10/2) should EqualInt(5), since it reduces to an integral 5")
	}

	if value.Frac(big.NewRat(1, 2)).EqualInt(0) {
		t.Error("a non-integral Frac should never EqualInt anything")
	}

	if value.Str("5").EqualInt(5) {
		t.Error("Str should never EqualInt regardless of its textual content")
	}
}

func TestArrTypeInference(t *testing.T) {
	arr, idx, ok := value.NewArr([]value.Value{value.Int(big.NewInt(1)), value.Int(big.NewInt(2))})
	if !ok {
		t.Fatalf("expected join to succeed, failing element index %d", idx)
	}

	if arr.InnerType().Kind != value.TInt {
		t.Errorf("inner type = %v, want TInt", arr.InnerType())
	}
}

func TestArrJoinFailure(t *testing.T) {
	_, idx, ok := value.NewArr([]value.Value{value.Int(big.NewInt(1)), value.Str("x")})
	if ok {
		t.Fatal("expected join to fail for Int/Str array")
	}

	if idx != 1 {
		t.Errorf("failing index = %d, want 1", idx)
	}
}

func TestTupInnerTypes(t *testing.T) {
	tup := value.NewTup([]value.Value{value.Int(big.NewInt(1)), value.Str("x"), value.Bool(true)})

	types := tup.InnerTypes()
	want := []value.TypeKind{value.TInt, value.TStr, value.TBool}

	if len(types) != len(want) {
		t.Fatalf("InnerTypes() has %d entries, want %d", len(types), len(want))
	}

	for i, k := range want {
		if types[i].Kind != k {
			t.Errorf("InnerTypes()[%d].Kind = %v, want %v", i, types[i].Kind, k)
		}
	}
}

func TestObjParentChain(t *testing.T) {
	parent := value.NewObj()
	parent.Set("a", value.Int(big.NewInt(1)), "<test>", 1, 1)

	child := value.NewObj()
	child.SetParent(parent)
	child.Set("b", value.Int(big.NewInt(2)), "<test>", 1, 1)

	if _, ok := child.Get("a"); !ok {
		t.Error("child should see parent's fields via Get")
	}

	if _, ok := child.GetOwn("a"); ok {
		t.Error("GetOwn must not see inherited fields")
	}

	if child.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (own fields only)", child.Len())
	}
}

func TestObjGlobalsSeparateFromFields(t *testing.T) {
	root := value.NewObj()
	root.Set("x", value.Int(big.NewInt(1)), "<test>", 1, 1)
	root.SetGlobals([]value.Global{{Name: "shared", Val: value.Bool(true)}})

	if root.Has("shared") {
		t.Error("globals must not appear as ordinary fields")
	}

	if len(root.Globals()) != 1 || root.Globals()[0].Name != "shared" {
		t.Error("Globals() should return what SetGlobals stored")
	}
}

func TestObjGetWithSource(t *testing.T) {
	parent := value.NewObj()
	parent.Set("a", value.Int(big.NewInt(1)), "base.over", 3, 5)

	child := value.NewObj()
	child.SetParent(parent)
	child.Set("b", value.Int(big.NewInt(2)), "child.over", 7, 1)

	_, src, ok := child.GetWithSource("b")
	if !ok || src.File != "child.over" || src.Line != 7 || src.Col != 1 {
		t.Errorf("GetWithSource(b) = %+v, %v", src, ok)
	}

	// Inherited field: the source should point at the parent's file/line,
	// not the child's.
	_, src, ok = child.GetWithSource("a")
	if !ok || src.File != "base.over" || src.Line != 3 || src.Col != 5 {
		t.Errorf("GetWithSource(a) = %+v, %v, want parent's source", src, ok)
	}

	if _, _, ok := child.GetWithSource("nope"); ok {
		t.Error("GetWithSource should report ok=false for an unknown field")
	}
}

func TestCheckDivisor(t *testing.T) {
	if err := value.CheckDivisor(value.Int(big.NewInt(0))); err == nil {
		t.Error("expected error dividing by zero Int")
	}

	if err := value.CheckDivisor(value.Int(big.NewInt(1))); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
