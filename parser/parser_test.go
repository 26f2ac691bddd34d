package parser_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/m-cat/over/parser"
	"github.com/m-cat/over/value"
)

func parse(t *testing.T, src string) *value.Obj {
	t.Helper()

	obj, err := parser.Parse(context.Background(), src, "<test>")
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}

	return obj
}

func TestParseSimpleBindings(t *testing.T) {
	obj := parse(t, `a: 1 b: "x" c: true`)

	v, ok := obj.Get("a")
	if !ok {
		t.Fatal("missing field a")
	}

	i, ok := v.AsInt()
	if !ok || i.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("a = %v, want Int(1)", v)
	}
}

func TestParseDuplicateFieldRejected(t *testing.T) {
	_, err := parser.Parse(context.Background(), `a: 1 a: 2`, "<test>")
	if err == nil {
		t.Fatal("expected error for duplicate field")
	}
}

func TestParseParentInheritanceAndNonGlobalScope(t *testing.T) {
	src := `
@base: {
  x: 1
}
child: {
  ^: @base
  y: x+1
}
`
	obj := parse(t, src)

	child, ok := obj.Get("child")
	if !ok {
		t.Fatal("missing field child")
	}

	childObj, _ := child.AsObj()

	y, ok := childObj.Get("y")
	if !ok {
		t.Fatal("missing field y")
	}

	i, ok := y.AsInt()
	if !ok || i.Cmp(big.NewInt(2)) != 0 {
		t.Errorf("y = %v, want Int(2) (x resolved via parent chain)", y)
	}
}

func TestNonGlobalNamesDoNotLeakIntoInnerScopes(t *testing.T) {
	// outer's field must not be visible from inside nested, per §9: only
	// globals cross object-scope boundaries.
	src := `
outer: 1
nested: {
  y: outer
}
`
	_, err := parser.Parse(context.Background(), src, "<test>")
	if err == nil {
		t.Fatal("expected an unresolved-name error: outer must not leak into nested's scope")
	}
}

func TestGlobalsAreVisibleEverywhere(t *testing.T) {
	src := `
@shared: 5
a: {
  b: @shared+1
}
`
	obj := parse(t, src)

	a, _ := obj.Get("a")
	aObj, _ := a.AsObj()

	b, ok := aObj.Get("b")
	if !ok {
		t.Fatal("missing field b")
	}

	i, ok := b.AsInt()
	if !ok || i.Cmp(big.NewInt(6)) != 0 {
		t.Errorf("b = %v, want Int(6)", b)
	}
}

func TestArithmeticPromotion(t *testing.T) {
	cases := []struct {
		expr    string
		wantInt int64
		frac    bool
	}{
		{"x: 1+2", 3, false},
		{"x: 5%2", 1, false},
	}

	for _, c := range cases {
		obj := parse(t, c.expr)

		v, ok := obj.Get("x")
		if !ok {
			t.Fatalf("%s: missing field x", c.expr)
		}

		i, ok := v.AsInt()
		if !ok {
			t.Fatalf("%s: expected Int result, got %v", c.expr, v.Kind())
		}

		if i.Int64() != c.wantInt {
			t.Errorf("%s: got %d, want %d", c.expr, i.Int64(), c.wantInt)
		}
	}
}

func TestDivisionAlwaysProducesFrac(t *testing.T) {
	// "4/2" itself lexes as a single Frac literal (§4.1), not two Int
	// tokens joined by the division operator, so the division operator is
	// exercised here through an identifier operand instead.
	obj := parse(t, "a: 4\nx: a/2")

	v, _ := obj.Get("x")
	if v.Kind() != value.KFrac {
		t.Errorf("a/2 should produce a Frac, got %v", v.Kind())
	}
}

func TestArrayCommaSeparatorEquivalentToWhitespace(t *testing.T) {
	// §8 boundary case: [1,2,3] == [1 2 3]. The comma must act purely as a
	// separator here, not get absorbed into a neighboring digit run as a
	// decimal point.
	commaObj := parse(t, "a: [1,2,3]")
	spaceObj := parse(t, "a: [1 2 3]")

	commaArr, ok := commaObj.Get("a")
	if !ok {
		t.Fatal("missing field a (comma form)")
	}
	spaceArr, ok := spaceObj.Get("a")
	if !ok {
		t.Fatal("missing field a (space form)")
	}

	arr1, ok := commaArr.AsArr()
	if !ok {
		t.Fatalf("comma form: expected Arr, got %v", commaArr.Kind())
	}
	arr2, ok := spaceArr.AsArr()
	if !ok {
		t.Fatalf("space form: expected Arr, got %v", spaceArr.Kind())
	}

	if arr1.Len() != 3 || arr2.Len() != 3 {
		t.Fatalf("got lengths %d and %d, want 3 and 3", arr1.Len(), arr2.Len())
	}

	for i, want := range []int64{1, 2, 3} {
		e1 := arr1.At(i)
		e2 := arr2.At(i)

		if !e1.EqualInt(want) || !e2.EqualInt(want) {
			t.Errorf("element %d: got %v and %v, want Int(%d)", i, e1, e2, want)
		}
	}
}

func TestDotPathIndexing(t *testing.T) {
	src := `
t: (10 20 30)
a: t.1
`
	obj := parse(t, src)

	v, ok := obj.Get("a")
	if !ok {
		t.Fatal("missing field a")
	}

	i, ok := v.AsInt()
	if !ok || i.Int64() != 20 {
		t.Errorf("t.1 = %v, want Int(20)", v)
	}
}

func TestMaxNestingDepthExceeded(t *testing.T) {
	src := "a: [[[[[1]]]]]"

	_, err := parser.Parse(context.Background(), src, "<test>", parser.WithMaxNestingDepth(2))
	if err == nil {
		t.Fatal("expected max nesting depth error")
	}
}

func TestReservedKeywordAsFieldNameRejected(t *testing.T) {
	_, err := parser.Parse(context.Background(), `null: 1`, "<test>")
	if err == nil {
		t.Fatal("expected error using a reserved keyword as a field name")
	}
}
