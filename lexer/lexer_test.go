package lexer_test

import (
	"testing"

	"github.com/m-cat/over/lexer"
	"github.com/m-cat/over/token"
)

func tokens(t *testing.T, src string) []token.Token {
	t.Helper()

	l := lexer.New([]rune(src), "<test>")

	var out []token.Token

	for {
		tok, err := l.Next()
		if err != nil {
			t.Fatalf("lexing %q: %v", src, err)
		}

		out = append(out, tok)

		if tok.Kind == token.EOF {
			return out
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}

	return out
}

func TestLexBasicBinding(t *testing.T) {
	toks := tokens(t, `a: 1`)
	got := kinds(toks)

	want := []token.Kind{token.Ident, token.Colon, token.Int, token.EOF}

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLexBareMinusBeforeAbsorption(t *testing.T) {
	// Next() alone never absorbs a sign into a numeric literal -- that
	// only happens when the parser calls AbsorbSign while expecting a
	// primary value (lexer.go's package doc). So a raw token stream for
	// "x: -1" is Ident, Colon, Minus, Int, EOF; Int itself carries no Neg.
	toks := tokens(t, `x: -1`)
	got := kinds(toks)

	want := []token.Kind{token.Ident, token.Colon, token.Minus, token.Int, token.EOF}

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if toks[3].Neg {
		t.Error("a bare Int token from Next() should never have Neg set")
	}
}

func TestLexAdjacentSignAbsorption(t *testing.T) {
	l := lexer.New([]rune(`x: -1`), "<test>")

	for i := 0; i < 2; i++ { // Ident, Colon
		if _, err := l.Next(); err != nil {
			t.Fatalf("lexing prefix: %v", err)
		}
	}

	sign, err := l.Next() // Minus
	if err != nil {
		t.Fatalf("lexing sign: %v", err)
	}

	if sign.Kind != token.Minus {
		t.Fatalf("expected Minus, got %v", sign.Kind)
	}

	tok, absorbed, err := l.AbsorbSign(sign)
	if err != nil {
		t.Fatalf("AbsorbSign: %v", err)
	}

	if !absorbed {
		t.Fatal("expected AbsorbSign to merge '-' into the following '1'")
	}

	if tok.Kind != token.Int || !tok.Neg {
		t.Errorf("got %v (Neg=%v), want a Neg Int token", tok.Kind, tok.Neg)
	}
}

func TestLexCommaBetweenDigitsIsNotADecimalPoint(t *testing.T) {
	// A comma is whitespace (§4.2), so "1,2,3" must lex the same as
	// "1 2 3": three Int tokens, never Dec("1.2") followed by Int(3). This
	// pins the array/tuple boundary case [1,2,3] == [1 2 3] (§8) at the
	// lexer level, where the ambiguity with the decimal-point grammar
	// actually lives.
	toks := tokens(t, `1,2,3`)
	got := kinds(toks)

	want := []token.Kind{token.Int, token.Int, token.Int, token.EOF}

	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}

	for i, lex := range []string{"1", "2", "3"} {
		if toks[i].IntPart != lex {
			t.Errorf("token %d: got IntPart %q, want %q", i, toks[i].IntPart, lex)
		}
	}
}

func TestLexDecimalPointStillWorks(t *testing.T) {
	// Only '.' commits to the decimal form now that ',' is reserved for
	// whitespace/mixed-fraction separation.
	toks := tokens(t, `1.5`)
	if toks[0].Kind != token.Dec {
		t.Fatalf("expected Dec token, got %v", toks[0].Kind)
	}
	if toks[0].IntPart != "1" || toks[0].FracPart != "5" {
		t.Errorf("got IntPart=%q FracPart=%q, want 1 and 5", toks[0].IntPart, toks[0].FracPart)
	}
}

func TestLexMixedFractionCommaSeparatorStillWorks(t *testing.T) {
	// The mixed-fraction form's ',' separator is unambiguous (it only
	// commits once a trailing "/den" is found) and must keep working
	// alongside the array-separator comma.
	toks := tokens(t, `5,1/4`)
	if toks[0].Kind != token.Frac {
		t.Fatalf("expected Frac token, got %v", toks[0].Kind)
	}
	if toks[0].IntPart != "5" || toks[0].FracPart != "1" || toks[0].DenPart != "4" {
		t.Errorf("got %+v, want whole=5 num=1 den=4", toks[0])
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := tokens(t, `"a\nb"`)
	if toks[0].Kind != token.Str {
		t.Fatalf("expected Str token, got %v", toks[0].Kind)
	}

	if toks[0].Lexeme != "a\nb" {
		t.Errorf("got %q, want %q", toks[0].Lexeme, "a\nb")
	}
}

func TestLexKeyword(t *testing.T) {
	toks := tokens(t, `null`)
	if toks[0].Kind != token.Keyword || toks[0].Lexeme != token.KwNull {
		t.Errorf("got %v %q, want Keyword %q", toks[0].Kind, toks[0].Lexeme, token.KwNull)
	}
}
