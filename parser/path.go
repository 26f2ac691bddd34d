package parser

import (
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/numeric"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// parseRefOrDotted implements `ref ( '.' (IDENT | UINT) )*` (ref itself
// covers the bare-reference case with zero dot segments), per §6.2.
func (p *Parser) parseRefOrDotted() (value.Value, error) {
	var head value.Value

	if p.cur.Kind == token.At {
		if err := p.next(); err != nil {
			return value.Value{}, err
		}

		if p.cur.Kind != token.Ident {
			return value.Value{}, errs.ErrUnexpectedToken.With(
				slog.String("want", "identifier after '@'"),
			)
		}

		name := p.cur.Lexeme

		v, ok := p.globals.get(name)
		if !ok {
			return value.Value{}, errs.ErrUnresolvedGlobal.With(slog.String("name", name))
		}

		head = v

		if err := p.next(); err != nil {
			return value.Value{}, err
		}
	} else {
		name := p.cur.Lexeme

		v, err := p.resolveLocal(name)
		if err != nil {
			return value.Value{}, err
		}

		head = v

		if err := p.next(); err != nil {
			return value.Value{}, err
		}
	}

	for p.cur.Kind == token.Dot {
		if err := p.next(); err != nil {
			return value.Value{}, err
		}

		seg := p.cur
		if seg.Kind != token.Ident && seg.Kind != token.Int {
			return value.Value{}, errs.ErrUnexpectedToken.With(
				slog.String("want", "identifier or integer after '.'"),
			)
		}

		next, err := p.indexValue(head, seg)
		if err != nil {
			return value.Value{}, err
		}

		head = next

		if err := p.next(); err != nil {
			return value.Value{}, err
		}
	}

	return head, nil
}

// resolveLocal looks up name against the object currently under
// construction, walking its parent chain, per §4.4's non-global
// resolution rule: no lexical walk beyond the current object (see
// DESIGN.md's decision on the open question in §9).
func (p *Parser) resolveLocal(name string) (value.Value, error) {
	if p.curObj != nil {
		if v, ok := p.curObj.Get(name); ok {
			return v, nil
		}
	}

	return value.Value{}, errs.ErrUnresolvedName.With(slog.String("name", name))
}

// indexValue applies one dot-path segment to head, per §4.4's "dot paths"
// rules: Obj segments must be identifiers (field names, following the
// parent chain); Arr/Tup segments are a non-negative integer, either
// written literally or held by a variable that resolves to one.
func (p *Parser) indexValue(head value.Value, seg token.Token) (value.Value, error) {
	switch head.Kind() {
	case value.KObj:
		if seg.Kind != token.Ident {
			return value.Value{}, errs.ErrWrongVariant.With(
				slog.String("want", "field name"),
				slog.String("kind", "Obj"),
			)
		}

		obj, _ := head.AsObj()

		v, ok := obj.Get(seg.Lexeme)
		if !ok {
			return value.Value{}, errs.ErrUnresolvedName.With(slog.String("name", seg.Lexeme))
		}

		return v, nil

	case value.KArr, value.KTup:
		idx, err := p.resolveIndex(seg)
		if err != nil {
			return value.Value{}, err
		}

		return indexSequence(head, idx)

	default:
		return value.Value{}, errs.ErrWrongVariant.With(slog.String("kind", head.Kind().String()))
	}
}

// resolveIndex extracts a non-negative int index from a dot-path segment:
// either a literal UINT token, or an identifier whose value resolves to a
// non-negative Int.
func (p *Parser) resolveIndex(seg token.Token) (int, error) {
	if seg.Kind == token.Int {
		if seg.Neg {
			return 0, errs.ErrNegativeIndex.With()
		}

		n, ok := numeric.NewInt(seg.IntPart)
		if !ok {
			return 0, errs.ErrMalformedNumber.With()
		}

		if !n.IsInt64() {
			return 0, errs.ErrIndexOutOfRange.With()
		}

		return int(n.Int64()), nil
	}

	v, err := p.resolveLocal(seg.Lexeme)
	if err != nil {
		return 0, err
	}

	iv, ok := v.AsInt()
	if !ok {
		return 0, errs.ErrWrongVariant.With(slog.String("want", "Int index"))
	}

	if iv.Sign() < 0 {
		return 0, errs.ErrNegativeIndex.With()
	}

	if !iv.IsInt64() {
		return 0, errs.ErrIndexOutOfRange.With()
	}

	return int(iv.Int64()), nil
}

func indexSequence(head value.Value, idx int) (value.Value, error) {
	switch head.Kind() {
	case value.KArr:
		arr, _ := head.AsArr()
		if idx < 0 || idx >= arr.Len() {
			return value.Value{}, errs.ErrIndexOutOfRange.With(slog.Int("index", idx))
		}

		return arr.At(idx), nil

	case value.KTup:
		tup, _ := head.AsTup()
		if idx < 0 || idx >= tup.Len() {
			return value.Value{}, errs.ErrIndexOutOfRange.With(slog.Int("index", idx))
		}

		return tup.At(idx), nil

	default:
		return value.Value{}, errs.ErrWrongVariant.With()
	}
}
