package parser

import (
	"context"
	"log/slog"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/token"
	"github.com/m-cat/over/value"
)

// parseArr implements arr := '[' expr* ']', per §4.4.
func (p *Parser) parseArr(ctx context.Context) (value.Value, error) {
	if err := p.enter(); err != nil {
		return value.Value{}, err
	}
	defer p.leave()

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	var elems []value.Value

	for p.cur.Kind != token.RBrack {
		if p.cur.Kind == token.EOF {
			return value.Value{}, errs.ErrUnbalancedBraket.With()
		}

		v, err := p.parseExpr(ctx)
		if err != nil {
			return value.Value{}, err
		}

		elems = append(elems, v)
	}

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	arr, idx, ok := value.NewArr(elems)
	if !ok {
		return value.Value{}, errs.ErrArrayJoin.With(slog.Int("index", idx))
	}

	return value.FromArr(arr), nil
}

// parseTup implements tup := '(' expr* ')'; no type join is performed.
func (p *Parser) parseTup(ctx context.Context) (value.Value, error) {
	if err := p.enter(); err != nil {
		return value.Value{}, err
	}
	defer p.leave()

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	var elems []value.Value

	for p.cur.Kind != token.RParen {
		if p.cur.Kind == token.EOF {
			return value.Value{}, errs.ErrUnbalancedBraket.With()
		}

		v, err := p.parseExpr(ctx)
		if err != nil {
			return value.Value{}, err
		}

		elems = append(elems, v)
	}

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	return value.FromTup(value.NewTup(elems)), nil
}

// parseObj implements obj := '{' binding* '}', pushing a fresh scope
// backed by a new Obj for the body's bindings.
func (p *Parser) parseObj(ctx context.Context) (value.Value, error) {
	if err := p.enter(); err != nil {
		return value.Value{}, err
	}
	defer p.leave()

	if err := p.next(); err != nil {
		return value.Value{}, err
	}

	obj := value.NewObj()

	prevObj := p.curObj
	p.curObj = obj

	err := p.parseBindings(ctx, obj, token.RBrace)

	p.curObj = prevObj

	if err != nil {
		return value.Value{}, err
	}

	if err := p.expect(token.RBrace); err != nil {
		return value.Value{}, err
	}

	return value.FromObj(obj), nil
}
