// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// parse provides a parser for lambda-calculus expressions and type schemes.
//
// Expressions:
//
//  x                      variable
//  e0 e1                  application (left-associative)
//  lambda x . e           abstraction (also `λx. e` or `\x. e`)
//  let x = e0 in e1       let-binding
//  (e)
//
// Types:
//
//  forall a b. t          quantified scheme (also `∀a b. t`)
//  t0 -> t1               function type (right-associative; also `t0 to t1` or `t0 → t1`)
//  List a                 type application of a capitalized constructor
//  a                      type-variable
//  (t)
package parse

import (
	"github.com/wdamron/algj/ast"
	"github.com/wdamron/algj/types"
)

type parser struct {
	tokens []Token
	pos    int
}

func newParser(src string) (*parser, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

func (p *parser) current() Token { return p.tokens[p.pos] }

func (p *parser) advance() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != EOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind, expected string) (Token, error) {
	tok := p.advance()
	if tok.Kind != kind {
		return tok, unexpected(tok, expected)
	}
	return tok, nil
}

func (p *parser) finish() error {
	if tok := p.current(); tok.Kind != EOF {
		return &Error{Kind: TrailingTokens, Offset: tok.Offset, Found: tok.String()}
	}
	return nil
}

func unexpected(tok Token, expected string) *Error {
	if tok.Kind == EOF {
		return &Error{Kind: UnexpectedEOF, Offset: tok.Offset, Expected: expected}
	}
	return &Error{Kind: UnexpectedToken, Offset: tok.Offset, Found: tok.String(), Expected: expected}
}

// Expr parses a single expression.
func Expr(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return e, nil
}

func isVarToken(kind TokenKind) bool { return kind == Ident || kind == CapIdent }

func (p *parser) expr() (ast.Expr, error) {
	switch tok := p.current(); tok.Kind {
	case Lambda:
		p.advance()
		arg := p.advance()
		if !isVarToken(arg.Kind) {
			return nil, unexpected(arg, "a variable")
		}
		if _, err := p.expect(Dot, "'.'"); err != nil {
			return nil, err
		}
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Func{ArgName: arg.Text, Body: body}, nil

	case Let:
		p.advance()
		name := p.advance()
		if !isVarToken(name.Kind) {
			return nil, unexpected(name, "a variable")
		}
		if _, err := p.expect(Equals, "'='"); err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(In, "'in'"); err != nil {
			return nil, err
		}
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.Let{Var: name.Text, Value: value, Body: body}, nil

	case Ident, CapIdent, LParen:
		return p.call()

	default:
		return nil, unexpected(tok, "'lambda', 'let', '(', or a variable")
	}
}

func (p *parser) call() (ast.Expr, error) {
	e, err := p.atom()
	if err != nil {
		return nil, err
	}
	for kind := p.current().Kind; isVarToken(kind) || kind == LParen; kind = p.current().Kind {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		e = &ast.Call{Func: e, Arg: arg}
	}
	return e, nil
}

func (p *parser) atom() (ast.Expr, error) {
	tok := p.advance()
	switch tok.Kind {
	case Ident, CapIdent:
		return &ast.Var{Name: tok.Text}, nil
	case LParen:
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	}
	return nil, unexpected(tok, "'(' or a variable")
}

// TypeParser parses type schemes. Free type-variables with the same name are assigned the
// same id across all schemes parsed by a TypeParser; quantified type-variables always receive
// fresh ids.
//
// A TypeParser cannot be used concurrently.
type TypeParser struct {
	// Ids of free type-variables, by name
	Vars   map[string]types.TypeVar
	NextId types.TypeVar
}

// Create a type parser which allocates ids starting from 0.
func NewTypeParser() *TypeParser {
	return &TypeParser{Vars: make(map[string]types.TypeVar)}
}

// Scheme parses a type scheme with a new TypeParser.
func Scheme(src string) (types.Scheme, error) { return NewTypeParser().Scheme(src) }

// Type parses a monotype with a new TypeParser.
func Type(src string) (types.Type, error) {
	s, err := NewTypeParser().Scheme(src)
	if err != nil {
		return nil, err
	}
	if !s.IsMono() {
		return nil, &Error{Kind: UnexpectedToken, Found: tokenNames[Forall], Expected: "a monotype"}
	}
	return s.Body, nil
}

// Scheme parses a type scheme.
func (tp *TypeParser) Scheme(src string) (types.Scheme, error) {
	p, err := newParser(src)
	if err != nil {
		return types.Scheme{}, err
	}
	sp := schemeParser{parser: p, tp: tp}
	s, err := sp.scheme()
	if err != nil {
		return types.Scheme{}, err
	}
	if err := p.finish(); err != nil {
		return types.Scheme{}, err
	}
	return s, nil
}

type schemeParser struct {
	*parser
	tp    *TypeParser
	bound map[string]types.TypeVar
}

func (tp *TypeParser) fresh() types.TypeVar {
	id := tp.NextId
	tp.NextId++
	return id
}

func (p *schemeParser) scheme() (types.Scheme, error) {
	if p.current().Kind != Forall {
		t, err := p.arrow()
		if err != nil {
			return types.Scheme{}, err
		}
		return types.Mono(t), nil
	}
	p.advance()
	p.bound = make(map[string]types.TypeVar)
	var vars []types.TypeVar
	for p.current().Kind == Ident {
		name := p.advance().Text
		if _, exists := p.bound[name]; exists {
			continue
		}
		id := p.tp.fresh()
		p.bound[name] = id
		vars = append(vars, id)
	}
	if len(vars) == 0 {
		return types.Scheme{}, unexpected(p.current(), "a type-variable")
	}
	if _, err := p.expect(Dot, "'.'"); err != nil {
		return types.Scheme{}, err
	}
	t, err := p.arrow()
	if err != nil {
		return types.Scheme{}, err
	}
	return types.Forall(vars, t), nil
}

func (p *schemeParser) arrow() (types.Type, error) {
	from, err := p.app()
	if err != nil {
		return nil, err
	}
	if p.current().Kind != Arrow {
		return from, nil
	}
	p.advance()
	to, err := p.arrow()
	if err != nil {
		return nil, err
	}
	return types.NewArrow(from, to), nil
}

func (p *schemeParser) app() (types.Type, error) {
	tok := p.current()
	if tok.Kind != CapIdent {
		return p.atom()
	}
	p.advance()
	args := types.EmptyTypeList
	for kind := p.current().Kind; kind == Ident || kind == CapIdent || kind == LParen; kind = p.current().Kind {
		arg, err := p.atom()
		if err != nil {
			return nil, err
		}
		args = args.Append(arg)
	}
	return &types.App{Const: tok.Text, Args: args}, nil
}

func (p *schemeParser) atom() (types.Type, error) {
	tok := p.advance()
	switch tok.Kind {
	case Ident:
		return types.NewVar(p.lookup(tok.Text)), nil
	case CapIdent:
		return types.NewConst(tok.Text), nil
	case LParen:
		t, err := p.arrow()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RParen, "')'"); err != nil {
			return nil, err
		}
		return t, nil
	}
	return nil, unexpected(tok, "'(', a type constructor, or a type-variable")
}

func (p *schemeParser) lookup(name string) types.TypeVar {
	if id, ok := p.bound[name]; ok {
		return id
	}
	if id, ok := p.tp.Vars[name]; ok {
		return id
	}
	id := p.tp.fresh()
	p.tp.Vars[name] = id
	return id
}
