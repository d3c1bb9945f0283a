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

package types

// Equivalent returns true if a and b are equal up to renaming of quantified type-variables.
//
// The bodies are compared in a single walk. The first pairing of quantified type-variables
// fixes the renaming; later pairings must agree with it in both directions. Type-variables
// which are not quantified must match by id. Both schemes must quantify the same number of
// type-variables; quantified type-variables absent from both bodies pair up arbitrarily.
func Equivalent(a, b Scheme) bool {
	if a.Vars.Len() != b.Vars.Len() {
		return false
	}
	eq := equivalence{
		a:   a.Vars,
		b:   b.Vars,
		fwd: make(map[TypeVar]TypeVar, a.Vars.Len()),
		rev: make(map[TypeVar]TypeVar, b.Vars.Len()),
	}
	return eq.types(a.Body, b.Body)
}

type equivalence struct {
	a, b     VarSet
	fwd, rev map[TypeVar]TypeVar
}

func (eq *equivalence) types(x, y Type) bool {
	switch x := x.(type) {
	case *Var:
		y, ok := y.(*Var)
		if !ok {
			return false
		}
		return eq.vars(x.Id, y.Id)

	case *App:
		y, ok := y.(*App)
		if !ok || x.Const != y.Const || x.Args.Len() != y.Args.Len() {
			return false
		}
		equal := true
		x.Args.Range(func(i int, arg Type) bool {
			equal = eq.types(arg, y.Args.Get(i))
			return equal
		})
		return equal
	}
	return false
}

func (eq *equivalence) vars(x, y TypeVar) bool {
	boundX, boundY := eq.a.Has(x), eq.b.Has(y)
	switch {
	case boundX && boundY:
		mx, okX := eq.fwd[x]
		my, okY := eq.rev[y]
		if !okX && !okY {
			eq.fwd[x], eq.rev[y] = y, x
			return true
		}
		return okX && okY && mx == y && my == x
	case !boundX && !boundY:
		return x == y
	default:
		return false
	}
}
