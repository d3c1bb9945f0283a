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

// Scheme is a polymorphic type: a monotype quantified over a set of type-variables.
//
// The quantified set is not required to match the free type-variables of the body.
type Scheme struct {
	Vars VarSet
	Body Type
}

// Create a non-generalized scheme for t.
func Mono(t Type) Scheme { return Scheme{Vars: EmptyVarSet, Body: t} }

// Create a scheme for t, quantified over vars.
func Forall(vars []TypeVar, t Type) Scheme { return Scheme{Vars: NewVarSet(vars...), Body: t} }

// IsMono returns true if the scheme does not quantify any type-variables.
func (s Scheme) IsMono() bool { return s.Vars.Len() == 0 }

// FreeVars returns the type-variables in the body of s which are not quantified.
func (s Scheme) FreeVars() VarSet { return Free(s.Body).Difference(s.Vars) }

// FreeVarer is implemented by type-environments.
type FreeVarer interface {
	FreeVars() VarSet
}

// Generalize quantifies t over its free type-variables, excluding type-variables which are
// free in env. Type-variables still referenced by env are constrained by the enclosing scope
// and must not be generalized.
func Generalize(t Type, env FreeVarer) Scheme {
	vars := Free(t)
	if env != nil {
		vars = vars.Difference(env.FreeVars())
	}
	return Scheme{Vars: vars, Body: t}
}

// Instantiate replaces each quantified type-variable of s with a distinct type-variable
// allocated by fresh.
//
// All replacements are allocated before the body is rewritten, so a fresh type-variable which
// shares an id with a quantified type-variable is never substituted again.
func Instantiate(s Scheme, fresh func() TypeVar) Type {
	if s.IsMono() {
		return s.Body
	}
	mapping := make(map[TypeVar]Type, s.Vars.Len())
	s.Vars.Range(func(v TypeVar) bool {
		mapping[v] = &Var{Id: fresh()}
		return true
	})
	return Substitute(s.Body, mapping)
}
