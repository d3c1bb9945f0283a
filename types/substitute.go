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

// Free returns the set of type-variables occurring anywhere in t.
func Free(t Type) VarSet { return collectFree(EmptyVarSet, t) }

func collectFree(vs VarSet, t Type) VarSet {
	switch t := t.(type) {
	case *Var:
		return vs.Add(t.Id)
	case *App:
		t.Args.Range(func(_ int, arg Type) bool {
			vs = collectFree(vs, arg)
			return true
		})
	}
	return vs
}

// Occurs returns true if v appears anywhere in t.
func Occurs(v TypeVar, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Id == v
	case *App:
		found := false
		t.Args.Range(func(_ int, arg Type) bool {
			found = Occurs(v, arg)
			return !found
		})
		return found
	}
	return false
}

// Canonicalize resolves t against an alias map. Aliased type-variables are replaced by the
// end of their alias chain, and type applications are canonicalized recursively.
//
// Subtrees without aliased type-variables are shared with t.
func Canonicalize(t Type, aliases Aliases) Type {
	switch t := t.(type) {
	case *Var:
		r := aliases.Resolve(t)
		if r == Type(t) {
			return t
		}
		return Canonicalize(r, aliases)
	case *App:
		args := t.Args.Map(func(arg Type) Type { return Canonicalize(arg, aliases) })
		if args == t.Args {
			return t
		}
		return &App{Const: t.Const, Args: args}
	}
	panic(unexpectedType(t))
}

// Replace substitutes target for every occurrence of v in t.
//
// Subtrees which do not contain v are shared with t.
func Replace(t Type, v TypeVar, target Type) Type {
	switch t := t.(type) {
	case *Var:
		if t.Id == v {
			return target
		}
		return t
	case *App:
		args := t.Args.Map(func(arg Type) Type { return Replace(arg, v, target) })
		if args == t.Args {
			return t
		}
		return &App{Const: t.Const, Args: args}
	}
	panic(unexpectedType(t))
}

// Substitute replaces type-variables in t simultaneously, using the given mapping. Types
// introduced by the mapping are not themselves rewritten.
func Substitute(t Type, mapping map[TypeVar]Type) Type {
	if len(mapping) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Var:
		if next, ok := mapping[t.Id]; ok {
			return next
		}
		return t
	case *App:
		args := t.Args.Map(func(arg Type) Type { return Substitute(arg, mapping) })
		if args == t.Args {
			return t
		}
		return &App{Const: t.Const, Args: args}
	}
	panic(unexpectedType(t))
}

func unexpectedType(t Type) string {
	if t == nil {
		return "unexpected type <nil>"
	}
	return "unexpected type " + t.TypeName()
}
