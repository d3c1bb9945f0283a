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

package typeutil

import (
	"github.com/wdamron/algj/types"
)

// Unify resolves a and b to a common type, extending the alias map.
//
// Unification is not transactional. Aliases recorded before a failure are kept, so the
// state of the context should be discarded after an error.
func (ctx *CommonContext) Unify(a, b types.Type) error {
	a, b = ctx.Canonicalize(a), ctx.Canonicalize(b)

	if types.Equal(a, b) {
		return nil
	}

	if avar, ok := a.(*types.Var); ok {
		return ctx.bind(avar, b)
	}
	if bvar, ok := b.(*types.Var); ok {
		return ctx.bind(bvar, a)
	}

	aapp, bapp := a.(*types.App), b.(*types.App)
	if aapp.Const != bapp.Const || aapp.Args.Len() != bapp.Args.Len() {
		return &types.ImpossibleUnificationError{A: a, B: b}
	}
	var err error
	aapp.Args.Range(func(i int, arg types.Type) bool {
		err = ctx.Unify(arg, bapp.Args.Get(i))
		return err == nil
	})
	return err
}

// Alias an unaliased type-variable to a canonical type.
func (ctx *CommonContext) bind(tv *types.Var, t types.Type) error {
	// prevent cyclical types:
	if types.Occurs(tv.Id, t) {
		return &types.RecursiveTypeError{Type: t, Var: tv.Id}
	}
	if _, aliased := ctx.Aliases.Lookup(tv.Id); aliased {
		panic("type-variable " + tv.Id.String() + " was aliased before canonicalization")
	}
	ctx.Aliases = ctx.Aliases.Set(tv.Id, t)
	return nil
}
