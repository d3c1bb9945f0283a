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

// construct provides terse constructors for types and expressions.
package construct

import (
	"github.com/wdamron/algj/ast"
	"github.com/wdamron/algj/types"
)

// Types

// Type-variable: `t0`
func TVar(id int) *types.Var {
	return types.NewVar(types.TypeVar(id))
}

// Type constant: `Int`, `Bool`, etc
func TConst(name string) *types.App {
	return types.NewConst(name)
}

// Type application: `List Int`
func TApp(name string, args ...types.Type) *types.App {
	return types.NewApp(name, args...)
}

// Function type: `a -> b`
func TArrow(from, to types.Type) *types.App {
	return types.NewArrow(from, to)
}

// Curried function type: `a -> b -> c`
func TArrows(first types.Type, rest ...types.Type) types.Type {
	if len(rest) == 0 {
		return first
	}
	return types.NewArrow(first, TArrows(rest[0], rest[1:]...))
}

// Non-generalized scheme: `Int -> Int`
func Mono(t types.Type) types.Scheme {
	return types.Mono(t)
}

// Quantified scheme: `forall a b. a -> b`
func Forall(vars []*types.Var, body types.Type) types.Scheme {
	ids := make([]types.TypeVar, len(vars))
	for i, tv := range vars {
		ids[i] = tv.Id
	}
	return types.Forall(ids, body)
}

// Expressions:

// Variable
func Var(name string) *ast.Var {
	return &ast.Var{Name: name}
}

// Application: `f x`
func Call(f ast.Expr, arg ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Arg: arg}
}

// Curried application: `f x y`
func CallN(f ast.Expr, args ...ast.Expr) ast.Expr {
	for _, arg := range args {
		f = &ast.Call{Func: f, Arg: arg}
	}
	return f
}

// Abstraction: `lambda x . x`
func Func(arg string, body ast.Expr) *ast.Func {
	return &ast.Func{ArgName: arg, Body: body}
}

// Curried abstraction: `lambda x . lambda y . x`
func FuncN(args []string, body ast.Expr) ast.Expr {
	for i := len(args) - 1; i >= 0; i-- {
		body = &ast.Func{ArgName: args[i], Body: body}
	}
	return body
}

// Let-binding: `let a = f x in e`
func Let(varName string, value ast.Expr, body ast.Expr) *ast.Let {
	return &ast.Let{Var: varName, Value: value, Body: body}
}
