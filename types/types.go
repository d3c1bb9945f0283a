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

import (
	"strconv"
)

// ArrowName is the name of the built-in binary function-type constructor.
const ArrowName = "->"

// TypeVar uniquely identifies a type-variable within an inference run.
type TypeVar int

// String returns the printed form of a free type-variable.
func (v TypeVar) String() string { return "t" + strconv.Itoa(int(v)) }

// Type is the base interface for all monotypes.
type Type interface {
	TypeName() string
}

var (
	_ Type = (*Var)(nil)
	_ Type = (*App)(nil)
)

func (t *Var) TypeName() string { return "Var" }
func (t *App) TypeName() string { return "App" }

// Type-variable: `t0`
type Var struct {
	Id TypeVar
}

// Type application: `List Int`, `Int`, or `a -> b`
//
// A type constant is an application with no arguments.
type App struct {
	Const string
	Args  TypeList
}

// Create a type-variable with the given id.
func NewVar(id TypeVar) *Var { return &Var{Id: id} }

// Create a type application of the named constructor to args.
func NewApp(name string, args ...Type) *App {
	return &App{Const: name, Args: NewTypeList(args...)}
}

// Create a type constant: `Int`
func NewConst(name string) *App { return &App{Const: name, Args: EmptyTypeList} }

// Create a function type: `a -> b`
func NewArrow(from, to Type) *App { return NewApp(ArrowName, from, to) }

// IsArrow returns true if t is an application of the function-type constructor.
func IsArrow(t Type) bool {
	app, ok := t.(*App)
	return ok && app.Const == ArrowName && app.Args.Len() == 2
}

// Arity returns the number of arguments applied to the constructor.
func (t *App) Arity() int { return t.Args.Len() }

// Equal returns true if a and b are syntactically identical.
func Equal(a, b Type) bool {
	if a == b {
		return true
	}
	switch a := a.(type) {
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *App:
		b, ok := b.(*App)
		if !ok || a.Const != b.Const || a.Args.Len() != b.Args.Len() {
			return false
		}
		equal := true
		a.Args.Range(func(i int, t Type) bool {
			equal = Equal(t, b.Args.Get(i))
			return equal
		})
		return equal
	}
	return false
}
