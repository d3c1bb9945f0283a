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

// ImpossibleUnificationError is returned when two types have different constructors or
// arities, and neither is a type-variable.
type ImpossibleUnificationError struct {
	A, B Type
}

func (e *ImpossibleUnificationError) Error() string {
	return "cannot unify types '" + TypeString(e.A) + "' and '" + TypeString(e.B) + "'"
}

// RecursiveTypeError is returned when a type-variable would be aliased to a type which
// contains the type-variable.
type RecursiveTypeError struct {
	Type Type
	Var  TypeVar
}

func (e *RecursiveTypeError) Error() string {
	return "unifying '" + TypeString(e.Type) + "' and '" + TypeString(&Var{Id: e.Var}) + "' would create a recursive type"
}
