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

package ast

import (
	"strings"
)

// ExprString returns a string representation of an expression.
func ExprString(e Expr) string {
	var sb strings.Builder
	exprString(&sb, e)
	return sb.String()
}

func exprString(sb *strings.Builder, e Expr) {
	switch et := e.(type) {
	case *Var:
		sb.WriteString(et.Name)

	case *Call:
		// Abstractions and let-bindings extend as far right as possible:
		switch et.Func.(type) {
		case *Func, *Let:
			sb.WriteByte('(')
			exprString(sb, et.Func)
			sb.WriteByte(')')
		default:
			exprString(sb, et.Func)
		}
		sb.WriteByte(' ')
		if _, ok := et.Arg.(*Var); ok {
			exprString(sb, et.Arg)
		} else {
			sb.WriteByte('(')
			exprString(sb, et.Arg)
			sb.WriteByte(')')
		}

	case *Func:
		sb.WriteString("lambda ")
		sb.WriteString(et.ArgName)
		sb.WriteString(" . ")
		exprString(sb, et.Body)

	case *Let:
		sb.WriteString("let ")
		sb.WriteString(et.Var)
		sb.WriteString(" = ")
		exprString(sb, et.Value)
		sb.WriteString(" in ")
		exprString(sb, et.Body)

	case nil:
		sb.WriteString("<nil>")
	}
}
