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

package algj_test

import (
	"testing"

	. "github.com/wdamron/algj"
	. "github.com/wdamron/algj/construct"

	"github.com/wdamron/algj/ast"
)

func BenchmarkLetPolymorphism(b *testing.B) {
	env := testEnv()
	ctx := NewContext()

	x, y := Var("x"), Var("y")
	id, k := Var("id"), Var("k")

	expr := Let("id", Func("x", x),
		Let("k", FuncN([]string{"x", "y"}, x),
			CallN(Var("pair"),
				CallN(k, Call(id, Var("zero")), Call(id, Var("true"))),
				Call(Func("y", CallN(Var("if"), Call(id, y), Call(id, Var("zero")), Var("zero"))), Var("true")))))

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := ctx.Infer(expr, env); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeepApplication(b *testing.B) {
	env := testEnv()
	ctx := NewContext()

	var expr ast.Expr = Var("zero")
	for i := 0; i < 64; i++ {
		expr = CallN(Var("plus"), expr, Var("zero"))
	}

	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := ctx.Infer(expr, env); err != nil {
			b.Fatal(err)
		}
	}
}
