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

package prelude

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/wdamron/algj"
	"github.com/wdamron/algj/parse"
	"github.com/wdamron/algj/types"
)

func TestParseOrderAndShadowing(t *testing.T) {
	env, err := Parse([]byte(`
bindings:
  - name: x
    type: Int
  - name: id
    type: forall a. a -> a
  - name: x
    type: Bool
`))
	if err != nil {
		t.Fatal(err)
	}
	if env.Len() != 3 {
		t.Fatalf("expected 3 bindings, found %d", env.Len())
	}
	if s, _ := env.Lookup("x"); types.SchemeString(s) != "Bool" {
		t.Fatalf("x : %s", types.SchemeString(s))
	}
	if env.String() != "x : Int, id : forall a. a -> a, x : Bool" {
		t.Fatalf("env: %s", env)
	}
}

func TestParseSharesFreeVars(t *testing.T) {
	env, err := Parse([]byte(`
bindings:
  - name: r
    type: a
  - name: get
    type: Int -> a
`))
	if err != nil {
		t.Fatal(err)
	}
	if free := env.FreeVars(); free.Len() != 1 {
		t.Fatalf("expected a single free type-variable, found %v", free.Slice())
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("bindings:\n  - name: f\n    type: Int ->\n"))
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected a wrapped parse error, found %v", err)
	}
	t.Log(err)

	if _, err := Parse([]byte("bindings:\n  - type: Int\n")); err == nil {
		t.Fatalf("expected an error for a missing name")
	}
	if _, err := Parse([]byte("bindings: [")); err == nil {
		t.Fatalf("expected an error for invalid YAML")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prelude.yaml")
	if err := os.WriteFile(path, []byte("bindings:\n  - name: one\n    type: Int\n"), 0644); err != nil {
		t.Fatal(err)
	}
	env, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Lookup("one"); !ok {
		t.Fatalf("expected one to be bound")
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a not-exist error, found %v", err)
	}
}

func TestDefault(t *testing.T) {
	env := Default()
	for _, name := range []string{"true", "false", "null", "if", "plus", "cons", "pair", "fix"} {
		if _, ok := env.Lookup(name); !ok {
			t.Fatalf("expected %s to be bound", name)
		}
	}

	for _, tc := range []struct {
		src, expected string
	}{
		{"cons zero nil", "List Int"},
		{"let id = lambda x . x in pair (id zero) (id true)", "Pair Int Bool"},
		{"lambda p . plus (fst p) zero", "forall a. Pair Int a -> Int"},
		{"fix (lambda f . lambda n . if (eq n zero) zero (plus n (f (succ n))))", "Int -> Int"},
		{"lambda xs . if (null xs) nil (tail xs)", "forall a. List a -> List a"},
	} {
		expr, err := parse.Expr(tc.src)
		if err != nil {
			t.Fatalf("%s: %v", tc.src, err)
		}
		s, err := algj.Infer(expr, env)
		if err != nil {
			t.Fatalf("%s: %v", tc.src, err)
		}
		if str := types.SchemeString(s); str != tc.expected {
			t.Fatalf("%s : %s (expected %s)", tc.src, str, tc.expected)
		}
	}
}
