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

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wdamron/algj"
	"github.com/wdamron/algj/prelude"
)

func TestBatch(t *testing.T) {
	var buf bytes.Buffer
	out := &printer{w: &buf, ctx: algj.NewContext()}
	input := strings.Join([]string{
		"# comment",
		"",
		"let double = lambda x . plus x x in lambda n . double (double n)",
		"lambda f . lambda x . f x",
		"plus zero true",
		"unknown",
		"lambda x . x x",
		"lambda x .",
		"pair zero zero",
	}, "\n")

	err := batch(prelude.Default(), out, strings.NewReader(input))
	if err == nil {
		t.Fatalf("expected the first failure to be returned")
	}

	expected := []string{
		"let double = lambda x . plus x x in lambda n . double (double n) : Int -> Int",
		"lambda f . lambda x . f x : forall a b. (a -> b) -> a -> b",
		"type inference failed: cannot unify types 'Int' and 'Bool'",
		"type inference failed: unknown variable 'unknown'",
		"type inference failed: unifying ",
		"  in: x x",
		"parsing failed: unexpected end of input",
		"pair zero zero : Pair Int Int",
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(expected) {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
	for i, line := range lines {
		if !strings.HasPrefix(line, expected[i]) {
			t.Fatalf("line %d: %q does not start with %q", i, line, expected[i])
		}
	}
}

func TestLoadEnv(t *testing.T) {
	if _, err := loadEnv("prelude.yaml", true); err == nil {
		t.Fatalf("expected conflicting flags to fail")
	}
	env, err := loadEnv("", true)
	if err != nil || env.Len() != 0 {
		t.Fatalf("expected an empty environment")
	}
	env, err = loadEnv("", false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := env.Lookup("plus"); !ok {
		t.Fatalf("expected the default prelude")
	}
}
