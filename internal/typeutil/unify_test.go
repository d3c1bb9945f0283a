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
	"errors"
	"testing"

	"github.com/wdamron/algj/types"
)

func tv(id int) *types.Var { return types.NewVar(types.TypeVar(id)) }

var (
	intType    = types.NewConst("Int")
	stringType = types.NewConst("String")
)

func newContext() *CommonContext {
	ctx := &CommonContext{}
	ctx.Init(100)
	return ctx
}

func TestUnifyIsSymmetric(t *testing.T) {
	for _, tc := range []struct {
		a, b     types.Type
		expected string
	}{
		{tv(1), intType, "Int"},
		{types.NewArrow(tv(1), stringType), types.NewArrow(intType, tv(2)), "Int -> String"},
		{types.NewApp("Pair", tv(1), tv(1)), types.NewApp("Pair", tv(2), intType), "Pair Int Int"},
		{types.NewArrow(tv(1), tv(2)), tv(3), "t1 -> t2"},
	} {
		for _, swap := range []bool{false, true} {
			a, b := tc.a, tc.b
			if swap {
				a, b = b, a
			}
			ctx := newContext()
			if err := ctx.Unify(a, b); err != nil {
				t.Fatalf("unify %s with %s: %v", types.TypeString(a), types.TypeString(b), err)
			}
			ca, cb := ctx.Canonicalize(a), ctx.Canonicalize(b)
			if !types.Equal(ca, cb) {
				t.Fatalf("%s and %s are not equal after unification", types.TypeString(ca), types.TypeString(cb))
			}
			if s := types.TypeString(ca); s != tc.expected {
				t.Fatalf("unified type: %s (expected %s)", s, tc.expected)
			}
		}
	}
}

func TestUnifyIdenticalTypesRecordsNothing(t *testing.T) {
	ctx := newContext()
	ty := types.NewArrow(tv(1), types.NewApp("List", tv(2)))
	if err := ctx.Unify(ty, types.NewArrow(tv(1), types.NewApp("List", tv(2)))); err != nil {
		t.Fatal(err)
	}
	if err := ctx.Unify(tv(3), tv(3)); err != nil {
		t.Fatal(err)
	}
	if ctx.Aliases.Len() != 0 {
		t.Fatalf("expected no aliases, found %d", ctx.Aliases.Len())
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	for _, swap := range []bool{false, true} {
		ctx := newContext()
		a, b := types.Type(tv(1)), types.Type(types.NewArrow(tv(1), tv(2)))
		if swap {
			a, b = b, a
		}
		err := ctx.Unify(a, b)
		var recursive *types.RecursiveTypeError
		if !errors.As(err, &recursive) {
			t.Fatalf("expected recursive type error, found %v", err)
		}
		if recursive.Var != 1 || types.TypeString(recursive.Type) != "t1 -> t2" {
			t.Fatalf("unexpected error: %v", err)
		}
		t.Log(err)
	}

	// the occurs check sees through aliases:
	ctx := newContext()
	if err := ctx.Unify(tv(2), types.NewApp("List", tv(1))); err != nil {
		t.Fatal(err)
	}
	var recursive *types.RecursiveTypeError
	if err := ctx.Unify(tv(1), tv(2)); !errors.As(err, &recursive) {
		t.Fatalf("expected recursive type error, found %v", err)
	}
}

func TestUnifyMismatch(t *testing.T) {
	for _, tc := range []struct {
		a, b types.Type
	}{
		{intType, stringType},
		{types.NewApp("List", intType), types.NewApp("Set", intType)},
		{types.NewApp("T", intType), types.NewApp("T", intType, intType)},
		{types.NewArrow(intType, intType), intType},
	} {
		ctx := newContext()
		err := ctx.Unify(tc.a, tc.b)
		var impossible *types.ImpossibleUnificationError
		if !errors.As(err, &impossible) {
			t.Fatalf("unify %s with %s: expected impossible unification, found %v", types.TypeString(tc.a), types.TypeString(tc.b), err)
		}
	}
}

func TestUnifyReportsCanonicalTypes(t *testing.T) {
	ctx := newContext()
	if err := ctx.Unify(tv(1), intType); err != nil {
		t.Fatal(err)
	}
	err := ctx.Unify(types.NewApp("List", tv(1)), types.NewApp("List", stringType))
	var impossible *types.ImpossibleUnificationError
	if !errors.As(err, &impossible) {
		t.Fatalf("expected impossible unification, found %v", err)
	}
	if types.TypeString(impossible.A) != "Int" || types.TypeString(impossible.B) != "String" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnifyIsNotTransactional(t *testing.T) {
	ctx := newContext()
	// Pair t1 Int ~ Pair String String: t1 is aliased before the second pair fails.
	err := ctx.Unify(types.NewApp("Pair", tv(1), intType), types.NewApp("Pair", stringType, stringType))
	if err == nil {
		t.Fatalf("expected unification to fail")
	}
	if s := types.TypeString(ctx.Canonicalize(tv(1))); s != "String" {
		t.Fatalf("expected alias to persist after failure, found %s", s)
	}
}

func TestGeneralizeResolvesEnvironment(t *testing.T) {
	ctx := newContext()
	// t1 is free in the environment and aliased to List t2, so t2 is constrained as well.
	if err := ctx.Unify(tv(1), types.NewApp("List", tv(2))); err != nil {
		t.Fatal(err)
	}
	env := types.Mono(tv(1))
	s := ctx.Generalize(types.NewArrow(tv(2), tv(3)), env)
	if s.Vars.Len() != 1 || !s.Vars.Has(3) {
		t.Fatalf("unexpected scheme: %s", types.SchemeString(s))
	}
}

func TestInstantiateAllocatesFreshVars(t *testing.T) {
	ctx := newContext()
	s := types.Forall([]types.TypeVar{1, 2}, types.NewArrow(tv(1), types.NewArrow(tv(2), tv(3))))
	ty := ctx.Instantiate(s)
	if str := types.TypeString(ty); str != "t100 -> t101 -> t3" {
		t.Fatalf("type: %s", str)
	}
	if ctx.VarTracker.Count() != 2 || ctx.VarTracker.NextId != 102 {
		t.Fatalf("unexpected tracker state: %+v", ctx.VarTracker)
	}
	ctx.Reset(7)
	if ctx.VarTracker.New().Id != 7 || ctx.Aliases.Len() != 0 {
		t.Fatalf("expected reset to restart allocation")
	}
}
