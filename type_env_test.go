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

	"github.com/wdamron/algj/types"
)

func TestTypeEnvExtendLeavesAncestorsUnchanged(t *testing.T) {
	base := NewTypeEnv().Extend("x", Mono(intType))
	child := base.Extend("y", Mono(boolType))
	shadow := base.Extend("x", Mono(stringType))

	if base.Len() != 1 || child.Len() != 2 || shadow.Len() != 2 {
		t.Fatalf("unexpected lengths: %d %d %d", base.Len(), child.Len(), shadow.Len())
	}
	if _, ok := base.Lookup("y"); ok {
		t.Fatalf("expected y to be unbound in the parent environment")
	}
	if s, _ := base.Lookup("x"); types.SchemeString(s) != "Int" {
		t.Fatalf("x : %s", types.SchemeString(s))
	}
	if s, _ := shadow.Lookup("x"); types.SchemeString(s) != "String" {
		t.Fatalf("x : %s", types.SchemeString(s))
	}
	if s, _ := child.Lookup("x"); types.SchemeString(s) != "Int" {
		t.Fatalf("x : %s", types.SchemeString(s))
	}
	if env := shadow.String(); env != "x : Int, x : String" {
		t.Fatalf("env: %s", env)
	}
}

func TestTypeEnvRangeOrder(t *testing.T) {
	env := NewTypeEnv().Extend("a", Mono(intType)).Extend("b", Mono(intType)).Extend("a", Mono(boolType))
	var names []string
	env.Range(func(b Binding) bool {
		names = append(names, b.Name)
		return true
	})
	if len(names) != 3 || names[0] != "a" || names[1] != "b" || names[2] != "a" {
		t.Fatalf("names: %v", names)
	}

	names = names[:0]
	env.Range(func(b Binding) bool {
		names = append(names, b.Name)
		return false
	})
	if len(names) != 1 {
		t.Fatalf("expected iteration to stop, found %v", names)
	}
}

func TestTypeEnvFreeVars(t *testing.T) {
	env := NewTypeEnv().
		Extend("x", Mono(TVar(3))).
		Extend("id", Forall([]*types.Var{TVar(5)}, TArrow(TVar(5), TVar(5)))).
		Extend("k", Forall([]*types.Var{TVar(6)}, TArrow(TVar(6), TVar(4)))).
		Extend("x", Mono(intType))

	free := env.FreeVars().Slice()
	if len(free) != 2 || free[0] != 3 || free[1] != 4 {
		t.Fatalf("free: %v", free)
	}
	if env.NextVarId() != 7 {
		t.Fatalf("next id: %d", env.NextVarId())
	}
	if NewTypeEnv().NextVarId() != 0 || NewTypeEnv().FreeVars().Len() != 0 {
		t.Fatalf("expected empty environment to have no type-variables")
	}

	var nilEnv *TypeEnv
	if _, ok := nilEnv.Lookup("x"); ok || nilEnv.Len() != 0 {
		t.Fatalf("expected a nil environment to be empty")
	}
}

func TestTypeEnvDeclare(t *testing.T) {
	env := NewTypeEnv().Extend("x", Mono(TVar(1)))
	env = env.Declare("k", TArrow(TVar(1), TVar(2)))
	s, _ := env.Lookup("k")
	if s.Vars.Len() != 1 || !s.Vars.Has(2) {
		t.Fatalf("k : %s", types.SchemeString(s))
	}
	if str := types.SchemeString(s); str != "forall a. t1 -> a" {
		t.Fatalf("k : %s", str)
	}
}
