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

package algj

import (
	"errors"

	"github.com/wdamron/algj/ast"
	"github.com/wdamron/algj/types"
)

func (ti *InferenceContext) fail(e ast.Expr, err error) error {
	ti.invalid, ti.err = e, err
	return err
}

func (ti *InferenceContext) infer(env *TypeEnv, e ast.Expr) (types.Type, error) {
	switch e := e.(type) {
	case *ast.Var:
		s, ok := env.Lookup(e.Name)
		if !ok {
			return nil, ti.fail(e, &UnknownVariableError{Name: e.Name})
		}
		return ti.common.Instantiate(s), nil

	case *ast.Call:
		ft, err := ti.infer(env, e.Func)
		if err != nil {
			return nil, err
		}
		at, err := ti.infer(env, e.Arg)
		if err != nil {
			return nil, err
		}
		ret := ti.common.VarTracker.New()
		if err := ti.common.Unify(ft, types.NewArrow(at, ret)); err != nil {
			return nil, ti.fail(e, err)
		}
		return ret, nil

	case *ast.Func:
		arg := ti.common.VarTracker.New()
		// Parameters are monomorphic within the body:
		ret, err := ti.infer(env.Extend(e.ArgName, types.Mono(arg)), e.Body)
		if err != nil {
			return nil, err
		}
		return types.NewArrow(arg, ret), nil

	case *ast.Let:
		t, err := ti.infer(env, e.Value)
		if err != nil {
			return nil, err
		}
		// Generalize against the environment of the binding, not the extended environment:
		s := ti.common.Generalize(t, env)
		return ti.infer(env.Extend(e.Var, s), e.Body)
	}

	var exprName string
	if e != nil {
		exprName = "(" + e.ExprName() + ")"
	} else {
		exprName = "(nil)"
	}
	return nil, ti.fail(e, errors.New("Unhandled expression "+exprName))
}
