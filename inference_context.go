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
	"github.com/wdamron/algj/internal/typeutil"
	"github.com/wdamron/algj/types"
)

// InferenceContext is a reusable context for type inference. The state of the context is
// reset before each inference: fresh type-variables are allocated from the first id unused
// by the type-environment, and the alias map starts empty.
//
// An inference context cannot be used concurrently; create one context per goroutine.
type InferenceContext struct {
	common     typeutil.CommonContext
	needsReset bool

	err     error
	invalid ast.Expr
}

// Create a new type-inference context. A context may be reused for inference.
func NewContext() *InferenceContext { return &InferenceContext{} }

func (ti *InferenceContext) reset(env *TypeEnv) {
	ti.common.Reset(env.NextVarId())
	ti.err, ti.invalid, ti.needsReset = nil, nil, false
}

// Reset the state of the context. The context will be reset automatically before inference.
func (ti *InferenceContext) Reset() {
	if !ti.needsReset {
		return
	}
	ti.reset(nil)
}

// Get the error which caused inference to fail.
func (ti *InferenceContext) Error() error { return ti.err }

// Get the expression which caused inference to fail.
func (ti *InferenceContext) InvalidExpr() ast.Expr { return ti.invalid }

// Infer the most general type of expr within env.
func Infer(expr ast.Expr, env *TypeEnv) (types.Scheme, error) {
	return NewContext().Infer(expr, env)
}

// Infer the most general type of expr within env.
//
// The first error aborts inference. The error will be an *UnknownVariableError,
// *types.ImpossibleUnificationError, or *types.RecursiveTypeError, unless expr is malformed.
func (ti *InferenceContext) Infer(expr ast.Expr, env *TypeEnv) (types.Scheme, error) {
	env = env.orEmpty()
	ti.reset(env)
	ti.needsReset = true
	if expr == nil {
		return types.Scheme{}, ti.fail(nil, errors.New("Empty expression"))
	}
	t, err := ti.infer(env, expr)
	if err != nil {
		return types.Scheme{}, err
	}
	return ti.common.Generalize(t, env), nil
}
