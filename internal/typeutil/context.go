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
	"github.com/wdamron/algj/types"
)

// CommonContext holds the state of a single inference run: the allocator for fresh
// type-variables and the alias map built by unification.
//
// A CommonContext cannot be used concurrently.
type CommonContext struct {
	VarTracker VarTracker
	Aliases    types.Aliases
}

func (ctx *CommonContext) Init(nextId types.TypeVar) {
	ctx.VarTracker.Reset(nextId)
	ctx.Aliases = types.NewAliases()
}

// Reset discards all aliases and restarts type-variable allocation at nextId.
func (ctx *CommonContext) Reset(nextId types.TypeVar) { ctx.Init(nextId) }

// Canonicalize resolves t against the current alias map.
func (ctx *CommonContext) Canonicalize(t types.Type) types.Type {
	return types.Canonicalize(t, ctx.Aliases)
}

// FreeVars returns the type-variables which remain free in the schemes of env after
// resolving aliases.
func (ctx *CommonContext) FreeVars(env types.FreeVarer) types.VarSet {
	free := types.EmptyVarSet
	env.FreeVars().Range(func(v types.TypeVar) bool {
		free = free.Union(types.Free(ctx.Canonicalize(types.NewVar(v))))
		return true
	})
	return free
}
