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
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/wdamron/algj/types"
)

type nameHasher struct{}

// FNV-1a
func (nameHasher) Hash(key interface{}) uint32 {
	h := uint32(2166136261)
	s := key.(string)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func (nameHasher) Equal(a, b interface{}) bool { return a.(string) == b.(string) }

var (
	emptyBindings = immutable.NewList()
	emptyIndex    = immutable.NewMap(nameHasher{})
)

// Binding pairs an identifier with its declared type.
type Binding struct {
	Name   string
	Scheme types.Scheme
}

// TypeEnv is an ordered typing context containing bindings from identifiers to type schemes.
//
// A type-environment is immutable: Extend returns a new environment and leaves the receiver
// and its ancestors unchanged. Type-environments may be shared across goroutines.
type TypeEnv struct {
	bindings *immutable.List // of Binding, oldest first
	index    *immutable.Map  // most recent Binding by name
	free     types.VarSet
	nextId   types.TypeVar
}

var emptyEnv = &TypeEnv{bindings: emptyBindings, index: emptyIndex, free: types.EmptyVarSet}

// Create an empty type-environment.
func NewTypeEnv() *TypeEnv { return emptyEnv }

// Extend returns a type-environment where name is bound to s. An existing binding for name
// is shadowed, not removed.
func (e *TypeEnv) Extend(name string, s types.Scheme) *TypeEnv {
	e = e.orEmpty()
	b := Binding{Name: name, Scheme: s}
	next := &TypeEnv{
		bindings: e.bindings.Append(b),
		index:    e.index.Set(name, b),
		free:     e.free.Union(s.FreeVars()),
		nextId:   e.nextId,
	}
	types.Free(s.Body).Union(s.Vars).Range(func(v types.TypeVar) bool {
		if v >= next.nextId {
			next.nextId = v + 1
		}
		return true
	})
	return next
}

// Declare binds name to the generalization of t: every type-variable in t which is not free
// in the environment is quantified.
func (e *TypeEnv) Declare(name string, t types.Type) *TypeEnv {
	return e.Extend(name, types.Generalize(t, e.orEmpty()))
}

// Lookup the most recently bound scheme for an identifier.
func (e *TypeEnv) Lookup(name string) (types.Scheme, bool) {
	b, ok := e.orEmpty().index.Get(name)
	if !ok {
		return types.Scheme{}, false
	}
	return b.(Binding).Scheme, true
}

// FreeVars returns the type-variables which are free in any binding of the environment,
// including shadowed bindings.
func (e *TypeEnv) FreeVars() types.VarSet { return e.orEmpty().free }

// NextVarId returns an id greater than the id of every type-variable mentioned by the
// environment.
func (e *TypeEnv) NextVarId() types.TypeVar { return e.orEmpty().nextId }

// Len returns the number of bindings, including shadowed bindings.
func (e *TypeEnv) Len() int { return e.orEmpty().bindings.Len() }

// Iterate over bindings from oldest to most recent.
// If f returns false, iteration will be stopped.
func (e *TypeEnv) Range(f func(Binding) bool) {
	iter := e.orEmpty().bindings.Iterator()
	for !iter.Done() {
		_, b := iter.Next()
		if !f(b.(Binding)) {
			return
		}
	}
}

// String returns the bindings of the environment: `plus : Int -> Int -> Int, id : forall a. a -> a`
func (e *TypeEnv) String() string {
	var sb strings.Builder
	e.Range(func(b Binding) bool {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Name)
		sb.WriteString(" : ")
		sb.WriteString(types.SchemeString(b.Scheme))
		return true
	})
	return sb.String()
}

func (e *TypeEnv) orEmpty() *TypeEnv {
	if e == nil {
		return emptyEnv
	}
	return e
}
