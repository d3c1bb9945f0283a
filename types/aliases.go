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

package types

import (
	"github.com/benbjohnson/immutable"
)

type varHasher struct{}

func (varHasher) Hash(key interface{}) uint32 {
	// Fibonacci hashing spreads sequential ids across the trie.
	return uint32(uint64(key.(TypeVar)) * 0x9E3779B97F4A7C15 >> 32)
}

func (varHasher) Equal(a, b interface{}) bool { return a.(TypeVar) == b.(TypeVar) }

var emptyAliases = immutable.NewMap(varHasher{})

// Aliases maps type-variables to the types they have been unified with. A type-variable may be
// aliased to another aliased type-variable; chains are resolved by Canonicalize.
//
// Aliases is persistent: Set returns an updated copy and leaves the receiver unchanged.
type Aliases struct {
	m *immutable.Map
}

func NewAliases() Aliases { return Aliases{emptyAliases} }

func (a Aliases) imm() *immutable.Map {
	if a.m == nil {
		return emptyAliases
	}
	return a.m
}

// Get the number of aliased type-variables.
func (a Aliases) Len() int { return a.imm().Len() }

// Lookup the type which v is aliased to.
func (a Aliases) Lookup(v TypeVar) (Type, bool) {
	t, ok := a.imm().Get(v)
	if !ok {
		return nil, false
	}
	return t.(Type), true
}

// Set returns a copy of the alias map where v is aliased to t.
func (a Aliases) Set(v TypeVar, t Type) Aliases { return Aliases{a.imm().Set(v, t)} }

// Resolve follows the chain of aliases for tv until an unaliased type-variable or a type
// application is reached.
func (a Aliases) Resolve(tv *Var) Type {
	var t Type = tv
	for {
		tv, ok := t.(*Var)
		if !ok {
			return t
		}
		next, ok := a.Lookup(tv.Id)
		if !ok {
			return t
		}
		t = next
	}
}
