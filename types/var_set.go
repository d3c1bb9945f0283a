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

type varComparer struct{}

func (varComparer) Compare(a, b interface{}) int {
	x, y := a.(TypeVar), b.(TypeVar)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

var emptySet = immutable.NewSortedMap(varComparer{})

var EmptyVarSet = VarSet{emptySet}

// VarSet is an immutable set of type-variables, ordered by id.
type VarSet struct {
	m *immutable.SortedMap
}

// Create a set containing vs.
func NewVarSet(vs ...TypeVar) VarSet {
	m := emptySet
	for _, v := range vs {
		m = m.Set(v, struct{}{})
	}
	return VarSet{m}
}

func (s VarSet) imm() *immutable.SortedMap {
	if s.m == nil {
		return emptySet
	}
	return s.m
}

// Get the number of type-variables in the set.
func (s VarSet) Len() int { return s.imm().Len() }

// Has returns true if v is in the set.
func (s VarSet) Has(v TypeVar) bool {
	_, ok := s.imm().Get(v)
	return ok
}

// Add returns a copy of the set which includes v.
func (s VarSet) Add(v TypeVar) VarSet {
	if s.Has(v) {
		return s
	}
	return VarSet{s.imm().Set(v, struct{}{})}
}

// Remove returns a copy of the set which excludes v.
func (s VarSet) Remove(v TypeVar) VarSet {
	if !s.Has(v) {
		return s
	}
	return VarSet{s.imm().Delete(v)}
}

// Union returns a set containing the members of s and o.
func (s VarSet) Union(o VarSet) VarSet {
	if s.Len() < o.Len() {
		s, o = o, s
	}
	o.Range(func(v TypeVar) bool {
		s = s.Add(v)
		return true
	})
	return s
}

// Difference returns a set containing the members of s which are not in o.
func (s VarSet) Difference(o VarSet) VarSet {
	o.Range(func(v TypeVar) bool {
		s = s.Remove(v)
		return true
	})
	return s
}

// Iterate over the set in ascending order.
// If f returns false, iteration will be stopped.
func (s VarSet) Range(f func(TypeVar) bool) {
	iter := s.imm().Iterator()
	for !iter.Done() {
		k, _ := iter.Next()
		if !f(k.(TypeVar)) {
			return
		}
	}
}

// Slice returns the members of the set in ascending order.
func (s VarSet) Slice() []TypeVar {
	vs := make([]TypeVar, 0, s.Len())
	s.Range(func(v TypeVar) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Equal returns true if s and o contain the same type-variables.
func (s VarSet) Equal(o VarSet) bool {
	if s.Len() != o.Len() {
		return false
	}
	equal := true
	s.Range(func(v TypeVar) bool {
		equal = o.Has(v)
		return equal
	})
	return equal
}
