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

var emptyList = immutable.NewList()

var EmptyTypeList = TypeList{emptyList}

// TypeList is an immutable list of types. Updates copy the path to the updated entry and
// share the rest of the list.
type TypeList struct {
	l *immutable.List
}

// Create a list containing ts, in order.
func NewTypeList(ts ...Type) TypeList {
	l := emptyList
	for _, t := range ts {
		l = l.Append(t)
	}
	return TypeList{l}
}

func SingletonTypeList(t Type) TypeList {
	return TypeList{emptyList.Append(t)}
}

func (l TypeList) Len() int {
	if l.l == nil {
		return 0
	}
	return l.l.Len()
}

func (l TypeList) Get(i int) Type { return l.l.Get(i).(Type) }

// Set returns a copy of the list with the type at index i replaced.
func (l TypeList) Set(i int, t Type) TypeList { return TypeList{l.l.Set(i, t)} }

// Append returns a copy of the list with t added to the end.
func (l TypeList) Append(t Type) TypeList {
	imm := l.l
	if imm == nil {
		imm = emptyList
	}
	return TypeList{imm.Append(t)}
}

// If f returns false, iteration will be stopped.
func (l TypeList) Range(f func(int, Type) bool) {
	if l.l == nil {
		return
	}
	iter := l.l.Iterator()
	for !iter.Done() {
		i, v := iter.Next()
		if !f(i, v.(Type)) {
			return
		}
	}
}

// Map applies f to each type in the list. The original list is returned when f returns
// every type unchanged.
func (l TypeList) Map(f func(Type) Type) TypeList {
	next := l
	l.Range(func(i int, t Type) bool {
		if mapped := f(t); mapped != t {
			next = next.Set(i, mapped)
		}
		return true
	})
	return next
}

// Slice returns the types in the list as a Go slice.
func (l TypeList) Slice() []Type {
	ts := make([]Type, 0, l.Len())
	l.Range(func(_ int, t Type) bool {
		ts = append(ts, t)
		return true
	})
	return ts
}
