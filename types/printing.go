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
	"strconv"
	"strings"
	"sync"
)

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{names: make(map[TypeVar]string, 16)}
	},
}

func newTypePrinter() *typePrinter { return printerPool.Get().(*typePrinter) }

func (p *typePrinter) Release() {
	for k := range p.names {
		delete(p.names, k)
	}
	p.bound = EmptyVarSet
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	names map[TypeVar]string
	bound VarSet
	sb    strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = getVarName(uint(i))
	}
}

// Names after `z` carry a numeric suffix and skip `t`, since `t1` is the printed form of a
// free type-variable.
func getVarName(i uint) string {
	if i < uint(len(_names)) && _names[i] != "" {
		return _names[i]
	}
	if i < 26 {
		return string(byte('a' + i))
	}
	i -= 26
	letter := i % 25
	if letter >= 't'-'a' {
		letter++
	}
	return string(byte('a'+letter)) + strconv.Itoa(int(i/25)+1)
}

// TypeString returns a string representation of a Type. Type-variables are printed by id.
func TypeString(t Type) string {
	p := newTypePrinter()
	typeString(p, false, t)
	s := p.sb.String()
	p.Release()
	return s
}

// SchemeString returns a string representation of a Scheme: `forall a b. (a -> b) -> a -> b`
//
// Quantified type-variables are named in order of first appearance within the body.
func SchemeString(s Scheme) string {
	if s.IsMono() {
		return TypeString(s.Body)
	}
	p := newTypePrinter()
	p.bound = s.Vars
	nameVars(p, s.Body)
	s.Vars.Range(func(v TypeVar) bool {
		if _, ok := p.names[v]; !ok {
			p.names[v] = getVarName(uint(len(p.names)))
		}
		return true
	})
	p.sb.WriteString("forall")
	for i := 0; i < len(p.names); i++ {
		p.sb.WriteByte(' ')
		p.sb.WriteString(getVarName(uint(i)))
	}
	p.sb.WriteString(". ")
	typeString(p, false, s.Body)
	str := p.sb.String()
	p.Release()
	return str
}

func nameVars(p *typePrinter, t Type) {
	switch t := t.(type) {
	case *Var:
		if _, ok := p.names[t.Id]; !ok && p.bound.Has(t.Id) {
			p.names[t.Id] = getVarName(uint(len(p.names)))
		}
	case *App:
		t.Args.Range(func(_ int, arg Type) bool {
			nameVars(p, arg)
			return true
		})
	}
}

func typeString(p *typePrinter, simple bool, t Type) {
	switch t := t.(type) {
	case *Var:
		if name, ok := p.names[t.Id]; ok {
			p.sb.WriteString(name)
			return
		}
		p.sb.WriteString(t.Id.String())

	case *App:
		if IsArrow(t) {
			if simple {
				p.sb.WriteByte('(')
			}
			from := t.Args.Get(0)
			typeString(p, IsArrow(from), from)
			p.sb.WriteString(" -> ")
			typeString(p, false, t.Args.Get(1))
			if simple {
				p.sb.WriteByte(')')
			}
			return
		}
		if t.Args.Len() == 0 {
			p.sb.WriteString(t.Const)
			return
		}
		if simple {
			p.sb.WriteByte('(')
		}
		p.sb.WriteString(t.Const)
		t.Args.Range(func(_ int, arg Type) bool {
			p.sb.WriteByte(' ')
			app, isApp := arg.(*App)
			typeString(p, isApp && app.Args.Len() > 0, arg)
			return true
		})
		if simple {
			p.sb.WriteByte(')')
		}

	case nil:
		p.sb.WriteString("<nil>")
	}
}
