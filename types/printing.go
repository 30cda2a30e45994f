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

// ADTNamer resolves the declared name of an algebraic data type.
type ADTNamer interface {
	ADTName(id ADTID) string
}

var printerPool = sync.Pool{
	New: func() interface{} {
		return &typePrinter{idNames: make(map[VarID]string, 16)}
	},
}

func newTypePrinter(names ADTNamer, debug bool) *typePrinter {
	p := printerPool.Get().(*typePrinter)
	p.names, p.debug = names, debug
	return p
}

func (p *typePrinter) Release() {
	for k := range p.idNames {
		delete(p.idNames, k)
	}
	p.names = nil
	p.sb.Reset()
	printerPool.Put(p)
}

type typePrinter struct {
	idNames map[VarID]string
	names   ADTNamer
	debug   bool
	sb      strings.Builder
}

var _names [128]string

func init() {
	for i := range _names {
		_names[i] = string(byte('a' + i%26))
		if i >= 26 {
			_names[i] += strconv.Itoa(i / 26)
		}
	}
}

func varName(i int) string {
	if i < len(_names) {
		return _names[i]
	}
	return string(byte('a'+i%26)) + strconv.Itoa(i/26)
}

// TypeString returns a human-readable representation of a type. Type-variables are
// named `a`, `b`, ... in order of first appearance; names are not stable across calls.
// If names is nil, ADTs are rendered by id.
func TypeString(t Type, names ADTNamer) string {
	p := newTypePrinter(names, false)
	p.typeString(t)
	s := p.sb.String()
	p.Release()
	return s
}

// DebugString returns a representation of a type which includes raw variable and ADT ids:
// `(t0, adt1(t2)) -> t0`
func DebugString(t Type) string {
	p := newTypePrinter(nil, true)
	p.typeString(t)
	s := p.sb.String()
	p.Release()
	return s
}

func (p *typePrinter) typeString(t Type) {
	sb := &p.sb
	switch t := t.(type) {
	case *Unit:
		sb.WriteString("()")
	case *Prim:
		sb.WriteString(t.Name)
	case *Var:
		if p.debug {
			sb.WriteByte('t')
			sb.WriteString(strconv.Itoa(int(t.Id)))
			return
		}
		name, ok := p.idNames[t.Id]
		if !ok {
			name = varName(len(p.idNames))
			p.idNames[t.Id] = name
		}
		sb.WriteString(name)
	case *ADT:
		p.adtName(t.Id)
		if t.Params.Len() == 0 {
			return
		}
		sb.WriteByte('(')
		p.typeList(t.Params)
		sb.WriteByte(')')
	case *Func:
		sb.WriteByte('(')
		p.typeList(t.Args)
		sb.WriteString(") -> ")
		p.typeString(t.Return)
	case nil:
		sb.WriteString("<nil>")
	default:
		panic("unexpected type " + t.TypeName())
	}
}

func (p *typePrinter) adtName(id ADTID) {
	if p.names != nil {
		if name := p.names.ADTName(id); name != "" {
			p.sb.WriteString(name)
			return
		}
	}
	p.sb.WriteString("adt")
	p.sb.WriteString(strconv.Itoa(int(id)))
}

func (p *typePrinter) typeList(ts TypeList) {
	ts.Range(func(i int, t Type) bool {
		if i > 0 {
			p.sb.WriteString(", ")
		}
		p.typeString(t)
		return true
	})
}
