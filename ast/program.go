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

package ast

import (
	"strconv"

	"github.com/spruce-lang/typecheck/types"
)

// TypeDecl declares an algebraic data type: `type Maybe(a) = Nothing | Just(a)`
type TypeDecl struct {
	Id     types.ADTID
	Name   string
	Params []TParamID
}

// ValueDecl declares a data constructor of an algebraic data type.
type ValueDecl struct {
	Id       ValueID
	Name     string
	DataType types.ADTID
	Args     []TypeExpr
}

// TypeExpr is a type annotation within a constructor declaration.
//
// The set of implementations is closed: *TParamRef, *PrimRef and *ADTRef.
type TypeExpr interface {
	typeExpr()
}

// Reference to a type parameter of the enclosing declaration.
type TParamRef struct {
	Param TParamID
}

// Reference to a primitive type by name.
type PrimRef struct {
	Name string
}

// Application of a declared algebraic data type: `List(a)`
type ADTRef struct {
	Id   types.ADTID
	Args []TypeExpr
}

func (*TParamRef) typeExpr() {}
func (*PrimRef) typeExpr()   {}
func (*ADTRef) typeExpr()    {}

// Builtins holds the ids of declarations which built-in operators and pattern forms refer to.
type Builtins struct {
	Bool  types.ADTID
	Maybe types.ADTID
	List  types.ADTID
	Cons  ValueID
	Nil   ValueID
}

// Program is a name-resolved program.
type Program struct {
	Types    map[types.ADTID]*TypeDecl
	Values   map[ValueID]*ValueDecl
	Builtins Builtins

	// Top-level assignments, in declaration order.
	Definitions []*Assign
	// Function definitions, in declaration order.
	Functions []*Func

	// Source names of resolved symbols, used for printing.
	Symbols map[SymbolID]string
}

// SymbolName returns the source name of a symbol, or `s<id>` if it has none.
func (p *Program) SymbolName(id SymbolID) string {
	if name, ok := p.Symbols[id]; ok {
		return name
	}
	return "s" + strconv.Itoa(int(id))
}

// ValueName returns the source name of a data constructor, or `v<id>` if it is unknown.
func (p *Program) ValueName(id ValueID) string {
	if v, ok := p.Values[id]; ok && v.Name != "" {
		return v.Name
	}
	return "v" + strconv.Itoa(int(id))
}

// ADTName returns the source name of an algebraic data type, or "" if it is unknown.
func (p *Program) ADTName(id types.ADTID) string {
	if t, ok := p.Types[id]; ok {
		return t.Name
	}
	return ""
}
