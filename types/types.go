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

// Package types contains the type terms inferred for spruce programs, along with
// substitutions over type-variables and printers for both users and debugging.
package types

// VarID identifies a type-variable. Ids are allocated monotonically by a single
// checker run and are never reused within that run.
type VarID int

// ADTID identifies an algebraic data type declared by the program.
type ADTID int

// Name of the built-in integer primitive.
const IntName = "Int"

// Type is the base interface for all types.
//
// The set of implementations is closed: *Unit, *Prim, *Var, *ADT and *Func.
type Type interface {
	TypeName() string
	isType()
}

func (t *Unit) TypeName() string { return "Unit" }
func (t *Prim) TypeName() string { return "Prim" }
func (t *Var) TypeName() string  { return "Var" }
func (t *ADT) TypeName() string  { return "ADT" }
func (t *Func) TypeName() string { return "Func" }

func (t *Unit) isType() {}
func (t *Prim) isType() {}
func (t *Var) isType()  {}
func (t *ADT) isType()  {}
func (t *Func) isType() {}

// The type of statements and value-less blocks: `()`
type Unit struct{}

// Primitive type: `Int`
type Prim struct {
	Name string
}

// Type-variable
type Var struct {
	Id VarID
}

// Algebraic data type applied to type arguments: `Maybe(Int)`
type ADT struct {
	Id     ADTID
	Params TypeList
}

// Function type: `(Int, a) -> Bool`
type Func struct {
	Args   TypeList
	Return Type
}

var unit = &Unit{}

// UnitType returns the unit type.
func UnitType() *Unit { return unit }

// Int returns the integer primitive type.
func Int() *Prim { return &Prim{Name: IntName} }

// NewVar creates a type-variable with the given id.
func NewVar(id VarID) *Var { return &Var{Id: id} }

// NewADT creates an ADT type applied to params.
func NewADT(id ADTID, params ...Type) *ADT {
	return &ADT{Id: id, Params: NewTypeList(params...)}
}

// NewFunc creates a function type.
func NewFunc(args []Type, ret Type) *Func {
	return &Func{Args: NewTypeList(args...), Return: ret}
}

// Equal reports whether a and b are syntactically identical type terms.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case *Unit:
		_, ok := b.(*Unit)
		return ok
	case *Prim:
		b, ok := b.(*Prim)
		return ok && a.Name == b.Name
	case *Var:
		b, ok := b.(*Var)
		return ok && a.Id == b.Id
	case *ADT:
		b, ok := b.(*ADT)
		return ok && a.Id == b.Id && equalLists(a.Params, b.Params)
	case *Func:
		b, ok := b.(*Func)
		return ok && equalLists(a.Args, b.Args) && Equal(a.Return, b.Return)
	case nil:
		return b == nil
	default:
		panic("unexpected type " + a.TypeName())
	}
}

func equalLists(a, b TypeList) bool {
	if a.Len() != b.Len() {
		return false
	}
	eq := true
	a.Range(func(i int, t Type) bool {
		eq = Equal(t, b.Get(i))
		return eq
	})
	return eq
}
