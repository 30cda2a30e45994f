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

package construct

import (
	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/types"
)

// Builder assembles an ast.Program, assigning ids to names in order of first use.
// Each distinct name denotes exactly one symbol, type, type parameter or constructor.
type Builder struct {
	prog    *ast.Program
	symbols map[string]ast.SymbolID
	adts    map[string]types.ADTID
	values  map[string]ast.ValueID
	tparams map[types.ADTID]map[string]ast.TParamID
	nparams int
}

// NewBuilder creates an empty program builder.
func NewBuilder() *Builder {
	return &Builder{
		prog: &ast.Program{
			Types:   make(map[types.ADTID]*ast.TypeDecl),
			Values:  make(map[ast.ValueID]*ast.ValueDecl),
			Symbols: make(map[ast.SymbolID]string),
		},
		symbols: make(map[string]ast.SymbolID),
		adts:    make(map[string]types.ADTID),
		values:  make(map[string]ast.ValueID),
		tparams: make(map[types.ADTID]map[string]ast.TParamID),
	}
}

// Sym returns the symbol for name, allocating a new symbol on first use.
func (b *Builder) Sym(name string) ast.SymbolID {
	if id, ok := b.symbols[name]; ok {
		return id
	}
	id := ast.SymbolID(len(b.symbols))
	b.symbols[name] = id
	b.prog.Symbols[id] = name
	return id
}

// Syms returns the symbols for each of names.
func (b *Builder) Syms(names ...string) []ast.SymbolID {
	ids := make([]ast.SymbolID, len(names))
	for i, name := range names {
		ids[i] = b.Sym(name)
	}
	return ids
}

// DeclareType declares an algebraic data type with the named type parameters. Declaring a
// name twice returns the original declaration's id.
func (b *Builder) DeclareType(name string, params ...string) types.ADTID {
	if id, ok := b.adts[name]; ok {
		return id
	}
	id := types.ADTID(len(b.adts))
	b.adts[name] = id
	decl := &ast.TypeDecl{Id: id, Name: name, Params: make([]ast.TParamID, len(params))}
	scope := make(map[string]ast.TParamID, len(params))
	for i, p := range params {
		pid := ast.TParamID(b.nparams)
		b.nparams++
		decl.Params[i] = pid
		scope[p] = pid
	}
	b.tparams[id] = scope
	b.prog.Types[id] = decl
	return id
}

// TypeID returns the id of a declared type.
func (b *Builder) TypeID(name string) (types.ADTID, bool) {
	id, ok := b.adts[name]
	return id, ok
}

// TypeParam returns a reference to a type parameter of a declared type.
func (b *Builder) TypeParam(typeID types.ADTID, name string) (*ast.TParamRef, bool) {
	id, ok := b.tparams[typeID][name]
	if !ok {
		return nil, false
	}
	return Param(id), true
}

// DeclareConstructor declares a data constructor of a declared type.
func (b *Builder) DeclareConstructor(typeID types.ADTID, name string, args ...ast.TypeExpr) ast.ValueID {
	if id, ok := b.values[name]; ok {
		return id
	}
	id := ast.ValueID(len(b.values))
	b.values[name] = id
	b.prog.Values[id] = &ast.ValueDecl{Id: id, Name: name, DataType: typeID, Args: args}
	return id
}

// Value returns the id of a declared constructor.
func (b *Builder) Value(name string) (ast.ValueID, bool) {
	id, ok := b.values[name]
	return id, ok
}

// MustValue is like Value, but panics if the constructor is not declared.
func (b *Builder) MustValue(name string) ast.ValueID {
	id, ok := b.values[name]
	if !ok {
		panic("construct: undeclared constructor " + name)
	}
	return id
}

// Define appends a top-level assignment.
func (b *Builder) Define(def *ast.Assign) { b.prog.Definitions = append(b.prog.Definitions, def) }

// Function appends a function definition.
func (b *Builder) Function(fn *ast.Func) { b.prog.Functions = append(b.prog.Functions, fn) }

// SetBuiltins records the built-in declarations by name. Names which are not declared
// are left at their zero id.
func (b *Builder) SetBuiltins(boolName, maybeName, listName, consName, nilName string) {
	bs := &b.prog.Builtins
	bs.Bool = b.adts[boolName]
	bs.Maybe = b.adts[maybeName]
	bs.List = b.adts[listName]
	bs.Cons = b.values[consName]
	bs.Nil = b.values[nilName]
}

// Program returns the assembled program.
func (b *Builder) Program() *ast.Program { return b.prog }

// Prelude declares the built-in types:
//
//	type Bool = True | False
//	type Maybe(a) = Nothing | Just(a)
//	type List(a) = Nil | Cons(a, List(a))
func (b *Builder) Prelude() *Builder {
	boolID := b.DeclareType("Bool")
	b.DeclareConstructor(boolID, "True")
	b.DeclareConstructor(boolID, "False")

	maybeID := b.DeclareType("Maybe", "a")
	ma, _ := b.TypeParam(maybeID, "a")
	b.DeclareConstructor(maybeID, "Nothing")
	b.DeclareConstructor(maybeID, "Just", ma)

	listID := b.DeclareType("List", "a")
	la, _ := b.TypeParam(listID, "a")
	b.DeclareConstructor(listID, "Nil")
	b.DeclareConstructor(listID, "Cons", la, ADT(listID, la))

	b.SetBuiltins("Bool", "Maybe", "List", "Cons", "Nil")
	return b
}
