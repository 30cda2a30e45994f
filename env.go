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

package typecheck

import (
	"cmp"
	"strings"

	"github.com/benbjohnson/immutable"

	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/internal/typeutil"
	"github.com/spruce-lang/typecheck/types"
)

type symbolComparer struct{}

func (symbolComparer) Compare(a, b ast.SymbolID) int { return cmp.Compare(a, b) }

// Environment holds the types of symbols, algebraic data types and data constructors
// for a single type-check run.
//
// Symbol types are tentative while the definition which introduced them is being checked,
// and are finalized once that definition has been checked. Substitutions are only ever
// applied to tentative types.
type Environment struct {
	vars typeutil.VarTracker

	active   map[ast.SymbolID]types.Type
	complete *immutable.SortedMap[ast.SymbolID, types.Type]

	adts     map[types.ADTID]*types.ADT
	values   map[ast.ValueID]*types.Func
	builtins ast.Builtins

	names *ast.Program
}

func newEnvironment(prog *ast.Program) *Environment {
	return &Environment{
		active:   make(map[ast.SymbolID]types.Type),
		complete: immutable.NewSortedMap[ast.SymbolID, types.Type](symbolComparer{}),
		adts:     make(map[types.ADTID]*types.ADT, len(prog.Types)),
		values:   make(map[ast.ValueID]*types.Func, len(prog.Values)),
		builtins: prog.Builtins,
		names:    prog,
	}
}

// NewVar allocates a fresh type-variable.
func (e *Environment) NewVar() *types.Var { return e.vars.New() }

// lookup returns the tentative type of a symbol if it has one, else its finalized type.
func (e *Environment) lookup(id ast.SymbolID) (types.Type, bool) {
	if t, ok := e.active[id]; ok {
		return t, true
	}
	return e.complete.Get(id)
}

// lookupOrDeclare returns the type of a symbol, declaring a fresh tentative
// type-variable for it if it has no type yet.
func (e *Environment) lookupOrDeclare(id ast.SymbolID) types.Type {
	if t, ok := e.lookup(id); ok {
		return t
	}
	tv := e.NewVar()
	e.active[id] = tv
	return tv
}

func (e *Environment) declare(id ast.SymbolID, t types.Type) { e.active[id] = t }

// applySubst refines all tentative symbol types. Finalized types are left untouched.
func (e *Environment) applySubst(s types.Subst) {
	if len(s) == 0 {
		return
	}
	for id, t := range e.active {
		e.active[id] = types.Apply(s, t)
	}
}

// flush finalizes all tentative symbol types.
func (e *Environment) flush() int {
	n := len(e.active)
	for id, t := range e.active {
		e.complete = e.complete.Set(id, t)
		delete(e.active, id)
	}
	return n
}

// Type returns the finalized type of a symbol.
func (e *Environment) Type(id ast.SymbolID) (types.Type, bool) { return e.complete.Get(id) }

// TypeOf returns the finalized type of the first symbol with the given source name.
func (e *Environment) TypeOf(name string) (types.Type, bool) {
	var found types.Type
	e.Range(func(id ast.SymbolID, t types.Type) bool {
		if e.names.SymbolName(id) == name {
			found = t
			return false
		}
		return true
	})
	return found, found != nil
}

// Len returns the number of finalized symbols.
func (e *Environment) Len() int { return e.complete.Len() }

// Range calls f for each finalized symbol, in ascending id order. If f returns false,
// iteration will be stopped.
func (e *Environment) Range(f func(ast.SymbolID, types.Type) bool) {
	iter := e.complete.Iterator()
	for !iter.Done() {
		id, t, _ := iter.Next()
		if !f(id, t) {
			return
		}
	}
}

// ADT returns the declared type of an algebraic data type, applied to its own type parameters.
func (e *Environment) ADT(id types.ADTID) (*types.ADT, bool) {
	t, ok := e.adts[id]
	return t, ok
}

// Constructor returns the function type of a data constructor.
func (e *Environment) Constructor(id ast.ValueID) (*types.Func, bool) {
	t, ok := e.values[id]
	return t, ok
}

// SymbolName returns the source name of a symbol.
func (e *Environment) SymbolName(id ast.SymbolID) string { return e.names.SymbolName(id) }

// ADTName implements types.ADTNamer.
func (e *Environment) ADTName(id types.ADTID) string { return e.names.ADTName(id) }

// TypeString formats t for users, naming algebraic data types by their declared names.
func (e *Environment) TypeString(t types.Type) string { return types.TypeString(t, e) }

// String returns one `name : type` line for each finalized symbol.
func (e *Environment) String() string { return e.dump(false) }

// DebugString is like String, but formats types with raw variable and ADT ids.
func (e *Environment) DebugString() string { return e.dump(true) }

func (e *Environment) dump(debug bool) string {
	var sb strings.Builder
	e.Range(func(id ast.SymbolID, t types.Type) bool {
		sb.WriteString(e.SymbolName(id))
		sb.WriteString(" : ")
		if debug {
			sb.WriteString(types.DebugString(t))
		} else {
			sb.WriteString(e.TypeString(t))
		}
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
