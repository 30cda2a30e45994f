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
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// MalformedError reports a program which violates the invariants guaranteed by name resolution,
// such as a reference to an undeclared constructor.
type MalformedError struct {
	Loc Span
	Msg string
}

func (e *MalformedError) Error() string { return e.Msg }

func malformed(loc Span, format string, args ...interface{}) error {
	return &MalformedError{Loc: loc, Msg: fmt.Sprintf(format, args...)}
}

// Validate checks that every declaration and node of p refers only to declared types,
// type parameters and constructors, and that case arms and patterns are well-formed.
// The first violation found is returned.
func (p *Program) Validate() error {
	ids := maps.Keys(p.Types)
	slices.Sort(ids)
	for _, id := range ids {
		if decl := p.Types[id]; decl == nil || decl.Id != id {
			return malformed(Span{}, "Type declaration %d is missing or has a mismatched id", id)
		}
	}

	vids := maps.Keys(p.Values)
	slices.Sort(vids)
	for _, id := range vids {
		val := p.Values[id]
		if val == nil || val.Id != id {
			return malformed(Span{}, "Constructor declaration %d is missing or has a mismatched id", id)
		}
		owner, ok := p.Types[val.DataType]
		if !ok {
			return malformed(Span{}, "Constructor %s refers to undeclared type %d", p.ValueName(id), val.DataType)
		}
		for _, arg := range val.Args {
			if err := p.validateTypeExpr(owner, arg); err != nil {
				return err
			}
		}
	}

	for _, def := range p.Definitions {
		if def.Update {
			return malformed(def.Loc, "Top-level definition of %s cannot be an update", p.SymbolName(def.Target))
		}
		if err := p.validateStmt(def); err != nil {
			return err
		}
	}
	for _, fn := range p.Functions {
		if fn.Body == nil {
			return malformed(fn.Loc, "Function %s has no body", p.SymbolName(fn.Name))
		}
		if err := p.validateBody(fn.Body); err != nil {
			return err
		}
	}
	return nil
}

func (p *Program) validateTypeExpr(owner *TypeDecl, t TypeExpr) error {
	switch t := t.(type) {
	case *TParamRef:
		if !slices.Contains(owner.Params, t.Param) {
			return malformed(Span{}, "Type parameter %d is not declared by %s", t.Param, owner.Name)
		}
	case *PrimRef:
		if t.Name == "" {
			return malformed(Span{}, "Empty primitive type name in %s", owner.Name)
		}
	case *ADTRef:
		decl, ok := p.Types[t.Id]
		if !ok {
			return malformed(Span{}, "Reference to undeclared type %d in %s", t.Id, owner.Name)
		}
		if len(t.Args) != len(decl.Params) {
			return malformed(Span{}, "Type %s expects %d arguments, got %d", decl.Name, len(decl.Params), len(t.Args))
		}
		for _, arg := range t.Args {
			if err := p.validateTypeExpr(owner, arg); err != nil {
				return err
			}
		}
	default:
		return malformed(Span{}, "Unexpected type expression %T in %s", t, owner.Name)
	}
	return nil
}

func (p *Program) validateBody(b *Body) error {
	var err error
	WalkBody(b, p.validator(&err))
	return err
}

func (p *Program) validateStmt(s Stmt) error {
	var err error
	WalkStmt(s, p.validator(&err))
	return err
}

func (p *Program) validator(errp *error) Visitor {
	return func(e Expr, s Stmt, pat *Pattern) {
		if *errp != nil {
			return
		}
		switch {
		case e != nil:
			switch e := e.(type) {
			case *BinOp:
				if e.Left == nil || e.Right == nil {
					*errp = malformed(e.Loc, "Operator %s is missing an operand", e.Op)
				}
			case *Call:
				*errp = requireArgs(e.Loc, e.Args)
			case *Construct:
				if _, ok := p.Values[e.Value]; !ok {
					*errp = malformed(e.Loc, "Undeclared constructor %d", e.Value)
					return
				}
				*errp = requireArgs(e.Loc, e.Args)
			}
		case pat != nil:
			val, ok := p.Values[pat.Constructor]
			if !ok {
				*errp = malformed(pat.Loc, "Undeclared constructor %d in pattern", pat.Constructor)
				return
			}
			if len(pat.Bindings) != len(val.Args) {
				*errp = malformed(pat.Loc, "Pattern %s binds %d variables, constructor has %d arguments", val.Name, len(pat.Bindings), len(val.Args))
			}
		case s != nil:
			switch s := s.(type) {
			case *Assign:
				if s.Value == nil {
					*errp = malformed(s.Loc, "Assignment to %s has no value", p.SymbolName(s.Target))
				}
			case *Case:
				if s.Scrutinee == nil {
					*errp = malformed(s.Loc, "Case has no scrutinee")
					return
				}
				for _, arm := range s.Arms {
					if arm.Pattern == nil || (arm.Block == nil) == (arm.Expr == nil) {
						*errp = malformed(s.Loc, "Case arm must have a pattern and exactly one of a block or an expression")
						return
					}
				}
			}
		default:
			*errp = malformed(Span{}, "Body contains a nil statement")
		}
	}
}

func requireArgs(loc Span, args []Expr) error {
	for i, arg := range args {
		if arg == nil {
			return malformed(loc, "Argument %d is missing", i+1)
		}
	}
	return nil
}
