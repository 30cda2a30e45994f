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

// Package ast contains the name-resolved syntax of spruce programs. Every identifier
// has already been resolved to a numeric id; the type checker only reads these nodes.
package ast

import (
	"strconv"
)

// SymbolID identifies a resolved variable or function name.
type SymbolID int

// ValueID identifies a data constructor.
type ValueID int

// TParamID identifies a type parameter of an algebraic data type declaration.
type TParamID int

// Position is a 1-based line and column within a source file.
type Position struct {
	Line, Column int
}

// Span is the source range of a syntax node.
type Span struct {
	File       string
	Start, End Position
}

// String formats the start of the span as `file:line:column`.
func (s Span) String() string {
	file := s.File
	if file == "" {
		file = "<input>"
	}
	return file + ":" + strconv.Itoa(s.Start.Line) + ":" + strconv.Itoa(s.Start.Column)
}

// Node carries the source span of a syntax node.
type Node struct {
	Loc Span
}

// Location returns the source span of the node.
func (n Node) Location() Span { return n.Loc }

// Expr is the base for all expressions.
//
// The set of implementations is closed: *Literal, *BinOp, *Ident, *Call and *Construct.
type Expr interface {
	// Name of the syntax-type of the expression.
	ExprName() string
	Location() Span
	exprNode()
}

var (
	_ Expr = (*Literal)(nil)
	_ Expr = (*BinOp)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*Call)(nil)
	_ Expr = (*Construct)(nil)
)

// Integer literal: `42`
type Literal struct {
	Node
	Value int64
}

// "Literal"
func (e *Literal) ExprName() string { return "Literal" }

// Operator of a binary expression.
type Operator int

const (
	Add Operator = iota
	Sub
	Mul
	Div
	Pow
	Mod
	Eq
	NotEq
	Less
	Greater
	LessEq
	GreaterEq
)

var operatorSyntax = [...]string{
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Pow:       "^",
	Mod:       "%",
	Eq:        "==",
	NotEq:     "!=",
	Less:      "<",
	Greater:   ">",
	LessEq:    "<=",
	GreaterEq: ">=",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorSyntax) {
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
	return operatorSyntax[op]
}

// ParseOperator returns the operator with the given syntax.
func ParseOperator(s string) (Operator, bool) {
	for op, syntax := range operatorSyntax {
		if syntax == s {
			return Operator(op), true
		}
	}
	return 0, false
}

// IsArithmetic reports whether op maps a pair of integers to an integer.
func (op Operator) IsArithmetic() bool { return op >= Add && op <= Mod }

// IsEquality reports whether op compares two values of any (matching) type.
func (op Operator) IsEquality() bool { return op == Eq || op == NotEq }

// IsRelational reports whether op compares a pair of integers.
func (op Operator) IsRelational() bool { return op >= Less && op <= GreaterEq }

// Binary operation: `x + 1`
type BinOp struct {
	Node
	Op          Operator
	Left, Right Expr
}

// "BinOp"
func (e *BinOp) ExprName() string { return "BinOp" }

// Identifier reference
type Ident struct {
	Node
	Symbol SymbolID
}

// "Ident"
func (e *Ident) ExprName() string { return "Ident" }

// Function call: `f(x, y)`
//
// A call is also a statement when it appears on its own within a block.
type Call struct {
	Node
	Func SymbolID
	Args []Expr
}

// "Call"
func (e *Call) ExprName() string { return "Call" }

// Data constructor application: `Just(x)`
type Construct struct {
	Node
	Value ValueID
	Args  []Expr
}

// "Construct"
func (e *Construct) ExprName() string { return "Construct" }

func (e *Literal) exprNode()   {}
func (e *BinOp) exprNode()     {}
func (e *Ident) exprNode()     {}
func (e *Call) exprNode()      {}
func (e *Construct) exprNode() {}
