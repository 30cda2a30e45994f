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

// Stmt is the base for all statements.
//
// The set of implementations is closed: *Assign, *Case and *Call.
type Stmt interface {
	StmtName() string
	Location() Span
	stmtNode()
}

var (
	_ Stmt = (*Assign)(nil)
	_ Stmt = (*Case)(nil)
	_ Stmt = (*Call)(nil)
)

// Assignment: `x = e`, or `x := e` when Update is set.
//
// An update re-assigns an existing binding rather than declaring a new one.
type Assign struct {
	Node
	Target SymbolID
	Update bool
	Value  Expr
}

// "Assign"
func (s *Assign) StmtName() string { return "Assign" }

// Pattern-match statement: `case e { ... }`
type Case struct {
	Node
	Scrutinee Expr
	Arms      []*Arm
}

// "Case"
func (s *Case) StmtName() string { return "Case" }

// "Call"
func (s *Call) StmtName() string { return "Call" }

// Arm of a case statement. Exactly one of Block and Expr is set.
type Arm struct {
	Pattern *Pattern
	Block   *Body
	Expr    Expr
}

// Constructor pattern: `Just(x)`. Each binding names the constructor argument at
// the same position.
type Pattern struct {
	Node
	Constructor ValueID
	Bindings    []SymbolID
}

// Body is a sequence of statements, optionally followed by a trailing expression
// which gives the block its value.
type Body struct {
	Node
	Stmts []Stmt
	Expr  Expr
}

// Function definition: `fn f(x, y) { ... }`
type Func struct {
	Node
	Name   SymbolID
	Params []SymbolID
	Body   *Body
}

func (s *Assign) stmtNode() {}
func (s *Case) stmtNode()   {}
func (s *Call) stmtNode()   {}
