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

// Visitor is called for each node reached by a walk. Exactly one of e and s is non-nil,
// except for case arm patterns, which are visited with both nil and p set.
type Visitor func(e Expr, s Stmt, p *Pattern)

// WalkExpr calls f for e and each of its sub-expressions, in depth-first order.
func WalkExpr(e Expr, f func(Expr)) {
	switch e := e.(type) {
	case *Literal, *Ident:
		f(e)

	case *BinOp:
		f(e)
		WalkExpr(e.Left, f)
		WalkExpr(e.Right, f)

	case *Call:
		f(e)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}

	case *Construct:
		f(e)
		for _, arg := range e.Args {
			WalkExpr(arg, f)
		}
	}
}

// WalkBody visits every statement, expression and pattern within b, in source order.
func WalkBody(b *Body, v Visitor) {
	if b == nil {
		return
	}
	for _, s := range b.Stmts {
		WalkStmt(s, v)
	}
	if b.Expr != nil {
		walkExpr(b.Expr, v)
	}
}

// WalkStmt visits s and every statement, expression and pattern within it.
func WalkStmt(s Stmt, v Visitor) {
	v(nil, s, nil)
	switch s := s.(type) {
	case *Assign:
		walkExpr(s.Value, v)

	case *Call:
		walkExpr(s, v)

	case *Case:
		walkExpr(s.Scrutinee, v)
		for _, arm := range s.Arms {
			if arm.Pattern != nil {
				v(nil, nil, arm.Pattern)
			}
			if arm.Block != nil {
				WalkBody(arm.Block, v)
			} else if arm.Expr != nil {
				walkExpr(arm.Expr, v)
			}
		}
	}
}

func walkExpr(e Expr, v Visitor) {
	WalkExpr(e, func(e Expr) { v(e, nil, nil) })
}
