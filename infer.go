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
	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/internal/typeutil"
	"github.com/spruce-lang/typecheck/types"
)

// typecheck checks e against the expected type ty, returning the substitution which
// makes the type of e equal to ty.
func (c *Checker) typecheck(e ast.Expr, ty types.Type) (types.Subst, error) {
	if c.tracing {
		c.log.Debug("typecheck", "expr", ast.ExprString(e, c.prog), "expected", types.DebugString(ty))
	}

	switch e := e.(type) {
	case *ast.Literal:
		return c.unify(ty, types.Int(), e.Loc)

	case *ast.BinOp:
		return c.checkBinOp(e, ty)

	case *ast.Ident:
		t := c.env.lookupOrDeclare(e.Symbol)
		return c.unify(ty, t, e.Loc)

	case *ast.Call:
		callee := c.env.lookupOrDeclare(e.Func)
		return c.checkApply(e.Loc, callee, e.Args, ty)

	case *ast.Construct:
		ctor, ok := c.env.Constructor(e.Value)
		if !ok {
			return nil, malformedError(e.Loc, "Undeclared constructor %s", c.prog.ValueName(e.Value))
		}
		// Each application gets its own copy of the constructor's type parameters.
		callee := typeutil.Instantiate(&c.env.vars, ctor)
		return c.checkApply(e.Loc, callee, e.Args, ty)

	default:
		panic("unexpected expression " + e.ExprName())
	}
}

func (c *Checker) checkBinOp(e *ast.BinOp, ty types.Type) (types.Subst, error) {
	switch {
	case e.Op.IsArithmetic():
		return c.checkOperands(e, ty, types.Int(), types.Int())

	case e.Op.IsRelational():
		boolType, err := c.boolType(e.Loc)
		if err != nil {
			return nil, err
		}
		return c.checkOperands(e, ty, boolType, types.Int())

	case e.Op.IsEquality():
		boolType, err := c.boolType(e.Loc)
		if err != nil {
			return nil, err
		}
		s, err := c.unify(ty, boolType, e.Loc)
		if err != nil {
			return nil, err
		}
		// The right operand is checked against the type inferred for the left.
		tv := c.env.NewVar()
		ls, err := c.typecheck(e.Left, tv)
		if err != nil {
			return nil, err
		}
		if s, err = c.union(s, ls, e.Left.Location()); err != nil {
			return nil, err
		}
		rs, err := c.typecheck(e.Right, types.Apply(s, tv))
		if err != nil {
			return nil, err
		}
		return c.union(s, rs, e.Right.Location())

	default:
		return nil, malformedError(e.Loc, "Unknown operator %s", e.Op)
	}
}

// checkOperands unifies ty with result and checks both operands against operand.
func (c *Checker) checkOperands(e *ast.BinOp, ty, result, operand types.Type) (types.Subst, error) {
	s, err := c.unify(ty, result, e.Loc)
	if err != nil {
		return nil, err
	}
	for _, arg := range [2]ast.Expr{e.Left, e.Right} {
		as, err := c.typecheck(arg, operand)
		if err != nil {
			return nil, err
		}
		if s, err = c.union(s, as, arg.Location()); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// checkApply checks the application of callee to args against the expected type ty.
// Each argument is checked against its own fresh type-variable; the resulting function
// type is then unified with the type of callee.
func (c *Checker) checkApply(loc ast.Span, callee types.Type, args []ast.Expr, ty types.Type) (types.Subst, error) {
	env := c.env
	s := make(types.Subst)
	argTypes := make([]types.Type, len(args))
	for i, arg := range args {
		tv := env.NewVar()
		as, err := c.typecheck(arg, tv)
		if err != nil {
			return nil, err
		}
		if s, err = c.union(s, as, arg.Location()); err != nil {
			return nil, err
		}
		argTypes[i] = tv
	}

	out := env.NewVar()
	os, err := c.unify(ty, out, loc)
	if err != nil {
		return nil, err
	}
	if s, err = c.union(s, os, loc); err != nil {
		return nil, err
	}

	candidate := types.Apply(s, types.NewFunc(argTypes, out))
	fs, err := c.unify(types.Apply(s, callee), candidate, loc)
	if err != nil {
		return nil, err
	}
	return c.union(s, fs, loc)
}

func (c *Checker) boolType(loc ast.Span) (types.Type, error) {
	id := c.env.builtins.Bool
	t, ok := c.env.ADT(id)
	if !ok {
		return nil, malformedError(loc, "Built-in Bool type is not declared")
	}
	return t, nil
}
