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

// checkBody checks the statements of b in order, then unifies the type of the block with ty.
// The type of a block is the type of its trailing expression, or else the type of its
// last statement. A block with no statements has the unit type.
func (c *Checker) checkBody(b *ast.Body, ty types.Type) (types.Subst, error) {
	env := c.env
	s := make(types.Subst)
	var last types.Type = types.UnitType()

	for _, stmt := range b.Stmts {
		var (
			ss  types.Subst
			st  types.Type
			err error
		)
		switch stmt := stmt.(type) {
		case *ast.Assign:
			if stmt.Update {
				t, ok := env.lookup(stmt.Target)
				if !ok {
					return nil, malformedError(stmt.Loc, "Assignment to undeclared symbol %s", env.SymbolName(stmt.Target))
				}
				t = types.Apply(s, t)
				if ss, err = c.typecheck(stmt.Value, t); err != nil {
					return nil, err
				}
				st = types.Apply(ss, t)
			} else {
				tv := env.NewVar()
				if ss, err = c.typecheck(stmt.Value, tv); err != nil {
					return nil, err
				}
				st = types.Apply(ss, tv)
				env.declare(stmt.Target, st)
			}

		case *ast.Case:
			tv := env.NewVar()
			if ss, err = c.checkCase(stmt, tv); err != nil {
				return nil, err
			}
			st = types.Apply(ss, tv)

		case *ast.Call:
			tv := env.NewVar()
			if ss, err = c.typecheck(stmt, tv); err != nil {
				return nil, err
			}
			st = types.Apply(ss, tv)

		default:
			panic("unexpected statement " + stmt.StmtName())
		}

		if s, err = c.union(s, ss, stmt.Location()); err != nil {
			return nil, err
		}
		env.applySubst(s)
		last = st
	}

	var (
		ts  types.Subst
		err error
	)
	if b.Expr != nil {
		ts, err = c.typecheck(b.Expr, types.Apply(s, ty))
	} else {
		ts, err = c.unify(types.Apply(s, last), types.Apply(s, ty), b.Loc)
	}
	if err != nil {
		return nil, err
	}
	if s, err = c.union(s, ts, b.Loc); err != nil {
		return nil, err
	}
	env.applySubst(s)
	return s, nil
}

// checkCase checks a case statement against the case's own result variable ty.
//
// All arm patterns must construct the same ADT, whose type parameters are refreshed before
// being unified with the scrutinee. A block-bodied arm whose type does not unify with ty
// gives the whole case the unit type; every arm must then be block-bodied.
func (c *Checker) checkCase(cs *ast.Case, ty *types.Var) (types.Subst, error) {
	env := c.env
	if len(cs.Arms) == 0 {
		return nil, &TypeError{Kind: InconsistentCase, Message: "Case has no arms", Loc: cs.Loc}
	}

	tv := env.NewVar()
	s, err := c.typecheck(cs.Scrutinee, tv)
	if err != nil {
		return nil, err
	}
	scrutinee := types.Apply(s, tv)
	env.applySubst(s)

	adt, err := c.caseADT(cs)
	if err != nil {
		return nil, err
	}
	refresh := typeutil.Refresh(&env.vars, adt)
	ps, err := c.unify(types.Apply(refresh, adt), types.Apply(s, scrutinee), cs.Loc)
	if err != nil {
		return nil, err
	}
	if s, err = c.union(s, ps, cs.Loc); err != nil {
		return nil, err
	}
	env.applySubst(s)

	isUnit, hasExpr := false, false
	for _, arm := range cs.Arms {
		pat := arm.Pattern
		ctor, _ := env.Constructor(pat.Constructor)
		ctor.Args.Range(func(i int, arg types.Type) bool {
			env.declare(pat.Bindings[i], types.Apply(s, types.Apply(refresh, arg)))
			return true
		})

		if arm.Block != nil {
			ov := env.NewVar()
			os, err := c.checkBody(arm.Block, ov)
			if err != nil {
				return nil, err
			}
			ot := types.Apply(os, ov)
			if s, err = c.union(s, os, arm.Block.Loc); err != nil {
				return nil, err
			}
			env.applySubst(s)

			us, err := typeutil.Unify(types.Apply(s, ty), types.Apply(s, ot))
			if err == nil {
				s, err = c.union(s, us, arm.Block.Loc)
			}
			if err != nil {
				if c.tracing {
					c.log.Debug("case arm has no value", "arm", c.prog.ValueName(pat.Constructor), "reason", err)
				}
				isUnit = true
				continue
			}
			env.applySubst(s)
		} else {
			hasExpr = true
			es, err := c.typecheck(arm.Expr, types.Apply(s, ty))
			if err != nil {
				return nil, err
			}
			if s, err = c.union(s, es, arm.Expr.Location()); err != nil {
				return nil, err
			}
			env.applySubst(s)
		}
	}

	if !isUnit {
		return s, nil
	}
	if hasExpr {
		return nil, &TypeError{Kind: InconsistentCase, Message: "Case with expr must have type", Loc: cs.Loc}
	}
	// The unit type replaces any value an earlier arm gave the case.
	s[ty.Id] = types.UnitType()
	env.applySubst(s)
	return s, nil
}

// caseADT returns the ADT constructed by every arm pattern of cs.
func (c *Checker) caseADT(cs *ast.Case) (*types.ADT, error) {
	var adt *types.ADT
	for _, arm := range cs.Arms {
		ctor, ok := c.env.Constructor(arm.Pattern.Constructor)
		if !ok {
			return nil, malformedError(arm.Pattern.Loc, "Undeclared constructor %s", c.prog.ValueName(arm.Pattern.Constructor))
		}
		owner := ctor.Return.(*types.ADT)
		if adt == nil {
			adt = owner
			continue
		}
		if owner.Id != adt.Id {
			return nil, &TypeError{
				Kind:    InconsistentCase,
				Message: "Case has patterns of both types " + c.env.TypeString(adt) + " and " + c.env.TypeString(owner),
				Loc:     arm.Pattern.Loc,
			}
		}
	}
	return adt, nil
}
