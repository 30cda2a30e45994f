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
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/internal/typeutil"
	"github.com/spruce-lang/typecheck/types"
)

// Checker infers the types of a program's definitions. A Checker may be reused for
// multiple programs, but is not safe for concurrent use.
type Checker struct {
	env     *Environment
	prog    *ast.Program
	log     *slog.Logger
	tracing bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets the logger which receives a trace of inference at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.log = l
		}
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check infers types for a program with a default Checker.
func Check(prog *ast.Program) (*Environment, error) {
	return NewChecker().Check(prog)
}

// Check infers types for the top-level definitions and then the functions of prog, in
// declaration order. Each definition's symbols are finalized before the next definition
// is checked.
//
// Checking stops at the first error, which is always a *TypeError.
func (c *Checker) Check(prog *ast.Program) (*Environment, error) {
	c.prog, c.env = prog, newEnvironment(prog)
	c.tracing = c.log.Enabled(context.Background(), slog.LevelDebug)
	defer func() { c.prog, c.env = nil, nil }()

	if err := prog.Validate(); err != nil {
		var merr *ast.MalformedError
		if errors.As(err, &merr) {
			return nil, &TypeError{Kind: MalformedProgram, Message: merr.Msg, Loc: merr.Loc, Err: err}
		}
		return nil, err
	}
	if err := c.seed(); err != nil {
		return nil, err
	}

	for _, def := range prog.Definitions {
		if err := c.checkDefinition(def); err != nil {
			return nil, err
		}
	}
	for _, fn := range prog.Functions {
		if err := c.checkFunc(fn); err != nil {
			return nil, err
		}
	}
	return c.env, nil
}

// seed fills the ADT and constructor tables. Each ADT is applied to one fresh type-variable
// per declared parameter; constructors return their ADT applied to those same variables.
func (c *Checker) seed() error {
	env := c.env
	tparams := make(map[ast.TParamID]types.Type)

	adtIds := maps.Keys(c.prog.Types)
	slices.Sort(adtIds)
	for _, id := range adtIds {
		decl := c.prog.Types[id]
		params := make([]types.Type, len(decl.Params))
		for i, p := range decl.Params {
			tv := env.NewVar()
			tparams[p] = tv
			params[i] = tv
		}
		env.adts[id] = types.NewADT(id, params...)
	}

	valIds := maps.Keys(c.prog.Values)
	slices.Sort(valIds)
	for _, id := range valIds {
		val := c.prog.Values[id]
		args := make([]types.Type, len(val.Args))
		for i, arg := range val.Args {
			t, err := c.typeFromExpr(arg, tparams)
			if err != nil {
				return err
			}
			args[i] = t
		}
		env.values[id] = types.NewFunc(args, env.adts[val.DataType])
	}

	if c.tracing {
		c.log.Debug("seeded declarations", "types", len(env.adts), "constructors", len(env.values))
	}
	return nil
}

func (c *Checker) typeFromExpr(t ast.TypeExpr, tparams map[ast.TParamID]types.Type) (types.Type, error) {
	switch t := t.(type) {
	case *ast.TParamRef:
		if tv, ok := tparams[t.Param]; ok {
			return tv, nil
		}
		return nil, malformedError(ast.Span{}, "Dangling type parameter %d", t.Param)
	case *ast.PrimRef:
		return &types.Prim{Name: t.Name}, nil
	case *ast.ADTRef:
		args := make([]types.Type, len(t.Args))
		for i, arg := range t.Args {
			a, err := c.typeFromExpr(arg, tparams)
			if err != nil {
				return nil, err
			}
			args[i] = a
		}
		return types.NewADT(t.Id, args...), nil
	default:
		return nil, malformedError(ast.Span{}, "Unexpected type expression %T", t)
	}
}

// checkDefinition checks a top-level assignment. If the target was already given a type by
// an earlier forward reference, the assigned value must agree with it.
func (c *Checker) checkDefinition(def *ast.Assign) error {
	env := c.env
	tv := env.NewVar()
	s, err := c.typecheck(def.Value, tv)
	if err != nil {
		return err
	}
	t := types.Apply(s, tv)

	if prev, ok := env.lookup(def.Target); ok {
		us, err := typeutil.Unify(types.Apply(s, prev), t)
		if err != nil {
			return &TypeError{Kind: IncompatibleDefinition, Message: "Definition incompatible with earlier use", Loc: def.Loc, Err: err}
		}
		if s, err = c.union(s, us, def.Loc); err != nil {
			return err
		}
		t = types.Apply(s, t)
	}

	env.applySubst(s)
	env.declare(def.Target, t)
	c.finalize(def.Target)
	return nil
}

// checkFunc checks a function definition against any type guessed for it at earlier calls.
func (c *Checker) checkFunc(fn *ast.Func) error {
	env := c.env
	params := make([]types.Type, len(fn.Params))
	for i, p := range fn.Params {
		tv := env.NewVar()
		env.declare(p, tv)
		params[i] = tv
	}
	ret := env.NewVar()
	fnType := types.NewFunc(params, ret)

	s, err := c.checkBody(fn.Body, ret)
	if err != nil {
		return err
	}
	refined := types.Apply(s, fnType)
	env.applySubst(s)

	if prev, ok := env.lookup(fn.Name); ok {
		us, err := typeutil.Unify(prev, refined)
		if err != nil {
			return &TypeError{
				Kind:    IncompatibleDefinition,
				Message: "Function definition incompatible with earlier function call",
				Loc:     fn.Loc,
				Err:     unifyError(err, fn.Loc),
			}
		}
		env.applySubst(us)
		refined = types.Apply(us, refined)
	}
	env.declare(fn.Name, refined)
	c.finalize(fn.Name)
	return nil
}

func (c *Checker) finalize(id ast.SymbolID) {
	n := c.env.flush()
	if c.tracing {
		t, _ := c.env.Type(id)
		c.log.Debug("finalized definition", "name", c.env.SymbolName(id), "type", types.DebugString(t), "symbols", n)
	}
}

// union merges src into dst, locating any conflict at loc.
func (c *Checker) union(dst, src types.Subst, loc ast.Span) (types.Subst, error) {
	s, err := typeutil.Union(dst, src)
	if err != nil {
		return nil, unifyError(err, loc)
	}
	return s, nil
}

// unify unifies a and b, locating any failure at loc.
func (c *Checker) unify(a, b types.Type, loc ast.Span) (types.Subst, error) {
	s, err := typeutil.Unify(a, b)
	if err != nil {
		return nil, unifyError(err, loc)
	}
	return s, nil
}
