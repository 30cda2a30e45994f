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

package typeutil

import (
	"github.com/spruce-lang/typecheck/types"
)

// UnifyError is returned when two types cannot be made equal.
type UnifyError struct {
	Left, Right types.Type
	// Cyclic is set when a type-variable would be bound to a type containing itself.
	Cyclic bool
}

func (e *UnifyError) Error() string {
	msg := "Unification failed between " + types.DebugString(e.Left) + " and " + types.DebugString(e.Right)
	if e.Cyclic {
		msg += " (cyclic type)"
	}
	return msg
}

// Unify computes a substitution which makes a and b equal when applied to both.
//
// Arguments of ADTs and functions are unified left to right; the substitution
// accumulated so far is applied to each remaining pair before it is unified.
func Unify(a, b types.Type) (types.Subst, error) {
	if a, ok := a.(*types.Var); ok {
		if b, ok := b.(*types.Var); ok && a.Id == b.Id {
			return types.Subst{}, nil
		}
		return bindVar(a, b, a, b)
	}
	if b, ok := b.(*types.Var); ok {
		return bindVar(b, a, a, b)
	}

	switch a := a.(type) {
	case *types.Prim:
		if b, ok := b.(*types.Prim); ok && a.Name == b.Name {
			return types.Subst{}, nil
		}

	case *types.ADT:
		b, ok := b.(*types.ADT)
		if !ok || a.Id != b.Id || a.Params.Len() != b.Params.Len() {
			break
		}
		return unifyLists(types.Subst{}, a.Params, b.Params)

	case *types.Func:
		b, ok := b.(*types.Func)
		if !ok || a.Args.Len() != b.Args.Len() {
			break
		}
		s, err := unifyLists(types.Subst{}, a.Args, b.Args)
		if err != nil {
			return nil, err
		}
		ret, err := Unify(types.Apply(s, a.Return), types.Apply(s, b.Return))
		if err != nil {
			return nil, err
		}
		return Union(s, ret)

	case *types.Unit:
		if _, ok := b.(*types.Unit); ok {
			return types.Subst{}, nil
		}
	}

	return nil, &UnifyError{Left: a, Right: b}
}

func bindVar(tv *types.Var, t, left, right types.Type) (types.Subst, error) {
	if types.FreeVars(t).Contains(tv.Id) {
		return nil, &UnifyError{Left: left, Right: right, Cyclic: true}
	}
	return types.Subst{tv.Id: t}, nil
}

func unifyLists(s types.Subst, as, bs types.TypeList) (types.Subst, error) {
	var err error
	as.Range(func(i int, a types.Type) bool {
		var step types.Subst
		step, err = Unify(types.Apply(s, a), types.Apply(s, bs.Get(i)))
		if err == nil {
			s, err = Union(s, step)
		}
		return err == nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Union adds the bindings of src to dst and returns dst, which may be nil.
//
// A variable bound by both substitutions keeps the binding in dst; the two bound types
// are unified and the resulting bindings are added in turn. Binding a variable to a type
// which contains it after applying dst fails with a cyclic *UnifyError.
func Union(dst, src types.Subst) (types.Subst, error) {
	if dst == nil {
		dst = make(types.Subst, len(src))
	}
	if len(src) == 0 {
		return dst, nil
	}
	for _, id := range src.Vars() {
		t := src[id]
		if prev, ok := dst[id]; ok {
			if types.Equal(prev, t) {
				continue
			}
			a, b := types.Apply(dst, prev), types.Apply(dst, t)
			step, err := Unify(a, b)
			if err != nil {
				return nil, err
			}
			if dst, err = Union(dst, step); err != nil {
				return nil, err
			}
			continue
		}
		resolved := types.Apply(dst, t)
		if tv, ok := resolved.(*types.Var); ok && tv.Id == id {
			continue
		}
		if types.Occurs(id, resolved) {
			return nil, &UnifyError{Left: types.NewVar(id), Right: resolved, Cyclic: true}
		}
		dst[id] = t
	}
	return dst, nil
}
