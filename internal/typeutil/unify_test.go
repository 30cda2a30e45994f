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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/spruce-lang/typecheck/construct"
	"github.com/spruce-lang/typecheck/types"
)

var (
	typeComparer = cmp.Comparer(types.Equal)
	intType      = TInt()
	floatType    = TPrim("Float")
)

func mustUnify(t *testing.T, a, b types.Type) types.Subst {
	t.Helper()
	s, err := Unify(a, b)
	if err != nil {
		t.Fatalf("unify %s with %s: %v", types.DebugString(a), types.DebugString(b), err)
	}
	if l, r := types.Apply(s, a), types.Apply(s, b); !types.Equal(l, r) {
		t.Fatalf("unifier does not equate %s and %s", types.DebugString(l), types.DebugString(r))
	}
	return s
}

func TestUnifyReflexive(t *testing.T) {
	closed := []types.Type{
		TUnit(),
		intType,
		TADT(0),
		TADT(1, intType, TADT(0)),
		TFunc(nil, intType),
		TFunc2(intType, TFunc1(intType, TUnit()), TADT(2, intType)),
	}
	for _, ty := range closed {
		s := mustUnify(t, ty, ty)
		if len(s) != 0 {
			t.Fatalf("expected empty substitution for %s, got %s", types.DebugString(ty), s)
		}
		if got := types.Apply(s, ty); !types.Equal(got, ty) {
			t.Fatalf("expected %s, got %s", types.DebugString(ty), types.DebugString(got))
		}
	}
	if s := mustUnify(t, TVar(3), TVar(3)); len(s) != 0 {
		t.Fatalf("expected empty substitution, got %s", s)
	}
}

func TestUnifySymmetric(t *testing.T) {
	pairs := [][2]types.Type{
		{intType, floatType},
		{intType, intType},
		{TVar(0), intType},
		{TVar(0), TFunc1(TVar(0), intType)},
		{TADT(0, TVar(1)), TADT(0, intType)},
		{TADT(0, TVar(1)), TADT(1, intType)},
		{TFunc1(TVar(0), TVar(0)), TFunc1(intType, intType)},
		{TFunc1(TVar(0), TVar(0)), TFunc1(intType, TADT(0))},
		{TUnit(), intType},
		{TFunc(nil, intType), TFunc1(intType, intType)},
	}
	for _, p := range pairs {
		_, errA := Unify(p[0], p[1])
		_, errB := Unify(p[1], p[0])
		if (errA == nil) != (errB == nil) {
			t.Fatalf("asymmetric outcome for %s and %s: %v / %v", types.DebugString(p[0]), types.DebugString(p[1]), errA, errB)
		}
	}
}

func TestUnifyPrim(t *testing.T) {
	if _, err := Unify(intType, floatType); err == nil {
		t.Fatalf("expected Int and Float to fail unification")
	} else if err.Error() != "Unification failed between Int and Float" {
		t.Fatalf("unexpected message: %v", err)
	}
	if s := mustUnify(t, intType, types.Int()); len(s) != 0 {
		t.Fatalf("expected empty substitution, got %s", s)
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	_, err := Unify(TVar(0), TFunc1(TVar(0), intType))
	var uerr *UnifyError
	if !errors.As(err, &uerr) || !uerr.Cyclic {
		t.Fatalf("expected cyclic unification error, got %v", err)
	}
	if _, err := Unify(TADT(1, TVar(2)), TVar(2)); err == nil {
		t.Fatalf("expected cyclic unification error")
	}
}

func TestUnifyFunc(t *testing.T) {
	s := mustUnify(t, TFunc1(TVar(0), TVar(0)), TFunc1(intType, intType))
	if diff := cmp.Diff(types.Subst{0: intType}, s, typeComparer); diff != "" {
		t.Fatalf("subst (-want +got):\n%s", diff)
	}

	if _, err := Unify(TFunc1(TVar(0), TVar(0)), TFunc1(intType, TADT(0))); err == nil {
		t.Fatalf("expected argument binding to conflict with return type")
	}
	if _, err := Unify(TFunc1(intType, intType), TFunc(nil, intType)); err == nil {
		t.Fatalf("expected arity mismatch to fail")
	}
}

func TestUnifyADTThreadsBindings(t *testing.T) {
	// Pair(t0, t0) ~ Pair(t1, Int) binds both variables to Int.
	a := TADT(3, TVar(0), TVar(0))
	b := TADT(3, TVar(1), intType)
	s := mustUnify(t, a, b)
	if got := types.Apply(s, TVar(1)); !types.Equal(got, intType) {
		t.Fatalf("expected t1 = Int, got %s", types.DebugString(got))
	}

	if _, err := Unify(TADT(3, TVar(0), TVar(0)), TADT(3, intType, TUnit())); err == nil {
		t.Fatalf("expected second argument to conflict with first binding")
	}
	if _, err := Unify(TADT(3, intType), TADT(4, intType)); err == nil {
		t.Fatalf("expected distinct ADTs to fail")
	}
	if _, err := Unify(TADT(3, intType), TADT(3)); err == nil {
		t.Fatalf("expected parameter count mismatch to fail")
	}
}

func TestUnifyUnit(t *testing.T) {
	mustUnify(t, TUnit(), TUnit())
	for _, other := range []types.Type{intType, TADT(0), TFunc(nil, TUnit())} {
		if _, err := Unify(TUnit(), other); err == nil {
			t.Fatalf("expected () and %s to fail", types.DebugString(other))
		}
	}
}

func TestUnionReconcilesConflicts(t *testing.T) {
	dst := types.Subst{0: TADT(1, TVar(1))}
	s, err := Union(dst, types.Subst{0: TADT(1, intType), 2: TVar(0)})
	if err != nil {
		t.Fatal(err)
	}
	if got := types.Apply(s, TVar(2)); !types.Equal(got, TADT(1, intType)) {
		t.Fatalf("expected t2 = adt1(Int), got %s", types.DebugString(got))
	}

	if _, err := Union(types.Subst{0: intType}, types.Subst{0: TUnit()}); err == nil {
		t.Fatalf("expected conflicting bindings to fail")
	}

	// Binding t1 to t0 while t0 = adt1(t1) would be cyclic.
	if _, err := Union(types.Subst{0: TADT(1, TVar(1))}, types.Subst{1: TVar(0)}); err == nil {
		t.Fatalf("expected cyclic union to fail")
	}

	// A binding which resolves to the variable itself is dropped.
	s, err = Union(types.Subst{0: TVar(1)}, types.Subst{1: TVar(0)})
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 1 {
		t.Fatalf("expected trivial binding to be dropped, got %s", s)
	}
}

func TestRefresh(t *testing.T) {
	vt := &VarTracker{NextId: 10}
	ty := TADT(0, TVar(4), TVar(2), TVar(4))
	s := Refresh(vt, ty)
	want := types.Subst{2: TVar(10), 4: TVar(11)}
	if diff := cmp.Diff(want, s, typeComparer); diff != "" {
		t.Fatalf("refresh (-want +got):\n%s", diff)
	}
	if got := Instantiate(vt, ty); !types.Equal(got, TADT(0, TVar(13), TVar(12), TVar(13))) {
		t.Fatalf("instantiate: %s", types.DebugString(got))
	}
	if vt.Count() != 14 {
		t.Fatalf("expected 14 allocated variables, got %d", vt.Count())
	}
}
