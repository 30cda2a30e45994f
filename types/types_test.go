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

package types

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var typeComparer = cmp.Comparer(Equal)

type adtNames map[ADTID]string

func (n adtNames) ADTName(id ADTID) string { return n[id] }

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Type
		want bool
	}{
		{UnitType(), &Unit{}, true},
		{Int(), Int(), true},
		{Int(), &Prim{Name: "Float"}, false},
		{NewVar(0), NewVar(0), true},
		{NewVar(0), NewVar(1), false},
		{NewADT(1, Int()), NewADT(1, Int()), true},
		{NewADT(1, Int()), NewADT(2, Int()), false},
		{NewADT(1, Int()), NewADT(1), false},
		{NewFunc([]Type{Int()}, Int()), NewFunc([]Type{Int()}, Int()), true},
		{NewFunc([]Type{Int()}, Int()), NewFunc([]Type{Int(), Int()}, Int()), false},
		{NewFunc(nil, Int()), NewFunc(nil, UnitType()), false},
		{Int(), NewVar(0), false},
	}
	for i, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Fatalf("case %d: Equal(%s, %s) = %v", i, DebugString(tt.a), DebugString(tt.b), got)
		}
	}
}

func TestApplyChains(t *testing.T) {
	s := Subst{
		0: NewVar(1),
		1: NewVar(2),
		2: Int(),
		3: NewADT(0, NewVar(0)),
	}
	got := Apply(s, NewFunc([]Type{NewVar(0), NewVar(3)}, NewVar(4)))
	want := NewFunc([]Type{Int(), NewADT(0, Int())}, NewVar(4))
	if diff := cmp.Diff(want, got, typeComparer); diff != "" {
		t.Fatalf("apply (-want +got):\n%s", diff)
	}

	// Applying twice is the same as applying once:
	if again := Apply(s, got); !Equal(again, got) {
		t.Fatalf("expected fixed point, got %s", DebugString(again))
	}
}

func TestApplySharesUnchangedTerms(t *testing.T) {
	ty := NewADT(0, Int(), NewVar(7))
	if Apply(Subst{1: Int()}, ty) != Type(ty) {
		t.Fatalf("expected unchanged term to be returned as-is")
	}
	if Apply(nil, ty) != Type(ty) {
		t.Fatalf("expected nil substitution to leave term as-is")
	}
}

func TestFreeVars(t *testing.T) {
	ty := NewFunc([]Type{NewVar(5), NewADT(0, NewVar(2), NewVar(5))}, NewVar(1))
	got := FreeVars(ty).Slice()
	if diff := cmp.Diff([]VarID{1, 2, 5}, got); diff != "" {
		t.Fatalf("free vars (-want +got):\n%s", diff)
	}
	if !FreeVars(Int()).Empty() {
		t.Fatalf("expected no free vars in Int")
	}
	if !Occurs(2, ty) || Occurs(3, ty) {
		t.Fatalf("unexpected occurs result for %s", DebugString(ty))
	}
}

func TestSubstString(t *testing.T) {
	s := Subst{3: NewADT(1, NewVar(0)), 0: Int()}
	if str := s.String(); str != "{t0 = Int, t3 = adt1(t0)}" {
		t.Fatalf("subst: %s", str)
	}
	c := s.Clone()
	c[9] = UnitType()
	if len(s) != 2 {
		t.Fatalf("expected clone to be independent")
	}
}

func TestTypeString(t *testing.T) {
	names := adtNames{0: "Bool", 1: "Maybe", 2: "Pair"}
	tests := []struct {
		ty          Type
		user, debug string
	}{
		{UnitType(), "()", "()"},
		{Int(), "Int", "Int"},
		{NewVar(12), "a", "t12"},
		{NewADT(0), "Bool", "adt0"},
		{NewADT(1, NewADT(0)), "Maybe(Bool)", "adt1(adt0)"},
		{NewADT(2, NewVar(4), NewVar(3)), "Pair(a, b)", "adt2(t4, t3)"},
		{NewFunc([]Type{NewVar(9), NewVar(2), NewVar(9)}, NewVar(2)), "(a, b, a) -> b", "(t9, t2, t9) -> t2"},
		{NewFunc(nil, UnitType()), "() -> ()", "() -> ()"},
		{NewFunc([]Type{NewFunc([]Type{Int()}, NewVar(0))}, NewADT(1, NewVar(0))), "((Int) -> a) -> Maybe(a)", "((Int) -> t0) -> adt1(t0)"},
	}
	for _, tt := range tests {
		if s := TypeString(tt.ty, names); s != tt.user {
			t.Fatalf("expected %q, got %q", tt.user, s)
		}
		if s := DebugString(tt.ty); s != tt.debug {
			t.Fatalf("expected %q, got %q", tt.debug, s)
		}
	}
}

func TestTypeStringManyVars(t *testing.T) {
	args := make([]Type, 28)
	for i := range args {
		args[i] = NewVar(VarID(100 + i))
	}
	s := TypeString(NewFunc(args, UnitType()), nil)
	want := "(a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t, u, v, w, x, y, z, a1, b1) -> ()"
	if s != want {
		t.Fatalf("type: %s", s)
	}
	if s := TypeString(NewADT(4), nil); s != "adt4" {
		t.Fatalf("expected fallback ADT name, got %s", s)
	}
}
