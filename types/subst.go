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
	"cmp"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Subst maps type-variables to the types they are bound to.
//
// Bindings may refer to other bound variables; Apply follows such chains. A
// substitution must never bind a variable to a type which (transitively)
// contains that variable.
type Subst map[VarID]Type

// Apply replaces each bound type-variable in t with its binding, repeatedly,
// until no bound variables remain. Unbound variables are returned unchanged.
func Apply(s Subst, t Type) Type {
	if len(s) == 0 {
		return t
	}
	switch t := t.(type) {
	case *Unit, *Prim:
		return t
	case *Var:
		if b, ok := s[t.Id]; ok {
			return Apply(s, b)
		}
		return t
	case *ADT:
		params := t.Params.Map(func(p Type) Type { return Apply(s, p) })
		if params == t.Params {
			return t
		}
		return &ADT{Id: t.Id, Params: params}
	case *Func:
		args := t.Args.Map(func(a Type) Type { return Apply(s, a) })
		ret := Apply(s, t.Return)
		if args == t.Args && ret == t.Return {
			return t
		}
		return &Func{Args: args, Return: ret}
	default:
		panic("unexpected type " + t.TypeName())
	}
}

// FreeVars returns the ids of all type-variables occurring in t, in ascending order.
func FreeVars(t Type) *set.TreeSet[VarID] {
	vs := set.NewTreeSet[VarID](cmp.Compare[VarID])
	collectVars(vs, t)
	return vs
}

func collectVars(vs *set.TreeSet[VarID], t Type) {
	switch t := t.(type) {
	case *Var:
		vs.Insert(t.Id)
	case *ADT:
		t.Params.Range(func(_ int, p Type) bool {
			collectVars(vs, p)
			return true
		})
	case *Func:
		t.Args.Range(func(_ int, a Type) bool {
			collectVars(vs, a)
			return true
		})
		collectVars(vs, t.Return)
	}
}

// Occurs reports whether the type-variable id occurs anywhere within t.
func Occurs(id VarID, t Type) bool {
	switch t := t.(type) {
	case *Var:
		return t.Id == id
	case *ADT:
		found := false
		t.Params.Range(func(_ int, p Type) bool {
			found = Occurs(id, p)
			return !found
		})
		return found
	case *Func:
		found := false
		t.Args.Range(func(_ int, a Type) bool {
			found = Occurs(id, a)
			return !found
		})
		return found || Occurs(id, t.Return)
	default:
		return false
	}
}

// Clone returns a shallow copy of s. A nil substitution clones to an empty one.
func (s Subst) Clone() Subst {
	c := make(Subst, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// Vars returns the bound type-variable ids in ascending order.
func (s Subst) Vars() []VarID {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}

// String renders the bindings of s in ascending variable order: `{t0 = Int, t3 = adt1(t0)}`
func (s Subst) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, id := range s.Vars() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(DebugString(NewVar(id)))
		sb.WriteString(" = ")
		sb.WriteString(DebugString(s[id]))
	}
	sb.WriteByte('}')
	return sb.String()
}
