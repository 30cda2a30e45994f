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

package typecheck_test

import (
	"strconv"
	"testing"

	. "github.com/spruce-lang/typecheck"
	. "github.com/spruce-lang/typecheck/construct"

	"github.com/spruce-lang/typecheck/ast"
)

func BenchmarkRecursiveFunction(b *testing.B) {
	p := NewBuilder().Prelude()
	length, l, h, tl, n := p.Sym("length"), p.Sym("l"), p.Sym("h"), p.Sym("tl"), p.Sym("n")
	nilV, cons := p.MustValue("Nil"), p.MustValue("Cons")

	p.Define(Let(n, Call(length, Ctor(cons, Lit(1), Ctor(cons, Lit(2), Ctor(nilV))))))
	p.Function(Func(length, []ast.SymbolID{l}, Stmts(
		Case(Ident(l),
			ArmExpr(Pat(nilV), Lit(0)),
			ArmExpr(Pat(cons, h, tl), Add(Lit(1), Call(length, Ident(tl)))),
		),
	)))
	prog := p.Program()
	checker := NewChecker()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		env, err := checker.Check(prog)
		if err != nil || env == nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkManyDefinitions(b *testing.B) {
	p := NewBuilder().Prelude()
	prev := p.Sym("d0")
	p.Define(Let(prev, Lit(0)))
	for i := 1; i < 200; i++ {
		sym := p.Sym("d" + strconv.Itoa(i))
		p.Define(Let(sym, Add(Ident(prev), Mul(Lit(int64(i)), Lit(2)))))
		prev = sym
	}
	prog := p.Program()
	checker := NewChecker()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		env, err := checker.Check(prog)
		if err != nil || env.Len() != 200 {
			b.Fatal(err)
		}
	}
}

func BenchmarkUnitCase(b *testing.B) {
	p := NewBuilder().Prelude()
	touch, m, count, v := p.Sym("touch"), p.Sym("m"), p.Sym("count"), p.Sym("v")

	// fn touch(m) { count = 0; case m { Nothing -> {}; Just(v) -> { count := count + v } } }
	p.Function(Func(touch, []ast.SymbolID{m}, Stmts(
		Let(count, Lit(0)),
		Case(Ident(m),
			ArmBlock(Pat(p.MustValue("Nothing")), Stmts()),
			ArmBlock(Pat(p.MustValue("Just"), v), Stmts(Set(count, Add(Ident(count), Ident(v))))),
		),
	)))
	prog := p.Program()
	checker := NewChecker()

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := checker.Check(prog); err != nil {
			b.Fatal(err)
		}
	}
}
