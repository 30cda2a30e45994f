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

package progfile

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spruce-lang/typecheck"
	"github.com/spruce-lang/typecheck/ast"
)

func load(t *testing.T, name string) *ast.Program {
	t.Helper()
	prog, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return prog
}

func typeOf(t *testing.T, env *typecheck.Environment, name string) string {
	t.Helper()
	ty, ok := env.TypeOf(name)
	require.True(t, ok, "no type for %s", name)
	return env.TypeString(ty)
}

func TestLoadLength(t *testing.T) {
	prog := load(t, "length.yaml")
	require.Len(t, prog.Types, 3)
	require.Len(t, prog.Values, 6)
	require.Len(t, prog.Definitions, 2)
	require.Len(t, prog.Functions, 1)
	require.Equal(t, "List", prog.Types[prog.Builtins.List].Name)
	require.Equal(t, "Cons", prog.Values[prog.Builtins.Cons].Name)

	fn := prog.Functions[0]
	require.Equal(t, "length", prog.SymbolName(fn.Name))
	require.Equal(t, 27, fn.Loc.Start.Line)
	cs, ok := fn.Body.Stmts[0].(*ast.Case)
	require.True(t, ok)
	require.Len(t, cs.Arms, 2)
	require.Equal(t, "1 + length(tl)", ast.ExprString(cs.Arms[1].Expr, prog))

	env, err := typecheck.Check(prog)
	require.NoError(t, err)
	require.Equal(t, "List(Int)", typeOf(t, env, "xs"))
	require.Equal(t, "(List(Int)) -> Int", typeOf(t, env, "length"))
	require.Equal(t, "Int", typeOf(t, env, "hd"))
}

func TestLoadUnitCase(t *testing.T) {
	env, err := typecheck.Check(load(t, "unit_case.yaml"))
	require.NoError(t, err)
	require.Equal(t, "(Maybe(Int)) -> ()", typeOf(t, env, "touch"))
	require.Equal(t, "Int", typeOf(t, env, "count"))
}

func TestLoadMismatch(t *testing.T) {
	_, err := typecheck.Check(load(t, "mismatch.yaml"))
	require.Error(t, err)

	var terr *typecheck.TypeError
	require.True(t, errors.As(err, &terr))
	require.Equal(t, typecheck.UnificationFailure, terr.Kind)
	require.Equal(t, filepath.Join("testdata", "mismatch.yaml"), terr.Loc.File)
	require.True(t, strings.HasPrefix(err.Error(), terr.Loc.File+":2"), err.Error())
}

func TestLoadDuplicateBinding(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "duplicate_binding.yaml"))
	var perr *Error
	require.True(t, errors.As(err, &perr), "unexpected error: %v", err)
	require.Equal(t, "duplicate binding in pattern MkPair", perr.Msg)
	require.Equal(t, 16, perr.Loc.Start.Line)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestParseDefaults(t *testing.T) {
	prog, err := Parse("", []byte(`
types:
  - name: Bool
    constructors: [{name: "True"}, {name: "False"}]
definitions:
  - name: b
    value: {op: "<", left: 1, right: 2}
  - name: c
    value: {ctor: "False"}
`))
	require.NoError(t, err)
	env, err := typecheck.Check(prog)
	require.NoError(t, err)
	require.Equal(t, "Bool", typeOf(t, env, "b"))
	require.Equal(t, "Bool", typeOf(t, env, "c"))
}

func TestParseRenamedBuiltins(t *testing.T) {
	prog, err := Parse("renamed.yaml", []byte(`
types:
  - name: Truth
    constructors: [{name: Yes}, {name: No}]
builtins:
  bool: Truth
definitions:
  - name: same
    value: {op: "==", left: 1, right: 1}
`))
	require.NoError(t, err)
	env, err := typecheck.Check(prog)
	require.NoError(t, err)
	require.Equal(t, "Truth", typeOf(t, env, "same"))
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{
			name: "duplicate type",
			src:  "types: [{name: T}, {name: T}]",
			msg:  "duplicate type T",
		},
		{
			name: "duplicate constructor",
			src:  "types: [{name: T, constructors: [{name: C}, {name: C}]}]",
			msg:  "duplicate constructor C",
		},
		{
			name: "undeclared type",
			src:  "types: [{name: T, constructors: [{name: C, args: [{type: U}]}]}]",
			msg:  "undeclared type U",
		},
		{
			name: "undeclared constructor",
			src:  "definitions: [{name: x, value: {ctor: Missing}}]",
			msg:  "undeclared constructor Missing",
		},
		{
			name: "unknown operator",
			src:  `definitions: [{name: x, value: {op: "&&", left: 1, right: 2}}]`,
			msg:  `unknown operator "&&"`,
		},
		{
			name: "duplicate parameter",
			src:  "functions: [{name: f, params: [x, x], body: {expr: x}}]",
			msg:  "duplicate parameter in function f",
		},
		{
			name: "arm with expr and body",
			src: `
types: [{name: T, constructors: [{name: C}]}]
functions:
  - name: f
    params: [t]
    body:
      stmts:
        - case:
            scrutinee: t
            arms: [{pattern: {ctor: C}, expr: 1, body: {}}]
`,
			msg: "case arm must have exactly one of expr or body",
		},
		{
			name: "call statement without a name",
			src:  "functions: [{name: f, body: {stmts: [{call: {id: g}}]}}]",
			msg:  `expected a name for "call"`,
		},
		{
			name: "not a statement",
			src:  "functions: [{name: f, body: {stmts: [{print: 1}]}}]",
			msg:  "expected a statement",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse("bad.yaml", []byte(tc.src))
			var perr *Error
			require.True(t, errors.As(err, &perr), "unexpected error: %v", err)
			require.Equal(t, tc.msg, perr.Msg)
			require.Equal(t, "bad.yaml", perr.Loc.File)
		})
	}
}

func TestParseCallStatementWithExtraKeys(t *testing.T) {
	prog, err := Parse("calls.yaml", []byte(`
functions:
  - name: f
    params: [x]
    body:
      stmts:
        - {call: g, id: x, args: [x]}
`))
	require.NoError(t, err)
	call, ok := prog.Functions[0].Body.Stmts[0].(*ast.Call)
	require.True(t, ok)
	require.Equal(t, "g", prog.SymbolName(call.Func))
	require.Len(t, call.Args, 1)
	require.Equal(t, 7, call.Loc.Start.Line)
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse("broken.yaml", []byte("types: [\n"))
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "broken.yaml: "), err.Error())
}
