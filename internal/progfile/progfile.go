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

// Package progfile decodes name-resolved spruce programs from YAML documents.
//
// Each distinct identifier denotes a single symbol, so a program file must not reuse
// a name for two different variables.
package progfile

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-set/v3"
	"gopkg.in/yaml.v3"

	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/construct"
	"github.com/spruce-lang/typecheck/types"
)

// Error is a decoding error located within a program file.
type Error struct {
	Loc ast.Span
	Msg string
}

func (e *Error) Error() string { return e.Loc.String() + ": " + e.Msg }

type file struct {
	Types       []typeDecl   `yaml:"types"`
	Builtins    builtinNames `yaml:"builtins"`
	Definitions []yaml.Node  `yaml:"definitions"`
	Functions   []yaml.Node  `yaml:"functions"`
}

type typeDecl struct {
	Name         string     `yaml:"name"`
	Params       []string   `yaml:"params"`
	Constructors []ctorDecl `yaml:"constructors"`
}

type ctorDecl struct {
	Name string      `yaml:"name"`
	Args []yaml.Node `yaml:"args"`
}

type builtinNames struct {
	Bool  string `yaml:"bool"`
	Maybe string `yaml:"maybe"`
	List  string `yaml:"list"`
	Cons  string `yaml:"cons"`
	Nil   string `yaml:"nil"`
}

type definition struct {
	Name  string    `yaml:"name"`
	Value yaml.Node `yaml:"value"`
}

type function struct {
	Name   string    `yaml:"name"`
	Params []string  `yaml:"params"`
	Body   yaml.Node `yaml:"body"`
}

// Load reads and decodes the program file at path.
func Load(path string) (*ast.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(path, data)
}

// Parse decodes a program from data. The filename is only used for source spans.
func Parse(filename string, data []byte) (*ast.Program, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	d := &decoder{file: filename, b: construct.NewBuilder()}
	if err := d.declareTypes(f.Types); err != nil {
		return nil, err
	}
	d.setBuiltins(f.Builtins)

	for i := range f.Definitions {
		def, err := d.definition(&f.Definitions[i])
		if err != nil {
			return nil, err
		}
		d.b.Define(def)
	}
	for i := range f.Functions {
		fn, err := d.function(&f.Functions[i])
		if err != nil {
			return nil, err
		}
		d.b.Function(fn)
	}
	return d.b.Program(), nil
}

type decoder struct {
	file string
	b    *construct.Builder
}

func (d *decoder) span(n *yaml.Node) ast.Span {
	pos := ast.Position{Line: n.Line, Column: n.Column}
	return ast.Span{File: d.file, Start: pos, End: pos}
}

func (d *decoder) errorf(n *yaml.Node, format string, args ...interface{}) error {
	return &Error{Loc: d.span(n), Msg: fmt.Sprintf(format, args...)}
}

// declareTypes declares every type before any constructor, so constructor arguments
// may refer to types declared later in the file.
func (d *decoder) declareTypes(decls []typeDecl) error {
	seen := set.New[string](len(decls))
	for _, decl := range decls {
		if decl.Name == "" {
			return &Error{Loc: ast.Span{File: d.file}, Msg: "type declaration without a name"}
		}
		if !seen.Insert(decl.Name) {
			return &Error{Loc: ast.Span{File: d.file}, Msg: "duplicate type " + decl.Name}
		}
		params := set.From(decl.Params)
		if params.Size() != len(decl.Params) {
			return &Error{Loc: ast.Span{File: d.file}, Msg: "duplicate type parameter in " + decl.Name}
		}
		d.b.DeclareType(decl.Name, decl.Params...)
	}

	ctors := set.New[string](0)
	for _, decl := range decls {
		id, _ := d.b.TypeID(decl.Name)
		for _, ctor := range decl.Constructors {
			if !ctors.Insert(ctor.Name) {
				return &Error{Loc: ast.Span{File: d.file}, Msg: "duplicate constructor " + ctor.Name}
			}
			args := make([]ast.TypeExpr, len(ctor.Args))
			for i := range ctor.Args {
				arg, err := d.typeExpr(id, &ctor.Args[i])
				if err != nil {
					return err
				}
				args[i] = arg
			}
			d.b.DeclareConstructor(id, ctor.Name, args...)
		}
	}
	return nil
}

func (d *decoder) setBuiltins(names builtinNames) {
	def := func(name, fallback string) string {
		if name == "" {
			return fallback
		}
		return name
	}
	d.b.SetBuiltins(
		def(names.Bool, "Bool"),
		def(names.Maybe, "Maybe"),
		def(names.List, "List"),
		def(names.Cons, "Cons"),
		def(names.Nil, "Nil"),
	)
}

// typeExpr decodes a constructor argument: a type parameter or type name, or `{type: Name, args: [...]}`.
func (d *decoder) typeExpr(owner types.ADTID, n *yaml.Node) (ast.TypeExpr, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		if p, ok := d.b.TypeParam(owner, n.Value); ok {
			return p, nil
		}
		if id, ok := d.b.TypeID(n.Value); ok {
			return construct.ADT(id), nil
		}
		return construct.Prim(n.Value), nil

	case yaml.MappingNode:
		fields, err := d.fields(n)
		if err != nil {
			return nil, err
		}
		name, err := d.scalar(fields, n, "type")
		if err != nil {
			return nil, err
		}
		id, ok := d.b.TypeID(name)
		if !ok {
			return nil, d.errorf(n, "undeclared type %s", name)
		}
		var args []ast.TypeExpr
		if argsNode, ok := fields["args"]; ok {
			for _, a := range argsNode.Content {
				arg, err := d.typeExpr(owner, a)
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
			}
		}
		return construct.ADT(id, args...), nil

	default:
		return nil, d.errorf(n, "expected a type")
	}
}

func (d *decoder) definition(n *yaml.Node) (*ast.Assign, error) {
	var def definition
	if err := n.Decode(&def); err != nil {
		return nil, d.errorf(n, "%v", err)
	}
	if def.Name == "" {
		return nil, d.errorf(n, "definition without a name")
	}
	target := d.b.Sym(def.Name)
	value, err := d.expr(&def.Value)
	if err != nil {
		return nil, err
	}
	assign := construct.Let(target, value)
	assign.Loc = d.span(n)
	return assign, nil
}

func (d *decoder) function(n *yaml.Node) (*ast.Func, error) {
	var fn function
	if err := n.Decode(&fn); err != nil {
		return nil, d.errorf(n, "%v", err)
	}
	if fn.Name == "" {
		return nil, d.errorf(n, "function without a name")
	}
	if set.From(fn.Params).Size() != len(fn.Params) {
		return nil, d.errorf(n, "duplicate parameter in function %s", fn.Name)
	}
	name, params := d.b.Sym(fn.Name), d.b.Syms(fn.Params...)
	body, err := d.block(&fn.Body)
	if err != nil {
		return nil, err
	}
	f := construct.Func(name, params, body)
	f.Loc = d.span(n)
	return f, nil
}

// block decodes `{stmts: [...], expr: e}`. Both fields are optional.
func (d *decoder) block(n *yaml.Node) (*ast.Body, error) {
	body := &ast.Body{Node: ast.Node{Loc: d.span(n)}}
	if n.Kind == 0 {
		return body, nil
	}
	fields, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	if stmts, ok := fields["stmts"]; ok {
		if stmts.Kind != yaml.SequenceNode {
			return nil, d.errorf(stmts, "expected a list of statements")
		}
		for _, sn := range stmts.Content {
			s, err := d.stmt(sn)
			if err != nil {
				return nil, err
			}
			body.Stmts = append(body.Stmts, s)
		}
	}
	if en, ok := fields["expr"]; ok {
		if body.Expr, err = d.expr(en); err != nil {
			return nil, err
		}
	}
	return body, nil
}

func (d *decoder) stmt(n *yaml.Node) (ast.Stmt, error) {
	fields, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	switch {
	case fields["let"] != nil, fields["set"] != nil:
		key := "let"
		if fields["set"] != nil {
			key = "set"
		}
		name, err := d.scalar(fields, n, key)
		if err != nil {
			return nil, err
		}
		vn, ok := fields["value"]
		if !ok {
			return nil, d.errorf(n, "assignment to %s without a value", name)
		}
		value, err := d.expr(vn)
		if err != nil {
			return nil, err
		}
		s := &ast.Assign{Target: d.b.Sym(name), Update: key == "set", Value: value}
		s.Loc = d.span(n)
		return s, nil

	case fields["call"] != nil:
		c, err := d.call(n, fields)
		if err != nil {
			return nil, err
		}
		return c, nil

	case fields["case"] != nil:
		return d.caseStmt(fields["case"])

	default:
		return nil, d.errorf(n, "expected a statement")
	}
}

func (d *decoder) caseStmt(n *yaml.Node) (*ast.Case, error) {
	fields, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	sn, ok := fields["scrutinee"]
	if !ok {
		return nil, d.errorf(n, "case without a scrutinee")
	}
	scrutinee, err := d.expr(sn)
	if err != nil {
		return nil, err
	}
	cs := construct.Case(scrutinee)
	cs.Loc = d.span(n)
	if arms, ok := fields["arms"]; ok {
		for _, an := range arms.Content {
			arm, err := d.arm(an)
			if err != nil {
				return nil, err
			}
			cs.Arms = append(cs.Arms, arm)
		}
	}
	return cs, nil
}

// arm decodes `{pattern: {ctor: C, bind: [...]}, expr: e}` or `{pattern: ..., body: block}`.
func (d *decoder) arm(n *yaml.Node) (*ast.Arm, error) {
	fields, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	pn, ok := fields["pattern"]
	if !ok {
		return nil, d.errorf(n, "case arm without a pattern")
	}
	pfields, err := d.fields(pn)
	if err != nil {
		return nil, err
	}
	ctorName, err := d.scalar(pfields, pn, "ctor")
	if err != nil {
		return nil, err
	}
	ctor, ok := d.b.Value(ctorName)
	if !ok {
		return nil, d.errorf(pn, "undeclared constructor %s", ctorName)
	}
	var bindings []string
	if bn, ok := pfields["bind"]; ok {
		if err := bn.Decode(&bindings); err != nil {
			return nil, d.errorf(bn, "%v", err)
		}
	}
	if set.From(bindings).Size() != len(bindings) {
		return nil, d.errorf(pn, "duplicate binding in pattern %s", ctorName)
	}
	pat := construct.Pat(ctor, d.b.Syms(bindings...)...)
	pat.Loc = d.span(pn)

	en, hasExpr := fields["expr"]
	bn, hasBody := fields["body"]
	switch {
	case hasExpr && !hasBody:
		e, err := d.expr(en)
		if err != nil {
			return nil, err
		}
		return construct.ArmExpr(pat, e), nil
	case hasBody && !hasExpr:
		body, err := d.block(bn)
		if err != nil {
			return nil, err
		}
		return construct.ArmBlock(pat, body), nil
	default:
		return nil, d.errorf(n, "case arm must have exactly one of expr or body")
	}
}

// expr decodes an expression. A bare integer is a literal and a bare name is an identifier.
func (d *decoder) expr(n *yaml.Node) (ast.Expr, error) {
	loc := ast.Node{Loc: d.span(n)}
	if n.Kind == yaml.ScalarNode {
		if v, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return &ast.Literal{Node: loc, Value: v}, nil
		}
		return &ast.Ident{Node: loc, Symbol: d.b.Sym(n.Value)}, nil
	}

	fields, err := d.fields(n)
	if err != nil {
		return nil, err
	}
	switch {
	case fields["int"] != nil:
		v, err := strconv.ParseInt(fields["int"].Value, 10, 64)
		if err != nil {
			return nil, d.errorf(fields["int"], "invalid integer %q", fields["int"].Value)
		}
		return &ast.Literal{Node: loc, Value: v}, nil

	case fields["id"] != nil:
		name, err := d.scalar(fields, n, "id")
		if err != nil {
			return nil, err
		}
		return &ast.Ident{Node: loc, Symbol: d.b.Sym(name)}, nil

	case fields["op"] != nil:
		op, ok := ast.ParseOperator(fields["op"].Value)
		if !ok {
			return nil, d.errorf(fields["op"], "unknown operator %q", fields["op"].Value)
		}
		ln, rn := fields["left"], fields["right"]
		if ln == nil || rn == nil {
			return nil, d.errorf(n, "operator %s requires left and right operands", op)
		}
		left, err := d.expr(ln)
		if err != nil {
			return nil, err
		}
		right, err := d.expr(rn)
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Node: loc, Op: op, Left: left, Right: right}, nil

	case fields["call"] != nil:
		c, err := d.call(n, fields)
		if err != nil {
			return nil, err
		}
		return c, nil

	case fields["ctor"] != nil:
		name, err := d.scalar(fields, n, "ctor")
		if err != nil {
			return nil, err
		}
		v, ok := d.b.Value(name)
		if !ok {
			return nil, d.errorf(n, "undeclared constructor %s", name)
		}
		args, err := d.args(fields)
		if err != nil {
			return nil, err
		}
		return &ast.Construct{Node: loc, Value: v, Args: args}, nil

	default:
		return nil, d.errorf(n, "expected an expression")
	}
}

// call decodes `{call: f, args: [...]}`, which is both an expression and a statement.
func (d *decoder) call(n *yaml.Node, fields map[string]*yaml.Node) (*ast.Call, error) {
	name, err := d.scalar(fields, n, "call")
	if err != nil {
		return nil, err
	}
	args, err := d.args(fields)
	if err != nil {
		return nil, err
	}
	return &ast.Call{Node: ast.Node{Loc: d.span(n)}, Func: d.b.Sym(name), Args: args}, nil
}

func (d *decoder) args(fields map[string]*yaml.Node) ([]ast.Expr, error) {
	an, ok := fields["args"]
	if !ok {
		return nil, nil
	}
	if an.Kind != yaml.SequenceNode {
		return nil, d.errorf(an, "expected a list of arguments")
	}
	args := make([]ast.Expr, 0, len(an.Content))
	for _, n := range an.Content {
		arg, err := d.expr(n)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// fields returns the values of a mapping node by key.
func (d *decoder) fields(n *yaml.Node) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, d.errorf(n, "expected a mapping")
	}
	fields := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		fields[n.Content[i].Value] = n.Content[i+1]
	}
	return fields, nil
}

func (d *decoder) scalar(fields map[string]*yaml.Node, n *yaml.Node, key string) (string, error) {
	v, ok := fields[key]
	if !ok || v.Kind != yaml.ScalarNode || v.Value == "" {
		return "", d.errorf(n, "expected a name for %q", key)
	}
	return v.Value, nil
}
