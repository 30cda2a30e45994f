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

package construct

import (
	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/types"
)

// Types

// Type-variable with the given id
func TVar(id int) *types.Var {
	return types.NewVar(types.VarID(id))
}

// Primitive type: `Int`, `Float`, etc
func TPrim(name string) *types.Prim {
	return &types.Prim{Name: name}
}

// Integer type: `Int`
func TInt() *types.Prim { return types.Int() }

// Unit type: `()`
func TUnit() *types.Unit { return types.UnitType() }

// ADT type: `Maybe(Int)`
func TADT(id int, params ...types.Type) *types.ADT {
	return types.NewADT(types.ADTID(id), params...)
}

// Function type: `(Int, Int) -> Int`
func TFunc(args []types.Type, ret types.Type) *types.Func {
	return types.NewFunc(args, ret)
}

// Function type: `(Int) -> Int`
func TFunc1(arg types.Type, ret types.Type) *types.Func {
	return types.NewFunc([]types.Type{arg}, ret)
}

// Function type: `(Int, Int) -> Int`
func TFunc2(arg1, arg2 types.Type, ret types.Type) *types.Func {
	return types.NewFunc([]types.Type{arg1, arg2}, ret)
}

// Expressions:

// Integer literal: `42`
func Lit(value int64) *ast.Literal {
	return &ast.Literal{Value: value}
}

// Identifier reference
func Ident(sym ast.SymbolID) *ast.Ident {
	return &ast.Ident{Symbol: sym}
}

// Binary operation: `x + y`
func Op(op ast.Operator, left, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Op: op, Left: left, Right: right}
}

// Addition: `x + y`
func Add(left, right ast.Expr) *ast.BinOp { return Op(ast.Add, left, right) }

// Multiplication: `x * y`
func Mul(left, right ast.Expr) *ast.BinOp { return Op(ast.Mul, left, right) }

// Equality: `x == y`
func Eq(left, right ast.Expr) *ast.BinOp { return Op(ast.Eq, left, right) }

// Comparison: `x < y`
func Less(left, right ast.Expr) *ast.BinOp { return Op(ast.Less, left, right) }

// Function call: `f(x)`
func Call(f ast.SymbolID, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: f, Args: args}
}

// Data constructor application: `Just(x)`
func Ctor(v ast.ValueID, args ...ast.Expr) *ast.Construct {
	return &ast.Construct{Value: v, Args: args}
}

// Statements:

// Assignment: `x = e`
func Let(sym ast.SymbolID, value ast.Expr) *ast.Assign {
	return &ast.Assign{Target: sym, Value: value}
}

// Update of an existing binding: `x := e`
func Set(sym ast.SymbolID, value ast.Expr) *ast.Assign {
	return &ast.Assign{Target: sym, Update: true, Value: value}
}

// Case statement: `case e { ... }`
func Case(scrutinee ast.Expr, arms ...*ast.Arm) *ast.Case {
	return &ast.Case{Scrutinee: scrutinee, Arms: arms}
}

// Constructor pattern: `Just(x)`
func Pat(v ast.ValueID, bindings ...ast.SymbolID) *ast.Pattern {
	return &ast.Pattern{Constructor: v, Bindings: bindings}
}

// Expression-bodied case arm: `Just(x) -> x`
func ArmExpr(pat *ast.Pattern, e ast.Expr) *ast.Arm {
	return &ast.Arm{Pattern: pat, Expr: e}
}

// Block-bodied case arm: `Just(x) -> { ... }`
func ArmBlock(pat *ast.Pattern, body *ast.Body) *ast.Arm {
	return &ast.Arm{Pattern: pat, Block: body}
}

// Block with a trailing expression: `{ x = 1; x }`
func Block(e ast.Expr, stmts ...ast.Stmt) *ast.Body {
	return &ast.Body{Stmts: stmts, Expr: e}
}

// Block without a trailing expression: `{ f(x); }`
func Stmts(stmts ...ast.Stmt) *ast.Body {
	return &ast.Body{Stmts: stmts}
}

// Function definition: `fn f(x, y) { ... }`
func Func(name ast.SymbolID, params []ast.SymbolID, body *ast.Body) *ast.Func {
	return &ast.Func{Name: name, Params: params, Body: body}
}

// Type expressions:

// Reference to a type parameter
func Param(id ast.TParamID) *ast.TParamRef { return &ast.TParamRef{Param: id} }

// Reference to a primitive type
func Prim(name string) *ast.PrimRef { return &ast.PrimRef{Name: name} }

// Application of a declared type: `List(a)`
func ADT(id types.ADTID, args ...ast.TypeExpr) *ast.ADTRef {
	return &ast.ADTRef{Id: id, Args: args}
}
