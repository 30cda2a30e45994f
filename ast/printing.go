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

package ast

import (
	"strconv"
	"strings"
)

// Names resolves the source names of symbols and constructors. *Program implements Names.
type Names interface {
	SymbolName(id SymbolID) string
	ValueName(id ValueID) string
}

type idNames struct{}

func (idNames) SymbolName(id SymbolID) string { return "s" + strconv.Itoa(int(id)) }
func (idNames) ValueName(id ValueID) string   { return "v" + strconv.Itoa(int(id)) }

// ExprString returns a string representation of an expression. If names is nil,
// symbols and constructors are printed by id.
func ExprString(e Expr, names Names) string {
	if names == nil {
		names = idNames{}
	}
	var sb strings.Builder
	exprString(&sb, names, false, e)
	return sb.String()
}

func argsString(sb *strings.Builder, names Names, args []Expr) {
	sb.WriteByte('(')
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		exprString(sb, names, false, arg)
	}
	sb.WriteByte(')')
}
