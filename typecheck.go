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

// typecheck provides type inference for spruce, a small functional language with
// algebraic data types, case statements and mutually-recursive top-level functions.
//
// Inference is constraint-based in the style of Hindley-Milner, without let-generalization.
// Every expression is checked against an expected type, producing a substitution over
// type-variables which is threaded through the remainder of the definition.
//
//
// Supported Features:
//
//   * Forward references and mutual recursion between top-level definitions
//   * Parametric algebraic data types and data constructors
//   * Case statements over constructor patterns, with unit-typed statement arms
//   * Structured trace logging of each inference step
//
//
// Definitions are checked in declaration order: top-level assignments first, then functions.
// A symbol's type is tentative until the definition which introduced it has been checked,
// after which it is finalized and no longer refined.
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Unification (computer science): https://en.wikipedia.org/wiki/Unification_(computer_science)
package typecheck
