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

package typecheck

import (
	"errors"
	"fmt"

	"github.com/spruce-lang/typecheck/ast"
	"github.com/spruce-lang/typecheck/internal/typeutil"
)

// ErrorKind classifies a TypeError.
type ErrorKind int

const (
	// Two types could not be made equal.
	UnificationFailure ErrorKind = iota
	// A type-variable would have to contain itself.
	OccursCheckFailure
	// Arms of a case statement match different types, or mix valued and unit bodies.
	InconsistentCase
	// A definition does not agree with the type guessed for it at an earlier use.
	IncompatibleDefinition
	// The program refers to undeclared types, constructors or symbols.
	MalformedProgram
)

var kindNames = [...]string{
	UnificationFailure:     "unification failure",
	OccursCheckFailure:     "occurs check failure",
	InconsistentCase:       "inconsistent case",
	IncompatibleDefinition: "incompatible definition",
	MalformedProgram:       "malformed program",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
	return kindNames[k]
}

// TypeError is the single error reported by a failed type-check, located at the
// construct which could not be typed.
type TypeError struct {
	Kind    ErrorKind
	Message string
	Loc     ast.Span
	// Err is the underlying cause, if any (e.g. a *typeutil.UnifyError).
	Err error
}

func (e *TypeError) Error() string { return e.Loc.String() + ": " + e.Message }

func (e *TypeError) Unwrap() error { return e.Err }

// unifyError locates a unification error. Errors which are already located are returned as-is.
func unifyError(err error, loc ast.Span) error {
	var terr *TypeError
	if errors.As(err, &terr) {
		return err
	}
	kind := UnificationFailure
	var uerr *typeutil.UnifyError
	if errors.As(err, &uerr) && uerr.Cyclic {
		kind = OccursCheckFailure
	}
	return &TypeError{Kind: kind, Message: err.Error(), Loc: loc, Err: err}
}

func malformedError(loc ast.Span, format string, args ...interface{}) error {
	return &TypeError{Kind: MalformedProgram, Message: fmt.Sprintf(format, args...), Loc: loc}
}
