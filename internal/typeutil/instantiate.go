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
	"github.com/spruce-lang/typecheck/types"
)

// Refresh allocates one fresh type-variable for each distinct type-variable in t,
// in ascending id order, and returns the renaming from old to fresh variables.
func Refresh(vt *VarTracker, t types.Type) types.Subst {
	free := types.FreeVars(t)
	s := make(types.Subst, free.Size())
	for id := range free.Items() {
		s[id] = vt.New()
	}
	return s
}

// Instantiate returns a copy of t in which every type-variable is replaced by a fresh one.
func Instantiate(vt *VarTracker, t types.Type) types.Type {
	return types.Apply(Refresh(vt, t), t)
}
