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

package cli

import (
	"bytes"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck(t *testing.T) {
	stdout, stderr, err := execute(t, "check", filepath.Join("testdata", "inc.yaml"))
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, "x : Int\ninc : (Int) -> Int\nn : Int\nident : (a) -> a\nv : a\n", stdout)
}

func TestCheckDebugTypes(t *testing.T) {
	stdout, _, err := execute(t, "check", "--debug-types", filepath.Join("testdata", "inc.yaml"))
	require.NoError(t, err)
	require.Regexp(t, regexp.MustCompile(`(?m)^ident : \(t(\d+)\) -> t(\d+)$`), stdout)
	require.Contains(t, stdout, "inc : (Int) -> Int\n")
}

func TestCheckTypeError(t *testing.T) {
	bad := filepath.Join("testdata", "bad.yaml")
	stdout, stderr, err := execute(t, "check", bad, filepath.Join("testdata", "inc.yaml"))
	require.EqualError(t, err, "1 of 2 files failed to check")
	require.Regexp(t, `^error: `+regexp.QuoteMeta(bad)+`:7:\d+: Unification failed between `, stderr)
	require.Contains(t, stdout, "# testdata/inc.yaml\n")
}

func TestCheckMissingFile(t *testing.T) {
	_, stderr, err := execute(t, "check", filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, stderr, "missing.yaml")
}

func TestCheckTrace(t *testing.T) {
	_, stderr, err := execute(t, "check", "--trace", filepath.Join("testdata", "inc.yaml"))
	require.NoError(t, err)
	require.Contains(t, stderr, "msg=typecheck")
	require.Contains(t, stderr, `msg="finalized definition" name=inc`)
}

func TestCheckRequiresFiles(t *testing.T) {
	_, _, err := execute(t, "check")
	require.Error(t, err)
}

func TestFormatError(t *testing.T) {
	err := execErr("boom")
	require.Equal(t, "error: boom", formatError(err, false))
	require.Equal(t, colorRed+"error: "+colorReset+"boom", formatError(err, true))
	require.False(t, colorEnabled(&bytes.Buffer{}))
}

type execErr string

func (e execErr) Error() string { return string(e) }
