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
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spruce-lang/typecheck"
	"github.com/spruce-lang/typecheck/internal/progfile"
)

type checkOptions struct {
	trace      bool
	debugTypes bool
}

func newCheckCommand() *cobra.Command {
	var opts checkOptions
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check program files and print the inferred types",
		Long: `Check loads each program file, infers its types and prints one
"name : type" line for each symbol, ordered by where the symbol's
name first occurs in the file.

Checking a file stops at its first type error. The remaining files are still checked.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.trace, "trace", false, "log each inference step to stderr")
	cmd.Flags().BoolVar(&opts.debugTypes, "debug-types", false, "print types with raw type-variable and ADT ids")
	return cmd
}

func runCheck(stdout, stderr io.Writer, files []string, opts checkOptions) error {
	var checkerOpts []typecheck.Option
	if opts.trace {
		h := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		checkerOpts = append(checkerOpts, typecheck.WithLogger(slog.New(h)))
	}
	checker := typecheck.NewChecker(checkerOpts...)
	color := colorEnabled(stderr)

	failed := 0
	for _, path := range files {
		env, err := checkFile(checker, path)
		if err != nil {
			fmt.Fprintln(stderr, formatError(err, color))
			failed++
			continue
		}
		if len(files) > 1 {
			fmt.Fprintf(stdout, "# %s\n", path)
		}
		if opts.debugTypes {
			io.WriteString(stdout, env.DebugString())
		} else {
			io.WriteString(stdout, env.String())
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to check", failed, len(files))
	}
	return nil
}

func checkFile(checker *typecheck.Checker, path string) (*typecheck.Environment, error) {
	prog, err := progfile.Load(path)
	if err != nil {
		return nil, err
	}
	return checker.Check(prog)
}
