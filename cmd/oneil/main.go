// Copyright 2026 The Oneil Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command oneil is a thin CLI wrapping the resolver and evaluator: it
// loads a root model, resolves its import graph, evaluates it, and
// prints the result. It carries none of the core evaluation logic
// itself; that lives in internal/resolve and internal/eval.
package main

import (
	"fmt"
	"os"

	"github.com/careweather/oneil/errors"
)

func main() {
	os.Exit(Main())
}

// Main runs the CLI and returns the process exit code. It prints its own
// errors since the root command sets SilenceErrors.
func Main() int {
	cmd, err := New(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := cmd.Execute(); err != nil {
		printErr(err)
		return 1
	}
	return 0
}

// printErr renders a resolver or evaluator failure the way the front end
// of a real Oneil toolchain would: every distinct source position the
// error (or any error it wraps or collects) carries, each followed by
// ": ", on the same line ahead of the message, or the plain message alone
// when it carries none.
func printErr(err error) {
	var list errors.List
	var single errors.Error
	switch {
	case errors.As(err, &list):
		for _, pos := range errors.Positions(list) {
			fmt.Fprintf(os.Stderr, "%s: ", pos)
		}
	case errors.As(err, &single):
		for _, pos := range errors.Positions(single) {
			fmt.Fprintf(os.Stderr, "%s: ", pos)
		}
	}
	fmt.Fprintln(os.Stderr, err)
}
