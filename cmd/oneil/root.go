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

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// flagConfig names the --config persistent flag: the path to an optional
// oneil.toml carrying tolerance and unit-prefix overrides.
const flagConfig = "config"

// New builds the root oneil command and wires its subcommands. The
// returned error is always nil; it exists so callers that expect a
// fallible constructor (mirroring larger CLIs that do real setup work
// here) aren't surprised later.
func New(args []string) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "oneil",
		Short: "resolve and evaluate Oneil engineering models",

		// Errors are reported by the caller, not printed twice.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().String(flagConfig, "", "path to an oneil.toml config file")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newUnitsCmd())

	root.SetArgs(args)
	return root, nil
}

// logger is the package-wide progress logger, used the way cmd/cue's own
// subcommands write short diagnostic lines rather than reaching for a
// structured logging framework the core itself never uses.
var logger = log.New(os.Stderr, "oneil: ", 0)
