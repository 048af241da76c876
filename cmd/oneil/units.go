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
	"fmt"
	"slices"
	"sort"

	"github.com/spf13/cobra"

	"github.com/careweather/oneil/internal/builtin"
)

// newUnitsCmd lists the standard registry's canonical unit and prefix
// spellings, deduplicated the way a registry merging a caller's extra
// prefixes (internal/config) with the standard catalogue might produce
// duplicate symbols across the two sources.
func newUnitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "list the built-in registry's unit and prefix symbols",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := builtin.Standard()

			var names []string
			for sym := range reg.Units {
				names = append(names, sym)
			}
			for sym := range reg.Prefixes {
				names = append(names, sym)
			}
			sort.Strings(names)
			names = slices.Compact(names)

			out := cmd.OutOrStdout()
			for _, n := range names {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
	return cmd
}
