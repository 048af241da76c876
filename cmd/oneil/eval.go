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
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/config"
	"github.com/careweather/oneil/internal/eval"
	"github.com/careweather/oneil/internal/resolve"
)

const (
	flagPrecision = "precision"
	flagUnit      = "unit"
	flagFormat    = "format"
)

// newEvalCmd builds the eval subcommand: resolve a root model, evaluate
// it, and print the result.
func newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <model-file>",
		Short: "resolve and evaluate a model",
		Long: `eval resolves a root model's import graph, evaluates every
parameter and test, and prints the result.

A model file's content is the JSON-encoded AST ast.File describes, since
Oneil has no tokenizer of its own (see ast's package doc); the real
source-text front end is supplied by an external parser collaborator.

Examples:

  $ oneil eval rocket.oneil
  $ oneil eval rocket.oneil --unit thrust=kN --precision 4
`,
		Args: cobra.ExactArgs(1),
		RunE: runEval,
	}

	cmd.Flags().Uint32(flagPrecision, 0, "significant digits to display (0 = internal/display's default)")
	cmd.Flags().StringArray(flagUnit, nil, "display parameter <id>=<unit> in its own unit instead of base units")
	cmd.Flags().String(flagFormat, "yaml", `output format: "yaml" or "text"`)

	return cmd
}

func runEval(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("oneil: %w", err)
	}
	root = filepath.ToSlash(root)

	reg := builtin.Standard()

	if path, _ := cmd.Flags().GetString(flagConfig); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return fmt.Errorf("oneil: loading config: %w", err)
		}
		cfg.Apply(reg)
		logger.Printf("applied config from %s", path)
	}

	r := resolve.New(resolve.NewAferoLoader(afero.NewOsFs()), jsonParser{}, reg)
	models, err := r.Resolve(root)
	if err != nil {
		return fmt.Errorf("oneil: resolving %s: %w", root, err)
	}
	logger.Printf("resolved %d model(s) rooted at %s", len(models), root)

	ev := eval.New(models, reg)
	result, err := ev.Evaluate(root)
	if err != nil {
		return fmt.Errorf("oneil: evaluating %s: %w", root, err)
	}

	precision, _ := cmd.Flags().GetUint32(flagPrecision)
	unitFlags, _ := cmd.Flags().GetStringArray(flagUnit)
	displayUnits, err := parseDisplayUnits(unitFlags, reg)
	if err != nil {
		return fmt.Errorf("oneil: %w", err)
	}

	format, _ := cmd.Flags().GetString(flagFormat)
	switch format {
	case "yaml":
		return writeYAML(cmd.OutOrStdout(), result, reg, precision, displayUnits)
	case "text":
		return writeText(cmd.OutOrStdout(), result, reg, precision, displayUnits)
	default:
		return fmt.Errorf("oneil: unknown --format %q", format)
	}
}

// parseDisplayUnits decodes "id=unit" flag values into a lookup the
// renderer consults for each parameter it prints.
func parseDisplayUnits(flags []string, reg *builtin.Registry) (map[string]string, error) {
	out := make(map[string]string, len(flags))
	for _, f := range flags {
		id, unitName, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("--unit value %q must be id=unit", f)
		}
		if _, err := reg.LookupUnit(unitName); err != nil {
			return nil, fmt.Errorf("--unit value %q: %w", f, err)
		}
		out[id] = unitName
	}
	return out, nil
}
