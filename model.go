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

package oneil

import (
	"github.com/careweather/oneil/errors"
	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/ir"
)

// Model is one resolved source file: its parameters, tests, and the
// absolute paths of everything it references or uses.
type Model = ir.Model

// Parameter is one parameter declaration within a Model.
type Parameter = ir.Parameter

// Test is one test declaration within a Model.
type Test = ir.Test

// Load resolves and evaluates the model rooted at root using Oneil's
// standard built-in registry: the common case for an embedding program
// that wants a result without constructing its own Resolver/Evaluator
// pair or built-in registry.
func Load(root string, loader FileLoader, parser Parser) (*EvaluatedModel, errors.Error) {
	reg := builtin.Standard()
	models, err := Resolve(root, loader, parser, reg)
	if err != nil {
		return nil, err
	}
	return Evaluate(models, reg, root)
}
