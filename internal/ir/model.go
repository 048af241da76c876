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

package ir

import (
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/token"
)

// UnitTerm is one factor of a parameter's unit expression before folding:
// a named unit, the exponent it's raised to, and whether it appeared in
// the expression's denominator. Resolve folds the list of terms for a
// parameter into a single *unit.SizedUnit.
type UnitTerm struct {
	Pos         token.Position
	Name        string
	Exponent    float64
	Denominator bool
}

// Limits is a parameter's optional value constraint: exactly one of
// Continuous or Discrete is set.
type Limits struct {
	// Continuous bounds a Measured value's interval, checked with
	// tolerance at both endpoints.
	Continuous *number.Number
	// Discrete is the finite set of strings a String value must belong to.
	Discrete []string
}

// Parameter is one declaration in a Model: a named, optionally
// limit-checked, optionally unit-bearing quantity computed from Expr.
type Parameter struct {
	Pos  token.Position
	ID   string // unique within its model
	Name string // human-readable name

	Limits *Limits // nil if the parameter has no limits
	Expr   Expr

	UnitExpr []UnitTerm      // as written, before folding
	Unit     *unit.SizedUnit // folded result; nil until Resolve's step 7 runs

	// Performance marks a parameter computed purely for diagnostic
	// inspection rather than as a model input other parameters depend on.
	Performance bool
}

// Test is a boolean assertion against a model, with any parameter names
// it expects its parent to inject.
type Test struct {
	Pos    token.Position
	Expr   Expr
	Inject []string // parameter names supplied by the parent's `use` clause
}

// Model is one resolved source file: its declarations partitioned by
// kind, with every reference and submodel import resolved to an
// absolute path.
type Model struct {
	Path string

	Parameters []*Parameter
	Tests      []*Test

	// References maps a reference alias to the absolute path of the
	// referenced model. Every submodel import also adds an entry here
	// under its submodel name or alias.
	References map[string]string
	// Submodels maps a submodel alias to the absolute path of the used
	// model.
	Submodels map[string]string
	// PythonImports lists the absolute paths validated to exist at
	// resolution time; their contents are never loaded.
	PythonImports []string
	// PythonAliases maps a python import's alias to its absolute path,
	// the namespace a Call's Fun ident is resolved against.
	PythonAliases map[string]string
}

// Parameter looks up a parameter by its local id.
func (m *Model) Parameter(id string) (*Parameter, bool) {
	for _, p := range m.Parameters {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
