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
	"github.com/careweather/oneil/internal/eval"
	"github.com/careweather/oneil/internal/ir"
)

// EvaluatedModel is one model's fully evaluated output.
type EvaluatedModel = eval.EvaluatedModel

// TestResult is a single test's outcome.
type TestResult = eval.TestResult

// TestStatus is a TestResult's pass/fail/skip outcome.
type TestStatus = eval.TestStatus

// EvalError is returned by Evaluate when a model fails to evaluate: a
// circular parameter dependency, a violated limit, an unmatched
// piecewise, a non-boolean test, or an unimplemented built-in call.
type EvalError = eval.Error

const (
	Pass    = eval.Pass
	Fail    = eval.Fail
	Skipped = eval.Skipped
)

// Evaluate evaluates the model at root within the resolved graph models,
// using reg for built-in values, functions and units. A non-nil error
// always implements errors.Error.
func Evaluate(models map[string]*ir.Model, reg *builtin.Registry, root string) (*EvaluatedModel, errors.Error) {
	result, err := eval.New(models, reg).Evaluate(root)
	if err != nil {
		return nil, errors.Promote(err, "eval failed")
	}
	return result, nil
}
