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

package eval

import (
	"fmt"
	"strings"

	"github.com/careweather/oneil/errors"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/value"
	"github.com/careweather/oneil/token"
)

var _ errors.Error = (*Error)(nil)

// ErrorCode identifies which evaluation failure mode an Error reports.
type ErrorCode int

const (
	// CircularDependency means two or more parameters in the same model
	// reference each other, directly or transitively.
	CircularDependency ErrorCode = iota
	// LimitViolated means a parameter's evaluated value fell outside its
	// declared limits, beyond tolerance.
	LimitViolated
	// NoPiecewiseMatch means a piecewise expression had no true condition
	// and no otherwise arm.
	NoPiecewiseMatch
	// TestNotBoolean means a test's expression evaluated to a non-Boolean
	// value.
	TestNotBoolean
	// Unimplemented means the expression called a builtin or Python
	// function this evaluator does not carry out.
	Unimplemented
	// MissingInjection means a test named an injected parameter its
	// parent never supplied via `use`; caught internally and turned into
	// a Skipped TestResult rather than surfaced as a model-wide error.
	MissingInjection
)

// Error reports an evaluation-time failure, positioned the same way
// resolve.Error is.
type Error struct {
	Code ErrorCode
	Pos  token.Position

	Model string // model path the error occurred in
	Name  string // parameter id (LimitViolated), builtin/function name (Unimplemented)

	Chain []string // CircularDependency: the dependency cycle, closed

	Value value.Value // LimitViolated: the offending evaluated value
	Limit *ir.Limits   // LimitViolated: the limits it failed
}

func (e *Error) Error() string {
	switch e.Code {
	case CircularDependency:
		return fmt.Sprintf("circular parameter dependency in %s: %s", e.Model, strings.Join(e.Chain, " -> "))
	case LimitViolated:
		return fmt.Sprintf("%s: parameter %q violates its limits: %s", e.Model, e.Name, describeLimit(e.Value, e.Limit))
	case NoPiecewiseMatch:
		return fmt.Sprintf("%s: no piecewise condition matched and no otherwise arm was given", e.Model)
	case TestNotBoolean:
		return fmt.Sprintf("%s: test expression did not evaluate to a boolean", e.Model)
	case Unimplemented:
		return fmt.Sprintf("%s: %q is not implemented", e.Model, e.Name)
	case MissingInjection:
		return fmt.Sprintf("%s: injected name %q was not supplied by the parent", e.Model, e.Name)
	default:
		return "eval error"
	}
}

func describeLimit(v value.Value, lim *ir.Limits) string {
	if lim == nil {
		return fmt.Sprintf("got %v", v)
	}
	if lim.Discrete != nil {
		return fmt.Sprintf("got %v, allowed values are %s", v, strings.Join(lim.Discrete, ", "))
	}
	if lim.Continuous != nil {
		return fmt.Sprintf("got %v, limits are %s", v, lim.Continuous)
	}
	return fmt.Sprintf("got %v", v)
}

func (e *Error) Position() token.Position { return e.Pos }

func (e *Error) Msg() (string, []interface{}) { return e.Error(), nil }
