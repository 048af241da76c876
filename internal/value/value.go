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

// Package value implements Oneil's value algebra: a typed sum over
// Boolean, String and Measured, plus the checked operations that enforce
// type and unit correctness before delegating to the number layer. The
// value layer exists so that the evaluator never has to ask whether an
// operation is meaningful; by the time a Value comes back out, that
// question has already been answered.
package value

import (
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
)

// Value is the tagged union of Boolean, String and Measured. Operations
// dispatch on the concrete type with a single type switch at entry,
// rather than a class hierarchy; see Measured, Boolean and String below
// for the three cases.
type Value interface {
	// Kind names the variant, for error messages.
	Kind() string
	isValue()
}

// Boolean is a Value holding a bool.
type Boolean bool

func (Boolean) Kind() string { return "boolean" }
func (Boolean) isValue()     {}

// String is a Value holding text.
type String string

func (String) Kind() string { return "string" }
func (String) isValue()     {}

// Measured is a Value holding a dimensioned number: a Unit (empty means
// dimensionless) and a Number (scalar or interval), always expressed in
// base units. A SizedUnit never appears inside a Value.
type Measured struct {
	Unit unit.Unit
	Num  number.Number
}

func (Measured) Kind() string { return "measured" }
func (Measured) isValue()     {}

// NewMeasuredScalar is a convenience constructor for a dimensionless or
// unit-bearing scalar Measured value.
func NewMeasuredScalar(x float64, u unit.Unit) Measured {
	return Measured{Unit: u, Num: number.NewScalar(x)}
}
