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

package unit

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// exponentAbsTol and exponentRelTol bound the tolerance Compatible uses
// when comparing two dimensions' exponents.
const (
	exponentAbsTol = 1e-9
	exponentRelTol = 1e-9
)

// Unit maps each Dimension with a non-zero exponent to that exponent. A
// Unit is dimensionless iff the map is empty. The zero value is the
// dimensionless unit.
type Unit map[Dimension]float64

// Dimensionless is the empty unit.
func Dimensionless() Unit { return Unit{} }

// Base returns the unit consisting of a single dimension raised to the
// first power, e.g. Base(Distance) is "m".
func Base(d Dimension) Unit { return Unit{d: 1} }

// Dimensionless reports whether u carries no dimension.
func (u Unit) Dimensionless() bool {
	return Compatible(u, Unit{})
}

// clone returns a defensive copy of u with zero exponents dropped.
func (u Unit) clone() Unit {
	out := make(Unit, len(u))
	for d, e := range u {
		if e != 0 {
			out[d] = e
		}
	}
	return out
}

// Multiply returns the unit for a*b: pointwise addition of exponents.
func Multiply(a, b Unit) Unit {
	out := a.clone()
	for d, e := range b {
		out[d] += e
		if isCloseTol(out[d], 0, exponentAbsTol, exponentRelTol) {
			delete(out, d)
		}
	}
	return out
}

// Divide returns the unit for a/b: pointwise subtraction of exponents.
func Divide(a, b Unit) Unit {
	out := a.clone()
	for d, e := range b {
		out[d] -= e
		if isCloseTol(out[d], 0, exponentAbsTol, exponentRelTol) {
			delete(out, d)
		}
	}
	return out
}

// Power returns the unit for a^n: every exponent scaled by n.
func Power(a Unit, n float64) Unit {
	out := make(Unit, len(a))
	for d, e := range a {
		v := e * n
		if !isCloseTol(v, 0, exponentAbsTol, exponentRelTol) {
			out[d] = v
		}
	}
	return out
}

// Compatible reports whether a and b have equal exponents for every
// dimension, within tolerance.
func Compatible(a, b Unit) bool {
	dims := make(map[Dimension]struct{}, len(a)+len(b))
	for d := range a {
		dims[d] = struct{}{}
	}
	for d := range b {
		dims[d] = struct{}{}
	}
	for d := range dims {
		if !isCloseTol(a[d], b[d], exponentAbsTol, exponentRelTol) {
			return false
		}
	}
	return true
}

func isCloseTol(x, y, absTol, relTol float64) bool {
	diff := math.Abs(x - y)
	if diff <= absTol {
		return true
	}
	return diff <= relTol*math.Max(math.Abs(x), math.Abs(y))
}

// String renders u as a conventional numerator/denominator expression,
// e.g. "m/s^2" or "kg*m/s^2". The dimensionless unit renders as "".
func (u Unit) String() string {
	type term struct {
		sym string
		exp float64
	}
	var terms []term
	for d, e := range u {
		if e == 0 {
			continue
		}
		terms = append(terms, term{d.BaseSymbol(), e})
	}
	sort.Slice(terms, func(i, j int) bool { return terms[i].sym < terms[j].sym })

	var num, den []string
	for _, t := range terms {
		switch {
		case t.exp == 1:
			num = append(num, t.sym)
		case t.exp > 0:
			num = append(num, fmt.Sprintf("%s^%s", t.sym, trimExp(t.exp)))
		case t.exp == -1:
			den = append(den, t.sym)
		default:
			den = append(den, fmt.Sprintf("%s^%s", t.sym, trimExp(-t.exp)))
		}
	}
	switch {
	case len(num) == 0 && len(den) == 0:
		return ""
	case len(den) == 0:
		return strings.Join(num, "*")
	case len(num) == 0:
		return "1/" + strings.Join(den, "*")
	default:
		return strings.Join(num, "*") + "/" + strings.Join(den, "*")
	}
}

func trimExp(e float64) string {
	if e == math.Trunc(e) {
		return fmt.Sprintf("%d", int64(e))
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", e), "0"), ".")
}

// UnitErrorCode distinguishes the ways a unit-algebra operation can fail.
type UnitErrorCode int

const (
	// Mismatch means two units were required to be compatible but are not.
	Mismatch UnitErrorCode = iota
	// NonScalarExponent means the exponent of x^y was an interval or
	// carried a unit.
	NonScalarExponent
)

// UnitError reports a unit-algebra failure.
type UnitError struct {
	Code        UnitErrorCode
	Left, Right Unit
}

func (e *UnitError) Error() string {
	switch e.Code {
	case NonScalarExponent:
		return "exponent must be a scalar: unit of x^y depends on the value of y"
	default:
		ls, rs := e.Left.String(), e.Right.String()
		if ls == "" {
			ls = "dimensionless"
		}
		if rs == "" {
			rs = "dimensionless"
		}
		return fmt.Sprintf("incompatible units: %s vs %s", ls, rs)
	}
}
