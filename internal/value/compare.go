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

package value

import (
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
)

// CheckedEq and CheckedNe support all three variants: booleans compare by
// value, strings compare by content, Measured values compare numerically
// (within tol) once their units are established to be compatible.
func CheckedEq(a, b Value, tol number.Tolerance) (Value, error) { return eqNe("==", a, b, false, tol) }
func CheckedNe(a, b Value, tol number.Tolerance) (Value, error) { return eqNe("!=", a, b, true, tol) }

func eqNe(op string, a, b Value, negate bool, tol number.Tolerance) (Value, error) {
	if a.Kind() != b.Kind() {
		return nil, &TypeError{Op: op, Expected: a.Kind(), Got: b.Kind()}
	}
	var eq bool
	switch av := a.(type) {
	case Boolean:
		eq = av == b.(Boolean)
	case String:
		eq = av == b.(String)
	case Measured:
		bv := b.(Measured)
		if !unit.Compatible(av.Unit, bv.Unit) {
			return nil, &unit.UnitError{Code: unit.Mismatch, Left: av.Unit, Right: bv.Unit}
		}
		eq = number.Equal(av.Num, bv.Num, tol)
	}
	if negate {
		eq = !eq
	}
	return Boolean(eq), nil
}

// ordering implements lt/le/gt/ge, which are restricted to Measured
// values: strings and booleans only support eq/ne.
func ordering(op string, a, b Value, tol number.Tolerance, fn func(x, y number.Number, tol number.Tolerance) bool) (Value, error) {
	am, err := asMeasured(op, a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured(op, b)
	if err != nil {
		return nil, err
	}
	if !unit.Compatible(am.Unit, bm.Unit) {
		return nil, &unit.UnitError{Code: unit.Mismatch, Left: am.Unit, Right: bm.Unit}
	}
	return Boolean(fn(am.Num, bm.Num, tol)), nil
}

func CheckedLt(a, b Value, tol number.Tolerance) (Value, error) { return ordering("<", a, b, tol, number.Less) }
func CheckedLe(a, b Value, tol number.Tolerance) (Value, error) { return ordering("<=", a, b, tol, number.LessEqual) }
func CheckedGt(a, b Value, tol number.Tolerance) (Value, error) { return ordering(">", a, b, tol, number.Greater) }
func CheckedGe(a, b Value, tol number.Tolerance) (Value, error) { return ordering(">=", a, b, tol, number.GreaterEqual) }
