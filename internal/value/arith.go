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

func asMeasured(op string, v Value) (Measured, error) {
	m, ok := v.(Measured)
	if !ok {
		return Measured{}, &TypeError{Op: op, Expected: "measured", Got: v.Kind()}
	}
	return m, nil
}

// CheckedAdd returns a+b: both operands must be Measured in compatible
// units, and the result keeps a's unit (the two are interchangeable once
// compatibility is established).
func CheckedAdd(a, b Value) (Value, error) {
	return addSub("+", a, b, number.Add)
}

// CheckedSub returns a-b; see CheckedAdd.
func CheckedSub(a, b Value) (Value, error) {
	return addSub("-", a, b, number.Sub)
}

// CheckedDash returns a--b, the inclusion-breaking escape subtraction
// (see [number.Dash]).
func CheckedDash(a, b Value) (Value, error) {
	return addSub("--", a, b, number.Dash)
}

func addSub(op string, a, b Value, fn func(a, b number.Number) number.Number) (Value, error) {
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
	return Measured{Unit: am.Unit, Num: fn(am.Num, bm.Num)}, nil
}

// CheckedMul returns a*b: units combine via unit.Multiply.
func CheckedMul(a, b Value) (Value, error) {
	am, err := asMeasured("*", a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured("*", b)
	if err != nil {
		return nil, err
	}
	return Measured{Unit: unit.Multiply(am.Unit, bm.Unit), Num: number.Mul(am.Num, bm.Num)}, nil
}

// CheckedDiv returns a/b: units combine via unit.Divide.
func CheckedDiv(a, b Value) (Value, error) {
	am, err := asMeasured("/", a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured("/", b)
	if err != nil {
		return nil, err
	}
	n, err := number.Div(am.Num, bm.Num)
	if err != nil {
		return nil, err
	}
	return Measured{Unit: unit.Divide(am.Unit, bm.Unit), Num: n}, nil
}

// CheckedDashDash returns a//b, the inclusion-breaking escape division
// (see [number.DashDash]).
func CheckedDashDash(a, b Value) (Value, error) {
	am, err := asMeasured("//", a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured("//", b)
	if err != nil {
		return nil, err
	}
	n, err := number.DashDash(am.Num, bm.Num)
	if err != nil {
		return nil, err
	}
	return Measured{Unit: unit.Divide(am.Unit, bm.Unit), Num: n}, nil
}

// CheckedMod returns a%b: the operands must be in compatible units and
// the right operand must be scalar (number.Mod enforces the scalar half;
// unit-wise, a%b keeps a's unit, matching the convention that modulus
// measures a's remainder).
func CheckedMod(a, b Value) (Value, error) {
	am, err := asMeasured("%", a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured("%", b)
	if err != nil {
		return nil, err
	}
	if !unit.Compatible(am.Unit, bm.Unit) {
		return nil, &unit.UnitError{Code: unit.Mismatch, Left: am.Unit, Right: bm.Unit}
	}
	n, err := number.Mod(am.Num, bm.Num)
	if err != nil {
		return nil, err
	}
	return Measured{Unit: am.Unit, Num: n}, nil
}

// CheckedPow returns a^b: b must be dimensionless and scalar; the result
// unit is a's unit raised to b's value. An interval or unit-bearing b is
// rejected here with unit.NonScalarExponent before number.Pow runs.
func CheckedPow(a, b Value) (Value, error) {
	am, err := asMeasured("^", a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured("^", b)
	if err != nil {
		return nil, err
	}
	if !bm.Num.IsScalar() || len(bm.Unit) != 0 {
		return nil, &unit.UnitError{Code: unit.NonScalarExponent}
	}
	n, err := number.Pow(am.Num, bm.Num)
	if err != nil {
		return nil, err
	}
	return Measured{Unit: unit.Power(am.Unit, bm.Num.Scalar()), Num: n}, nil
}

// CheckedAnd, CheckedOr and CheckedNot implement boolean logic; both
// operands must be Boolean.
func CheckedAnd(a, b Value) (Value, error) { return boolOp("and", a, b, func(x, y bool) bool { return x && y }) }
func CheckedOr(a, b Value) (Value, error)  { return boolOp("or", a, b, func(x, y bool) bool { return x || y }) }

func boolOp(op string, a, b Value, fn func(x, y bool) bool) (Value, error) {
	ab, ok := a.(Boolean)
	if !ok {
		return nil, &TypeError{Op: op, Expected: "boolean", Got: a.Kind()}
	}
	bb, ok := b.(Boolean)
	if !ok {
		return nil, &TypeError{Op: op, Expected: "boolean", Got: b.Kind()}
	}
	return Boolean(fn(bool(ab), bool(bb))), nil
}

// CheckedNot returns !a.
func CheckedNot(a Value) (Value, error) {
	ab, ok := a.(Boolean)
	if !ok {
		return nil, &TypeError{Op: "not", Expected: "boolean", Got: a.Kind()}
	}
	return Boolean(!ab), nil
}

// CheckedNeg returns -a: a must be Measured; the unit is unchanged, the
// interval's endpoints swap sign and order.
func CheckedNeg(a Value) (Value, error) {
	am, err := asMeasured("-", a)
	if err != nil {
		return nil, err
	}
	if am.Num.IsScalar() {
		return Measured{Unit: am.Unit, Num: number.NewScalar(-am.Num.Scalar())}, nil
	}
	return Measured{Unit: am.Unit, Num: number.MustInterval(-am.Num.Hi(), -am.Num.Lo())}, nil
}

// CheckedPos returns +a unchanged: unary plus is the identity, kept only
// so the IR doesn't need a special case for a leading "+".
func CheckedPos(a Value) (Value, error) {
	return asMeasured("+", a)
}
