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

package value_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

func kg(x float64) value.Measured {
	return value.NewMeasuredScalar(x, unit.Base(unit.Mass))
}

func meters(x float64) value.Measured {
	return value.NewMeasuredScalar(x, unit.Base(unit.Distance))
}

func TestCheckedAddRequiresMeasured(t *testing.T) {
	_, err := value.CheckedAdd(value.Boolean(true), kg(1))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var te *value.TypeError
	qt.Assert(t, qt.ErrorAs(err, &te))
}

func TestCheckedAddRejectsUnitMismatch(t *testing.T) {
	_, err := value.CheckedAdd(kg(1), meters(1))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ue *unit.UnitError
	qt.Assert(t, qt.ErrorAs(err, &ue))
	qt.Assert(t, qt.Equals(ue.Code, unit.Mismatch))
}

func TestCheckedAddSameUnit(t *testing.T) {
	v, err := value.CheckedAdd(kg(1), kg(2))
	qt.Assert(t, qt.IsNil(err))
	m := v.(value.Measured)
	qt.Assert(t, qt.Equals(m.Num.Scalar(), 3.0))
}

func TestCheckedMulCombinesUnits(t *testing.T) {
	v, err := value.CheckedMul(meters(3), meters(4))
	qt.Assert(t, qt.IsNil(err))
	m := v.(value.Measured)
	qt.Assert(t, qt.Equals(m.Num.Scalar(), 12.0))
	qt.Assert(t, qt.IsTrue(unit.Compatible(m.Unit, unit.Power(unit.Base(unit.Distance), 2))))
}

func TestCheckedDivByZeroPropagatesArithError(t *testing.T) {
	_, err := value.CheckedDiv(meters(1), value.NewMeasuredScalar(0, unit.Dimensionless()))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ae *number.ArithError
	qt.Assert(t, qt.ErrorAs(err, &ae))
}

func TestCheckedPowRejectsIntervalExponent(t *testing.T) {
	base := meters(3)
	exp := value.Measured{Unit: unit.Dimensionless(), Num: number.MustInterval(1, 2)}
	_, err := value.CheckedPow(base, exp)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ue *unit.UnitError
	qt.Assert(t, qt.ErrorAs(err, &ue))
	qt.Assert(t, qt.Equals(ue.Code, unit.NonScalarExponent))
}

func TestCheckedPowRejectsUnitBearingExponent(t *testing.T) {
	side := meters(3)
	_, err := value.CheckedPow(side, side)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ue *unit.UnitError
	qt.Assert(t, qt.ErrorAs(err, &ue))
	qt.Assert(t, qt.Equals(ue.Code, unit.NonScalarExponent))
}

func TestCheckedPowSquareArea(t *testing.T) {
	side := meters(3)
	two := value.NewMeasuredScalar(2, unit.Dimensionless())
	v, err := value.CheckedPow(side, two)
	qt.Assert(t, qt.IsNil(err))
	m := v.(value.Measured)
	qt.Assert(t, qt.Equals(m.Num.Scalar(), 9.0))
	qt.Assert(t, qt.IsTrue(unit.Compatible(m.Unit, unit.Power(unit.Base(unit.Distance), 2))))
}

func TestCheckedEqStringsAndBooleans(t *testing.T) {
	v, err := value.CheckedEq(value.String("pass"), value.String("pass"), number.DefaultTolerance())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Boolean(true))))

	_, err = value.CheckedLt(value.String("a"), value.String("b"), number.DefaultTolerance())
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestCheckedBarScalarsMakeInterval(t *testing.T) {
	v, err := value.CheckedBar(meters(1), meters(5))
	qt.Assert(t, qt.IsNil(err))
	m := v.(value.Measured)
	qt.Assert(t, qt.IsFalse(m.Num.IsScalar()))
	qt.Assert(t, qt.Equals(m.Num.Lo(), 1.0))
	qt.Assert(t, qt.Equals(m.Num.Hi(), 5.0))
}

func TestCheckedBarRejectsUnitMismatch(t *testing.T) {
	_, err := value.CheckedBar(meters(1), kg(1))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestCheckedAndOrNot(t *testing.T) {
	v, err := value.CheckedAnd(value.Boolean(true), value.Boolean(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Boolean(false))))

	v, err = value.CheckedOr(value.Boolean(true), value.Boolean(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Boolean(true))))

	v, err = value.CheckedNot(value.Boolean(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.Boolean(true))))
}

func TestCheckedNeg(t *testing.T) {
	v, err := value.CheckedNeg(kg(5))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Scalar(), -5.0))

	iv := value.Measured{Unit: unit.Base(unit.Mass), Num: number.MustInterval(2, 3)}
	v, err = value.CheckedNeg(iv)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Lo(), -3.0))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Hi(), -2.0))
}
