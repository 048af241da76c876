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

package unit_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/careweather/oneil/internal/unit"
)

func mps2() unit.Unit {
	return unit.Divide(unit.Base(unit.Distance), unit.Multiply(unit.Base(unit.Time), unit.Base(unit.Time)))
}

func TestMultiplyAddsExponents(t *testing.T) {
	// m/s * s -> m
	u := unit.Multiply(unit.Divide(unit.Base(unit.Distance), unit.Base(unit.Time)), unit.Base(unit.Time))
	qt.Assert(t, qt.IsTrue(unit.Compatible(u, unit.Base(unit.Distance))))
}

func TestDivideSubtractsExponents(t *testing.T) {
	u := unit.Divide(unit.Base(unit.Distance), unit.Multiply(unit.Base(unit.Time), unit.Base(unit.Time)))
	qt.Assert(t, qt.IsTrue(unit.Compatible(u, mps2())))
}

func TestPowerScalesExponents(t *testing.T) {
	area := unit.Power(unit.Base(unit.Distance), 2)
	qt.Assert(t, qt.Equals(area[unit.Distance], 2.0))
}

func TestCompatibleWithinTolerance(t *testing.T) {
	a := unit.Unit{unit.Distance: 1.0000000001}
	b := unit.Base(unit.Distance)
	qt.Assert(t, qt.IsTrue(unit.Compatible(a, b)))
}

func TestIncompatibleMismatch(t *testing.T) {
	qt.Assert(t, qt.IsFalse(unit.Compatible(unit.Base(unit.Mass), unit.Base(unit.Distance))))
}

func TestDimensionless(t *testing.T) {
	qt.Assert(t, qt.IsTrue(unit.Dimensionless().Dimensionless()))
	ratio := unit.Divide(unit.Base(unit.Distance), unit.Base(unit.Distance))
	qt.Assert(t, qt.IsTrue(ratio.Dimensionless()))
}

func TestSizedUnitConvert(t *testing.T) {
	km := unit.NewSizedUnit(1000, unit.Base(unit.Distance))
	qt.Assert(t, qt.Equals(km.ConvertToBase(2.5), 2500.0))
	qt.Assert(t, qt.Equals(km.ConvertFromBase(2500), 2.5))
}

func TestSizedUnitMultiply(t *testing.T) {
	km := unit.NewSizedUnit(1000, unit.Base(unit.Distance))
	hr := unit.NewSizedUnit(3600, unit.Base(unit.Time))
	kmPerHr := km.Divide(hr)
	qt.Assert(t, qt.Equals(kmPerHr.Magnitude, 1000.0/3600.0))
	qt.Assert(t, qt.IsTrue(unit.Compatible(kmPerHr.Unit, unit.Divide(unit.Base(unit.Distance), unit.Base(unit.Time)))))
}

func TestAffineOffsetIgnoredByMultiply(t *testing.T) {
	degC := &unit.SizedUnit{Magnitude: 1, Unit: unit.Base(unit.Temperature), Offset: 273.15}
	sq := degC.Multiply(degC)
	qt.Assert(t, qt.Equals(sq.Magnitude, 1.0))
	qt.Assert(t, qt.Equals(sq.Offset, 0.0))
}

func TestUnitString(t *testing.T) {
	qt.Assert(t, qt.Equals(mps2().String(), "m/s^2"))
	qt.Assert(t, qt.Equals(unit.Dimensionless().String(), ""))
}
