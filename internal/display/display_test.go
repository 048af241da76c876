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

package display_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/careweather/oneil/internal/display"
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

func TestFormatScalarRoundsToPrecision(t *testing.T) {
	s, err := display.FormatScalar(1.0/3.0, 4)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "0.3333"))
}

func TestFormatIntervalUsesBarSyntax(t *testing.T) {
	s, err := display.FormatInterval(1, 5, 3)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "1|5"))
}

func TestFormatMeasuredDefaultsPrecision(t *testing.T) {
	m := value.Measured{Unit: unit.Base(unit.Mass), Num: number.NewScalar(2.0 / 3.0)}
	s, err := display.FormatMeasured(m, 0)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "0.666667"))
}

func TestFormatInUnitConvertsFromBase(t *testing.T) {
	m := value.Measured{Unit: unit.Base(unit.Mass), Num: number.NewScalar(1000)}
	grams := unit.NewSizedUnit(0.001, unit.Base(unit.Mass))
	s, err := display.FormatInUnit(m, grams, 6)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "1000000"))
}

func TestFormatInUnitRejectsMismatch(t *testing.T) {
	m := value.Measured{Unit: unit.Base(unit.Mass), Num: number.NewScalar(1)}
	meters := unit.NewSizedUnit(1, unit.Base(unit.Distance))
	_, err := display.FormatInUnit(m, meters, 6)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ue *unit.UnitError
	qt.Assert(t, qt.ErrorAs(err, &ue))
}

func TestFormatValueBooleanAndString(t *testing.T) {
	s, err := display.FormatValue(value.Boolean(true), 0)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "true"))

	s, err = display.FormatValue(value.String("ok"), 0)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(s, "ok"))
}
