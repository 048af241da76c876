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

package builtin_test

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

func TestStandardHasRequiredMinimalSet(t *testing.T) {
	r := builtin.Standard()
	for _, name := range []string{"min", "max", "range", "sqrt"} {
		_, ok := r.LookupFunc(name)
		qt.Assert(t, qt.IsTrue(ok))
	}
	for _, name := range []string{"pi", "inf"} {
		_, ok := r.LookupValue(name)
		qt.Assert(t, qt.IsTrue(ok))
	}
}

func TestLookupUnitAppliesPrefix(t *testing.T) {
	r := builtin.Standard()
	km, err := r.LookupUnit("km")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(km.Magnitude, 1000.0))
	qt.Assert(t, qt.IsTrue(unit.Compatible(km.Unit, unit.Base(unit.Distance))))
}

func TestLookupUnitAliases(t *testing.T) {
	r := builtin.Standard()
	in, err := r.LookupUnit("in")
	qt.Assert(t, qt.IsNil(err))
	inch, err := r.LookupUnit("inch")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(in.Magnitude, inch.Magnitude))
}

func TestHzIsTwoPiRadPerSecond(t *testing.T) {
	r := builtin.Standard()
	hz, err := r.LookupUnit("Hz")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(isCloseHz(hz.Magnitude, 2*math.Pi)))
}

func isCloseHz(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCallUnknownBuiltinIsUnimplemented(t *testing.T) {
	r := builtin.Standard()
	_, err := r.Call("fft", nil)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ue *builtin.UnimplementedError
	qt.Assert(t, qt.ErrorAs(err, &ue))
}

func TestMinMaxRange(t *testing.T) {
	r := builtin.Standard()
	a := value.NewMeasuredScalar(3, unit.Base(unit.Distance))
	b := value.NewMeasuredScalar(7, unit.Base(unit.Distance))

	fn, _ := r.LookupFunc("min")
	v, err := fn([]value.Value{a, b})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Scalar(), 3.0))

	fn, _ = r.LookupFunc("max")
	v, err = fn([]value.Value{a, b})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Scalar(), 7.0))

	fn, _ = r.LookupFunc("range")
	v, err = fn([]value.Value{a, b})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Scalar(), 4.0))
}

func TestSqrtRejectsNegative(t *testing.T) {
	r := builtin.Standard()
	fn, _ := r.LookupFunc("sqrt")
	_, err := fn([]value.Value{value.NewMeasuredScalar(-1, unit.Dimensionless())})
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestStringHelpers(t *testing.T) {
	r := builtin.Standard()
	fn, _ := r.LookupFunc("upper")
	v, err := fn([]value.Value{value.String("abc")})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, value.Value(value.String("ABC"))))

	fn, _ = r.LookupFunc("len")
	v, err = fn([]value.Value{value.String("abcd")})
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v.(value.Measured).Num.Scalar(), 4.0))
}
