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

package number_test

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/careweather/oneil/internal/number"
)

func TestNewIntervalRejectsInverted(t *testing.T) {
	_, err := number.NewInterval(5, 1)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestNewIntervalRejectsNaN(t *testing.T) {
	_, err := number.NewInterval(math.NaN(), 1)
	qt.Assert(t, qt.Not(qt.IsNil(err)))
}

func TestScalarIsExact(t *testing.T) {
	s := number.NewScalar(3.5)
	qt.Assert(t, qt.IsTrue(s.IsScalar()))
	qt.Assert(t, qt.Equals(s.Scalar(), 3.5))
}

func TestAddScalarStaysExact(t *testing.T) {
	sum := number.Add(number.NewScalar(1), number.NewScalar(2))
	qt.Assert(t, qt.IsTrue(sum.IsScalar()))
	qt.Assert(t, qt.Equals(sum.Scalar(), 3.0))
}

func TestAddIntervalWidens(t *testing.T) {
	x := number.MustInterval(10, 15)
	y := number.MustInterval(0, 5)
	z := number.Add(x, y)
	qt.Assert(t, qt.IsFalse(z.IsScalar()))
	qt.Assert(t, qt.IsTrue(z.Lo() <= 10))
	qt.Assert(t, qt.IsTrue(z.Hi() >= 20))
}

func TestSubIntervalWidens(t *testing.T) {
	// x=10|15, y=0|5, z=x-y => 5|15 per the interval-widening example.
	x := number.MustInterval(10, 15)
	y := number.MustInterval(0, 5)
	z := number.Sub(x, y)
	qt.Assert(t, qt.IsTrue(number.IsClose(z.Lo(), 5, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(z.Hi(), 15, number.DefaultTolerance())))
}

func TestEscapeOperatorCollapsesWidth(t *testing.T) {
	// a=0|1; b=a-a should widen to -1|1, but a--a (Dash) collapses to 0|0.
	a := number.MustInterval(0, 1)
	b := number.Sub(a, a)
	qt.Assert(t, qt.IsTrue(number.IsClose(b.Lo(), -1, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(b.Hi(), 1, number.DefaultTolerance())))

	b2 := number.Dash(a, a)
	qt.Assert(t, qt.IsTrue(number.IsClose(b2.Lo(), 0, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(b2.Hi(), 0, number.DefaultTolerance())))
}

func TestMulFourCorner(t *testing.T) {
	a := number.MustInterval(-2, 3)
	b := number.MustInterval(-1, 4)
	p := number.Mul(a, b)
	// corners: -2*-1=2, -2*4=-8, 3*-1=-3, 3*4=12 -> [-8, 12]
	qt.Assert(t, qt.IsTrue(number.IsClose(p.Lo(), -8, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(p.Hi(), 12, number.DefaultTolerance())))
}

func TestDivByExactZeroScalarErrors(t *testing.T) {
	_, err := number.Div(number.NewScalar(1), number.NewScalar(0))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ae *number.ArithError
	qt.Assert(t, qt.ErrorAs(err, &ae))
	qt.Assert(t, qt.Equals(ae.Code, number.DivisionByZero))
}

func TestDivByStrictlySignedDivisor(t *testing.T) {
	a := number.MustInterval(4, 10)
	b := number.MustInterval(2, 5)
	q, err := number.Div(a, b)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(number.IsClose(q.Lo(), 4.0/5.0, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(q.Hi(), 10.0/2.0, number.DefaultTolerance())))
}

func TestDivByStraddlingDivisorIsUnbounded(t *testing.T) {
	a := number.MustInterval(1, 2)
	b := number.MustInterval(-1, 1)
	q, err := number.Div(a, b)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(math.IsInf(q.Lo(), -1)))
	qt.Assert(t, qt.IsTrue(math.IsInf(q.Hi(), 1)))
}

func TestDivZeroNumeratorByStraddlingDivisorIsZero(t *testing.T) {
	q, err := number.Div(number.NewScalar(0), number.MustInterval(-1, 1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(q.IsScalar()))
	qt.Assert(t, qt.Equals(q.Scalar(), 0.0))
}

func TestModRequiresScalarModulus(t *testing.T) {
	_, err := number.Mod(number.NewScalar(5), number.MustInterval(1, 2))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ae *number.ArithError
	qt.Assert(t, qt.ErrorAs(err, &ae))
	qt.Assert(t, qt.Equals(ae.Code, number.NonScalarModulus))
}

func TestPowRequiresScalarExponent(t *testing.T) {
	_, err := number.Pow(number.NewScalar(2), number.MustInterval(1, 2))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ae *number.ArithError
	qt.Assert(t, qt.ErrorAs(err, &ae))
	qt.Assert(t, qt.Equals(ae.Code, number.NonScalarExponent))
}

func TestPowIntegerSquareOfInterval(t *testing.T) {
	side := number.MustInterval(2, 3)
	area, err := number.Pow(side, number.NewScalar(2))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(number.IsClose(area.Lo(), 4, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(area.Hi(), 9, number.DefaultTolerance())))
}

func TestPowEvenExponentStraddlingZero(t *testing.T) {
	x := number.MustInterval(-3, 2)
	sq, err := number.Pow(x, number.NewScalar(2))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(number.IsClose(sq.Lo(), 0, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.IsClose(sq.Hi(), 9, number.DefaultTolerance())))
}

func TestPowFractionalNegativeBaseErrors(t *testing.T) {
	_, err := number.Pow(number.NewScalar(-4), number.NewScalar(0.5))
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var ae *number.ArithError
	qt.Assert(t, qt.ErrorAs(err, &ae))
	qt.Assert(t, qt.Equals(ae.Code, number.DomainError))
}

func TestPowNegativeIntegerExponent(t *testing.T) {
	v, err := number.Pow(number.NewScalar(2), number.NewScalar(-1))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsTrue(number.IsClose(v.Scalar(), 0.5, number.DefaultTolerance())))
}

func TestCompareOrdering(t *testing.T) {
	a := number.MustInterval(1, 2)
	b := number.MustInterval(3, 4)
	qt.Assert(t, qt.IsTrue(number.Less(a, b, number.DefaultTolerance())))
	qt.Assert(t, qt.IsFalse(number.Less(b, a, number.DefaultTolerance())))
	qt.Assert(t, qt.IsTrue(number.GreaterEqual(b, a, number.DefaultTolerance())))
}

func TestCompareEqualWithinTolerance(t *testing.T) {
	a := number.NewScalar(1.0)
	b := number.NewScalar(1.0 + 1e-13)
	qt.Assert(t, qt.IsTrue(number.Equal(a, b, number.DefaultTolerance())))
}

// TestInclusionProperty is a coarse table-style check of the inclusion
// property: for Add/Sub/Mul, widening the operands to a superset
// interval never shrinks the result below the narrower operands'
// result.
func TestInclusionProperty(t *testing.T) {
	inner := [2]number.Number{number.MustInterval(2, 3), number.MustInterval(5, 6)}
	outer := [2]number.Number{number.MustInterval(1, 4), number.MustInterval(4, 7)}

	ops := []func(a, b number.Number) number.Number{number.Add, number.Sub, number.Mul}
	for _, op := range ops {
		ri := op(inner[0], inner[1])
		ro := op(outer[0], outer[1])
		qt.Assert(t, qt.IsTrue(ro.Lo() <= ri.Lo()))
		qt.Assert(t, qt.IsTrue(ro.Hi() >= ri.Hi()))
	}
}
