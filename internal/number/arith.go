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

package number

import "math"

// sign classifies an interval's position relative to zero. Division
// dispatches on it directly, since the zero-straddling cases need
// distinct handling that a single closed-form expression can't give.
type sign int8

const (
	sZero      sign = iota // [0,0]
	sPositive0             // lo==0, hi>0
	sPositive1             // lo>0
	sNegative0             // hi==0, lo<0
	sNegative1             // hi<0
	sMixed                 // lo<0<hi
)

func classify(n Number) sign {
	lo, hi := n.lo, n.hi
	switch {
	case lo == 0 && hi == 0:
		return sZero
	case lo == 0:
		return sPositive0
	case lo > 0:
		return sPositive1
	case hi == 0:
		return sNegative0
	case hi < 0:
		return sNegative1
	default:
		return sMixed
	}
}

// Add returns a+b. Scalar+scalar stays exact; otherwise every new bound
// is rounded outward.
func Add(a, b Number) Number {
	if a.IsScalar() && b.IsScalar() {
		return NewScalar(a.lo + b.lo)
	}
	return MustInterval(roundOutLo(a.lo+b.lo), roundOutHi(a.hi+b.hi))
}

// Sub returns a-b: ⟨a,b⟩-⟨c,d⟩ = ⟨a-d, b-c⟩. This is not the same
// operator as Dash/DashDash, which break the inclusion property on
// purpose so a dependent quantity can be subtracted from itself without
// spuriously widening.
func Sub(a, b Number) Number {
	if a.IsScalar() && b.IsScalar() {
		return NewScalar(a.lo - b.lo)
	}
	return MustInterval(roundOutLo(a.lo-b.hi), roundOutHi(a.hi-b.lo))
}

// Dash returns a-b computed endpoint-wise without inclusion (a.lo-b.lo,
// a.hi-b.hi). It's the "--" escape operator: when b is syntactically the
// same expression as a, a--b collapses the width to zero instead of
// doubling it, since the two occurrences of the underlying variable
// covary rather than vary independently.
func Dash(a, b Number) Number {
	if a.IsScalar() && b.IsScalar() {
		return NewScalar(a.lo - b.lo)
	}
	// A difference of exactly 0 is exact (x-y == 0 only when x == y), so
	// it is kept as 0 rather than widened.
	out := func(d float64, round func(float64) float64) float64 {
		if d == 0 {
			return 0
		}
		return round(d)
	}
	dLo, dHi := a.lo-b.lo, a.hi-b.hi
	return MustInterval(min2(out(dLo, roundOutLo), out(dHi, roundOutLo)), max2(out(dLo, roundOutHi), out(dHi, roundOutHi)))
}

// DashDash is the "//" escape operator for division: ⟨min(a)/min(b),
// max(a)/max(b)⟩, endpoint-wise rather than inclusion-preserving, for the
// same reason as Dash.
func DashDash(a, b Number) (Number, error) {
	if a.IsScalar() && b.IsScalar() {
		if b.lo == 0 {
			return Number{}, &ArithError{Code: DivisionByZero, Func: "//"}
		}
		return NewScalar(a.lo / b.lo), nil
	}
	if b.lo == 0 || b.hi == 0 {
		return Number{}, &ArithError{Code: DivisionByZero, Func: "//"}
	}
	lo := a.lo / b.lo
	hi := a.hi / b.hi
	return MustInterval(roundOutLo(min2(lo, hi)), roundOutHi(max2(lo, hi))), nil
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// Mul returns a*b. The four corner-products min/max formula holds for
// every combination of operand signs, so it's used directly instead of a
// sign-classification table.
func Mul(a, b Number) Number {
	if a.IsScalar() && b.IsScalar() {
		return NewScalar(a.lo * b.lo)
	}
	p1, p2, p3, p4 := a.lo*b.lo, a.lo*b.hi, a.hi*b.lo, a.hi*b.hi
	lo := min4(p1, p2, p3, p4)
	hi := max4(p1, p2, p3, p4)
	return MustInterval(roundOutLo(lo), roundOutHi(hi))
}

func min4(a, b, c, d float64) float64 { return min2(min2(a, b), min2(c, d)) }
func max4(a, b, c, d float64) float64 { return max2(max2(a, b), max2(c, d)) }

// Div returns a/b. A zero (exactly [0,0]) divisor is always an error. A
// divisor touching zero at one boundary, or straddling it, produces an
// unbounded or doubly-unbounded result under the extended-arithmetic
// convention documented below, rather than an error.
func Div(a, b Number) (Number, error) {
	if b.IsScalar() {
		if b.lo == 0 {
			return Number{}, &ArithError{Code: DivisionByZero, Func: "/"}
		}
		if a.IsScalar() {
			return NewScalar(a.lo / b.lo), nil
		}
		inv := 1 / b.lo
		lo, hi := a.lo*inv, a.hi*inv
		if inv < 0 {
			lo, hi = hi, lo
		}
		return MustInterval(roundOutLo(lo), roundOutHi(hi)), nil
	}

	switch classify(b) {
	case sZero:
		return Number{}, &ArithError{Code: DivisionByZero, Func: "/"}

	case sPositive1, sNegative1:
		// b strictly one-signed: reciprocal is a well-defined, monotonic
		// interval [1/hi, 1/lo], and a/b = a * (1/b).
		recipLo, recipHi := 1/b.hi, 1/b.lo
		return Mul(a, MustInterval(recipLo, recipHi)), nil

	default:
		// b touches or straddles zero (sPositive0, sNegative0, sMixed):
		// the reciprocal is half- or doubly-unbounded. Per the extended
		// convention 0*Inf := 0 (to keep a numerator of exactly 0 finite
		// rather than NaN), a numerator that is exactly the scalar 0
		// divides to 0 regardless of how wide the divisor's reciprocal
		// is; any other numerator yields the full real line, since the
		// divisor's interval includes values arbitrarily close to zero.
		if a.IsScalar() && a.lo == 0 {
			return NewScalar(0), nil
		}
		return MustInterval(math.Inf(-1), math.Inf(1)), nil
	}
}

// Mod returns a%b. The right operand must be a scalar: the value of x%y
// depends on where within its interval y falls, so an interval modulus
// has no single well-defined result.
func Mod(a, b Number) (Number, error) {
	if !b.IsScalar() {
		return Number{}, &ArithError{Code: NonScalarModulus, Func: "%"}
	}
	if b.lo == 0 {
		return Number{}, &ArithError{Code: DivisionByZero, Func: "%"}
	}
	if a.IsScalar() {
		return NewScalar(math.Mod(a.lo, b.lo)), nil
	}
	// a%b for an interval a and scalar b is periodic, not monotonic, so
	// it's defined only in terms of the endpoints: evaluate at each bound
	// and enclose.
	lo := math.Mod(a.lo, b.lo)
	hi := math.Mod(a.hi, b.lo)
	if lo > hi {
		lo, hi = hi, lo
	}
	return MustInterval(roundOutLo(lo), roundOutHi(hi)), nil
}

// Pow returns a^n. The exponent must be a scalar: the unit of x^y is
// only well-defined when y doesn't vary.
func Pow(a, n Number) (Number, error) {
	if !n.IsScalar() {
		return Number{}, &ArithError{Code: NonScalarExponent, Func: "^"}
	}
	e := n.lo

	if a.IsScalar() {
		v, err := scalarPow(a.lo, e)
		if err != nil {
			return Number{}, err
		}
		return NewScalar(v), nil
	}

	if e == 0 {
		return NewScalar(1), nil
	}
	if e < 0 {
		pos, err := Pow(a, NewScalar(-e))
		if err != nil {
			return Number{}, err
		}
		return Div(NewScalar(1), pos)
	}

	if e == math.Trunc(e) {
		return intPow(a, e)
	}
	return fracPow(a, e)
}

func scalarPow(x, e float64) (float64, error) {
	if x < 0 && e != math.Trunc(e) {
		return 0, &ArithError{Code: DomainError, Func: "^", Arg: "base"}
	}
	return math.Pow(x, e), nil
}

// intPow handles a non-negative integer exponent applied to an interval
// base, per the standard even/odd case analysis.
func intPow(a Number, e float64) (Number, error) {
	odd := math.Mod(e, 2) != 0
	lo, hi := math.Pow(a.lo, e), math.Pow(a.hi, e)
	if odd {
		if lo > hi {
			lo, hi = hi, lo
		}
		return MustInterval(roundOutLo(lo), roundOutHi(hi)), nil
	}
	switch classify(a) {
	case sPositive0, sPositive1:
		return MustInterval(roundOutLo(lo), roundOutHi(hi)), nil
	case sNegative0, sNegative1:
		if lo > hi {
			lo, hi = hi, lo
		}
		return MustInterval(roundOutLo(lo), roundOutHi(hi)), nil
	case sZero:
		return NewScalar(0), nil
	default: // sMixed
		top := max2(lo, hi)
		return MustInterval(0, roundOutHi(top)), nil
	}
}

// fracPow handles a non-integer exponent, which requires a non-negative
// base: the conservative choice of rejecting a complex-valued result
// outright.
func fracPow(a Number, e float64) (Number, error) {
	if a.lo < 0 {
		return Number{}, &ArithError{Code: DomainError, Func: "^", Arg: "base"}
	}
	lo, hi := math.Pow(a.lo, e), math.Pow(a.hi, e)
	return MustInterval(roundOutLo(lo), roundOutHi(hi)), nil
}
