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

// Package number implements Oneil's scalar/interval number algebra: a
// Number is either a Scalar real or a closed, connected Interval [lo, hi].
// Every operation that produces a new interval endpoint rounds outward
// (lo toward -Inf, hi toward +Inf) using math.Nextafter ULP-widening, so
// the inclusion property holds under IEEE-754 double arithmetic.
package number

import (
	"fmt"
	"math"
)

// Kind distinguishes a Scalar real from a closed Interval.
type Kind int8

const (
	Scalar Kind = iota
	IntervalKind
)

func (k Kind) String() string {
	if k == Scalar {
		return "scalar"
	}
	return "interval"
}

// Number is a scalar real or a closed, connected interval [lo, hi].
// Scalars are not implicitly intervals: promotion to a zero-width interval
// only happens at the call site that needs it.
type Number struct {
	Kind   Kind
	lo, hi float64
}

// NewScalar returns the scalar x.
func NewScalar(x float64) Number { return Number{Kind: Scalar, lo: x, hi: x} }

// NewInterval returns the interval [lo, hi]. It fails if either bound is
// NaN or if lo > hi: intervals are always closed and connected.
func NewInterval(lo, hi float64) (Number, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return Number{}, fmt.Errorf("number: NaN is not representable")
	}
	if lo > hi {
		return Number{}, fmt.Errorf("number: invalid interval [%v, %v]: lo > hi", lo, hi)
	}
	return Number{Kind: IntervalKind, lo: lo, hi: hi}, nil
}

// MustInterval is NewInterval for callers (internal to the evaluator) that
// have already established lo <= hi, e.g. because they computed lo and hi
// as a min/max pair.
func MustInterval(lo, hi float64) Number {
	n, err := NewInterval(lo, hi)
	if err != nil {
		panic(err)
	}
	return n
}

// IsScalar reports whether n is a Scalar.
func (n Number) IsScalar() bool { return n.Kind == Scalar }

// Lo returns the lower bound (for a Scalar, its value).
func (n Number) Lo() float64 { return n.lo }

// Hi returns the upper bound (for a Scalar, its value).
func (n Number) Hi() float64 { return n.hi }

// Scalar returns n's value, valid only when n.IsScalar().
func (n Number) Scalar() float64 { return n.lo }

// asInterval returns n's bounds, promoting a Scalar to a zero-width
// interval for the duration of a single operation.
func asInterval(n Number) (lo, hi float64) { return n.lo, n.hi }

func (n Number) String() string {
	if n.IsScalar() {
		return fmt.Sprintf("%g", n.lo)
	}
	return fmt.Sprintf("%g|%g", n.lo, n.hi)
}

// roundOutLo and roundOutHi implement outward rounding: a freshly
// computed lower bound is nudged one ULP toward -Inf, an upper
// bound one ULP toward +Inf, so that floating-point rounding error during
// the operation itself can never shrink the true enclosure.
func roundOutLo(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Nextafter(x, math.Inf(-1))
}

func roundOutHi(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}
	return math.Nextafter(x, math.Inf(1))
}
