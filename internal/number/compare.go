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

// Two scalars compare with IsClose-based equality; an interval compares
// against another (or a scalar, promoted to a zero-width interval) by
// its endpoints, so ordering and equality agree with "is every value of
// a related to every value of b".

// Equal reports whether a and b are numerically equal within tol: for
// two scalars, within tolerance; otherwise, endpoint-wise.
func Equal(a, b Number, tol Tolerance) bool {
	if a.IsScalar() && b.IsScalar() {
		return IsClose(a.lo, b.lo, tol)
	}
	return IsClose(a.lo, b.lo, tol) && IsClose(a.hi, b.hi, tol)
}

// NotEqual is !Equal(a, b, tol).
func NotEqual(a, b Number, tol Tolerance) bool { return !Equal(a, b, tol) }

// Less reports whether a is strictly less than b: every value a can take
// is less than every value b can take.
func Less(a, b Number, tol Tolerance) bool {
	return a.hi < b.lo && !IsClose(a.hi, b.lo, tol)
}

// LessEqual reports whether a is less than or equal to b: either a.hi
// reaches no higher than b.lo, or a and b are themselves equal (which
// also covers two identical wide intervals, not just coincident
// degenerate ones).
func LessEqual(a, b Number, tol Tolerance) bool {
	return a.hi < b.lo || IsClose(a.hi, b.lo, tol) || Equal(a, b, tol)
}

// Greater reports whether a is strictly greater than b.
func Greater(a, b Number, tol Tolerance) bool { return Less(b, a, tol) }

// GreaterEqual reports whether a is greater than or equal to b.
func GreaterEqual(a, b Number, tol Tolerance) bool { return LessEqual(b, a, tol) }

// Bar implements the "|" interval-construction operator: the smallest
// interval enclosing both operands. A scalar's lo and hi
// already coincide, so the single formula min(a.lo,b.lo)/max(a.hi,b.hi)
// handles the scalar/scalar, interval/interval and mixed cases alike
// without a separate promotion step.
func Bar(a, b Number) Number {
	return MustInterval(min2(a.lo, b.lo), max2(a.hi, b.hi))
}
