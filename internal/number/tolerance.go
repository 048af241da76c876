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

// Tolerance bounds IsClose's notion of numeric equality: two values
// compare equal if they differ by no more than Abs, or by no more than
// Rel times the larger operand's magnitude. It's carried on a Registry
// rather than held as a package default, so a caller can override it by
// constructing a different value instead of mutating shared state.
type Tolerance struct {
	Abs, Rel float64
}

// DefaultTolerance is Oneil's out-of-the-box comparison tolerance.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: 1e-12, Rel: 1e-9}
}

// IsClose reports whether x and y are equal within tol.
func IsClose(x, y float64, tol Tolerance) bool {
	return IsCloseTol(x, y, tol.Abs, tol.Rel)
}

// IsCloseTol reports whether x and y are equal within an explicit
// tolerance: |x-y| <= absTol, or |x-y| <= relTol*max(|x|,|y|).
func IsCloseTol(x, y, absTol, relTol float64) bool {
	diff := math.Abs(x - y)
	if diff <= absTol {
		return true
	}
	return diff <= relTol*math.Max(math.Abs(x), math.Abs(y))
}
