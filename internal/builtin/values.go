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

package builtin

import (
	"math"

	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

func registerValues(r *Registry) {
	r.Values["pi"] = value.NewMeasuredScalar(math.Pi, unit.Dimensionless())
	r.Values["inf"] = value.NewMeasuredScalar(math.Inf(1), unit.Dimensionless())
}

// Standard returns Oneil's default "standard library" registry: the
// required minimal set (min, max, range, sqrt, pi, inf, SI prefixes,
// base units) plus the expansion roster (trig, log, rounding, mid,
// clamp, interp, string helpers, and a supplemental unit catalogue).
func Standard() *Registry {
	r := New()
	registerValues(r)
	registerPrefixes(r)
	registerBaseUnits(r)
	registerMinMaxRange(r)
	registerMath(r)
	registerStrings(r)
	return r
}
