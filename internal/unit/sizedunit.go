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

package unit

import "math"

// SizedUnit is a user-level unit: a magnitude paired with a Unit, e.g. km
// (Magnitude 1000, Unit Distance=1) or km/hr. SizedUnits never appear
// inside evaluated values: parameter evaluation eagerly folds the
// magnitude into the numeric value, so all stored values are in base
// units.
//
// Offset supports affine conversions (°C, °F) on top of a purely
// multiplicative magnitude: ConvertToBase/ConvertFromBase apply it,
// while Multiply/Divide, which only ever combine derived units and never
// two affine ones, ignore it and zero it in the result, since an affine
// offset has no meaning once combined with another unit.
type SizedUnit struct {
	Magnitude float64
	Unit      Unit
	Offset    float64
}

// NewSizedUnit returns a purely multiplicative SizedUnit (Offset 0).
func NewSizedUnit(magnitude float64, u Unit) *SizedUnit {
	return &SizedUnit{Magnitude: magnitude, Unit: u}
}

// Multiply returns the SizedUnit for a*b: magnitudes multiply, units
// combine per Multiply.
func (a *SizedUnit) Multiply(b *SizedUnit) *SizedUnit {
	return &SizedUnit{Magnitude: a.Magnitude * b.Magnitude, Unit: Multiply(a.Unit, b.Unit)}
}

// Divide returns the SizedUnit for a/b: magnitudes divide, units combine
// per Divide.
func (a *SizedUnit) Divide(b *SizedUnit) *SizedUnit {
	return &SizedUnit{Magnitude: a.Magnitude / b.Magnitude, Unit: Divide(a.Unit, b.Unit)}
}

// Power returns the SizedUnit for a^n.
func (a *SizedUnit) Power(n float64) *SizedUnit {
	return &SizedUnit{Magnitude: math.Pow(a.Magnitude, n), Unit: Power(a.Unit, n)}
}

// ConvertToBase converts value (expressed in u) to the base unit.
func (u *SizedUnit) ConvertToBase(value float64) float64 {
	return value*u.Magnitude + u.Offset
}

// ConvertFromBase converts a base-unit value into u's display units.
func (u *SizedUnit) ConvertFromBase(value float64) float64 {
	return (value - u.Offset) / u.Magnitude
}
