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
	"slices"
	"sort"

	"github.com/careweather/oneil/internal/unit"
)

// siPrefixes is the required y(1e-24)..Y(1e24) SI prefix ladder.
var siPrefixes = map[string]float64{
	"y": 1e-24, "z": 1e-21, "a": 1e-18, "f": 1e-15,
	"p": 1e-12, "n": 1e-9, "u": 1e-6, "m": 1e-3,
	"c": 1e-2, "d": 1e-1, "": 1,
	"da": 1e1, "h": 1e2, "k": 1e3, "M": 1e6,
	"G": 1e9, "T": 1e12, "P": 1e15, "E": 1e18,
	"Z": 1e21, "Y": 1e24,
}

func registerPrefixes(r *Registry) {
	for sym, mag := range siPrefixes {
		if sym == "" {
			continue
		}
		r.Prefixes[sym] = mag
	}
}

// aliasStrings sorts and deduplicates a slice of alias spellings: the
// lists here are assembled from more than one source (a unit's canonical
// symbol plus its alternate spellings) and can legitimately overlap.
func aliasStrings(names []string) []string {
	cp := append([]string(nil), names...)
	sort.Strings(cp)
	return slices.Compact(cp)
}

func registerUnitAliases(r *Registry, su *unit.SizedUnit, names ...string) {
	for _, name := range aliasStrings(names) {
		r.Units[name] = su
	}
}

// registerBaseUnits installs the required base SI units, plus the
// supplemental catalogue: time, angle, currency, information,
// temperature.
func registerBaseUnits(r *Registry) {
	kg := unit.NewSizedUnit(1, unit.Base(unit.Mass))
	registerUnitAliases(r, kg, "kg", "kilogram", "kilograms")
	g := unit.NewSizedUnit(1e-3, unit.Base(unit.Mass))
	registerUnitAliases(r, g, "g", "gram", "grams")

	m := unit.NewSizedUnit(1, unit.Base(unit.Distance))
	registerUnitAliases(r, m, "m", "meter", "meters", "metre", "metres")
	registerUnitAliases(r, unit.NewSizedUnit(0.0254, unit.Base(unit.Distance)), "in", "inch", "inches")
	registerUnitAliases(r, unit.NewSizedUnit(0.3048, unit.Base(unit.Distance)), "ft", "foot", "feet")
	registerUnitAliases(r, unit.NewSizedUnit(1609.344, unit.Base(unit.Distance)), "mi", "mile", "miles")

	s := unit.NewSizedUnit(1, unit.Base(unit.Time))
	registerUnitAliases(r, s, "s", "sec", "second", "seconds")
	registerUnitAliases(r, unit.NewSizedUnit(60, unit.Base(unit.Time)), "min", "minute", "minutes")
	registerUnitAliases(r, unit.NewSizedUnit(3600, unit.Base(unit.Time)), "hr", "hour", "hours")
	registerUnitAliases(r, unit.NewSizedUnit(86400, unit.Base(unit.Time)), "day", "days")

	// rad is dimensionless by convention, but Hz is defined as 2*pi
	// rad/s rather than 1/s, a fixed registry policy preserved by any
	// alternate registry.
	rad := unit.NewSizedUnit(1, unit.Dimensionless())
	registerUnitAliases(r, rad, "rad", "radian", "radians")
	deg := unit.NewSizedUnit(math.Pi/180, unit.Dimensionless())
	registerUnitAliases(r, deg, "deg", "degree", "degrees")
	hz := unit.NewSizedUnit(2*math.Pi, unit.Divide(unit.Dimensionless(), unit.Base(unit.Time)))
	registerUnitAliases(r, hz, "Hz", "hertz")

	registerUnitAliases(r, unit.NewSizedUnit(1, unit.Base(unit.Currency)), "USD", "dollar", "dollars")

	bit := unit.NewSizedUnit(1, unit.Base(unit.Information))
	registerUnitAliases(r, bit, "bit", "bits")
	registerUnitAliases(r, unit.NewSizedUnit(8, unit.Base(unit.Information)), "byte", "bytes", "B")

	registerUnitAliases(r, unit.NewSizedUnit(1, unit.Base(unit.Temperature)), "K", "kelvin")
	registerUnitAliases(r, &unit.SizedUnit{Magnitude: 1, Unit: unit.Base(unit.Temperature), Offset: 273.15}, "degC", "celsius")
	registerUnitAliases(r, &unit.SizedUnit{Magnitude: 5.0 / 9.0, Unit: unit.Base(unit.Temperature), Offset: 273.15 - 32*5.0/9.0}, "degF", "fahrenheit")

	registerUnitAliases(r, unit.NewSizedUnit(1, unit.Base(unit.Substance)), "mole", "moles", "mol")
	registerUnitAliases(r, unit.NewSizedUnit(1, unit.Base(unit.Current)), "A", "amp", "amps", "ampere", "amperes")
	registerUnitAliases(r, unit.NewSizedUnit(1, unit.Base(unit.LuminousIntensity)), "cd", "candela", "candelas")
}
