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

// Package display renders an evaluated value at a caller-chosen
// precision, in a caller-chosen display unit. It sits one layer above
// internal/number: Number's own arithmetic stays float64 with outward
// ULP rounding, and display's apd.Decimal rounding only ever runs once,
// on the way out to a report or a terminal.
package display

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

// DefaultPrecision is the number of significant digits rendered when a
// caller passes 0.
const DefaultPrecision = 6

// FormatScalar renders x rounded to precision significant digits, with
// trailing zeros dropped.
func FormatScalar(x float64, precision uint32) (string, error) {
	d := new(apd.Decimal)
	if _, err := d.SetFloat64(x); err != nil {
		return "", fmt.Errorf("display: %w", err)
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	var rounded apd.Decimal
	if _, err := ctx.Round(&rounded, d); err != nil {
		return "", fmt.Errorf("display: %w", err)
	}
	rounded.Reduce(&rounded)
	return rounded.Text('f'), nil
}

// FormatInterval renders an interval as "lo|hi", Oneil's interval
// literal syntax, each endpoint rounded independently.
func FormatInterval(lo, hi float64, precision uint32) (string, error) {
	loStr, err := FormatScalar(lo, precision)
	if err != nil {
		return "", err
	}
	hiStr, err := FormatScalar(hi, precision)
	if err != nil {
		return "", err
	}
	return loStr + "|" + hiStr, nil
}

// FormatMeasured renders m's number in its stored (base) unit at the
// given precision, with 0 meaning DefaultPrecision.
func FormatMeasured(m value.Measured, precision uint32) (string, error) {
	if precision == 0 {
		precision = DefaultPrecision
	}
	if m.Num.IsScalar() {
		return FormatScalar(m.Num.Scalar(), precision)
	}
	return FormatInterval(m.Num.Lo(), m.Num.Hi(), precision)
}

// FormatInUnit renders m converted into displayUnit first, the reverse
// of the conversion Resolve/Eval applies on the way in, so a value
// stored in base units can be reported back in whatever unit the caller
// declared it with.
func FormatInUnit(m value.Measured, displayUnit *unit.SizedUnit, precision uint32) (string, error) {
	if !unit.Compatible(m.Unit, displayUnit.Unit) {
		return "", &unit.UnitError{Code: unit.Mismatch, Left: m.Unit, Right: displayUnit.Unit}
	}
	if precision == 0 {
		precision = DefaultPrecision
	}
	if m.Num.IsScalar() {
		return FormatScalar(displayUnit.ConvertFromBase(m.Num.Scalar()), precision)
	}
	lo := displayUnit.ConvertFromBase(m.Num.Lo())
	hi := displayUnit.ConvertFromBase(m.Num.Hi())
	if lo > hi {
		lo, hi = hi, lo
	}
	return FormatInterval(lo, hi, precision)
}

// FormatValue renders any Value variant: Measured goes through
// FormatMeasured, Boolean and String render directly.
func FormatValue(v value.Value, precision uint32) (string, error) {
	switch x := v.(type) {
	case value.Measured:
		return FormatMeasured(x, precision)
	case value.Boolean:
		return strconv.FormatBool(bool(x)), nil
	case value.String:
		return string(x), nil
	default:
		return "", fmt.Errorf("display: unsupported value kind %q", v.Kind())
	}
}
