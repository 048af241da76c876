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
	"fmt"
	"math"
	"strings"

	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

func arityError(name string, want, got int) error {
	return fmt.Errorf("builtin %s: expected %d argument(s), got %d", name, want, got)
}

func measuredArg(name string, args []value.Value, i int) (value.Measured, error) {
	m, ok := args[i].(value.Measured)
	if !ok {
		return value.Measured{}, &value.TypeError{Op: name, Expected: "measured", Got: args[i].Kind()}
	}
	return m, nil
}

func dimensionlessArg(name string, args []value.Value, i int) (float64, error) {
	m, err := measuredArg(name, args, i)
	if err != nil {
		return 0, err
	}
	if !m.Unit.Dimensionless() {
		return 0, &number.ArithError{Code: number.DomainError, Func: name, Arg: "dimensionless"}
	}
	if !m.Num.IsScalar() {
		return 0, &number.ArithError{Code: number.DomainError, Func: name}
	}
	return m.Num.Scalar(), nil
}

// registerMinMaxRange installs the three required reducing functions.
// min and max return the enclosing interval's respective bound; range
// returns max-min, all operating over a mixed scalar/interval argument
// list in a shared unit.
func registerMinMaxRange(r *Registry) {
	reduce := func(name string, pick func(lo, hi float64) float64) Func {
		return func(args []value.Value) (value.Value, error) {
			if len(args) == 0 {
				return nil, arityError(name, 1, 0)
			}
			first, err := measuredArg(name, args, 0)
			if err != nil {
				return nil, err
			}
			best := pick(first.Num.Lo(), first.Num.Hi())
			u := first.Unit
			for i := 1; i < len(args); i++ {
				m, err := measuredArg(name, args, i)
				if err != nil {
					return nil, err
				}
				if !unit.Compatible(u, m.Unit) {
					return nil, &unit.UnitError{Code: unit.Mismatch, Left: u, Right: m.Unit}
				}
				v := pick(m.Num.Lo(), m.Num.Hi())
				best = pick(best, v)
			}
			return value.NewMeasuredScalar(best, u), nil
		}
	}
	r.Functions["min"] = reduce("min", math.Min)
	r.Functions["max"] = reduce("max", math.Max)
	r.Functions["range"] = func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, arityError("range", 1, 0)
		}
		first, err := measuredArg("range", args, 0)
		if err != nil {
			return nil, err
		}
		lo, hi := first.Num.Lo(), first.Num.Hi()
		u := first.Unit
		for i := 1; i < len(args); i++ {
			m, err := measuredArg("range", args, i)
			if err != nil {
				return nil, err
			}
			if !unit.Compatible(u, m.Unit) {
				return nil, &unit.UnitError{Code: unit.Mismatch, Left: u, Right: m.Unit}
			}
			lo = math.Min(lo, m.Num.Lo())
			hi = math.Max(hi, m.Num.Hi())
		}
		return value.NewMeasuredScalar(hi-lo, u), nil
	}
	// mid resolves the Open Question of §9 as the scalar midpoint of the
	// enclosing (bar-constructed) union interval: a neighboring reducer
	// to min/max/range rather than a new kind of operation.
	r.Functions["mid"] = func(args []value.Value) (value.Value, error) {
		if len(args) == 0 {
			return nil, arityError("mid", 1, 0)
		}
		first, err := measuredArg("mid", args, 0)
		if err != nil {
			return nil, err
		}
		lo, hi := first.Num.Lo(), first.Num.Hi()
		u := first.Unit
		for i := 1; i < len(args); i++ {
			m, err := measuredArg("mid", args, i)
			if err != nil {
				return nil, err
			}
			if !unit.Compatible(u, m.Unit) {
				return nil, &unit.UnitError{Code: unit.Mismatch, Left: u, Right: m.Unit}
			}
			lo = math.Min(lo, m.Num.Lo())
			hi = math.Max(hi, m.Num.Hi())
		}
		return value.NewMeasuredScalar((lo+hi)/2, u), nil
	}
}

// registerUnary installs a dimensionless-in, dimensionless-out scalar
// function under name, applying fn to the argument's value.
func registerUnary(r *Registry, name string, fn func(float64) float64) {
	r.Functions[name] = func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError(name, 1, len(args))
		}
		x, err := dimensionlessArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewMeasuredScalar(fn(x), unit.Dimensionless()), nil
	}
}

// registerSameUnitUnary installs a scalar function whose argument carries
// an arbitrary unit, with resultUnit deriving the result's unit from it:
// abs, floor, ceil and round keep the unit, sign returns dimensionless.
func registerSameUnitUnary(r *Registry, name string, fn func(float64) float64, resultUnit func(unit.Unit) unit.Unit) {
	r.Functions[name] = func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError(name, 1, len(args))
		}
		m, err := measuredArg(name, args, 0)
		if err != nil {
			return nil, err
		}
		if !m.Num.IsScalar() {
			return nil, &number.ArithError{Code: number.DomainError, Func: name}
		}
		out := resultUnit(m.Unit)
		return value.NewMeasuredScalar(fn(m.Num.Scalar()), out), nil
	}
}

func sameUnit(u unit.Unit) unit.Unit { return u }

// registerMath installs the allowed-but-optional roster of math
// functions: trigonometric, logarithmic, rounding, and sqrt.
func registerMath(r *Registry) {
	r.Functions["sqrt"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError("sqrt", 1, len(args))
		}
		m, err := measuredArg("sqrt", args, 0)
		if err != nil {
			return nil, err
		}
		if !m.Num.IsScalar() {
			return nil, &number.ArithError{Code: number.DomainError, Func: "sqrt"}
		}
		if m.Num.Scalar() < 0 {
			return nil, &number.ArithError{Code: number.DomainError, Func: "sqrt", Arg: "x"}
		}
		return value.NewMeasuredScalar(math.Sqrt(m.Num.Scalar()), unit.Power(m.Unit, 0.5)), nil
	}

	registerUnary(r, "sin", math.Sin)
	registerUnary(r, "cos", math.Cos)
	registerUnary(r, "tan", math.Tan)
	registerUnary(r, "asin", math.Asin)
	registerUnary(r, "acos", math.Acos)
	registerUnary(r, "atan", math.Atan)
	r.Functions["atan2"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, arityError("atan2", 2, len(args))
		}
		y, err := dimensionlessArg("atan2", args, 0)
		if err != nil {
			return nil, err
		}
		x, err := dimensionlessArg("atan2", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewMeasuredScalar(math.Atan2(y, x), unit.Dimensionless()), nil
	}

	registerUnary(r, "ln", math.Log)
	registerUnary(r, "log10", math.Log10)
	registerUnary(r, "log2", math.Log2)
	registerUnary(r, "exp", math.Exp)
	r.Functions["log"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return nil, arityError("log", 2, len(args))
		}
		base, err := dimensionlessArg("log", args, 0)
		if err != nil {
			return nil, err
		}
		x, err := dimensionlessArg("log", args, 1)
		if err != nil {
			return nil, err
		}
		return value.NewMeasuredScalar(math.Log(x)/math.Log(base), unit.Dimensionless()), nil
	}

	registerSameUnitUnary(r, "floor", math.Floor, sameUnit)
	registerSameUnitUnary(r, "ceil", math.Ceil, sameUnit)
	registerSameUnitUnary(r, "round", math.Round, sameUnit)
	registerSameUnitUnary(r, "abs", math.Abs, sameUnit)
	registerSameUnitUnary(r, "sign", func(x float64) float64 {
		switch {
		case x > 0:
			return 1
		case x < 0:
			return -1
		default:
			return 0
		}
	}, func(unit.Unit) unit.Unit { return unit.Dimensionless() })

	r.Functions["clamp"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 3 {
			return nil, arityError("clamp", 3, len(args))
		}
		x, err := measuredArg("clamp", args, 0)
		if err != nil {
			return nil, err
		}
		lo, err := measuredArg("clamp", args, 1)
		if err != nil {
			return nil, err
		}
		hi, err := measuredArg("clamp", args, 2)
		if err != nil {
			return nil, err
		}
		if !unit.Compatible(x.Unit, lo.Unit) || !unit.Compatible(x.Unit, hi.Unit) {
			return nil, &unit.UnitError{Code: unit.Mismatch, Left: x.Unit, Right: lo.Unit}
		}
		if !x.Num.IsScalar() || !lo.Num.IsScalar() || !hi.Num.IsScalar() {
			return nil, &number.ArithError{Code: number.DomainError, Func: "clamp"}
		}
		v := math.Max(lo.Num.Scalar(), math.Min(hi.Num.Scalar(), x.Num.Scalar()))
		return value.NewMeasuredScalar(v, x.Unit), nil
	}

	r.Functions["interp"] = func(args []value.Value) (value.Value, error) {
		// interp(x, x0, x1, y0, y1): linear interpolation of x between
		// (x0,y0) and (x1,y1).
		if len(args) != 5 {
			return nil, arityError("interp", 5, len(args))
		}
		x, err := measuredArg("interp", args, 0)
		if err != nil {
			return nil, err
		}
		x0, err := measuredArg("interp", args, 1)
		if err != nil {
			return nil, err
		}
		x1, err := measuredArg("interp", args, 2)
		if err != nil {
			return nil, err
		}
		y0, err := measuredArg("interp", args, 3)
		if err != nil {
			return nil, err
		}
		y1, err := measuredArg("interp", args, 4)
		if err != nil {
			return nil, err
		}
		if !unit.Compatible(x.Unit, x0.Unit) || !unit.Compatible(x.Unit, x1.Unit) || !unit.Compatible(y0.Unit, y1.Unit) {
			return nil, &unit.UnitError{Code: unit.Mismatch, Left: x.Unit, Right: x0.Unit}
		}
		t := (x.Num.Scalar() - x0.Num.Scalar()) / (x1.Num.Scalar() - x0.Num.Scalar())
		v := y0.Num.Scalar() + t*(y1.Num.Scalar()-y0.Num.Scalar())
		return value.NewMeasuredScalar(v, y0.Unit), nil
	}
}

// registerStrings installs the string-helper roster: len, upper, lower
// and concat, all operating on Value.String.
func registerStrings(r *Registry) {
	stringArg := func(name string, args []value.Value, i int) (string, error) {
		s, ok := args[i].(value.String)
		if !ok {
			return "", &value.TypeError{Op: name, Expected: "string", Got: args[i].Kind()}
		}
		return string(s), nil
	}

	r.Functions["len"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError("len", 1, len(args))
		}
		s, err := stringArg("len", args, 0)
		if err != nil {
			return nil, err
		}
		return value.NewMeasuredScalar(float64(len(s)), unit.Dimensionless()), nil
	}
	r.Functions["upper"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError("upper", 1, len(args))
		}
		s, err := stringArg("upper", args, 0)
		if err != nil {
			return nil, err
		}
		return value.String(strings.ToUpper(s)), nil
	}
	r.Functions["lower"] = func(args []value.Value) (value.Value, error) {
		if len(args) != 1 {
			return nil, arityError("lower", 1, len(args))
		}
		s, err := stringArg("lower", args, 0)
		if err != nil {
			return nil, err
		}
		return value.String(strings.ToLower(s)), nil
	}
	r.Functions["concat"] = func(args []value.Value) (value.Value, error) {
		out := ""
		for i := range args {
			s, err := stringArg("concat", args, i)
			if err != nil {
				return nil, err
			}
			out += s
		}
		return value.String(out), nil
	}
}
