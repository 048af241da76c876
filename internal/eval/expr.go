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

package eval

import (
	"fmt"

	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/value"
)

// scope is the set of locally-named values an expression can see while
// it's being evaluated: the model it belongs to (for qualified-reference
// and Python-alias lookups) and the locals already computed in dependency
// order (parameter values, plus any injected test names).
type scope struct {
	evaluator *Evaluator
	model     *ir.Model
	locals    map[string]value.Value
}

// binFuncs holds every binary operator whose result never depends on a
// comparison tolerance. The comparison operators live in cmpFuncs instead,
// since they need the Evaluator's Registry-carried Tolerance.
var binFuncs = map[ir.Op]func(a, b value.Value) (value.Value, error){
	ir.Add: value.CheckedAdd, ir.Sub: value.CheckedSub, ir.Mul: value.CheckedMul, ir.Div: value.CheckedDiv,
	ir.Mod: value.CheckedMod, ir.Pow: value.CheckedPow, ir.Dash: value.CheckedDash, ir.DashDash: value.CheckedDashDash,
	ir.And: value.CheckedAnd, ir.Or: value.CheckedOr,
}

var cmpFuncs = map[ir.Op]func(a, b value.Value, tol number.Tolerance) (value.Value, error){
	ir.Eq: value.CheckedEq, ir.Ne: value.CheckedNe, ir.Lt: value.CheckedLt, ir.Le: value.CheckedLe,
	ir.Gt: value.CheckedGt, ir.Ge: value.CheckedGe,
}

var unaryFuncs = map[ir.Op]func(a value.Value) (value.Value, error){
	ir.Neg: value.CheckedNeg, ir.Pos: value.CheckedPos, ir.Not: value.CheckedNot,
}

// evalExpr evaluates e against scope, dispatching on the IR node's
// concrete type. Piecewise evaluation never touches an untaken branch: a
// branch that isn't selected is never type- or unit-checked.
func (e *Evaluator) evalExpr(x ir.Expr, sc *scope) (value.Value, error) {
	switch x := x.(type) {
	case *ir.NumberLit:
		return value.Measured{Num: x.Val}, nil

	case *ir.BoolLit:
		return value.Boolean(x.Val), nil

	case *ir.StringLit:
		return value.String(x.Val), nil

	case *ir.Ident:
		return e.evalIdent(x, sc)

	case *ir.Unary:
		v, err := e.evalExpr(x.X, sc)
		if err != nil {
			return nil, err
		}
		fn, ok := unaryFuncs[x.Op]
		if !ok {
			return nil, fmt.Errorf("eval: unsupported unary operator %s", x.Op)
		}
		return fn(v)

	case *ir.Binary:
		a, err := e.evalExpr(x.X, sc)
		if err != nil {
			return nil, err
		}
		b, err := e.evalExpr(x.Y, sc)
		if err != nil {
			return nil, err
		}
		if fn, ok := cmpFuncs[x.Op]; ok {
			return fn(a, b, e.Builtins.Tolerance)
		}
		fn, ok := binFuncs[x.Op]
		if !ok {
			return nil, fmt.Errorf("eval: unsupported binary operator %s", x.Op)
		}
		return fn(a, b)

	case *ir.Bar:
		a, err := e.evalExpr(x.X, sc)
		if err != nil {
			return nil, err
		}
		b, err := e.evalExpr(x.Y, sc)
		if err != nil {
			return nil, err
		}
		return value.CheckedBar(a, b)

	case *ir.Call:
		return e.evalCall(x, sc)

	case *ir.Piecewise:
		return e.evalPiecewise(x, sc)

	default:
		return nil, fmt.Errorf("eval: unrecognized expression node %T", x)
	}
}

func (e *Evaluator) evalIdent(x *ir.Ident, sc *scope) (value.Value, error) {
	switch x.Kind {
	case ir.IdentLocal:
		v, ok := sc.locals[x.Name]
		if !ok {
			return nil, fmt.Errorf("eval: invariant violation: local %q has no value yet", x.Name)
		}
		return v, nil

	case ir.IdentQualified:
		params, err := e.evalParams(x.ResolvedPath)
		if err != nil {
			return nil, err
		}
		v, ok := params.values[x.Name]
		if !ok {
			return nil, fmt.Errorf("eval: invariant violation: %s has no parameter %q", x.ResolvedPath, x.Name)
		}
		return v, nil

	case ir.IdentBuiltin:
		v, ok := e.Builtins.LookupValue(x.Name)
		if !ok {
			return nil, fmt.Errorf("eval: %q is a function, not a value", x.Name)
		}
		return v, nil

	default:
		return nil, fmt.Errorf("eval: invariant violation: invalid ident kind for %q", x.Name)
	}
}

func (e *Evaluator) evalCall(x *ir.Call, sc *scope) (value.Value, error) {
	args := make([]value.Value, len(x.Args))
	for i, a := range x.Args {
		v, err := e.evalExpr(a, sc)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	switch x.Fun.Kind {
	case ir.IdentBuiltin:
		v, err := e.Builtins.Call(x.Fun.Name, args)
		if _, ok := err.(*builtin.UnimplementedError); ok {
			return nil, &Error{Code: Unimplemented, Pos: x.Pos, Model: sc.model.Path, Name: x.Fun.Name}
		}
		return v, err

	case ir.IdentPythonFunc:
		// Foreign Python functions are opaque at this layer.
		return nil, &Error{Code: Unimplemented, Pos: x.Pos, Model: sc.model.Path, Name: x.Fun.Alias + "." + x.Fun.Name}

	default:
		return nil, fmt.Errorf("eval: invalid call target kind for %q", x.Fun.Name)
	}
}

func (e *Evaluator) evalPiecewise(x *ir.Piecewise, sc *scope) (value.Value, error) {
	for _, c := range x.Cases {
		condVal, err := e.evalExpr(c.Cond, sc)
		if err != nil {
			return nil, err
		}
		cond, ok := condVal.(value.Boolean)
		if !ok {
			return nil, fmt.Errorf("eval: piecewise condition did not evaluate to a boolean")
		}
		if bool(cond) {
			return e.evalExpr(c.Expr, sc)
		}
	}
	if x.Otherwise != nil {
		return e.evalExpr(x.Otherwise, sc)
	}
	return nil, &Error{Code: NoPiecewiseMatch, Pos: x.Pos, Model: sc.model.Path}
}
