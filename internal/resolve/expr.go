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

package resolve

import (
	"fmt"

	"github.com/careweather/oneil/ast"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/number"
)

var binOps = map[ast.Op]ir.Op{
	ast.OpAdd: ir.Add, ast.OpSub: ir.Sub, ast.OpMul: ir.Mul, ast.OpDiv: ir.Div,
	ast.OpMod: ir.Mod, ast.OpPow: ir.Pow, ast.OpDash: ir.Dash, ast.OpDashDash: ir.DashDash,
	ast.OpEq: ir.Eq, ast.OpNe: ir.Ne, ast.OpLt: ir.Lt, ast.OpLe: ir.Le,
	ast.OpGt: ir.Gt, ast.OpGe: ir.Ge, ast.OpAnd: ir.And, ast.OpOr: ir.Or,
}

var unaryOps = map[ast.Op]ir.Op{
	ast.OpSub: ir.Neg, ast.OpAdd: ir.Pos, ast.OpNot: ir.Not,
}

// resolveExpr walks an ast.Expr tree, resolving every Ident against
// model's references, localIDs, r.Builtins, and model's Python aliases.
func (r *Resolver) resolveExpr(e ast.Expr, model *ir.Model, localIDs map[string]bool) (ir.Expr, error) {
	switch x := e.(type) {
	case *ast.NumberLit:
		return &ir.NumberLit{Pos: x.Pos(), Val: x.Val}, nil

	case *ast.BoolLit:
		return &ir.BoolLit{Pos: x.Pos(), Val: x.Val}, nil

	case *ast.StringLit:
		return &ir.StringLit{Pos: x.Pos(), Val: x.Val}, nil

	case *ast.Ident:
		return r.resolveIdent(x, model, localIDs)

	case *ast.UnaryExpr:
		op, ok := unaryOps[x.Op]
		if !ok {
			return nil, fmt.Errorf("resolve: invalid unary operator %q", x.Op)
		}
		xe, err := r.resolveExpr(x.X, model, localIDs)
		if err != nil {
			return nil, err
		}
		return &ir.Unary{Pos: x.Pos(), Op: op, X: xe}, nil

	case *ast.BinaryExpr:
		op, ok := binOps[x.Op]
		if !ok {
			return nil, fmt.Errorf("resolve: invalid binary operator %q", x.Op)
		}
		xe, err := r.resolveExpr(x.X, model, localIDs)
		if err != nil {
			return nil, err
		}
		ye, err := r.resolveExpr(x.Y, model, localIDs)
		if err != nil {
			return nil, err
		}
		return &ir.Binary{Pos: x.Pos(), Op: op, X: xe, Y: ye}, nil

	case *ast.BarExpr:
		xe, err := r.resolveExpr(x.X, model, localIDs)
		if err != nil {
			return nil, err
		}
		ye, err := r.resolveExpr(x.Y, model, localIDs)
		if err != nil {
			return nil, err
		}
		return &ir.Bar{Pos: x.Pos(), X: xe, Y: ye}, nil

	case *ast.CallExpr:
		fun, err := r.resolveCallTarget(x.Fun, model)
		if err != nil {
			return nil, err
		}
		args := make([]ir.Expr, len(x.Args))
		for i, a := range x.Args {
			ae, err := r.resolveExpr(a, model, localIDs)
			if err != nil {
				return nil, err
			}
			args[i] = ae
		}
		return &ir.Call{Pos: x.Pos(), Fun: fun, Args: args}, nil

	case *ast.PiecewiseExpr:
		cases := make([]ir.PiecewiseCase, len(x.Cases))
		for i, c := range x.Cases {
			cond, err := r.resolveExpr(c.Cond, model, localIDs)
			if err != nil {
				return nil, err
			}
			body, err := r.resolveExpr(c.Expr, model, localIDs)
			if err != nil {
				return nil, err
			}
			cases[i] = ir.PiecewiseCase{Cond: cond, Expr: body}
		}
		var otherwise ir.Expr
		if x.Otherwise != nil {
			o, err := r.resolveExpr(x.Otherwise, model, localIDs)
			if err != nil {
				return nil, err
			}
			otherwise = o
		}
		return &ir.Piecewise{Pos: x.Pos(), Cases: cases, Otherwise: otherwise}, nil

	default:
		return nil, fmt.Errorf("resolve: unrecognized expression node %T", e)
	}
}

func (r *Resolver) resolveIdent(x *ast.Ident, model *ir.Model, localIDs map[string]bool) (*ir.Ident, error) {
	if x.Alias != "" {
		target, ok := model.References[x.Alias]
		if !ok {
			return nil, &Error{Code: Unknown, Pos: x.Pos(), Name: x.Alias + "." + x.Name}
		}
		return &ir.Ident{Pos: x.Pos(), Kind: ir.IdentQualified, Alias: x.Alias, Name: x.Name, ResolvedPath: target}, nil
	}
	if localIDs[x.Name] {
		return &ir.Ident{Pos: x.Pos(), Kind: ir.IdentLocal, Name: x.Name}, nil
	}
	if _, ok := r.Builtins.LookupValue(x.Name); ok {
		return &ir.Ident{Pos: x.Pos(), Kind: ir.IdentBuiltin, Name: x.Name}, nil
	}
	if _, ok := r.Builtins.LookupFunc(x.Name); ok {
		return &ir.Ident{Pos: x.Pos(), Kind: ir.IdentBuiltin, Name: x.Name}, nil
	}
	return nil, &Error{Code: Unknown, Pos: x.Pos(), Name: x.Name}
}

// resolveCallTarget resolves the callee of a CallExpr: a built-in
// function, or a Python function reached through its import alias.
func (r *Resolver) resolveCallTarget(fun *ast.Ident, model *ir.Model) (*ir.Ident, error) {
	if fun.Alias != "" {
		target, ok := model.PythonAliases[fun.Alias]
		if !ok {
			return nil, &Error{Code: Unknown, Pos: fun.Pos(), Name: fun.Alias + "." + fun.Name}
		}
		return &ir.Ident{Pos: fun.Pos(), Kind: ir.IdentPythonFunc, Alias: fun.Alias, Name: fun.Name, ResolvedPath: target}, nil
	}
	if _, ok := r.Builtins.LookupFunc(fun.Name); ok {
		return &ir.Ident{Pos: fun.Pos(), Kind: ir.IdentBuiltin, Name: fun.Name}, nil
	}
	return nil, &Error{Code: Unknown, Pos: fun.Pos(), Name: fun.Name}
}

func (r *Resolver) resolveLimits(lim *ast.LimitsExpr, model *ir.Model, localIDs map[string]bool) (*ir.Limits, error) {
	if lim.Discrete != nil {
		return &ir.Limits{Discrete: lim.Discrete}, nil
	}
	expr, err := r.resolveExpr(lim.Continuous, model, localIDs)
	if err != nil {
		return nil, err
	}
	n, err := literalInterval(expr)
	if err != nil {
		return nil, err
	}
	return &ir.Limits{Continuous: &n}, nil
}

// literalInterval folds a NumberLit/Bar/unary-minus expression tree into
// a number.Number directly, without a full evaluator: a limits clause's
// bounding expression is evaluated at resolve time and may not reference
// any parameter. A limit is a real interval in base units, fixed at
// declaration, not computed from the model's other values.
func literalInterval(e ir.Expr) (number.Number, error) {
	switch x := e.(type) {
	case *ir.NumberLit:
		return x.Val, nil
	case *ir.Bar:
		a, err := literalInterval(x.X)
		if err != nil {
			return number.Number{}, err
		}
		b, err := literalInterval(x.Y)
		if err != nil {
			return number.Number{}, err
		}
		return number.Bar(a, b), nil
	case *ir.Unary:
		if x.Op != ir.Neg {
			break
		}
		v, err := literalInterval(x.X)
		if err != nil {
			return number.Number{}, err
		}
		if v.IsScalar() {
			return number.NewScalar(-v.Scalar()), nil
		}
		return number.MustInterval(-v.Hi(), -v.Lo()), nil
	}
	return number.Number{}, fmt.Errorf("resolve: limits expression must be a literal interval, not %T", e)
}
