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
	"github.com/careweather/oneil/internal/unit"
)

// foldUnit normalises a parameter's unit expression, an ast.Expr tree
// over Idents (unit names), multiplication, division, and exponentiation
// by a numeric literal, into a single *unit.SizedUnit, recording the
// flattened (name, exponent, numerator-or-denominator) triples the IR
// carries alongside it.
func (r *Resolver) foldUnit(e ast.Expr) (*unit.SizedUnit, []ir.UnitTerm, error) {
	switch x := e.(type) {
	case *ast.Ident:
		if x.Alias != "" {
			return nil, nil, &Error{Code: UnknownUnit, Pos: x.Pos(), Name: x.Alias + "." + x.Name}
		}
		su, err := r.Builtins.LookupUnit(x.Name)
		if err != nil {
			return nil, nil, &Error{Code: UnknownUnit, Pos: x.Pos(), Name: x.Name}
		}
		return su, []ir.UnitTerm{{Pos: x.Pos(), Name: x.Name, Exponent: 1}}, nil

	case *ast.BinaryExpr:
		switch x.Op {
		case ast.OpMul:
			lsu, lterms, err := r.foldUnit(x.X)
			if err != nil {
				return nil, nil, err
			}
			rsu, rterms, err := r.foldUnit(x.Y)
			if err != nil {
				return nil, nil, err
			}
			return lsu.Multiply(rsu), append(lterms, rterms...), nil

		case ast.OpDiv:
			lsu, lterms, err := r.foldUnit(x.X)
			if err != nil {
				return nil, nil, err
			}
			rsu, rterms, err := r.foldUnit(x.Y)
			if err != nil {
				return nil, nil, err
			}
			for i := range rterms {
				rterms[i].Denominator = true
			}
			return lsu.Divide(rsu), append(lterms, rterms...), nil

		case ast.OpPow:
			lsu, lterms, err := r.foldUnit(x.X)
			if err != nil {
				return nil, nil, err
			}
			lit, ok := x.Y.(*ast.NumberLit)
			if !ok || !lit.Val.IsScalar() {
				return nil, nil, fmt.Errorf("resolve: unit exponent must be a scalar literal")
			}
			n := lit.Val.Scalar()
			for i := range lterms {
				lterms[i].Exponent *= n
			}
			return lsu.Power(n), lterms, nil

		default:
			return nil, nil, fmt.Errorf("resolve: invalid unit operator %q", x.Op)
		}

	default:
		return nil, nil, fmt.Errorf("resolve: invalid unit expression node %T", e)
	}
}
