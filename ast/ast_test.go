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

package ast_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/careweather/oneil/ast"
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/token"
)

func TestSpanPosEnd(t *testing.T) {
	from := token.Position{Filename: "m.oneil", Line: 1, Column: 1}
	to := token.Position{Filename: "m.oneil", Line: 1, Column: 5}
	lit := &ast.NumberLit{Span: ast.Span{From: from, To: to}, Val: number.NewScalar(42)}

	qt.Assert(t, qt.Equals(lit.Pos(), from))
	qt.Assert(t, qt.Equals(lit.End(), to))
}

func TestDeclAndExprInterfaces(t *testing.T) {
	var _ ast.Decl = &ast.ImportPythonDecl{}
	var _ ast.Decl = &ast.ImportRefDecl{}
	var _ ast.Decl = &ast.ImportUseDecl{}
	var _ ast.Decl = &ast.ParameterDecl{}
	var _ ast.Decl = &ast.TestDecl{}

	var _ ast.Expr = &ast.NumberLit{}
	var _ ast.Expr = &ast.BoolLit{}
	var _ ast.Expr = &ast.StringLit{}
	var _ ast.Expr = &ast.Ident{}
	var _ ast.Expr = &ast.UnaryExpr{}
	var _ ast.Expr = &ast.BinaryExpr{}
	var _ ast.Expr = &ast.BarExpr{}
	var _ ast.Expr = &ast.CallExpr{}
	var _ ast.Expr = &ast.PiecewiseExpr{}
}

func TestParameterDeclShape(t *testing.T) {
	p := &ast.ParameterDecl{
		ID:   "mass",
		Name: "Dry mass",
		Limits: &ast.LimitsExpr{
			Continuous: &ast.BarExpr{
				X: &ast.NumberLit{Val: number.NewScalar(0)},
				Y: &ast.NumberLit{Val: number.NewScalar(100)},
			},
		},
		Expr:     &ast.NumberLit{Val: number.NewScalar(12)},
		UnitExpr: &ast.Ident{Name: "kg"},
	}
	qt.Assert(t, qt.Equals(p.ID, "mass"))
	qt.Assert(t, qt.IsNil(p.Limits.Discrete))
	bar, ok := p.Limits.Continuous.(*ast.BarExpr)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(bar.X.(*ast.NumberLit).Val.Scalar(), 0.0))
}

func TestImportUseWithClause(t *testing.T) {
	u := &ast.ImportUseDecl{
		Path: "sub/motor.oneil",
		As:   "motor",
		With: []ast.WithItem{{Name: "g", Alias: "g"}, {Name: "rho", Alias: "air_density"}},
	}
	qt.Assert(t, qt.Equals(len(u.With), 2))
	qt.Assert(t, qt.Equals(u.With[1].Alias, "air_density"))
}
