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

package resolve_test

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/careweather/oneil/ast"
	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/resolve"
)

// numberComparer lets cmp.Diff look inside number.Number, whose lo/hi
// bounds are unexported: equality only needs the three accessors every
// caller outside the package already has.
var numberComparer = cmp.Comparer(func(a, b number.Number) bool {
	return a.IsScalar() == b.IsScalar() && a.Lo() == b.Lo() && a.Hi() == b.Hi()
})

// fakeLoader serves fixed content from an in-memory map, standing in for
// a real filesystem in tests (the shape resolve.FileLoader asks for).
type fakeLoader struct {
	files map[string]string
}

func (l *fakeLoader) ReadFile(path string) (string, error) { return l.files[path], nil }
func (l *fakeLoader) Exists(path string) bool              { _, ok := l.files[path]; return ok }

// fakeParser hands back pre-built *ast.File fixtures keyed by path,
// bypassing real parsing entirely: resolve never cares how an AST was
// produced, only that it conforms to the ast package's shapes.
type fakeParser struct {
	files map[string]*ast.File
}

func (p *fakeParser) Parse(path, src string) (*ast.File, error) {
	return p.files[path], nil
}

func num(v float64) *ast.NumberLit { return &ast.NumberLit{Val: number.NewScalar(v)} }

func TestResolveIndependentParameter(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "mass", Name: "Dry mass", Expr: num(12), UnitExpr: &ast.Ident{Name: "kg"}},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	models, err := r.Resolve("/root.oneil")
	qt.Assert(t, qt.IsNil(err))
	m := models["/root.oneil"]
	qt.Assert(t, qt.Equals(len(m.Parameters), 1))
	p, ok := m.Parameter("mass")
	qt.Assert(t, qt.IsTrue(ok))
	lit, ok := p.Expr.(*ir.NumberLit)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(lit.Val.Scalar(), 12.0))
	qt.Assert(t, qt.Equals(p.Unit.Magnitude, 1.0))
}

func TestResolveQualifiedReference(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{
		"/root.oneil": "", "/motor.oneil": "",
	}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/motor.oneil": {
			Path: "/motor.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "thrust", Name: "Thrust", Expr: num(100), UnitExpr: &ast.Ident{Name: "kg"}},
			},
		},
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ImportRefDecl{Path: "motor.oneil", As: "m"},
				&ast.ParameterDecl{
					ID:   "t2",
					Name: "Doubled thrust",
					Expr: &ast.BinaryExpr{Op: ast.OpMul, X: num(2), Y: &ast.Ident{Alias: "m", Name: "thrust"}},
				},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	models, err := r.Resolve("/root.oneil")
	qt.Assert(t, qt.IsNil(err))
	root := models["/root.oneil"]
	p, _ := root.Parameter("t2")
	bin := p.Expr.(*ir.Binary)
	ident := bin.Y.(*ir.Ident)
	qt.Assert(t, qt.Equals(ident.Kind, ir.IdentQualified))
	qt.Assert(t, qt.Equals(ident.ResolvedPath, "/motor.oneil"))
	qt.Assert(t, qt.Equals(len(models), 2))
}

func TestResolveDetectsCycle(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/a.oneil": "", "/b.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/a.oneil": {Path: "/a.oneil", Decls: []ast.Decl{&ast.ImportRefDecl{Path: "b.oneil", As: "b"}}},
		"/b.oneil": {Path: "/b.oneil", Decls: []ast.Decl{&ast.ImportRefDecl{Path: "a.oneil", As: "a"}}},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	_, err := r.Resolve("/a.oneil")
	qt.Assert(t, qt.Not(qt.IsNil(err)))
	var rerr *resolve.Error
	qt.Assert(t, qt.ErrorAs(err, &rerr))
	qt.Assert(t, qt.Equals(rerr.Code, resolve.Cycle))
}

func TestResolveUnknownIdentifier(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "x", Name: "x", Expr: &ast.Ident{Name: "nonexistent"}},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	_, err := r.Resolve("/root.oneil")
	var rerr *resolve.Error
	qt.Assert(t, qt.ErrorAs(err, &rerr))
	qt.Assert(t, qt.Equals(rerr.Code, resolve.Unknown))
}

func TestResolveUnknownUnit(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "x", Name: "x", Expr: num(1), UnitExpr: &ast.Ident{Name: "parsecs-per-fortnight"}},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	_, err := r.Resolve("/root.oneil")
	var rerr *resolve.Error
	qt.Assert(t, qt.ErrorAs(err, &rerr))
	qt.Assert(t, qt.Equals(rerr.Code, resolve.UnknownUnit))
}

func TestResolvePythonImportMissing(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path:  "/root.oneil",
			Decls: []ast.Decl{&ast.ImportPythonDecl{Path: "aero.py", As: "aero"}},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	_, err := r.Resolve("/root.oneil")
	var rerr *resolve.Error
	qt.Assert(t, qt.ErrorAs(err, &rerr))
	qt.Assert(t, qt.Equals(rerr.Code, resolve.PythonImportMissing))
}

func TestResolveUnitExpression(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	// velocity: m / s
	unitExpr := &ast.BinaryExpr{Op: ast.OpDiv, X: &ast.Ident{Name: "m"}, Y: &ast.Ident{Name: "s"}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "v", Name: "Velocity", Expr: num(5), UnitExpr: unitExpr},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	models, err := r.Resolve("/root.oneil")
	qt.Assert(t, qt.IsNil(err))
	p, _ := models["/root.oneil"].Parameter("v")
	qt.Assert(t, qt.Equals(p.Unit.Magnitude, 1.0))
	qt.Assert(t, qt.Equals(len(p.UnitExpr), 2))
	qt.Assert(t, qt.IsTrue(p.UnitExpr[1].Denominator))
}

func TestResolveLimitsLiteralInterval(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{
					ID:   "x",
					Name: "x",
					Limits: &ast.LimitsExpr{
						Continuous: &ast.BarExpr{X: num(0), Y: num(100)},
					},
					Expr:     num(50),
					UnitExpr: &ast.Ident{Name: "kg"},
				},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	models, err := r.Resolve("/root.oneil")
	qt.Assert(t, qt.IsNil(err))
	p, _ := models["/root.oneil"].Parameter("x")
	qt.Assert(t, qt.Equals(p.Limits.Continuous.Lo(), 0.0))
	qt.Assert(t, qt.Equals(p.Limits.Continuous.Hi(), 100.0))
}

// TestResolveTestInjectedNameResolvesLocal checks that a test's injected
// name (test `{delta_g}` syntax) resolves as a local identifier even
// though it names no parameter of this model: it's supplied by the
// parent at evaluation time, not declared here.
func TestResolveTestInjectedNameResolvesLocal(t *testing.T) {
	loader := &fakeLoader{files: map[string]string{"/root.oneil": ""}}
	parser := &fakeParser{files: map[string]*ast.File{
		"/root.oneil": {
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "mass", Name: "mass", Expr: num(5), UnitExpr: &ast.Ident{Name: "kg"}},
				&ast.TestDecl{
					Expr:   &ast.BinaryExpr{Op: ast.OpGt, X: &ast.Ident{Name: "delta_g"}, Y: num(0)},
					Inject: []string{"delta_g"},
				},
			},
		},
	}}
	r := resolve.New(loader, parser, builtin.Standard())
	models, err := r.Resolve("/root.oneil")
	qt.Assert(t, qt.IsNil(err))
	m := models["/root.oneil"]
	qt.Assert(t, qt.Equals(len(m.Tests), 1))
	ident := m.Tests[0].Expr.(*ir.Binary).X.(*ir.Ident)
	qt.Assert(t, qt.Equals(ident.Kind, ir.IdentLocal))
	qt.Assert(t, qt.DeepEquals(m.Tests[0].Inject, []string{"delta_g"}))
}

// TestResolveIdempotent covers resolver idempotence: resolving the same
// model twice, through two independent
// Resolver instances (so neither run can see the other's memoisation
// cache), yields structurally equal IR both times.
func TestResolveIdempotent(t *testing.T) {
	files := map[string]string{"/root.oneil": "", "/motor.oneil": ""}
	decls := func() *ast.File {
		return &ast.File{
			Path: "/root.oneil",
			Decls: []ast.Decl{
				&ast.ImportRefDecl{Path: "motor.oneil", As: "motor"},
				&ast.ParameterDecl{
					ID: "mass", Name: "Mass",
					Expr:     &ast.BinaryExpr{Op: ast.OpMul, X: num(2), Y: &ast.Ident{Alias: "motor", Name: "mass"}},
					UnitExpr: &ast.Ident{Name: "kg"},
				},
			},
		}
	}
	motor := func() *ast.File {
		return &ast.File{
			Path: "/motor.oneil",
			Decls: []ast.Decl{
				&ast.ParameterDecl{ID: "mass", Name: "Mass", Expr: num(10), UnitExpr: &ast.Ident{Name: "kg"}},
			},
		}
	}

	run := func() map[string]*ir.Model {
		loader := &fakeLoader{files: files}
		parser := &fakeParser{files: map[string]*ast.File{"/root.oneil": decls(), "/motor.oneil": motor()}}
		r := resolve.New(loader, parser, builtin.Standard())
		models, err := r.Resolve("/root.oneil")
		qt.Assert(t, qt.IsNil(err))
		return models
	}

	first := run()
	second := run()
	if diff := cmp.Diff(first, second, numberComparer); diff != "" {
		t.Errorf("resolving the same model twice produced different IR (-first +second):\n%s", diff)
	}
}
