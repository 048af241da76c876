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

// Package resolve implements Oneil's model resolver: given a root model
// path, a file-loading capability, a parsing capability, and a built-in
// registry, it produces a map from absolute path to resolved
// internal/ir.Model, with every identifier and unit expression resolved
// and import cycles rejected.
package resolve

import (
	"path"
	"strings"
	"sync"

	"github.com/careweather/oneil/ast"
	"github.com/careweather/oneil/errors"
	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/unit"
)

// Resolver resolves a graph of model files rooted at a single entry path.
// A Resolver is safe for concurrent use and memoises each absolute path it
// resolves, so shared dependencies are parsed and resolved exactly once.
type Resolver struct {
	Loader   FileLoader
	Parser   Parser
	Builtins *builtin.Registry

	mu   sync.Mutex
	done map[string]*ir.Model
}

// New returns a Resolver using the given collaborators.
func New(loader FileLoader, parser Parser, reg *builtin.Registry) *Resolver {
	return &Resolver{
		Loader:   loader,
		Parser:   parser,
		Builtins: reg,
		done:     make(map[string]*ir.Model),
	}
}

// Resolve resolves rootPath and every model it transitively imports,
// returning the full absolute-path-to-model map.
func (r *Resolver) Resolve(rootPath string) (map[string]*ir.Model, error) {
	var chain []string
	if _, err := r.resolveModel(rootPath, map[string]bool{}, &chain); err != nil {
		// A List already carries one position per entry; re-promoting it
		// would flatten that down to a single untyped message.
		if _, ok := err.(errors.List); ok {
			return nil, err
		}
		return nil, errors.Promote(err, "resolve failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*ir.Model, len(r.done))
	for k, v := range r.done {
		out[k] = v
	}
	return out, nil
}

func (r *Resolver) resolveModel(p string, inProgress map[string]bool, chain *[]string) (*ir.Model, error) {
	r.mu.Lock()
	if m, ok := r.done[p]; ok {
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()

	if inProgress[p] {
		cycle := append(append([]string{}, *chain...), p)
		return nil, &Error{Code: Cycle, Chain: cycle}
	}
	if !r.Loader.Exists(p) {
		return nil, &Error{Code: ImportTargetMissing, Path: p}
	}

	inProgress[p] = true
	*chain = append(*chain, p)
	defer func() {
		delete(inProgress, p)
		*chain = (*chain)[:len(*chain)-1]
	}()

	src, err := r.Loader.ReadFile(p)
	if err != nil {
		return nil, &Error{Code: ImportTargetMissing, Path: p}
	}
	file, err := r.Parser.Parse(p, src)
	if err != nil {
		return nil, err
	}

	model := &ir.Model{
		Path:          p,
		References:    map[string]string{},
		Submodels:     map[string]string{},
		PythonAliases: map[string]string{},
	}

	var pyDecls []*ast.ImportPythonDecl
	var refDecls []*ast.ImportRefDecl
	var useDecls []*ast.ImportUseDecl
	var paramDecls []*ast.ParameterDecl
	var testDecls []*ast.TestDecl
	for _, d := range file.Decls {
		switch d := d.(type) {
		case *ast.ImportPythonDecl:
			pyDecls = append(pyDecls, d)
		case *ast.ImportRefDecl:
			refDecls = append(refDecls, d)
		case *ast.ImportUseDecl:
			useDecls = append(useDecls, d)
		case *ast.ParameterDecl:
			paramDecls = append(paramDecls, d)
		case *ast.TestDecl:
			testDecls = append(testDecls, d)
		}
	}

	// Every python import is independent of every other, unlike ref/use
	// imports which must resolve transitively in order, so a model with
	// several missing python imports is reported all at once instead of
	// one at a time across repeated runs.
	var missing errors.List
	for _, d := range pyDecls {
		target := resolvePath(p, d.Path)
		if !r.Loader.Exists(target) {
			missing.Add(&Error{Code: PythonImportMissing, Pos: d.Pos(), Path: target})
			continue
		}
		model.PythonImports = append(model.PythonImports, target)
		alias := d.As
		if alias == "" {
			alias = moduleName(target)
		}
		model.PythonAliases[alias] = target
	}
	if err := errors.Sanitize(missing).Err(); err != nil {
		return nil, err
	}

	for _, d := range refDecls {
		target := resolvePath(p, d.Path)
		if _, err := r.resolveModel(target, inProgress, chain); err != nil {
			return nil, err
		}
		alias := d.As
		if alias == "" {
			alias = moduleName(target)
		}
		model.References[alias] = target
	}

	for _, d := range useDecls {
		target := resolvePath(p, d.Path)
		if _, err := r.resolveModel(target, inProgress, chain); err != nil {
			return nil, err
		}
		alias := d.As
		if alias == "" {
			alias = moduleName(target)
		}
		model.Submodels[alias] = target
		model.References[alias] = target
		for _, w := range d.With {
			model.References[w.Alias] = target
		}
	}

	localIDs := make(map[string]bool, len(paramDecls))
	for _, d := range paramDecls {
		localIDs[d.ID] = true
	}

	for _, d := range paramDecls {
		param := &ir.Parameter{
			Pos:         d.Pos(),
			ID:          d.ID,
			Name:        d.Name,
			Performance: d.Performance,
		}
		expr, err := r.resolveExpr(d.Expr, model, localIDs)
		if err != nil {
			return nil, err
		}
		param.Expr = expr

		if d.Limits != nil {
			lim, err := r.resolveLimits(d.Limits, model, localIDs)
			if err != nil {
				return nil, err
			}
			param.Limits = lim
		}

		if d.UnitExpr != nil {
			su, terms, err := r.foldUnit(d.UnitExpr)
			if err != nil {
				return nil, err
			}
			param.Unit = su
			param.UnitExpr = terms
		} else {
			param.Unit = unit.NewSizedUnit(1, unit.Dimensionless())
		}

		model.Parameters = append(model.Parameters, param)
	}

	for _, d := range testDecls {
		// An injected name (test `{delta_g}` syntax) is referenced in the
		// test's own expression like any other local identifier, even
		// though it isn't one of this model's own parameters: it's
		// supplied by the parent at evaluation time. Extend localIDs for
		// this test's resolution only.
		testIDs := localIDs
		if len(d.Inject) > 0 {
			testIDs = make(map[string]bool, len(localIDs)+len(d.Inject))
			for k, v := range localIDs {
				testIDs[k] = v
			}
			for _, name := range d.Inject {
				testIDs[name] = true
			}
		}
		expr, err := r.resolveExpr(d.Expr, model, testIDs)
		if err != nil {
			return nil, err
		}
		model.Tests = append(model.Tests, &ir.Test{Pos: d.Pos(), Expr: expr, Inject: d.Inject})
	}

	r.mu.Lock()
	r.done[p] = model
	r.mu.Unlock()

	return model, nil
}

// resolvePath resolves an import's target path relative to the
// importing file's directory. An absolute path (leading "/") is left
// as-is, Oneil's optional directory-prefix syntax.
func resolvePath(fromFile, target string) string {
	if strings.HasPrefix(target, "/") {
		return path.Clean(target)
	}
	return path.Clean(path.Join(path.Dir(fromFile), target))
}

// moduleName derives the implicit alias for an import with no explicit
// `as` clause: the target file's base name, without its extension.
func moduleName(p string) string {
	base := path.Base(p)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
