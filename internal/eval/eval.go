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

// Package eval implements Oneil's evaluator: given the map of resolved
// models internal/resolve produces, it orders each model's parameters by
// dependency, evaluates every expression against internal/value's
// checked operations, verifies limits, recurses into submodels, and runs
// tests with their injected values.
package eval

import (
	"fmt"

	"github.com/careweather/oneil/errors"
	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/toposort"
	"github.com/careweather/oneil/internal/value"
)

// TestStatus is the outcome of running a single Test.
type TestStatus int

const (
	Pass TestStatus = iota
	Fail
	Skipped
)

func (s TestStatus) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// TestResult carries a test's outcome and, for a test that evaluated to a
// boolean, the local values its expression referenced.
type TestResult struct {
	Status  TestStatus
	Reason  string // Skipped: which injection was missing
	Err     error  // Fail from an evaluation error, or Skipped; nil for a false result
	Witness map[string]value.Value
}

// EvaluatedModel is one model's fully evaluated output: every parameter's
// Value, every test's result, and a child EvaluatedModel per submodel.
type EvaluatedModel struct {
	Path      string
	Values    map[string]value.Value
	Tests     map[string]*TestResult
	Submodels map[string]*EvaluatedModel
}

// Evaluator evaluates a resolved model graph. It runs single-threaded
// and synchronously, so unlike Resolver it carries no mutex: its
// memoisation cache is only ever touched by the one goroutine driving
// Evaluate. A zero Evaluator is not usable; construct one with New.
type Evaluator struct {
	Models   map[string]*ir.Model
	Builtins *builtin.Registry

	paramCache map[string]*paramEnv
}

// paramEnv holds a model's fully evaluated parameter values, memoised
// because parameter evaluation never depends on how the model was
// reached: injection only affects tests, never parameters.
type paramEnv struct {
	values map[string]value.Value
}

// New returns an Evaluator over the given resolved model graph.
func New(models map[string]*ir.Model, reg *builtin.Registry) *Evaluator {
	return &Evaluator{
		Models:     models,
		Builtins:   reg,
		paramCache: make(map[string]*paramEnv),
	}
}

// Evaluate evaluates the model at rootPath and everything it transitively
// uses, returning the root's EvaluatedModel tree.
func (e *Evaluator) Evaluate(rootPath string) (*EvaluatedModel, error) {
	m, err := e.evalTree(rootPath, nil)
	if err != nil {
		return nil, errors.Promote(err, "eval failed")
	}
	return m, nil
}

func (e *Evaluator) evalTree(path string, injected map[string]value.Value) (*EvaluatedModel, error) {
	model, ok := e.Models[path]
	if !ok {
		return nil, fmt.Errorf("eval: unknown model %q", path)
	}
	params, err := e.evalParams(path)
	if err != nil {
		return nil, err
	}

	em := &EvaluatedModel{
		Path:      path,
		Values:    cloneValues(params.values),
		Tests:     map[string]*TestResult{},
		Submodels: map[string]*EvaluatedModel{},
	}

	for alias, subPath := range model.Submodels {
		subModel, ok := e.Models[subPath]
		if !ok {
			return nil, fmt.Errorf("eval: unknown submodel %q", subPath)
		}
		inject := map[string]value.Value{}
		for _, t := range subModel.Tests {
			for _, name := range t.Inject {
				if v, ok := params.values[name]; ok {
					inject[name] = v
				}
			}
		}
		child, err := e.evalTree(subPath, inject)
		if err != nil {
			return nil, err
		}
		em.Submodels[alias] = child
	}

	for i, t := range model.Tests {
		em.Tests[fmt.Sprintf("test_%d", i+1)] = e.evalTest(path, t, params, injected)
	}

	return em, nil
}

// evalParams computes (and memoises) every parameter value for the model
// at path, in dependency order.
func (e *Evaluator) evalParams(path string) (*paramEnv, error) {
	if pe, ok := e.paramCache[path]; ok {
		return pe, nil
	}

	model, ok := e.Models[path]
	if !ok {
		return nil, fmt.Errorf("eval: unknown model %q", path)
	}

	builder := toposort.NewGraphBuilder[string]()
	for _, p := range model.Parameters {
		builder.EnsureNode(p.ID)
		for dep := range localDeps(p.Expr) {
			// dep must be evaluated before p, so the edge runs dep -> p.
			builder.AddEdge(dep, p.ID)
		}
	}
	order, cycle := builder.Build().Sort()
	if cycle != nil {
		return nil, &Error{Code: CircularDependency, Model: path, Chain: cycle.Nodes}
	}

	values := make(map[string]value.Value, len(model.Parameters))
	for _, id := range order {
		p, ok := model.Parameter(id)
		if !ok {
			// order can contain ids referenced but never declared; resolve
			// already rejects those, so this would be an invariant break.
			return nil, fmt.Errorf("eval: invariant violation: parameter %q not found in %s", id, path)
		}
		scope := &scope{evaluator: e, model: model, locals: values}
		v, err := e.evalExpr(p.Expr, scope)
		if err != nil {
			return nil, err
		}
		v, err = e.applyParamUnit(v, p)
		if err != nil {
			return nil, err
		}
		if err := e.verifyLimits(path, p, v); err != nil {
			return nil, err
		}
		values[id] = v
	}

	pe := &paramEnv{values: values}
	e.paramCache[path] = pe
	return pe, nil
}

// applyParamUnit converts a literal leaf parameter's value from its
// declared unit into base units; every stored value is kept in base
// units. A dependent parameter's value already arrives in base units by
// construction from the units of the names its expression references, so
// it passes through here unchanged, with no check against its own
// declared unit.
func (e *Evaluator) applyParamUnit(v value.Value, p *ir.Parameter) (value.Value, error) {
	m, ok := v.(value.Measured)
	if !ok {
		return v, nil
	}
	if !isLiteralLeaf(p.Expr) {
		return v, nil
	}
	if m.Num.IsScalar() {
		return value.Measured{Unit: p.Unit.Unit, Num: number.NewScalar(p.Unit.ConvertToBase(m.Num.Scalar()))}, nil
	}
	lo := p.Unit.ConvertToBase(m.Num.Lo())
	hi := p.Unit.ConvertToBase(m.Num.Hi())
	if lo > hi {
		lo, hi = hi, lo
	}
	return value.Measured{Unit: p.Unit.Unit, Num: number.MustInterval(lo, hi)}, nil
}

func isLiteralLeaf(e ir.Expr) bool {
	switch x := e.(type) {
	case *ir.NumberLit:
		return true
	case *ir.Bar:
		return isLiteralLeaf(x.X) && isLiteralLeaf(x.Y)
	case *ir.Unary:
		return x.Op == ir.Neg && isLiteralLeaf(x.X)
	default:
		return false
	}
}

// verifyLimits checks p's evaluated value v against its declared limits:
// continuous bounds are checked with tolerance, discrete bounds by exact
// set membership.
func (e *Evaluator) verifyLimits(path string, p *ir.Parameter, v value.Value) error {
	if p.Limits == nil {
		return nil
	}
	if p.Limits.Discrete != nil {
		s, ok := v.(value.String)
		if ok {
			for _, allowed := range p.Limits.Discrete {
				if string(s) == allowed {
					return nil
				}
			}
		}
		return &Error{Code: LimitViolated, Pos: p.Pos, Model: path, Name: p.ID, Value: v, Limit: p.Limits}
	}

	m, ok := v.(value.Measured)
	if !ok {
		return &Error{Code: LimitViolated, Pos: p.Pos, Model: path, Name: p.ID, Value: v, Limit: p.Limits}
	}
	lo, hi := m.Num.Lo(), m.Num.Hi()
	llo, lhi := p.Limits.Continuous.Lo(), p.Limits.Continuous.Hi()
	tol := e.Builtins.Tolerance
	okLo := lo >= llo || number.IsClose(lo, llo, tol)
	okHi := hi <= lhi || number.IsClose(hi, lhi, tol)
	if !okLo || !okHi {
		return &Error{Code: LimitViolated, Pos: p.Pos, Model: path, Name: p.ID, Value: v, Limit: p.Limits}
	}
	return nil
}

// evalTest evaluates a single test declaration, handling injection
// requirements before evaluation: a missing injected name makes the test
// Skipped, not a failure.
func (e *Evaluator) evalTest(path string, t *ir.Test, params *paramEnv, injected map[string]value.Value) *TestResult {
	locals := make(map[string]value.Value, len(params.values)+len(injected))
	for k, v := range params.values {
		locals[k] = v
	}
	for _, name := range t.Inject {
		v, ok := injected[name]
		if !ok {
			v, ok = params.values[name]
		}
		if !ok {
			return &TestResult{
				Status: Skipped,
				Reason: fmt.Sprintf("injected name %q was not supplied", name),
				Err:    &Error{Code: MissingInjection, Pos: t.Pos, Model: path, Name: name},
			}
		}
		locals[name] = v
	}

	model := e.Models[path]
	scope := &scope{evaluator: e, model: model, locals: locals}
	v, err := e.evalExpr(t.Expr, scope)
	if err != nil {
		return &TestResult{Status: Fail, Err: err}
	}
	b, ok := v.(value.Boolean)
	if !ok {
		return &TestResult{Status: Fail, Err: &Error{Code: TestNotBoolean, Pos: t.Pos, Model: path}}
	}
	witness := witnessOf(t.Expr, locals)
	if bool(b) {
		return &TestResult{Status: Pass, Witness: witness}
	}
	return &TestResult{Status: Fail, Witness: witness}
}

// witnessOf collects the locally-scoped values referenced directly in e,
// for reporting alongside a failing test.
func witnessOf(e ir.Expr, locals map[string]value.Value) map[string]value.Value {
	out := map[string]value.Value{}
	for name := range localDeps(e) {
		if v, ok := locals[name]; ok {
			out[name] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// localDeps returns the set of local parameter ids e references, walking
// every node shape in the IR.
func localDeps(e ir.Expr) map[string]struct{} {
	out := map[string]struct{}{}
	var walk func(ir.Expr)
	walk = func(e ir.Expr) {
		switch x := e.(type) {
		case *ir.Ident:
			if x.Kind == ir.IdentLocal {
				out[x.Name] = struct{}{}
			}
		case *ir.Unary:
			walk(x.X)
		case *ir.Binary:
			walk(x.X)
			walk(x.Y)
		case *ir.Bar:
			walk(x.X)
			walk(x.Y)
		case *ir.Call:
			for _, a := range x.Args {
				walk(a)
			}
		case *ir.Piecewise:
			for _, c := range x.Cases {
				walk(c.Cond)
				walk(c.Expr)
			}
			if x.Otherwise != nil {
				walk(x.Otherwise)
			}
		}
	}
	walk(e)
	return out
}

func cloneValues(m map[string]value.Value) map[string]value.Value {
	out := make(map[string]value.Value, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
