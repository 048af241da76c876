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

// Package builtin implements Oneil's built-in registry: a capability,
// consumed by the resolver and evaluator and replaceable by a
// caller-supplied one, holding named values, functions, sized units and
// unit prefixes. Standard returns Oneil's own default registry.
package builtin

import (
	"fmt"

	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
	"github.com/careweather/oneil/internal/value"
)

// Func is a built-in callable: it receives already-evaluated arguments
// and returns a Value or fails.
type Func func(args []value.Value) (value.Value, error)

// Registry is the capability holding values, functions, sized units,
// unit prefixes, and the comparison tolerance: a Registry is the only
// place that tolerance lives, so two Registries never interfere with
// each other.
type Registry struct {
	Values    map[string]value.Value
	Functions map[string]Func
	Units     map[string]*unit.SizedUnit
	Prefixes  map[string]float64
	Tolerance number.Tolerance
}

// New returns an empty registry, ready for a caller to populate. This is
// the extension point for a consumer that wants its own built-in library
// instead of Standard's.
func New() *Registry {
	return &Registry{
		Values:    make(map[string]value.Value),
		Functions: make(map[string]Func),
		Units:     make(map[string]*unit.SizedUnit),
		Prefixes:  make(map[string]float64),
		Tolerance: number.DefaultTolerance(),
	}
}

// LookupValue resolves a named constant.
func (r *Registry) LookupValue(name string) (value.Value, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// LookupFunc resolves a named function.
func (r *Registry) LookupFunc(name string) (Func, bool) {
	f, ok := r.Functions[name]
	return f, ok
}

// LookupUnit resolves a bare unit name, or a prefix-decorated one (e.g.
// "km" = prefix "k" applied to unit "m"): prefix lookup applies the
// prefix magnitude to the underlying unit's magnitude. Bare names are
// tried first, so a unit whose own symbol happens to collide with a
// prefixed spelling (in Standard, "kg" and "min" read as k+g and m+in)
// always wins.
func (r *Registry) LookupUnit(name string) (*unit.SizedUnit, error) {
	if u, ok := r.Units[name]; ok {
		return u, nil
	}
	for sym, mag := range r.Prefixes {
		if !hasPrefix(name, sym) {
			continue
		}
		base, ok := r.Units[name[len(sym):]]
		if !ok {
			continue
		}
		return &unit.SizedUnit{
			Magnitude: mag * base.Magnitude,
			Unit:      base.Unit,
			Offset:    base.Offset,
		}, nil
	}
	return nil, fmt.Errorf("builtin: unknown unit %q", name)
}

func hasPrefix(name, prefix string) bool {
	return len(name) > len(prefix) && name[:len(prefix)] == prefix
}

// Call invokes the named function, or reports an UnimplementedError if
// name has no function registered in this registry.
func (r *Registry) Call(name string, args []value.Value) (value.Value, error) {
	fn, ok := r.Functions[name]
	if !ok {
		return nil, &UnimplementedError{Name: name}
	}
	return fn(args)
}

// UnimplementedError reports a call to a builtin name that has no
// function registered.
type UnimplementedError struct{ Name string }

func (e *UnimplementedError) Error() string {
	return fmt.Sprintf("builtin %q is not implemented", e.Name)
}
