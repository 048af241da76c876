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

// Package oneil is the public facade over Oneil's resolver and
// evaluator: embedding programs that don't need internal/resolve's or
// internal/eval's finer-grained types can just call Resolve, Evaluate,
// or Load.
package oneil

import (
	"github.com/careweather/oneil/errors"
	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/ir"
	"github.com/careweather/oneil/internal/resolve"
)

// FileLoader is the file-loading capability a caller supplies to Resolve.
type FileLoader = resolve.FileLoader

// Parser is the parsing capability a caller supplies to Resolve: the
// contract a real Oneil front end (outside this module) must satisfy.
type Parser = resolve.Parser

// ResolveError is returned by Resolve when a model graph fails to
// resolve: a missing import target, an unresolved identifier, an import
// cycle, or a unit mismatch in a unit expression.
type ResolveError = resolve.Error

// Resolve resolves root and everything it transitively imports or uses,
// returning the full absolute-path-to-model map. A non-nil error always
// implements errors.Error, so callers can recover a source position with
// errors.Positions regardless of whether the failure came from the
// resolver itself or from a caller-supplied Parser/FileLoader.
func Resolve(root string, loader FileLoader, parser Parser, reg *builtin.Registry) (map[string]*ir.Model, errors.Error) {
	models, err := resolve.New(loader, parser, reg).Resolve(root)
	if err != nil {
		return nil, errors.Promote(err, "resolve failed")
	}
	return models, nil
}
