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

package ast

// File is the parsed representation of one model source file: an
// unordered bag of declarations, later partitioned by kind by
// internal/resolve.
type File struct {
	Path  string
	Decls []Decl
}

// ImportPythonDecl is a `python "path/to/file.py" as alias` declaration.
// As names the alias a call expression uses to reach a function in that
// file (`alias.func(...)`). It is empty when the source omits an explicit
// alias, in which case the file's base name without its extension is the
// alias.
type ImportPythonDecl struct {
	Span
	Path string
	As   string
}

// ImportRefDecl is a `ref "path/to/model.oneil" as alias` declaration. As
// is empty when the source omits an explicit alias, in which case the
// referenced model's own name is the alias.
type ImportRefDecl struct {
	Span
	Path string
	As   string
}

// WithItem is one entry of a `use`'s optional `with [a, b as c]` clause,
// sugar for adding reference aliases alongside the submodel import.
type WithItem struct {
	Name  string
	Alias string // equal to Name when the source has no `as` clause
}

// ImportUseDecl is a `use "path/to/model.oneil" as alias with [...]`
// declaration: a submodel import, optionally with extra reference
// aliases.
type ImportUseDecl struct {
	Span
	Path string
	As   string
	With []WithItem
}

// LimitsExpr is a parameter's optional limits clause: exactly one of
// Continuous or Discrete is populated by the parser.
type LimitsExpr struct {
	Span
	// Continuous is the bounding interval expression, e.g. `0 | 100`.
	Continuous Expr
	// Discrete is the literal set of allowed strings.
	Discrete []string
}

// ParameterDecl is a parameter declaration: name, optional limits, id,
// expression, optional unit-expression, and a performance flag.
type ParameterDecl struct {
	Span
	ID          string
	Name        string
	Limits      *LimitsExpr // nil if absent
	Expr        Expr
	UnitExpr    Expr // nil if dimensionless
	Performance bool
}

// TestDecl is a test declaration: a boolean expression plus the names of
// any parameters the parent model must inject.
type TestDecl struct {
	Span
	Expr   Expr
	Inject []string
}
