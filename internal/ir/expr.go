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

package ir

import (
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/token"
)

// NumberLit is a numeric literal: a bare scalar, or a `lo|hi` interval
// constructed directly in source (as opposed to Bar, which constructs an
// interval from two arbitrary sub-expressions). The unit, if any, is
// attached by the enclosing Parameter, not carried here: a literal's
// SizedUnit.magnitude is folded in at evaluation time.
type NumberLit struct {
	Pos token.Position
	Val number.Number
}

func (x *NumberLit) Position() token.Position { return x.Pos }
func (*NumberLit) isExpr()                    {}

// BoolLit is a boolean literal.
type BoolLit struct {
	Pos token.Position
	Val bool
}

func (x *BoolLit) Position() token.Position { return x.Pos }
func (*BoolLit) isExpr()                    {}

// StringLit is a string literal.
type StringLit struct {
	Pos token.Position
	Val string
}

func (x *StringLit) Position() token.Position { return x.Pos }
func (*StringLit) isExpr()                    {}

// IdentKind classifies what an Ident resolves to.
type IdentKind int

const (
	// IdentLocal names a parameter id in the same model.
	IdentLocal IdentKind = iota
	// IdentQualified names a parameter id in a referenced model, written
	// `alias.ident` in source.
	IdentQualified
	// IdentBuiltin names a built-in constant or function.
	IdentBuiltin
	// IdentPythonFunc names an imported Python function.
	IdentPythonFunc
)

// Ident is a variable reference: a local parameter id, a two-level
// `alias.ident` path into a referenced model, a built-in name, or an
// imported Python function name.
//
// Resolve populates ResolvedPath for IdentQualified and IdentPythonFunc
// with the absolute path of the target model or Python file.
type Ident struct {
	Pos   token.Position
	Kind  IdentKind
	Alias string // reference or Python import alias; empty for IdentLocal/IdentBuiltin
	Name  string // local id, qualified ident, builtin name, or Python function name

	// ResolvedPath is the absolute path of the target model (IdentQualified)
	// or Python file (IdentPythonFunc); empty for IdentLocal/IdentBuiltin.
	ResolvedPath string
}

func (x *Ident) Position() token.Position { return x.Pos }
func (*Ident) isExpr()                    {}

// Unary is a unary operator expression: `-x`, `+x`, `!x`.
type Unary struct {
	Pos token.Position
	Op  Op
	X   Expr
}

func (x *Unary) Position() token.Position { return x.Pos }
func (*Unary) isExpr()                    {}

// Binary is a binary operator expression: `x + y`, `x <= y`, `x && y`, and
// so on, including the escape operators Dash and DashDash.
type Binary struct {
	Pos token.Position
	Op  Op
	X   Expr
	Y   Expr
}

func (x *Binary) Position() token.Position { return x.Pos }
func (*Binary) isExpr()                    {}

// Bar is interval construction via the `|` operator: `lo | hi`. Unlike
// Binary's other operators, its operands need not themselves be scalars:
// each may already be an interval, in which case Bar takes the union.
type Bar struct {
	Pos  token.Position
	X, Y Expr
}

func (x *Bar) Position() token.Position { return x.Pos }
func (*Bar) isExpr()                    {}

// Call invokes a built-in or imported Python function. Fun is always an
// *Ident with Kind IdentBuiltin or IdentPythonFunc once resolved.
type Call struct {
	Pos  token.Position
	Fun  *Ident
	Args []Expr
}

func (x *Call) Position() token.Position { return x.Pos }
func (*Call) isExpr()                    {}

// PiecewiseCase is one `(cond, expr)` arm of a Piecewise expression.
type PiecewiseCase struct {
	Cond Expr
	Expr Expr
}

// Piecewise evaluates its Cases left to right and returns the first whose
// Cond is true; Otherwise is evaluated if no Case matches and is nil if
// the source had no `otherwise` arm, in which case an absent Otherwise
// and no matching Case is a NoPiecewiseMatch error.
//
// Branches not taken are never type- or unit-checked.
type Piecewise struct {
	Pos       token.Position
	Cases     []PiecewiseCase
	Otherwise Expr
}

func (x *Piecewise) Position() token.Position { return x.Pos }
func (*Piecewise) isExpr()                    {}
