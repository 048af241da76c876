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

import "github.com/careweather/oneil/internal/number"

// Op is an operator as written in source. Unlike internal/ir's Op (an
// int keyed for switch dispatch), the parser has no reason to intern
// these, so the literal spelling doubles as the value.
type Op string

const (
	OpAdd      Op = "+"
	OpSub      Op = "-"
	OpMul      Op = "*"
	OpDiv      Op = "/"
	OpMod      Op = "%"
	OpPow      Op = "^"
	OpDash     Op = "--"
	OpDashDash Op = "//"
	OpEq       Op = "=="
	OpNe       Op = "!="
	OpLt       Op = "<"
	OpLe       Op = "<="
	OpGt       Op = ">"
	OpGe       Op = ">="
	OpAnd      Op = "&&"
	OpOr       Op = "||"
	OpNot      Op = "!"
)

// NumberLit is a numeric literal, scalar or `lo|hi` interval.
type NumberLit struct {
	Span
	Val number.Number
}

// BoolLit is a boolean literal.
type BoolLit struct {
	Span
	Val bool
}

// StringLit is a string literal.
type StringLit struct {
	Span
	Val string
}

// Ident is a variable reference as written: a bare name, or a dotted
// `alias.name` path. Whether Name is local, a built-in, a Python import,
// or Alias names a valid reference is for internal/resolve to determine;
// the parser only records what the source spelled.
type Ident struct {
	Span
	Alias string // empty for a bare (undotted) name
	Name  string
}

// UnaryExpr is a unary operator expression.
type UnaryExpr struct {
	Span
	Op Op
	X  Expr
}

// BinaryExpr is a binary operator expression.
type BinaryExpr struct {
	Span
	Op   Op
	X, Y Expr
}

// BarExpr is interval construction via `|`.
type BarExpr struct {
	Span
	X, Y Expr
}

// CallExpr is a function call; Fun is always an *Ident.
type CallExpr struct {
	Span
	Fun  *Ident
	Args []Expr
}

// PiecewiseCase is one `(cond, expr)` arm of a PiecewiseExpr.
type PiecewiseCase struct {
	Cond Expr
	Expr Expr
}

// PiecewiseExpr is a `{ (cond, expr)+ , otherwise? }` expression.
// Otherwise is nil when the source has no `otherwise` arm.
type PiecewiseExpr struct {
	Span
	Cases     []PiecewiseCase
	Otherwise Expr
}
