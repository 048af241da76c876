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

// Package ir defines Oneil's intermediate representation: a restructuring
// of the parsed AST with declarations grouped by kind, variable
// references annotated with their resolved target, and unit expressions
// normalised into a single SizedUnit. An IR model is built once by
// internal/resolve and never mutated afterward.
package ir

import "github.com/careweather/oneil/token"

// Op names an operator usable in a Unary or Binary expression node. The
// numeric value carries no meaning beyond identity; String is what error
// messages and tests print.
type Op int

const (
	// Binary arithmetic.
	Add Op = iota
	Sub
	Mul
	Div
	Mod
	Pow
	Dash     // "--", dependency-aware subtraction
	DashDash // "//", dependency-aware division

	// Comparison.
	Eq
	Ne
	Lt
	Le
	Gt
	Ge

	// Boolean.
	And
	Or
	Not // unary

	// Unary arithmetic.
	Neg // unary minus
	Pos // unary plus (identity)
)

var opNames = map[Op]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Pow: "^",
	Dash: "--", DashDash: "//",
	Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">=",
	And: "&&", Or: "||", Not: "!",
	Neg: "-", Pos: "+",
}

func (op Op) String() string {
	if s, ok := opNames[op]; ok {
		return s
	}
	return "Op(?)"
}

// Expr is a node in an expression tree. Every implementation is one of
// the node types in this file.
type Expr interface {
	// Position returns the source location the node was parsed from, for
	// use in resolver and evaluator diagnostics.
	Position() token.Position

	isExpr()
}
