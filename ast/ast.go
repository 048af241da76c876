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

// Package ast declares the syntax tree shapes produced by the external
// parser collaborator and consumed by internal/resolve. Oneil never
// parses source text itself; this package only fixes the contract a
// parser must satisfy, the same way cue/ast fixes the contract between
// CUE's parser and its compiler.
//
// Every node carries a source span (Pos/End) for resolver and evaluator
// diagnostics.
package ast

import "github.com/careweather/oneil/token"

// Span locates a node's source text and is embedded in every concrete
// node type, giving it Pos and End for free.
type Span struct {
	From token.Position
	To   token.Position
}

func (s Span) Pos() token.Position { return s.From }
func (s Span) End() token.Position { return s.To }

// Node is implemented by every AST node.
type Node interface {
	Pos() token.Position
	End() token.Position
}

// Decl is implemented by every top-level declaration node: import-python,
// import-ref, import-use, parameter, and test.
type Decl interface {
	Node
	declNode()
}

// Expr is implemented by every expression node: literals, variable
// references, unary/binary operators, calls, piecewise, and bar interval
// construction.
type Expr interface {
	Node
	exprNode()
}

func (*ImportPythonDecl) declNode() {}
func (*ImportRefDecl) declNode()    {}
func (*ImportUseDecl) declNode()    {}
func (*ParameterDecl) declNode()    {}
func (*TestDecl) declNode()         {}

func (*NumberLit) exprNode()     {}
func (*BoolLit) exprNode()       {}
func (*StringLit) exprNode()     {}
func (*Ident) exprNode()         {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*BarExpr) exprNode()       {}
func (*CallExpr) exprNode()      {}
func (*PiecewiseExpr) exprNode() {}
