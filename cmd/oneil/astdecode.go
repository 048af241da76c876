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

package main

import (
	"encoding/json"
	"fmt"

	"github.com/careweather/oneil/ast"
	"github.com/careweather/oneil/internal/number"
)

// jsonParser satisfies resolve.Parser by decoding a model's source text
// as a JSON-encoded AST rather than tokenizing an .oneil file: Oneil
// never parses source text itself (see ast's package doc), so a real
// Oneil front end is an external collaborator this binary doesn't ship.
// This decoder is that collaborator's placeholder: it takes the AST
// shapes ast already fixes as its contract and reads them off the wire
// as JSON, the same contract a future tokenizer would have to satisfy.
type jsonParser struct{}

func (jsonParser) Parse(path, src string) (*ast.File, error) {
	var raw rawFile
	if err := json.Unmarshal([]byte(src), &raw); err != nil {
		return nil, fmt.Errorf("oneil: decoding %s: %w", path, err)
	}
	decls := make([]ast.Decl, 0, len(raw.Decls))
	for i, rd := range raw.Decls {
		d, err := decodeDecl(rd)
		if err != nil {
			return nil, fmt.Errorf("oneil: decoding %s decl %d: %w", path, i, err)
		}
		decls = append(decls, d)
	}
	return &ast.File{Path: path, Decls: decls}, nil
}

type rawFile struct {
	Path  string            `json:"path"`
	Decls []json.RawMessage `json:"decls"`
}

type rawDecl struct {
	Kind     string           `json:"kind"`
	ID       string           `json:"id"`
	Name     string           `json:"name"`
	Path     string           `json:"path"`
	As       string           `json:"as"`
	With     []rawWithItem    `json:"with"`
	Expr     *rawExpr         `json:"expr"`
	UnitExpr *rawExpr         `json:"unit"`
	Limits   *rawLimits       `json:"limits"`
	Perf     bool             `json:"performance"`
	Inject   []string         `json:"inject"`
}

type rawWithItem struct {
	Name  string `json:"name"`
	Alias string `json:"as"`
}

type rawLimits struct {
	Continuous *rawExpr `json:"continuous"`
	Discrete   []string `json:"discrete"`
}

type rawExpr struct {
	Kind      string          `json:"kind"`
	Val       json.RawMessage `json:"val"`
	Alias     string          `json:"alias"`
	Name      string          `json:"name"`
	Op        string          `json:"op"`
	X         *rawExpr        `json:"x"`
	Y         *rawExpr        `json:"y"`
	Fun       *rawExpr        `json:"fun"`
	Args      []*rawExpr      `json:"args"`
	Cases     []rawCase       `json:"cases"`
	Otherwise *rawExpr        `json:"otherwise"`
}

type rawCase struct {
	Cond *rawExpr `json:"cond"`
	Expr *rawExpr `json:"expr"`
}

func decodeDecl(msg json.RawMessage) (ast.Decl, error) {
	var rd rawDecl
	if err := json.Unmarshal(msg, &rd); err != nil {
		return nil, err
	}
	switch rd.Kind {
	case "python":
		return &ast.ImportPythonDecl{Path: rd.Path, As: rd.As}, nil
	case "ref":
		return &ast.ImportRefDecl{Path: rd.Path, As: rd.As}, nil
	case "use":
		with := make([]ast.WithItem, 0, len(rd.With))
		for _, w := range rd.With {
			alias := w.Alias
			if alias == "" {
				alias = w.Name
			}
			with = append(with, ast.WithItem{Name: w.Name, Alias: alias})
		}
		return &ast.ImportUseDecl{Path: rd.Path, As: rd.As, With: with}, nil
	case "parameter":
		expr, err := decodeExpr(rd.Expr)
		if err != nil {
			return nil, err
		}
		var unitExpr ast.Expr
		if rd.UnitExpr != nil {
			unitExpr, err = decodeExpr(rd.UnitExpr)
			if err != nil {
				return nil, err
			}
		}
		var limits *ast.LimitsExpr
		if rd.Limits != nil {
			limits = &ast.LimitsExpr{Discrete: rd.Limits.Discrete}
			if rd.Limits.Continuous != nil {
				c, err := decodeExpr(rd.Limits.Continuous)
				if err != nil {
					return nil, err
				}
				limits.Continuous = c
			}
		}
		return &ast.ParameterDecl{
			ID: rd.ID, Name: rd.Name, Expr: expr, UnitExpr: unitExpr,
			Limits: limits, Performance: rd.Perf,
		}, nil
	case "test":
		expr, err := decodeExpr(rd.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.TestDecl{Expr: expr, Inject: rd.Inject}, nil
	default:
		return nil, fmt.Errorf("unknown decl kind %q", rd.Kind)
	}
}

func decodeExpr(re *rawExpr) (ast.Expr, error) {
	if re == nil {
		return nil, nil
	}
	switch re.Kind {
	case "number":
		n, err := decodeNumber(re.Val)
		if err != nil {
			return nil, err
		}
		return &ast.NumberLit{Val: n}, nil
	case "bool":
		var b bool
		if err := json.Unmarshal(re.Val, &b); err != nil {
			return nil, err
		}
		return &ast.BoolLit{Val: b}, nil
	case "string":
		var s string
		if err := json.Unmarshal(re.Val, &s); err != nil {
			return nil, err
		}
		return &ast.StringLit{Val: s}, nil
	case "ident":
		return &ast.Ident{Alias: re.Alias, Name: re.Name}, nil
	case "unary":
		x, err := decodeExpr(re.X)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: ast.Op(re.Op), X: x}, nil
	case "binary":
		x, err := decodeExpr(re.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeExpr(re.Y)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: ast.Op(re.Op), X: x, Y: y}, nil
	case "bar":
		x, err := decodeExpr(re.X)
		if err != nil {
			return nil, err
		}
		y, err := decodeExpr(re.Y)
		if err != nil {
			return nil, err
		}
		return &ast.BarExpr{X: x, Y: y}, nil
	case "call":
		fun, err := decodeExpr(re.Fun)
		if err != nil {
			return nil, err
		}
		funIdent, ok := fun.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("call fun must decode to an ident")
		}
		args := make([]ast.Expr, 0, len(re.Args))
		for _, a := range re.Args {
			ae, err := decodeExpr(a)
			if err != nil {
				return nil, err
			}
			args = append(args, ae)
		}
		return &ast.CallExpr{Fun: funIdent, Args: args}, nil
	case "piecewise":
		cases := make([]ast.PiecewiseCase, 0, len(re.Cases))
		for _, c := range re.Cases {
			cond, err := decodeExpr(c.Cond)
			if err != nil {
				return nil, err
			}
			expr, err := decodeExpr(c.Expr)
			if err != nil {
				return nil, err
			}
			cases = append(cases, ast.PiecewiseCase{Cond: cond, Expr: expr})
		}
		otherwise, err := decodeExpr(re.Otherwise)
		if err != nil {
			return nil, err
		}
		return &ast.PiecewiseExpr{Cases: cases, Otherwise: otherwise}, nil
	default:
		return nil, fmt.Errorf("unknown expr kind %q", re.Kind)
	}
}

func decodeNumber(raw json.RawMessage) (number.Number, error) {
	var scalar float64
	if err := json.Unmarshal(raw, &scalar); err == nil {
		return number.NewScalar(scalar), nil
	}
	var iv struct {
		Lo float64 `json:"lo"`
		Hi float64 `json:"hi"`
	}
	if err := json.Unmarshal(raw, &iv); err != nil {
		return number.Number{}, fmt.Errorf("decoding numeric literal: %w", err)
	}
	return number.MustInterval(iv.Lo, iv.Hi), nil
}
