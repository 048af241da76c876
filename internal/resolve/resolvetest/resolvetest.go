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

// Package resolvetest is a test-only parser substitute: it hands back
// *ast.File values built directly by the caller, keyed by path, instead
// of tokenizing source text. internal/resolve's Parser capability only
// asks for something that turns (path, src) into an *ast.File; building a
// real Oneil tokenizer is out of scope, so this is the stand-in the top-level
// oneil package's tests use.
package resolvetest

import "github.com/careweather/oneil/ast"

// Loader serves fixed file content from an in-memory map, standing in
// for a real filesystem.
type Loader struct {
	Files map[string]string
}

// NewLoader returns a Loader serving files's content. An entry with an
// empty string still counts as present for Exists.
func NewLoader(files map[string]string) *Loader {
	return &Loader{Files: files}
}

func (l *Loader) ReadFile(path string) (string, error) {
	return l.Files[path], nil
}

func (l *Loader) Exists(path string) bool {
	_, ok := l.Files[path]
	return ok
}

// Parser hands back pre-built *ast.File fixtures keyed by path. It never
// looks at the src argument resolve.Resolver passes it: the fixture is
// already an AST, so there is nothing to parse.
type Parser struct {
	Files map[string]*ast.File
}

// NewParser returns a Parser serving files, keyed by absolute path.
func NewParser(files map[string]*ast.File) *Parser {
	return &Parser{Files: files}
}

func (p *Parser) Parse(path, src string) (*ast.File, error) {
	return p.Files[path], nil
}
