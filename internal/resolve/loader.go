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

package resolve

import (
	"github.com/spf13/afero"

	"github.com/careweather/oneil/ast"
)

// FileLoader is the "(path) -> text plus (path) -> exists?" capability a
// Resolver needs. A Resolver never touches a filesystem directly.
type FileLoader interface {
	ReadFile(path string) (string, error)
	Exists(path string) bool
}

// Parser is the external collaborator that turns source text into an
// AST. Oneil itself never tokenizes or parses source.
type Parser interface {
	Parse(path, src string) (*ast.File, error)
}

// AferoLoader adapts an afero.Fs to FileLoader, letting callers swap in an
// in-memory filesystem for tests or a real one in production.
type AferoLoader struct {
	Fs afero.Fs
}

// NewAferoLoader returns a FileLoader backed by fs.
func NewAferoLoader(fs afero.Fs) *AferoLoader {
	return &AferoLoader{Fs: fs}
}

func (l *AferoLoader) ReadFile(path string) (string, error) {
	b, err := afero.ReadFile(l.Fs, path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (l *AferoLoader) Exists(path string) bool {
	ok, err := afero.Exists(l.Fs, path)
	return err == nil && ok
}
