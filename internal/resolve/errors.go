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
	"fmt"
	"strings"

	"github.com/careweather/oneil/errors"
	"github.com/careweather/oneil/token"
)

var _ errors.Error = (*Error)(nil)

// ErrorCode is one of a Resolver's failure variants.
type ErrorCode int

const (
	Cycle ErrorCode = iota
	Unknown
	UnknownUnit
	ImportTargetMissing
	PythonImportMissing
)

// Error reports a failure in resolving a model graph: an import cycle, an
// unresolvable identifier or unit name, or a missing import target.
type Error struct {
	Code ErrorCode
	Pos  token.Position

	Name  string   // Unknown, UnknownUnit
	Path  string   // ImportTargetMissing, PythonImportMissing
	Chain []string // Cycle: the import chain, closed (chain[0] == chain[len-1])
}

func (e *Error) Error() string {
	switch e.Code {
	case Cycle:
		return fmt.Sprintf("import cycle: %s", strings.Join(e.Chain, " -> "))
	case Unknown:
		return fmt.Sprintf("unresolved identifier %q", e.Name)
	case UnknownUnit:
		return fmt.Sprintf("unknown unit %q", e.Name)
	case ImportTargetMissing:
		return fmt.Sprintf("import target does not exist: %s", e.Path)
	case PythonImportMissing:
		return fmt.Sprintf("python import does not exist: %s", e.Path)
	default:
		return "resolve error"
	}
}

func (e *Error) Position() token.Position { return e.Pos }

func (e *Error) Msg() (string, []interface{}) { return e.Error(), nil }
