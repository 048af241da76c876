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

package value

import (
	"github.com/careweather/oneil/internal/number"
	"github.com/careweather/oneil/internal/unit"
)

// CheckedBar implements "a | b", the interval-construction operator:
// both operands must be Measured in compatible units; the result is the
// smallest interval enclosing both.
func CheckedBar(a, b Value) (Value, error) {
	am, err := asMeasured("|", a)
	if err != nil {
		return nil, err
	}
	bm, err := asMeasured("|", b)
	if err != nil {
		return nil, err
	}
	if !unit.Compatible(am.Unit, bm.Unit) {
		return nil, &unit.UnitError{Code: unit.Mismatch, Left: am.Unit, Right: bm.Unit}
	}
	return Measured{Unit: am.Unit, Num: number.Bar(am.Num, bm.Num)}, nil
}
