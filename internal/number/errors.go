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

package number

import "fmt"

// ArithErrorCode distinguishes the ways a Number arithmetic operation can
// fail.
type ArithErrorCode int

const (
	// DivisionByZero means the divisor of / or % was exactly zero (the
	// scalar 0 or the interval [0,0]), or a divisor of // had an endpoint
	// at 0.
	DivisionByZero ArithErrorCode = iota
	// NonScalarModulus means the right operand of % was an interval.
	NonScalarModulus
	// NonScalarExponent means the right operand of ^ was an interval.
	NonScalarExponent
	// DomainError means a function or operator was given an argument
	// outside its domain (e.g. a fractional power of a negative base).
	DomainError
)

// ArithError reports a Number arithmetic failure.
type ArithError struct {
	Code ArithErrorCode
	// Func names the operator or builtin function that failed, e.g. "/",
	// "%%", "^", "sqrt".
	Func string
	// Arg optionally names which argument was at fault.
	Arg string
}

func (e *ArithError) Error() string {
	switch e.Code {
	case DivisionByZero:
		return "division by zero"
	case NonScalarModulus:
		return "modulus must be a scalar: result of x%y depends on the value of y's position within its interval"
	case NonScalarExponent:
		return "exponent must be a scalar: unit of x^y depends on the value of y"
	case DomainError:
		if e.Arg != "" {
			return fmt.Sprintf("%s: argument %s out of domain", e.Func, e.Arg)
		}
		return fmt.Sprintf("%s: argument out of domain", e.Func)
	default:
		return "arithmetic error"
	}
}
