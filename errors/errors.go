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

// Package errors defines the shared error type used across the resolver
// and evaluator. The pivotal type is the Error interface: every public
// entry point returns either a successful payload or an error
// implementing it, carrying a source location where one is available.
package errors

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/careweather/oneil/token"
)

// New is a convenience wrapper for the standard library's errors.New. It
// does not return an Oneil Error.
func New(msg string) error { return errors.New(msg) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return errors.Is(err, target) }

// As finds the first error in err's chain assignable to target.
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Error is the common error type produced by the resolver and evaluator.
type Error interface {
	error

	// Position returns the primary source position of the error.
	Position() token.Position

	// Msg returns the unformatted message and its arguments, for callers
	// that want to localize or otherwise re-render the text themselves.
	Msg() (format string, args []interface{})
}

// posError is the concrete Error used by Newf/Wrapf.
type posError struct {
	pos    token.Position
	format string
	args   []interface{}
}

func (e *posError) Error() string { return fmt.Sprintf(e.format, e.args...) }

func (e *posError) Msg() (string, []interface{}) { return e.format, e.args }

func (e *posError) Position() token.Position { return e.pos }

// Newf creates an Error at the given position with a printf-style message.
func Newf(pos token.Position, format string, args ...interface{}) Error {
	return &posError{pos: pos, format: format, args: args}
}

// wrapped attaches context to an underlying error without discarding it.
type wrapped struct {
	main Error
	wrap error
}

func (e *wrapped) Error() string {
	msg := e.main.Error()
	if e.wrap == nil {
		return msg
	}
	if msg == "" {
		return e.wrap.Error()
	}
	return fmt.Sprintf("%s: %s", msg, e.wrap)
}

func (e *wrapped) Msg() (string, []interface{}) { return e.main.Msg() }
func (e *wrapped) Position() token.Position     { return e.main.Position() }
func (e *wrapped) Unwrap() error                { return e.wrap }

// Wrapf creates an Error at pos with the given message, recording child as
// underlying context recoverable via errors.Unwrap.
func Wrapf(child error, pos token.Position, format string, args ...interface{}) Error {
	main := &posError{pos: pos, format: format, args: args}
	if child == nil {
		return main
	}
	return &wrapped{main: main, wrap: child}
}

// Promote converts a plain Go error into an Error, leaving an existing
// Error untouched.
func Promote(err error, msg string) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return Wrapf(err, token.NoPos, "%s", msg)
}

// List is a list of Errors produced while processing a batch (e.g. every
// test in a model, or every parameter that failed after a cycle was
// reported). The zero value is an empty, ready-to-use list.
type List []Error

func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
	}
}

// Add appends err to the list, flattening if err is itself a List.
func (p *List) Add(err Error) {
	if err == nil {
		return
	}
	if l, ok := err.(List); ok {
		*p = append(*p, l...)
		return
	}
	*p = append(*p, err)
}

// AddNewf appends a new positional error to the list.
func (p *List) AddNewf(pos token.Position, format string, args ...interface{}) {
	p.Add(Newf(pos, format, args...))
}

// Err returns an error equivalent to the list, or nil if it is empty.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	if len(p) == 1 {
		return p[0]
	}
	return p
}

// Sanitize sorts the list by position and removes duplicate entries on a
// best-effort basis.
func Sanitize(p List) List {
	if len(p) < 2 {
		return p
	}
	a := slices.Clone(p)
	slices.SortFunc(a, func(x, y Error) int {
		if c := token.Compare(x.Position(), y.Position()); c != 0 {
			return c
		}
		return cmp.Compare(x.Error(), y.Error())
	})
	return slices.CompactFunc(a, func(x, y Error) bool {
		return token.Compare(x.Position(), y.Position()) == 0 && x.Error() == y.Error()
	})
}

// Positions returns the sorted, deduplicated source positions referenced
// by err (which may be a single Error or a List).
func Positions(err error) []token.Position {
	var out []token.Position
	switch e := err.(type) {
	case List:
		for _, x := range e {
			if p := x.Position(); p.IsValid() {
				out = append(out, p)
			}
		}
	case Error:
		if p := e.Position(); p.IsValid() {
			out = append(out, p)
		}
	default:
		return nil
	}
	slices.SortFunc(out, token.Compare)
	return slices.Compact(out)
}
