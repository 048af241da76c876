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

// Package config loads an optional oneil.toml carrying the comparison
// tolerances (abs_tol, rel_tol) and extra unit-prefix definitions, so
// neither is a hardwired constant: both become an injected, testable
// capability, consistent with the capability-injection rule the
// resolver and its collaborators follow.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/careweather/oneil/internal/builtin"
)

// Config is the decoded shape of oneil.toml. Every field is optional;
// an absent field leaves the corresponding default untouched.
type Config struct {
	AbsTol   *float64           `toml:"abs_tol"`
	RelTol   *float64           `toml:"rel_tol"`
	Prefixes map[string]float64 `toml:"prefixes"`
}

// Load decodes the TOML document at path into a Config.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Parse decodes the TOML document in src into a Config, for callers that
// already have the file's contents (e.g. read through a FileLoader
// rather than the local filesystem).
func Parse(src string) (*Config, error) {
	var c Config
	if _, err := toml.Decode(src, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Apply installs c's tolerances into reg.Tolerance and merges c's extra
// prefixes into reg.Prefixes. A Registry's Tolerance and Prefixes are the
// two configurable pieces of built-in state, so Apply is the single
// place that wires a loaded Config into a particular resolve/eval
// pipeline's Registry, never into shared package state.
func (c *Config) Apply(reg *builtin.Registry) {
	if c == nil {
		return
	}
	if c.AbsTol != nil {
		reg.Tolerance.Abs = *c.AbsTol
	}
	if c.RelTol != nil {
		reg.Tolerance.Rel = *c.RelTol
	}
	for sym, mag := range c.Prefixes {
		reg.Prefixes[sym] = mag
	}
}
