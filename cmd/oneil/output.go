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
	"io"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/careweather/oneil/internal/builtin"
	"github.com/careweather/oneil/internal/display"
	"github.com/careweather/oneil/internal/eval"
	"github.com/careweather/oneil/internal/value"
)

// report is the YAML-serializable shape of an EvaluatedModel: Value and
// TestResult aren't themselves marshalable (Value is an interface;
// TestResult carries an error), so the CLI flattens both into display
// strings on the way out.
type report struct {
	Path      string                 `yaml:"path"`
	Values    map[string]string      `yaml:"values"`
	Tests     map[string]reportTest  `yaml:"tests"`
	Submodels map[string]*report     `yaml:"submodels,omitempty"`
}

type reportTest struct {
	Status string `yaml:"status"`
	Reason string `yaml:"reason,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

func buildReport(em *eval.EvaluatedModel, reg *builtin.Registry, precision uint32, units map[string]string) (*report, error) {
	r := &report{
		Path:   em.Path,
		Values: make(map[string]string, len(em.Values)),
		Tests:  make(map[string]reportTest, len(em.Tests)),
	}

	for id, v := range em.Values {
		s, err := formatValue(v, id, reg, precision, units)
		if err != nil {
			return nil, err
		}
		r.Values[id] = s
	}

	for name, t := range em.Tests {
		rt := reportTest{Status: t.Status.String(), Reason: t.Reason}
		if t.Err != nil {
			rt.Error = t.Err.Error()
		}
		r.Tests[name] = rt
	}

	if len(em.Submodels) > 0 {
		r.Submodels = make(map[string]*report, len(em.Submodels))
		for alias, sub := range em.Submodels {
			child, err := buildReport(sub, reg, precision, units)
			if err != nil {
				return nil, err
			}
			r.Submodels[alias] = child
		}
	}
	return r, nil
}

func formatValue(v value.Value, id string, reg *builtin.Registry, precision uint32, units map[string]string) (string, error) {
	m, ok := v.(value.Measured)
	if !ok {
		return display.FormatValue(v, precision)
	}
	unitName, ok := units[id]
	if !ok {
		return display.FormatMeasured(m, precision)
	}
	su, err := reg.LookupUnit(unitName)
	if err != nil {
		return "", err
	}
	return display.FormatInUnit(m, su, precision)
}

func writeYAML(w io.Writer, em *eval.EvaluatedModel, reg *builtin.Registry, precision uint32, units map[string]string) error {
	r, err := buildReport(em, reg, precision, units)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(r)
}

// writeText prints a flat, human-readable summary: one aligned line per
// parameter, then one line per test outcome, recursing into submodels
// with an indented path header.
func writeText(w io.Writer, em *eval.EvaluatedModel, reg *builtin.Registry, precision uint32, units map[string]string) error {
	p := message.NewPrinter(language.English)
	return writeTextModel(p, w, em, reg, precision, units, 0)
}

func writeTextModel(p *message.Printer, w io.Writer, em *eval.EvaluatedModel, reg *builtin.Registry, precision uint32, units map[string]string, depth int) error {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}
	p.Fprintf(w, "%s# %s\n", indent, em.Path)

	ids := make([]string, 0, len(em.Values))
	for id := range em.Values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		s, err := formatValue(em.Values[id], id, reg, precision, units)
		if err != nil {
			return err
		}
		p.Fprintf(w, "%s%-24s %s\n", indent, id, s)
	}

	names := make([]string, 0, len(em.Tests))
	for name := range em.Tests {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := em.Tests[name]
		p.Fprintf(w, "%s%-24s %s\n", indent, name, t.Status.String())
	}

	aliases := make([]string, 0, len(em.Submodels))
	for alias := range em.Submodels {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		if err := writeTextModel(p, w, em.Submodels[alias], reg, precision, units, depth+1); err != nil {
			return err
		}
	}
	return nil
}
