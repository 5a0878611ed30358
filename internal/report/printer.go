// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"encoding/json"
	"fmt"
	"go/token"
	"io"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Format selects how diagnostics are rendered.
type Format uint8

const (
	// FormatText renders compiler-style lines.
	FormatText Format = iota

	// FormatJSON renders a JSON array.
	FormatJSON

	// FormatYAML renders a YAML sequence.
	FormatYAML
)

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case FormatText:
		return []byte("text"), nil

	case FormatJSON:
		return []byte("json"), nil

	case FormatYAML:
		return []byte("yaml"), nil

	default:
		return nil, fmt.Errorf("unknown format %d", f)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "text":
		*f = FormatText

	case "json":
		*f = FormatJSON

	case "yaml", "yml":
		*f = FormatYAML

	default:
		return fmt.Errorf("unknown format %q", string(text))
	}

	return nil
}

// Printer renders diagnostics.
type Printer interface {
	Print(fset *token.FileSet, diagnostics []Diagnostic) error
}

// NewPrinter returns a [Printer] for format writing to w.
func NewPrinter(format Format, w io.Writer, colored bool) Printer {
	switch format {
	case FormatJSON:
		return jsonPrinter{w}

	case FormatYAML:
		return yamlPrinter{w}

	default:
		return newTextPrinter(w, colored)
	}
}

type textPrinter struct {
	w                    io.Writer
	location, warn, note *color.Color
}

func newTextPrinter(w io.Writer, colored bool) textPrinter {
	p := textPrinter{
		w:        w,
		location: color.New(color.Bold),
		warn:     color.New(color.FgYellow, color.Bold),
		note:     color.New(color.FgCyan),
	}

	if !colored {
		p.location.DisableColor()
		p.warn.DisableColor()
		p.note.DisableColor()
	}

	return p
}

func (p textPrinter) Print(fset *token.FileSet, diagnostics []Diagnostic) error {
	for _, d := range diagnostics {
		severity := p.warn
		if d.Severity == Note {
			severity = p.note
		}

		if _, err := fmt.Fprintf(p.w, "%s: %s %s [%s]\n",
			p.location.Sprint(fset.Position(d.Pos)), severity.Sprint(d.Severity.String()+":"), d.Message, d.Category); err != nil {
			return err
		}
	}

	return nil
}

// entry is the serialized form of a [Diagnostic].
type entry struct {
	File     string `json:"file"            yaml:"file"`
	Line     int    `json:"line"            yaml:"line"`
	Column   int    `json:"column"          yaml:"column"`
	Severity string `json:"severity"        yaml:"severity"`
	Category string `json:"category"        yaml:"category"`
	Name     string `json:"name,omitempty"  yaml:"name,omitempty"`
	Message  string `json:"message"         yaml:"message"`
	Fixable  bool   `json:"fixable"         yaml:"fixable"`
}

func entries(fset *token.FileSet, diagnostics []Diagnostic) []entry {
	list := make([]entry, 0, len(diagnostics))
	for _, d := range diagnostics {
		pos := fset.Position(d.Pos)
		list = append(list, entry{
			File:     pos.Filename,
			Line:     pos.Line,
			Column:   pos.Column,
			Severity: d.Severity.String(),
			Category: d.Category.String(),
			Name:     d.Name,
			Message:  d.Message,
			Fixable:  len(d.SuggestedFixes) > 0,
		})
	}

	return list
}

type jsonPrinter struct{ w io.Writer }

func (p jsonPrinter) Print(fset *token.FileSet, diagnostics []Diagnostic) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")

	return enc.Encode(entries(fset, diagnostics))
}

type yamlPrinter struct{ w io.Writer }

func (p yamlPrinter) Print(fset *token.FileSet, diagnostics []Diagnostic) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)

	if err := enc.Encode(entries(fset, diagnostics)); err != nil {
		return err
	}

	return enc.Close()
}
