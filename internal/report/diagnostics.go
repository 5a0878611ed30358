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

// Package report turns analysis findings into diagnostics and renders them.
package report

import "go/token"

//go:generate go tool stringer -type Severity,Category -linecomment

// Severity is the level of a [Diagnostic].
type Severity uint8

const (
	Warning Severity = iota // warning
	Note                    // note
)

// Category classifies a [Diagnostic].
type Category uint8

const (
	ConstVariable Category = iota // const-variable
	ConstMethod                   // const-method
	StaticMethod                  // static-method
	Declaration                   // declaration
	Change                        // change
	Use                           // use
	Internal                      // internal
)

// Diagnostic is a single finding.
type Diagnostic struct {
	Pos, End       token.Pos
	Severity       Severity
	Category       Category
	Name           string
	Message        string
	SuggestedFixes []SuggestedFix
}

// SuggestedFix is a set of edits resolving a [Diagnostic].
type SuggestedFix struct {
	Message   string
	TextEdits []TextEdit
}

// TextEdit replaces the source range [Pos, End) with NewText.
type TextEdit struct {
	Pos, End token.Pos
	NewText  []byte
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// Collector is a [Sink] that keeps all diagnostics in arrival order.
type Collector struct {
	Diagnostics []Diagnostic
}

// Report implements [Sink].
func (c *Collector) Report(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}

// SinkFunc adapts a function to [Sink].
type SinkFunc func(Diagnostic)

// Report implements [Sink].
func (f SinkFunc) Report(d Diagnostic) { f(d) }
