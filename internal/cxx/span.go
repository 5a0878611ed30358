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

// Package cxx models the subset of a C++ translation unit needed for constness analysis.
package cxx

import "go/token"

// Span is a half-open source range.
type Span struct {
	From, To token.Pos
}

// Pos returns the start of the range.
func (s Span) Pos() token.Pos { return s.From }

// End returns the position immediately after the range.
func (s Span) End() token.Pos { return s.To }

// IsValid reports whether the range has a known start.
func (s Span) IsValid() bool { return s.From.IsValid() }

// Node is any element of the model with a source range.
type Node interface {
	Pos() token.Pos
	End() token.Pos
}
