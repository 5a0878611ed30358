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

package cxx

import (
	"go/token"
	"iter"
)

// Comment is a source comment.
type Comment struct {
	Span
	Text string
}

// Unit is a parsed translation unit: a main file and the headers it includes.
type Unit struct {
	Path     string
	Fset     *token.FileSet
	Records  []*Record
	Decls    []*Decl // Functions and member functions in source order.
	Comments []Comment
}

// Definitions returns the function and member function definitions in source order.
func (u *Unit) Definitions() iter.Seq[*Decl] {
	return func(yield func(*Decl) bool) {
		for _, d := range u.Decls {
			if d.IsDefinition() && !yield(d) {
				return
			}
		}
	}
}

// Position resolves pos in the unit's file set.
func (u *Unit) Position(pos token.Pos) token.Position {
	if u.Fset == nil {
		return token.Position{}
	}

	return u.Fset.Position(pos)
}
