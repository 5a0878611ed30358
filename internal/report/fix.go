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
	"go/token"

	"fillmore-labs.com/constguard/internal/cxx"
)

var (
	constPrefix  = []byte("const ")
	constSuffix  = []byte(" const")
	staticPrefix = []byte("static ")
)

// constVariableEdits adds a top-level const qualifier to d.
//
// Pointers get the qualifier in front of the name. Other types get it in front
// of the declaration specifiers, which is only possible when no other declarator
// shares them.
func constVariableEdits(d *cxx.Decl) []TextEdit {
	t := d.Type
	switch {
	case t.IsPointer():
		if !d.NamePos.IsValid() {
			return nil
		}

		return []TextEdit{insert(d.NamePos, constPrefix)}

	case t.IsReference() && t.Elem.IsPointer():
		return nil

	case d.SpecPos.IsValid():
		return []TextEdit{insert(d.SpecPos, constPrefix)}

	default:
		return nil
	}
}

// constMethodEdits appends const to the parameter list of the definition and its declarations.
func constMethodEdits(def *cxx.Decl) []TextEdit {
	var edits []TextEdit

	for _, d := range redeclarations(def) {
		if d.ParamsEnd.IsValid() {
			edits = append(edits, insert(d.ParamsEnd, constSuffix))
		}
	}

	return edits
}

// staticMethodEdits prepends static to the declaration inside the class.
func staticMethodEdits(def *cxx.Decl) []TextEdit {
	canonical := def.Canonical()
	if !canonical.SpecPos.IsValid() {
		return nil
	}

	return []TextEdit{insert(canonical.SpecPos, staticPrefix)}
}

func redeclarations(def *cxx.Decl) []*cxx.Decl {
	canonical := def.Canonical()
	if canonical == def {
		return []*cxx.Decl{def}
	}

	return []*cxx.Decl{canonical, def}
}

func insert(pos token.Pos, text []byte) TextEdit {
	return TextEdit{Pos: pos, End: pos, NewText: text}
}
