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
	"fmt"
	"go/token"

	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/usage"
)

// ConstVariableWarning reports a variable or data member that is never modified.
func ConstVariableWarning(d *cxx.Decl, withFix bool) Diagnostic {
	diagnostic := warning(d, ConstVariable, "variable '%s' could be declared as const")
	if withFix {
		diagnostic.SuggestedFixes = fixes(diagnostic.Message, constVariableEdits(d))
	}

	return diagnostic
}

// ConstMethodWarning reports a member function that does not modify its object.
func ConstMethodWarning(def *cxx.Decl, withFix bool) Diagnostic {
	diagnostic := warning(def, ConstMethod, "function '%s' could be declared as const")
	if withFix {
		diagnostic.SuggestedFixes = fixes(diagnostic.Message, constMethodEdits(def))
	}

	return diagnostic
}

// StaticMethodWarning reports a member function that does not use its object.
func StaticMethodWarning(def *cxx.Decl, withFix bool) Diagnostic {
	diagnostic := warning(def, StaticMethod, "function '%s' could be declared as static")
	if withFix {
		diagnostic.SuggestedFixes = fixes(diagnostic.Message, staticMethodEdits(def))
	}

	return diagnostic
}

// DeclarationNote lists a declaration.
func DeclarationNote(d *cxx.Decl) Diagnostic {
	format := "variable '%s' declared here"
	if d.IsFunction() {
		format = "function '%s' declared here"
	}

	diagnostic := warning(d, Declaration, format)
	diagnostic.Severity = Note

	return diagnostic
}

// ChangeNote lists a mutation of d.
func ChangeNote(d *cxx.Decl, rec usage.Record) Diagnostic {
	return Diagnostic{
		Pos:      rec.Pos(),
		End:      rec.End(),
		Severity: Note,
		Category: Change,
		Name:     d.Name,
		Message:  fmt.Sprintf("variable '%s' with type '%s' was changed", d.Name, rec.Type),
	}
}

// UseNote lists a reference to d.
func UseNote(d *cxx.Decl, rec usage.Record) Diagnostic {
	return Diagnostic{
		Pos:      rec.Pos(),
		End:      rec.End(),
		Severity: Note,
		Category: Use,
		Name:     d.Name,
		Message:  fmt.Sprintf("variable '%s' was used", d.Name),
	}
}

func warning(d *cxx.Decl, category Category, format string) Diagnostic {
	pos := d.NamePos
	if !pos.IsValid() {
		pos = d.Pos()
	}

	return Diagnostic{
		Pos:      pos,
		End:      pos + token.Pos(len(d.Name)),
		Severity: Warning,
		Category: category,
		Name:     d.Name,
		Message:  fmt.Sprintf(format, d.Name),
	}
}

func fixes(message string, edits []TextEdit) []SuggestedFix {
	if len(edits) == 0 {
		return nil
	}

	return []SuggestedFix{{Message: message, TextEdits: edits}}
}
