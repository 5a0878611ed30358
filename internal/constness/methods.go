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

package constness

import (
	"slices"

	"fillmore-labs.com/constguard/internal/cxx"
)

// Methods holds the member functions that could be const or static.
// A definition is in at most one of the two sets.
type Methods struct {
	constCandidates  []*cxx.Decl
	staticCandidates []*cxx.Decl
}

// Classify derives the verdict on the method definition def from its scope.
// members and methods are the data members and member functions of its class.
func (m *Methods) Classify(scope ScopeResult, def *cxx.Decl, members, methods []*cxx.Decl) {
	if !IsOrdinaryMethod(def) || def.Is(cxx.FlagConst) {
		return
	}

	if slices.Contains(m.constCandidates, def) || slices.Contains(m.staticCandidates, def) {
		return
	}

	memberChanges := count(members, scope.WasChanged)
	functionChanges := count(methods, func(f *cxx.Decl) bool {
		return !f.Is(cxx.FlagConst) && !f.Is(cxx.FlagStatic) && scope.WasReferenced(f)
	})

	if memberChanges > 0 || functionChanges > 0 {
		return
	}

	memberAccess := count(members, scope.WasReferenced)
	functionAccess := count(methods, func(f *cxx.Decl) bool {
		return !f.Is(cxx.FlagStatic) && scope.WasReferenced(f)
	})

	if memberAccess == 0 && functionAccess == 0 && !scope.ReferencesReceiver() {
		m.staticCandidates = append(m.staticCandidates, def)
	} else {
		m.constCandidates = append(m.constCandidates, def)
	}
}

// ConstCandidates returns the definitions that could be const, in source order.
func (m *Methods) ConstCandidates() []*cxx.Decl {
	return sortedByPos(slices.Clone(m.constCandidates))
}

// StaticCandidates returns the definitions that could be static, in source order.
func (m *Methods) StaticCandidates() []*cxx.Decl {
	return sortedByPos(slices.Clone(m.staticCandidates))
}

// IsOrdinaryMethod reports whether def is a user-provided, non-static, non-virtual
// member function that is not a constructor, destructor, conversion or copy assignment.
func IsOrdinaryMethod(def *cxx.Decl) bool {
	if def.Kind != cxx.Method || !def.Is(cxx.FlagUserProvided) {
		return false
	}

	const special = cxx.FlagStatic | cxx.FlagVirtual | cxx.FlagCopyAssign |
		cxx.FlagConstructor | cxx.FlagDestructor | cxx.FlagConversion

	return def.Flags&special == 0 && def.Canonical().Flags&special == 0
}

func count(list []*cxx.Decl, pred func(*cxx.Decl) bool) int {
	n := 0
	for _, d := range list {
		if pred(d) {
			n++
		}
	}

	return n
}
