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
	"cmp"
	"maps"
	"slices"

	"fillmore-labs.com/constguard/internal/cxx"
)

// State is the unit-wide verdict on variables.
//
// A declaration moves into Changed as soon as any scope mutates it and never
// leaves. It is a candidate while every scope seen so far left it unchanged.
type State struct {
	aliases    AliasResolver
	candidates map[*cxx.Decl]struct{}
	changed    map[*cxx.Decl]struct{}
}

// NewState creates an empty state resolving changes through aliases.
func NewState(aliases AliasResolver) *State {
	return &State{
		aliases:    aliases,
		candidates: make(map[*cxx.Decl]struct{}),
		changed:    make(map[*cxx.Decl]struct{}),
	}
}

// Eval folds the verdict of one scope on d into the state.
func (s *State) Eval(scope ScopeResult, d *cxx.Decl) {
	d = d.Canonical()

	if scope.WasChanged(d) {
		s.RegisterChange(d)
		return
	}

	if _, ok := s.changed[d]; ok {
		return
	}

	if d.Type.IsConstQualified() {
		return
	}

	s.candidates[d] = struct{}{}
}

// RegisterChange marks d and everything it may stand for as changed.
func (s *State) RegisterChange(d *cxx.Decl) {
	targets := []*cxx.Decl{d.Canonical()}
	if s.aliases != nil {
		targets = s.aliases.AliasTargets(d)
	}

	for _, t := range targets {
		t = t.Canonical()
		delete(s.candidates, t)
		s.changed[t] = struct{}{}
	}
}

// IsCandidate reports whether d is currently considered const-eligible.
func (s *State) IsCandidate(d *cxx.Decl) bool {
	_, ok := s.candidates[d.Canonical()]

	return ok
}

// IsChanged reports whether d was mutated in any scope.
func (s *State) IsChanged(d *cxx.Decl) bool {
	_, ok := s.changed[d.Canonical()]

	return ok
}

// Candidates returns the const-eligible declarations in source order.
func (s *State) Candidates() []*cxx.Decl {
	return sortedByPos(slices.Collect(maps.Keys(s.candidates)))
}

func sortedByPos(list []*cxx.Decl) []*cxx.Decl {
	slices.SortFunc(list, func(a, b *cxx.Decl) int {
		return cmp.Or(cmp.Compare(a.NamePos, b.NamePos), cmp.Compare(a.Pos(), b.Pos()), cmp.Compare(a.Name, b.Name))
	})

	return list
}
