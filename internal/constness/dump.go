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
	"context"
	"slices"

	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/usage"
)

// functionDeclarations lists every definition.
type functionDeclarations struct {
	env  Env
	defs []*cxx.Decl
}

func (v *functionDeclarations) Visit(_ context.Context, def *cxx.Decl) {
	v.defs = append(v.defs, def)
}

func (v *functionDeclarations) Report(sink report.Sink) {
	for _, def := range v.defs {
		if v.env.reportable(def) {
			sink.Report(report.DeclarationNote(def))
		}
	}
}

// variableDeclarations lists the variables and members in scope of every definition.
type variableDeclarations struct {
	env  Env
	vars []*cxx.Decl
}

func (v *variableDeclarations) Visit(_ context.Context, def *cxx.Decl) {
	v.add(v.env.Declarations.VariablesOf(def))

	if def.Kind == cxx.Method {
		v.add(v.env.Declarations.MembersOf(def.Canonical().Record))
	}
}

func (v *variableDeclarations) add(list []*cxx.Decl) {
	for _, d := range list {
		if !slices.Contains(v.vars, d) {
			v.vars = append(v.vars, d)
		}
	}
}

func (v *variableDeclarations) Report(sink report.Sink) {
	for _, d := range sortedByPos(slices.Clone(v.vars)) {
		if v.env.reportable(d) {
			sink.Report(report.DeclarationNote(d))
		}
	}
}

// variableUsages lists every mutation or every reference of variables.
type variableUsages struct {
	env     Env
	changes bool
	notes   []report.Diagnostic
}

func (v *variableUsages) Visit(ctx context.Context, def *cxx.Decl) {
	scope := usage.CollectFunction(ctx, def)

	uses, note := scope.Used(), report.UseNote
	if v.changes {
		uses, note = scope.Changed(), report.ChangeNote
	}

	for d, list := range uses.All() {
		if !d.IsVariable() || !v.env.reportable(d) {
			continue
		}

		for _, rec := range list {
			v.notes = append(v.notes, note(d, rec))
		}
	}
}

func (v *variableUsages) Report(sink report.Sink) {
	for _, n := range v.notes {
		sink.Report(n)
	}
}
