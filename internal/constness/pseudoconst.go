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

	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/usage"
)

// pseudoConstness finds variables, members and methods that could be const or static.
type pseudoConstness struct {
	env     Env
	state   *State
	methods Methods
}

func (v *pseudoConstness) Visit(ctx context.Context, def *cxx.Decl) {
	scope := usage.CollectFunction(ctx, def)

	for _, d := range v.env.Declarations.VariablesOf(def) {
		v.state.Eval(scope, d)
	}

	if def.Kind != cxx.Method {
		return
	}

	rec := def.Canonical().Record
	members := v.env.Declarations.MembersOf(rec)

	for _, d := range v.membersAndAliases(members) {
		v.state.Eval(scope, d)
	}

	v.methods.Classify(scope, def, members, v.env.Declarations.MethodsOf(rec))
}

// membersAndAliases extends members with the declarations reference members are bound to.
func (v *pseudoConstness) membersAndAliases(members []*cxx.Decl) []*cxx.Decl {
	if v.env.Aliases == nil {
		return members
	}

	all := slices.Clone(members)
	for _, m := range members {
		for _, t := range v.env.Aliases.AliasTargets(m) {
			if !slices.Contains(all, t) {
				all = append(all, t)
			}
		}
	}

	return all
}

func (v *pseudoConstness) Report(sink report.Sink) {
	checks := v.env.Checks

	for _, d := range v.state.Candidates() {
		if !checks.Enabled(checkFor(d)) || !v.env.reportable(d) {
			continue
		}

		sink.Report(report.ConstVariableWarning(d, v.env.Fixes))
	}

	if checks.Enabled(config.CheckConstMethods) {
		for _, def := range v.methods.ConstCandidates() {
			if v.env.reportable(def) {
				sink.Report(report.ConstMethodWarning(def, v.env.Fixes))
			}
		}
	}

	if checks.Enabled(config.CheckStaticMethods) {
		for _, def := range v.methods.StaticCandidates() {
			if v.env.reportable(def) {
				sink.Report(report.StaticMethodWarning(def, v.env.Fixes))
			}
		}
	}
}

func checkFor(d *cxx.Decl) config.Check {
	switch d.Kind {
	case cxx.Param:
		return config.CheckParameters

	case cxx.Field:
		return config.CheckMembers

	default:
		return config.CheckVariables
	}
}
