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

// Package scope enumerates the declarations a function definition can observe
// and resolves what references are bound to.
package scope

import (
	"slices"

	"fillmore-labs.com/constguard/internal/cxx"
)

// Declarations enumerates declarations from the parsed model.
type Declarations struct{}

// VariablesOf returns the named parameters and local variables of fn, excluding the receiver.
func (Declarations) VariablesOf(fn *cxx.Decl) []*cxx.Decl {
	vars := make([]*cxx.Decl, 0, len(fn.Params)+len(fn.Locals))

	for _, p := range fn.Params {
		if p.Name == "" {
			continue
		}

		vars = appendUnique(vars, p.Canonical())
	}

	for _, l := range fn.Locals {
		vars = appendUnique(vars, l.Canonical())
	}

	return vars
}

// MembersOf returns the non-static data members of rec.
func (Declarations) MembersOf(rec *cxx.Record) []*cxx.Decl {
	if rec == nil {
		return nil
	}

	members := make([]*cxx.Decl, 0, len(rec.Fields))
	for _, f := range rec.Fields {
		if f.Is(cxx.FlagStatic) {
			continue
		}

		members = appendUnique(members, f.Canonical())
	}

	return members
}

// MethodsOf returns the member functions of rec.
func (Declarations) MethodsOf(rec *cxx.Record) []*cxx.Decl {
	if rec == nil {
		return nil
	}

	methods := make([]*cxx.Decl, 0, len(rec.Methods))
	for _, m := range rec.Methods {
		methods = appendUnique(methods, m.Canonical())
	}

	return methods
}

func appendUnique(list []*cxx.Decl, d *cxx.Decl) []*cxx.Decl {
	if slices.Contains(list, d) {
		return list
	}

	return append(list, d)
}
