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

// Package constness accumulates per-function usage into unit-wide verdicts on
// which declarations could be declared const or static.
package constness

import "fillmore-labs.com/constguard/internal/cxx"

// ScopeResult is the usage summary of one function body.
type ScopeResult interface {
	WasChanged(d *cxx.Decl) bool
	WasReferenced(d *cxx.Decl) bool
	ReferencesReceiver() bool
}

// Enumerator lists the declarations related to a function or class.
type Enumerator interface {
	VariablesOf(fn *cxx.Decl) []*cxx.Decl
	MembersOf(rec *cxx.Record) []*cxx.Decl
	MethodsOf(rec *cxx.Record) []*cxx.Decl
}

// AliasResolver lists the declarations a declaration may stand for, including itself.
type AliasResolver interface {
	AliasTargets(d *cxx.Decl) []*cxx.Decl
}
