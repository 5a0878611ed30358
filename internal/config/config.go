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

package config

// Check selects which kinds of declarations are examined.
type Check uint8

const (
	// CheckVariables enables reporting of local variables.
	CheckVariables Check = 1 << iota

	// CheckParameters enables reporting of function parameters.
	CheckParameters

	// CheckMembers enables reporting of data members.
	CheckMembers

	// CheckConstMethods enables reporting of methods that could be const.
	CheckConstMethods

	// CheckStaticMethods enables reporting of methods that could be static.
	CheckStaticMethods

	// AllChecks enables every check.
	AllChecks = CheckVariables | CheckParameters | CheckMembers | CheckConstMethods | CheckStaticMethods
)

// Behavior holds switches that change how results are produced.
type Behavior uint8

const (
	// IncludeHeaders reports declarations that live in included files.
	IncludeHeaders Behavior = 1 << iota

	// SuggestFixes attaches source edits to warnings.
	SuggestFixes
)
