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

package analyzer

import (
	"flag"

	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
// A nil flag set value defaults to the program's command line.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	if flags == nil {
		flags = flag.CommandLine
	}

	flags.TextVar(&r.Target, "target", r.Target, "produced results: pseudo-constness, function-declarations, "+
		"variable-declarations, variable-changes or variable-usages")

	flags.Var(NewCheckValue(&r.Checks, config.CheckVariables), "variables", "report local variables")
	flags.Var(NewCheckValue(&r.Checks, config.CheckParameters), "parameters", "report function parameters")
	flags.Var(NewCheckValue(&r.Checks, config.CheckMembers), "members", "report data members")
	flags.Var(NewCheckValue(&r.Checks, config.CheckConstMethods), "const-methods", "report member functions that could be const")
	flags.Var(NewCheckValue(&r.Checks, config.CheckStaticMethods), "static-methods", "report member functions that could be static")

	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeHeaders), "headers", "report declarations in included headers")
	flags.Var(NewBehaviorValue(&r.Behavior, config.SuggestFixes), "fixes", "suggest fixes")

	flags.Var((*stringsValue)(&r.IncludeDirs), "I", "add directory to the include search path (repeatable)")
	flags.IntVar(&r.Jobs, "jobs", r.Jobs, "number of translation units analyzed concurrently")
}
