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
	"fmt"
	"runtime/trace"

	"fillmore-labs.com/constguard/analyzer/mode"
	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/report"
)

// Visitor consumes the function definitions of a unit and reports at the end.
type Visitor interface {
	// Visit processes one function or member function definition.
	Visit(ctx context.Context, def *cxx.Decl)

	// Report emits the accumulated findings.
	Report(sink report.Sink)
}

// Env carries the collaborators and settings shared by all visitors.
type Env struct {
	Declarations Enumerator
	Aliases      AliasResolver
	Checks       config.BitMask[config.Check]
	Fixes        bool

	// Reportable filters the declarations findings may be attached to.
	// A nil filter accepts everything.
	Reportable func(d *cxx.Decl) bool
}

func (e Env) reportable(d *cxx.Decl) bool {
	return e.Reportable == nil || e.Reportable(d)
}

// New returns the visitor producing target.
func New(target mode.Target, env Env) (Visitor, error) {
	switch target {
	case mode.PseudoConstness:
		return &pseudoConstness{env: env, state: NewState(env.Aliases)}, nil

	case mode.FunctionDeclarations:
		return &functionDeclarations{env: env}, nil

	case mode.VariableDeclarations:
		return &variableDeclarations{env: env}, nil

	case mode.VariableChanges:
		return &variableUsages{env: env, changes: true}, nil

	case mode.VariableUsages:
		return &variableUsages{env: env}, nil

	default:
		return nil, fmt.Errorf("unknown target %d", target)
	}
}

// Analyze feeds all definitions of unit to v in source order.
func Analyze(ctx context.Context, unit *cxx.Unit, v Visitor) {
	defer trace.StartRegion(ctx, "Constness").End()

	for def := range unit.Definitions() {
		if err := ctx.Err(); err != nil {
			return
		}

		v.Visit(ctx, def)
	}
}
