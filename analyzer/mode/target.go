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

package mode

import (
	"fmt"
	"strings"
)

// Target selects what an analysis run produces.
type Target uint8

const (
	// PseudoConstness reports declarations that could be const or static.
	PseudoConstness Target = iota

	// FunctionDeclarations lists the function definitions seen.
	FunctionDeclarations

	// VariableDeclarations lists the variables and members in scope of each function.
	VariableDeclarations

	// VariableChanges lists every mutation of a variable.
	VariableChanges

	// VariableUsages lists every reference to a variable.
	VariableUsages
)

// Targets lists all targets in declaration order.
func Targets() []Target {
	return []Target{PseudoConstness, FunctionDeclarations, VariableDeclarations, VariableChanges, VariableUsages}
}

// String returns the textual form of the target.
func (o Target) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Target(%d)", o)
	}

	return string(text)
}

// MarshalText implements [encoding.TextMarshaler].
func (o Target) MarshalText() ([]byte, error) {
	switch o {
	case PseudoConstness:
		return []byte("pseudo-constness"), nil

	case FunctionDeclarations:
		return []byte("function-declarations"), nil

	case VariableDeclarations:
		return []byte("variable-declarations"), nil

	case VariableChanges:
		return []byte("variable-changes"), nil

	case VariableUsages:
		return []byte("variable-usages"), nil

	default:
		return nil, fmt.Errorf("unknown target %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Target) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "pseudo-constness", "constness":
		*o = PseudoConstness

	case "function-declarations", "functions":
		*o = FunctionDeclarations

	case "variable-declarations", "variables":
		*o = VariableDeclarations

	case "variable-changes", "changes":
		*o = VariableChanges

	case "variable-usages", "usages":
		*o = VariableUsages

	default:
		return fmt.Errorf("unknown target %q", string(text))
	}

	return nil
}
