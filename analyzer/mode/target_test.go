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

package mode_test

import (
	"testing"

	. "fillmore-labs.com/constguard/analyzer/mode"
)

func TestTargetRoundTrip(t *testing.T) {
	t.Parallel()

	for _, target := range Targets() {
		text, err := target.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", target, err)
		}

		var got Target
		if err := got.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}

		if got != target {
			t.Errorf("UnmarshalText(%q) = %v, want %v", text, got, target)
		}
	}
}

func TestTargetAliases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		text string
		want Target
	}{
		{"", PseudoConstness},
		{"Constness", PseudoConstness},
		{"functions", FunctionDeclarations},
		{"variables", VariableDeclarations},
		{"changes", VariableChanges},
		{"USAGES", VariableUsages},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			t.Parallel()

			var got Target
			if err := got.UnmarshalText([]byte(tt.text)); err != nil {
				t.Fatalf("UnmarshalText(%q) error = %v", tt.text, err)
			}

			if got != tt.want {
				t.Errorf("UnmarshalText(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTargetInvalid(t *testing.T) {
	t.Parallel()

	var target Target
	if err := target.UnmarshalText([]byte("everything")); err == nil {
		t.Error("UnmarshalText(\"everything\") expected error")
	}

	if _, err := Target(42).MarshalText(); err == nil {
		t.Error("MarshalText(42) expected error")
	}
}
