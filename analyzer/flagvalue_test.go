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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/constguard/analyzer"
	"fillmore-labs.com/constguard/internal/config"
)

func TestCheckValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.Check
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.CheckVariables,
			args:    []string{"-members"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.CheckMembers,
			args:    []string{"-members=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.AllChecks,
			args:    []string{"-members=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			checks := config.NewBitMask(tt.initial)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.CheckMembers
			fv := NewCheckValue(&checks, value)
			fs.Var(fv, "members", "report data members")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if checks.Enabled(value) != tt.want {
				t.Errorf("CheckMembers enabled = %v, want %v", checks.Enabled(value), tt.want)
			}
		})
	}
}

func TestBehaviorValue_Invalid(t *testing.T) {
	t.Parallel()

	var behavior config.BitMask[config.Behavior]

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewBehaviorValue(&behavior, config.IncludeHeaders), "headers", "report headers")

	if err := fs.Parse([]string{"-headers=maybe"}); err == nil {
		t.Error("Parse expected error for invalid boolean")
	}

	if behavior.Enabled(config.IncludeHeaders) {
		t.Error("IncludeHeaders enabled after invalid value")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	checks := config.NewBitMask(config.CheckMembers)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCheckValue(&checks, config.CheckMembers)
	fs.Var(fv, "members", "report data members")

	const expectedUsage = `
  -members
    	report data members (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}
