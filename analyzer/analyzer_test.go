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
	"errors"
	"io"
	"path/filepath"
	"testing"

	. "fillmore-labs.com/constguard/analyzer"
	"fillmore-labs.com/constguard/analyzer/mode"
	"fillmore-labs.com/constguard/internal/checktest"
	"fillmore-labs.com/constguard/internal/frontend"
)

func TestAnalyzer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		options Option
	}{
		{
			name: "Default",
			dir:  "default",
		},
		{
			name:    "Headers",
			dir:     "headers",
			options: WithHeaders(true),
		},
		{
			name:    "NoFix",
			dir:     "nofix",
			options: Options{WithFixes(false), WithJobs(1)},
		},
		{
			name:    "FunctionDeclarations",
			dir:     "functions",
			options: WithTarget(mode.FunctionDeclarations),
		},
		{
			name:    "VariableDeclarations",
			dir:     "declarations",
			options: WithTarget(mode.VariableDeclarations),
		},
		{
			name:    "VariableChanges",
			dir:     "changes",
			options: WithTarget(mode.VariableChanges),
		},
		{
			name:    "VariableUsages",
			dir:     "usages",
			options: WithTarget(mode.VariableUsages),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			a := New(tt.options)
			checktest.Run(t, filepath.Join("testdata", tt.dir), a, "*.txtar")
		})
	}
}

func TestAnalyzer_Checks(t *testing.T) {
	t.Parallel()

	a := New(
		WithParameters(false),
		WithMembers(false),
		WithConstMethods(false),
		WithStaticMethods(false),
	)

	result, err := a.RunSource(t.Context(), "checks.cpp", []byte(`
int f(int a) {
    int b = a;
    return b;
}
`))
	if errors.Is(err, frontend.ErrNoCGO) {
		t.Skip("C++ parser not available")
	}

	if err != nil {
		t.Fatalf("RunSource failed: %v", err)
	}

	if got := len(result.Diagnostics); got != 1 {
		t.Fatalf("got %d diagnostics, want 1", got)
	}

	if got, want := result.Diagnostics[0].Message, "variable 'b' could be declared as const"; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestAnalyzer_Flags(t *testing.T) {
	t.Parallel()

	a := New()
	a.Flags.SetOutput(io.Discard)

	if err := a.Flags.Parse([]string{"-target=variable-usages", "-members=false", "-I", "include,vendor", "-I=third_party", "-jobs=2"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	for name, want := range map[string]string{
		"target":  "variable-usages",
		"members": "false",
		"I":       "include,vendor,third_party",
		"jobs":    "2",
		"headers": "false",
		"fixes":   "true",
	} {
		f := a.Flags.Lookup(name)
		if f == nil {
			t.Errorf("Flag %q not registered", name)
			continue
		}

		if got := f.Value.String(); got != want {
			t.Errorf("Flag %q = %q, want %q", name, got, want)
		}
	}

	if err := a.Flags.Parse([]string{"-target=unknown"}); err == nil {
		t.Error("Parse expected error for unknown target")
	}
}

func TestAnalyzer_Metadata(t *testing.T) {
	t.Parallel()

	a := New()

	if a.Name() != "constguard" {
		t.Errorf("Name() = %q, want %q", a.Name(), "constguard")
	}

	if a.Doc() == "" || a.URL() == "" {
		t.Error("Doc() and URL() must not be empty")
	}
}

func TestOptions_LogValue(t *testing.T) {
	t.Parallel()

	opts := Options{WithHeaders(true), nil, Options{WithJobs(3), WithTarget(mode.VariableChanges)}}

	attrs := opts.LogValue().Group()
	if got, want := len(attrs), 4; got != want {
		t.Fatalf("got %d attributes, want %d", got, want)
	}

	for i, key := range []string{"headers", "nil", "jobs", "target"} {
		if attrs[i].Key != key {
			t.Errorf("attribute %d = %q, want %q", i, attrs[i].Key, key)
		}
	}

	if got, want := attrs[3].Value.String(), "variable-changes"; got != want {
		t.Errorf("target = %q, want %q", got, want)
	}
}
