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

package run_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"fillmore-labs.com/constguard/analyzer/mode"
	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/frontend"
	"fillmore-labs.com/constguard/internal/report"
	. "fillmore-labs.com/constguard/internal/run"
)

const header = `#pragma once
struct Counter {
  int value() { return m_count; }
  int m_count = 0;
};
`

const source = `#include "counter.h"

int twice(int x) {
  int y = x * 2;
  int z = 0; // NOLINT(constguard)
  return y + z;
}
`

func skipWithoutParser(tb testing.TB) {
	tb.Helper()

	if !frontend.IsAvailable() {
		tb.Skip("C++ parser not available")
	}
}

func writeFiles(tb testing.TB, files map[string]string) string {
	tb.Helper()

	dir := tb.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			tb.Fatal(err)
		}
	}

	return dir
}

func messages(diagnostics []report.Diagnostic) []string {
	msgs := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		msgs = append(msgs, d.Message)
	}

	return msgs
}

func TestRun(t *testing.T) {
	t.Parallel()
	skipWithoutParser(t)

	dir := writeFiles(t, map[string]string{"counter.h": header, "main.cpp": source})

	tests := []struct {
		name    string
		headers bool
		want    []string
	}{
		{
			name: "MainOnly",
			want: []string{
				"variable 'x' could be declared as const",
				"variable 'y' could be declared as const",
			},
		},
		{
			name:    "Headers",
			headers: true,
			want: []string{
				"variable 'x' could be declared as const",
				"variable 'y' could be declared as const",
				"variable 'm_count' could be declared as const",
				"function 'value' could be declared as const",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			o := DefaultOptions()
			o.Behavior.Set(config.IncludeHeaders, tt.headers)

			results, err := o.Run(context.Background(), []string{filepath.Join(dir, "main.cpp")})
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}

			if len(results) != 1 {
				t.Fatalf("Got %d results, expected 1", len(results))
			}

			got := messages(results[0].Diagnostics)
			slices.Sort(got)

			want := slices.Clone(tt.want)
			slices.Sort(want)

			if !slices.Equal(got, want) {
				t.Errorf("Got %q, expected %q", got, want)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Parallel()

	o := DefaultOptions()

	if _, err := o.Run(context.Background(), nil); !errors.Is(err, ErrNoInput) {
		t.Errorf("Got error %v, expected %v", err, ErrNoInput)
	}

	if _, err := o.RunFile(context.Background(), "main.go"); !errors.Is(err, frontend.ErrUnsupportedLanguage) {
		t.Errorf("Got error %v, expected %v", err, frontend.ErrUnsupportedLanguage)
	}

	if _, err := o.RunFile(context.Background(), filepath.Join(t.TempDir(), "missing.cpp")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Got error %v, expected %v", err, os.ErrNotExist)
	}
}

func TestRunTarget(t *testing.T) {
	t.Parallel()
	skipWithoutParser(t)

	const src = `void f(int a) { int b = a; b = 2; }`

	o := DefaultOptions()
	o.Target = mode.VariableChanges

	result, err := o.RunSource(context.Background(), "target.cpp", []byte(src))
	if err != nil {
		t.Fatalf("RunSource failed: %v", err)
	}

	want := []string{"variable 'b' with type 'int' was changed"}
	if got := messages(result.Diagnostics); !slices.Equal(got, want) {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestGeneratedWithoutFixes(t *testing.T) {
	t.Parallel()
	skipWithoutParser(t)

	const src = "// Code generated by test. DO NOT EDIT.\n\nint f(int a) { return a; }\n"

	result, err := DefaultOptions().RunSource(context.Background(), "gen.cpp", []byte(src))
	if err != nil {
		t.Fatalf("RunSource failed: %v", err)
	}

	if len(result.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, expected 1", len(result.Diagnostics))
	}

	if fixes := result.Diagnostics[0].SuggestedFixes; len(fixes) != 0 {
		t.Errorf("Got %d fixes in generated file, expected none", len(fixes))
	}
}

func TestCanceled(t *testing.T) {
	t.Parallel()
	skipWithoutParser(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := writeFiles(t, map[string]string{"main.cpp": source})

	if _, err := DefaultOptions().Run(ctx, []string{filepath.Join(dir, "main.cpp")}); !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, expected %v", err, context.Canceled)
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()
	skipWithoutParser(t)

	dir := writeFiles(t, map[string]string{
		"counter.h": header,
		"a.cpp":     "#include \"counter.h\"\n",
		"b.cpp":     "#include \"counter.h\"\n",
	})

	o := DefaultOptions()
	o.Behavior.Set(config.IncludeHeaders, true)

	results, err := o.Run(context.Background(), []string{filepath.Join(dir, "a.cpp"), filepath.Join(dir, "b.cpp")})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if results[0].Fset != results[1].Fset {
		t.Error("Expected results to share one file set")
	}

	if got := len(results[0].Diagnostics) + len(results[1].Diagnostics); got != 4 {
		t.Errorf("Got %d diagnostics before merging, expected 4", got)
	}

	_, merged := Merge(results)

	got := messages(merged)
	slices.Sort(got)

	want := []string{
		"function 'value' could be declared as const",
		"variable 'm_count' could be declared as const",
	}

	if !slices.Equal(got, want) {
		t.Errorf("Got %q, expected %q", got, want)
	}
}

func TestMergeEmpty(t *testing.T) {
	t.Parallel()

	fset, diagnostics := Merge(nil)
	if fset == nil || diagnostics != nil {
		t.Errorf("Merge(nil) = %v, %v, expected empty file set and no diagnostics", fset, diagnostics)
	}
}
