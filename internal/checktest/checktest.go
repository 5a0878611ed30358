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

// Package checktest runs the constguard analysis on txtar fixtures and checks
// the diagnostics against expectations embedded in the sources.
//
// Each archive holds a translation unit: the first file is the main file, the
// others can be included from it. A comment of the form
//
//	// want "regexp" "regexp"
//
// expects one diagnostic per pattern on its line. A file named "<name>.golden"
// holds the expected content of <name> after applying all suggested fixes.
package checktest

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"golang.org/x/tools/txtar"

	"fillmore-labs.com/constguard/internal/frontend"
	"fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/run"
)

const goldenSuffix = ".golden"

// Analyzer runs the analysis on a translation unit.
type Analyzer interface {
	RunFile(ctx context.Context, path string) (run.Result, error)
}

// expectation is a pattern from a want comment.
type expectation struct {
	file    string
	line    int
	re      *regexp.Regexp
	matched bool
}

// Run analyzes every archive matching pattern in dir with a.
func Run(t *testing.T, dir string, a Analyzer, pattern string) {
	t.Helper()

	if !frontend.IsAvailable() {
		t.Skip("C++ parser not available")
	}

	archives, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		t.Fatalf("Invalid pattern %q: %v", pattern, err)
	}

	if len(archives) == 0 {
		t.Fatalf("No archives matching %q in %s", pattern, dir)
	}

	for _, path := range archives {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ar, err := txtar.ParseFile(path)
			if err != nil {
				t.Fatalf("Can't read archive: %v", err)
			}

			RunArchive(t, ar, a)
		})
	}
}

// RunArchive analyzes a single archive.
func RunArchive(t *testing.T, ar *txtar.Archive, a Analyzer) {
	t.Helper()

	if len(ar.Files) == 0 {
		t.Fatal("Empty archive")
	}

	dir := t.TempDir()
	golden := make(map[string][]byte)

	var expectations []*expectation

	for _, f := range ar.Files {
		if name, ok := strings.CutSuffix(f.Name, goldenSuffix); ok {
			golden[name] = f.Data
			continue
		}

		path := filepath.Join(dir, f.Name)
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			t.Fatal(err)
		}

		if err := os.WriteFile(path, f.Data, 0o600); err != nil {
			t.Fatal(err)
		}

		expectations = append(expectations, parseExpectations(t, f.Name, f.Data)...)
	}

	result, err := a.RunFile(context.Background(), filepath.Join(dir, ar.Files[0].Name))
	if err != nil {
		t.Fatalf("Analysis failed: %v", err)
	}

	checkDiagnostics(t, dir, result, expectations)

	if len(golden) == 0 {
		return
	}

	if err := report.ApplyFixes(result.Fset, result.Diagnostics); err != nil {
		t.Fatalf("Can't apply fixes: %v", err)
	}

	for name, want := range golden {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("Can't read fixed file: %v", err)
		}

		if !bytes.Equal(got, want) {
			diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
				A:        difflib.SplitLines(string(want)),
				B:        difflib.SplitLines(string(got)),
				FromFile: name + goldenSuffix,
				ToFile:   name,
				Context:  3,
			})
			t.Errorf("Suggested fixes for %s differ from golden file:\n%s", name, diff)
		}
	}
}

func checkDiagnostics(t *testing.T, dir string, result run.Result, expectations []*expectation) {
	t.Helper()

	for _, d := range result.Diagnostics {
		pos := result.Fset.Position(d.Pos)

		name, err := filepath.Rel(dir, pos.Filename)
		if err != nil {
			name = pos.Filename
		}

		name = filepath.ToSlash(name)

		if !match(expectations, name, pos.Line, d.Message) {
			t.Errorf("%s:%d:%d: unexpected diagnostic: %s", name, pos.Line, pos.Column, d.Message)
		}
	}

	for _, e := range expectations {
		if !e.matched {
			t.Errorf("%s:%d: no diagnostic was reported matching %q", e.file, e.line, e.re)
		}
	}
}

func match(expectations []*expectation, file string, line int, message string) bool {
	for _, e := range expectations {
		if e.matched || e.file != file || e.line != line || !e.re.MatchString(message) {
			continue
		}

		e.matched = true

		return true
	}

	return false
}

// wantPattern matches the want comment of a line.
var wantPattern = regexp.MustCompile(`//\s*want\s+(.*)$`)

// parseExpectations collects the want comments of a file.
func parseExpectations(t *testing.T, file string, data []byte) []*expectation {
	t.Helper()

	var expectations []*expectation

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for line := 1; scanner.Scan(); line++ {
		m := wantPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		for _, quoted := range splitQuoted(t, file, line, m[1]) {
			re, err := regexp.Compile(quoted)
			if err != nil {
				t.Fatalf("%s:%d: invalid pattern %q: %v", file, line, quoted, err)
			}

			expectations = append(expectations, &expectation{file: file, line: line, re: re})
		}
	}

	return expectations
}

// splitQuoted splits a list of Go string literals.
func splitQuoted(t *testing.T, file string, line int, s string) []string {
	t.Helper()

	var list []string

	for s = strings.TrimSpace(s); s != ""; s = strings.TrimSpace(s) {
		prefix, err := strconv.QuotedPrefix(s)
		if err != nil {
			t.Fatalf("%s:%d: malformed want comment %q: %v", file, line, s, err)
		}

		unquoted, err := strconv.Unquote(prefix)
		if err != nil {
			t.Fatalf("%s:%d: malformed want comment %q: %v", file, line, prefix, err)
		}

		list = append(list, unquoted)
		s = s[len(prefix):]
	}

	return list
}
