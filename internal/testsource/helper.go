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

// Package testsource provides utilities for parsing C++ source code in tests.
//
// It is designed to simplify testing of the constguard analysis by handling the
// boilerplate of parsing translation units and locating the functions under test.
package testsource

import (
	"context"
	"errors"
	"go/token"
	"io/fs"
	"path/filepath"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/frontend"
)

const filename = "test.cpp"

// Parse parses a C++ source fragment as the main file of a translation unit.
// The test is skipped when the parser is not available in this build.
func Parse(tb testing.TB, src string) *cxx.Unit {
	tb.Helper()

	return parse(tb, filename, []byte(src), nil)
}

// ParseArchive parses a txtar archive. The first file is the main file,
// the remaining files can be included from it.
func ParseArchive(tb testing.TB, archive string) *cxx.Unit {
	tb.Helper()

	ar := txtar.Parse([]byte(archive))
	if len(ar.Files) == 0 {
		tb.Fatal("Empty archive")
	}

	files := make(map[string][]byte, len(ar.Files))
	for _, f := range ar.Files {
		files[filepath.Clean(f.Name)] = f.Data
	}

	main := ar.Files[0]

	return parse(tb, filepath.Clean(main.Name), main.Data, files)
}

func parse(tb testing.TB, path string, src []byte, files map[string][]byte) *cxx.Unit {
	tb.Helper()

	opts := frontend.Options{
		ReadFile: func(name string) ([]byte, error) {
			if data, ok := files[filepath.Clean(name)]; ok {
				return data, nil
			}

			return nil, fs.ErrNotExist
		},
	}

	unit, err := frontend.Parse(context.Background(), token.NewFileSet(), path, src, opts)
	if errors.Is(err, frontend.ErrNoCGO) {
		tb.Skip("C++ parser not available:", err)
	}

	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return unit
}

// Function returns the definition of the function with the given qualified name.
func Function(tb testing.TB, unit *cxx.Unit, name string) *cxx.Decl {
	tb.Helper()

	for d := range unit.Definitions() {
		if d.QualifiedName() == name {
			return d
		}
	}

	tb.Fatalf("Can't find function %q", name)

	return nil
}

// Record returns the class with the given name.
func Record(tb testing.TB, unit *cxx.Unit, name string) *cxx.Record {
	tb.Helper()

	for _, r := range unit.Records {
		if r.Name == name {
			return r
		}
	}

	tb.Fatalf("Can't find class %q", name)

	return nil
}
