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

// Package frontend parses C++ translation units into the [cxx] model.
package frontend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

var (
	// ErrUnsupportedLanguage is returned for files that are not C++ sources.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrNoCGO is returned when the parser is unavailable because cgo is disabled.
	ErrNoCGO = errors.New("C++ parsing requires cgo (tree-sitter)")
)

var (
	sourceExtensions = []string{".cpp", ".cc", ".cxx", ".c++", ".cp"}
	headerExtensions = []string{".h", ".hh", ".hpp", ".hxx", ".h++", ".ipp", ".inl"}
)

// Options configure parsing.
type Options struct {
	// IncludeDirs are searched for included headers after the directory of the including file.
	IncludeDirs []string

	// ReadFile loads source files. Defaults to [os.ReadFile].
	ReadFile func(name string) ([]byte, error)
}

func (o Options) readFile(name string) ([]byte, error) {
	if o.ReadFile != nil {
		return o.ReadFile(name)
	}

	return os.ReadFile(name)
}

// CheckLanguage verifies that path names a C++ source or header.
func CheckLanguage(path string) error {
	if IsSource(path) || slices.Contains(headerExtensions, strings.ToLower(filepath.Ext(path))) {
		return nil
	}

	return fmt.Errorf("%s: %w", path, ErrUnsupportedLanguage)
}

// IsSource reports whether path names a C++ source file rather than a header.
func IsSource(path string) bool {
	ext := filepath.Ext(path)

	return ext == ".C" || slices.Contains(sourceExtensions, strings.ToLower(ext))
}
