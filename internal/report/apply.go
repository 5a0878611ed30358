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

package report

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"go/token"
	"os"
	"slices"
)

// ErrConflictingEdits is returned when suggested fixes overlap.
var ErrConflictingEdits = errors.New("conflicting edits")

// Edit replaces the byte range [Start, End) of a file with Text.
type Edit struct {
	Start, End int
	Text       []byte
}

// ApplyFixes writes the first suggested fix of every diagnostic back to the source files.
// Identical edits are applied once; overlapping edits in a file leave that file untouched.
func ApplyFixes(fset *token.FileSet, diagnostics []Diagnostic) error {
	byFile := make(map[string][]Edit)

	var files []string

	for _, d := range diagnostics {
		if len(d.SuggestedFixes) == 0 {
			continue
		}

		for _, e := range d.SuggestedFixes[0].TextEdits {
			start, end := fset.Position(e.Pos), fset.Position(e.End)
			if start.Filename == "" {
				continue
			}

			if _, ok := byFile[start.Filename]; !ok {
				files = append(files, start.Filename)
			}

			byFile[start.Filename] = append(byFile[start.Filename], Edit{start.Offset, end.Offset, e.NewText})
		}
	}

	var errs []error

	for _, name := range files {
		if err := applyFile(name, byFile[name]); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func applyFile(name string, edits []Edit) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	out, err := ApplyEdits(src, edits)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return os.WriteFile(name, out, info.Mode().Perm())
}

// ApplyEdits returns src with the edits applied.
func ApplyEdits(src []byte, edits []Edit) ([]byte, error) {
	edits = slices.Clone(edits)
	slices.SortStableFunc(edits, func(a, b Edit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	edits = slices.CompactFunc(edits, func(a, b Edit) bool {
		return a.Start == b.Start && a.End == b.End && bytes.Equal(a.Text, b.Text)
	})

	var out bytes.Buffer

	last := 0
	for _, e := range edits {
		if e.Start < last || e.End > len(src) || e.Start > e.End {
			return nil, ErrConflictingEdits
		}

		out.Write(src[last:e.Start]) // ignore error
		out.Write(e.Text)            // ignore error
		last = e.End
	}

	out.Write(src[last:]) // ignore error

	return out.Bytes(), nil
}
