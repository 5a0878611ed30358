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

package run

import (
	"go/token"

	"fillmore-labs.com/constguard/internal/report"
)

type diagnosticKey struct {
	pos      token.Position
	category report.Category
	message  string
}

// Merge combines the diagnostics of results sharing one file set.
//
// A header included by several translation units is analyzed once per unit,
// so findings at the same source position are kept only once.
func Merge(results []Result) (*token.FileSet, []report.Diagnostic) {
	if len(results) == 0 {
		return token.NewFileSet(), nil
	}

	fset := results[0].Fset

	var (
		seen        = make(map[diagnosticKey]struct{})
		diagnostics []report.Diagnostic
	)

	for _, r := range results {
		for _, d := range r.Diagnostics {
			key := diagnosticKey{pos: r.Fset.Position(d.Pos), category: d.Category, message: d.Message}
			if _, ok := seen[key]; ok {
				continue
			}

			seen[key] = struct{}{}
			diagnostics = append(diagnostics, d)
		}
	}

	return fset, diagnostics
}
