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
	"go/token"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// Totals counts the warnings of one file.
type Totals struct {
	File          string
	Variables     int
	ConstMethods  int
	StaticMethods int
	Notes         int
}

// Tally counts diagnostics per file, in order of first appearance.
func Tally(fset *token.FileSet, diagnostics []Diagnostic) []Totals {
	var totals []Totals

	index := make(map[string]int)

	for _, d := range diagnostics {
		name := fset.Position(d.Pos).Filename

		i, ok := index[name]
		if !ok {
			i = len(totals)
			index[name] = i
			totals = append(totals, Totals{File: name})
		}

		t := &totals[i]

		switch {
		case d.Severity == Note:
			t.Notes++

		case d.Category == ConstVariable:
			t.Variables++

		case d.Category == ConstMethod:
			t.ConstMethods++

		case d.Category == StaticMethod:
			t.StaticMethods++
		}
	}

	return totals
}

// WriteSummary renders totals as a table.
func WriteSummary(w io.Writer, totals []Totals) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Variables", "Const methods", "Static methods", "Notes"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	var sum Totals
	for _, t := range totals {
		table.Append([]string{
			t.File,
			strconv.Itoa(t.Variables),
			strconv.Itoa(t.ConstMethods),
			strconv.Itoa(t.StaticMethods),
			strconv.Itoa(t.Notes),
		})

		sum.Variables += t.Variables
		sum.ConstMethods += t.ConstMethods
		sum.StaticMethods += t.StaticMethods
		sum.Notes += t.Notes
	}

	table.SetFooter([]string{
		"Total",
		strconv.Itoa(sum.Variables),
		strconv.Itoa(sum.ConstMethods),
		strconv.Itoa(sum.StaticMethods),
		strconv.Itoa(sum.Notes),
	})

	table.Render()
}
