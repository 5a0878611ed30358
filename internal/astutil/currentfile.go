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

// Package astutil provides helpers over parsed translation units.
package astutil

import (
	"go/token"
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/constguard/internal/cxx"
)

// constguard is the name of the linter.
const constguard = "constguard"

// CurrentUnit holds comment information of a translation unit.
type CurrentUnit struct {
	fset      *token.FileSet
	comments  []cxx.Comment
	generated map[*token.File]bool
}

// NewCurrentUnit creates a new [CurrentUnit] from a parsed unit.
func NewCurrentUnit(unit *cxx.Unit) CurrentUnit {
	if unit == nil || unit.Fset == nil {
		return CurrentUnit{}
	}

	comments := slices.Clone(unit.Comments)
	slices.SortFunc(comments, func(a, b cxx.Comment) int { return int(a.Pos() - b.Pos()) })

	c := CurrentUnit{fset: unit.Fset, comments: comments, generated: make(map[*token.File]bool)}

	seen := make(map[*token.File]bool)
	for _, comment := range comments {
		file := unit.Fset.File(comment.Pos())
		if file == nil || seen[file] {
			continue
		}

		seen[file] = true // only the first comment of a file counts
		c.generated[file] = isGenerated(comment.Text)
	}

	return c
}

// Valid returns true if the [CurrentUnit] was created from a unit with positions.
func (c CurrentUnit) Valid() bool {
	return c.fset != nil
}

// Generated returns true if pos lies in a generated file.
func (c CurrentUnit) Generated(pos token.Pos) bool {
	if c.fset == nil {
		return false
	}

	return c.generated[c.fset.File(pos)]
}

func (c CurrentUnit) line(pos token.Pos) int {
	return c.fset.PositionFor(pos, false).Line
}

// NoLintComment checks if a line carries a // NOLINT(constguard) or //nolint:constguard comment,
// or is preceded by a // NOLINTNEXTLINE(constguard) comment.
func (c CurrentUnit) NoLintComment(pos token.Pos) bool {
	if c.fset == nil || !pos.IsValid() {
		return false
	}

	file := c.fset.File(pos)
	if file == nil {
		return false
	}

	line := c.line(pos)

	// find the first comment starting on the line before
	start := file.LineStart(max(line-1, 1))

	i, _ := slices.BinarySearchFunc(c.comments, start,
		func(c cxx.Comment, p token.Pos) int { return int(c.Pos() - p) })

	for _, comment := range c.comments[i:] {
		if c.fset.File(comment.Pos()) != file {
			break
		}

		switch commentLine := c.line(comment.Pos()); {
		case commentLine == line-1:
			if next, ok := CommentHasNoLint(comment.Text); ok && next {
				return true
			}

		case commentLine == line:
			if next, ok := CommentHasNoLint(comment.Text); ok && !next {
				return true
			}

		default:
			return false
		}
	}

	return false
}

var (
	nolintPattern    = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)
	clangTidyPattern = regexp.MustCompile(`^(?://|/\*)\s*NOLINT(NEXTLINE)?(?:\(([^)]*)\))?`)
)

// CommentHasNoLint checks if the provided comment suppresses constguard.
// next reports whether the suppression applies to the following line.
func CommentHasNoLint(text string) (next, ok bool) {
	if matches := nolintPattern.FindStringSubmatch(text); matches != nil {
		return false, listNames(matches[1])
	}

	matches := clangTidyPattern.FindStringSubmatch(text)
	if matches == nil {
		return false, false
	}

	next = matches[1] != ""

	if matches[2] == "" && !strings.Contains(matches[0], "(") {
		return next, true // bare NOLINT suppresses everything
	}

	return next, listNames(matches[2])
}

// listNames parses a comma-separated linter list.
func listNames(list string) bool {
	for linter := range strings.SplitSeq(list, ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == constguard || l == "all" || l == "*" {
			return true
		}
	}

	return false
}

func isGenerated(text string) bool {
	return strings.Contains(text, "@generated") ||
		strings.Contains(text, "Code generated") && strings.Contains(text, "DO NOT EDIT")
}
