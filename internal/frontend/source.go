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

//go:build cgo

package frontend

import (
	"go/token"
	"iter"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// sourceFile is one parsed file of a translation unit.
type sourceFile struct {
	path string
	src  []byte
	file *token.File
	main bool
	tree *sitter.Tree
}

func (f *sourceFile) root() *sitter.Node { return f.tree.RootNode() }

func (f *sourceFile) pos(n *sitter.Node) token.Pos {
	if n == nil {
		return token.NoPos
	}

	return f.file.Pos(int(n.StartByte()))
}

func (f *sourceFile) end(n *sitter.Node) token.Pos {
	if n == nil {
		return token.NoPos
	}

	return f.file.Pos(int(n.EndByte()))
}

func (f *sourceFile) span(n *sitter.Node) cxx.Span {
	return cxx.Span{From: f.pos(n), To: f.end(n)}
}

func (f *sourceFile) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}

	return n.Content(f.src)
}

// hasToken reports whether a direct child of n is spelled tok.
func (f *sourceFile) hasToken(n *sitter.Node, tok string) bool {
	for c := range children(n) {
		if f.text(c) == tok {
			return true
		}
	}

	return false
}

// hasQualifier reports whether a direct type_qualifier child of n is spelled one of quals.
func (f *sourceFile) hasQualifier(n *sitter.Node, quals ...string) bool {
	for c := range children(n) {
		if c.Type() != "type_qualifier" {
			continue
		}

		text := f.text(c)
		for _, q := range quals {
			if text == q {
				return true
			}
		}
	}

	return false
}

// hasStorageClass reports whether n carries the storage class specifier class.
func (f *sourceFile) hasStorageClass(n *sitter.Node, class string) bool {
	for c := range children(n) {
		if c.Type() == "storage_class_specifier" && f.text(c) == class {
			return true
		}
	}

	return false
}

// children iterates over all direct children of n.
func children(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.ChildCount()) {
			if c := n.Child(i); c != nil && !yield(c) {
				return
			}
		}
	}
}

// namedChildren iterates over the named direct children of n, skipping comments.
func namedChildren(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		if n == nil {
			return
		}

		for i := range int(n.NamedChildCount()) {
			c := n.NamedChild(i)
			if c == nil || c.Type() == "comment" {
				continue
			}

			if !yield(c) {
				return
			}
		}
	}
}

// fieldChildren returns all children of n stored under field.
func fieldChildren(n *sitter.Node, field string) []*sitter.Node {
	var list []*sitter.Node

	for i := range int(n.ChildCount()) {
		if n.FieldNameForChild(i) == field {
			if c := n.Child(i); c != nil {
				list = append(list, c)
			}
		}
	}

	return list
}

// childOfType returns the first direct child of n with one of the given types.
func childOfType(n *sitter.Node, types ...string) *sitter.Node {
	for c := range children(n) {
		for _, t := range types {
			if c.Type() == t {
				return c
			}
		}
	}

	return nil
}

// lastNamedChild returns the last named child that is not a comment.
func lastNamedChild(n *sitter.Node) *sitter.Node {
	var last *sitter.Node
	for c := range namedChildren(n) {
		last = c
	}

	return last
}

// firstNamedChild returns the first named child that is not a comment.
func firstNamedChild(n *sitter.Node) *sitter.Node {
	for c := range namedChildren(n) {
		return c
	}

	return nil
}

// compact removes all white space from s.
func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// baseName strips template arguments and namespace qualifiers from a type name.
func baseName(name string) string {
	name = compact(name)

	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}

	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}

	return name
}

// collectComments records all comments of f in the unit.
func (b *binder) collectComments(f *sourceFile) {
	var walk func(n *sitter.Node)

	walk = func(n *sitter.Node) {
		if n.Type() == "comment" {
			b.unit.Comments = append(b.unit.Comments, cxx.Comment{Span: f.span(n), Text: f.text(n)})
			return
		}

		for c := range children(n) {
			walk(c)
		}
	}

	walk(f.root())
}
