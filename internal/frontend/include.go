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
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// include parses the header named by an include directive and declares its contents.
func (b *binder) include(from *sourceFile, n *sitter.Node) {
	pathNode := n.ChildByFieldName("path")
	if pathNode == nil {
		return
	}

	spelled := from.text(pathNode)

	var dirs []string

	switch pathNode.Type() {
	case "string_literal":
		spelled = strings.Trim(spelled, `"`)
		dirs = append([]string{filepath.Dir(from.path)}, b.opts.IncludeDirs...)

	case "system_lib_string":
		spelled = strings.TrimSuffix(strings.TrimPrefix(spelled, "<"), ">")
		dirs = b.opts.IncludeDirs

	default:
		return
	}

	for _, dir := range dirs {
		name := filepath.Clean(filepath.Join(dir, spelled))
		if b.included[name] {
			return
		}

		src, err := b.opts.readFile(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			slog.WarnContext(b.ctx, "Can't read include", "file", name, "error", err)
			return
		}

		b.included[name] = true

		header, err := b.parseFile(name, src, false)
		if err != nil {
			slog.WarnContext(b.ctx, "Can't parse include", "file", name, "error", err)
			return
		}

		b.declareItems(header, header.root())

		return
	}

	slog.DebugContext(b.ctx, "Include not found", "include", spelled, "from", from.path)
}
