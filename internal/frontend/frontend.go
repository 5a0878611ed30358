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
	"context"
	"fmt"
	"go/token"
	"log/slog"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/cpp"

	"fillmore-labs.com/constguard/internal/cxx"
)

// IsAvailable reports whether C++ parsing is supported by this build.
func IsAvailable() bool {
	return true
}

// Parse parses the translation unit with main file path and contents src.
// Quoted and angle-bracket includes found in opts.IncludeDirs are parsed as part of the unit.
func Parse(ctx context.Context, fset *token.FileSet, path string, src []byte, opts Options) (*cxx.Unit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(cpp.GetLanguage())

	b := newBinder(ctx, fset, parser, opts)
	defer b.close()

	b.unit.Path = path

	main, err := b.parseFile(path, src, true)
	if err != nil {
		return nil, err
	}

	b.declareItems(main, main.root())

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b.defineBodies()
	b.inheritVirtual()

	return b.unit, nil
}

// parseFile parses one file of the unit and registers it with the file set.
func (b *binder) parseFile(path string, src []byte, main bool) (*sourceFile, error) {
	tree, err := b.parser.ParseCtx(b.ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if tree.RootNode().HasError() {
		slog.WarnContext(b.ctx, "Syntax errors in C++ source, analyzing the recoverable part", "file", path)
	}

	file := b.fset.AddFile(path, -1, len(src))
	file.SetLinesForContent(src)

	f := &sourceFile{path: path, src: src, file: file, main: main, tree: tree}
	b.files = append(b.files, f)
	b.collectComments(f)

	return f, nil
}
