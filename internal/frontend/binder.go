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
	"go/token"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// binder builds a [cxx.Unit] in two passes: declarations first, then function bodies
// with all classes of the unit known.
type binder struct {
	ctx    context.Context //nolint:containedctx
	fset   *token.FileSet
	parser *sitter.Parser
	opts   Options
	unit   *cxx.Unit

	files    []*sourceFile
	included map[string]bool
	defined  []*cxx.Record

	records map[string]*cxx.Record
	funcs   map[string][]*cxx.Decl
	globals map[string]*cxx.Decl

	bodies []pendingBody
	inits  []pendingInit
}

// pendingBody is a function definition whose body is bound in the second pass.
type pendingBody struct {
	def   *cxx.Decl
	rec   *cxx.Record
	file  *sourceFile
	body  *sitter.Node
	inits *sitter.Node
}

// pendingInit is a default member initializer bound in the second pass.
type pendingInit struct {
	field *cxx.Decl
	file  *sourceFile
	value *sitter.Node
}

func newBinder(ctx context.Context, fset *token.FileSet, parser *sitter.Parser, opts Options) *binder {
	return &binder{
		ctx:      ctx,
		fset:     fset,
		parser:   parser,
		opts:     opts,
		unit:     &cxx.Unit{Fset: fset},
		included: make(map[string]bool),
		records:  make(map[string]*cxx.Record),
		funcs:    make(map[string][]*cxx.Decl),
		globals:  make(map[string]*cxx.Decl),
	}
}

func (b *binder) close() {
	for _, f := range b.files {
		f.tree.Close()
	}
}

// defineBodies binds default member initializers and function bodies.
func (b *binder) defineBodies() {
	for _, p := range b.inits {
		c := b.newFuncCtx(p.file, nil, p.field.Record)
		p.field.Init = c.initializer(p.value, p.field.Type)
	}

	// Local classes append to b.bodies while bodies are bound.
	for i := 0; i < len(b.bodies); i++ {
		if b.ctx.Err() != nil {
			return
		}

		p := b.bodies[i]

		c := b.newFuncCtx(p.file, p.def, p.rec)
		c.defineFunction(p.inits, p.body)
	}
}

// inheritVirtual marks member functions overriding a virtual function of a base class.
func (b *binder) inheritVirtual() {
	for _, rec := range b.unit.Records {
		for _, m := range rec.Methods {
			if m.Flags.Has(cxx.FlagVirtual) || m.Flags.Has(cxx.FlagConstructor) {
				continue
			}

			for _, base := range rec.Bases {
				if base == nil {
					continue
				}

				for _, bm := range base.MethodsNamed(m.Name) {
					if bm.Is(cxx.FlagVirtual) {
						m.Flags |= cxx.FlagVirtual
						break
					}
				}
			}
		}
	}
}

// lookupRecord finds a class by its possibly qualified name.
func (b *binder) lookupRecord(name string) *cxx.Record {
	return b.records[baseName(name)]
}
