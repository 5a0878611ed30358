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
	"slices"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// declareItems declares the top-level items below n.
func (b *binder) declareItems(f *sourceFile, n *sitter.Node) {
	for c := range namedChildren(n) {
		if b.ctx.Err() != nil {
			return
		}

		b.declareItem(f, c, nil)
	}
}

// declareItem declares one item at namespace scope or, with rec set, a member of rec.
func (b *binder) declareItem(f *sourceFile, n *sitter.Node, rec *cxx.Record) {
	switch n.Type() {
	case "preproc_include":
		b.include(f, n)

	case "preproc_ifdef", "preproc_if", "preproc_else", "preproc_elif", "preproc_elifdef",
		"declaration_list", "field_declaration_list":
		for c := range namedChildren(n) {
			b.declareItem(f, c, rec)
		}

	case "namespace_definition", "linkage_specification":
		if body := n.ChildByFieldName("body"); body != nil {
			b.declareItem(f, body, rec)
		}

	case "template_declaration":
		for c := range namedChildren(n) {
			if c.Type() != "template_parameter_list" {
				b.declareItem(f, c, rec)
			}
		}

	case "class_specifier", "struct_specifier", "union_specifier":
		b.declareRecord(f, n)

	case "declaration", "field_declaration":
		b.declareDeclaration(f, n, rec)

	case "function_definition":
		b.declareDefinition(f, n, rec)

	case "friend_declaration":
		for c := range namedChildren(n) {
			if c.Type() == "function_definition" {
				b.declareDefinition(f, c, nil)
			}
		}

	case "type_definition":
		if t := n.ChildByFieldName("type"); t != nil && t.ChildByFieldName("body") != nil {
			b.declareRecord(f, t)
		}
	}
}

// declareRecord declares a class and its members.
func (b *binder) declareRecord(f *sourceFile, n *sitter.Node) *cxx.Record {
	nameNode := n.ChildByFieldName("name")
	body := n.ChildByFieldName("body")

	if nameNode == nil && body == nil {
		return nil
	}

	name := baseName(f.text(nameNode))

	rec := b.records[name]
	if rec == nil || name == "" || body != nil && b.isDefined(rec) {
		rec = &cxx.Record{Name: name}
		b.unit.Records = append(b.unit.Records, rec)

		if name != "" {
			b.records[name] = rec
		}
	}

	if body == nil {
		if !rec.IsValid() {
			rec.Span, rec.NamePos, rec.InMain = f.span(n), f.pos(nameNode), f.main
		}

		return rec
	}

	rec.Span, rec.NamePos, rec.InMain = f.span(n), f.pos(nameNode), f.main
	if !rec.NamePos.IsValid() {
		rec.NamePos = rec.Pos()
	}

	b.defined = append(b.defined, rec)

	if bases := childOfType(n, "base_class_clause"); bases != nil {
		for c := range namedChildren(bases) {
			switch c.Type() {
			case "type_identifier", "qualified_identifier", "template_type":
				if base := b.lookupRecord(f.text(c)); base != nil && base != rec {
					rec.Bases = append(rec.Bases, base)
				}
			}
		}
	}

	for c := range namedChildren(body) {
		b.declareItem(f, c, rec)
	}

	return rec
}

func (b *binder) isDefined(rec *cxx.Record) bool {
	return slices.Contains(b.defined, rec)
}

// declareDeclaration declares the data members, variables and function prototypes of a declaration.
func (b *binder) declareDeclaration(f *sourceFile, n *sitter.Node, rec *cxx.Record) {
	if t := n.ChildByFieldName("type"); t != nil && t.ChildByFieldName("body") != nil {
		switch t.Type() {
		case "class_specifier", "struct_specifier", "union_specifier":
			b.declareRecord(f, t)
		}
	}

	base := b.baseType(f, n)
	declarators := fieldChildren(n, "declarator")
	shared := len(declarators) > 1

	for _, d := range declarators {
		info := b.declarator(f, base, d)

		switch {
		case info.fn != nil && info.name != nil:
			fn := b.declareFunction(f, n, info, rec, nil)
			if shared {
				fn.SpecPos = token.NoPos
			}

		case info.name == nil:

		case rec != nil:
			value := info.init
			if value == nil {
				value = n.ChildByFieldName("default_value")
			}

			b.declareField(f, n, info, rec, shared, value)

		case info.name.Type() == "identifier":
			global := b.newVariable(f, n, info, cxx.Var, shared)
			if _, ok := b.globals[global.Name]; !ok {
				b.globals[global.Name] = global
			}
		}
	}
}

// declareDefinition declares a function definition.
func (b *binder) declareDefinition(f *sourceFile, n *sitter.Node, rec *cxx.Record) {
	info := b.declarator(f, b.baseType(f, n), n.ChildByFieldName("declarator"))

	switch {
	case info.name == nil:

	case info.fn != nil:
		b.declareFunction(f, n, info, rec, n.ChildByFieldName("body"))

	case rec != nil && info.name.Type() == "field_identifier":
		// int m = 0; in a class body parses as a pure specifier without a function declarator.
		if pure := childOfType(n, "pure_virtual_clause"); pure != nil {
			b.declareField(f, n, info, rec, false, pure)
		}
	}
}

// declareField declares a data member of rec with an optional default member initializer.
func (b *binder) declareField(f *sourceFile, n *sitter.Node, info declInfo, rec *cxx.Record, shared bool, value *sitter.Node) {
	field := b.newVariable(f, n, info, cxx.Field, shared)
	field.Record = rec
	rec.Fields = append(rec.Fields, field)

	if value != nil {
		b.inits = append(b.inits, pendingInit{field: field, file: f, value: value})
	}
}

// declareFunction declares a free or member function and links it to earlier declarations.
func (b *binder) declareFunction(f *sourceFile, n *sitter.Node, info declInfo, rec *cxx.Record, body *sitter.Node) *cxx.Decl {
	scope, last := splitQualified(info.name)
	if scope != nil {
		rec = b.lookupRecord(f.text(scope))
	}

	d := &cxx.Decl{
		Span:    f.span(n),
		Kind:    cxx.Func,
		Type:    info.typ,
		NamePos: f.pos(last),
		SpecPos: f.pos(n),
		InMain:  f.main,
	}

	d.Name, d.Flags = b.functionName(f, last)
	d.Params, d.ParamsEnd = b.params(f, info.fn)

	if f.hasQualifier(info.fn, "const") {
		d.Flags |= cxx.FlagConst
	}

	if f.hasStorageClass(n, "static") {
		d.Flags |= cxx.FlagStatic
	}

	if hasVirtual(f, n) || childOfType(info.fn, "virtual_specifier") != nil {
		d.Flags |= cxx.FlagVirtual
	}

	if childOfType(n, "default_method_clause", "delete_method_clause") == nil {
		d.Flags |= cxx.FlagUserProvided
	}

	if rec != nil {
		d.Kind = cxx.Method
		d.Record = rec

		if d.Name == rec.Name {
			d.Flags |= cxx.FlagConstructor
		}

		if isCopyAssign(d, rec) {
			d.Flags |= cxx.FlagCopyAssign
		}

		if prev := matchFunction(rec.Methods, d); prev != nil {
			d.Redeclare(prev)
		} else {
			rec.Methods = append(rec.Methods, d)
		}
	} else {
		if prev := matchFunction(b.funcs[d.Name], d); prev != nil {
			d.Redeclare(prev)
		} else {
			b.funcs[d.Name] = append(b.funcs[d.Name], d)
		}
	}

	b.unit.Decls = append(b.unit.Decls, d)

	if body != nil {
		inits := childOfType(n, "field_initializer_list")
		b.bodies = append(b.bodies, pendingBody{def: d, rec: rec, file: f, body: body, inits: inits})
	}

	return d
}

// functionName returns the name of a function and the flags implied by its spelling.
func (b *binder) functionName(f *sourceFile, n *sitter.Node) (string, cxx.Flags) {
	switch n.Type() {
	case "operator_cast":
		return "operator " + normalize(f.text(n.ChildByFieldName("type"))), cxx.FlagConversion

	case "operator_name":
		return operatorName(f.text(n)), cxx.FlagOperator

	case "destructor_name":
		return compact(f.text(n)), cxx.FlagDestructor

	case "template_function":
		return f.text(n.ChildByFieldName("name")), 0

	default:
		return f.text(n), 0
	}
}

// newVariable creates a variable or data member declaration.
func (b *binder) newVariable(f *sourceFile, n *sitter.Node, info declInfo, kind cxx.DeclKind, shared bool) *cxx.Decl {
	d := &cxx.Decl{
		Span:    f.span(n),
		Kind:    kind,
		Name:    f.text(info.name),
		Type:    info.typ,
		NamePos: f.pos(info.name),
		InMain:  f.main,
	}

	if !shared {
		d.SpecPos = f.pos(n)
	}

	if f.hasStorageClass(n, "static") {
		d.Flags |= cxx.FlagStatic
	}

	return d
}

// matchFunction finds an earlier declaration of the same function among candidates.
func matchFunction(candidates []*cxx.Decl, d *cxx.Decl) *cxx.Decl {
	var arity []*cxx.Decl

	for _, c := range candidates {
		if c.Name != d.Name || len(c.Params) != len(d.Params) {
			continue
		}

		if c.Flags.Has(cxx.FlagConst) != d.Flags.Has(cxx.FlagConst) {
			continue
		}

		if sameParams(c, d) {
			return c
		}

		arity = append(arity, c)
	}

	if len(arity) == 1 {
		return arity[0]
	}

	return nil
}

func sameParams(a, b *cxx.Decl) bool {
	for i, p := range a.Params {
		if p.Type.String() != b.Params[i].Type.String() {
			return false
		}
	}

	return true
}

// isCopyAssign reports whether d is a copy assignment operator of rec.
func isCopyAssign(d *cxx.Decl, rec *cxx.Record) bool {
	if d.Name != "operator=" || len(d.Params) != 1 {
		return false
	}

	t := d.Params[0].Type
	if t == nil || t.Kind == cxx.RValueRef {
		return false
	}

	nr := t.NonReference()

	return nr != nil && nr.Kind == cxx.Plain && nr.Record == rec
}

func hasVirtual(f *sourceFile, n *sitter.Node) bool {
	for c := range children(n) {
		switch c.Type() {
		case "virtual", "virtual_function_specifier":
			return true
		}

		if !c.IsNamed() && f.text(c) == "virtual" {
			return true
		}
	}

	return false
}
