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
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// declInfo is the result of unwinding a declarator.
type declInfo struct {
	name *sitter.Node // Declared name, nil for abstract declarators.
	typ  *cxx.Type
	fn   *sitter.Node // Function declarator of function declarations.
	init *sitter.Node // Initializer of init declarators.
}

// declarator applies declarator n to the base type.
func (b *binder) declarator(f *sourceFile, base *cxx.Type, n *sitter.Node) declInfo {
	info := declInfo{typ: base}

	for n != nil {
		switch n.Type() {
		case "init_declarator":
			info.init = n.ChildByFieldName("value")
			n = n.ChildByFieldName("declarator")

		case "pointer_declarator", "abstract_pointer_declarator":
			info.typ = cxx.PointerTo(info.typ)
			info.typ.Const = f.hasQualifier(n, "const")
			n = n.ChildByFieldName("declarator")

		case "reference_declarator", "abstract_reference_declarator":
			if f.hasToken(n, "&&") {
				info.typ = cxx.RValueReferenceTo(info.typ)
			} else {
				info.typ = cxx.ReferenceTo(info.typ)
			}

			n = lastNamedChild(n)

		case "array_declarator", "abstract_array_declarator":
			info.typ = cxx.ArrayOf(info.typ)
			n = n.ChildByFieldName("declarator")

		case "function_declarator", "abstract_function_declarator":
			inner := n.ChildByFieldName("declarator")
			if inner != nil && (inner.Type() == "parenthesized_declarator" || inner.Type() == "abstract_parenthesized_declarator") {
				// Pointer to function: the declared entity is an object.
				info.typ = cxx.Named(normalize(f.text(n.ChildByFieldName("parameters"))), nil)
				n = inner

				continue
			}

			info.fn = n
			n = inner

		case "parenthesized_declarator", "abstract_parenthesized_declarator", "attributed_declarator":
			n = firstNamedChild(n)

		default:
			info.name = n

			if _, last := splitQualified(n); last != nil && last.Type() == "operator_cast" {
				info.typ = b.typeSpecifier(f, last.ChildByFieldName("type"))
				info.fn = findType(last.ChildByFieldName("declarator"), "abstract_function_declarator")
			}

			return info
		}
	}

	return info
}

// baseType returns the type named by the declaration specifiers of n.
func (b *binder) baseType(f *sourceFile, n *sitter.Node) *cxx.Type {
	t := b.typeSpecifier(f, n.ChildByFieldName("type"))
	if t != nil && f.hasQualifier(n, "const", "constexpr") {
		t.Const = true
	}

	return t
}

// typeSpecifier returns the type named by a type specifier node.
func (b *binder) typeSpecifier(f *sourceFile, n *sitter.Node) *cxx.Type {
	if n == nil {
		return nil
	}

	switch n.Type() {
	case "class_specifier", "struct_specifier", "union_specifier", "enum_specifier":
		name := n.ChildByFieldName("name")
		if name == nil {
			return cxx.Named(n.Type(), nil)
		}

		return cxx.Named(normalize(f.text(name)), b.lookupRecord(f.text(name)))

	case "placeholder_type_specifier", "auto":
		return cxx.Named("auto", nil)

	default:
		name := normalize(f.text(n))

		return cxx.Named(name, b.lookupRecord(name))
	}
}

// typeDescriptor returns the type of a type_descriptor node as used in casts and new-expressions.
func (b *binder) typeDescriptor(f *sourceFile, n *sitter.Node) *cxx.Type {
	if n == nil {
		return nil
	}

	if n.Type() != "type_descriptor" {
		return b.typeSpecifier(f, n)
	}

	info := b.declarator(f, b.baseType(f, n), n.ChildByFieldName("declarator"))

	return info.typ
}

// params declares the parameters of a function declarator.
func (b *binder) params(f *sourceFile, fn *sitter.Node) ([]*cxx.Decl, token.Pos) {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil, token.NoPos
	}

	var params []*cxx.Decl

	for p := range namedChildren(list) {
		switch p.Type() {
		case "parameter_declaration", "optional_parameter_declaration":
		default:
			continue
		}

		info := b.declarator(f, b.baseType(f, p), p.ChildByFieldName("declarator"))

		d := &cxx.Decl{
			Span:    f.span(p),
			Kind:    cxx.Param,
			Type:    info.typ,
			SpecPos: f.pos(p),
			InMain:  f.main,
		}

		if info.name != nil {
			d.Name, d.NamePos = f.text(info.name), f.pos(info.name)
		}

		if p.Type() == "optional_parameter_declaration" {
			d.Flags |= cxx.FlagDefaultArg
		}

		params = append(params, d)
	}

	if len(params) == 1 && params[0].Name == "" && params[0].Type.String() == "void" {
		params = nil
	}

	return params, f.end(list)
}

// splitQualified returns the innermost scope and the unqualified name of n.
func splitQualified(n *sitter.Node) (scope, last *sitter.Node) {
	for n != nil && n.Type() == "qualified_identifier" {
		scope = n.ChildByFieldName("scope")
		n = n.ChildByFieldName("name")
	}

	return scope, n
}

// findType returns the first node of type typ in the subtree rooted at n.
func findType(n *sitter.Node, typ string) *sitter.Node {
	if n == nil || n.Type() == typ {
		return n
	}

	for c := range namedChildren(n) {
		if found := findType(c, typ); found != nil {
			return found
		}
	}

	return nil
}

// normalize collapses white space in type names.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// operatorName spells operator function names the way compilers print them.
func operatorName(s string) string {
	rest := strings.TrimSpace(strings.TrimPrefix(compact(s), "operator"))
	if rest == "" {
		return "operator"
	}

	if unicode.IsLetter(rune(rest[0])) {
		rest = strings.TrimPrefix(normalize(strings.TrimPrefix(strings.TrimSpace(s), "operator")), " ")
		return "operator " + rest
	}

	return "operator" + rest
}
