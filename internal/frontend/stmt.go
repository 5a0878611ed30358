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
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// block converts a compound statement in a new scope.
func (c *funcCtx) block(n *sitter.Node) *cxx.Block {
	c.push()
	defer c.pop()

	blk := &cxx.Block{Span: c.file.span(n)}

	for s := range namedChildren(n) {
		if st := c.stmt(s); st != nil {
			blk.List = append(blk.List, st)
		}
	}

	return blk
}

// stmt converts a statement. Declarations of local types yield nil.
func (c *funcCtx) stmt(n *sitter.Node) cxx.Stmt {
	if n == nil {
		return nil
	}

	span := c.file.span(n)

	switch n.Type() {
	case "compound_statement":
		return c.block(n)

	case "declaration":
		return c.declStmt(n)

	case "expression_statement":
		x := c.expr(firstNamedChild(n))
		if x == nil {
			return nil
		}

		return &cxx.ExprStmt{Span: span, X: x}

	case "return_statement":
		return &cxx.ReturnStmt{Span: span, Result: c.expr(firstNamedChild(n))}

	case "if_statement":
		c.push()
		defer c.pop()

		s := &cxx.IfStmt{Span: span}
		s.Init, s.Cond = c.condition(n.ChildByFieldName("condition"))
		s.Then = c.stmt(n.ChildByFieldName("consequence"))

		if alt := n.ChildByFieldName("alternative"); alt != nil {
			if alt.Type() == "else_clause" {
				alt = firstNamedChild(alt)
			}

			s.Else = c.stmt(alt)
		}

		return s

	case "while_statement":
		c.push()
		defer c.pop()

		s := &cxx.WhileStmt{Span: span}
		_, s.Cond = c.condition(n.ChildByFieldName("condition"))
		s.Body = c.stmt(n.ChildByFieldName("body"))

		return s

	case "do_statement":
		return &cxx.WhileStmt{
			Span: span,
			Body: c.stmt(n.ChildByFieldName("body")),
			Cond: exprNode(c.expr(n.ChildByFieldName("condition"))),
			Do:   true,
		}

	case "for_statement":
		return c.forStmt(n)

	case "for_range_loop":
		return c.rangeStmt(n)

	case "switch_statement":
		c.push()
		defer c.pop()

		s := &cxx.SwitchStmt{Span: span}
		s.Init, s.Cond = c.condition(n.ChildByFieldName("condition"))
		s.Body = c.stmt(n.ChildByFieldName("body"))

		return s

	case "case_statement":
		return c.caseStmt(n)

	case "try_statement":
		return c.tryStmt(n)

	case "class_specifier", "struct_specifier", "union_specifier":
		c.declareRecord(c.file, n)
		return nil

	case "type_definition", "alias_declaration", "using_declaration", "namespace_alias_definition",
		"static_assert_declaration", "enum_specifier", "comment":
		return nil

	default:
		return c.otherStmt(n)
	}
}

// otherStmt converts statements without a dedicated node, keeping their children.
func (c *funcCtx) otherStmt(n *sitter.Node) cxx.Stmt {
	s := &cxx.OtherStmt{Span: c.file.span(n), Kind: n.Type()}

	for child := range namedChildren(n) {
		var node cxx.Node

		switch {
		case isStatement(child):
			if st := c.stmt(child); st != nil {
				node = st
			}

		case child.Type() == "statement_identifier", isTypeNode(child):

		default:
			if x := c.expr(child); x != nil {
				node = x
			}
		}

		if node != nil {
			s.Children = append(s.Children, node)
		}
	}

	return s
}

// declStmt declares the local variables of a declaration.
func (c *funcCtx) declStmt(n *sitter.Node) cxx.Stmt {
	if t := n.ChildByFieldName("type"); t != nil && t.ChildByFieldName("body") != nil {
		switch t.Type() {
		case "class_specifier", "struct_specifier", "union_specifier":
			c.declareRecord(c.file, t)
		}
	}

	base := c.baseType(c.file, n)
	declarators := fieldChildren(n, "declarator")
	shared := len(declarators) > 1
	s := &cxx.DeclStmt{Span: c.file.span(n)}

	for _, d := range declarators {
		info := c.declarator(c.file, base, d)
		if info.name == nil {
			continue
		}

		var direct []cxx.Expr
		if info.fn != nil {
			// W w(x); parses as a function declaration when every argument is a plain name.
			args, ok := c.directInit(info.fn)
			if !ok {
				continue
			}

			direct = args
		}

		if info.init == nil && !shared {
			info.init = n.ChildByFieldName("value")
		}

		v := c.newVariable(c.file, n, info, cxx.Var, shared)
		c.declareLocal(v)

		switch {
		case info.fn != nil:
			v.Init = c.parenInit(c.file.span(info.fn.ChildByFieldName("parameters")), v.Type, direct)

		case info.init != nil:
			v.Init = c.initializer(info.init, v.Type)
			deduce(v)
		}

		s.Decls = append(s.Decls, v)
	}

	if len(s.Decls) == 0 {
		return nil
	}

	return s
}

// directInit reinterprets the parameter list of function declarator fn as constructor
// arguments. It fails unless every parameter is a single name bound to a variable or
// member rather than a type.
func (c *funcCtx) directInit(fn *sitter.Node) ([]cxx.Expr, bool) {
	var args []cxx.Expr

	for p := range namedChildren(fn.ChildByFieldName("parameters")) {
		if p.Type() != "parameter_declaration" || p.ChildByFieldName("declarator") != nil || p.NamedChildCount() != 1 {
			return nil, false
		}

		t := p.ChildByFieldName("type")
		if t == nil || t.Type() != "type_identifier" || !c.namesValue(c.file.text(t)) {
			return nil, false
		}

		args = append(args, c.ident(t))
	}

	return args, len(args) > 0
}

// namesValue reports whether name is visible as a variable or member and not as a type.
func (c *funcCtx) namesValue(name string) bool {
	if c.lookupRecord(name) != nil {
		return false
	}

	switch {
	case c.lookupLocal(name) != nil, c.globals[name] != nil:
		return true

	case c.rec != nil:
		return c.rec.Field(name) != nil

	default:
		return false
	}
}

// deduce replaces an auto placeholder by the type of the initializer.
func deduce(v *cxx.Decl) {
	init := typeOf(v.Init).NonReference()
	if init == nil || !isAuto(v.Type) && !isAuto(v.Type.Pointee()) {
		return
	}

	switch t := v.Type; t.Kind {
	case cxx.Plain:
		v.Type = init.WithConst(t.Const)

	case cxx.LValueRef, cxx.RValueRef:
		u := *t
		u.Elem = init.WithConst(t.Elem.Const || init.Const)
		v.Type = &u

	case cxx.Pointer:
		if init.IsPointer() {
			p := cxx.PointerTo(init.Elem.WithConst(t.Elem.Const || init.Elem.Const))
			p.Const = t.Const
			v.Type = p
		}
	}
}

func isAuto(t *cxx.Type) bool {
	return t != nil && t.Kind == cxx.Plain && t.Name == "auto"
}

// condition converts the condition of a selection or iteration statement.
func (c *funcCtx) condition(n *sitter.Node) (cxx.Stmt, cxx.Node) {
	if n == nil {
		return nil, nil
	}

	switch n.Type() {
	case "condition_clause":
		var init cxx.Stmt
		if i := n.ChildByFieldName("initializer"); i != nil {
			init = c.stmt(i)
		}

		_, cond := c.condition(n.ChildByFieldName("value"))

		return init, cond

	case "declaration":
		if s := c.declStmt(n); s != nil {
			return nil, s
		}

		return nil, nil

	default:
		return nil, exprNode(c.expr(n))
	}
}

func (c *funcCtx) forStmt(n *sitter.Node) cxx.Stmt {
	c.push()
	defer c.pop()

	s := &cxx.ForStmt{Span: c.file.span(n)}

	if init := n.ChildByFieldName("initializer"); init != nil {
		if init.Type() == "declaration" {
			s.Init = c.declStmt(init)
		} else if x := c.expr(init); x != nil {
			s.Init = &cxx.ExprStmt{Span: c.file.span(init), X: x}
		}
	}

	_, s.Cond = c.condition(n.ChildByFieldName("condition"))
	s.Post = c.expr(n.ChildByFieldName("update"))
	s.Body = c.stmt(n.ChildByFieldName("body"))

	return s
}

func (c *funcCtx) rangeStmt(n *sitter.Node) cxx.Stmt {
	c.push()
	defer c.pop()

	s := &cxx.RangeStmt{Span: c.file.span(n)}

	if i := n.ChildByFieldName("initializer"); i != nil {
		c.stmt(i)
	}

	s.X = c.expr(n.ChildByFieldName("right"))

	info := c.declarator(c.file, c.baseType(c.file, n), n.ChildByFieldName("declarator"))
	if info.name != nil {
		s.Var = c.newVariable(c.file, n, info, cxx.Var, false)
		s.Var.SpecPos = c.file.pos(afterParen(n))
		s.Var.Span = cxx.Span{From: s.Var.SpecPos, To: c.file.end(n.ChildByFieldName("declarator"))}
		c.declareLocal(s.Var)
	}

	s.Body = c.stmt(n.ChildByFieldName("body"))

	return s
}

func (c *funcCtx) caseStmt(n *sitter.Node) cxx.Stmt {
	s := &cxx.CaseStmt{Span: c.file.span(n)}

	for i := range int(n.ChildCount()) {
		child := n.Child(i)
		if child == nil || !child.IsNamed() || child.Type() == "comment" {
			continue
		}

		if n.FieldNameForChild(i) == "value" {
			s.Value = c.expr(child)
			continue
		}

		if st := c.stmt(child); st != nil {
			s.Body = append(s.Body, st)
		}
	}

	return s
}

func (c *funcCtx) tryStmt(n *sitter.Node) cxx.Stmt {
	s := &cxx.TryStmt{Span: c.file.span(n)}

	if body := n.ChildByFieldName("body"); body != nil {
		s.Body = c.block(body)
	}

	for h := range namedChildren(n) {
		if h.Type() != "catch_clause" {
			continue
		}

		s.Handlers = append(s.Handlers, c.catchClause(h))
	}

	return s
}

func (c *funcCtx) catchClause(n *sitter.Node) *cxx.CatchClause {
	c.push()
	defer c.pop()

	h := &cxx.CatchClause{Span: c.file.span(n)}

	if p := firstNamedChild(n.ChildByFieldName("parameters")); p != nil && p.Type() == "parameter_declaration" {
		info := c.declarator(c.file, c.baseType(c.file, p), p.ChildByFieldName("declarator"))
		if info.name != nil {
			h.Param = c.newVariable(c.file, p, info, cxx.Var, false)
			c.declareLocal(h.Param)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		h.Body = c.block(body)
	}

	return h
}

// afterParen returns the child following the opening parenthesis of n.
func afterParen(n *sitter.Node) *sitter.Node {
	for i := range int(n.ChildCount()) - 1 {
		if c := n.Child(i); c != nil && c.Type() == "(" {
			return n.Child(i + 1)
		}
	}

	return n
}

// exprNode avoids storing a typed nil in a [cxx.Node].
func exprNode(x cxx.Expr) cxx.Node {
	if x == nil {
		return nil
	}

	return x
}

func isStatement(n *sitter.Node) bool {
	switch n.Type() {
	case "compound_statement", "declaration", "expression_statement", "return_statement",
		"if_statement", "while_statement", "do_statement", "for_statement", "for_range_loop",
		"switch_statement", "case_statement", "try_statement", "labeled_statement",
		"break_statement", "continue_statement", "goto_statement", "throw_statement":
		return true

	default:
		return false
	}
}
