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

// funcCtx binds the names of one function body.
type funcCtx struct {
	*binder

	file   *sourceFile
	def    *cxx.Decl
	rec    *cxx.Record
	scope  *env
	locals *[]*cxx.Decl // Nil inside lambdas.
}

// env is one block scope.
type env struct {
	parent *env
	names  map[string]*cxx.Decl
}

func (b *binder) newFuncCtx(f *sourceFile, def *cxx.Decl, rec *cxx.Record) *funcCtx {
	c := &funcCtx{binder: b, file: f, def: def, rec: rec, scope: &env{}}

	if def != nil {
		c.locals = &def.Locals
		for _, p := range def.Params {
			c.bind(p)
		}
	}

	return c
}

func (c *funcCtx) push() { c.scope = &env{parent: c.scope} }

func (c *funcCtx) pop() { c.scope = c.scope.parent }

func (c *funcCtx) bind(d *cxx.Decl) {
	if d.Name == "" {
		return
	}

	if c.scope.names == nil {
		c.scope.names = make(map[string]*cxx.Decl)
	}

	c.scope.names[d.Name] = d
}

// declareLocal binds a local variable and records it with the enclosing function.
func (c *funcCtx) declareLocal(d *cxx.Decl) {
	c.bind(d)

	if c.locals != nil {
		*c.locals = append(*c.locals, d)
	}
}

func (c *funcCtx) lookupLocal(name string) *cxx.Decl {
	for e := c.scope; e != nil; e = e.parent {
		if d, ok := e.names[name]; ok {
			return d
		}
	}

	return nil
}

// hasThis reports whether the this pointer is available.
func (c *funcCtx) hasThis() bool {
	return c.rec != nil && (c.def == nil || !c.def.Is(cxx.FlagStatic))
}

// constThis reports whether the this pointer points to a const object.
func (c *funcCtx) constThis() bool {
	return c.def != nil && c.def.Is(cxx.FlagConst)
}

// defineFunction binds the member initializers and the body of the function.
func (c *funcCtx) defineFunction(inits, body *sitter.Node) {
	for n := range namedChildren(inits) {
		if n.Type() == "field_initializer" {
			c.def.Inits = append(c.def.Inits, c.memberInit(n))
		}
	}

	if body.Type() == "compound_statement" {
		c.def.Body = c.block(body)
		return
	}

	c.def.Body = &cxx.Block{Span: c.file.span(body)}
	if s := c.stmt(body); s != nil {
		c.def.Body.List = append(c.def.Body.List, s)
	}
}

func (c *funcCtx) memberInit(n *sitter.Node) *cxx.MemberInit {
	init := &cxx.MemberInit{Span: c.file.span(n)}

	if name := firstNamedChild(n); name != nil && c.rec != nil {
		init.Member = c.rec.Field(baseName(c.file.text(name)))
	}

	init.Args = c.args(childOfType(n, "argument_list", "initializer_list"))

	return init
}

// initializer converts the initializer of an object of type typ.
func (c *funcCtx) initializer(n *sitter.Node, typ *cxx.Type) cxx.Expr {
	var rec *cxx.Record
	if !typ.IsReference() {
		rec = typ.ElemRecord(false)
	}

	span := c.file.span(n)

	switch n.Type() {
	case "argument_list":
		return c.parenInit(span, typ, c.args(n))

	case "pure_virtual_clause":
		return &cxx.Literal{Span: span, Value: "0", Typ: numberType("0")}

	case "initializer_list":
		args := c.args(n)
		if rec != nil && len(rec.Constructors()) > 0 {
			return c.construct(span, rec, args)
		}

		return &cxx.InitListExpr{Span: span, Elems: args, Typ: typ.NonReference()}

	default:
		return c.expr(n)
	}
}

// parenInit builds the initializer of a parenthesized direct initialization.
func (c *funcCtx) parenInit(span cxx.Span, typ *cxx.Type, args []cxx.Expr) cxx.Expr {
	if !typ.IsReference() {
		if rec := typ.ElemRecord(false); rec != nil {
			return c.construct(span, rec, args)
		}
	}

	if len(args) == 1 {
		return args[0]
	}

	return &cxx.InitListExpr{Span: span, Elems: args, Typ: typ}
}

func (c *funcCtx) construct(span cxx.Span, rec *cxx.Record, args []cxx.Expr) *cxx.ConstructExpr {
	return &cxx.ConstructExpr{
		Span: span,
		Ctor: pick(rec.Constructors(), len(args), false),
		Args: args,
		Typ:  cxx.Named(rec.Name, rec),
	}
}

// args converts the expressions of an argument or initializer list.
func (c *funcCtx) args(n *sitter.Node) []cxx.Expr {
	var args []cxx.Expr

	for a := range namedChildren(n) {
		if x := c.expr(a); x != nil {
			args = append(args, x)
		}
	}

	return args
}

// expr converts an expression node.
func (c *funcCtx) expr(n *sitter.Node) cxx.Expr {
	if n == nil {
		return nil
	}

	span := c.file.span(n)

	switch n.Type() {
	case "identifier":
		return c.ident(n)

	case "qualified_identifier":
		return c.qualified(n)

	case "template_function":
		return c.expr(n.ChildByFieldName("name"))

	case "this":
		return c.this(span)

	case "field_expression":
		return c.fieldExpr(n)

	case "call_expression":
		return c.call(n)

	case "assignment_expression":
		return c.assign(n)

	case "update_expression":
		return c.update(n)

	case "pointer_expression", "unary_expression":
		return c.unary(n)

	case "binary_expression":
		return c.binary(n)

	case "comma_expression":
		x, y := c.expr(n.ChildByFieldName("left")), c.expr(n.ChildByFieldName("right"))

		return &cxx.BinaryExpr{Span: span, Op: ",", X: x, Y: y, Typ: typeOf(y)}

	case "conditional_expression":
		then := c.expr(n.ChildByFieldName("consequence"))

		return &cxx.CondExpr{
			Span: span,
			Cond: c.expr(n.ChildByFieldName("condition")),
			Then: then,
			Else: c.expr(n.ChildByFieldName("alternative")),
			Typ:  typeOf(then),
		}

	case "parenthesized_expression":
		x := c.expr(firstNamedChild(n))
		if x == nil {
			return nil
		}

		return &cxx.ParenExpr{Span: span, X: x}

	case "cast_expression":
		return &cxx.CastExpr{
			Span: span,
			X:    c.expr(n.ChildByFieldName("value")),
			Typ:  c.typeDescriptor(c.file, n.ChildByFieldName("type")),
		}

	case "subscript_expression":
		return c.subscript(n)

	case "new_expression":
		return c.newExpr(n)

	case "lambda_expression":
		return c.lambda(n)

	case "initializer_list":
		return &cxx.InitListExpr{Span: span, Elems: c.args(n)}

	case "compound_literal_expression":
		typ := c.typeDescriptor(c.file, n.ChildByFieldName("type"))

		return &cxx.InitListExpr{Span: span, Elems: c.args(n.ChildByFieldName("value")), Typ: typ}

	case "number_literal":
		return c.literal(n, numberType(c.file.text(n)))

	case "string_literal", "raw_string_literal", "concatenated_string":
		return c.literal(n, cxx.PointerTo(cxx.Named("char", nil).WithConst(true)))

	case "char_literal":
		return c.literal(n, cxx.Named("char", nil))

	case "true", "false":
		return c.literal(n, cxx.Named("bool", nil))

	case "null", "nullptr":
		return c.literal(n, cxx.Named("std::nullptr_t", nil))

	case "user_defined_literal":
		return c.literal(n, nil)

	default:
		return c.other(n)
	}
}

// other converts expressions without a dedicated node, keeping their operands.
func (c *funcCtx) other(n *sitter.Node) cxx.Expr {
	x := &cxx.OtherExpr{Span: c.file.span(n), Kind: n.Type()}

	for child := range namedChildren(n) {
		switch {
		case isTypeNode(child):

		case child.Type() == "argument_list" || child.Type() == "initializer_list":
			x.Operands = append(x.Operands, c.args(child)...)

		default:
			if e := c.expr(child); e != nil {
				x.Operands = append(x.Operands, e)
			}
		}
	}

	switch n.Type() {
	case "sizeof_expression", "alignof_expression":
		x.Typ = cxx.Named("unsigned long", nil)
	}

	return x
}

func (c *funcCtx) literal(n *sitter.Node, typ *cxx.Type) *cxx.Literal {
	return &cxx.Literal{Span: c.file.span(n), Value: c.file.text(n), Typ: typ}
}

func (c *funcCtx) this(span cxx.Span) cxx.Expr {
	if c.rec == nil {
		return &cxx.ThisExpr{Span: span}
	}

	return &cxx.ThisExpr{Span: span, Typ: cxx.PointerTo(cxx.Named(c.rec.Name, c.rec).WithConst(c.constThis()))}
}

// ident binds an unqualified name: locals first, then members, then namespace scope.
func (c *funcCtx) ident(n *sitter.Node) cxx.Expr {
	name, span := c.file.text(n), c.file.span(n)

	if d := c.lookupLocal(name); d != nil {
		return &cxx.Ident{Span: span, Name: name, Decl: d, Typ: d.Type.NonReference()}
	}

	if c.rec != nil {
		if x := c.memberRef(span, name, c.rec); x != nil {
			return x
		}
	}

	return c.global(span, name, name)
}

// global binds a name at namespace scope.
func (c *funcCtx) global(span cxx.Span, spelled, name string) cxx.Expr {
	if d := c.globals[name]; d != nil {
		return &cxx.Ident{Span: span, Name: spelled, Decl: d, Typ: d.Type.NonReference()}
	}

	if fns := c.funcs[name]; len(fns) > 0 {
		return &cxx.Ident{Span: span, Name: spelled, Decl: fns[0]}
	}

	return &cxx.Ident{Span: span, Name: spelled}
}

// memberRef binds a member of rec named without an object expression.
func (c *funcCtx) memberRef(span cxx.Span, name string, rec *cxx.Record) cxx.Expr {
	member := rec.Field(name)
	if member == nil {
		if methods := rec.MethodsNamed(name); len(methods) > 0 {
			member = methods[0]
		}
	}

	switch {
	case member == nil:
		return nil

	case member.Is(cxx.FlagStatic) || !c.hasThis():
		return &cxx.Ident{Span: span, Name: name, Decl: member, Typ: memberType(member)}

	default:
		return &cxx.MemberExpr{Span: span, Name: name, Member: member, Typ: memberType(member)}
	}
}

// qualified binds a qualified name.
func (c *funcCtx) qualified(n *sitter.Node) cxx.Expr {
	span, spelled := c.file.span(n), compact(c.file.text(n))
	scope, last := splitQualified(n)
	name := c.file.text(last)

	if scope == nil {
		return c.global(span, spelled, name)
	}

	if rec := c.lookupRecord(c.file.text(scope)); rec != nil {
		if c.hasThis() && c.rec.DerivesFrom(rec) {
			if x := c.memberRef(span, name, rec); x != nil {
				return x
			}
		}

		if f := rec.Field(name); f != nil {
			return &cxx.Ident{Span: span, Name: spelled, Decl: f, Typ: memberType(f)}
		}

		if methods := rec.MethodsNamed(name); len(methods) > 0 {
			return &cxx.Ident{Span: span, Name: spelled, Decl: methods[0]}
		}

		return &cxx.Ident{Span: span, Name: spelled}
	}

	if isStd(c.file.text(scope)) {
		return &cxx.Ident{Span: span, Name: spelled}
	}

	return c.global(span, spelled, name)
}

// fieldExpr converts a member access through an object expression.
func (c *funcCtx) fieldExpr(n *sitter.Node) *cxx.MemberExpr {
	x := c.expr(n.ChildByFieldName("argument"))
	arrow := c.file.hasToken(n, "->")

	_, last := splitQualified(n.ChildByFieldName("field"))

	var name string

	switch {
	case last == nil:
	case last.Type() == "template_method":
		name = c.file.text(last.ChildByFieldName("name"))
	case last.Type() == "destructor_name":
		name = compact(c.file.text(last))
	default:
		name = c.file.text(last)
	}

	m := &cxx.MemberExpr{Span: c.file.span(n), X: x, Arrow: arrow, Name: name}

	if rec := typeOf(x).ElemRecord(arrow); rec != nil {
		if fd := rec.Field(name); fd != nil {
			m.Member, m.Typ = fd, memberType(fd)
		} else if methods := rec.MethodsNamed(name); len(methods) > 0 {
			m.Member = methods[0]
		}
	}

	return m
}

func (c *funcCtx) subscript(n *sitter.Node) cxx.Expr {
	span := c.file.span(n)
	x := c.expr(n.ChildByFieldName("argument"))

	index := n.ChildByFieldName("index")
	if index == nil {
		index = firstNamedChild(n.ChildByFieldName("indices"))
	}

	idx := c.expr(index)

	if call := c.overloaded(span, "[]", x, idx); call != nil {
		return call
	}

	return &cxx.IndexExpr{Span: span, X: x, Index: idx, Typ: elemType(typeOf(x))}
}

func (c *funcCtx) newExpr(n *sitter.Node) cxx.Expr {
	typ := c.typeDescriptor(c.file, n.ChildByFieldName("type"))
	x := &cxx.NewExpr{
		Span:      c.file.span(n),
		Placement: c.args(n.ChildByFieldName("placement")),
		Typ:       cxx.PointerTo(typ),
	}

	if init := n.ChildByFieldName("arguments"); init != nil {
		x.Init = c.initializer(init, typ)
	}

	return x
}

// lambda converts a lambda expression. Its parameters and locals belong to the lambda.
func (c *funcCtx) lambda(n *sitter.Node) cxx.Expr {
	l := &funcCtx{binder: c.binder, file: c.file, def: c.def, rec: c.rec, scope: &env{parent: c.scope}}
	x := &cxx.LambdaExpr{Span: c.file.span(n)}

	if fn := findType(n.ChildByFieldName("declarator"), "abstract_function_declarator"); fn != nil {
		x.Params, _ = c.params(c.file, fn)
		for _, p := range x.Params {
			l.bind(p)
		}
	}

	if body := n.ChildByFieldName("body"); body != nil {
		x.Body = l.block(body)
	}

	return x
}

func isTypeNode(n *sitter.Node) bool {
	switch n.Type() {
	case "type_descriptor", "primitive_type", "type_identifier", "sized_type_specifier",
		"template_type", "placeholder_type_specifier", "struct_specifier", "class_specifier":
		return true

	default:
		return false
	}
}

func isStd(scope string) bool {
	scope = compact(scope)

	return scope == "std" || scope == "::std"
}

func typeOf(x cxx.Expr) *cxx.Type {
	if x == nil {
		return nil
	}

	return x.Type()
}

// memberType returns the type of an expression naming member.
func memberType(member *cxx.Decl) *cxx.Type {
	if member.IsFunction() {
		return nil
	}

	return member.Type.NonReference()
}

// resultType returns the type of a call to fn.
func resultType(fn *cxx.Decl) *cxx.Type {
	if fn == nil || fn.Is(cxx.FlagConstructor) {
		return nil
	}

	return fn.Type.NonReference()
}

// elemType returns the element type of pointers and arrays.
func elemType(t *cxx.Type) *cxx.Type {
	nr := t.NonReference()
	if nr == nil || nr.Kind != cxx.Pointer && nr.Kind != cxx.Array {
		return nil
	}

	return nr.Elem
}

func numberType(lit string) *cxx.Type {
	if len(lit) > 1 && (lit[1] == 'x' || lit[1] == 'X') {
		return cxx.Named("int", nil)
	}

	for _, r := range lit {
		switch r {
		case '.', 'e', 'E':
			return cxx.Named("double", nil)
		}
	}

	return cxx.Named("int", nil)
}
