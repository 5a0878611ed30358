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
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// call converts a call expression, resolving the callee among the overloads in scope.
func (c *funcCtx) call(n *sitter.Node) cxx.Expr {
	span := c.file.span(n)
	fn := n.ChildByFieldName("function")
	args := c.args(n.ChildByFieldName("arguments"))

	if fn == nil {
		return &cxx.CallExpr{Span: span, Args: args}
	}

	switch fn.Type() {
	case "field_expression":
		m := c.fieldExpr(fn)

		var callee *cxx.Decl

		if rec := typeOf(m.X).ElemRecord(m.Arrow); rec != nil {
			callee = pick(rec.MethodsNamed(m.Name), len(args), isConstObject(typeOf(m.X), m.Arrow))
		}

		if callee == nil {
			if m.Member != nil && !m.Member.IsFunction() {
				return c.callObject(span, m, args)
			}

			return &cxx.CallExpr{Span: span, Fun: m, Args: args}
		}

		m.Member = callee

		return &cxx.CallExpr{Span: span, Fun: m, Callee: callee, Args: args, Typ: resultType(callee)}

	case "identifier", "qualified_identifier":
		return c.callNamed(span, fn, args)

	case "template_function":
		name := fn.ChildByFieldName("name")
		switch c.file.text(name) {
		case "static_cast", "const_cast", "reinterpret_cast", "dynamic_cast":
			var x cxx.Expr
			if len(args) > 0 {
				x = args[0]
			}

			typ := c.typeDescriptor(c.file, firstNamedChild(fn.ChildByFieldName("arguments")))

			return &cxx.CastExpr{Span: span, X: x, Typ: typ}
		}

		return c.callNamed(span, name, args)

	default:
		return c.callObject(span, c.expr(fn), args)
	}
}

// callNamed converts a call of a function designated by an unqualified or qualified name.
func (c *funcCtx) callNamed(span cxx.Span, fn *sitter.Node, args []cxx.Expr) cxx.Expr {
	scope, last := splitQualified(fn)
	name := c.file.text(last)
	fnSpan := c.file.span(fn)

	if scope == nil && fn.Type() == "identifier" {
		if d := c.lookupLocal(name); d != nil {
			return c.callObject(span, c.ident(fn), args)
		}

		if c.rec != nil {
			if c.rec.Field(name) != nil {
				return c.callObject(span, c.ident(fn), args)
			}

			if callee := pick(c.rec.MethodsNamed(name), len(args), c.constThis()); callee != nil {
				return c.callMember(span, fnSpan, name, callee, args)
			}
		}
	}

	if scope != nil {
		scopeName := c.file.text(scope)

		if rec := c.lookupRecord(scopeName); rec != nil {
			if name == rec.Name {
				return c.construct(span, rec, args)
			}

			callee := pick(rec.MethodsNamed(name), len(args), c.constThis())
			if callee == nil {
				return &cxx.CallExpr{Span: span, Fun: &cxx.Ident{Span: fnSpan, Name: compact(c.file.text(fn))}, Args: args}
			}

			if c.hasThis() && c.rec.DerivesFrom(rec) {
				return c.callMember(span, fnSpan, name, callee, args)
			}

			return &cxx.CallExpr{Span: span, Fun: &cxx.Ident{Span: fnSpan, Name: name, Decl: callee}, Callee: callee, Args: args, Typ: resultType(callee)}
		}

		if isStd(scopeName) {
			return c.callLibrary(span, fn, name, args)
		}
	}

	if callee := pick(c.funcs[name], len(args), false); callee != nil {
		return &cxx.CallExpr{Span: span, Fun: &cxx.Ident{Span: fnSpan, Name: name, Decl: callee}, Callee: callee, Args: args, Typ: resultType(callee)}
	}

	if rec := c.records[name]; rec != nil && scope == nil {
		return c.construct(span, rec, args)
	}

	if d := c.globals[name]; d != nil && scope == nil {
		return c.callObject(span, c.ident(fn), args)
	}

	return c.callLibrary(span, fn, name, args)
}

// callMember converts a call of a member function of the current class.
func (c *funcCtx) callMember(span, fnSpan cxx.Span, name string, callee *cxx.Decl, args []cxx.Expr) cxx.Expr {
	var fun cxx.Expr
	if callee.Is(cxx.FlagStatic) || !c.hasThis() {
		fun = &cxx.Ident{Span: fnSpan, Name: name, Decl: callee}
	} else {
		fun = &cxx.MemberExpr{Span: fnSpan, Name: name, Member: callee}
	}

	return &cxx.CallExpr{Span: span, Fun: fun, Callee: callee, Args: args, Typ: resultType(callee)}
}

// callObject converts a call through an object, which may be a function object.
func (c *funcCtx) callObject(span cxx.Span, fun cxx.Expr, args []cxx.Expr) cxx.Expr {
	if call := c.overloaded(span, "()", append([]cxx.Expr{fun}, args...)...); call != nil {
		return call
	}

	return &cxx.CallExpr{Span: span, Fun: fun, Args: args}
}

// libraryMutators are standard library functions modifying arguments bound to non-const references.
var libraryMutators = map[string][]int{
	"swap":     {0, 1},
	"exchange": {0},
	"getline":  {0, 1},
}

// callLibrary converts a call of an undeclared function.
// Known standard library functions get a synthesized declaration describing which arguments they modify.
func (c *funcCtx) callLibrary(span cxx.Span, fn *sitter.Node, name string, args []cxx.Expr) cxx.Expr {
	fun := &cxx.Ident{Span: c.file.span(fn), Name: compact(c.file.text(fn))}

	mutated, ok := libraryMutators[name]
	if !ok {
		return &cxx.CallExpr{Span: span, Fun: fun, Args: args}
	}

	callee := synthesize(name, nil, args, func(i int) bool { return slices.Contains(mutated, i) })
	fun.Decl = callee

	return &cxx.CallExpr{Span: span, Fun: fun, Callee: callee, Args: args}
}

// synthesize declares a library function taking args, by non-const reference where mutates reports so.
func synthesize(name string, result *cxx.Type, args []cxx.Expr, mutates func(int) bool) *cxx.Decl {
	fn := &cxx.Decl{Kind: cxx.Func, Name: name, Type: result, Flags: cxx.FlagUserProvided}

	for i, a := range args {
		elem := typeOf(a).NonReference()
		if elem == nil {
			elem = cxx.Named("auto", nil)
		}

		fn.Params = append(fn.Params, &cxx.Decl{
			Kind: cxx.Param,
			Type: cxx.ReferenceTo(elem.WithConst(!mutates(i))),
		})
	}

	return fn
}

// overloaded converts an operator applied to class operands to a call of the user-declared operator function.
// It returns nil when the built-in operator applies.
func (c *funcCtx) overloaded(span cxx.Span, op string, operands ...cxx.Expr) cxx.Expr {
	if len(operands) == 0 || slices.Contains(operands, nil) {
		return nil
	}

	name := "operator" + op

	if rec := typeOf(operands[0]).ElemRecord(false); rec != nil {
		if callee := pick(rec.MethodsNamed(name), len(operands)-1, isConstObject(typeOf(operands[0]), false)); callee != nil {
			return &cxx.CallExpr{Span: span, Callee: callee, Args: operands, Operator: true, Typ: resultType(callee)}
		}
	}

	if !slices.ContainsFunc(operands, func(x cxx.Expr) bool { return typeOf(x).ElemRecord(false) != nil }) {
		return nil
	}

	for _, callee := range c.funcs[name] {
		if callee.Accepts(len(operands)) {
			return &cxx.CallExpr{Span: span, Callee: callee, Args: operands, Operator: true, Typ: resultType(callee)}
		}
	}

	return nil
}

func (c *funcCtx) assign(n *sitter.Node) cxx.Expr {
	span := c.file.span(n)
	op := c.file.text(n.ChildByFieldName("operator"))
	lhs, rhs := c.expr(n.ChildByFieldName("left")), c.expr(n.ChildByFieldName("right"))

	if op == "" {
		op = "="
	}

	if call := c.overloaded(span, op, lhs, rhs); call != nil {
		return call
	}

	return &cxx.AssignExpr{Span: span, Op: op, LHS: lhs, RHS: rhs, Typ: typeOf(lhs)}
}

func (c *funcCtx) update(n *sitter.Node) cxx.Expr {
	span := c.file.span(n)
	opNode, argNode := n.ChildByFieldName("operator"), n.ChildByFieldName("argument")
	x := c.expr(argNode)
	prefix := opNode != nil && argNode != nil && opNode.StartByte() < argNode.StartByte()
	inc := c.file.text(opNode) == "++"

	var op cxx.UnaryOp

	switch {
	case prefix && inc:
		op = cxx.PreInc
	case prefix:
		op = cxx.PreDec
	case inc:
		op = cxx.PostInc
	default:
		op = cxx.PostDec
	}

	operands := []cxx.Expr{x}
	if !prefix {
		operands = append(operands, &cxx.Literal{Span: c.file.span(opNode), Value: "0", Typ: cxx.Named("int", nil)})
	}

	if call := c.overloaded(span, c.file.text(opNode), operands...); call != nil {
		return call
	}

	return &cxx.UnaryExpr{Span: span, Op: op, X: x, Typ: typeOf(x)}
}

var unaryOps = map[string]cxx.UnaryOp{
	"&":     cxx.AddrOf,
	"*":     cxx.Deref,
	"+":     cxx.Plus,
	"-":     cxx.Minus,
	"!":     cxx.Not,
	"not":   cxx.Not,
	"~":     cxx.Compl,
	"compl": cxx.Compl,
}

func (c *funcCtx) unary(n *sitter.Node) cxx.Expr {
	span := c.file.span(n)
	spelled := c.file.text(n.ChildByFieldName("operator"))
	x := c.expr(n.ChildByFieldName("argument"))

	op, ok := unaryOps[spelled]
	if !ok {
		return c.other(n)
	}

	if op != cxx.AddrOf {
		if call := c.overloaded(span, spelled, x); call != nil {
			return call
		}
	}

	var typ *cxx.Type

	switch op {
	case cxx.AddrOf:
		if t := typeOf(x); t != nil {
			typ = cxx.PointerTo(t)
		}

	case cxx.Deref:
		typ = elemType(typeOf(x))

	case cxx.Not:
		typ = cxx.Named("bool", nil)

	default:
		typ = typeOf(x)
	}

	return &cxx.UnaryExpr{Span: span, Op: op, X: x, Typ: typ}
}

func (c *funcCtx) binary(n *sitter.Node) cxx.Expr {
	span := c.file.span(n)
	op := c.file.text(n.ChildByFieldName("operator"))
	x, y := c.expr(n.ChildByFieldName("left")), c.expr(n.ChildByFieldName("right"))

	if call := c.overloaded(span, op, x, y); call != nil {
		return call
	}

	if op == ">>" && isInputStream(x) && y != nil {
		callee := synthesize("operator>>", cxx.Named("std::istream", nil), []cxx.Expr{x, y}, func(int) bool { return true })

		return &cxx.CallExpr{Span: span, Callee: callee, Args: []cxx.Expr{x, y}, Operator: true, Typ: callee.Type}
	}

	var typ *cxx.Type

	switch op {
	case "==", "!=", "<", ">", "<=", ">=", "&&", "||", "and", "or", "not_eq":
		typ = cxx.Named("bool", nil)

	default:
		typ = typeOf(x).NonReference()
	}

	return &cxx.BinaryExpr{Span: span, Op: op, X: x, Y: y, Typ: typ}
}

// isInputStream reports whether x denotes a standard input stream.
func isInputStream(x cxx.Expr) bool {
	if id, ok := cxx.Unparen(x).(*cxx.Ident); ok && id.Decl == nil {
		switch id.Name {
		case "cin", "std::cin", "wcin", "std::wcin":
			return true
		}
	}

	t := typeOf(x).NonReference()
	if t == nil || t.Kind != cxx.Plain || t.Record != nil {
		return false
	}

	name := baseName(t.Name)

	return strings.HasSuffix(name, "stream") && !strings.HasPrefix(name, "o")
}

// isConstObject reports whether an object expression of type t designates a const object.
func isConstObject(t *cxx.Type, arrow bool) bool {
	nr := t.NonReference()
	if arrow {
		nr = elemType(nr)
	}

	return nr != nil && nr.Const
}

// pick selects the overload for a call with n arguments, preferring the one matching the constness of the object.
func pick(candidates []*cxx.Decl, n int, constObject bool) *cxx.Decl {
	var viable *cxx.Decl

	for _, d := range candidates {
		if !d.Accepts(n) {
			continue
		}

		if d.Is(cxx.FlagConst) == constObject {
			return d
		}

		if viable == nil {
			viable = d
		}
	}

	if viable != nil || len(candidates) == 0 {
		return viable
	}

	return candidates[0]
}
