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

package cxx

// Expr is an expression with the type it evaluates to.
type Expr interface {
	Node
	Type() *Type
	exprNode()
}

//go:generate go tool stringer -type UnaryOp -linecomment

// UnaryOp is the operator of a [UnaryExpr].
type UnaryOp uint8

const (
	AddrOf  UnaryOp = iota // &
	Deref                  // *
	PreInc                 // ++
	PreDec                 // --
	PostInc                // ++ (postfix)
	PostDec                // -- (postfix)
	Plus                   // +
	Minus                  // -
	Not                    // !
	Compl                  // ~
)

// IsIncDec reports whether op increments or decrements its operand.
func (op UnaryOp) IsIncDec() bool {
	switch op {
	case PreInc, PreDec, PostInc, PostDec:
		return true

	default:
		return false
	}
}

type (
	// Ident is a name referring to a declaration. Decl is nil when the name could not be bound.
	Ident struct {
		Span
		Name string
		Decl *Decl
		Typ  *Type
	}

	// ThisExpr is the this pointer.
	ThisExpr struct {
		Span
		Typ *Type
	}

	// MemberExpr is a member access. X is nil for an implicit this->member.
	MemberExpr struct {
		Span
		X      Expr
		Arrow  bool
		Name   string
		Member *Decl
		Typ    *Type
	}

	// AssignExpr is a built-in simple or compound assignment.
	AssignExpr struct {
		Span
		Op       string
		LHS, RHS Expr
		Typ      *Type
	}

	// UnaryExpr is a built-in unary operation.
	UnaryExpr struct {
		Span
		Op  UnaryOp
		X   Expr
		Typ *Type
	}

	// BinaryExpr is a built-in binary operation, including the comma operator.
	BinaryExpr struct {
		Span
		Op   string
		X, Y Expr
		Typ  *Type
	}

	// CallExpr is a function call. For overloaded operators Operator is set,
	// Fun is nil and the operands are the arguments, the object first for member operators.
	CallExpr struct {
		Span
		Fun      Expr
		Callee   *Decl
		Args     []Expr
		Operator bool
		Typ      *Type
	}

	// ConstructExpr is an object construction.
	ConstructExpr struct {
		Span
		Ctor *Decl
		Args []Expr
		Typ  *Type
	}

	// NewExpr is a new-expression.
	NewExpr struct {
		Span
		Placement []Expr
		Init      Expr
		Typ       *Type
	}

	// CastExpr is an explicit conversion.
	CastExpr struct {
		Span
		X   Expr
		Typ *Type
	}

	// ParenExpr is a parenthesized expression.
	ParenExpr struct {
		Span
		X Expr
	}

	// IndexExpr is a built-in subscript.
	IndexExpr struct {
		Span
		X, Index Expr
		Typ      *Type
	}

	// CondExpr is the conditional operator.
	CondExpr struct {
		Span
		Cond, Then, Else Expr
		Typ              *Type
	}

	// InitListExpr is a braced initializer list.
	InitListExpr struct {
		Span
		Elems []Expr
		Typ   *Type
	}

	// LambdaExpr is a lambda expression.
	LambdaExpr struct {
		Span
		Params []*Decl
		Body   *Block
	}

	// Literal is a literal constant.
	Literal struct {
		Span
		Value string
		Typ   *Type
	}

	// OtherExpr is an expression without a dedicated node; its operands are still visited.
	OtherExpr struct {
		Span
		Kind     string
		Operands []Expr
		Typ      *Type
	}
)

func (x *Ident) Type() *Type         { return x.Typ }
func (x *ThisExpr) Type() *Type      { return x.Typ }
func (x *MemberExpr) Type() *Type    { return x.Typ }
func (x *AssignExpr) Type() *Type    { return x.Typ }
func (x *UnaryExpr) Type() *Type     { return x.Typ }
func (x *BinaryExpr) Type() *Type    { return x.Typ }
func (x *CallExpr) Type() *Type      { return x.Typ }
func (x *ConstructExpr) Type() *Type { return x.Typ }
func (x *NewExpr) Type() *Type       { return x.Typ }
func (x *CastExpr) Type() *Type      { return x.Typ }
func (x *IndexExpr) Type() *Type     { return x.Typ }
func (x *CondExpr) Type() *Type      { return x.Typ }
func (x *InitListExpr) Type() *Type  { return x.Typ }
func (x *LambdaExpr) Type() *Type    { return nil }
func (x *Literal) Type() *Type       { return x.Typ }
func (x *OtherExpr) Type() *Type     { return x.Typ }

func (x *ParenExpr) Type() *Type {
	if x.X == nil {
		return nil
	}

	return x.X.Type()
}

func (*Ident) exprNode()         {}
func (*ThisExpr) exprNode()      {}
func (*MemberExpr) exprNode()    {}
func (*AssignExpr) exprNode()    {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*CallExpr) exprNode()      {}
func (*ConstructExpr) exprNode() {}
func (*NewExpr) exprNode()       {}
func (*CastExpr) exprNode()      {}
func (*ParenExpr) exprNode()     {}
func (*IndexExpr) exprNode()     {}
func (*CondExpr) exprNode()      {}
func (*InitListExpr) exprNode()  {}
func (*LambdaExpr) exprNode()    {}
func (*Literal) exprNode()       {}
func (*OtherExpr) exprNode()     {}

// Unparen strips enclosing parentheses.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpr)
		if !ok {
			return e
		}

		e = p.X
	}
}

// Implicit reports whether x accesses a member of the current object without naming it.
func (x *MemberExpr) Implicit() bool { return x.X == nil }

// OnReceiver reports whether x accesses a member of the current object,
// as in member, this->member or (*this).member.
func (x *MemberExpr) OnReceiver() bool {
	if x.X == nil {
		return true
	}

	switch base := Unparen(x.X).(type) {
	case *ThisExpr:
		return true

	case *UnaryExpr:
		_, ok := Unparen(base.X).(*ThisExpr)
		return ok && base.Op == Deref

	default:
		return false
	}
}
