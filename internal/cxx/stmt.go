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

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

type (
	// Block is a compound statement.
	Block struct {
		Span
		List []Stmt
	}

	// DeclStmt declares local variables.
	DeclStmt struct {
		Span
		Decls []*Decl
	}

	// ExprStmt is an expression evaluated for its effects.
	ExprStmt struct {
		Span
		X Expr
	}

	// ReturnStmt is a return statement with an optional result.
	ReturnStmt struct {
		Span
		Result Expr
	}

	// IfStmt is an if statement. Cond is an [Expr] or a [*DeclStmt].
	IfStmt struct {
		Span
		Init Stmt
		Cond Node
		Then Stmt
		Else Stmt
	}

	// ForStmt is a classic for statement.
	ForStmt struct {
		Span
		Init Stmt
		Cond Node
		Post Expr
		Body Stmt
	}

	// RangeStmt is a range-based for statement.
	RangeStmt struct {
		Span
		Var  *Decl
		X    Expr
		Body Stmt
	}

	// WhileStmt is a while or do-while statement.
	WhileStmt struct {
		Span
		Cond Node
		Body Stmt
		Do   bool
	}

	// SwitchStmt is a switch statement.
	SwitchStmt struct {
		Span
		Init Stmt
		Cond Node
		Body Stmt
	}

	// CaseStmt is a case or default label with the statements following it.
	CaseStmt struct {
		Span
		Value Expr
		Body  []Stmt
	}

	// TryStmt is a try block with its handlers.
	TryStmt struct {
		Span
		Body     *Block
		Handlers []*CatchClause
	}

	// CatchClause is an exception handler. Param is nil for catch (...).
	CatchClause struct {
		Span
		Param *Decl
		Body  *Block
	}

	// OtherStmt is a statement without a dedicated node; its children are still visited.
	OtherStmt struct {
		Span
		Kind     string
		Children []Node
	}
)

func (*Block) stmtNode()       {}
func (*DeclStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()    {}
func (*ReturnStmt) stmtNode()  {}
func (*IfStmt) stmtNode()      {}
func (*ForStmt) stmtNode()     {}
func (*RangeStmt) stmtNode()   {}
func (*WhileStmt) stmtNode()   {}
func (*SwitchStmt) stmtNode()  {}
func (*CaseStmt) stmtNode()    {}
func (*TryStmt) stmtNode()     {}
func (*CatchClause) stmtNode() {}
func (*OtherStmt) stmtNode()   {}
