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

import "iter"

// Inspect traverses the tree rooted at root in depth-first order, calling f for each node.
// Children are skipped when f returns false.
//
// The initializers of declared variables and the bodies of lambdas are part of the tree.
func Inspect(root Node, f func(Node) bool) {
	w := walker(f)
	w.node(root)
}

// Preorder returns an iterator over all nodes of the tree rooted at root.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		done := false
		Inspect(root, func(n Node) bool {
			if done {
				return false
			}

			if !yield(n) {
				done = true
				return false
			}

			return true
		})
	}
}

type walker func(Node) bool

func (w walker) node(n Node) {
	if n == nil || !w(n) {
		return
	}

	switch n := n.(type) {
	case *Ident, *ThisExpr, *Literal:

	case *MemberExpr:
		w.expr(n.X)

	case *AssignExpr:
		w.expr(n.LHS)
		w.expr(n.RHS)

	case *UnaryExpr:
		w.expr(n.X)

	case *BinaryExpr:
		w.expr(n.X)
		w.expr(n.Y)

	case *CallExpr:
		w.expr(n.Fun)
		w.exprs(n.Args)

	case *ConstructExpr:
		w.exprs(n.Args)

	case *NewExpr:
		w.exprs(n.Placement)
		w.expr(n.Init)

	case *CastExpr:
		w.expr(n.X)

	case *ParenExpr:
		w.expr(n.X)

	case *IndexExpr:
		w.expr(n.X)
		w.expr(n.Index)

	case *CondExpr:
		w.expr(n.Cond)
		w.expr(n.Then)
		w.expr(n.Else)

	case *InitListExpr:
		w.exprs(n.Elems)

	case *LambdaExpr:
		w.block(n.Body)

	case *OtherExpr:
		w.exprs(n.Operands)

	case *Decl:
		w.expr(n.Init)

	case *Block:
		w.stmts(n.List)

	case *DeclStmt:
		for _, d := range n.Decls {
			if d != nil {
				w.node(d)
			}
		}

	case *ExprStmt:
		w.expr(n.X)

	case *ReturnStmt:
		w.expr(n.Result)

	case *IfStmt:
		w.stmt(n.Init)
		w.node(n.Cond)
		w.stmt(n.Then)
		w.stmt(n.Else)

	case *ForStmt:
		w.stmt(n.Init)
		w.node(n.Cond)
		w.expr(n.Post)
		w.stmt(n.Body)

	case *RangeStmt:
		if n.Var != nil {
			w.node(n.Var)
		}

		w.expr(n.X)
		w.stmt(n.Body)

	case *WhileStmt:
		w.node(n.Cond)
		w.stmt(n.Body)

	case *SwitchStmt:
		w.stmt(n.Init)
		w.node(n.Cond)
		w.stmt(n.Body)

	case *CaseStmt:
		w.expr(n.Value)
		w.stmts(n.Body)

	case *TryStmt:
		w.block(n.Body)

		for _, h := range n.Handlers {
			if h != nil {
				w.node(h)
			}
		}

	case *CatchClause:
		if n.Param != nil {
			w.node(n.Param)
		}

		w.block(n.Body)

	case *OtherStmt:
		for _, c := range n.Children {
			w.node(c)
		}
	}
}

func (w walker) expr(e Expr) {
	if e != nil {
		w.node(e)
	}
}

func (w walker) exprs(list []Expr) {
	for _, e := range list {
		w.expr(e)
	}
}

func (w walker) stmt(s Stmt) {
	if s != nil {
		w.node(s)
	}
}

func (w walker) stmts(list []Stmt) {
	for _, s := range list {
		w.stmt(s)
	}
}

func (w walker) block(b *Block) {
	if b != nil {
		w.node(b)
	}
}
