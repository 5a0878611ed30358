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

package cxx_test

import (
	"reflect"
	"testing"

	. "fillmore-labs.com/constguard/internal/cxx"
)

func TestInspect(t *testing.T) {
	t.Parallel()

	x := &Decl{Kind: Var, Name: "x"}
	initX := &Literal{Value: "1"}
	x.Init = initX

	useX := &Ident{Name: "x", Decl: x}
	rhs := &Literal{Value: "2"}
	assign := &AssignExpr{Op: "=", LHS: useX, RHS: rhs}

	lambdaUse := &Ident{Name: "x", Decl: x}
	lambda := &LambdaExpr{Body: &Block{List: []Stmt{&ExprStmt{X: lambdaUse}}}}

	declStmt := &DeclStmt{Decls: []*Decl{x}}
	exprStmt := &ExprStmt{X: assign}
	ifStmt := &IfStmt{Cond: &ParenExpr{X: useX}, Then: &ExprStmt{X: lambda}}
	body := &Block{List: []Stmt{declStmt, exprStmt, ifStmt}}

	var idents []*Ident

	Inspect(body, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			idents = append(idents, id)
		}

		return true
	})

	if want := []*Ident{useX, useX, lambdaUse}; !reflect.DeepEqual(idents, want) {
		t.Errorf("visited idents = %v, want %v", idents, want)
	}

	var literals int

	Inspect(body, func(n Node) bool {
		switch n.(type) {
		case *Literal:
			literals++

		case *AssignExpr:
			return false
		}

		return true
	})

	if literals != 1 {
		t.Errorf("visited %d literals, want 1", literals)
	}
}

func TestPreorder_Break(t *testing.T) {
	t.Parallel()

	a := &Ident{Name: "a"}
	b := &Ident{Name: "b"}
	call := &CallExpr{Fun: a, Args: []Expr{b}}

	var got []Node
	for n := range Preorder(call) {
		got = append(got, n)
		if n == a {
			break
		}
	}

	if want := []Node{call, a}; !reflect.DeepEqual(got, want) {
		t.Errorf("Preorder() = %v, want %v", got, want)
	}
}

func TestMemberExpr_OnReceiver(t *testing.T) {
	t.Parallel()

	this := &ThisExpr{}
	obj := &Ident{Name: "s"}

	tests := []struct {
		name string
		expr *MemberExpr
		want bool
	}{
		{"implicit", &MemberExpr{Name: "m"}, true},
		{"this_arrow", &MemberExpr{X: this, Arrow: true, Name: "m"}, true},
		{"deref_this", &MemberExpr{X: &ParenExpr{X: &UnaryExpr{Op: Deref, X: this}}, Name: "m"}, true},
		{"object", &MemberExpr{X: obj, Name: "m"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.expr.OnReceiver(); got != tt.want {
				t.Errorf("OnReceiver() = %t, want %t", got, tt.want)
			}
		})
	}
}
