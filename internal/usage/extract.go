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

package usage

import "fillmore-labs.com/constguard/internal/cxx"

// Resolve finds the declaration an expression denotes, together with the type
// it is observed through.
//
// The tree is searched in preorder and the first declaration found wins. A
// member access through an object defers to the object, while a member access
// on the current object denotes the member. The type is taken from the
// outermost cast, address-of or dereference enclosing the declaration, falling
// back to the type of the name itself.
func Resolve(expr cxx.Expr) Usage {
	if expr == nil {
		return Usage{}
	}

	var (
		decl *cxx.Decl
		typ  *cxx.Type
	)

	setType := func(t *cxx.Type) {
		if typ == nil {
			typ = t
		}
	}

	cxx.Inspect(expr, func(n cxx.Node) bool {
		if decl != nil {
			return false
		}

		switch n := n.(type) {
		case *cxx.CastExpr:
			setType(n.Typ)

		case *cxx.UnaryExpr:
			if n.Op == cxx.AddrOf || n.Op == cxx.Deref {
				setType(n.Typ)
			}

		case *cxx.Ident:
			if n.Decl != nil {
				decl = n.Decl.Canonical()
				setType(n.Typ)
			}

			return false

		case *cxx.MemberExpr:
			if n.OnReceiver() && n.Member != nil {
				decl = n.Member.Canonical()
				setType(n.Typ)

				return false
			}

		case *cxx.LambdaExpr:
			return false
		}

		return true
	})

	if decl == nil {
		typ = nil
	}

	return Usage{Decl: decl, Record: Record{Type: typ, Span: cxx.Span{From: expr.Pos(), To: expr.End()}}}
}
