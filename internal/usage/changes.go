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

// inspectChanges finds every declaration the body may mutate:
//   - the target of an assignment
//   - the operand of an increment or decrement
//   - the object of a non-const member function call
//   - arguments bound to a reference or pointer to non-const
//   - placement arguments of new-expressions
func (c *collector) inspectChanges(body cxx.Node) {
	cxx.Inspect(body, func(n cxx.Node) bool {
		switch n := n.(type) {
		// keep-sorted start newline_separated=yes
		case *cxx.AssignExpr:
			c.markChanged(n.LHS)

		case *cxx.CallExpr:
			c.handleCall(n)

		case *cxx.ConstructExpr:
			if n.Ctor != nil {
				c.handleArgs(n.Ctor, n.Args)
			}

		case *cxx.MemberExpr:
			if n.X != nil && isMutatingMethod(n.Member) {
				c.markChanged(n.X)
			}

		case *cxx.NewExpr:
			for _, arg := range n.Placement {
				c.markChanged(arg)
			}

		case *cxx.UnaryExpr:
			if n.Op.IsIncDec() {
				c.markChanged(n.X)
			}

			// keep-sorted end
		}

		return true
	})
}

// handleCall processes the arguments of a call. For member operators the object
// is the first argument and is not matched against the parameter list.
func (c *collector) handleCall(call *cxx.CallExpr) {
	callee := call.Callee
	if callee == nil {
		return
	}

	args := call.Args
	if call.Operator && callee.Kind == cxx.Method {
		if len(args) == 0 {
			return
		}

		if isMutatingMethod(callee) {
			c.markChanged(args[0])
		}

		args = args[1:]
	}

	c.handleArgs(callee, args)
}

// handleArgs marks arguments bound to parameters of reference or pointer to non-const type.
func (c *collector) handleArgs(fn *cxx.Decl, args []cxx.Expr) {
	params := fn.Canonical().Params
	if len(params) == 0 {
		params = fn.Params
	}

	for i, arg := range args {
		if i >= len(params) {
			break
		}

		if t := params[i].Type; t.IsNonConstIndirection() {
			c.markChangedAs(arg, t.Pointee())
		}
	}
}

// isMutatingMethod reports whether calling m may modify its object.
func isMutatingMethod(m *cxx.Decl) bool {
	return m != nil && m.Kind == cxx.Method && !m.Is(cxx.FlagConst) && !m.Is(cxx.FlagStatic)
}
