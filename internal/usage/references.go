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

// inspectReferences finds every named declaration and every use of the current object.
func (c *collector) inspectReferences(body cxx.Node) {
	cxx.Inspect(body, func(n cxx.Node) bool {
		switch n := n.(type) {
		case *cxx.Ident:
			c.used.add(Resolve(n))

		case *cxx.MemberExpr:
			if n.OnReceiver() && n.Member != nil {
				c.used.add(Usage{
					Decl:   n.Member,
					Record: Record{Type: n.Typ, Span: cxx.Span{From: n.Pos(), To: n.End()}},
				})
			}

			if n.Implicit() {
				c.markReceiver(n, nil)
			}

		case *cxx.ThisExpr:
			c.markReceiver(n, n.Typ)
		}

		return true
	})
}
