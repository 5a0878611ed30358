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

// collector gathers mutations and references of a single function body.
type collector struct {
	changed  Uses
	used     Uses
	receiver List
}

// result returns the collected usage information.
func (c *collector) result() Result {
	return Result{
		changed:  c.changed,
		used:     c.used,
		receiver: c.receiver,
	}
}

// markChanged records the declaration denoted by expr as mutated.
func (c *collector) markChanged(expr cxx.Expr) {
	c.changed.add(Resolve(expr))
}

// markChangedAs records the declaration denoted by expr as mutated through a binding of type t.
func (c *collector) markChangedAs(expr cxx.Expr, t *cxx.Type) {
	u := Resolve(expr)
	u.Type = t
	c.changed.add(u)
}

// markReceiver records an occurrence of the current object.
func (c *collector) markReceiver(n cxx.Node, t *cxx.Type) {
	c.receiver = append(c.receiver, Record{Type: t, Span: cxx.Span{From: n.Pos(), To: n.End()}})
}
