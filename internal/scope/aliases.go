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

package scope

import (
	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/usage"
)

// Aliases resolves the declarations a reference is bound to.
//
// Only direct bindings are followed: the initializer of a reference variable,
// the default member initializer of a reference member and the constructor
// member initializers naming it.
type Aliases struct {
	bindings map[*cxx.Decl][]cxx.Expr
}

// NewAliases indexes the constructor member initializers of unit.
func NewAliases(unit *cxx.Unit) Aliases {
	a := Aliases{bindings: make(map[*cxx.Decl][]cxx.Expr)}

	if unit == nil {
		return a
	}

	for def := range unit.Definitions() {
		for _, init := range def.Inits {
			if init.Member == nil || len(init.Args) != 1 {
				continue
			}

			m := init.Member.Canonical()
			a.bindings[m] = append(a.bindings[m], init.Args[0])
		}
	}

	return a
}

// AliasTargets returns d together with every declaration a reference d is bound to.
func (a Aliases) AliasTargets(d *cxx.Decl) []*cxx.Decl {
	d = d.Canonical()
	targets := []*cxx.Decl{d}

	if !d.Type.IsReference() {
		return targets
	}

	bind := func(e cxx.Expr) {
		if t := usage.Resolve(e).Decl; t != nil {
			targets = appendUnique(targets, t)
		}
	}

	if d.Init != nil {
		bind(unwrapInit(d.Init))
	}

	for _, e := range a.bindings[d] {
		bind(e)
	}

	return targets
}

// unwrapInit looks through a single-element braced initializer.
func unwrapInit(e cxx.Expr) cxx.Expr {
	if l, ok := e.(*cxx.InitListExpr); ok && len(l.Elems) == 1 {
		return l.Elems[0]
	}

	return e
}
