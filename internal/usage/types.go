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

import (
	"iter"

	"fillmore-labs.com/constguard/internal/cxx"
)

// Record is a single occurrence of a declaration in code.
type Record struct {
	// Type is the type the declaration is observed through at this occurrence.
	Type *cxx.Type

	// Span is the source range of the occurrence.
	cxx.Span
}

// List is an ordered sequence of occurrences.
type List []Record

// Usage pairs a declaration with one occurrence. Decl is nil when the
// expression denotes no declaration.
type Usage struct {
	Decl *cxx.Decl
	Record
}

// Uses maps canonical declarations to their occurrences, remembering first-seen order.
type Uses struct {
	lists map[*cxx.Decl]List
	order []*cxx.Decl
}

// Lookup returns the occurrences of d.
func (u Uses) Lookup(d *cxx.Decl) (List, bool) {
	l, ok := u.lists[d.Canonical()]

	return l, ok
}

// Len returns the number of distinct declarations.
func (u Uses) Len() int { return len(u.order) }

// All iterates over declarations and occurrences in first-seen order.
func (u Uses) All() iter.Seq2[*cxx.Decl, List] {
	return func(yield func(*cxx.Decl, List) bool) {
		for _, d := range u.order {
			if !yield(d, u.lists[d]) {
				return
			}
		}
	}
}

func (u *Uses) add(us Usage) {
	if us.Decl == nil {
		return
	}

	d := us.Decl.Canonical()
	if u.lists == nil {
		u.lists = make(map[*cxx.Decl]List)
	}

	l, ok := u.lists[d]
	if !ok {
		u.order = append(u.order, d)
	}

	u.lists[d] = append(l, us.Record)
}

// Result is the outcome of analyzing one function body.
type Result struct {
	changed  Uses
	used     Uses
	receiver List
}

// WasChanged reports whether d is mutated in the body.
func (r Result) WasChanged(d *cxx.Decl) bool {
	_, ok := r.changed.Lookup(d)

	return ok
}

// WasReferenced reports whether d is named in the body.
func (r Result) WasReferenced(d *cxx.Decl) bool {
	_, ok := r.used.Lookup(d)

	return ok
}

// ReferencesReceiver reports whether the body uses the current object,
// explicitly or through an implicit member access.
func (r Result) ReferencesReceiver() bool {
	return len(r.receiver) > 0
}

// Changed returns all mutations.
func (r Result) Changed() Uses { return r.changed }

// Used returns all references.
func (r Result) Used() Uses { return r.used }

// Receiver returns the occurrences of the current object.
func (r Result) Receiver() List { return r.receiver }
