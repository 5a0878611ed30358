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

import "strings"

//go:generate go tool stringer -type TypeKind -linecomment

// TypeKind classifies a [Type].
type TypeKind uint8

const (
	Plain     TypeKind = iota // plain
	Pointer                   // pointer
	LValueRef                 // lvalue reference
	RValueRef                 // rvalue reference
	Array                     // array
)

// Type is a possibly qualified C++ type.
//
// Plain types carry the spelled name and, for class types, the [Record].
// All other kinds wrap Elem.
type Type struct {
	Kind   TypeKind
	Const  bool
	Name   string
	Record *Record
	Elem   *Type
}

// Named returns a plain type.
func Named(name string, rec *Record) *Type {
	return &Type{Kind: Plain, Name: name, Record: rec}
}

// PointerTo returns a pointer to elem.
func PointerTo(elem *Type) *Type {
	return &Type{Kind: Pointer, Elem: elem}
}

// ReferenceTo returns an lvalue reference to elem.
func ReferenceTo(elem *Type) *Type {
	return &Type{Kind: LValueRef, Elem: elem}
}

// RValueReferenceTo returns an rvalue reference to elem.
func RValueReferenceTo(elem *Type) *Type {
	return &Type{Kind: RValueRef, Elem: elem}
}

// ArrayOf returns an array of elem.
func ArrayOf(elem *Type) *Type {
	return &Type{Kind: Array, Elem: elem}
}

// WithConst returns a copy of t with the top-level const qualifier set to c.
func (t *Type) WithConst(c bool) *Type {
	if t == nil {
		return nil
	}

	u := *t
	u.Const = c

	return &u
}

// IsReference reports whether t is an lvalue or rvalue reference.
func (t *Type) IsReference() bool {
	return t != nil && (t.Kind == LValueRef || t.Kind == RValueRef)
}

// IsPointer reports whether t is a pointer.
func (t *Type) IsPointer() bool {
	return t != nil && t.Kind == Pointer
}

// NonReference strips one level of reference.
func (t *Type) NonReference() *Type {
	if t.IsReference() {
		return t.Elem
	}

	return t
}

// IsConstQualified reports whether the referenced type is const.
func (t *Type) IsConstQualified() bool {
	nr := t.NonReference()
	if nr == nil {
		return false
	}

	if nr.Kind == Array {
		return nr.Elem.IsConstQualified()
	}

	return nr.Const
}

// Pointee returns the referent of a reference or the target of a pointer.
func (t *Type) Pointee() *Type {
	if t == nil {
		return nil
	}

	switch t.Kind {
	case Pointer, LValueRef, RValueRef:
		return t.Elem

	default:
		return nil
	}
}

// IsNonConstIndirection reports whether t is a reference or pointer to a non-const type.
func (t *Type) IsNonConstIndirection() bool {
	p := t.Pointee()

	return p != nil && !p.Const
}

// ElemRecord returns the class of an object, looking through references and one pointer level.
func (t *Type) ElemRecord(throughPointer bool) *Record {
	nr := t.NonReference()
	if nr == nil {
		return nil
	}

	if throughPointer && nr.Kind == Pointer {
		nr = nr.Elem
	}

	if nr == nil || nr.Kind != Plain {
		return nil
	}

	return nr.Record
}

// String renders t the way C++ compilers spell it in diagnostics.
func (t *Type) String() string {
	if t == nil {
		return "<unknown>"
	}

	var b strings.Builder
	t.write(&b)

	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	switch t.Kind {
	case Plain:
		if t.Const {
			b.WriteString("const ")
		}

		b.WriteString(t.Name)

	case Pointer:
		t.Elem.writeInner(b)
		b.WriteString(" *")

		if t.Const {
			b.WriteString("const")
		}

	case LValueRef:
		t.Elem.writeInner(b)
		b.WriteString(" &")

	case RValueRef:
		t.Elem.writeInner(b)
		b.WriteString(" &&")

	case Array:
		t.Elem.writeInner(b)
		b.WriteString("[]")
	}
}

func (t *Type) writeInner(b *strings.Builder) {
	if t == nil {
		b.WriteString("<unknown>")
		return
	}

	t.write(b)
}
