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
	"testing"

	. "fillmore-labs.com/constguard/internal/cxx"
)

func TestType_IsConstQualified(t *testing.T) {
	t.Parallel()

	intT := Named("int", nil)
	constInt := intT.WithConst(true)

	tests := []struct {
		name string
		typ  *Type
		want bool
	}{
		{"plain", intT, false},
		{"const", constInt, true},
		{"reference", ReferenceTo(intT), false},
		{"const_reference", ReferenceTo(constInt), true},
		{"pointer_to_const", PointerTo(constInt), false},
		{"const_pointer", PointerTo(intT).WithConst(true), true},
		{"const_array", ArrayOf(constInt), true},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.typ.IsConstQualified(); got != tt.want {
				t.Errorf("IsConstQualified(%v) = %t, want %t", tt.typ, got, tt.want)
			}
		})
	}
}

func TestType_IsNonConstIndirection(t *testing.T) {
	t.Parallel()

	intT := Named("int", nil)

	tests := []struct {
		name string
		typ  *Type
		want bool
	}{
		{"value", intT, false},
		{"reference", ReferenceTo(intT), true},
		{"rvalue_reference", RValueReferenceTo(intT), true},
		{"const_reference", ReferenceTo(intT.WithConst(true)), false},
		{"pointer", PointerTo(intT), true},
		{"const_pointer_to_int", PointerTo(intT).WithConst(true), true},
		{"pointer_to_const", PointerTo(intT.WithConst(true)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.typ.IsNonConstIndirection(); got != tt.want {
				t.Errorf("IsNonConstIndirection(%v) = %t, want %t", tt.typ, got, tt.want)
			}
		})
	}
}

func TestType_String(t *testing.T) {
	t.Parallel()

	intT := Named("int", nil)

	tests := []struct {
		typ  *Type
		want string
	}{
		{intT, "int"},
		{intT.WithConst(true), "const int"},
		{ReferenceTo(intT), "int &"},
		{ReferenceTo(Named("Simple", nil).WithConst(true)), "const Simple &"},
		{PointerTo(intT).WithConst(true), "int *const"},
		{RValueReferenceTo(intT), "int &&"},
		{PointerTo(PointerTo(intT)), "int * *"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestType_ElemRecord(t *testing.T) {
	t.Parallel()

	rec := &Record{Name: "Simple"}
	obj := Named("Simple", rec)

	if got := ReferenceTo(obj).ElemRecord(false); got != rec {
		t.Errorf("ElemRecord(reference) = %v, want %v", got, rec)
	}

	if got := PointerTo(obj).ElemRecord(false); got != nil {
		t.Errorf("ElemRecord(pointer, false) = %v, want nil", got)
	}

	if got := PointerTo(obj).ElemRecord(true); got != rec {
		t.Errorf("ElemRecord(pointer, true) = %v, want %v", got, rec)
	}
}
