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

func TestDecl_Redeclare(t *testing.T) {
	t.Parallel()

	rec := &Record{Name: "Simple"}
	decl := &Decl{Kind: Method, Name: "get", Record: rec, Flags: FlagConst | FlagUserProvided}
	def := &Decl{Kind: Method, Name: "get", Flags: FlagUserProvided, Body: &Block{}}

	def.Redeclare(decl)

	if got := def.Canonical(); got != decl {
		t.Errorf("Canonical() = %v, want %v", got, decl)
	}

	if !def.Is(FlagConst) {
		t.Error("definition should inherit const")
	}

	if def.Record != rec {
		t.Errorf("Record = %v, want %v", def.Record, rec)
	}

	if got := decl.Canonical(); got != decl {
		t.Errorf("canonical of canonical = %v, want itself", got)
	}
}

func TestDecl_Accepts(t *testing.T) {
	t.Parallel()

	fn := &Decl{
		Kind: Func,
		Name: "f",
		Params: []*Decl{
			{Kind: Param, Name: "a"},
			{Kind: Param, Name: "b", Flags: FlagDefaultArg},
		},
	}

	for n, want := range []bool{false, true, true, false} {
		if got := fn.Accepts(n); got != want {
			t.Errorf("Accepts(%d) = %t, want %t", n, got, want)
		}
	}
}

func TestDecl_QualifiedName(t *testing.T) {
	t.Parallel()

	rec := &Record{Name: "Simple"}

	if got, want := (&Decl{Kind: Field, Name: "m_id", Record: rec}).QualifiedName(), "Simple::m_id"; got != want {
		t.Errorf("QualifiedName() = %q, want %q", got, want)
	}

	if got, want := (&Decl{Kind: Var, Name: "i"}).QualifiedName(), "i"; got != want {
		t.Errorf("QualifiedName() = %q, want %q", got, want)
	}
}

func TestRecord_Lookup(t *testing.T) {
	t.Parallel()

	base := &Record{Name: "Base"}
	baseField := &Decl{Kind: Field, Name: "x", Record: base}
	baseGet := &Decl{Kind: Method, Name: "get", Record: base}
	base.Fields = []*Decl{baseField}
	base.Methods = []*Decl{baseGet}

	derived := &Record{Name: "Derived", Bases: []*Record{base}}
	derivedGet := &Decl{Kind: Method, Name: "get", Record: derived}
	ctor := &Decl{Kind: Method, Name: "Derived", Record: derived, Flags: FlagConstructor}
	derived.Methods = []*Decl{ctor, derivedGet}

	if got := derived.Field("x"); got != baseField {
		t.Errorf("Field(x) = %v, want %v", got, baseField)
	}

	if got := derived.Field("y"); got != nil {
		t.Errorf("Field(y) = %v, want nil", got)
	}

	if got, want := derived.MethodsNamed("get"), []*Decl{derivedGet}; !reflect.DeepEqual(got, want) {
		t.Errorf("MethodsNamed(get) = %v, want %v", got, want)
	}

	if got, want := derived.Constructors(), []*Decl{ctor}; !reflect.DeepEqual(got, want) {
		t.Errorf("Constructors() = %v, want %v", got, want)
	}

	if !derived.DerivesFrom(base) || base.DerivesFrom(derived) {
		t.Error("DerivesFrom reports wrong hierarchy")
	}
}
