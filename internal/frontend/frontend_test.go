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

//go:build cgo

package frontend_test

import (
	"context"
	"errors"
	"go/token"
	"testing"

	"fillmore-labs.com/constguard/internal/cxx"
	. "fillmore-labs.com/constguard/internal/frontend"
	"fillmore-labs.com/constguard/internal/testsource"
)

const simple = `
class Simple {
public:
  Simple(int v) : m_value(v) {}
  int get() const { return m_value; }
  int& ref();
  void set(int v);
  static int count();
  virtual void draw() {}
  Simple& operator=(const Simple& other);
  operator bool() const { return m_value != 0; }
  ~Simple() = default;

private:
  int m_value;
  static int s_count;
};

int& Simple::ref() { return m_value; }
void Simple::set(int v) { m_value = v; }
int Simple::count() { return s_count; }
`

func TestRecord(t *testing.T) {
	t.Parallel()

	unit := testsource.Parse(t, simple)
	rec := testsource.Record(t, unit, "Simple")

	if got := len(rec.Fields); got != 2 {
		t.Fatalf("Got %d fields, expected 2", got)
	}

	if !rec.Fields[1].Flags.Has(cxx.FlagStatic) {
		t.Errorf("Expected %s to be static", rec.Fields[1])
	}

	tests := []struct {
		name  string
		flags cxx.Flags
		not   cxx.Flags
	}{
		{"Simple", cxx.FlagConstructor | cxx.FlagUserProvided, cxx.FlagConst},
		{"get", cxx.FlagConst, cxx.FlagStatic},
		{"ref", cxx.FlagUserProvided, cxx.FlagConst},
		{"count", cxx.FlagStatic, cxx.FlagConst},
		{"draw", cxx.FlagVirtual, 0},
		{"operator=", cxx.FlagOperator | cxx.FlagCopyAssign, 0},
		{"operator bool", cxx.FlagConversion | cxx.FlagConst, 0},
		{"~Simple", cxx.FlagDestructor, cxx.FlagUserProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			methods := rec.MethodsNamed(tt.name)
			if len(methods) != 1 {
				t.Fatalf("Got %d methods named %q, expected 1", len(methods), tt.name)
			}

			m := methods[0]
			if !m.Flags.Has(tt.flags) {
				t.Errorf("Got flags %b, expected %b", m.Flags, tt.flags)
			}

			if tt.not != 0 && m.Flags&tt.not != 0 {
				t.Errorf("Got flags %b, expected none of %b", m.Flags, tt.not)
			}
		})
	}
}

func TestOutOfLine(t *testing.T) {
	t.Parallel()

	unit := testsource.Parse(t, simple)

	set := testsource.Function(t, unit, "Simple::set")
	canonical := set.Canonical()

	if canonical == set {
		t.Fatal("Expected out-of-line definition to be linked to its declaration")
	}

	if canonical.IsDefinition() {
		t.Error("Expected canonical declaration without body")
	}

	if !canonical.SpecPos.IsValid() || !set.ParamsEnd.IsValid() {
		t.Error("Expected valid fix positions")
	}

	count := testsource.Function(t, unit, "Simple::count")
	if !count.Is(cxx.FlagStatic) {
		t.Error("Expected static to be inherited from the declaration")
	}

	stmt, ok := set.Body.List[0].(*cxx.ExprStmt)
	if !ok {
		t.Fatalf("Got %T, expected expression statement", set.Body.List[0])
	}

	assign, ok := stmt.X.(*cxx.AssignExpr)
	if !ok {
		t.Fatalf("Got %T, expected assignment", stmt.X)
	}

	member, ok := assign.LHS.(*cxx.MemberExpr)
	if !ok || !member.Implicit() || member.Member == nil || member.Member.Name != "m_value" {
		t.Errorf("Got %#v, expected implicit member access to m_value", assign.LHS)
	}

	ret := testsource.Function(t, unit, "Simple::count").Body.List[0].(*cxx.ReturnStmt)
	if id, ok := ret.Result.(*cxx.Ident); !ok || id.Decl == nil || id.Decl.Name != "s_count" {
		t.Errorf("Got %#v, expected static member reference", ret.Result)
	}
}

func TestMemberInit(t *testing.T) {
	t.Parallel()

	unit := testsource.Parse(t, simple)
	ctor := testsource.Function(t, unit, "Simple::Simple")

	if len(ctor.Inits) != 1 {
		t.Fatalf("Got %d member initializers, expected 1", len(ctor.Inits))
	}

	init := ctor.Inits[0]
	if init.Member == nil || init.Member.Name != "m_value" {
		t.Errorf("Got member %v, expected m_value", init.Member)
	}

	if len(init.Args) != 1 {
		t.Fatalf("Got %d arguments, expected 1", len(init.Args))
	}

	if id, ok := init.Args[0].(*cxx.Ident); !ok || id.Decl != ctor.Params[0] {
		t.Errorf("Got %#v, expected parameter reference", init.Args[0])
	}
}

func TestDefaultMemberInit(t *testing.T) {
	t.Parallel()

	const src = `
struct Counter {
  int m_count = 0;
  int m_limit = 10;
  int m_step{1};
  void reset() { m_count = 0; }
};
`

	unit := testsource.Parse(t, src)
	rec := testsource.Record(t, unit, "Counter")

	want := []struct {
		name  string
		value string
	}{
		{"m_count", "0"},
		{"m_limit", "10"},
		{"m_step", ""},
	}

	if len(rec.Fields) != len(want) {
		t.Fatalf("Got %d fields, expected %d", len(rec.Fields), len(want))
	}

	for i, w := range want {
		field := rec.Fields[i]
		if field.Name != w.name {
			t.Errorf("Got field %q at %d, expected %q", field.Name, i, w.name)
		}

		if field.Init == nil {
			t.Errorf("Expected initializer for %s", field.Name)
			continue
		}

		if w.value == "" {
			continue
		}

		if lit, ok := field.Init.(*cxx.Literal); !ok || lit.Value != w.value {
			t.Errorf("Got initializer %#v for %s, expected literal %s", field.Init, field.Name, w.value)
		}
	}

	if got := len(rec.MethodsNamed("m_count")); got != 0 {
		t.Errorf("Got %d methods named m_count, expected none", got)
	}
}

func TestDirectInit(t *testing.T) {
	t.Parallel()

	const src = `
struct W {
  W(int& r);
};

struct T {};

void f() {
  int x = 1;
  W w(x);
  int y(x);
  W g(T);
}
`

	unit := testsource.Parse(t, src)
	fn := testsource.Function(t, unit, "f")

	byName := make(map[string]*cxx.Decl)
	for _, l := range fn.Locals {
		byName[l.Name] = l
	}

	if _, ok := byName["g"]; ok {
		t.Error("Expected function declaration g to be skipped")
	}

	x, w, y := byName["x"], byName["w"], byName["y"]
	if x == nil || w == nil || y == nil {
		t.Fatalf("Got locals %v, expected x, w and y", fn.Locals)
	}

	ctor, ok := w.Init.(*cxx.ConstructExpr)
	if !ok {
		t.Fatalf("Got %T, expected constructor call", w.Init)
	}

	if ctor.Ctor == nil || len(ctor.Args) != 1 {
		t.Fatalf("Got %#v, expected constructor with one argument", ctor)
	}

	if id, ok := ctor.Args[0].(*cxx.Ident); !ok || id.Decl != x {
		t.Errorf("Got %#v, expected reference to x", ctor.Args[0])
	}

	if id, ok := y.Init.(*cxx.Ident); !ok || id.Decl != x {
		t.Errorf("Got %#v, expected reference to x", y.Init)
	}
}

func TestLocals(t *testing.T) {
	t.Parallel()

	const src = `
int f(int* p, const int& r) {
  int a = 1, b = 2;
  const int c = 3;
  int* q = &a;
  auto& d = c;
  for (int i = 0; i < 3; ++i) {
    int inner = i;
  }
  auto l = [&](int x) { int y = x; return y; };
  return a + b + c + *q + d + r + *p + l(1);
}
`

	unit := testsource.Parse(t, src)
	fn := testsource.Function(t, unit, "f")

	want := []struct {
		name    string
		typ     string
		specPos bool
		isConst bool
	}{
		{"a", "int", false, false},
		{"b", "int", false, false},
		{"c", "const int", true, true},
		{"q", "int *", true, false},
		{"d", "const int &", true, true},
		{"l", "auto", true, false},
		{"i", "int", true, false},
		{"inner", "int", true, false},
	}

	byName := make(map[string]*cxx.Decl)
	for _, l := range fn.Locals {
		byName[l.Name] = l
	}

	if _, ok := byName["y"]; ok {
		t.Error("Lambda locals should not belong to the enclosing function")
	}

	for _, w := range want {
		l, ok := byName[w.name]
		if !ok {
			t.Errorf("Missing local %q", w.name)
			continue
		}

		if w.name == "l" {
			continue
		}

		if got := l.Type.String(); got != w.typ {
			t.Errorf("Got type %q for %s, expected %q", got, w.name, w.typ)
		}

		if got := l.SpecPos.IsValid(); got != w.specPos {
			t.Errorf("Got valid SpecPos %t for %s, expected %t", got, w.name, w.specPos)
		}

		if got := l.Type.IsConstQualified(); got != w.isConst {
			t.Errorf("Got const %t for %s, expected %t", got, w.name, w.isConst)
		}
	}

	if got := fn.Params[1].Type.String(); got != "const int &" {
		t.Errorf("Got parameter type %q, expected %q", got, "const int &")
	}
}

func TestMethodCalls(t *testing.T) {
	t.Parallel()

	const src = `
struct V {
  int get() const;
  int& get();
  void set(int);
  V& operator+=(const V&);
};

void g(V& v, const V& c) {
  v.set(1);
  c.get();
  v += c;
}
`

	unit := testsource.Parse(t, src)
	g := testsource.Function(t, unit, "g")

	calls := make([]*cxx.CallExpr, 0, 3)
	for n := range cxx.Preorder(g.Body) {
		if call, ok := n.(*cxx.CallExpr); ok {
			calls = append(calls, call)
		}
	}

	if len(calls) != 3 {
		t.Fatalf("Got %d calls, expected 3", len(calls))
	}

	if c := calls[0].Callee; c == nil || c.Name != "set" {
		t.Errorf("Got callee %v, expected set", c)
	}

	if c := calls[1].Callee; c == nil || !c.Flags.Has(cxx.FlagConst) {
		t.Errorf("Got callee %v, expected const overload of get", c)
	}

	if c := calls[2]; !c.Operator || c.Callee == nil || c.Callee.Name != "operator+=" || len(c.Args) != 2 {
		t.Errorf("Got %#v, expected member operator call", c)
	}
}

func TestInclude(t *testing.T) {
	t.Parallel()

	const archive = `
-- main.cpp --
#include "a.h"
#include <vector>

int A::value() { return m_v; }
-- a.h --
#pragma once
struct A {
  int value();
  int m_v;
};
`

	unit := testsource.ParseArchive(t, archive)

	rec := testsource.Record(t, unit, "A")
	if rec.InMain {
		t.Error("Expected class from header not to be in main file")
	}

	def := testsource.Function(t, unit, "A::value")
	if !def.InMain {
		t.Error("Expected definition to be in main file")
	}

	if def.Canonical().InMain {
		t.Error("Expected declaration to be in header")
	}
}

func TestComments(t *testing.T) {
	t.Parallel()

	unit := testsource.Parse(t, "int x; // NOLINT\n/* block */\n")

	if got := len(unit.Comments); got != 2 {
		t.Fatalf("Got %d comments, expected 2", got)
	}

	if got := unit.Comments[0].Text; got != "// NOLINT" {
		t.Errorf("Got %q, expected %q", got, "// NOLINT")
	}
}

func TestCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Parse(ctx, token.NewFileSet(), "test.cpp", []byte("int main() { return 0; }"), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Got error %v, expected %v", err, context.Canceled)
	}
}

func TestCheckLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		ok   bool
	}{
		{"a.cpp", true},
		{"a.cc", true},
		{"a.C", true},
		{"a.hpp", true},
		{"a.h", true},
		{"a.c", false},
		{"a.go", false},
	}

	for _, tt := range tests {
		err := CheckLanguage(tt.path)
		if got := err == nil; got != tt.ok {
			t.Errorf("CheckLanguage(%q) = %v, expected ok=%t", tt.path, err, tt.ok)
		}

		if err != nil && !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("Got error %v, expected %v", err, ErrUnsupportedLanguage)
		}
	}
}
