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

import (
	"go/token"
	"iter"
	"slices"
)

//go:generate go tool stringer -type DeclKind -linecomment

// DeclKind classifies a [Decl].
type DeclKind uint8

const (
	Var    DeclKind = iota // variable
	Param                  // parameter
	Field                  // field
	Func                   // function
	Method                 // method
)

// Flags are declaration properties.
type Flags uint16

const (
	// FlagConst marks a const member function.
	FlagConst Flags = 1 << iota

	// FlagStatic marks a static member function, data member or variable.
	FlagStatic

	// FlagVirtual marks a virtual member function.
	FlagVirtual

	// FlagUserProvided marks a function that is neither defaulted nor deleted.
	FlagUserProvided

	// FlagConstructor marks a constructor.
	FlagConstructor

	// FlagDestructor marks a destructor.
	FlagDestructor

	// FlagConversion marks a conversion operator.
	FlagConversion

	// FlagCopyAssign marks a copy assignment operator.
	FlagCopyAssign

	// FlagOperator marks an overloaded operator.
	FlagOperator

	// FlagDefaultArg marks a parameter with a default argument.
	FlagDefaultArg
)

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool { return f&flag == flag }

// Decl is a named declaration: a variable, parameter, data member, function or member function.
//
// Redeclarations of the same entity are linked to a single canonical [Decl],
// which is the first declaration seen.
type Decl struct {
	Span

	Kind  DeclKind
	Name  string
	Type  *Type // Declared type, or the result type of functions.
	Flags Flags

	// NamePos is the position of the declared name.
	NamePos token.Pos

	// SpecPos is the start of the declaration specifiers, or [token.NoPos]
	// when they are shared with other declarators.
	SpecPos token.Pos

	// Record is the enclosing class of members.
	Record *Record

	// Init is the initializer of variables and the default member initializer of fields.
	Init Expr

	// Functions only.
	Params    []*Decl
	ParamsEnd token.Pos // Right after the closing parenthesis.
	Body      *Block
	Inits     []*MemberInit
	Locals    []*Decl

	// InMain is set for declarations located in the main file of the translation unit.
	InMain bool

	canonical *Decl
}

// Canonical returns the first declaration of the entity.
func (d *Decl) Canonical() *Decl {
	if d == nil || d.canonical == nil {
		return d
	}

	return d.canonical
}

// Redeclare links d to the canonical declaration of prev and merges their properties.
func (d *Decl) Redeclare(prev *Decl) {
	c := prev.Canonical()
	if c == d {
		return
	}

	d.canonical = c
	d.Flags |= c.Flags &^ FlagDefaultArg
	c.Flags |= d.Flags & (FlagConst | FlagVirtual)

	if d.Record == nil {
		d.Record = c.Record
	}
}

// Is reports whether d or its canonical declaration carries flag.
func (d *Decl) Is(flag Flags) bool {
	return d.Flags.Has(flag) || d.Canonical().Flags.Has(flag)
}

// IsFunction reports whether d is a free or member function.
func (d *Decl) IsFunction() bool { return d.Kind == Func || d.Kind == Method }

// IsVariable reports whether d denotes an object.
func (d *Decl) IsVariable() bool { return d.Kind == Var || d.Kind == Param || d.Kind == Field }

// IsDefinition reports whether d is a function with a body.
func (d *Decl) IsDefinition() bool { return d.Body != nil }

// MinArgs returns the number of parameters without default arguments.
func (d *Decl) MinArgs() int {
	n := 0
	for _, p := range d.Params {
		if !p.Is(FlagDefaultArg) {
			n++
		}
	}

	return n
}

// Accepts reports whether a call with n arguments can bind to d.
func (d *Decl) Accepts(n int) bool {
	return n >= d.MinArgs() && n <= len(d.Params)
}

// QualifiedName returns the name prefixed by the class name for members.
func (d *Decl) QualifiedName() string {
	if d.Record != nil && (d.Kind == Field || d.Kind == Method) {
		return d.Record.Name + "::" + d.Name
	}

	return d.Name
}

func (d *Decl) String() string { return d.QualifiedName() }

// MemberInit is a member initializer of a constructor.
type MemberInit struct {
	Span

	Member *Decl
	Args   []Expr
}

// Record is a class, struct or union.
type Record struct {
	Span

	Name    string
	NamePos token.Pos
	Bases   []*Record
	Fields  []*Decl
	Methods []*Decl // Canonical member functions in declaration order.
	InMain  bool
}

// Field returns the data member called name, searching base classes.
func (r *Record) Field(name string) *Decl {
	for rec := range r.hierarchy() {
		for _, f := range rec.Fields {
			if f.Name == name {
				return f
			}
		}
	}

	return nil
}

// MethodsNamed returns the member functions called name, nearest class first.
func (r *Record) MethodsNamed(name string) []*Decl {
	for rec := range r.hierarchy() {
		var found []*Decl
		for _, m := range rec.Methods {
			if m.Name == name {
				found = append(found, m)
			}
		}

		if len(found) > 0 {
			return found
		}
	}

	return nil
}

// Constructors returns the constructors of r.
func (r *Record) Constructors() []*Decl {
	var ctors []*Decl
	for _, m := range r.Methods {
		if m.Flags.Has(FlagConstructor) {
			ctors = append(ctors, m)
		}
	}

	return ctors
}

// DerivesFrom reports whether base is r or one of its bases.
func (r *Record) DerivesFrom(base *Record) bool {
	for rec := range r.hierarchy() {
		if rec == base {
			return true
		}
	}

	return false
}

func (r *Record) hierarchy() iter.Seq[*Record] {
	return func(yield func(*Record) bool) {
		seen := []*Record{}
		queue := []*Record{r}

		for len(queue) > 0 {
			rec := queue[0]
			queue = queue[1:]

			if rec == nil || slices.Contains(seen, rec) {
				continue
			}

			seen = append(seen, rec)
			if !yield(rec) {
				return
			}

			queue = append(queue, rec.Bases...)
		}
	}
}
