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

package analyzer

import (
	"context"
	"flag"
	"log/slog"

	"fillmore-labs.com/constguard/internal/run"
)

// Public API constants for the constguard analyzer.
const (
	name = "constguard"
	doc  = `constguard detects C++ variables and member functions that could be declared const or static`
	url  = "https://pkg.go.dev/fillmore-labs.com/constguard"
)

// Analyzer checks C++ translation units for pseudo-constness.
type Analyzer struct {
	// Flags defines the command line flags of the analyzer.
	Flags flag.FlagSet

	options *run.Options
}

// New creates a new instance of the constguard analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools.
func New(opts ...Option) *Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &Analyzer{options: r}
	a.Flags.Init(name, flag.ContinueOnError)
	registerFlags(&a.Flags, r)

	return a
}

// Name returns the name of the analyzer.
func (*Analyzer) Name() string { return name }

// Doc returns a one-line description of the analyzer.
func (*Analyzer) Doc() string { return doc }

// URL returns the documentation URL of the analyzer.
func (*Analyzer) URL() string { return url }

// Run analyzes the translation units with the given main files.
func (a *Analyzer) Run(ctx context.Context, paths []string) ([]run.Result, error) {
	return a.options.Run(ctx, paths)
}

// RunFile analyzes the translation unit with main file path.
func (a *Analyzer) RunFile(ctx context.Context, path string) (run.Result, error) {
	return a.options.RunFile(ctx, path)
}

// RunSource analyzes the translation unit with main file path and contents src.
func (a *Analyzer) RunSource(ctx context.Context, path string, src []byte) (run.Result, error) {
	return a.options.RunSource(ctx, path, src)
}

// LogValue implements [slog.LogValuer].
func (a *Analyzer) LogValue() slog.Value {
	return a.options.LogValue()
}
