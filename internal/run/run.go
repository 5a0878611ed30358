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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"runtime/trace"

	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/constguard/internal/astutil"
	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/constness"
	"fillmore-labs.com/constguard/internal/cxx"
	"fillmore-labs.com/constguard/internal/frontend"
	"fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/scope"
)

// ErrNoInput is returned when no translation units are given.
var ErrNoInput = errors.New("no input files")

// Result holds the diagnostics of one translation unit.
type Result struct {
	Path        string
	Fset        *token.FileSet
	Diagnostics []report.Diagnostic
}

// Run analyzes the translation units with the given main files.
// Units are independent and analyzed concurrently, results are returned in input order
// and share one file set.
func (o *Options) Run(ctx context.Context, paths []string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	ctx, task := trace.NewTask(ctx, "ConstGuard")
	defer task.End()

	slog.DebugContext(ctx, "Starting analysis", "options", o, "files", len(paths))

	fset := token.NewFileSet()
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if o.Jobs > 0 {
		g.SetLimit(o.Jobs)
	}

	for i, path := range paths {
		g.Go(func() error {
			r, err := o.runFile(ctx, fset, path)
			if err != nil {
				return err
			}

			results[i] = r

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// RunFile analyzes the translation unit with main file path.
func (o *Options) RunFile(ctx context.Context, path string) (Result, error) {
	return o.runFile(ctx, token.NewFileSet(), path)
}

func (o *Options) runFile(ctx context.Context, fset *token.FileSet, path string) (Result, error) {
	if err := frontend.CheckLanguage(path); err != nil {
		return Result{}, err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("can't read translation unit: %w", err)
	}

	return o.runSource(ctx, fset, path, src)
}

// RunSource analyzes the translation unit with main file path and contents src.
func (o *Options) RunSource(ctx context.Context, path string, src []byte) (Result, error) {
	return o.runSource(ctx, token.NewFileSet(), path, src)
}

func (o *Options) runSource(ctx context.Context, fset *token.FileSet, path string, src []byte) (Result, error) {
	trace.Log(ctx, "file", path)
	slog.DebugContext(ctx, "Analyzing translation unit", "file", path)

	region := trace.StartRegion(ctx, "Parse")
	unit, err := frontend.Parse(ctx, fset, path, src, frontend.Options{IncludeDirs: o.IncludeDirs})
	region.End()

	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", path, err)
	}

	diagnostics, err := o.Analyze(ctx, unit)
	if err != nil {
		return Result{}, err
	}

	slog.DebugContext(ctx, "Finished translation unit", "file", path, "diagnostics", len(diagnostics))

	return Result{Path: path, Fset: fset, Diagnostics: diagnostics}, nil
}

// Analyze runs the constness analysis on a parsed unit and returns its diagnostics.
func (o *Options) Analyze(ctx context.Context, unit *cxx.Unit) ([]report.Diagnostic, error) {
	var sink report.Collector

	current := astutil.NewCurrentUnit(unit)
	if !current.Valid() {
		astutil.InternalError(&sink, cxx.Span{}, "Translation unit %s without position info", unit.Path)

		return sink.Diagnostics, nil
	}

	for def := range unit.Definitions() {
		if def.Kind == cxx.Method && def.Record == nil {
			astutil.InternalError(&sink, def, "Member function %s without class", def.Name)
		}
	}

	headers := o.Behavior.Enabled(config.IncludeHeaders)

	env := constness.Env{
		Declarations: scope.Declarations{},
		Aliases:      scope.NewAliases(unit),
		Checks:       o.Checks,
		Fixes:        o.Behavior.Enabled(config.SuggestFixes),
		Reportable: func(d *cxx.Decl) bool {
			return (d.InMain || headers) && !current.NoLintComment(d.NamePos)
		},
	}

	v, err := constness.New(o.Target, env)
	if err != nil {
		return nil, err
	}

	constness.Analyze(ctx, unit, v)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	region := trace.StartRegion(ctx, "Report")
	v.Report(&sink)
	region.End()

	for i := range sink.Diagnostics {
		if current.Generated(sink.Diagnostics[i].Pos) {
			sink.Diagnostics[i].SuggestedFixes = nil
		}
	}

	return sink.Diagnostics, nil
}
