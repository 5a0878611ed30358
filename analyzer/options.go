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
	"log/slog"
	"slices"

	"fillmore-labs.com/constguard/analyzer/mode"
	"fillmore-labs.com/constguard/internal/config"
	"fillmore-labs.com/constguard/internal/run"
)

// Option configures specific behavior of a [New] constguard analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithTarget is an [Option] to select the produced results.
func WithTarget(target mode.Target) Option { return targetOption{target: target} }

type targetOption struct{ target mode.Target }

func (o targetOption) apply(r *run.Options) {
	r.Target = o.target
}

func (o targetOption) LogAttr() slog.Attr {
	return slog.String("target", o.target.String())
}

// WithHeaders is an [Option] to report declarations located in included headers.
func WithHeaders(headers bool) Option { return headersOption{headers: headers} }

type headersOption struct{ headers bool }

func (o headersOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeHeaders, o.headers)
}

func (o headersOption) LogAttr() slog.Attr {
	return slog.Bool("headers", o.headers)
}

// WithFixes is an [Option] to attach suggested fixes to warnings.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithIncludeDirs is an [Option] to add directories searched for included headers.
func WithIncludeDirs(dirs ...string) Option { return includeOption{dirs: slices.Clone(dirs)} }

type includeOption struct{ dirs []string }

func (o includeOption) apply(r *run.Options) {
	r.IncludeDirs = append(r.IncludeDirs, o.dirs...)
}

func (o includeOption) LogAttr() slog.Attr {
	return slog.Any("include", o.dirs)
}

// WithJobs is an [Option] to limit the number of translation units analyzed concurrently.
func WithJobs(jobs int) Option { return jobsOption{jobs: jobs} }

type jobsOption struct{ jobs int }

func (o jobsOption) apply(r *run.Options) {
	r.Jobs = o.jobs
}

func (o jobsOption) LogAttr() slog.Attr {
	return slog.Int("jobs", o.jobs)
}

// WithVariables is an [Option] to configure whether local variables are reported.
func WithVariables(variables bool) Option {
	return checkOption{check: config.CheckVariables, key: "variables", enabled: variables}
}

// WithParameters is an [Option] to configure whether function parameters are reported.
func WithParameters(parameters bool) Option {
	return checkOption{check: config.CheckParameters, key: "parameters", enabled: parameters}
}

// WithMembers is an [Option] to configure whether data members are reported.
func WithMembers(members bool) Option {
	return checkOption{check: config.CheckMembers, key: "members", enabled: members}
}

// WithConstMethods is an [Option] to configure whether member functions that could be const are reported.
func WithConstMethods(constMethods bool) Option {
	return checkOption{check: config.CheckConstMethods, key: "const-methods", enabled: constMethods}
}

// WithStaticMethods is an [Option] to configure whether member functions that could be static are reported.
func WithStaticMethods(staticMethods bool) Option {
	return checkOption{check: config.CheckStaticMethods, key: "static-methods", enabled: staticMethods}
}

type checkOption struct {
	check   config.Check
	key     string
	enabled bool
}

func (o checkOption) apply(r *run.Options) {
	r.Checks.Set(o.check, o.enabled)
}

func (o checkOption) LogAttr() slog.Attr {
	return slog.Bool(o.key, o.enabled)
}
