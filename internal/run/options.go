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
	"log/slog"
	"runtime"

	"fillmore-labs.com/constguard/analyzer/mode"
	"fillmore-labs.com/constguard/internal/config"
)

// Options represent the configuration of a constguard run.
type Options struct {
	// Target selects the produced results.
	Target mode.Target

	// Checks select the kinds of verdicts that are reported.
	Checks config.BitMask[config.Check]

	// Behavior holds reporting and fix options.
	Behavior config.BitMask[config.Behavior]

	// IncludeDirs are searched for included headers.
	IncludeDirs []string

	// Jobs is the maximum number of translation units analyzed concurrently.
	Jobs int
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Target:   mode.PseudoConstness,
		Checks:   config.NewBitMask(config.AllChecks),
		Behavior: config.NewBitMask(config.SuggestFixes),
		Jobs:     runtime.GOMAXPROCS(0),
	}
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("target", o.Target.String()),
		slog.Any("checks", uint8(o.Checks.Value())),
		slog.Bool("headers", o.Behavior.Enabled(config.IncludeHeaders)),
		slog.Bool("fix", o.Behavior.Enabled(config.SuggestFixes)),
		slog.Any("include", o.IncludeDirs),
		slog.Int("jobs", o.Jobs),
	)
}
