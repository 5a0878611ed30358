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

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"fillmore-labs.com/constguard/analyzer"
	"fillmore-labs.com/constguard/analyzer/mode"
)

// Settings represents the analyzer configuration read from constguard.yaml,
// the environment and the command line.
type Settings struct {
	// Target selects the produced results.
	Target *string `mapstructure:"target" yaml:"target,omitempty"`
	// Headers reports declarations in included headers.
	Headers *bool `mapstructure:"headers" yaml:"headers,omitempty"`
	// Fixes attaches suggested fixes to warnings.
	Fixes *bool `mapstructure:"fixes" yaml:"fixes,omitempty"`
	// Include lists the directories searched for included headers.
	Include []string `mapstructure:"include" yaml:"include,omitempty"`
	// Jobs limits the number of translation units analyzed concurrently.
	Jobs *int `mapstructure:"jobs" yaml:"jobs,omitempty"`
	// Checks selects the reported declarations.
	Checks CheckSettings `mapstructure:"checks" yaml:"checks,omitempty"`
}

// CheckSettings enables or disables individual checks.
type CheckSettings struct {
	Variables     *bool `mapstructure:"variables"      yaml:"variables,omitempty"`
	Parameters    *bool `mapstructure:"parameters"     yaml:"parameters,omitempty"`
	Members       *bool `mapstructure:"members"        yaml:"members,omitempty"`
	ConstMethods  *bool `mapstructure:"const-methods"  yaml:"const-methods,omitempty"`
	StaticMethods *bool `mapstructure:"static-methods" yaml:"static-methods,omitempty"`
}

// loadSettings decodes the analyzer settings from v.
func loadSettings(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return s, nil
}

// Options converts [Settings] into a list of [analyzer.Option] for the constguard analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() ([]analyzer.Option, error) {
	var opts []analyzer.Option

	if s.Target != nil {
		var target mode.Target
		if err := target.UnmarshalText([]byte(*s.Target)); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}

		opts = append(opts, analyzer.WithTarget(target))
	}

	opts = appendOption(opts, s.Headers, analyzer.WithHeaders)
	opts = appendOption(opts, s.Fixes, analyzer.WithFixes)

	if len(s.Include) > 0 {
		opts = append(opts, analyzer.WithIncludeDirs(s.Include...))
	}

	opts = appendOption(opts, s.Jobs, analyzer.WithJobs)
	opts = appendOption(opts, s.Checks.Variables, analyzer.WithVariables)
	opts = appendOption(opts, s.Checks.Parameters, analyzer.WithParameters)
	opts = appendOption(opts, s.Checks.Members, analyzer.WithMembers)
	opts = appendOption(opts, s.Checks.ConstMethods, analyzer.WithConstMethods)
	opts = appendOption(opts, s.Checks.StaticMethods, analyzer.WithStaticMethods)

	return opts, nil
}

// appendOption appends a non-nil setting to an [analyzer.Option] list.
func appendOption[T any](opts []analyzer.Option, value *T, constructor func(T) analyzer.Option) []analyzer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
