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
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/constguard/analyzer"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "constguard", configBaseName)
	assert.Equal(t, "constguard.yaml", configFileName)
	assert.Equal(t, "CONSTGUARD", envPrefix)
	assert.Equal(t, "checks.const-methods", analyzerKeys["const-methods"])
	assert.Equal(t, "include", analyzerKeys["I"])
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelWarn},
		{"debug", slog.LevelDebug},
		{" INFO ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-8", slog.Level(-8)},
		{"verbose", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}

func TestSettings_Options(t *testing.T) {
	ptr := func(b bool) *bool { return &b }
	target := "variable-changes"
	jobs := 4

	tests := []struct {
		name     string
		settings Settings
		want     []string
		wantErr  bool
	}{
		{
			name: "empty",
		},
		{
			name: "all",
			settings: Settings{
				Target:  &target,
				Headers: ptr(true),
				Fixes:   ptr(false),
				Include: []string{"include"},
				Jobs:    &jobs,
				Checks: CheckSettings{
					Variables:     ptr(true),
					Parameters:    ptr(false),
					Members:       ptr(true),
					ConstMethods:  ptr(false),
					StaticMethods: ptr(true),
				},
			},
			want: []string{
				"target", "headers", "fixes", "include", "jobs",
				"variables", "parameters", "members", "const-methods", "static-methods",
			},
		},
		{
			name:     "partial",
			settings: Settings{Checks: CheckSettings{Members: ptr(false)}},
			want:     []string{"members"},
		},
		{
			name:     "invalid target",
			settings: Settings{Target: func() *string { s := "all"; return &s }()},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.settings.Options()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)

			var keys []string
			for _, attr := range analyzer.Options(opts).LogValue().Group() {
				keys = append(keys, attr.Key)
			}

			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestLoadSettings(t *testing.T) {
	v := newConfig()
	v.Set("target", "variable-usages")
	v.Set("include", []string{"a", "b"})
	v.Set("checks.static-methods", false)

	s, err := loadSettings(v)
	require.NoError(t, err)

	require.NotNil(t, s.Target)
	assert.Equal(t, "variable-usages", *s.Target)
	assert.Equal(t, []string{"a", "b"}, s.Include)
	require.NotNil(t, s.Checks.StaticMethods)
	assert.False(t, *s.Checks.StaticMethods)
	assert.Nil(t, s.Checks.Variables)
	assert.Nil(t, s.Headers)
}
