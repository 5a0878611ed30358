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
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fillmore-labs.com/constguard/internal/frontend"
)

const source = `int twice(int x) {
    int y = x * 2;
    return y;
}
`

func skipWithoutParser(t *testing.T) {
	t.Helper()

	if !frontend.IsAvailable() {
		t.Skip("C++ parser not available")
	}
}

func writeSource(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func executeArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := execute(context.Background(), args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestExecute_Findings(t *testing.T) {
	skipWithoutParser(t)

	path := writeSource(t, "twice.cpp", source)

	code, stdout, _ := executeArgs(t, "--no-color", path)

	assert.Equal(t, exitFindings, code)
	assert.Contains(t, stdout, "twice.cpp:1:15: warning: variable 'x' could be declared as const")
	assert.Contains(t, stdout, "twice.cpp:2:9: warning: variable 'y' could be declared as const")
}

func TestExecute_Checks(t *testing.T) {
	skipWithoutParser(t)

	path := writeSource(t, "twice.cpp", source)

	code, stdout, _ := executeArgs(t, "--parameters=false", path)

	assert.Equal(t, exitFindings, code)
	assert.NotContains(t, stdout, "'x'")
	assert.Contains(t, stdout, "'y'")
}

func TestExecute_JSON(t *testing.T) {
	skipWithoutParser(t)

	path := writeSource(t, "twice.cpp", source)

	code, stdout, _ := executeArgs(t, "--format", "json", path)
	require.Equal(t, exitFindings, code)

	var got []struct {
		File    string `json:"file"`
		Line    int    `json:"line"`
		Message string `json:"message"`
		Fixable bool   `json:"fixable"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	require.Len(t, got, 2)

	assert.Equal(t, path, got[0].File)
	assert.Equal(t, 1, got[0].Line)
	assert.True(t, got[0].Fixable)
	assert.Equal(t, "variable 'y' could be declared as const", got[1].Message)
}

func TestExecute_Fix(t *testing.T) {
	skipWithoutParser(t)

	path := writeSource(t, "twice.cpp", source)

	code, _, _ := executeArgs(t, "--fix", "--fixes=false", path)
	require.Equal(t, exitOK, code)

	fixed, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, `int twice(const int x) {
    const int y = x * 2;
    return y;
}
`, string(fixed))
}

func TestExecute_Summary(t *testing.T) {
	skipWithoutParser(t)

	path := writeSource(t, "twice.cpp", source)

	code, stdout, _ := executeArgs(t, "--summary", "--target", "function-declarations", path)

	assert.Equal(t, exitOK, code, "notes are no findings")
	assert.Contains(t, stdout, "function 'twice' declared here")
	assert.Contains(t, strings.ToLower(stdout), "twice.cpp")
}

func TestExecute_ConfigFile(t *testing.T) {
	skipWithoutParser(t)

	path := writeSource(t, "twice.cpp", source)
	config := writeSource(t, "config.yaml", `checks:
  variables: false
  parameters: false
`)

	code, stdout, _ := executeArgs(t, "--config", config, path)

	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
}

func TestExecute_Environment(t *testing.T) {
	skipWithoutParser(t)

	t.Setenv("CONSTGUARD_CHECKS_VARIABLES", "false")

	path := writeSource(t, "twice.cpp", source)

	code, stdout, _ := executeArgs(t, path)

	assert.Equal(t, exitFindings, code)
	assert.Contains(t, stdout, "'x'")
	assert.NotContains(t, stdout, "'y'")
}

func TestExecute_LogFile(t *testing.T) {
	skipWithoutParser(t)

	defer slog.SetDefault(slog.Default())

	path := writeSource(t, "twice.cpp", source)
	logFile := filepath.Join(t.TempDir(), "constguard.log")

	code, _, stderr := executeArgs(t, "--verbose", "--log-file", logFile, "--parameters=false", "--variables=false", path)
	require.Equal(t, exitOK, code)
	assert.Empty(t, stderr)

	log, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(log), "Analyzing translation unit")
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no files", []string{}, "requires at least 1 arg"},
		{"unknown flag", []string{"--unknown", "a.cpp"}, "unknown flag"},
		{"unsupported language", []string{"main.go"}, "main.go"},
		{"missing config", []string{"--config", "does-not-exist.yaml", "a.cpp"}, "can't read configuration"},
		{"invalid format", []string{"--format", "xml", "a.cpp"}, "unknown format"},
		{"invalid target", []string{"--target", "everything", "a.cpp"}, "everything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := executeArgs(t, tt.args...)

			assert.Equal(t, exitError, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestConfigCmd(t *testing.T) {
	t.Setenv("CONSTGUARD_HEADERS", "true")

	code, stdout, _ := executeArgs(t, "config")
	require.Equal(t, exitOK, code)

	assert.Contains(t, stdout, "target: pseudo-constness")
	assert.Contains(t, stdout, "headers: true")
	assert.Contains(t, stdout, "const-methods: true")
}

func TestVersionCmd_Output(t *testing.T) {
	code, stdout, _ := executeArgs(t, "version")
	require.Equal(t, exitOK, code)

	if strings.Contains(stdout, "version: unknown") {
		return
	}

	assert.Contains(t, stdout, "tool version")
	assert.Contains(t, stdout, "go version")
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "constguard", cmd.Name())
	assert.Equal(t, rootLongDescription, cmd.Long)

	for name := range analyzerKeys {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q", name)
	}

	assert.NotNil(t, cmd.Flags().ShorthandLookup("I"))
	assert.NotNil(t, cmd.PersistentFlags().ShorthandLookup("v"))
}
