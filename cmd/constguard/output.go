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
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fillmore-labs.com/constguard/analyzer"
	"fillmore-labs.com/constguard/internal/report"
	"fillmore-labs.com/constguard/internal/run"
)

// errFindings signals that warnings were reported.
var errFindings = errors.New("findings reported")

func runAnalysis(cmd *cobra.Command, v *viper.Viper, paths []string) error {
	ctx := cmd.Context()

	settings, err := loadSettings(v)
	if err != nil {
		return err
	}

	opts, err := settings.Options()
	if err != nil {
		return err
	}

	fix := v.GetBool(fixKey)
	if fix {
		opts = append(opts, analyzer.WithFixes(true))
	}

	var format report.Format
	if err := format.UnmarshalText([]byte(v.GetString(formatKey))); err != nil {
		return err
	}

	a := analyzer.New(opts...)
	slog.DebugContext(ctx, "Configured analyzer", "options", analyzer.Options(opts))

	results, err := a.Run(ctx, paths)
	if err != nil {
		return err
	}

	fset, diagnostics := run.Merge(results)

	out := cmd.OutOrStdout()
	colored := !v.GetBool(noColorKey) && !color.NoColor

	if err := report.NewPrinter(format, out, colored).Print(fset, diagnostics); err != nil {
		return fmt.Errorf("can't write report: %w", err)
	}

	if v.GetBool(summaryKey) {
		summaryOut := out
		if format != report.FormatText {
			summaryOut = cmd.ErrOrStderr()
		}

		writeSummary(summaryOut, report.Tally(fset, diagnostics))
	}

	if fix {
		if err := report.ApplyFixes(fset, diagnostics); err != nil {
			return fmt.Errorf("can't apply fixes: %w", err)
		}

		return nil
	}

	if hasWarnings(diagnostics) {
		return errFindings
	}

	return nil
}

func writeSummary(w io.Writer, totals []report.Totals) {
	if len(totals) == 0 {
		_, _ = fmt.Fprintln(w, "No findings.")
		return
	}

	report.WriteSummary(w, totals)
}

func hasWarnings(diagnostics []report.Diagnostic) bool {
	for _, d := range diagnostics {
		if d.Severity == report.Warning {
			return true
		}
	}

	return false
}
