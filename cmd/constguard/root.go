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
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fillmore-labs.com/constguard/analyzer"
)

const rootLongDescription = `constguard finds C++ local variables, parameters and data members that are
never modified and could be declared const, as well as member functions that
could be declared const or static.

Every argument names the main file of a translation unit. Headers included with
#include "..." are searched next to the including file and in the -I directories.

Settings are read from ./constguard.yaml and CONSTGUARD_* environment variables,
command line flags take precedence.`

func newRootCmd() *cobra.Command {
	v := newConfig()

	var (
		configFile string
		logCloser  io.Closer
	)

	cmd := &cobra.Command{
		Use:           "constguard [flags] file...",
		Short:         "Find C++ declarations that could be const or static",
		Long:          rootLongDescription,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := readConfig(v, configFile); err != nil {
				return err
			}

			logCloser = configureLogger(v, cmd.ErrOrStderr())

			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logCloser == nil {
				return nil
			}

			return logCloser.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalysis(cmd, v, args)
		},
	}

	configureRootFlags(cmd, v, &configFile)

	cmd.AddCommand(newConfigCmd(v), newVersionCmd())

	return cmd
}

func configureRootFlags(cmd *cobra.Command, v *viper.Viper, configFile *string) {
	flags := cmd.Flags()

	// The analyzer defines its own flags, a template instance supplies them with defaults.
	template := analyzer.New()
	flags.AddGoFlagSet(&template.Flags)

	for name, key := range analyzerKeys {
		bindFlagToConfig(v, flags.Lookup(name), key)
	}

	flags.String(formatFlagName, defaultFormat, "output format: text, json or yaml")
	bindFlagToConfig(v, flags.Lookup(formatFlagName), formatKey)

	flags.Bool(summaryFlagName, false, "print a summary table per file")
	bindFlagToConfig(v, flags.Lookup(summaryFlagName), summaryKey)

	flags.Bool(noColorFlagName, false, "disable colored output")
	bindFlagToConfig(v, flags.Lookup(noColorFlagName), noColorKey)

	flags.Bool(fixFlagName, false, "apply suggested fixes to the source files")
	bindFlagToConfig(v, flags.Lookup(fixFlagName), fixKey)

	persistent := cmd.PersistentFlags()

	persistent.StringVar(configFile, configFlagName, "", "configuration file (default "+configFileName+")")

	persistent.String(logFileFlagName, "", "write logs to a rotated file instead of stderr")
	bindFlagToConfig(v, persistent.Lookup(logFileFlagName), logFileKey)

	persistent.String(logLevelFlag, defaultLogLevel, "log level: debug, info, warn or error")
	bindFlagToConfig(v, persistent.Lookup(logLevelFlag), logLevelKey)

	persistent.BoolP(verboseFlagName, "v", false, "enable debug logging")
	bindFlagToConfig(v, persistent.Lookup(verboseFlagName), logVerboseKey)
}

func bindFlagToConfig(v *viper.Viper, flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(v.BindPFlag(key, flag))
}
