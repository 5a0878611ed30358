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
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configBaseName   = "constguard"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	envPrefix = "CONSTGUARD"

	configFlagName  = "config"
	formatFlagName  = "format"
	summaryFlagName = "summary"
	noColorFlagName = "no-color"
	fixFlagName     = "fix"
	logFileFlagName = "log-file"
	logLevelFlag    = "log-level"
	verboseFlagName = "verbose"

	targetKey        = "target"
	headersKey       = "headers"
	fixesKey         = "fixes"
	includeKey       = "include"
	jobsKey          = "jobs"
	variablesKey     = "checks.variables"
	parametersKey    = "checks.parameters"
	membersKey       = "checks.members"
	constMethodsKey  = "checks.const-methods"
	staticMethodsKey = "checks.static-methods"

	formatKey  = "output.format"
	summaryKey = "output.summary"
	noColorKey = "output.no-color"
	fixKey     = "output.fix"

	logFileKey       = "log.file"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max-size"
	logMaxBackupsKey = "log.max-backups"
	logMaxAgeKey     = "log.max-age"
	logCompressKey   = "log.compress"

	defaultFormat        = "text"
	defaultLogLevel      = "warn"
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// analyzerKeys maps the analyzer flags to their configuration keys.
var analyzerKeys = map[string]string{
	"target":         targetKey,
	"headers":        headersKey,
	"fixes":          fixesKey,
	"I":              includeKey,
	"jobs":           jobsKey,
	"variables":      variablesKey,
	"parameters":     parametersKey,
	"members":        membersKey,
	"const-methods":  constMethodsKey,
	"static-methods": staticMethodsKey,
}

// newConfig returns a configuration reading constguard.yaml and CONSTGUARD_* environment variables.
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetConfigName(configBaseName)
	v.SetConfigType("yaml")
	v.AddConfigPath(configFolderPath)
	v.AutomaticEnv()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault(formatKey, defaultFormat)
	v.SetDefault(logLevelKey, defaultLogLevel)
	v.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	v.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	v.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	v.SetDefault(logCompressKey, defaultLogCompress)

	return v
}

// readConfig loads the configuration file. Only an explicitly named file has to exist.
func readConfig(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("can't read configuration: %w", err)
	}

	return nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger installs the default logger. Without a log file, records go to stderr.
func configureLogger(v *viper.Viper, stderr io.Writer) io.Closer {
	logLevel := parseSlogLevel(v.GetString(logLevelKey), slog.LevelWarn)
	if v.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	}

	var (
		w      = stderr
		closer io.Closer
	)

	if logPath := strings.TrimSpace(v.GetString(logFileKey)); logPath != "" {
		logWriter := &lumberjack.Logger{
			Filename:   logPath,
			MaxSize:    v.GetInt(logMaxSizeKey),
			MaxBackups: v.GetInt(logMaxBackupsKey),
			MaxAge:     v.GetInt(logMaxAgeKey),
			Compress:   v.GetBool(logCompressKey),
		}
		w, closer = logWriter, logWriter
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: logLevel <= slog.LevelDebug,
		Level:     logLevel,
	})

	slog.SetDefault(slog.New(handler))

	return closer
}
