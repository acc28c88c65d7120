// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package logger configures the process-wide zap logger that the studio CLI
// writes its own messages to, and bridges it to logr and slog for library
// packages that take those interfaces.
package logger

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/stacklok/skinstudio-core/env"
)

// UnstructuredLogsEnv switches between console and JSON output.
// Anything other than a false boolean selects console output.
const UnstructuredLogsEnv = env.Prefix + "UNSTRUCTURED_LOGS"

// Debugw logs a message at debug level using the singleton logger with additional key-value pairs.
func Debugw(msg string, keysAndValues ...any) {
	zap.S().Debugw(msg, keysAndValues...)
}

// Infow logs a message at info level using the singleton logger with additional key-value pairs.
func Infow(msg string, keysAndValues ...any) {
	zap.S().Infow(msg, keysAndValues...)
}

// Warnw logs a message at warning level using the singleton logger with additional key-value pairs.
func Warnw(msg string, keysAndValues ...any) {
	zap.S().Warnw(msg, keysAndValues...)
}

// Errorw logs a message at error level using the singleton logger with additional key-value pairs.
func Errorw(msg string, keysAndValues ...any) {
	zap.S().Errorw(msg, keysAndValues...)
}

// NewLogr returns a logr.Logger backed by the singleton zap logger.
func NewLogr() logr.Logger {
	return zapr.NewLogger(zap.L())
}

// NewSlog returns a slog.Logger backed by the singleton zap logger.
func NewSlog() *slog.Logger {
	return slog.New(logr.ToSlogHandler(NewLogr()))
}

// Sync flushes buffered entries. Errors from syncing terminals are ignored.
func Sync() {
	_ = zap.L().Sync()
}

// Options controls Initialize.
type Options struct {
	// Env is consulted for UnstructuredLogsEnv. Nil means the process environment.
	Env env.Reader
	// Debug lowers the level to DEBUG.
	Debug bool
	// OutputPaths overrides the zap output paths. Console output defaults to
	// stderr, JSON output to stdout.
	OutputPaths []string
}

// Initialize builds the singleton logger from opts and installs it with
// zap.ReplaceGlobals.
func Initialize(opts Options) error {
	reader := opts.Env
	if reader == nil {
		reader = &env.OSReader{}
	}

	var config zap.Config
	if unstructuredLogsWithEnv(reader) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(time.Kitchen)
		config.OutputPaths = []string{"stderr"}
		config.DisableStacktrace = true
		config.DisableCaller = true
	} else {
		config = zap.NewProductionConfig()
		config.OutputPaths = []string{"stdout"}
	}
	if len(opts.OutputPaths) > 0 {
		config.OutputPaths = opts.OutputPaths
	}

	if opts.Debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	l, err := config.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

func unstructuredLogsWithEnv(envReader env.Reader) bool {
	unstructuredLogs, err := strconv.ParseBool(envReader.Getenv(UnstructuredLogsEnv))
	if err != nil {
		// unset or unparsable: console output
		return true
	}
	return unstructuredLogs
}
