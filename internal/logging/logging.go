// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging builds the zap loggers used across termsite.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field names shared by every component.
const (
	FieldConcept   = "concept"
	FieldLabel     = "label"
	FieldReference = "reference"
	FieldSource    = "source"
	FieldFile      = "file"
	FieldCount     = "count"
	FieldStage     = "stage"
	FieldDuration  = "duration"
	FieldURL       = "url"
	FieldAttempt   = "attempt"
	FieldRuntime   = "runtime"
)

// Options selects the encoder and level of a logger.
type Options struct {
	// JSON selects the production JSON encoder instead of console output.
	JSON bool
	// Verbose lowers the level to debug.
	Verbose bool
	// Output defaults to stderr.
	Output io.Writer
}

// New returns a logger for opts.
func New(opts Options) *zap.Logger {
	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	var enc zapcore.Encoder
	if opts.JSON {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.TimeKey = ""
		cfg.CallerKey = ""
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(cfg)
	}
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(out), level))
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
