// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging provides the structured logger used by fxstats.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger

func init() {
	l := zerolog.New(os.Stderr).With().Timestamp().Logger()
	logger = &l
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Init configures the global logger to write to stderr. Debug lowers
// the level to debug; human selects a console writer instead of JSON.
func Init(debug, human bool) {
	InitWriter(os.Stderr, debug, human)
}

// InitWriter is Init with an explicit destination.
func InitWriter(w io.Writer, debug, human bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if human {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	l := zerolog.New(w).With().Timestamp().Logger()
	logger = &l
}

// L returns the base logger.
func L() *zerolog.Logger {
	return logger
}

// WithFile returns a logger annotated with the input being processed.
func WithFile(path string) zerolog.Logger {
	return logger.With().Str("file", path).Logger()
}

// SetLogger replaces the global logger.
func SetLogger(l zerolog.Logger) {
	logger = &l
}
