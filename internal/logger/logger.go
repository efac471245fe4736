// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Options selects where and how log records are written.
type Options struct {
	Level  string // debug, info, warn or error; empty means info
	Format string // json or text; empty means json

	// File is an explicit log file path. When empty and ToFile is set, the
	// XDG state location from DefaultLogFilePath is used.
	File   string
	ToFile bool

	// Stderr is the console destination; nil disables console output.
	Stderr io.Writer
}

// DefaultLogFilePath determines the path for the application log file based on XDG spec.
func DefaultLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "string-sorter", "app.log"), nil
}

// ParseLevel accepts the slog level names in any case.
func ParseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}

// New builds a logger for one run of the program. The returned close func
// releases the log file, if one was opened, and is always safe to call.
func New(opts Options) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, noop, err
	}

	var writers []io.Writer
	closeFn := noop

	if opts.ToFile || opts.File != "" {
		logFilePath := opts.File
		if logFilePath == "" {
			logFilePath, err = DefaultLogFilePath()
			if err != nil {
				return nil, noop, fmt.Errorf("error determining log file path: %w", err)
			}
		}

		logDir := filepath.Dir(logFilePath)
		// Create directory with appropriate permissions (0750: user rwx, group rx, others ---)
		if err := os.MkdirAll(logDir, 0750); err != nil {
			return nil, noop, fmt.Errorf("error creating log directory %s: %w", logDir, err)
		}
		// Open file for appending (0640: user rw, group r, others ---)
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
		if err != nil {
			return nil, noop, fmt.Errorf("error opening log file %s: %w", logFilePath, err)
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	if opts.Stderr != nil {
		writers = append(writers, opts.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		finalWriter = io.Discard
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(opts.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(finalWriter, handlerOpts)
	case "text":
		handler = slog.NewTextHandler(finalWriter, handlerOpts)
	default:
		closeFn()
		return nil, noop, fmt.Errorf("invalid log format %q (valid: json, text)", opts.Format)
	}

	return slog.New(handler), closeFn, nil
}
