// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package fileio reads and writes newline-delimited text files.
package fileio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrInputNotFound is matched by errors.Is for any NotFoundError.
var ErrInputNotFound = errors.New("input file not found")

// NotFoundError reports a missing input path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return ErrInputNotFound
}

// CheckInput returns a *NotFoundError when path does not exist.
func CheckInput(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path}
	}
	return fmt.Errorf("failed to stat input file %s: %w", path, err)
}

// ReadLines returns the lines of the file at path. A final newline does not
// produce a trailing empty line, and a "\r" before each newline is dropped.
func ReadLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits content the same way ReadLines does.
func SplitLines(content string) []string {
	if content == "" {
		return []string{}
	}
	lines := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// EnsureParentDir creates the parent directory of path when it is missing and
// returns the directory it created, or "" when nothing had to be created.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return "", nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return "", fmt.Errorf("output parent %s is not a directory", dir)
		}
		return "", nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("failed to stat output directory %s: %w", dir, err)
	}

	// rwxr-x---
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// WriteLines replaces the content of path with lines joined by "\n". No
// trailing newline is written.
func WriteLines(path string, lines []string) error {
	data := strings.Join(lines, "\n")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}
