// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package sorter orders lines by a sortkey policy and drives a full
// read, sort and write pass over a pair of files.
package sorter

import (
	"log/slog"
	"slices"

	"string-sorter/internal/fileio"
	"string-sorter/internal/sortkey"
)

// Sort returns a new slice holding lines ordered by key. Lines with equal keys
// keep their input order, and lines itself is not modified. A nil key means
// sortkey.Numeric.
func Sort(lines []string, key sortkey.Func) []string {
	if key == nil {
		key = sortkey.Numeric
	}

	type keyed struct {
		line string
		key  sortkey.Key
	}
	items := make([]keyed, len(lines))
	for i, line := range lines {
		items[i] = keyed{line: line, key: key(line)}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return sortkey.Compare(a.key, b.key)
	})

	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.line
	}
	return out
}

// Result summarizes one Execute call.
type Result struct {
	Lines      int    // number of lines read and written
	Output     string // output path
	CreatedDir string // output directory created on the way, if any
}

// Sorter runs the read, sort and write sequence with an injected logger.
type Sorter struct {
	key sortkey.Func
	log *slog.Logger
}

// New returns a Sorter. A nil logger discards records and a nil key uses
// sortkey.Numeric.
func New(log *slog.Logger, key sortkey.Func) *Sorter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if key == nil {
		key = sortkey.Numeric
	}
	return &Sorter{key: key, log: log}
}

// Execute sorts the lines of inputPath into outputPath. The input is checked
// before anything is created, so a missing input leaves the output side
// untouched.
func (s *Sorter) Execute(inputPath, outputPath string) (Result, error) {
	res := Result{Output: outputPath}
	s.log.Info("Executing string sorter", "input", inputPath, "output", outputPath)

	if err := fileio.CheckInput(inputPath); err != nil {
		s.log.Error("Input validation failed", "input", inputPath, "error", err)
		return res, err
	}

	created, err := fileio.EnsureParentDir(outputPath)
	if err != nil {
		return res, err
	}
	if created != "" {
		s.log.Info("Created directory", "path", created)
		res.CreatedDir = created
	}

	lines, err := fileio.ReadLines(inputPath)
	if err != nil {
		return res, err
	}
	s.log.Info("Read strings from input file", "count", len(lines))

	sorted := Sort(lines, s.key)
	s.log.Info("Strings sorted successfully")

	if err := fileio.WriteLines(outputPath, sorted); err != nil {
		return res, err
	}
	res.Lines = len(sorted)
	s.log.Info("Sorted strings written to output file", "output", outputPath, "count", res.Lines)

	return res, nil
}
