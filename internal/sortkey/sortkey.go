// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package sortkey derives comparable keys from input lines. A key pairs the
// numeric value of a line's leading digit run with the text that follows it,
// and lines without leading digits carry an infinite numeric part so that they
// order after every numbered line.
package sortkey

import (
	"fmt"
	"slices"
	"strings"
)

// Key is the ordering key derived from a single line.
type Key struct {
	// Digits is the leading digit run with leading zeros trimmed ("0" for an
	// all-zero run). Empty means the numeric part is infinite.
	Digits string

	// Text is the run of non-digit characters that follows Digits.
	Text string
}

// Func derives a Key from a line. It is the pluggable ordering policy used by
// the sort driver.
type Func func(string) Key

// Infinite reports whether the key has no numeric part.
func (k Key) Infinite() bool {
	return k.Digits == ""
}

func (k Key) String() string {
	n := k.Digits
	if k.Infinite() {
		n = "inf"
	}
	return fmt.Sprintf("(%s, %q)", n, k.Text)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Numeric consumes the maximal leading run of ASCII digits, then the maximal
// run of non-digits after it. Anything past that second run does not take
// part in ordering.
func Numeric(s string) Key {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	j := i
	for j < len(s) && !isDigit(s[j]) {
		j++
	}

	var digits string
	if i > 0 {
		digits = strings.TrimLeft(s[:i], "0")
		if digits == "" {
			digits = "0"
		}
	}
	return Key{Digits: digits, Text: s[i:j]}
}

// Lexical orders whole lines byte by byte.
func Lexical(s string) Key {
	return Key{Text: s}
}

// Compare returns -1, 0 or +1. Numeric parts are compared first, with the
// infinite part after every finite one; ties fall through to Text.
func Compare(a, b Key) int {
	if c := compareDigits(a.Digits, b.Digits); c != 0 {
		return c
	}
	return strings.Compare(a.Text, b.Text)
}

// compareDigits compares two trimmed decimal strings by value. Without
// leading zeros a longer string is always the larger number.
func compareDigits(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	case len(a) != len(b):
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// Default is the policy used when none is configured.
const Default = "numeric"

var registry = map[string]Func{
	"numeric": Numeric,
	"lexical": Lexical,
}

// Lookup returns the named policy.
func Lookup(name string) (Func, error) {
	if name == "" {
		name = Default
	}
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown sort key %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return fn, nil
}

// Names lists the registered policies in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
