// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package normalize cleans up extracted field text before detection.
// Normalization is best-effort: failures return the input unchanged, and
// the contract with the detection engine is only "produce normalized
// text". Spell and grammar engines stay external; this package covers the
// whitespace and punctuation cleanup the form extractor leaves behind.
package normalize

import (
	"regexp"
	"strings"
)

// Level selects how aggressively text is corrected.
type Level string

const (
	LevelOff        Level = "off"
	LevelBasic      Level = "basic"
	LevelAggressive Level = "aggressive"
)

// ParseLevel converts a config string to a Level, defaulting to basic.
func ParseLevel(s string) Level {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelOff:
		return LevelOff
	case LevelAggressive:
		return LevelAggressive
	default:
		return LevelBasic
	}
}

// Normalizer produces normalized text. Implementations never return an
// error: any internal failure yields the input unchanged.
type Normalizer interface {
	Normalize(text string) string

	// Fingerprint identifies the active correction configuration, for use
	// in content-keyed caches.
	Fingerprint() string
}

var (
	whitespaceRuns   = regexp.MustCompile(`[ \t]+`)
	spacedPunct      = regexp.MustCompile(`\s+([,.;:!?])`)
	blankLines       = regexp.MustCompile(`\n{3,}`)
	repeatedBrackets = regexp.MustCompile(`\[{2,}|\]{2,}`)
)

// Cleaner is the built-in Normalizer.
type Cleaner struct {
	level Level
}

// NewCleaner creates a normalizer at the given correction level.
func NewCleaner(level Level) *Cleaner {
	return &Cleaner{level: level}
}

// Fingerprint implements Normalizer.
func (c *Cleaner) Fingerprint() string { return "cleaner/" + string(c.level) }

// Normalize implements Normalizer.
func (c *Cleaner) Normalize(text string) (normalized string) {
	normalized = text
	if c.level == LevelOff || text == "" {
		return normalized
	}

	defer func() {
		// Normalization must never take the field down with it.
		if r := recover(); r != nil {
			normalized = text
		}
	}()

	out := strings.ReplaceAll(text, "\r\n", "\n")
	out = whitespaceRuns.ReplaceAllString(out, " ")
	out = blankLines.ReplaceAllString(out, "\n\n")

	if c.level == LevelAggressive {
		out = spacedPunct.ReplaceAllString(out, "$1")
		out = repeatedBrackets.ReplaceAllStringFunc(out, func(m string) string {
			return m[:1]
		})
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	normalized = strings.Join(lines, "\n")
	return normalized
}
