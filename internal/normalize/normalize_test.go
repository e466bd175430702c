// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package normalize

import "testing"

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"off", LevelOff},
		{" OFF ", LevelOff},
		{"basic", LevelBasic},
		{"aggressive", LevelAggressive},
		{"", LevelBasic},
		{"unknown", LevelBasic},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_Off(t *testing.T) {
	c := NewCleaner(LevelOff)
	in := "messy   text\t\twith  runs"
	if got := c.Normalize(in); got != in {
		t.Errorf("off level must not touch text: %q", got)
	}
}

func TestNormalize_Basic(t *testing.T) {
	c := NewCleaner(LevelBasic)

	if got := c.Normalize("a   b\t\tc"); got != "a b c" {
		t.Errorf("whitespace runs: got %q", got)
	}
	if got := c.Normalize("line1\r\nline2"); got != "line1\nline2" {
		t.Errorf("crlf: got %q", got)
	}
	if got := c.Normalize("a\n\n\n\n\nb"); got != "a\n\nb" {
		t.Errorf("blank lines: got %q", got)
	}
	if got := c.Normalize("trail   \nnext"); got != "trail\nnext" {
		t.Errorf("trailing spaces: got %q", got)
	}
	// Basic level leaves punctuation spacing alone.
	if got := c.Normalize("word , next"); got != "word , next" {
		t.Errorf("basic must not fix punctuation: got %q", got)
	}
}

func TestNormalize_Aggressive(t *testing.T) {
	c := NewCleaner(LevelAggressive)

	if got := c.Normalize("word , next"); got != "word, next" {
		t.Errorf("spaced punctuation: got %q", got)
	}
	if got := c.Normalize("[[tag]] here"); got != "[tag] here" {
		t.Errorf("repeated brackets: got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	c := NewCleaner(LevelBasic)
	once := c.Normalize("a   b \r\n\n\n\n c  ")
	twice := c.Normalize(once)
	if once != twice {
		t.Errorf("normalization should be stable: %q vs %q", once, twice)
	}
}

func TestFingerprint_VariesByLevel(t *testing.T) {
	if NewCleaner(LevelBasic).Fingerprint() == NewCleaner(LevelAggressive).Fingerprint() {
		t.Error("fingerprints must distinguish correction levels")
	}
}
