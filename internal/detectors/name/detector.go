// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package name detects person names in form-field text. Titled and
// context-anchored patterns carry high confidence; bare capitalized word
// sequences are emitted at lower confidence and rely on overlap
// resolution and the stoplist to stay useful.
package name

import (
	"regexp"
	"strings"

	"clara-redact/internal/detector"
)

// Detector finds person names using a fixed pattern battery.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a name detector with its predefined patterns.
func NewDetector() *Detector {
	accept := acceptName
	return &Detector{
		rules: []detector.Rule{
			// Titled names: "Dr. John Smith", "Doctor Jane Doe"
			{Pattern: regexp.MustCompile(`\bDr\.?\s+([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,})`), Confidence: 0.95, Type: "NAME", Group: 1, Accept: accept},
			{Pattern: regexp.MustCompile(`\bDoctor\s+([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,})`), Confidence: 0.95, Type: "NAME", Group: 1, Accept: accept},

			// Reporter-context names
			{Pattern: regexp.MustCompile(`\b(?:Reporter|Reported\s+by|Contact)[-:\s]+([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,})`), Confidence: 0.9, Type: "NAME", Group: 1, Accept: accept},

			// Bare two-word and three-word capitalized sequences
			{Pattern: regexp.MustCompile(`\b([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,})\b`), Confidence: 0.8, Type: "NAME", Group: 1, Accept: accept},
			{Pattern: regexp.MustCompile(`\b([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,}\s+[A-Z][a-z]{2,})\b`), Confidence: 0.85, Type: "NAME", Group: 1, Accept: accept},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "name_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}

// acceptName drops a candidate when any of its words is a stoplist entry.
// "Patient Smith" must never surface as a NAME finding.
func acceptName(match string) bool {
	for _, word := range strings.Fields(match) {
		if detector.IsFalsePositive(word) {
			return false
		}
	}
	return true
}
