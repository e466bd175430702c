// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package contact detects phone numbers, email addresses and Social
// Security Numbers. These formats are unambiguous, so confidence is high.
package contact

import (
	"regexp"

	"clara-redact/internal/detector"
)

// Detector finds contact information using fixed-format patterns.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a contact detector with its predefined patterns.
func NewDetector() *Detector {
	return &Detector{
		rules: []detector.Rule{
			// Phone numbers, parenthesized and plain
			{Pattern: regexp.MustCompile(`(\(\d{3}\)\s*\d{3}[-.\s]*\d{4})\b`), Confidence: 0.95, Type: "PHONE", Group: 1},
			{Pattern: regexp.MustCompile(`\b(\d{3}[-.\s]\d{3}[-.\s]\d{4})\b`), Confidence: 0.9, Type: "PHONE", Group: 1},

			// Email addresses
			{Pattern: regexp.MustCompile(`\b([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})\b`), Confidence: 0.98, Type: "EMAIL", Group: 1},

			// Social Security Numbers
			{Pattern: regexp.MustCompile(`\b(\d{3}-\d{2}-\d{4})\b`), Confidence: 0.95, Type: "SSN", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "contact_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}
