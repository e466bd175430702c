// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package financial detects currency amounts, labeled cost figures and
// fixed commercial-secrecy phrases.
package financial

import (
	"regexp"

	"clara-redact/internal/detector"
)

// Detector finds financial and commercial information.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a financial detector with its predefined patterns.
func NewDetector() *Detector {
	return &Detector{
		rules: []detector.Rule{
			// Currency amounts
			{Pattern: regexp.MustCompile(`\$\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`), Confidence: 0.85, Type: "FINANCIAL", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(\d{1,3}(?:,\d{3})*(?:\.\d{2})?\s*dollars?)\b`), Confidence: 0.85, Type: "FINANCIAL", Group: 1},

			// Labeled amounts
			{Pattern: regexp.MustCompile(`(?i)\b(?:cost|price|revenue|profit|loss|expense|budget|salary|wage)[-:\s]*\$?\s*(\d+(?:,\d{3})*(?:\.\d{2})?)`), Confidence: 0.9, Type: "FINANCIAL", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(?:contract|agreement)\s+(?:value|amount)[-:\s]*\$?\s*(\d+(?:,\d{3})*)`), Confidence: 0.9, Type: "FINANCIAL", Group: 1},

			// Commercial-secrecy phrases
			{Pattern: regexp.MustCompile(`(?i)\b(trade\s+secret)\b`), Confidence: 0.9, Type: "COMMERCIAL", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(proprietary\s+formula)\b`), Confidence: 0.8, Type: "COMMERCIAL", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(confidential\s+manufacturing)\b`), Confidence: 0.85, Type: "COMMERCIAL", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "financial_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}
