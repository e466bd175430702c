// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package manufacturing detects serial, lot, model and regulatory numbers
// along with technical manufacturing specifications. Confidence tapers
// from explicitly labeled identifiers down to bare alphanumeric shapes.
package manufacturing

import (
	"regexp"

	"clara-redact/internal/detector"
)

// Detector finds manufacturing and regulatory identifiers.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a manufacturing detector with its predefined patterns.
func NewDetector() *Detector {
	return &Detector{
		rules: []detector.Rule{
			// Labeled serial/model/lot numbers
			{Pattern: regexp.MustCompile(`(?i)\b(?:Serial|SN|S/N|Model|Part|P/N|Lot|Batch)[-:\s]*([A-Z0-9-]{4,})\b`), Confidence: 0.9, Type: "MANUFACTURING_NUMBER", Group: 1},

			// Transmitter and analyzer identifiers
			{Pattern: regexp.MustCompile(`(?i)\b(?:Transmitter|Analyzer)[-:\s]*(?:Number|#|ID)[-:\s]*([A-Z0-9-]{4,})\b`), Confidence: 0.95, Type: "TRANSMITTER_ANALYZER", Group: 1},
			{Pattern: regexp.MustCompile(`\b(TM-?\d{6,})\b`), Confidence: 0.9, Type: "TRANSMITTER_ANALYZER", Group: 1},
			{Pattern: regexp.MustCompile(`\b(AN-?\d{6,})\b`), Confidence: 0.9, Type: "TRANSMITTER_ANALYZER", Group: 1},

			// Regulatory and clearance numbers
			{Pattern: regexp.MustCompile(`\b(K\d{6})\b`), Confidence: 0.95, Type: "REGULATORY_NUMBER", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\bFDA[-\s]*(\d{6,})\b`), Confidence: 0.95, Type: "REGULATORY_NUMBER", Group: 1},
			{Pattern: regexp.MustCompile(`\b([A-Z]{1,3}\d{5,})\b`), Confidence: 0.9, Type: "REGULATORY_NUMBER", Group: 1},

			// Technical specifications
			{Pattern: regexp.MustCompile(`(?i)\b(\d+\.?\d*\s*mm\s+type\s+thread)\b`), Confidence: 0.85, Type: "MANUFACTURING_SPEC", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(\d+oz\s+package)\b`), Confidence: 0.8, Type: "MANUFACTURING_SPEC", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(ISO\s+\d+)\b`), Confidence: 0.8, Type: "MANUFACTURING_SPEC", Group: 1},

			// Standalone alphanumeric codes
			{Pattern: regexp.MustCompile(`\b([A-Z]{2,}\d{4,})\b`), Confidence: 0.7, Type: "MANUFACTURING_NUMBER", Group: 1},
			{Pattern: regexp.MustCompile(`\b(\d{4,}[A-Z]{2,})\b`), Confidence: 0.7, Type: "MANUFACTURING_NUMBER", Group: 1},
			{Pattern: regexp.MustCompile(`\b([A-Z]\d+[A-Z]+\d*)\b`), Confidence: 0.75, Type: "MANUFACTURING_NUMBER", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "manufacturing_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}
