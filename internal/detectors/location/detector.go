// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package location detects facility names, city/state pairs, street
// addresses and ZIP codes.
package location

import (
	"regexp"

	"clara-redact/internal/detector"
)

// Detector finds locations and facilities using a fixed pattern battery.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a location detector with its predefined patterns.
func NewDetector() *Detector {
	return &Detector{
		rules: []detector.Rule{
			// Facility names
			{Pattern: regexp.MustCompile(`\b([A-Z][a-z]{2,}\s+(?:Hospital|Medical\s+Center|Clinic|Health\s+Center|Healthcare|Medical\s+Group))\b`), Confidence: 0.9, Type: "FACILITY", Group: 1},
			{Pattern: regexp.MustCompile(`\b([A-Z][a-z]{2,}\s+[A-Z][a-z]{2,}\s+(?:Hospital|Medical\s+Center|Clinic))\b`), Confidence: 0.9, Type: "FACILITY", Group: 1},

			// City, State pairs
			{Pattern: regexp.MustCompile(`\b([A-Z][a-z]{2,},\s*[A-Z][a-z]{2,})\b`), Confidence: 0.85, Type: "LOCATION", Group: 1},
			{Pattern: regexp.MustCompile(`\b([A-Z][a-z]{2,},\s*[A-Z]{2})\b`), Confidence: 0.9, Type: "LOCATION", Group: 1},

			// Street addresses
			{Pattern: regexp.MustCompile(`\b(\d+\s+[A-Za-z\s]+(?:Street|St|Avenue|Ave|Road|Rd|Drive|Dr|Lane|Ln|Boulevard|Blvd))\b`), Confidence: 0.9, Type: "ADDRESS", Group: 1},

			// ZIP codes, alone and behind a state abbreviation
			{Pattern: regexp.MustCompile(`\b(\d{5}(?:-\d{4})?)\b`), Confidence: 0.85, Type: "ZIP", Group: 1},
			{Pattern: regexp.MustCompile(`\b([A-Z]{2}\s+\d{5}(?:-\d{4})?)\b`), Confidence: 0.9, Type: "ADDRESS", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "location_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}
