// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package date detects calendar dates in several formats. Numeric triples
// are range-checked so that part numbers shaped like N/N/N do not slip
// through as dates. The check is a coarse range guard (month 1-12, day
// 1-31, year 1900-2030), not full calendar validation: 02/30/2024 is
// accepted on purpose.
package date

import (
	"regexp"
	"strconv"

	"clara-redact/internal/detector"
)

var numericParts = regexp.MustCompile(`[-/]`)

// Detector finds dates using a fixed pattern battery.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a date detector with its predefined patterns.
func NewDetector() *Detector {
	return &Detector{
		rules: []detector.Rule{
			// MM/DD/YYYY and MM-DD-YYYY
			{Pattern: regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`), Confidence: 0.85, Type: "DATE", Group: 1, Accept: acceptNumericDate},

			// ISO dates
			{Pattern: regexp.MustCompile(`\b(\d{4}-\d{1,2}-\d{1,2})\b`), Confidence: 0.9, Type: "DATE", Group: 1},

			// Month DD, YYYY
			{Pattern: regexp.MustCompile(`\b((?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4})\b`), Confidence: 0.9, Type: "DATE", Group: 1},

			// Abbreviated month forms
			{Pattern: regexp.MustCompile(`(?i)\b((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[-.\s]+\d{1,2}[-.\s]+\d{2,4})\b`), Confidence: 0.85, Type: "DATE", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "date_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}

// acceptNumericDate range-checks a MM/DD/YYYY-shaped triple. The year
// check applies to every triple, so two-digit years ("3/7/24") fall
// below the 1900 floor and are rejected.
func acceptNumericDate(match string) bool {
	parts := numericParts.Split(match, -1)
	if len(parts) != 3 || len(parts[0]) > 2 {
		return true
	}

	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	if year < 1900 || year > 2030 {
		return false
	}
	return true
}
