// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package medicalid detects medical record numbers and patient
// identifiers. Labeled forms ("MRN:", "Patient ID:") are high confidence;
// the bare 8-12 digit shape is the most generic rule in the battery and
// is scored accordingly.
package medicalid

import (
	"regexp"

	"clara-redact/internal/detector"
)

// Detector finds medical record identifiers using a fixed pattern battery.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a medical-ID detector with its predefined patterns.
func NewDetector() *Detector {
	return &Detector{
		rules: []detector.Rule{
			// Labeled medical record numbers
			{Pattern: regexp.MustCompile(`(?i)\b(MRN[-:\s]*[A-Z0-9-]{5,})\b`), Confidence: 0.95, Type: "MEDICAL_ID", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(Medical\s+Record\s+Number[-:\s]*[A-Z0-9-]{5,})\b`), Confidence: 0.95, Type: "MEDICAL_ID", Group: 1},

			// Patient IDs
			{Pattern: regexp.MustCompile(`(?i)\b(Patient\s+ID[-:\s]*[A-Z0-9-]{5,})\b`), Confidence: 0.9, Type: "MEDICAL_ID", Group: 1},

			// Generic ID shapes
			{Pattern: regexp.MustCompile(`\b([A-Z]{2,3}-\d{6,})\b`), Confidence: 0.8, Type: "ID", Group: 1},
			{Pattern: regexp.MustCompile(`\b(\d{8,12})\b`), Confidence: 0.7, Type: "ID", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "medical_id_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}
