// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package classify maps finding types to FOIA disclosure categories.
//
// B4 covers trade secret and commercial information; B6 covers patient
// and medical information. An unrecognized type classifies as B6: when in
// doubt the engine over-redacts rather than leaking protected health
// information.
package classify

import "clara-redact/internal/detector"

// Disclosure categories.
const (
	B4 = "B4"
	B6 = "B6"

	CategoryB4        = "Trade Secret/Commercial Information"
	CategoryB6        = "Patient/Medical Information"
	CategoryB6Default = "Patient/Medical Information (default)"
)

// ClassifiedFinding is a resolved finding augmented with its disclosure
// category. Classification is a pure function of the finding's type.
type ClassifiedFinding struct {
	detector.Finding

	// Classification is B4 or B6.
	Classification string

	// Category is the human-readable label for the classification.
	Category string
}

// table is the fixed type-to-classification lookup. Types outside the
// table default to B6.
var table = map[string]string{
	// B6: patient and medical information
	"NAME":       B6,
	"PHONE":      B6,
	"EMAIL":      B6,
	"ADDRESS":    B6,
	"LOCATION":   B6,
	"ZIP":        B6,
	"SSN":        B6,
	"MEDICAL_ID": B6,
	"DATE":       B6,
	"ID":         B6,
	"FACILITY":   B6,
	"PROFANITY":  B6,

	// B4: trade secret and commercial information
	"PHARMACEUTICAL":       B4,
	"MANUFACTURING_NUMBER": B4,
	"TRANSMITTER_ANALYZER": B4,
	"FINANCIAL":            B4,
	"COMMERCIAL":           B4,
	"REGULATORY_NUMBER":    B4,
	"MANUFACTURING_SPEC":   B4,
	"ORGANIZATION":         B4,
}

// Classify assigns each finding its disclosure category.
func Classify(findings []detector.Finding) []ClassifiedFinding {
	classified := make([]ClassifiedFinding, 0, len(findings))
	for _, f := range findings {
		classified = append(classified, ClassifyOne(f))
	}
	return classified
}

// ClassifyOne assigns a single finding its disclosure category.
func ClassifyOne(f detector.Finding) ClassifiedFinding {
	cf := ClassifiedFinding{Finding: f}
	switch table[f.Type] {
	case B4:
		cf.Classification = B4
		cf.Category = CategoryB4
	case B6:
		cf.Classification = B6
		cf.Category = CategoryB6
	default:
		cf.Classification = B6
		cf.Category = CategoryB6Default
	}
	return cf
}

// KnownTypes returns every type present in the lookup table. The engine
// checks registered detectors against this set at startup so silently
// unmapped types surface in debug output instead of production audits.
func KnownTypes() map[string]string {
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// IsKnownType reports whether t has an explicit table entry.
func IsKnownType(t string) bool {
	_, ok := table[t]
	return ok
}
