// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package profanity detects words from a fixed profanity list,
// case-insensitively and word-boundary bounded. Adverse-event narratives
// occasionally quote patients verbatim; those quotes are still patient
// information.
package profanity

import (
	"fmt"
	"regexp"

	"clara-redact/internal/detector"
)

var words = []string{
	"damn", "hell", "shit", "fuck", "bitch", "ass", "crap", "piss",
	"bastard", "asshole", "dickhead", "motherfucker", "goddamn", "bloody",
	"cocksucker",
}

// Detector finds profanity via exact word-list matching.
type Detector struct {
	rules []detector.Rule
}

// NewDetector creates a profanity detector from the fixed word list.
func NewDetector() *Detector {
	rules := make([]detector.Rule, 0, len(words))
	for _, w := range words {
		rules = append(rules, detector.Rule{
			Pattern:    regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, regexp.QuoteMeta(w))),
			Confidence: 0.99,
			Type:       "PROFANITY",
		})
	}
	return &Detector{rules: rules}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "profanity_list" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	return detector.RunRules(text, d.Name(), d.rules)
}
