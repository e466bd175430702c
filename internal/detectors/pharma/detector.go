// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pharma detects pharmaceutical names, medical device terms and
// dosage phrases against a fixed vocabulary.
package pharma

import (
	"fmt"
	"regexp"
	"strings"

	"clara-redact/internal/detector"
)

// vocabulary is the fixed set of drug, device and surgical terms matched
// case-insensitively as whole words.
var vocabulary = []string{
	// Common drugs
	"acetaminophen", "aspirin", "ibuprofen", "tylenol", "advil", "albuterol",
	"lisinopril", "metformin", "atorvastatin", "amlodipine", "metoprolol",
	"hydrochlorothiazide", "simvastatin", "losartan", "omeprazole", "gabapentin",
	"levothyroxine", "furosemide", "prednisone", "sumatriptan", "topiramate",
	"warfarin", "insulin", "morphine", "oxycodone", "hydrocodone", "fentanyl",

	// Device and surgical terms
	"monosyn", "suture", "surgical", "catheter", "stent", "implant",
	"prosthetic", "device", "syringe", "bandage", "gauze",

	// Antibiotics
	"amoxicillin", "azithromycin", "ciprofloxacin", "doxycycline", "penicillin",
	"cephalexin", "clindamycin", "metronidazole", "trimethoprim", "sulfa",
}

// Detector finds pharmaceutical vocabulary and dosage phrases.
type Detector struct {
	vocabRules  []detector.Rule
	dosageRules []detector.Rule
}

// NewDetector creates a pharmaceutical detector with its vocabulary and
// dosage patterns.
func NewDetector() *Detector {
	vocabRules := make([]detector.Rule, 0, len(vocabulary))
	for _, term := range vocabulary {
		vocabRules = append(vocabRules, detector.Rule{
			Pattern:    regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, regexp.QuoteMeta(term))),
			Confidence: 0.9,
			Type:       "PHARMACEUTICAL",
		})
	}

	return &Detector{
		vocabRules: vocabRules,
		dosageRules: []detector.Rule{
			// "<word> 500 mg" and "500 mg of <word>"
			{Pattern: regexp.MustCompile(`(?i)\b([A-Za-z]+\s+\d+\s?(?:mg|ml|mcg|g|units?|cc))\b`), Confidence: 0.8, Type: "PHARMACEUTICAL", Group: 1},
			{Pattern: regexp.MustCompile(`(?i)\b(\d+\s?(?:mg|ml|mcg|g|units?|cc)\s+of\s+[A-Za-z]+)\b`), Confidence: 0.8, Type: "PHARMACEUTICAL", Group: 1},
		},
	}
}

// Name implements detector.Detector.
func (d *Detector) Name() string { return "pharma_pattern" }

// Detect implements detector.Detector.
func (d *Detector) Detect(text string) []detector.Finding {
	findings := runVocab(text, d.vocabRules)
	findings = append(findings, detector.RunRules(text, d.Name(), d.dosageRules)...)
	return findings
}

// runVocab evaluates vocabulary rules with the known_pharmaceutical method
// label so the audit trail distinguishes vocabulary hits from dosage-shape
// hits.
func runVocab(text string, rules []detector.Rule) []detector.Finding {
	return detector.RunRules(text, "known_pharmaceutical", rules)
}

// Vocabulary returns a copy of the fixed term list, for help output.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}

// IsKnownTerm reports whether word is in the fixed vocabulary.
func IsKnownTerm(word string) bool {
	lower := strings.ToLower(strings.TrimSpace(word))
	for _, term := range vocabulary {
		if term == lower {
			return true
		}
	}
	return false
}
