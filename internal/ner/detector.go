// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package ner

import (
	"context"
	"regexp"
	"strings"

	"clara-redact/internal/detector"
	"clara-redact/internal/observability"
)

const (
	// acceptThreshold is the minimum model score for a token to be kept.
	acceptThreshold = 0.6

	// confidenceDiscount compensates for the added uncertainty of
	// classifying a single token out of context.
	confidenceDiscount = 0.8

	// orgWindow and codeWindow are the context window sizes, in bytes,
	// around a candidate token when looking for trigger keywords.
	orgWindow  = 30
	codeWindow = 20
)

var (
	capitalizedWord = regexp.MustCompile(`\b[A-Z][a-z]{2,}\b`)

	alphanumericCodes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z]{1,2}\d{4,}[A-Z]*\b`),
		regexp.MustCompile(`\b\d{2,}[A-Z]{2,}\d*\b`),
	}

	orgTriggers = []string{
		"manufacturer", "company", "made by", "produced by", "distributor",
		"supplier", "corporation", "inc", "ltd", "llc", "contacted",
	}

	codeTriggers = []string{
		"registration", "clearance", "approval", "fda", "model",
		"serial", "part", "regulatory", "compliance",
	}
)

// Detector runs the model-backed pass over tokens the pattern battery
// missed. It only activates on tokens that survive the false-positive
// filter, are not already covered by an existing finding, and sit within
// a trigger-keyword window.
type Detector struct {
	classifier Classifier
	observer   *observability.StandardObserver
}

// NewDetector creates a model-backed detector. A nil classifier disables
// the organization pass; the regulatory-code pass is pattern-driven and
// still runs.
func NewDetector(classifier Classifier, observer *observability.StandardObserver) *Detector {
	return &Detector{classifier: classifier, observer: observer}
}

// Name returns the detector identifier used in Finding.Method.
func (d *Detector) Name() string { return "ner_targeted" }

// Detect scans text for organization names and irregular regulatory codes
// not already covered by existing findings. Model failures are swallowed:
// the affected token simply contributes nothing.
func (d *Detector) Detect(ctx context.Context, text string, existing []detector.Finding) []detector.Finding {
	var findings []detector.Finding

	// Pass 1: capitalized words in manufacturing context, confirmed by the model.
	if d.classifier != nil {
		for _, loc := range capitalizedWord.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			word := text[start:end]

			if detector.IsFalsePositive(word) || coveredByExisting(start, end, existing) {
				continue
			}
			if !hasTrigger(text, start, end, orgWindow, orgTriggers) {
				continue
			}

			score, err := d.classifier.ClassifyToken(ctx, word, "ORG")
			if err != nil {
				d.logSkip(word, err)
				continue
			}
			if score <= acceptThreshold {
				continue
			}

			findings = append(findings, detector.Finding{
				Type:       "ORGANIZATION",
				Original:   word,
				Start:      start,
				End:        end,
				Confidence: score * confidenceDiscount,
				Method:     "ner_targeted",
			})
		}
	}

	// Pass 2: leftover alphanumeric codes in regulatory context.
	for _, pattern := range alphanumericCodes {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			start, end := loc[0], loc[1]
			code := text[start:end]

			if detector.IsFalsePositive(code) ||
				coveredByExisting(start, end, existing) ||
				coveredByExisting(start, end, findings) {
				continue
			}
			if !hasTrigger(text, start, end, codeWindow, codeTriggers) {
				continue
			}

			findings = append(findings, detector.Finding{
				Type:       "REGULATORY_NUMBER",
				Original:   code,
				Start:      start,
				End:        end,
				Confidence: 0.85,
				Method:     "alphanumeric_pattern",
			})
		}
	}

	return findings
}

func (d *Detector) logSkip(word string, err error) {
	if d.observer == nil {
		return
	}
	d.observer.LogOperation(observability.OperationData{
		Component: "ner_detector",
		Operation: "classify_token",
		Success:   false,
		Error:     err.Error(),
		Metadata:  map[string]any{"token_length": len(word)},
	})
}

// coveredByExisting reports whether [start, end) overlaps any finding.
func coveredByExisting(start, end int, findings []detector.Finding) bool {
	for _, f := range findings {
		if f.CoversRange(start, end) {
			return true
		}
	}
	return false
}

// hasTrigger reports whether any trigger keyword appears in the window
// around [start, end).
func hasTrigger(text string, start, end, window int, triggers []string) bool {
	ctxStart := start - window
	if ctxStart < 0 {
		ctxStart = 0
	}
	ctxEnd := end + window
	if ctxEnd > len(text) {
		ctxEnd = len(text)
	}
	context := strings.ToLower(text[ctxStart:ctxEnd])

	for _, trigger := range triggers {
		if strings.Contains(context, trigger) {
			return true
		}
	}
	return false
}
