// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "regexp"

// Rule is one entry in a sub-detector's ordered pattern battery. Each rule
// is evaluated independently: every non-overlapping match of its pattern
// becomes one candidate finding, even when rules within the same detector
// produce overlapping spans.
type Rule struct {
	// Pattern is the compiled expression for this rule.
	Pattern *regexp.Regexp

	// Confidence assigned to findings produced by this rule.
	Confidence float64

	// Type is the finding type emitted by this rule.
	Type string

	// Group selects the capture group holding the sensitive span.
	// 0 uses the whole match.
	Group int

	// Accept, when non-nil, is an extra per-match predicate applied after
	// the shared false-positive filter (e.g. date range validation or the
	// per-word name check). Returning false drops the candidate.
	Accept func(match string) bool
}

// RunRules evaluates each rule over text and returns the surviving
// candidates. The shared false-positive filter is applied to every match
// before it is emitted.
func RunRules(text, method string, rules []Rule) []Finding {
	var findings []Finding

	for _, rule := range rules {
		for _, loc := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if rule.Group > 0 && 2*rule.Group+1 < len(loc) && loc[2*rule.Group] >= 0 {
				start, end = loc[2*rule.Group], loc[2*rule.Group+1]
			}
			if start < 0 || end <= start {
				continue
			}

			match := text[start:end]
			if IsFalsePositive(match) {
				continue
			}
			if rule.Accept != nil && !rule.Accept(match) {
				continue
			}

			findings = append(findings, Finding{
				Type:       rule.Type,
				Original:   match,
				Start:      start,
				End:        end,
				Confidence: rule.Confidence,
				Method:     method,
			})
		}
	}

	return findings
}
