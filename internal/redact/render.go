// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package redact applies a resolved, non-overlapping span set to field
// text and produces the audit trail backing compliance reporting.
package redact

import (
	"fmt"
	"sort"
	"strings"
)

// Mode selects the replacement style for automatically classified spans.
type Mode int

const (
	// ModeCategory replaces spans with their disclosure category tag,
	// e.g. [REDACTED_B4].
	ModeCategory Mode = iota

	// ModeEntity replaces spans with their entity type, e.g. [SSN],
	// for review previews.
	ModeEntity
)

// ParseMode converts a string to a Mode. Unknown values fall back to
// category tags.
func ParseMode(s string) Mode {
	if strings.EqualFold(strings.TrimSpace(s), "entity") {
		return ModeEntity
	}
	return ModeCategory
}

// String returns the mode's config name.
func (m Mode) String() string {
	if m == ModeEntity {
		return "entity"
	}
	return "category"
}

// Options controls rendering.
type Options struct {
	Mode Mode

	// PreserveWidth left-pads entity tags with spaces to roughly keep the
	// visual width of the original text in fixed-width form rendering.
	// Only meaningful in ModeEntity.
	PreserveWidth bool
}

// AuditRecord describes one applied redaction. The records for a field,
// in order, fully determine the redacted output: rendering the same text
// and span set twice yields byte-identical results.
type AuditRecord struct {
	Field          string  `json:"field"`
	Page           int     `json:"page"`
	Type           string  `json:"type"`
	Classification string  `json:"classification,omitempty"`
	Category       string  `json:"category"`
	Original       string  `json:"original"`
	Replacement    string  `json:"replacement"`
	Start          int     `json:"start"`
	End            int     `json:"end"`
	Confidence     float64 `json:"confidence,omitempty"`
	Method         string  `json:"method"`
}

// Span is the renderer's view of one region to replace. The usertags
// merger produces values satisfying this shape via Plan.
type Span struct {
	Start          int
	End            int
	Type           string
	Classification string
	Category       string
	Original       string
	Confidence     float64
	Method         string

	// Replacement, when non-empty, overrides the mode-derived tag.
	// User-tag spans carry their [TYPE - label] rendering here.
	Replacement string
}

// Render applies spans to text in descending start order, so earlier
// replacements cannot invalidate the offsets of spans not yet applied.
// Spans must be non-overlapping; offsets out of range are skipped rather
// than corrupting the field.
func Render(field string, page int, text string, spans []Span, opts Options) (string, []AuditRecord) {
	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	redacted := text
	records := make([]AuditRecord, 0, len(ordered))

	for _, span := range ordered {
		if span.Start < 0 || span.End > len(redacted) || span.Start >= span.End {
			continue
		}

		replacement := span.Replacement
		if replacement == "" {
			replacement = replacementFor(span, opts)
		}

		redacted = redacted[:span.Start] + replacement + redacted[span.End:]
		records = append(records, AuditRecord{
			Field:          field,
			Page:           page,
			Type:           span.Type,
			Classification: span.Classification,
			Category:       span.Category,
			Original:       span.Original,
			Replacement:    replacement,
			Start:          span.Start,
			End:            span.End,
			Confidence:     span.Confidence,
			Method:         span.Method,
		})
	}

	// Records were collected in application order (descending start);
	// the audit trail reads top to bottom.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Start < records[j].Start
	})

	return redacted, records
}

// replacementFor builds the mode-derived tag for an automatic span.
func replacementFor(span Span, opts Options) string {
	switch opts.Mode {
	case ModeEntity:
		tag := fmt.Sprintf("[%s]", span.Type)
		if opts.PreserveWidth {
			if pad := span.End - span.Start - len(tag); pad > 0 {
				tag = strings.Repeat(" ", pad) + tag
			}
		}
		return tag
	default:
		return fmt.Sprintf("[REDACTED_%s]", span.Classification)
	}
}
