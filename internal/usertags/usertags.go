// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package usertags merges operator-declared redaction tags with the
// automatically resolved findings. A user tag always outranks an
// automatic finding in a contested region.
package usertags

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"clara-redact/internal/classify"
)

// Priority levels for merged spans.
const (
	PriorityAuto = 1
	PriorityUser = 2
)

// defaultLabels maps a tag type to its bracket label when the operator
// did not supply one.
var defaultLabels = map[string]string{
	"B4": "trade secret",
	"B6": "patient info",
}

const fallbackLabel = "redacted"

// UserTag is an operator-supplied override. Text is matched literally,
// never as a regex.
type UserTag struct {
	Text  string `yaml:"text"`
	Type  string `yaml:"type"`
	Label string `yaml:"label,omitempty"`
}

// Normalize uppercases the type and fills the label from the fixed
// default table. It returns an error for tags missing required fields;
// such tags are skipped with a warning, never fatal.
func (t *UserTag) Normalize() error {
	if strings.TrimSpace(t.Text) == "" {
		return fmt.Errorf("user tag is missing required text")
	}
	t.Type = strings.ToUpper(strings.TrimSpace(t.Type))
	if t.Type == "" {
		t.Type = "TAG"
	}
	if t.Label == "" {
		if label, ok := defaultLabels[t.Type]; ok {
			t.Label = label
		} else {
			t.Label = fallbackLabel
		}
	}
	return nil
}

// Replacement returns the bracketed rendering for this tag.
func (t UserTag) Replacement() string {
	return fmt.Sprintf("[%s - %s]", t.Type, t.Label)
}

// TagFile is the structured user-tag definition document. Tags may be
// scoped to a field name, to a page number, or globally to all text.
type TagFile struct {
	Version string               `yaml:"version"`
	ByField map[string][]UserTag `yaml:"by_field"`
	ByPage  map[int][]UserTag    `yaml:"by_page"`
	Global  []UserTag            `yaml:"global"`
}

// LoadTagFile reads and parses a YAML user-tag definition file.
func LoadTagFile(path string) (*TagFile, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read tag file: %w", err)
	}

	var tf TagFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse tag file: %w", err)
	}
	return &tf, nil
}

// ForField returns the union of tags applying to the given field: tags
// matching its field name, tags matching its page, and global tags. The
// three sources are unioned, not prioritized against each other.
func (tf *TagFile) ForField(fieldName string, page int) []UserTag {
	if tf == nil {
		return nil
	}
	var tags []UserTag
	tags = append(tags, tf.ByField[fieldName]...)
	tags = append(tags, tf.ByPage[page]...)
	tags = append(tags, tf.Global...)
	return tags
}

// Span is one non-overlapping region of the final redaction plan. Exactly
// one of Auto and Tag is set, matching the Priority.
type Span struct {
	Start    int
	End      int
	Priority int
	Text     string

	Auto *classify.ClassifiedFinding
	Tag  *UserTag
}

// Length returns the span's width in bytes.
func (s Span) Length() int { return s.End - s.Start }

// Occurrences finds every literal, non-overlapping occurrence of the
// tag's text in the field text. The search runs against the
// pre-redaction text so user tags and automatic findings compete on the
// same offsets.
func Occurrences(text string, tag UserTag) []Span {
	var spans []Span
	for from := 0; from < len(text); {
		idx := strings.Index(text[from:], tag.Text)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(tag.Text)
		t := tag
		spans = append(spans, Span{
			Start:    start,
			End:      end,
			Priority: PriorityUser,
			Text:     tag.Text,
			Tag:      &t,
		})
		from = end
	}
	return spans
}

// Merge combines automatic findings and user-tag spans into a single
// ordered, non-overlapping span list ready for rendering. Sorting is by
// start ascending, then priority descending, then length descending, so
// at equal start the user tag (and then the longer match) is considered
// first. A span whose start lies before the accepted cursor displaces the
// last accepted span only with strictly higher priority, or equal
// priority and strictly greater length.
func Merge(text string, auto []classify.ClassifiedFinding, tags []UserTag) []Span {
	spans := make([]Span, 0, len(auto))
	for i := range auto {
		f := auto[i]
		spans = append(spans, Span{
			Start:    f.Start,
			End:      f.End,
			Priority: PriorityAuto,
			Text:     f.Original,
			Auto:     &f,
		})
	}
	for _, tag := range tags {
		spans = append(spans, Occurrences(text, tag)...)
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		if spans[i].Priority != spans[j].Priority {
			return spans[i].Priority > spans[j].Priority
		}
		return spans[i].Length() > spans[j].Length()
	})

	var accepted []Span
	cursor := 0
	for _, span := range spans {
		if span.Start >= cursor {
			accepted = append(accepted, span)
			cursor = span.End
			continue
		}

		if len(accepted) == 0 {
			continue
		}
		last := accepted[len(accepted)-1]
		if span.Priority > last.Priority ||
			(span.Priority == last.Priority && span.Length() > last.Length()) {
			accepted[len(accepted)-1] = span
			cursor = span.End
		}
	}

	return accepted
}
