// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeEntity, ParseMode("entity"))
	assert.Equal(t, ModeEntity, ParseMode(" Entity "))
	assert.Equal(t, ModeCategory, ParseMode("category"))
	assert.Equal(t, ModeCategory, ParseMode("bogus"))
	assert.Equal(t, "entity", ModeEntity.String())
	assert.Equal(t, "category", ModeCategory.String())
}

func TestRender_CategoryMode(t *testing.T) {
	text := "Dr. John Smith took acetaminophen"
	spans := []Span{
		{Start: 4, End: 14, Type: "NAME", Classification: "B6", Original: "John Smith", Confidence: 0.95, Method: "name_pattern"},
		{Start: 20, End: 33, Type: "PHARMACEUTICAL", Classification: "B4", Original: "acetaminophen", Confidence: 0.9, Method: "known_pharmaceutical"},
	}

	redacted, records := Render("field_1", 1, text, spans, Options{Mode: ModeCategory})
	assert.Equal(t, "Dr. [REDACTED_B6] took [REDACTED_B4]", redacted)

	require.Len(t, records, 2)
	// Audit records read in ascending start order.
	assert.Equal(t, "John Smith", records[0].Original)
	assert.Equal(t, "[REDACTED_B6]", records[0].Replacement)
	assert.Equal(t, "acetaminophen", records[1].Original)
	assert.Equal(t, "field_1", records[1].Field)
	assert.Equal(t, 1, records[1].Page)
}

func TestRender_EntityMode(t *testing.T) {
	text := "SSN 123-45-6789"
	spans := []Span{
		{Start: 4, End: 15, Type: "SSN", Classification: "B6", Original: "123-45-6789"},
	}

	redacted, _ := Render("f", 1, text, spans, Options{Mode: ModeEntity})
	assert.Equal(t, "SSN [SSN]", redacted)
}

func TestRender_EntityModePreservesWidth(t *testing.T) {
	text := "SSN 123-45-6789"
	spans := []Span{
		{Start: 4, End: 15, Type: "SSN", Classification: "B6", Original: "123-45-6789"},
	}

	redacted, _ := Render("f", 1, text, spans, Options{Mode: ModeEntity, PreserveWidth: true})
	// Original span is 11 bytes, the tag 5, so 6 spaces of padding.
	assert.Equal(t, "SSN "+strings.Repeat(" ", 6)+"[SSN]", redacted)
	assert.Len(t, redacted, len(text))
}

func TestRender_UserTagReplacementOverride(t *testing.T) {
	text := "took acetaminophen daily"
	spans := []Span{
		{Start: 5, End: 18, Type: "B4", Original: "acetaminophen", Method: "user_tag", Replacement: "[B4 - trade secret]"},
	}

	redacted, records := Render("f", 1, text, spans, Options{Mode: ModeCategory})
	assert.Equal(t, "took [B4 - trade secret] daily", redacted)
	require.Len(t, records, 1)
	assert.Equal(t, "[B4 - trade secret]", records[0].Replacement)
	assert.Equal(t, "user_tag", records[0].Method)
}

func TestRender_Deterministic(t *testing.T) {
	text := "a John Smith b 123-45-6789 c acetaminophen d"
	spans := []Span{
		{Start: 2, End: 12, Type: "NAME", Classification: "B6", Original: "John Smith"},
		{Start: 15, End: 26, Type: "SSN", Classification: "B6", Original: "123-45-6789"},
		{Start: 29, End: 42, Type: "PHARMACEUTICAL", Classification: "B4", Original: "acetaminophen"},
	}

	first, firstRecords := Render("f", 1, text, spans, Options{})
	second, secondRecords := Render("f", 1, text, spans, Options{})
	assert.Equal(t, first, second)
	assert.Equal(t, firstRecords, secondRecords)

	// Span input order must not matter.
	reversed := []Span{spans[2], spans[0], spans[1]}
	third, thirdRecords := Render("f", 1, text, reversed, Options{})
	assert.Equal(t, first, third)
	assert.Equal(t, firstRecords, thirdRecords)
}

func TestRender_SkipsOutOfRangeSpans(t *testing.T) {
	text := "short"
	spans := []Span{
		{Start: 2, End: 99, Type: "NAME", Classification: "B6"},
		{Start: -1, End: 3, Type: "NAME", Classification: "B6"},
		{Start: 4, End: 4, Type: "NAME", Classification: "B6"},
	}

	redacted, records := Render("f", 1, text, spans, Options{})
	assert.Equal(t, "short", redacted)
	assert.Empty(t, records)
}

func TestRender_NoSpans(t *testing.T) {
	redacted, records := Render("f", 1, "untouched", nil, Options{})
	assert.Equal(t, "untouched", redacted)
	assert.Empty(t, records)
}
