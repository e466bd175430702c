// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"strings"
	"testing"

	"clara-redact/internal/formatters"
	"clara-redact/internal/redact"
)

func TestFormat_Summary(t *testing.T) {
	records := []redact.AuditRecord{
		{Field: "field_1", Page: 1, Type: "NAME", Classification: "B6", Replacement: "[REDACTED_B6]", Original: "John Smith"},
		{Field: "field_2", Page: 1, Type: "PHARMACEUTICAL", Classification: "B4", Replacement: "[REDACTED_B4]", Original: "acetaminophen"},
		{Field: "field_2", Page: 2, Type: "B4", Replacement: "[B4 - trade secret]", Original: "formula"},
	}

	out, err := NewFormatter().Format("report.pdf", records, formatters.Options{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if !strings.Contains(out, "report.pdf") {
		t.Errorf("missing document name: %q", out)
	}
	if !strings.Contains(out, "3 redactions (B4: 2, B6: 1)") {
		t.Errorf("missing counts line: %q", out)
	}
	// User-tag record renders under its type-derived classification.
	if !strings.Contains(out, "[B4] page 2") {
		t.Errorf("user-tag record line missing: %q", out)
	}
	if strings.Contains(out, "John Smith") {
		t.Errorf("original leaked without ShowOriginal: %q", out)
	}
}

func TestFormat_ShowOriginal(t *testing.T) {
	records := []redact.AuditRecord{
		{Field: "f", Page: 1, Type: "NAME", Classification: "B6", Replacement: "[REDACTED_B6]", Original: "John Smith"},
	}

	out, err := NewFormatter().Format("doc.pdf", records, formatters.Options{NoColor: true, ShowOriginal: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, `"John Smith"`) {
		t.Errorf("original missing: %q", out)
	}
}

func TestFormat_NoRecords(t *testing.T) {
	out, err := NewFormatter().Format("doc.pdf", nil, formatters.Options{NoColor: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !strings.Contains(out, "no redactions") {
		t.Errorf("empty summary: %q", out)
	}
}
