// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"encoding/csv"
	"strings"
	"testing"

	"clara-redact/internal/formatters"
	"clara-redact/internal/redact"
)

func TestFormat(t *testing.T) {
	records := []redact.AuditRecord{
		{
			Field: "field_1", Page: 1, Type: "SSN", Classification: "B6",
			Category: "Patient/Medical Information", Original: "123-45-6789",
			Replacement: "[REDACTED_B6]", Start: 4, End: 15, Confidence: 0.95,
			Method: "contact_pattern",
		},
	}

	out, err := NewFormatter().Format("report.pdf", records, formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "document" || rows[0][3] != "type" {
		t.Errorf("header row: %v", rows[0])
	}
	row := rows[1]
	if row[0] != "report.pdf" || row[2] != "field_1" || row[3] != "SSN" || row[9] != "0.95" {
		t.Errorf("data row: %v", row)
	}
	if len(row) != 11 {
		t.Errorf("original column should be absent by default, row has %d cells", len(row))
	}
}

func TestFormat_ShowOriginal(t *testing.T) {
	records := []redact.AuditRecord{
		{Field: "f", Page: 1, Type: "NAME", Original: "John Smith", Replacement: "[REDACTED_B6]"},
	}

	out, err := NewFormatter().Format("doc.pdf", records, formatters.Options{ShowOriginal: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if rows[0][len(rows[0])-1] != "original" {
		t.Errorf("header should end with original: %v", rows[0])
	}
	if rows[1][len(rows[1])-1] != "John Smith" {
		t.Errorf("row should carry original: %v", rows[1])
	}
}
