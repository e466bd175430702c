// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"testing"

	"clara-redact/internal/formatters"
	"clara-redact/internal/redact"
)

var sampleRecords = []redact.AuditRecord{
	{
		Field: "field_1", Page: 1, Type: "NAME", Classification: "B6",
		Category: "Patient/Medical Information", Original: "John Smith",
		Replacement: "[REDACTED_B6]", Start: 4, End: 14, Confidence: 0.95,
		Method: "name_pattern",
	},
	{
		Field: "field_2", Page: 2, Type: "PHARMACEUTICAL", Classification: "B4",
		Category: "Trade Secret/Commercial Information", Original: "acetaminophen",
		Replacement: "[REDACTED_B4]", Start: 0, End: 13, Confidence: 0.9,
		Method: "known_pharmaceutical",
	},
}

func TestFormat(t *testing.T) {
	out, err := NewFormatter().Format("report.pdf", sampleRecords, formatters.Options{ShowOriginal: true})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded struct {
		Document string               `json:"document"`
		Count    int                  `json:"redaction_count"`
		Records  []redact.AuditRecord `json:"redactions"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	if decoded.Document != "report.pdf" || decoded.Count != 2 {
		t.Errorf("document header: %+v", decoded)
	}
	if decoded.Records[0].Original != "John Smith" {
		t.Errorf("original should be present: %+v", decoded.Records[0])
	}
}

func TestFormat_HidesOriginalByDefault(t *testing.T) {
	out, err := NewFormatter().Format("report.pdf", sampleRecords, formatters.Options{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	var decoded struct {
		Records []redact.AuditRecord `json:"redactions"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("output is not valid json: %v", err)
	}
	for _, r := range decoded.Records {
		if r.Original != "" {
			t.Errorf("original leaked: %+v", r)
		}
	}

	// The caller's records stay intact.
	if sampleRecords[0].Original != "John Smith" {
		t.Error("formatter must not mutate its input")
	}
}

func TestRegisteredInDefaultRegistry(t *testing.T) {
	f, ok := formatters.DefaultRegistry.Get("json")
	if !ok {
		t.Fatal("json formatter not registered")
	}
	if f.FileExtension() != ".json" {
		t.Errorf("extension = %q", f.FileExtension())
	}
}
