// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package json

import (
	"encoding/json"
	"fmt"

	"clara-redact/internal/formatters"
	"clara-redact/internal/redact"
)

// Formatter implements structured JSON audit output.
type Formatter struct{}

// NewFormatter creates a new JSON formatter.
func NewFormatter() *Formatter { return &Formatter{} }

func (f *Formatter) Name() string          { return "json" }
func (f *Formatter) FileExtension() string { return ".json" }

type document struct {
	Document string               `json:"document"`
	Count    int                  `json:"redaction_count"`
	Records  []redact.AuditRecord `json:"redactions"`
}

// Format renders records as an indented JSON document.
func (f *Formatter) Format(doc string, records []redact.AuditRecord, options formatters.Options) (string, error) {
	out := document{Document: doc, Count: len(records), Records: records}
	if !options.ShowOriginal {
		out.Records = make([]redact.AuditRecord, len(records))
		copy(out.Records, records)
		for i := range out.Records {
			out.Records[i].Original = ""
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode audit JSON: %w", err)
	}
	return string(data), nil
}

func init() {
	formatters.Register(NewFormatter())
}
