// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package csv

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"clara-redact/internal/formatters"
	"clara-redact/internal/redact"
)

// Formatter implements CSV audit output for spreadsheet review.
type Formatter struct{}

// NewFormatter creates a new CSV formatter.
func NewFormatter() *Formatter { return &Formatter{} }

func (f *Formatter) Name() string          { return "csv" }
func (f *Formatter) FileExtension() string { return ".csv" }

// Format renders one row per redaction.
func (f *Formatter) Format(doc string, records []redact.AuditRecord, options formatters.Options) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"document", "page", "field", "type", "classification", "category", "replacement", "start", "end", "confidence", "method"}
	if options.ShowOriginal {
		header = append(header, "original")
	}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			doc,
			strconv.Itoa(r.Page),
			r.Field,
			r.Type,
			r.Classification,
			r.Category,
			r.Replacement,
			strconv.Itoa(r.Start),
			strconv.Itoa(r.End),
			strconv.FormatFloat(r.Confidence, 'f', 2, 64),
			r.Method,
		}
		if options.ShowOriginal {
			row = append(row, r.Original)
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.String(), nil
}

func init() {
	formatters.Register(NewFormatter())
}
