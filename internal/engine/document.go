// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"context"
	"fmt"
	"strings"

	"clara-redact/internal/fieldstore"
	"clara-redact/internal/redact"
	"clara-redact/internal/usertags"
)

// DocumentResult aggregates per-field outcomes for one document.
type DocumentResult struct {
	Fields  []FieldResult
	Records []redact.AuditRecord

	// NeedsReview lists fields that could not be processed and were left
	// untouched. A non-empty list is a processing failure for the
	// document: those fields may still contain sensitive content.
	NeedsReview []string

	// WrittenFields counts fields whose redacted value was written back.
	WrittenFields int
}

// Failed reports whether any field needs manual review.
func (r *DocumentResult) Failed() bool { return len(r.NeedsReview) > 0 }

// ProcessDocument runs the pipeline over every text field of a document
// and writes redacted values back through the store. Empty fields are
// passed over. Fields flagged for review keep their original value; the
// caller must not release them as redacted.
func (e *Engine) ProcessDocument(ctx context.Context, store fieldstore.Store, tags *usertags.TagFile) (*DocumentResult, error) {
	fields, err := store.ListFields()
	if err != nil {
		return nil, fmt.Errorf("failed to list document fields: %w", err)
	}

	result := &DocumentResult{}
	for _, field := range fields {
		if strings.TrimSpace(field.Text) == "" {
			continue
		}

		fr := e.ProcessField(ctx, field, tags.ForField(field.ID, field.Page))
		result.Fields = append(result.Fields, fr)
		result.Records = append(result.Records, fr.Records...)

		if fr.NeedsReview {
			result.NeedsReview = append(result.NeedsReview, fr.Field)
			continue
		}
		if field.ReadOnly || fr.Redacted == fr.Normalized {
			continue
		}

		if err := store.SetFieldText(field.ID, fr.Redacted); err != nil {
			// No alternative path to persist this field's redaction.
			return result, fmt.Errorf("failed to write field %q: %w", field.ID, err)
		}
		result.WrittenFields++
	}

	return result, nil
}
