// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package fieldstore

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// maxFallbackPages bounds extraction time on very large documents.
const maxFallbackPages = 50

// PageTextStore is a read-only Store over plain page text, used when a
// PDF carries no AcroForm. Each page becomes one synthetic field, so
// detection and audit reporting still run; redacted values cannot be
// written back into the container.
type PageTextStore struct {
	fields []Field
}

// OpenPageText extracts per-page text from a PDF without form fields.
func OpenPageText(path string) (*PageTextStore, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for text extraction: %w", err)
	}
	defer f.Close()

	pageCount := r.NumPage()
	if pageCount > maxFallbackPages {
		pageCount = maxFallbackPages
	}

	store := &PageTextStore{}
	for i := 1; i <= pageCount; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		store.fields = append(store.fields, Field{
			ID:       fmt.Sprintf("page_%d", i),
			Page:     i,
			Text:     text,
			ReadOnly: true,
		})
	}
	return store, nil
}

// ListFields implements Store.
func (s *PageTextStore) ListFields() ([]Field, error) {
	out := make([]Field, len(s.fields))
	copy(out, s.fields)
	return out, nil
}

// SetFieldText implements Store. Page-text fields are never writable.
func (s *PageTextStore) SetFieldText(fieldID, text string) error {
	return fmt.Errorf("page-text field %q is read-only", fieldID)
}

// Save implements Store. There is nothing to persist for a read-only
// store; the audit trail is the output.
func (s *PageTextStore) Save(outputPath string) error {
	return fmt.Errorf("page-text store cannot write a redacted document")
}
