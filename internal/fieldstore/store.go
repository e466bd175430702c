// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package fieldstore abstracts the document container behind a small
// field-oriented interface. The detection engine never parses or writes a
// PDF itself; it lists fields, rewrites their text, and saves through a
// Store.
package fieldstore

// Field is one extracted text field.
type Field struct {
	// ID identifies the field within its document (the AcroForm field
	// name, or a synthesized name for page-text fallback fields).
	ID string

	// Page is the 1-based page number the field's widget sits on.
	Page int

	// Text is the field's current value.
	Text string

	// ReadOnly marks fields that cannot be written back (page-text
	// fallback extraction, read-only form flags).
	ReadOnly bool
}

// Store exposes a document's text fields. Implementations own the
// container format; errors from a Store are hard failures for the
// affected document since the engine has no other path to persist
// results.
type Store interface {
	// ListFields returns every text field in the document.
	ListFields() ([]Field, error)

	// SetFieldText replaces a field's value. Writing an unknown or
	// read-only field is an error.
	SetFieldText(fieldID, text string) error

	// Save writes the modified document to outputPath.
	Save(outputPath string) error
}
