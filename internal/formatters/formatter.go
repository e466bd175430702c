// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters renders audit trails for export. Formatters register
// themselves at init and are looked up by name.
package formatters

import (
	"fmt"
	"strings"

	"clara-redact/internal/redact"
)

// Options controls formatter output.
type Options struct {
	// ShowOriginal includes the matched original text. Exported audit
	// files for compliance keep it; operator-facing summaries may not
	// want sensitive originals on screen.
	ShowOriginal bool

	// NoColor disables colored output for formatters that support it.
	NoColor bool
}

// Formatter renders one document's audit records.
type Formatter interface {
	// Format renders records to the output format.
	Format(document string, records []redact.AuditRecord, options Options) (string, error)

	// Name returns the formatter's registry name.
	Name() string

	// FileExtension returns the recommended extension, dot included.
	FileExtension() string
}

// Registry holds registered formatters by name.
type Registry struct {
	formatters map[string]Formatter
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Register adds a formatter.
func (r *Registry) Register(f Formatter) {
	r.formatters[f.Name()] = f
}

// Get retrieves a formatter by name.
func (r *Registry) Get(name string) (Formatter, bool) {
	f, ok := r.formatters[name]
	return f, ok
}

// List returns all registered names.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	return names
}

// DefaultRegistry is the process-wide registry formatters join at init.
var DefaultRegistry = NewRegistry()

// Register adds a formatter to the default registry.
func Register(f Formatter) {
	DefaultRegistry.Register(f)
}

// Export formats records with the named formatter from the default
// registry.
func Export(format, document string, records []redact.AuditRecord, options Options) (string, error) {
	f, ok := DefaultRegistry.Get(format)
	if !ok {
		return "", fmt.Errorf("unsupported format %q, available formats: %s",
			format, strings.Join(DefaultRegistry.List(), ", "))
	}
	return f.Format(document, records, options)
}
