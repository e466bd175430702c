// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"clara-redact/internal/formatters"
	"clara-redact/internal/redact"
)

// Formatter implements human-readable terminal output.
type Formatter struct {
	colors map[string]*color.Color
}

// NewFormatter creates a new text formatter.
func NewFormatter() *Formatter {
	return &Formatter{
		colors: map[string]*color.Color{
			"B4":     color.New(color.FgYellow),
			"B6":     color.New(color.FgCyan),
			"header": color.New(color.FgWhite, color.Bold),
		},
	}
}

func (f *Formatter) Name() string          { return "text" }
func (f *Formatter) FileExtension() string { return ".txt" }

// Format renders a per-document summary table with B4/B6 counts.
func (f *Formatter) Format(doc string, records []redact.AuditRecord, options formatters.Options) (string, error) {
	if options.NoColor {
		color.NoColor = true
	}

	var sb strings.Builder
	f.colors["header"].Fprintf(&sb, "Redaction summary: %s\n", doc)

	if len(records) == 0 {
		sb.WriteString("  no redactions\n")
		return sb.String(), nil
	}

	var b4, b6 int
	for _, r := range records {
		switch classificationOf(r) {
		case "B4":
			b4++
		default:
			b6++
		}
	}
	fmt.Fprintf(&sb, "  %d redactions (B4: %d, B6: %d)\n\n", len(records), b4, b6)

	for _, r := range records {
		cls := classificationOf(r)
		c, ok := f.colors[cls]
		if !ok {
			c = f.colors["B6"]
		}
		c.Fprintf(&sb, "  [%s]", cls)
		fmt.Fprintf(&sb, " page %d, field %s: %s -> %s", r.Page, r.Field, r.Type, r.Replacement)
		if options.ShowOriginal {
			fmt.Fprintf(&sb, " (%q)", r.Original)
		}
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// classificationOf resolves the display classification: user-tag records
// carry it in the type.
func classificationOf(r redact.AuditRecord) string {
	if r.Classification != "" {
		return r.Classification
	}
	if r.Type == "B4" || r.Type == "B6" {
		return r.Type
	}
	return "B6"
}

func init() {
	formatters.Register(NewFormatter())
}
