// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package engine wires the detection pipeline: normalize, run the
// detector battery and the optional model-backed pass, resolve overlaps,
// classify, merge user tags, render. One invocation per field; fields are
// independent and share no mutable state beyond the content-keyed caches.
package engine

import (
	"context"
	"fmt"

	"clara-redact/internal/cache"
	"clara-redact/internal/classify"
	"clara-redact/internal/config"
	"clara-redact/internal/detector"
	"clara-redact/internal/detectors/contact"
	"clara-redact/internal/detectors/date"
	"clara-redact/internal/detectors/financial"
	"clara-redact/internal/detectors/location"
	"clara-redact/internal/detectors/manufacturing"
	"clara-redact/internal/detectors/medicalid"
	"clara-redact/internal/detectors/name"
	"clara-redact/internal/detectors/pharma"
	"clara-redact/internal/detectors/profanity"
	"clara-redact/internal/fieldstore"
	"clara-redact/internal/ner"
	"clara-redact/internal/normalize"
	"clara-redact/internal/observability"
	"clara-redact/internal/redact"
	"clara-redact/internal/resolver"
	"clara-redact/internal/usertags"
)

// emittedTypes is every type the built-in battery can produce. Checked
// against the classification table at engine construction so a new
// detector type cannot silently ride the fail-safe default into
// production audits.
var emittedTypes = []string{
	"NAME", "PHONE", "EMAIL", "SSN", "FACILITY", "LOCATION", "ADDRESS",
	"ZIP", "DATE", "MEDICAL_ID", "ID", "PHARMACEUTICAL",
	"MANUFACTURING_NUMBER", "TRANSMITTER_ANALYZER", "REGULATORY_NUMBER",
	"MANUFACTURING_SPEC", "FINANCIAL", "COMMERCIAL", "PROFANITY",
	"ORGANIZATION",
}

// Engine runs the per-field redaction pipeline.
type Engine struct {
	cfg        *config.Config
	detectors  []detector.Detector
	nerDet     *ner.Detector
	normalizer normalize.Normalizer
	observer   *observability.StandardObserver

	detectionCache *cache.Cache[[]detector.Finding]
	normalizeCache *cache.Cache[string]
}

// New builds an engine from configuration. classifier may be nil, which
// disables the model-backed organization pass.
func New(cfg *config.Config, classifier ner.Classifier, observer *observability.StandardObserver) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}

	e := &Engine{
		cfg:            cfg,
		normalizer:     normalize.NewCleaner(normalize.ParseLevel(cfg.Normalize)),
		observer:       observer,
		nerDet:         ner.NewDetector(classifier, observer),
		detectionCache: cache.New[[]detector.Finding](),
		normalizeCache: cache.New[string](),
	}

	battery := map[string]detector.Detector{
		"name":          name.NewDetector(),
		"contact":       contact.NewDetector(),
		"location":      location.NewDetector(),
		"date":          date.NewDetector(),
		"medicalid":     medicalid.NewDetector(),
		"pharma":        pharma.NewDetector(),
		"manufacturing": manufacturing.NewDetector(),
		"financial":     financial.NewDetector(),
		"profanity":     profanity.NewDetector(),
	}
	// Stable battery order keeps audit output reproducible.
	for _, key := range []string{"name", "contact", "location", "date", "medicalid", "pharma", "manufacturing", "financial", "profanity"} {
		if cfg.DetectorEnabled(key) {
			e.detectors = append(e.detectors, battery[key])
		}
	}

	for _, t := range emittedTypes {
		if !classify.IsKnownType(t) {
			observer.Warnf("detector type %s has no classification entry; it will default to B6", t)
		}
	}

	return e
}

// ResetCaches discards cached detection and normalization results. Call
// between documents or after a configuration change.
func (e *Engine) ResetCaches() {
	e.detectionCache.Reset()
	e.normalizeCache.Reset()
}

// Normalize returns the cleaned-up text for a field, cached by content
// and correction configuration.
func (e *Engine) Normalize(text string) string {
	key := cache.Key(text, e.normalizer.Fingerprint())
	return e.normalizeCache.GetOrCompute(key, func() string {
		return e.normalizer.Normalize(text)
	})
}

// RunDetection runs the full detector battery plus the model-backed pass
// over text, returning raw, possibly overlapping candidates. Results are
// cached by (text, configuration).
func (e *Engine) RunDetection(ctx context.Context, text string) []detector.Finding {
	key := cache.Key(text, e.cfg.Fingerprint())
	return e.detectionCache.GetOrCompute(key, func() []detector.Finding {
		var all []detector.Finding
		for _, det := range e.detectors {
			all = append(all, e.runDetector(det, text)...)
		}
		all = append(all, e.nerDet.Detect(ctx, text, all)...)
		return all
	})
}

// runDetector isolates one sub-detector call: a panicking detector loses
// its contribution for this field and nothing else.
func (e *Engine) runDetector(det detector.Detector, text string) (findings []detector.Finding) {
	defer func() {
		if r := recover(); r != nil {
			findings = nil
			e.observer.LogOperation(observability.OperationData{
				Component: "engine",
				Operation: "run_detector",
				Success:   false,
				Error:     fmt.Sprintf("detector %s panicked: %v", det.Name(), r),
			})
		}
	}()
	return det.Detect(text)
}

// FieldResult is the outcome of processing one field.
type FieldResult struct {
	Field      string
	Page       int
	Original   string
	Normalized string
	Redacted   string
	Findings   []classify.ClassifiedFinding
	Records    []redact.AuditRecord

	// NeedsReview marks a field the engine could not process. Its value
	// is left untouched and must be reviewed manually rather than
	// released unredacted.
	NeedsReview bool
	Err         error
}

// ProcessField runs the complete pipeline over one field's text.
func (e *Engine) ProcessField(ctx context.Context, field fieldstore.Field, tags []usertags.UserTag) (result FieldResult) {
	finish := e.observer.StartTiming("engine", "process_field", field.ID)
	defer func() {
		if r := recover(); r != nil {
			result = FieldResult{
				Field:       field.ID,
				Page:        field.Page,
				Original:    field.Text,
				Redacted:    field.Text,
				NeedsReview: true,
				Err:         fmt.Errorf("field processing panicked: %v", r),
			}
		}
		finish(!result.NeedsReview, len(result.Records))
	}()

	normalized := e.Normalize(field.Text)

	candidates := e.RunDetection(ctx, normalized)
	resolved := resolver.Resolve(candidates)
	classified := classify.Classify(resolved)

	spans := usertags.Merge(normalized, classified, e.validTags(tags))
	redacted, records := redact.Render(field.ID, field.Page, normalized, toRenderSpans(spans), redact.Options{
		Mode:          redact.ParseMode(e.cfg.Mode),
		PreserveWidth: e.cfg.PreserveWidth,
	})

	return FieldResult{
		Field:      field.ID,
		Page:       field.Page,
		Original:   field.Text,
		Normalized: normalized,
		Redacted:   redacted,
		Findings:   classified,
		Records:    records,
	}
}

// validTags normalizes tags and drops malformed ones with a warning.
func (e *Engine) validTags(tags []usertags.UserTag) []usertags.UserTag {
	valid := make([]usertags.UserTag, 0, len(tags))
	for _, tag := range tags {
		if err := tag.Normalize(); err != nil {
			e.observer.Warnf("skipping user tag: %v", err)
			continue
		}
		valid = append(valid, tag)
	}
	return valid
}

// toRenderSpans converts merged spans into the renderer's shape.
func toRenderSpans(spans []usertags.Span) []redact.Span {
	out := make([]redact.Span, 0, len(spans))
	for _, s := range spans {
		if s.Tag != nil {
			out = append(out, redact.Span{
				Start:       s.Start,
				End:         s.End,
				Type:        s.Tag.Type,
				Category:    s.Tag.Label,
				Original:    s.Text,
				Confidence:  1,
				Method:      "user_tag",
				Replacement: s.Tag.Replacement(),
			})
			continue
		}
		out = append(out, redact.Span{
			Start:          s.Start,
			End:            s.End,
			Type:           s.Auto.Type,
			Classification: s.Auto.Classification,
			Category:       s.Auto.Category,
			Original:       s.Auto.Original,
			Confidence:     s.Auto.Confidence,
			Method:         s.Auto.Method,
		})
	}
	return out
}

// FilterByClassification returns only the records in the given
// disclosure category (B4 or B6). User-tag records match on their type.
func FilterByClassification(records []redact.AuditRecord, classification string) []redact.AuditRecord {
	var out []redact.AuditRecord
	for _, r := range records {
		if r.Classification == classification || (r.Classification == "" && r.Type == classification) {
			out = append(out, r)
		}
	}
	return out
}
