// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Finding represents a single detected candidate span within a field's text.
// Offsets are half-open byte offsets into the source text, so for any
// finding f: 0 <= f.Start < f.End <= len(text).
type Finding struct {
	// Type is an open category tag (NAME, SSN, EMAIL, PHARMACEUTICAL, ...).
	// New detectors may introduce new types; classification handles
	// unrecognized types with a fail-safe default.
	Type string

	// Original is the exact substring that matched.
	Original string

	// Start and End are half-open offsets into the source text.
	Start int
	End   int

	// Confidence is a detector-assigned score in (0, 1]. It is used only
	// as a tie-break during overlap resolution, not as a probability.
	Confidence float64

	// Method identifies the detector that produced this finding.
	Method string
}

// Overlaps reports whether f and other cover any common text region.
func (f Finding) Overlaps(other Finding) bool {
	return f.Start < other.End && f.End > other.Start
}

// CoversRange reports whether the byte range [start, end) intersects f.
func (f Finding) CoversRange(start, end int) bool {
	return start < f.End && end > f.Start
}

// Detector is implemented by every sub-detector in the battery. A detector
// is stateless per call: it only reads the text and returns candidate
// findings. Overlapping candidates across detectors are expected and are
// resolved downstream, never inside a detector.
type Detector interface {
	// Name returns the detector identifier used in Finding.Method.
	Name() string

	// Detect scans text and returns all candidate findings.
	Detect(text string) []Finding
}
