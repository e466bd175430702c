// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"testing"

	"clara-redact/internal/detector"
)

func TestClassifyOne_Table(t *testing.T) {
	cases := []struct {
		typ     string
		wantCls string
		wantCat string
	}{
		{"NAME", B6, CategoryB6},
		{"SSN", B6, CategoryB6},
		{"FACILITY", B6, CategoryB6},
		{"PROFANITY", B6, CategoryB6},
		{"PHARMACEUTICAL", B4, CategoryB4},
		{"MANUFACTURING_NUMBER", B4, CategoryB4},
		{"REGULATORY_NUMBER", B4, CategoryB4},
		{"COMMERCIAL", B4, CategoryB4},
	}
	for _, tc := range cases {
		cf := ClassifyOne(detector.Finding{Type: tc.typ})
		if cf.Classification != tc.wantCls || cf.Category != tc.wantCat {
			t.Errorf("%s: got (%s, %s), want (%s, %s)", tc.typ, cf.Classification, cf.Category, tc.wantCls, tc.wantCat)
		}
	}
}

func TestClassifyOne_UnknownDefaultsToB6(t *testing.T) {
	for _, typ := range []string{"MYSTERY", "", "name"} {
		cf := ClassifyOne(detector.Finding{Type: typ})
		if cf.Classification != B6 {
			t.Errorf("%q: classification = %s, want B6", typ, cf.Classification)
		}
		if cf.Category != CategoryB6Default {
			t.Errorf("%q: category = %s, want default label", typ, cf.Category)
		}
	}
}

func TestClassifyOne_Deterministic(t *testing.T) {
	f := detector.Finding{Type: "PHARMACEUTICAL", Original: "acetaminophen", Start: 3, End: 16, Confidence: 0.9}
	first := ClassifyOne(f)
	second := ClassifyOne(f)
	if first != second {
		t.Errorf("classification of the same finding differs: %+v vs %+v", first, second)
	}
	if first.Finding != f {
		t.Errorf("classification must not alter the finding: %+v", first.Finding)
	}
}

func TestClassify_PreservesOrderAndLength(t *testing.T) {
	findings := []detector.Finding{
		{Type: "NAME", Start: 0, End: 4},
		{Type: "PHARMACEUTICAL", Start: 10, End: 20},
		{Type: "SSN", Start: 30, End: 41},
	}
	classified := Classify(findings)
	if len(classified) != len(findings) {
		t.Fatalf("length changed: %d vs %d", len(classified), len(findings))
	}
	for i, cf := range classified {
		if cf.Finding != findings[i] {
			t.Errorf("finding %d altered: %+v", i, cf.Finding)
		}
	}
	if classified[1].Classification != B4 {
		t.Errorf("pharmaceutical finding should classify B4, got %s", classified[1].Classification)
	}
}

func TestIsKnownType(t *testing.T) {
	if !IsKnownType("NAME") || !IsKnownType("PHARMACEUTICAL") {
		t.Error("expected table entries to be known")
	}
	if IsKnownType("MYSTERY") {
		t.Error("MYSTERY should not be a known type")
	}
}
