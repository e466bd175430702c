// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package financial

import "testing"

func TestDetect_CurrencyAmounts(t *testing.T) {
	d := NewDetector()

	findings := d.Detect("invoiced $ 1,250.00 last month")
	if len(findings) != 1 || findings[0].Original != "1,250.00" || findings[0].Type != "FINANCIAL" {
		t.Errorf("dollar-sign amount: got %+v", findings)
	}

	findings = d.Detect("paid 500 dollars upfront")
	if len(findings) != 1 || findings[0].Original != "500 dollars" {
		t.Errorf("spelled-out amount: got %+v", findings)
	}
}

func TestDetect_LabeledAmounts(t *testing.T) {
	d := NewDetector()
	findings := d.Detect("unit cost: 4,200.50 per batch")

	var found bool
	for _, f := range findings {
		if f.Original == "4,200.50" && f.Confidence == 0.9 {
			found = true
		}
	}
	if !found {
		t.Errorf("labeled amount: got %+v", findings)
	}
}

func TestDetect_CommercialPhrases(t *testing.T) {
	d := NewDetector()
	cases := []struct {
		text string
		want string
		conf float64
	}{
		{"this is a Trade Secret of the firm", "Trade Secret", 0.9},
		{"the proprietary formula is withheld", "proprietary formula", 0.8},
		{"uses confidential manufacturing steps", "confidential manufacturing", 0.85},
	}
	for _, tc := range cases {
		findings := d.Detect(tc.text)
		if len(findings) != 1 {
			t.Errorf("%q: expected 1 finding, got %+v", tc.text, findings)
			continue
		}
		f := findings[0]
		if f.Original != tc.want || f.Type != "COMMERCIAL" || f.Confidence != tc.conf {
			t.Errorf("%q: got %+v", tc.text, f)
		}
	}
}

func TestDetect_PlainNumbersIgnored(t *testing.T) {
	d := NewDetector()
	if findings := d.Detect("the batch held 500 vials"); len(findings) != 0 {
		t.Errorf("unlabeled bare number should not match, got %+v", findings)
	}
}
