// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package contact

import "testing"

func TestDetect_Phones(t *testing.T) {
	d := NewDetector()

	findings := d.Detect("call (555) 123-4567 after hours")
	if len(findings) != 1 || findings[0].Original != "(555) 123-4567" || findings[0].Type != "PHONE" {
		t.Errorf("parenthesized phone: got %+v", findings)
	}
	if findings[0].Confidence != 0.95 {
		t.Errorf("parenthesized phone confidence = %v, want 0.95", findings[0].Confidence)
	}

	findings = d.Detect("fax 555-123-4567 days")
	if len(findings) != 1 || findings[0].Original != "555-123-4567" || findings[0].Confidence != 0.9 {
		t.Errorf("plain phone: got %+v", findings)
	}
}

func TestDetect_Email(t *testing.T) {
	d := NewDetector()
	findings := d.Detect("Contact: jane.doe@example.com for details")
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %+v", findings)
	}
	f := findings[0]
	if f.Type != "EMAIL" || f.Original != "jane.doe@example.com" || f.Confidence != 0.98 {
		t.Errorf("email finding: got %+v", f)
	}
}

func TestDetect_SSN(t *testing.T) {
	d := NewDetector()
	findings := d.Detect("SSN 123-45-6789 verified")
	if len(findings) != 1 || findings[0].Type != "SSN" || findings[0].Original != "123-45-6789" {
		t.Errorf("ssn finding: got %+v", findings)
	}
}

func TestDetect_SSNNotAPhone(t *testing.T) {
	d := NewDetector()
	for _, f := range d.Detect("SSN 123-45-6789 verified") {
		if f.Type == "PHONE" {
			t.Errorf("3-2-4 digit grouping misread as a phone: %+v", f)
		}
	}
}
