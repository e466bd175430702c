// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "testing"

func TestIsFalsePositive_Stoplist(t *testing.T) {
	cases := []string{"patient", "Patient", "PATIENT", "the", "hospital", "fda", "doctor"}
	for _, word := range cases {
		if !IsFalsePositive(word) {
			t.Errorf("expected %q to be filtered as a false positive", word)
		}
	}
}

func TestIsFalsePositive_ShortTokens(t *testing.T) {
	for _, word := range []string{"ab", "x", "", " a "} {
		if !IsFalsePositive(word) {
			t.Errorf("expected short token %q to be filtered", word)
		}
	}
}

func TestIsFalsePositive_AcronymGuard(t *testing.T) {
	if !IsFalsePositive("MRN") {
		t.Error("expected short all-caps acronym MRN to be filtered")
	}
	if !IsFalsePositive("ISO") {
		t.Error("expected short all-caps acronym ISO to be filtered")
	}
	// Longer all-caps tokens pass the acronym guard.
	if IsFalsePositive("ABCD") {
		t.Error("four-letter acronym should not be filtered by the guard")
	}
	// Mixed case of length three passes.
	if IsFalsePositive("Ann") {
		t.Error("mixed-case three-letter word should not be filtered")
	}
}

func TestIsFalsePositive_KeepsRealTokens(t *testing.T) {
	for _, word := range []string{"Smith", "acetaminophen", "Boston", "123-45-6789"} {
		if IsFalsePositive(word) {
			t.Errorf("did not expect %q to be filtered", word)
		}
	}
}

func TestInStoplist(t *testing.T) {
	if !InStoplist("Patient") {
		t.Error("Patient should be in the stoplist")
	}
	if InStoplist("Smith") {
		t.Error("Smith should not be in the stoplist")
	}
}
