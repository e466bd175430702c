// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver turns the union of all candidate findings into a
// non-overlapping set.
//
// The algorithm is greedy by start offset with confidence tie-breaks, not
// a global-optimum interval schedule. A later higher-confidence span
// cannot rescue a region an earlier span already blocked at a different
// position. That order dependence is deliberate and load-bearing: spans
// are sparse in practice, and downstream fixtures depend on the exact
// greedy behavior.
package resolver

import (
	"sort"

	"clara-redact/internal/detector"
)

// Resolve merges candidates into a non-overlapping set. For every pair
// (a, b) of returned findings, a.End <= b.Start or b.End <= a.Start.
// Candidates are walked in ascending start order; on overlap with an
// accepted span, the higher-confidence finding wins and ties keep the
// already-accepted one.
func Resolve(candidates []detector.Finding) []detector.Finding {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]detector.Finding, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var accepted []detector.Finding
	for _, candidate := range sorted {
		overlapped := false
		for i := range accepted {
			if candidate.Overlaps(accepted[i]) {
				if candidate.Confidence > accepted[i].Confidence {
					accepted[i] = candidate
				}
				overlapped = true
				break
			}
		}
		if !overlapped {
			accepted = append(accepted, candidate)
		}
	}

	return accepted
}
