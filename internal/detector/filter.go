// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// stoplist holds common words that must never be emitted as findings,
// regardless of which pattern matched them. Lowercase entries only.
var stoplist = map[string]struct{}{}

var stoplistWords = []string{
	// Articles, auxiliaries and basic function words
	"a", "an", "the", "and", "or", "but", "may", "will", "can", "could",
	"would", "should", "must", "with", "at", "to", "for", "of", "in", "on",
	"no", "yes", "not", "all", "any", "some", "each", "every", "this",
	"that", "these", "those", "his", "her", "their", "its", "our", "your",

	// Common verbs
	"be", "is", "was", "were", "are", "been", "being", "have", "has", "had",
	"do", "does", "did", "get", "got", "go", "went", "come", "came", "see",
	"saw", "know", "knew", "think", "thought", "say", "said", "tell", "told",

	// Connectors and prepositions
	"if", "when", "where", "how", "why", "what", "who", "which", "then",
	"now", "here", "there", "up", "down", "out", "over", "under", "through",
	"between", "among", "during", "before", "after", "since", "until",
	"from", "into", "onto", "upon", "about", "above", "below", "beside",
	"beyond", "within", "without", "toward", "towards", "across", "around",

	// Pronouns and short quantifiers
	"i", "we", "he", "she", "it", "they", "me", "us", "him", "them",
	"my", "one", "two", "ten", "old", "new", "big", "small",

	// Adverbs and misc
	"per", "via", "plus", "minus", "times", "versus", "vs", "etc", "ie", "eg",
	"so", "as", "by", "off", "nor", "yet", "else", "both", "either",
	"neither", "such", "same", "other", "another", "much", "many", "more",
	"most", "less", "few", "little", "own", "only", "just", "even", "also",
	"too", "very", "quite", "rather", "still", "already", "almost", "enough",

	// Domain words that are never sensitive on their own
	"needle", "thread", "package", "sealed", "otherwise", "intact",
	"functional", "appeared", "closed", "involvement", "detached",
	"reported", "issue", "client", "patient", "doctor", "nurse",
	"hospital", "medical", "form", "fda",
}

func init() {
	for _, w := range stoplistWords {
		stoplist[w] = struct{}{}
	}
}

// IsFalsePositive reports whether a matched token is a known low-value
// match: a stoplist word, a token of two characters or fewer after
// trimming, or a short all-uppercase acronym.
func IsFalsePositive(word string) bool {
	trimmed := strings.TrimSpace(word)
	lower := strings.ToLower(trimmed)

	if _, ok := stoplist[lower]; ok {
		return true
	}
	if len(lower) <= 2 {
		return true
	}
	// Acronym guard: FDA, ISO, MRN and similar.
	if len(trimmed) <= 3 && trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed) {
		return true
	}
	return false
}

// InStoplist reports whether the word itself (case-insensitively) is in
// the shared stoplist, without the length-based checks.
func InStoplist(word string) bool {
	_, ok := stoplist[strings.ToLower(strings.TrimSpace(word))]
	return ok
}
