// Copyright 2025 The glosslint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package filter implements the noise-removal chain applied before glossary
// extraction and consistency checking.
//
// Predicates are ordered and side-effect free. Corpus-wide occurrence counts
// for the minimum-occurrence predicate are taken once over the chain's full
// input, before any predicate runs, so global frequency semantics survive
// the earlier predicates shrinking the working set.
package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/glosslint/glosslint/match"
	"github.com/glosslint/glosslint/resolve"
)

// DefaultMaxSourceLen is the default source length ceiling in runes.
const DefaultMaxSourceLen = 50

// terminalPunct ends a sentence.
const terminalPunct = ".!?…。！？"

// interiorPunct inside a source marks it as prose rather than a term.
const interiorPunct = ",;:…、。！？!?"

// Options configures the chain.
type Options struct {
	// MaxSourceLen drops sources at or above this many runes. Zero means
	// DefaultMaxSourceLen.
	MaxSourceLen int

	// ExcludedScript drops pairs whose target contains this script. An
	// untranslated source copied into the target would otherwise count as a
	// valid translation.
	ExcludedScript match.Script

	// DropSentences drops sources ending in terminal sentence punctuation,
	// separating short glossary terms from sentences.
	DropSentences bool

	// MinOccurrence drops sources appearing fewer than this many times in
	// the chain's full input. Zero disables the predicate.
	MinOccurrence int
}

// Apply runs the chain over recs and returns the surviving records in input
// order.
func Apply(recs []resolve.Record, opts Options) []resolve.Record {
	maxLen := opts.MaxSourceLen
	if maxLen == 0 {
		maxLen = DefaultMaxSourceLen
	}

	// Global frequency, taken before any predicate runs.
	var counts map[string]int
	if opts.MinOccurrence > 0 {
		counts = make(map[string]int, len(recs))
		for _, r := range recs {
			counts[r.ResolvedSource]++
		}
	}

	var out []resolve.Record
	for _, r := range recs {
		if r.ResolvedSource == "" || r.Target == "" {
			continue
		}
		if utf8.RuneCountInString(r.ResolvedSource) >= maxLen {
			continue
		}
		if opts.ExcludedScript.Contains(r.Target) {
			continue
		}
		if opts.DropSentences && endsSentence(r.ResolvedSource) {
			continue
		}
		if hasInteriorPunct(r.ResolvedSource) {
			continue
		}
		if opts.MinOccurrence > 0 && counts[r.ResolvedSource] < opts.MinOccurrence {
			continue
		}
		out = append(out, r)
	}
	return out
}

// endsSentence reports whether s ends with terminal sentence punctuation.
func endsSentence(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return strings.ContainsRune(terminalPunct, r)
}

// hasInteriorPunct reports whether s contains punctuation or an ellipsis
// before its final rune.
func hasInteriorPunct(s string) bool {
	if strings.Contains(s, "...") {
		return true
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return strings.ContainsAny(s[:len(s)-size], interiorPunct+".")
}
