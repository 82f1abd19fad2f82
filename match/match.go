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

// Package match implements multi-pattern text matching.
//
// The Matcher capability is selected once at startup: NewAhoCorasick builds
// an automaton whose scan cost depends only on the text length, and NewNaive
// is an explicit substring-scan fallback with the same results. Operations
// must never silently degrade; a caller without an automaton uses the naive
// builder deliberately.
package match

import (
	"errors"
	"sort"
	"strings"
	"unicode/utf8"
)

// ErrNoPatterns indicates a matcher was built with an empty pattern set.
var ErrNoPatterns = errors.New("no patterns")

// ErrEmptyPattern indicates a pattern in the set is the empty string.
var ErrEmptyPattern = errors.New("empty pattern")

// Match is a single pattern occurrence. Start and End are byte offsets into
// the scanned text; the span is [Start, End).
type Match struct {
	Pattern string
	Start   int
	End     int
}

// Matcher finds all occurrences of a fixed pattern set in a text.
type Matcher interface {
	// Find returns every occurrence of every pattern in text, sorted by
	// start offset and then by end offset.
	Find(text string) []Match
}

// Builder constructs a Matcher for a pattern set. It is the capability hook:
// the automaton builder and the naive builder are interchangeable.
type Builder func(patterns []string) (Matcher, error)

// validate checks a pattern set for a Builder.
func validate(patterns []string) error {
	if len(patterns) == 0 {
		return ErrNoPatterns
	}
	for _, p := range patterns {
		if p == "" {
			return ErrEmptyPattern
		}
	}
	return nil
}

// sortMatches orders matches by start offset, then end offset.
func sortMatches(matches []Match) {
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End < matches[j].End
	})
}

// naive is the substring-scan fallback matcher.
type naive struct {
	patterns []string
}

// NewNaive returns a Matcher that scans for each pattern in turn with
// substring search. Scan cost grows with the pattern count; it exists as the
// explicit fallback when the automaton backend is not wanted.
func NewNaive(patterns []string) (Matcher, error) {
	if err := validate(patterns); err != nil {
		return nil, err
	}
	m := &naive{}
	seen := map[string]bool{}
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		m.patterns = append(m.patterns, p)
	}
	return m, nil
}

// Find implements [Matcher.Find].
func (m *naive) Find(text string) []Match {
	var matches []Match
	for _, p := range m.patterns {
		for off := 0; ; {
			i := strings.Index(text[off:], p)
			if i < 0 {
				break
			}
			start := off + i
			matches = append(matches, Match{
				Pattern: p,
				Start:   start,
				End:     start + len(p),
			})
			off = start + 1
		}
	}
	sortMatches(matches)
	return matches
}

// Isolated reports whether m is an isolated occurrence in text: the rune
// immediately before the span and the rune immediately after it, when they
// exist, are both outside the combined word class of script. This lets a
// short term match standalone while rejecting it as a substring of a longer
// token, across mixed Latin and CJK text.
func Isolated(text string, m Match, script Script) bool {
	if m.Start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:m.Start])
		if script.Word(r) {
			return false
		}
	}
	if m.End < len(text) {
		r, _ := utf8.DecodeRuneInString(text[m.End:])
		if script.Word(r) {
			return false
		}
	}
	return true
}
