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

// Package glossary implements glossary term extraction and automaton
// validation.
//
// Candidates come from the filtered corpus, deduplicated by source with the
// first occurrence supplying the representative target. Validation rescans
// the full unfiltered corpus with a multi-pattern matcher and keeps only
// candidates with at least one isolated occurrence; validated hit counts
// supersede the pre-filter counts.
package glossary

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/glosslint/glosslint/internal/progress"
	"github.com/glosslint/glosslint/match"
	"github.com/glosslint/glosslint/resolve"
)

// Term is one extracted glossary term. A Term is terminal once emitted.
type Term struct {
	// Source is the term in the source language.
	Source string

	// Target is the representative translation.
	Target string

	// Count is the occurrence count: candidate occurrences before
	// validation, isolated hits after.
	Count int
}

// Sort orders for Terms.
type Sort int

const (
	// SortAlpha orders terms alphabetically by source.
	SortAlpha Sort = iota

	// SortLength orders terms by source rune length, longest first.
	SortLength

	// SortCount orders terms by occurrence count, most frequent first.
	SortCount
)

// Options configures extraction.
type Options struct {
	// Validate rescans the full corpus and prunes candidates without an
	// isolated occurrence.
	Validate bool

	// Matcher builds the multi-pattern matcher used for validation.
	// Required when Validate is set.
	Matcher match.Builder

	// Script extends the word class for the isolation rule.
	Script match.Script

	// Sort is the output order.
	Sort Sort
}

// Extract builds glossary terms from the filtered records. When validation
// is on, corpus must be the full unfiltered record set; progress is reported
// per scanned record.
func Extract(filtered, corpus []resolve.Record, opts Options, rep progress.Reporter) ([]Term, error) {
	if rep == nil {
		rep = progress.Nop
	}

	var terms []Term
	byGloss := map[string]int{}
	for _, r := range filtered {
		if i, ok := byGloss[r.ResolvedSource]; ok {
			terms[i].Count++
			continue
		}
		byGloss[r.ResolvedSource] = len(terms)
		terms = append(terms, Term{
			Source: r.ResolvedSource,
			Target: r.Target,
			Count:  1,
		})
	}

	if opts.Validate && len(terms) > 0 {
		if opts.Matcher == nil {
			return nil, fmt.Errorf("%w: validation requires a matcher", match.ErrNoPatterns)
		}
		validated, err := validate(terms, byGloss, corpus, opts, rep)
		if err != nil {
			return nil, err
		}
		terms = validated
	}

	sortTerms(terms, opts.Sort)
	return terms, nil
}

// validate rescans the corpus and recounts candidates from isolated hits.
func validate(terms []Term, byGloss map[string]int, corpus []resolve.Record, opts Options, rep progress.Reporter) ([]Term, error) {
	patterns := make([]string, len(terms))
	for i, t := range terms {
		patterns[i] = t.Source
	}

	rep.Report("building automaton", 0, len(corpus))
	m, err := opts.Matcher(patterns)
	if err != nil {
		return nil, fmt.Errorf("building matcher: %w", err)
	}

	hits := make([]int, len(terms))
	for i, r := range corpus {
		for _, occ := range m.Find(r.ResolvedSource) {
			if !match.Isolated(r.ResolvedSource, occ, opts.Script) {
				continue
			}
			hits[byGloss[occ.Pattern]]++
		}
		rep.Report("scanning corpus", i+1, len(corpus))
	}

	var out []Term
	for i, t := range terms {
		if hits[i] == 0 {
			continue
		}
		t.Count = hits[i]
		out = append(out, t)
	}
	return out, nil
}

// sortTerms orders terms. Ties fall back to alphabetical source order so
// output is deterministic.
func sortTerms(terms []Term, order Sort) {
	sort.Slice(terms, func(i, j int) bool {
		a, b := terms[i], terms[j]
		switch order {
		case SortLength:
			la := utf8.RuneCountInString(a.Source)
			lb := utf8.RuneCountInString(b.Source)
			if la != lb {
				return la > lb
			}
		case SortCount:
			if a.Count != b.Count {
				return a.Count > b.Count
			}
		case SortAlpha:
		}
		return a.Source < b.Source
	})
}
