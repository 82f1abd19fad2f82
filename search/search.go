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

// Package search implements dictionary lookup.
//
// Identifier lookup is a direct reverse-map hit bypassing any scan. Full
// scans support contains and exact matching over source, target and
// identifier of both alignment maps; exact source matching is served from a
// sorted index. An attached reference dictionary resolves matches over its
// targets back to the primary pair.
package search

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/glosslint/glosslint/dict"
	"github.com/glosslint/glosslint/internal/index"
	"github.com/glosslint/glosslint/normalize"
)

// NotFound is the sentinel target substituted for unmatched queries in
// multi-query mode, keeping results line-for-line with the input.
const NotFound = "#N/A"

// Mode selects how query text is matched.
type Mode int

const (
	// Contains matches the query as a substring.
	Contains Mode = iota

	// Exact matches the full normalized text.
	Exact
)

// Result is one search hit.
type Result struct {
	// Source and Target are the matched pair.
	Source string
	Target string

	// RefTarget is the reference dictionary's target for the same source,
	// when a reference dictionary produced or corroborated the hit.
	RefTarget string

	// ID is the identifier of the matched entry, when known.
	ID string
}

// Options configures a query.
type Options struct {
	// Mode is the matching mode.
	Mode Mode

	// Offset skips that many results after sorting.
	Offset int

	// Limit caps the result count. Zero means no cap.
	Limit int
}

// entry is an indexed dictionary pair.
type entry struct {
	source string
	target string
	id     string
}

// String implements fmt.Stringer for the sorted index.
func (e entry) String() string {
	return e.source
}

// Service searches one primary dictionary, optionally cross-resolving
// through a reference dictionary.
type Service struct {
	d   *dict.Dict
	ref *dict.Dict

	entries []entry
	exact   *index.Index[entry]
}

// New returns a search service over d. ref may be nil.
func New(d *dict.Dict, ref *dict.Dict) *Service {
	s := &Service{d: d, ref: ref}
	s.entries = collect(d)
	s.exact = index.New(s.entries, strings.Compare)
	return s
}

// collect flattens both alignment maps into a scan list.
func collect(d *dict.Dict) []entry {
	var entries []entry
	for src, es := range d.Lines {
		for _, e := range es {
			entries = append(entries, entry{source: src, target: e.Target, id: e.ID})
		}
	}
	for src, es := range d.Whole {
		for _, e := range es {
			entries = append(entries, entry{source: src, target: e.Target, id: e.ID})
		}
	}
	// Map iteration order is random; fix it before indexing so pagination
	// is stable across calls.
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.source != b.source {
			return a.source < b.source
		}
		if a.target != b.target {
			return a.target < b.target
		}
		return a.id < b.id
	})
	return entries
}

// ByID returns the pair registered for the identifier. The result content
// is identical to a full scan filtered to the same identifier.
func (s *Service) ByID(id string) (Result, bool) {
	p, ok := s.d.ByID(id)
	if !ok {
		return Result{}, false
	}
	return s.withRef(Result{
		Source: p.Source,
		Target: p.Target,
		ID:     id,
	}), true
}

// Query runs a full scan for the normalized query and returns matching
// pairs sorted by source length ascending, paginated by opts.
func (s *Service) Query(q string, opts Options) []Result {
	q = normalize.Text(q)
	if q == "" {
		return nil
	}

	var results []Result
	if opts.Mode == Exact {
		for _, e := range s.exact.Search(q) {
			results = append(results, s.withRef(Result{
				Source: e.source,
				Target: e.target,
				ID:     e.id,
			}))
		}
		results = append(results, s.scan(q, true)...)
	} else {
		results = append(results, s.scan(q, false)...)
	}

	if s.ref != nil {
		results = append(results, s.refScan(q, opts.Mode)...)
	}

	results = dedup(results)
	sort.SliceStable(results, func(i, j int) bool {
		li := utf8.RuneCountInString(results[i].Source)
		lj := utf8.RuneCountInString(results[j].Source)
		if li != lj {
			return li < lj
		}
		return results[i].Source < results[j].Source
	})

	return page(results, opts)
}

// scan matches q against target and identifier fields, and source fields in
// contains mode. Exact source matching is already served by the index.
func (s *Service) scan(q string, exact bool) []Result {
	var results []Result
	for _, e := range s.entries {
		var hit bool
		if exact {
			hit = e.target == q || e.id == q
		} else {
			hit = strings.Contains(e.source, q) ||
				strings.Contains(e.target, q) ||
				(e.id != "" && strings.Contains(e.id, q))
		}
		if hit {
			results = append(results, s.withRef(Result{
				Source: e.source,
				Target: e.target,
				ID:     e.id,
			}))
		}
	}
	return results
}

// refScan scans the reference dictionary's targets and resolves matches
// back to the primary dictionary's pair by identifier.
func (s *Service) refScan(q string, mode Mode) []Result {
	var results []Result
	for id, p := range s.ref.Reverse {
		var hit bool
		if mode == Exact {
			hit = p.Target == q
		} else {
			hit = strings.Contains(p.Target, q)
		}
		if !hit {
			continue
		}
		primary, ok := s.d.ByID(id)
		if !ok {
			continue
		}
		results = append(results, Result{
			Source:    primary.Source,
			Target:    primary.Target,
			RefTarget: p.Target,
			ID:        id,
		})
	}
	return results
}

// withRef fills RefTarget from the attached reference dictionary.
func (s *Service) withRef(r Result) Result {
	if s.ref == nil || r.ID == "" {
		return r
	}
	if p, ok := s.ref.ByID(r.ID); ok {
		r.RefTarget = p.Target
	}
	return r
}

// Multi evaluates one query per line of input independently. Unmatched
// queries yield a single sentinel result so output rows stay line-for-line
// with input lines. Only the first hit of each query is kept.
func (s *Service) Multi(input string, opts Options) []Result {
	var results []Result
	for _, line := range strings.Split(input, "\n") {
		q := normalize.Text(line)
		if q == "" {
			results = append(results, Result{Source: line, Target: NotFound})
			continue
		}
		hits := s.Query(q, Options{Mode: opts.Mode, Limit: 1})
		if len(hits) == 0 {
			results = append(results, Result{Source: q, Target: NotFound})
			continue
		}
		results = append(results, hits[0])
	}
	return results
}

// dedup removes duplicate results, keeping first occurrences.
func dedup(results []Result) []Result {
	seen := map[Result]bool{}
	var out []Result
	for _, r := range results {
		if seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}
	return out
}

// page applies offset/limit pagination. A negative offset is treated as
// zero.
func page(results []Result, opts Options) []Result {
	offset := max(opts.Offset, 0)
	if offset >= len(results) {
		return nil
	}
	results = results[offset:]
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return results
}
