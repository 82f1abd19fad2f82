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

// Package check implements the batch consistency checks.
//
// The line check flags a source text mapped to two or more distinct
// translations. The term check flags records whose source contains a known
// glossary term but whose target is missing the term's expected translation.
// Both are single batch runs over resolver output; a finding is a flagged
// inconsistency, not a single occurrence.
package check

import (
	"sort"
	"unicode/utf8"

	"github.com/glosslint/glosslint/filter"
	"github.com/glosslint/glosslint/resolve"
)

// LineFinding is one line check result: a source with at least two distinct
// targets.
type LineFinding struct {
	// Source is the resolved source text of the group.
	Source string

	// Targets are the distinct target texts, in first-seen order.
	Targets []string
}

// LineOptions configures the line check.
type LineOptions struct {
	// FilterFirst applies the filter chain before grouping. When false the
	// raw resolver output is grouped.
	FilterFirst bool

	// Filter configures the chain used when FilterFirst is set.
	Filter filter.Options
}

// Lines runs the line check. Records are grouped by resolved source; every
// group with two or more distinct targets yields one finding. Findings are
// sorted by source length ascending so short, glossary-like mismatches
// surface first.
func Lines(recs []resolve.Record, opts LineOptions) []LineFinding {
	if opts.FilterFirst {
		recs = filter.Apply(recs, opts.Filter)
	}

	type group struct {
		targets []string
		seen    map[string]bool
	}
	groups := map[string]*group{}
	var order []string

	for _, r := range recs {
		if r.ResolvedSource == "" || r.Target == "" {
			continue
		}
		g, ok := groups[r.ResolvedSource]
		if !ok {
			g = &group{seen: map[string]bool{}}
			groups[r.ResolvedSource] = g
			order = append(order, r.ResolvedSource)
		}
		if !g.seen[r.Target] {
			g.seen[r.Target] = true
			g.targets = append(g.targets, r.Target)
		}
	}

	var findings []LineFinding
	for _, src := range order {
		g := groups[src]
		if len(g.targets) < 2 {
			continue
		}
		findings = append(findings, LineFinding{
			Source:  src,
			Targets: g.targets,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		li := utf8.RuneCountInString(findings[i].Source)
		lj := utf8.RuneCountInString(findings[j].Source)
		if li != lj {
			return li < lj
		}
		return findings[i].Source < findings[j].Source
	})

	return findings
}
