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

package check

import (
	"fmt"
	"strings"

	"github.com/glosslint/glosslint/glossary"
	"github.com/glosslint/glosslint/internal/progress"
	"github.com/glosslint/glosslint/match"
	"github.com/glosslint/glosslint/resolve"
)

// DefaultMaxIssues is the per-term issue ceiling. A term collecting more
// issues than this is almost always a mis-extracted glossary candidate
// rather than a genuine mistranslation pattern, and is discarded.
const DefaultMaxIssues = 6

// TermIssue is one record whose target is missing a term's expected
// translation.
type TermIssue struct {
	Source string
	Target string
}

// TermFinding is one term check result: a glossary term with the records
// that fail to carry its translation.
type TermFinding struct {
	// Term is the source-language term.
	Term string

	// Expected is the translation fragment expected in each target.
	Expected string

	// Issues lists the offending records in corpus order.
	Issues []TermIssue
}

// TermOptions configures the term check.
type TermOptions struct {
	// Matcher builds the multi-pattern matcher for the scan pass.
	Matcher match.Builder

	// Script extends the word class for the isolation rule.
	Script match.Script

	// MaxIssues is the per-term issue ceiling. Zero means DefaultMaxIssues.
	MaxIssues int
}

// Terms runs the term check: scan every record's resolved source for isolated
// glossary term occurrences and flag targets missing the expected
// translation. Terms come from a prior glossary build, possibly over a
// distinct file set.
func Terms(terms []glossary.Term, recs []resolve.Record, opts TermOptions, rep progress.Reporter) ([]TermFinding, error) {
	if len(terms) == 0 || len(recs) == 0 {
		return nil, nil
	}
	if opts.Matcher == nil {
		return nil, fmt.Errorf("%w: term check requires a matcher", match.ErrNoPatterns)
	}
	if rep == nil {
		rep = progress.Nop
	}
	maxIssues := opts.MaxIssues
	if maxIssues == 0 {
		maxIssues = DefaultMaxIssues
	}

	expected := make(map[string]string, len(terms))
	patterns := make([]string, 0, len(terms))
	for _, t := range terms {
		if t.Source == "" || t.Target == "" {
			continue
		}
		if _, ok := expected[t.Source]; ok {
			continue
		}
		expected[t.Source] = t.Target
		patterns = append(patterns, t.Source)
	}
	if len(patterns) == 0 {
		return nil, nil
	}

	rep.Report("building automaton", 0, len(recs))
	m, err := opts.Matcher(patterns)
	if err != nil {
		return nil, fmt.Errorf("building matcher: %w", err)
	}

	issues := map[string][]TermIssue{}
	var order []string
	for i, r := range recs {
		flagged := map[string]bool{}
		for _, occ := range m.Find(r.ResolvedSource) {
			if flagged[occ.Pattern] {
				continue
			}
			if !match.Isolated(r.ResolvedSource, occ, opts.Script) {
				continue
			}
			want := expected[occ.Pattern]
			if containsFold(r.Target, want) {
				continue
			}
			flagged[occ.Pattern] = true
			if _, ok := issues[occ.Pattern]; !ok {
				order = append(order, occ.Pattern)
			}
			issues[occ.Pattern] = append(issues[occ.Pattern], TermIssue{
				Source: r.ResolvedSource,
				Target: r.Target,
			})
		}
		rep.Report("scanning corpus", i+1, len(recs))
	}

	var findings []TermFinding
	for _, term := range order {
		list := issues[term]
		if len(list) > maxIssues {
			continue
		}
		findings = append(findings, TermFinding{
			Term:     term,
			Expected: expected[term],
			Issues:   list,
		})
	}
	return findings, nil
}

// containsFold reports whether substr occurs in s under ASCII-insensitive
// case folding.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
