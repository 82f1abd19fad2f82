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

package check_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glosslint/glosslint/check"
	"github.com/glosslint/glosslint/glossary"
	"github.com/glosslint/glosslint/match"
	"github.com/glosslint/glosslint/resolve"
)

func TestTerms(t *testing.T) {
	t.Parallel()

	heal := []glossary.Term{{Source: "회복", Target: "Heal", Count: 1}}

	tests := []struct {
		name     string
		terms    []glossary.Term
		recs     []resolve.Record
		opts     check.TermOptions
		expected []check.TermFinding
	}{
		{
			name:  "missing translation flagged",
			terms: heal,
			recs: []resolve.Record{
				rec("회복 마법", "Recovery magic"),
			},
			expected: []check.TermFinding{
				{
					Term:     "회복",
					Expected: "Heal",
					Issues: []check.TermIssue{
						{Source: "회복 마법", Target: "Recovery magic"},
					},
				},
			},
		},
		{
			name:  "case insensitive substring passes",
			terms: heal,
			recs: []resolve.Record{
				rec("회복 마법", "The spell will heal you"),
			},
			expected: nil,
		},
		{
			name:  "abutted occurrence ignored",
			terms: heal,
			recs: []resolve.Record{
				rec("회복력", "Resilience"),
			},
			expected: nil,
		},
		{
			name:  "no terms no findings",
			terms: nil,
			recs: []resolve.Record{
				rec("회복", "whatever"),
			},
			expected: nil,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			opts := test.opts
			if opts.Matcher == nil {
				opts.Matcher = match.NewAhoCorasick
			}
			opts.Script = match.Hangul

			got, err := check.Terms(test.terms, test.recs, opts, nil)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Terms (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestTerms_issueCeiling checks that a term whose issue count exceeds the
// ceiling is discarded as a mis-extracted candidate.
func TestTerms_issueCeiling(t *testing.T) {
	t.Parallel()

	terms := []glossary.Term{{Source: "회복", Target: "Heal", Count: 1}}

	var recs []resolve.Record
	for i := 0; i < check.DefaultMaxIssues+1; i++ {
		recs = append(recs, rec(fmt.Sprintf("회복 %d", i), "no translation"))
	}

	got, err := check.Terms(terms, recs, check.TermOptions{
		Matcher: match.NewAhoCorasick,
		Script:  match.Hangul,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("Terms = %v, want nil (ceiling exceeded)", got)
	}

	// One fewer issue stays under the ceiling.
	got, err = check.Terms(terms, recs[:check.DefaultMaxIssues], check.TermOptions{
		Matcher: match.NewAhoCorasick,
		Script:  match.Hangul,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0].Issues) != check.DefaultMaxIssues {
		t.Fatalf("Terms = %v, want one finding with %d issues", got, check.DefaultMaxIssues)
	}
}

// TestTerms_naiveFallbackParity checks both matcher backends produce the
// same findings.
func TestTerms_naiveFallbackParity(t *testing.T) {
	t.Parallel()

	terms := []glossary.Term{
		{Source: "회복", Target: "Heal", Count: 2},
		{Source: "마법", Target: "Magic", Count: 1},
	}
	recs := []resolve.Record{
		rec("회복 마법", "Recovery spell"),
		rec("회복", "Heal"),
		rec("마법 책", "Spellbook"),
	}

	fast, err := check.Terms(terms, recs, check.TermOptions{
		Matcher: match.NewAhoCorasick,
		Script:  match.Hangul,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	slow, err := check.Terms(terms, recs, check.TermOptions{
		Matcher: match.NewNaive,
		Script:  match.Hangul,
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(fast, slow); diff != "" {
		t.Fatalf("backend mismatch (-ahocorasick, +naive):\n%s", diff)
	}
}
