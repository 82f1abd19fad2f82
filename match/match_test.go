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

package match_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glosslint/glosslint/match"
)

// builders are the interchangeable matcher backends. Every test case runs
// against both; results must be identical.
var builders = map[string]match.Builder{
	"ahocorasick": match.NewAhoCorasick,
	"naive":       match.NewNaive,
}

func TestMatcher_Find(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		text     string

		expected []match.Match
	}{
		{
			name:     "no match",
			patterns: []string{"회복"},
			text:     "마법 물약",
			expected: nil,
		},
		{
			name:     "single match",
			patterns: []string{"회복"},
			text:     "회복 마법",
			expected: []match.Match{
				{Pattern: "회복", Start: 0, End: 6},
			},
		},
		{
			name:     "repeated pattern",
			patterns: []string{"ab"},
			text:     "ab ab",
			expected: []match.Match{
				{Pattern: "ab", Start: 0, End: 2},
				{Pattern: "ab", Start: 3, End: 5},
			},
		},
		{
			name:     "overlapping patterns",
			patterns: []string{"he", "she", "hers"},
			text:     "shers",
			expected: []match.Match{
				{Pattern: "she", Start: 0, End: 3},
				{Pattern: "he", Start: 1, End: 3},
				{Pattern: "hers", Start: 1, End: 5},
			},
		},
		{
			name:     "pattern inside pattern",
			patterns: []string{"회복", "체력 회복"},
			text:     "체력 회복 물약",
			expected: []match.Match{
				{Pattern: "체력 회복", Start: 0, End: 13},
				{Pattern: "회복", Start: 7, End: 13},
			},
		},
		{
			name:     "self overlap",
			patterns: []string{"aa"},
			text:     "aaa",
			expected: []match.Match{
				{Pattern: "aa", Start: 0, End: 2},
				{Pattern: "aa", Start: 1, End: 3},
			},
		},
		{
			name:     "duplicate patterns matched once",
			patterns: []string{"ab", "ab"},
			text:     "ab",
			expected: []match.Match{
				{Pattern: "ab", Start: 0, End: 2},
			},
		},
		{
			name:     "mixed latin and hangul",
			patterns: []string{"HP", "회복"},
			text:     "HP 회복 HP",
			expected: []match.Match{
				{Pattern: "HP", Start: 0, End: 2},
				{Pattern: "회복", Start: 3, End: 9},
				{Pattern: "HP", Start: 10, End: 12},
			},
		},
	}

	for name, builder := range builders {
		for _, test := range tests {
			test := test
			t.Run(name+"/"+test.name, func(t *testing.T) {
				t.Parallel()

				m, err := builder(test.patterns)
				if err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(test.expected, m.Find(test.text)); diff != "" {
					t.Fatalf("Find (-want, +got):\n%s", diff)
				}
			})
		}
	}
}

func TestBuilder_errors(t *testing.T) {
	t.Parallel()

	for name, builder := range builders {
		builder := builder
		t.Run(name+"/empty set", func(t *testing.T) {
			t.Parallel()

			_, err := builder(nil)
			if !errors.Is(err, match.ErrNoPatterns) {
				t.Fatalf("expected ErrNoPatterns, got %v", err)
			}
		})
		t.Run(name+"/empty pattern", func(t *testing.T) {
			t.Parallel()

			_, err := builder([]string{"ab", ""})
			if !errors.Is(err, match.ErrEmptyPattern) {
				t.Fatalf("expected ErrEmptyPattern, got %v", err)
			}
		})
	}
}

func TestIsolated(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		pattern  string
		start    int
		expected bool
	}{
		{
			name:     "inside longer token",
			text:     "XABY",
			pattern:  "AB",
			start:    1,
			expected: false,
		},
		{
			name:     "standalone",
			text:     "X AB Y",
			pattern:  "AB",
			start:    2,
			expected: true,
		},
		{
			name:     "string start",
			text:     "AB Y",
			pattern:  "AB",
			start:    0,
			expected: true,
		},
		{
			name:     "string end",
			text:     "X AB",
			pattern:  "AB",
			start:    2,
			expected: true,
		},
		{
			name:     "whole string",
			text:     "AB",
			pattern:  "AB",
			start:    0,
			expected: true,
		},
		{
			name:     "hangul abutted",
			text:     "체력회복",
			pattern:  "회복",
			start:    6,
			expected: false,
		},
		{
			name:     "hangul isolated by space",
			text:     "체력 회복",
			pattern:  "회복",
			start:    7,
			expected: true,
		},
		{
			name:     "hangul isolated by punctuation",
			text:     "체력(회복)",
			pattern:  "회복",
			start:    7,
			expected: true,
		},
		{
			name:     "latin digit abuts",
			text:     "AB2",
			pattern:  "AB",
			start:    0,
			expected: false,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			m := match.Match{
				Pattern: test.pattern,
				Start:   test.start,
				End:     test.start + len(test.pattern),
			}
			got := match.Isolated(test.text, m, match.Hangul)
			if got != test.expected {
				t.Fatalf("Isolated(%q, %q) = %v, want %v",
					test.text, test.pattern, got, test.expected)
			}
		})
	}
}
