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

package search_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glosslint/glosslint/dict"
	"github.com/glosslint/glosslint/record"
	"github.com/glosslint/glosslint/search"
)

func corpus() *dict.Dict {
	return dict.Build([]record.Record{
		{ID: "sk_01", Source: "회복", Target: "Heal"},
		{ID: "sk_02", Source: "회복 물약", Target: "Healing Potion"},
		{ID: "sk_03", Source: "마법", Target: "Magic"},
		{ID: "q_01", Source: "대지의 마법", Target: "Earth Magic"},
	})
}

func TestService_ByID(t *testing.T) {
	t.Parallel()

	s := search.New(corpus(), nil)

	got, ok := s.ByID("sk_01")
	if !ok {
		t.Fatal("ByID(sk_01) not found")
	}
	expected := search.Result{Source: "회복", Target: "Heal", ID: "sk_01"}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("ByID (-want, +got):\n%s", diff)
	}

	if _, ok := s.ByID("missing"); ok {
		t.Fatal("ByID(missing) found")
	}
}

// TestService_ByID_matchesScan checks the identifier fast path returns the
// same content as a full scan filtered to the identifier.
func TestService_ByID_matchesScan(t *testing.T) {
	t.Parallel()

	s := search.New(corpus(), nil)

	fast, ok := s.ByID("sk_02")
	if !ok {
		t.Fatal("ByID(sk_02) not found")
	}

	var scan []search.Result
	for _, r := range s.Query("sk_02", search.Options{Mode: search.Exact}) {
		if r.ID == "sk_02" {
			scan = append(scan, r)
		}
	}
	if len(scan) != 1 {
		t.Fatalf("scan found %d results, want 1", len(scan))
	}
	if diff := cmp.Diff(scan[0], fast); diff != "" {
		t.Fatalf("fast path differs from scan (-scan, +fast):\n%s", diff)
	}
}

func TestService_Query(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		opts     search.Options
		expected []search.Result
	}{
		{
			name:  "contains sorted by source length",
			query: "마법",
			expected: []search.Result{
				{Source: "마법", Target: "Magic", ID: "sk_03"},
				{Source: "대지의 마법", Target: "Earth Magic", ID: "q_01"},
			},
		},
		{
			name:  "contains matches target field",
			query: "Healing",
			expected: []search.Result{
				{Source: "회복 물약", Target: "Healing Potion", ID: "sk_02"},
			},
		},
		{
			name:  "exact only full match",
			query: "회복",
			opts:  search.Options{Mode: search.Exact},
			expected: []search.Result{
				{Source: "회복", Target: "Heal", ID: "sk_01"},
			},
		},
		{
			name:     "no match",
			query:    "없는말",
			expected: nil,
		},
		{
			name:  "pagination",
			query: "마법",
			opts:  search.Options{Offset: 1, Limit: 1},
			expected: []search.Result{
				{Source: "대지의 마법", Target: "Earth Magic", ID: "q_01"},
			},
		},
		{
			name:  "negative offset treated as zero",
			query: "마법",
			opts:  search.Options{Offset: -3, Limit: 1},
			expected: []search.Result{
				{Source: "마법", Target: "Magic", ID: "sk_03"},
			},
		},
		{
			name:  "query normalized before matching",
			query: "  마법​  ",
			opts:  search.Options{Mode: search.Exact},
			expected: []search.Result{
				{Source: "마법", Target: "Magic", ID: "sk_03"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := search.New(corpus(), nil)
			got := s.Query(test.query, test.opts)
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Query (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestService_referenceResolution(t *testing.T) {
	t.Parallel()

	ref := dict.Build([]record.Record{
		{ID: "sk_01", Source: "회복", Target: "回復"},
	})
	s := search.New(corpus(), ref)

	// A query matching the reference target resolves back to the primary
	// pair.
	got := s.Query("回復", search.Options{})
	expected := []search.Result{
		{Source: "회복", Target: "Heal", RefTarget: "回復", ID: "sk_01"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Query (-want, +got):\n%s", diff)
	}

	// Identifier lookup carries the reference target too.
	byID, ok := s.ByID("sk_01")
	if !ok {
		t.Fatal("ByID(sk_01) not found")
	}
	if diff := cmp.Diff(expected[0], byID); diff != "" {
		t.Fatalf("ByID (-want, +got):\n%s", diff)
	}
}

func TestService_Multi(t *testing.T) {
	t.Parallel()

	s := search.New(corpus(), nil)

	got := s.Multi("회복\n없는말\n마법", search.Options{})
	expected := []search.Result{
		{Source: "회복", Target: "Heal", ID: "sk_01"},
		{Source: "없는말", Target: search.NotFound},
		{Source: "마법", Target: "Magic", ID: "sk_03"},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("Multi (-want, +got):\n%s", diff)
	}
}
