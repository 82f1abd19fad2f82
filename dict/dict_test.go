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

package dict_test

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/glosslint/glosslint/dict"
	"github.com/glosslint/glosslint/record"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		recs []record.Record

		expectedLines   map[string][]dict.Entry
		expectedWhole   map[string][]dict.Entry
		expectedReverse map[string]dict.Pair
	}{
		{
			name:            "empty",
			recs:            nil,
			expectedLines:   map[string][]dict.Entry{},
			expectedWhole:   map[string][]dict.Entry{},
			expectedReverse: map[string]dict.Pair{},
		},
		{
			name: "single line record",
			recs: []record.Record{
				{ID: "sk_01", Source: "회복", Target: "Heal"},
			},
			expectedLines: map[string][]dict.Entry{},
			expectedWhole: map[string][]dict.Entry{
				"회복": {{Target: "Heal", ID: "sk_01"}},
			},
			expectedReverse: map[string]dict.Pair{
				"sk_01": {Source: "회복", Target: "Heal"},
			},
		},
		{
			name: "equal line counts align per line",
			recs: []record.Record{
				{ID: "q_01", Source: "회복\n마법", Target: "Heal\nMagic"},
			},
			expectedLines: map[string][]dict.Entry{
				"회복": {{Target: "Heal", ID: "q_01"}},
				"마법": {{Target: "Magic", ID: "q_01"}},
			},
			expectedWhole: map[string][]dict.Entry{},
			expectedReverse: map[string]dict.Pair{
				"q_01": {Source: "회복 마법", Target: "Heal Magic"},
			},
		},
		{
			name: "escaped line break aligns too",
			recs: []record.Record{
				{ID: "q_02", Source: `회복\n마법`, Target: `Heal\nMagic`},
			},
			expectedLines: map[string][]dict.Entry{
				"회복": {{Target: "Heal", ID: "q_02"}},
				"마법": {{Target: "Magic", ID: "q_02"}},
			},
			expectedWhole: map[string][]dict.Entry{},
			expectedReverse: map[string]dict.Pair{
				"q_02": {Source: `회복\n마법`, Target: `Heal\nMagic`},
			},
		},
		{
			name: "unequal line counts fall back to whole text",
			recs: []record.Record{
				{ID: "q_03", Source: "회복\n마법\n물약", Target: "Heal\nMagic"},
			},
			expectedLines: map[string][]dict.Entry{},
			expectedWhole: map[string][]dict.Entry{
				"회복 마법 물약": {{Target: "Heal Magic", ID: "q_03"}},
			},
			expectedReverse: map[string]dict.Pair{
				"q_03": {Source: "회복 마법 물약", Target: "Heal Magic"},
			},
		},
		{
			name: "empty source ignored",
			recs: []record.Record{
				{ID: "q_04", Source: "", Target: "Heal"},
			},
			expectedLines:   map[string][]dict.Entry{},
			expectedWhole:   map[string][]dict.Entry{},
			expectedReverse: map[string]dict.Pair{},
		},
		{
			name: "empty target registers identifier only",
			recs: []record.Record{
				{ID: "q_05", Source: "회복", Target: ""},
			},
			expectedLines: map[string][]dict.Entry{},
			expectedWhole: map[string][]dict.Entry{},
			expectedReverse: map[string]dict.Pair{
				"q_05": {Source: "회복", Target: ""},
			},
		},
		{
			name: "identifier collision first wins",
			recs: []record.Record{
				{ID: "q_06", Source: "회복", Target: "Heal"},
				{ID: "q_06", Source: "회복", Target: "Recover"},
			},
			expectedLines: map[string][]dict.Entry{},
			expectedWhole: map[string][]dict.Entry{
				"회복": {
					{Target: "Heal", ID: "q_06"},
					{Target: "Recover", ID: "q_06"},
				},
			},
			expectedReverse: map[string]dict.Pair{
				"q_06": {Source: "회복", Target: "Heal"},
			},
		},
		{
			name: "identifier collision prefers translated variant",
			recs: []record.Record{
				{ID: "q_07", Source: "회복", Target: ""},
				{ID: "q_07", Source: "회복", Target: "Heal"},
			},
			expectedLines: map[string][]dict.Entry{},
			expectedWhole: map[string][]dict.Entry{
				"회복": {{Target: "Heal", ID: "q_07"}},
			},
			expectedReverse: map[string]dict.Pair{
				"q_07": {Source: "회복", Target: "Heal"},
			},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d := dict.Build(test.recs)
			if diff := cmp.Diff(test.expectedLines, d.Lines); diff != "" {
				t.Errorf("Lines (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expectedWhole, d.Whole); diff != "" {
				t.Errorf("Whole (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.expectedReverse, d.Reverse); diff != "" {
				t.Errorf("Reverse (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestBuild_invariant checks that every identifier referenced by an
// alignment entry is resolvable through the reverse map.
func TestBuild_invariant(t *testing.T) {
	t.Parallel()

	d := dict.Build([]record.Record{
		{ID: "a", Source: "회복", Target: "Heal"},
		{ID: "b", Source: "마법\n물약", Target: "Magic\nPotion"},
		{Source: "이름", Target: "Name"}, // no identifier
	})

	for _, entries := range d.Lines {
		for _, e := range entries {
			e := e
			if e.ID == "" {
				continue
			}
			if _, ok := d.ByID(e.ID); !ok {
				t.Errorf("line entry identifier %q missing from reverse map", e.ID)
			}
		}
	}
	for _, entries := range d.Whole {
		for _, e := range entries {
			e := e
			if e.ID == "" {
				continue
			}
			if _, ok := d.ByID(e.ID); !ok {
				t.Errorf("whole entry identifier %q missing from reverse map", e.ID)
			}
		}
	}
}

func TestSaveLoad_roundTrip(t *testing.T) {
	t.Parallel()

	d := dict.Build([]record.Record{
		{ID: "sk_01", Source: "회복", Target: "Heal"},
		{ID: "q_01", Source: "마법\n물약", Target: "Magic\nPotion"},
		{ID: "q_02", Source: "긴 문장입니다.", Target: "A long sentence."},
	})

	path := filepath.Join(t.TempDir(), "kr-en.dict.dz")
	if err := d.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := dict.Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(d, loaded); diff != "" {
		t.Fatalf("round trip (-saved, +loaded):\n%s", diff)
	}
}

func TestLoad_missingFile(t *testing.T) {
	t.Parallel()

	_, err := dict.Load(filepath.Join(t.TempDir(), "missing.dict.dz"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
