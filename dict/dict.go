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

// Package dict implements the bilingual dictionary built from a record
// corpus.
//
// A Dict owns three maps. The line-aligned map pairs individual lines of
// multi-line strings whose source and target split into equal line counts.
// The whole-text map holds every other pair unsplit. The reverse map goes
// from identifier to the full source/target pair. Keys and stored text are
// in normalized form.
package dict

import (
	"regexp"

	"github.com/glosslint/glosslint/normalize"
	"github.com/glosslint/glosslint/record"
)

// lineBreak splits multi-line strings. Corpora carry both real line breaks
// and the literal two-character "\n" escape.
var lineBreak = regexp.MustCompile(`\r?\n|\\n`)

// Entry is one target mapped from a source key.
type Entry struct {
	Target string
	ID     string
}

// Pair is a full source/target pair, looked up by identifier.
type Pair struct {
	Source string
	Target string
}

// Dict is a bilingual dictionary.
//
// Invariant: every identifier appearing in an Entry of Lines or Whole also
// appears as a key of Reverse.
type Dict struct {
	// Lines maps a normalized source line to its targets, in corpus order.
	Lines map[string][]Entry

	// Whole maps a normalized whole source text to its targets, in corpus
	// order.
	Whole map[string][]Entry

	// Reverse maps an identifier to its source/target pair.
	Reverse map[string]Pair
}

// New returns an empty dictionary.
func New() *Dict {
	return &Dict{
		Lines:   map[string][]Entry{},
		Whole:   map[string][]Entry{},
		Reverse: map[string]Pair{},
	}
}

// Build constructs a dictionary from a record corpus.
func Build(recs []record.Record) *Dict {
	d := New()
	for _, rec := range recs {
		d.Add(rec)
	}
	return d
}

// Add registers one record. A record with an empty source is ignored. A
// record with an empty target registers only its identifier; it contributes
// no alignment entry. Every other record contributes either line-aligned
// entries or a single whole-text entry; the choice is made here, once, and
// never revisited.
func (d *Dict) Add(rec record.Record) {
	src := normalize.Text(rec.Source)
	tgt := normalize.Text(rec.Target)
	if src == "" {
		return
	}
	if rec.ID != "" {
		d.register(rec.ID, src, tgt)
	}
	if tgt == "" {
		return
	}

	srcLines := splitLines(rec.Source)
	tgtLines := splitLines(rec.Target)
	if len(srcLines) > 1 && len(srcLines) == len(tgtLines) {
		for i, sl := range srcLines {
			tl := normalize.Text(tgtLines[i])
			sl = normalize.Text(sl)
			if sl == "" || tl == "" {
				continue
			}
			d.Lines[sl] = append(d.Lines[sl], Entry{Target: tl, ID: rec.ID})
		}
	} else {
		d.Whole[src] = append(d.Whole[src], Entry{Target: tgt, ID: rec.ID})
	}
}

// register applies the identifier-collision policy: the first record wins,
// except that a later record with a non-empty target replaces an earlier
// entry whose target is empty.
func (d *Dict) register(id, src, tgt string) {
	if prev, ok := d.Reverse[id]; ok {
		if prev.Target != "" || tgt == "" {
			return
		}
	}
	d.Reverse[id] = Pair{Source: src, Target: tgt}
}

// ByID returns the pair registered for the identifier.
func (d *Dict) ByID(id string) (Pair, bool) {
	p, ok := d.Reverse[id]
	return p, ok
}

// Len returns the number of distinct source keys across both alignment maps.
func (d *Dict) Len() int {
	return len(d.Lines) + len(d.Whole)
}

// splitLines splits s on real and escaped line breaks.
func splitLines(s string) []string {
	return lineBreak.Split(s, -1)
}
