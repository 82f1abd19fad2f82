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

// Package resolve implements source-basis resolution.
//
// A consistency check compares records either on their own source text
// (native basis) or on a same-identifier text pulled from a second reference
// corpus (cross-referenced basis). Resolution is a preprocessing step; all
// emitted text is in normalized form.
package resolve

import (
	"github.com/glosslint/glosslint/normalize"
	"github.com/glosslint/glosslint/record"
)

// Basis selects how the comparison source of a record is chosen.
type Basis int

const (
	// Native compares records on their own source text.
	Native Basis = iota

	// CrossReferenced compares records on the same-identifier text of a
	// reference corpus, falling back to native text on a miss.
	CrossReferenced
)

// Record is a preprocessed record ready for checking.
type Record struct {
	// ResolvedSource is the comparison text chosen by the basis.
	ResolvedSource string

	// Target is the normalized target text.
	Target string

	// ID is the record identifier.
	ID string

	// File is the origin file.
	File string

	// NativeSource is the record's own normalized source text.
	NativeSource string
}

// Resolver resolves the comparison source for records of one batch run.
type Resolver struct {
	basis  Basis
	ref    map[string]string
	misses int
}

// NewNative returns a passthrough resolver.
func NewNative() *Resolver {
	return &Resolver{basis: Native}
}

// NewCrossReferenced returns a resolver that looks up each record's
// identifier in the reference corpus. Reference records with an empty
// identifier or source contribute nothing.
func NewCrossReferenced(ref []record.Record) *Resolver {
	m := make(map[string]string, len(ref))
	for _, rec := range ref {
		if rec.ID == "" || rec.Source == "" {
			continue
		}
		if _, ok := m[rec.ID]; ok {
			continue
		}
		m[rec.ID] = normalize.Text(rec.Source)
	}
	return &Resolver{basis: CrossReferenced, ref: m}
}

// Basis returns the resolver's basis.
func (r *Resolver) Basis() Basis {
	return r.basis
}

// Resolve preprocesses a record corpus. In cross-referenced mode, misses are
// counted and never raised as errors.
func (r *Resolver) Resolve(recs []record.Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		native := normalize.Text(rec.Source)
		resolved := native
		if r.basis == CrossReferenced {
			if ref, ok := r.ref[rec.ID]; ok && rec.ID != "" {
				resolved = ref
			} else {
				r.misses++
			}
		}
		out = append(out, Record{
			ResolvedSource: resolved,
			Target:         normalize.Text(rec.Target),
			ID:             rec.ID,
			File:           rec.File,
			NativeSource:   native,
		})
	}
	return out
}

// Misses returns the number of identifiers absent from the reference corpus
// over all Resolve calls.
func (r *Resolver) Misses() int {
	return r.misses
}
