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

package glosslint

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/glosslint/glosslint/check"
	"github.com/glosslint/glosslint/dict"
	"github.com/glosslint/glosslint/filter"
	"github.com/glosslint/glosslint/glossary"
	"github.com/glosslint/glosslint/internal/progress"
	"github.com/glosslint/glosslint/match"
	"github.com/glosslint/glosslint/record"
	"github.com/glosslint/glosslint/resolve"
)

// ErrNoReference indicates cross-referenced basis was requested without a
// reference corpus. This is a configuration error and is surfaced before
// any processing starts.
var ErrNoReference = errors.New("cross-referenced basis requires reference paths")

// Config configures a batch run. Path lists are explicit; the engine never
// discovers files on its own.
type Config struct {
	// Paths are the corpus files under check.
	Paths []string

	// RefPaths are the reference corpus files. Required for
	// cross-referenced basis, optional otherwise.
	RefPaths []string

	// Basis selects the comparison source.
	Basis resolve.Basis

	// Matcher builds multi-pattern matchers. Nil selects the automaton.
	Matcher match.Builder

	// Script is the source-language script. The zero value disables the
	// script extension of the word class.
	Script match.Script

	// Logger receives skip and progress diagnostics. Nil uses
	// slog.Default.
	Logger *slog.Logger

	// Reporter receives phase progress. Nil discards updates.
	Reporter progress.Reporter
}

// Batch is one batch analysis run. A Batch owns its data exclusively; there
// is no shared mutable state between runs.
type Batch struct {
	cfg      Config
	log      *slog.Logger
	rep      progress.Reporter
	records  []record.Record
	resolver *resolve.Resolver
	resolved []resolve.Record
}

// Open loads the corpora and prepares a batch run. Unreadable or
// unparseable files are skipped and reported in the error list; the batch
// continues with whatever loaded. Configuration errors abort before any
// file is read.
func Open(cfg Config) (*Batch, []error) {
	if cfg.Basis == resolve.CrossReferenced && len(cfg.RefPaths) == 0 {
		return nil, []error{ErrNoReference}
	}

	b := &Batch{
		cfg: cfg,
		log: cfg.Logger,
		rep: cfg.Reporter,
	}
	if b.log == nil {
		b.log = slog.Default()
	}
	if b.rep == nil {
		b.rep = progress.Nop
	}
	if b.cfg.Matcher == nil {
		b.cfg.Matcher = match.NewAhoCorasick
	}

	var errs []error
	b.records, errs = b.load(cfg.Paths)

	switch cfg.Basis {
	case resolve.CrossReferenced:
		refRecords, refErrs := b.load(cfg.RefPaths)
		errs = append(errs, refErrs...)
		b.resolver = resolve.NewCrossReferenced(refRecords)
	default:
		b.resolver = resolve.NewNative()
	}
	b.resolved = b.resolver.Resolve(b.records)

	if b.resolver.Misses() > 0 {
		b.log.Warn("reference misses",
			"count", b.resolver.Misses(),
			"records", len(b.records),
		)
	}

	return b, errs
}

// load extracts records from every path, skipping failed files.
func (b *Batch) load(paths []string) ([]record.Record, []error) {
	var recs []record.Record
	var errs []error
	for i, path := range paths {
		b.rep.Report(fmt.Sprintf("parsing %s", path), i, len(paths))
		fileRecs, err := record.ExtractFile(path)
		if err != nil {
			b.log.Warn("skipping file", "file", path, "error", err)
			errs = append(errs, err)
			continue
		}
		recs = append(recs, fileRecs...)
	}
	b.rep.Report("parsing done", len(paths), len(paths))
	return recs, errs
}

// Records returns the extracted corpus.
func (b *Batch) Records() []record.Record {
	return b.records
}

// Resolved returns the preprocessed records.
func (b *Batch) Resolved() []resolve.Record {
	return b.resolved
}

// Misses returns the reference-miss count of cross-referenced resolution.
func (b *Batch) Misses() int {
	return b.resolver.Misses()
}

// Dict builds the bilingual dictionary from the corpus.
func (b *Batch) Dict() *dict.Dict {
	return dict.Build(b.records)
}

// Glossary extracts glossary terms using the filter chain and, when
// validate is set, automaton validation over the full corpus.
func (b *Batch) Glossary(fopts filter.Options, validate bool, order glossary.Sort) ([]glossary.Term, error) {
	filtered := filter.Apply(b.resolved, fopts)
	return glossary.Extract(filtered, b.resolved, glossary.Options{
		Validate: validate,
		Matcher:  b.cfg.Matcher,
		Script:   b.cfg.Script,
		Sort:     order,
	}, b.rep)
}

// LineCheck runs the line check over the batch.
func (b *Batch) LineCheck(opts check.LineOptions) []check.LineFinding {
	return check.Lines(b.resolved, opts)
}

// TermCheck runs the term check over the batch using the given glossary terms.
// Terms may come from this batch's Glossary or from a distinct file set.
func (b *Batch) TermCheck(terms []glossary.Term, maxIssues int) ([]check.TermFinding, error) {
	return check.Terms(terms, b.resolved, check.TermOptions{
		Matcher:   b.cfg.Matcher,
		Script:    b.cfg.Script,
		MaxIssues: maxIssues,
	}, b.rep)
}
