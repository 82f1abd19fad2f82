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

// Package glosslint checks translation corpora for terminology consistency.
//
// A batch run loads records from markup or tab-separated files, resolves the
// comparison source for each record, and exposes the consistency checks on
// top: line-level divergence detection, glossary extraction, and term-level
// checking of target texts against the glossary.
//
// The subpackages are usable on their own; this package ties them together
// for whole-corpus runs:
//
//   - [github.com/glosslint/glosslint/record]: file parsing and markup repair.
//   - [github.com/glosslint/glosslint/normalize]: text normalization.
//   - [github.com/glosslint/glosslint/dict]: the bilingual dictionary.
//   - [github.com/glosslint/glosslint/resolve]: source-basis resolution.
//   - [github.com/glosslint/glosslint/filter]: glossary candidate filtering.
//   - [github.com/glosslint/glosslint/match]: multi-pattern matching.
//   - [github.com/glosslint/glosslint/glossary]: term extraction.
//   - [github.com/glosslint/glosslint/check]: the consistency checks.
//   - [github.com/glosslint/glosslint/search]: dictionary queries.
package glosslint
