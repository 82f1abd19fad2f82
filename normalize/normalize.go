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

// Package normalize implements the canonical text form used everywhere two
// strings are compared: dictionary keys, consistency-check grouping, and
// search queries. Text is pure and idempotent; normalizing an already
// normalized string is a no-op.
package normalize

import (
	"html"
	"strings"

	"golang.org/x/text/transform"

	"github.com/glosslint/glosslint/internal/folding"
)

// maxUnescapePasses bounds the entity-unescape fixpoint loop. Every pass
// that changes the string strictly shortens it, so the bound is never hit on
// well-formed input.
const maxUnescapePasses = 8

// Text returns the canonical form of s. The transformation unescapes markup
// entities, canonicalizes apostrophe and quote variants, strips zero-width
// and direction-control marks, drops an unmatched double quote, and folds
// all whitespace.
func Text(s string) string {
	s = unescape(s)
	s, _, _ = transform.String(transform.Chain(
		folding.QuoteFolder{},
		folding.MarkStripper{},
		&folding.WhitespaceFolder{},
	), s)
	s = dropOddQuote(s)
	return s
}

// unescape expands markup entities until a fixpoint is reached. Corpora
// that went through more than one export round contain doubly escaped
// entities such as "&amp;amp;"; expanding to a fixpoint keeps Text
// idempotent on them.
func unescape(s string) string {
	for i := 0; i < maxUnescapePasses; i++ {
		u := html.UnescapeString(s)
		if u == s {
			return s
		}
		s = u
	}
	return s
}

// dropOddQuote pairs double quotes left-to-right and discards the final
// unpaired one. Apostrophes are never dropped; they are legitimate inside
// contractions.
func dropOddQuote(s string) string {
	if strings.Count(s, `"`)%2 == 0 {
		return s
	}
	i := strings.LastIndex(s, `"`)
	s = s[:i] + s[i+1:]
	// Removing the quote can join two whitespace spans.
	s, _, _ = transform.String(&folding.WhitespaceFolder{}, s)
	return s
}
