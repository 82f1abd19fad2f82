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

// Package folding implements text folding transformers used by the
// normalizer. Folding is applied to every string before it participates in
// dictionary keys, grouping, or matching so that comparison is stable across
// corpora with inconsistent whitespace and invisible characters.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// WhitespaceFolder performs whitespace folding on the input. It removes
// spaces from the beginning and end of the input and replaces every internal
// span of Unicode whitespace with a single ASCII space rune.
type WhitespaceFolder struct {
	// started is true after the first non-whitespace rune.
	started bool

	// inSpan is true while consuming a whitespace span.
	inSpan bool
}

// Transform implements [transform.Transformer.Transform].
func (w *WhitespaceFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if !w.started {
				// Leading whitespace is dropped.
				continue
			}
			w.inSpan = true
			continue
		}

		if w.inSpan {
			// Emit a single space when leaving a whitespace span. Trailing
			// whitespace never leaves a span and is never emitted.
			if nDst+1 > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = ' '
			nDst++
			w.inSpan = false
		}
		w.started = true
		nSrc += size

		// NOTE: size cannot be used here because c could be utf8.RuneError
		// whose size is 1 but whose encoded length is 3.
		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *WhitespaceFolder) Reset() {
	*w = WhitespaceFolder{}
}

// invisible reports whether r is a zero-width or direction-control mark that
// carries no visible content. These show up in game corpora exported from
// spreadsheet tools and must not influence comparison.
func invisible(r rune) bool {
	switch {
	case r >= 0x200B && r <= 0x200F: // zero-width space..right-to-left mark
		return true
	case r >= 0x202A && r <= 0x202E: // embedding and override controls
		return true
	case r == 0x2060: // word joiner
		return true
	case r == 0xFEFF: // BOM / zero-width no-break space
		return true
	}
	return false
}

// MarkStripper removes zero-width and direction-control marks from the
// input.
type MarkStripper struct{}

// Transform implements [transform.Transformer.Transform].
func (MarkStripper) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if invisible(c) {
			nSrc += size
			continue
		}
		nSrc += size

		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (MarkStripper) Reset() {}

// QuoteFolder canonicalizes apostrophe and quotation-mark variants to a
// single code point each: U+0027 for apostrophes and U+0022 for double
// quotes.
type QuoteFolder struct{}

// Transform implements [transform.Transformer.Transform].
func (QuoteFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		c, size := utf8.DecodeRune(src[nSrc:])
		if c == utf8.RuneError && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}

		switch c {
		case '‘', '’', '‚', '‛', '`', '´', 'ʼ':
			c = '\''
		case '“', '”', '„', '‟', '«', '»':
			c = '"'
		}
		nSrc += size

		if nDst+utf8.RuneLen(c) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (QuoteFolder) Reset() {}
