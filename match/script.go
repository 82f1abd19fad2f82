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

package match

import (
	"strings"
	"unicode"
)

// Script is a letter range of a writing system. It extends the ASCII word
// class for the isolation rule and detects untranslated fallback text in
// filter predicates.
type Script struct {
	Name   string
	Ranges *unicode.RangeTable
}

// Hangul covers modern Hangul syllables and compatibility jamo.
var Hangul = Script{
	Name: "hangul",
	Ranges: &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x3131, Hi: 0x3163, Stride: 1}, // compatibility jamo
			{Lo: 0xAC00, Hi: 0xD7A3, Stride: 1}, // syllables
		},
	},
}

// Han covers the unified CJK ideograph block.
var Han = Script{
	Name: "han",
	Ranges: &unicode.RangeTable{
		R16: []unicode.Range16{
			{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
		},
	},
}

// Word reports whether r belongs to the combined word class: ASCII word
// runes plus the script's letter ranges.
func (s Script) Word(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z':
		return true
	case 'A' <= r && r <= 'Z':
		return true
	case '0' <= r && r <= '9':
		return true
	case r == '_':
		return true
	}
	return s.Ranges != nil && unicode.Is(s.Ranges, r)
}

// Contains reports whether text holds at least one rune of the script.
func (s Script) Contains(text string) bool {
	if s.Ranges == nil {
		return false
	}
	return strings.ContainsFunc(text, func(r rune) bool {
		return unicode.Is(s.Ranges, r)
	})
}
