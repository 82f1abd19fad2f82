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

package record

import (
	"bytes"
)

// Repair rewrites common damage in hand-edited markup so that a second,
// lenient parse attempt can succeed. The passes are applied in order:
//
//  1. escape ampersands that do not start a known entity;
//  2. convert raw line breaks inside attribute values and text segments to
//     an explicit &#10; break marker;
//  3. escape stray angle brackets inside attribute values;
//  4. rebalance mismatched open/close elements with a tag stack.
func Repair(data []byte) []byte {
	data = escapeAmps(data)
	data = repairSegments(data)
	data = rebalance(data)
	return data
}

// entityAt reports whether data[i:] starts an entity reference, with
// data[i] == '&'.
func entityAt(data []byte, i int) bool {
	j := i + 1
	if j < len(data) && data[j] == '#' {
		j++
		if j < len(data) && (data[j] == 'x' || data[j] == 'X') {
			j++
		}
		start := j
		for j < len(data) && j-start < 7 && isHexDigit(data[j]) {
			j++
		}
		return j > start && j < len(data) && data[j] == ';'
	}
	start := j
	for j < len(data) && j-start < 10 && isAlpha(data[j]) {
		j++
	}
	return j > start && j < len(data) && data[j] == ';'
}

func isAlpha(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// escapeAmps escapes every '&' that is not part of an entity reference.
func escapeAmps(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '&' && !entityAt(data, i) {
			out.WriteString("&amp;")
			continue
		}
		out.WriteByte(data[i])
	}
	return out.Bytes()
}

// repairSegments walks the document tracking tag and attribute-quote state.
// Inside attribute values it escapes stray angle brackets and rewrites raw
// line breaks to &#10;. Inside text segments a line break is rewritten only
// when the segment already holds visible content, so indentation between
// elements is left alone.
func repairSegments(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	inTag := false
	var quote byte
	segHasText := false

	for i := 0; i < len(data); i++ {
		b := data[i]

		if quote != 0 {
			switch b {
			case quote:
				quote = 0
				out.WriteByte(b)
			case '<':
				out.WriteString("&lt;")
			case '>':
				out.WriteString("&gt;")
			case '\r':
				if i+1 < len(data) && data[i+1] == '\n' {
					i++
				}
				out.WriteString("&#10;")
			case '\n':
				out.WriteString("&#10;")
			default:
				out.WriteByte(b)
			}
			continue
		}

		if inTag {
			switch b {
			case '"', '\'':
				quote = b
			case '>':
				inTag = false
				segHasText = false
			}
			out.WriteByte(b)
			continue
		}

		switch b {
		case '<':
			inTag = true
			out.WriteByte(b)
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
			if segHasText {
				out.WriteString("&#10;")
			} else {
				out.WriteByte('\n')
			}
		case '\n':
			if segHasText {
				out.WriteString("&#10;")
			} else {
				out.WriteByte(b)
			}
		default:
			if b != ' ' && b != '\t' {
				segHasText = true
			}
			out.WriteByte(b)
		}
	}

	return out.Bytes()
}

// rebalance fixes mismatched element nesting. A close tag that does not
// match the top of the tag stack is rewritten to match; close tags with an
// empty stack are dropped; elements still open at end of input are closed.
func rebalance(data []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(data))

	var stack []string

	for i := 0; i < len(data); {
		if data[i] != '<' {
			out.WriteByte(data[i])
			i++
			continue
		}

		end := bytes.IndexByte(data[i:], '>')
		if end < 0 {
			// Truncated tag at EOF; drop it.
			break
		}
		tag := data[i : i+end+1]
		i += end + 1

		inner := bytes.TrimSpace(tag[1 : len(tag)-1])
		switch {
		case len(inner) == 0:
			// "<>" carries nothing; drop it.
		case inner[0] == '?' || inner[0] == '!':
			out.Write(tag)
		case inner[0] == '/':
			fields := bytes.Fields(inner[1:])
			if len(fields) == 0 {
				continue
			}
			name := string(fields[0])
			if len(stack) == 0 {
				// Nothing to close; drop the tag.
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if name != top {
				out.WriteString("</" + top + ">")
				continue
			}
			out.Write(tag)
		case inner[len(inner)-1] == '/':
			out.Write(tag)
		default:
			name := string(bytes.Fields(inner)[0])
			stack = append(stack, name)
			out.Write(tag)
		}
	}

	for len(stack) > 0 {
		out.WriteString("</" + stack[len(stack)-1] + ">")
		stack = stack[:len(stack)-1]
	}

	return out.Bytes()
}
