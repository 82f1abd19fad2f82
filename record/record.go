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

// Package record implements localization record extraction.
//
// Two on-disk shapes are supported: markup files whose elements carry an
// identifier/source/target attribute triple, and tab-separated files with at
// least seven fields per line. Both map to the same Record shape. Extraction
// fails soft: malformed elements and short rows are skipped individually and
// unparseable files yield an empty result rather than aborting a batch.
package record

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrNoRecords indicates that a file produced no records in any supported
// shape.
var ErrNoRecords = errors.New("no records")

// tsvIDFields is the number of leading tab-separated fields joined to form
// the identifier.
const tsvIDFields = 5

// tsvMinFields is the minimum number of tab-separated fields for a valid
// row: five identifier fields plus source and target.
const tsvMinFields = 7

// Record is a single localization entry. A Record is immutable once parsed.
type Record struct {
	// ID is the stable key shared across language variants of the same
	// logical string. May be empty.
	ID string

	// Source is the source-language text.
	Source string

	// Target is the target-language text.
	Target string

	// File is the origin file the record was extracted from.
	File string
}

// ExtractFile extracts records from the file at path. The shape is sniffed
// from the content: files whose first non-space byte is '<' are parsed as
// markup, everything else as tab-separated rows. An unreadable file returns
// an error; the caller decides whether to continue the batch.
func ExtractFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}

	if isMarkup(data) {
		return ExtractMarkup(data, path)
	}
	return ExtractTSV(bytes.NewReader(data), path)
}

// isMarkup reports whether data looks like a markup document.
func isMarkup(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n\uFEFF")
	return len(trimmed) > 0 && trimmed[0] == '<'
}

// ExtractTSV extracts records from tab-separated rows. The identifier is the
// first five fields joined by a single space; source and target are fields
// six and seven. Rows with fewer than seven fields are skipped individually.
func ExtractTSV(r io.Reader, name string) ([]Record, error) {
	var recs []Record

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSuffix(s.Text(), "\r")
		if text == "" {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) < tsvMinFields {
			slog.Debug("skipping short row",
				"file", name,
				"line", line,
				"fields", len(fields),
			)
			continue
		}
		recs = append(recs, Record{
			ID:     strings.Join(fields[:tsvIDFields], " "),
			Source: fields[tsvIDFields],
			Target: fields[tsvIDFields+1],
			File:   name,
		})
	}
	if err := s.Err(); err != nil {
		return recs, fmt.Errorf("scanning %q: %w", name, err)
	}

	return recs, nil
}
