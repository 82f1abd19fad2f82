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

// Package testutil provides corpus fixtures for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Row is one corpus entry written to a fixture file.
type Row struct {
	ID     string
	Source string
	Target string
}

// MakeTSV writes rows as a tab-separated corpus file and returns its path.
// Identifiers with fewer than five space-separated parts are padded so the
// row survives extraction.
func MakeTSV(t *testing.T, dir, name string, rows []Row) string {
	t.Helper()

	var b strings.Builder
	for _, row := range rows {
		parts := strings.Fields(row.ID)
		for len(parts) < 5 {
			parts = append(parts, "x")
		}
		fmt.Fprintf(&b, "%s\t%s\t%s\n", strings.Join(parts, "\t"), row.Source, row.Target)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// MakeMarkup writes rows as a markup corpus file and returns its path.
func MakeMarkup(t *testing.T, dir, name string, rows []Row) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("<strings>\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "  <string id=%q source=%q target=%q/>\n",
			row.ID, row.Source, row.Target)
	}
	b.WriteString("</strings>\n")

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}
