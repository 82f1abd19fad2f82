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
	"fmt"
	"log/slog"

	"github.com/antchfx/xmlquery"
)

// Attribute names accepted for each record field. Exporters do not agree on
// naming, so any equivalent triple is accepted; the first present name wins.
var (
	idAttrs     = []string{"id", "key", "name"}
	sourceAttrs = []string{"source", "src", "original"}
	targetAttrs = []string{"target", "dst", "translation"}
)

// ExtractMarkup extracts records from markup data. Parsing is attempted
// strict first; on failure the data is run through Repair and parsed again.
// If both attempts fail the error is returned and the caller skips the file.
//
// Elements carrying neither a source nor a target attribute are skipped.
func ExtractMarkup(data []byte, name string) ([]Record, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		slog.Debug("strict parse failed, repairing", "file", name, "error", err)
		doc, err = xmlquery.Parse(bytes.NewReader(Repair(data)))
		if err != nil {
			return nil, fmt.Errorf("parsing %q after repair: %w", name, err)
		}
	}

	var recs []Record
	var walk func(n *xmlquery.Node)
	walk = func(n *xmlquery.Node) {
		for node := n.FirstChild; node != nil; node = node.NextSibling {
			if node.Type == xmlquery.ElementNode {
				src, srcOK := attr(node, sourceAttrs)
				tgt, tgtOK := attr(node, targetAttrs)
				if srcOK || tgtOK {
					id, _ := attr(node, idAttrs)
					recs = append(recs, Record{
						ID:     id,
						Source: src,
						Target: tgt,
						File:   name,
					})
				}
			}
			walk(node)
		}
	}
	walk(doc)

	return recs, nil
}

// attr returns the first attribute of node present under any of the given
// names.
func attr(node *xmlquery.Node, names []string) (string, bool) {
	for _, name := range names {
		for _, a := range node.Attr {
			if a.Name.Local == name {
				return a.Value, true
			}
		}
	}
	return "", false
}
