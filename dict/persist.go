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

package dict

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/ianlewis/go-dictzip"
)

// payload is the on-disk shape of a dictionary: one opaque unit holding both
// alignment maps and the reverse map.
type payload struct {
	Lines   map[string][]Entry
	Whole   map[string][]Entry
	Reverse map[string]Pair
}

// Save writes the dictionary to path as a dictzip-compressed gob blob. One
// file holds one (corpus, language) unit.
func (d *Dict) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		return fmt.Errorf("compressing %q: %w", path, err)
	}

	if err := gob.NewEncoder(z).Encode(payload{
		Lines:   d.Lines,
		Whole:   d.Whole,
		Reverse: d.Reverse,
	}); err != nil {
		z.Close()
		return fmt.Errorf("encoding %q: %w", path, err)
	}
	if err := z.Close(); err != nil {
		return fmt.Errorf("closing %q: %w", path, err)
	}
	return f.Close()
}

// Load reads a dictionary previously written by Save. The loaded maps
// compare equal to the saved ones.
func Load(path string) (*Dict, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	z, err := dictzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("decompressing %q: %w", path, err)
	}

	var p payload
	if err := gob.NewDecoder(z).Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}

	d := &Dict{
		Lines:   p.Lines,
		Whole:   p.Whole,
		Reverse: p.Reverse,
	}
	if d.Lines == nil {
		d.Lines = map[string][]Entry{}
	}
	if d.Whole == nil {
		d.Whole = map[string][]Entry{}
	}
	if d.Reverse == nil {
		d.Reverse = map[string]Pair{}
	}
	return d, nil
}
