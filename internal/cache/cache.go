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

// Package cache implements a read-through cache of persisted dictionaries.
//
// The cache key fingerprints the contributing corpus files; a dictionary
// loaded from the cache is treated as process-wide read-only state.
// Rebuilding when a source file changes mid-run is out of scope: the
// fingerprint changes and the next run misses.
package cache

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/glosslint/glosslint/dict"
)

// Cache stores persisted dictionary units under a directory.
type Cache struct {
	dir string
}

// New returns a cache rooted at dir, creating it if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir %q: %w", dir, err)
	}
	return &Cache{dir: dir}, nil
}

// Key fingerprints the corpus: each contributing file's path, size, and
// modification time. Content hashing is intentionally avoided; corpora run
// to hundreds of megabytes and the metadata triple is enough to catch a
// re-export.
func (c *Cache) Key(paths []string) (string, error) {
	h := blake3.New()
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return "", fmt.Errorf("stat %q: %w", p, err)
		}
		fmt.Fprintf(h, "%s\x00%d\x00%d\x00", p, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)[:16]), nil
}

// Load returns the cached dictionary for key, or false on a miss. A
// corrupt cache file is a miss, not an error.
func (c *Cache) Load(key string) (*dict.Dict, bool) {
	d, err := dict.Load(c.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			slog.Debug("cache entry unreadable", "key", key, "error", err)
		}
		return nil, false
	}
	return d, true
}

// Store persists the dictionary under key.
func (c *Cache) Store(key string, d *dict.Dict) error {
	return d.Save(c.path(key))
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".dict.dz")
}
