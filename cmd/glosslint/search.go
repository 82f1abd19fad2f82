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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/glosslint/glosslint/dict"
	"github.com/glosslint/glosslint/internal/cache"
	"github.com/glosslint/glosslint/record"
	"github.com/glosslint/glosslint/search"
)

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "Search the corpus dictionary",
	ArgsUsage: "QUERY FILE...",
	Flags: append(corpusFlags(),
		&cli.BoolFlag{
			Name:               "exact",
			Usage:              "match the full text instead of a substring",
			Aliases:            []string{"e"},
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "id",
			Usage:              "look up by record identifier",
			DisableDefaultText: true,
		},
		&cli.BoolFlag{
			Name:               "multi",
			Usage:              "treat each input line as a separate query, read from stdin when QUERY is -",
			DisableDefaultText: true,
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "cap results at `N`",
			Value: 20,
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "skip the first `N` results",
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "dictionary cache `DIR` (empty disables caching)",
			Value: defaultCacheDir(),
		},
	),
	Action: func(c *cli.Context) error {
		if c.Args().Len() < 2 {
			return fmt.Errorf("%w: need a query and corpus files", ErrFlagParse)
		}
		query := c.Args().First()
		paths := c.Args().Tail()

		d, err := buildDict(c, paths)
		if err != nil {
			return err
		}
		var ref *dict.Dict
		if refPaths := c.StringSlice("ref"); len(refPaths) > 0 {
			ref, err = buildDict(c, refPaths)
			if err != nil {
				return err
			}
		}

		svc := search.New(d, ref)

		if c.Bool("id") {
			r, ok := svc.ByID(query)
			if !ok {
				fmt.Fprintln(c.App.Writer, search.NotFound)
				return ErrFindings
			}
			printResults(c, []search.Result{r})
			return nil
		}

		opts := search.Options{
			Offset: c.Int("offset"),
			Limit:  c.Int("limit"),
		}
		if c.Bool("exact") {
			opts.Mode = search.Exact
		}

		if c.Bool("multi") {
			if query == "-" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				query = string(data)
			}
			printResults(c, svc.Multi(query, opts))
			return nil
		}

		results := svc.Query(query, opts)
		if len(results) == 0 {
			fmt.Fprintln(c.App.Writer, search.NotFound)
			return ErrFindings
		}
		printResults(c, results)
		return nil
	},
}

func printResults(c *cli.Context, results []search.Result) {
	tbl := newTable("SOURCE", "TARGET", "REFERENCE", "ID")
	for _, r := range results {
		tbl.AddRow(render(r.Source), render(r.Target), render(r.RefTarget), r.ID)
	}
	tbl.Print()
}

// buildDict builds the dictionary for paths, going through the cache when
// one is configured. Cache failures fall back to a fresh build.
func buildDict(c *cli.Context, paths []string) (*dict.Dict, error) {
	log := newLogger(c)

	var ch *cache.Cache
	var key string
	if dir := c.String("cache-dir"); dir != "" {
		var err error
		ch, err = cache.New(dir)
		if err != nil {
			log.Warn("cache unavailable", "error", err)
		} else if key, err = ch.Key(paths); err != nil {
			log.Warn("cache key", "error", err)
			ch = nil
		} else if d, ok := ch.Load(key); ok {
			return d, nil
		}
	}

	var recs []record.Record
	for _, path := range paths {
		fileRecs, err := record.ExtractFile(path)
		if err != nil {
			return nil, err
		}
		recs = append(recs, fileRecs...)
	}
	d := dict.Build(recs)

	if ch != nil {
		if err := ch.Store(key, d); err != nil {
			log.Warn("cache store", "error", err)
		}
	}
	return d, nil
}

func defaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "glosslint")
}
