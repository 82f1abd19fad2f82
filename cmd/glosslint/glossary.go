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

	"github.com/urfave/cli/v2"

	"github.com/glosslint/glosslint/glossary"
)

var glossaryCommand = &cli.Command{
	Name:      "glossary",
	Usage:     "Extract glossary terms from a corpus",
	ArgsUsage: "FILE...",
	Flags: append(append(corpusFlags(), filterFlags()...),
		&cli.BoolFlag{
			Name:               "validate",
			Usage:              "keep only terms with an isolated occurrence in the corpus",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:  "sort",
			Usage: "output order: `alpha`, length, or count",
			Value: "alpha",
		},
		&cli.BoolFlag{
			Name:               "tsv",
			Usage:              "print tab-separated rows instead of a table",
			DisableDefaultText: true,
		},
	),
	Action: func(c *cli.Context) error {
		b, err := openBatch(c)
		if err != nil {
			return err
		}

		terms, err := b.Glossary(filterOptions(c), c.Bool("validate"), sortFlag(c))
		if err != nil {
			return err
		}

		if c.Bool("tsv") {
			for _, t := range terms {
				fmt.Fprintf(c.App.Writer, "%s\t%s\t%d\n", t.Source, t.Target, t.Count)
			}
			return nil
		}

		tbl := newTable("SOURCE", "TARGET", "COUNT")
		for _, t := range terms {
			tbl.AddRow(render(t.Source), render(t.Target), t.Count)
		}
		tbl.Print()

		return nil
	},
}

func sortFlag(c *cli.Context) glossary.Sort {
	switch c.String("sort") {
	case "length":
		return glossary.SortLength
	case "count":
		return glossary.SortCount
	default:
		return glossary.SortAlpha
	}
}
