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
	"os"

	"github.com/urfave/cli/v2"

	"github.com/glosslint/glosslint"
	"github.com/glosslint/glosslint/check"
	"github.com/glosslint/glosslint/glossary"
	"github.com/glosslint/glosslint/resolve"
)

var termCheckCommand = &cli.Command{
	Name:      "termcheck",
	Usage:     "Flag targets missing a glossary term's translation",
	ArgsUsage: "FILE...",
	Flags: append(append(corpusFlags(), filterFlags()...),
		&cli.StringSliceFlag{
			Name:  "glossary-from",
			Usage: "build the glossary from `FILE` instead of the checked corpus (repeatable)",
		},
		&cli.BoolFlag{
			Name:               "validate",
			Usage:              "validate glossary terms before checking",
			DisableDefaultText: true,
		},
		&cli.IntFlag{
			Name:  "max-issues",
			Usage: "discard terms with more than `N` issues",
			Value: check.DefaultMaxIssues,
		},
	),
	Action: func(c *cli.Context) error {
		b, err := openBatch(c)
		if err != nil {
			return err
		}

		terms, err := glossaryTerms(c, b)
		if err != nil {
			return err
		}

		findings, err := b.TermCheck(terms, c.Int("max-issues"))
		if err != nil {
			return err
		}
		if len(findings) == 0 {
			return nil
		}

		tbl := newTable("TERM", "EXPECTED", "SOURCE", "TARGET")
		for _, f := range findings {
			for _, issue := range f.Issues {
				tbl.AddRow(render(f.Term), render(f.Expected),
					render(issue.Source), render(issue.Target))
			}
		}
		tbl.Print()

		return ErrFindings
	},
}

// glossaryTerms extracts the glossary for the term check, from the checked
// corpus or from a separate file set.
func glossaryTerms(c *cli.Context, b *glosslint.Batch) ([]glossary.Term, error) {
	from := c.StringSlice("glossary-from")
	if len(from) == 0 {
		return b.Glossary(filterOptions(c), c.Bool("validate"), glossary.SortAlpha)
	}

	basis := resolve.Native
	if c.Bool("cross") {
		basis = resolve.CrossReferenced
	}
	gb, errs := glosslint.Open(glosslint.Config{
		Paths:    from,
		RefPaths: c.StringSlice("ref"),
		Basis:    basis,
		Matcher:  matcherFlag(c),
		Script:   scriptFlag(c),
		Logger:   newLogger(c),
		Reporter: newReporter(c),
	})
	for _, err := range errs {
		if gb == nil {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, err)
	}
	return gb.Glossary(filterOptions(c), c.Bool("validate"), glossary.SortAlpha)
}
