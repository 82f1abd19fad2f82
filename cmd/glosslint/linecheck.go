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
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/glosslint/glosslint/check"
)

var lineCheckCommand = &cli.Command{
	Name:      "linecheck",
	Usage:     "Flag sources translated multiple ways",
	ArgsUsage: "FILE...",
	Flags: append(append(corpusFlags(), filterFlags()...),
		&cli.BoolFlag{
			Name:               "filter",
			Usage:              "apply the candidate filter before grouping",
			DisableDefaultText: true,
		},
	),
	Action: func(c *cli.Context) error {
		b, err := openBatch(c)
		if err != nil {
			return err
		}

		findings := b.LineCheck(check.LineOptions{
			FilterFirst: c.Bool("filter"),
			Filter:      filterOptions(c),
		})
		if len(findings) == 0 {
			return nil
		}

		tbl := newTable("SOURCE", "TARGETS")
		for _, f := range findings {
			targets := make([]string, 0, len(f.Targets))
			for _, t := range f.Targets {
				targets = append(targets, render(t))
			}
			tbl.AddRow(render(f.Source), strings.Join(targets, " | "))
		}
		tbl.Print()

		return ErrFindings
	},
}
