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

	"github.com/glosslint/glosslint/dict"
	"github.com/glosslint/glosslint/record"
)

var dictCommand = &cli.Command{
	Name:  "dict",
	Usage: "Build and inspect dictionary files",
	Subcommands: []*cli.Command{
		dictBuildCommand,
		dictInfoCommand,
	},
}

var dictBuildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Build a dictionary file from a corpus",
	ArgsUsage: "FILE...",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Usage:    "write the dictionary to `FILE`",
			Aliases:  []string{"o"},
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		paths := c.Args().Slice()
		if len(paths) == 0 {
			return fmt.Errorf("%w: no corpus files", ErrFlagParse)
		}

		var recs []record.Record
		for _, path := range paths {
			fileRecs, err := record.ExtractFile(path)
			if err != nil {
				return err
			}
			recs = append(recs, fileRecs...)
		}

		d := dict.Build(recs)
		if err := d.Save(c.String("output")); err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "wrote %d entries to %s\n", d.Len(), c.String("output"))
		return nil
	},
}

var dictInfoCommand = &cli.Command{
	Name:      "info",
	Usage:     "Show dictionary file statistics",
	ArgsUsage: "FILE...",
	Action: func(c *cli.Context) error {
		if c.Args().Len() == 0 {
			return fmt.Errorf("%w: no dictionary files", ErrFlagParse)
		}

		tbl := newTable("FILE", "LINES", "WHOLE", "IDS")
		for _, path := range c.Args().Slice() {
			d, err := dict.Load(path)
			if err != nil {
				return err
			}
			tbl.AddRow(path, len(d.Lines), len(d.Whole), len(d.Reverse))
		}
		tbl.Print()

		return nil
	},
}
