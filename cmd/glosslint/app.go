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
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/glosslint/glosslint"
	"github.com/glosslint/glosslint/filter"
	"github.com/glosslint/glosslint/internal/progress"
	"github.com/glosslint/glosslint/match"
	"github.com/glosslint/glosslint/resolve"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeFindings is the exit code when a check produced findings.
	ExitCodeFindings

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrGlosslint is a parent error for all command errors.
var ErrGlosslint = errors.New("glosslint")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrGlosslint)

// ErrFindings indicates a check run produced findings.
var ErrFindings = fmt.Errorf("%w: findings", ErrGlosslint)

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// must checks the error and panics if not nil.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

func newGlosslintApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Check translation corpora for terminology consistency.",
		Description: strings.Join([]string{
			"Terminology consistency checker written in Go.",
			"http://github.com/glosslint/glosslint",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               "debug",
				Usage:              "enable debug logging",
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "quiet",
				Usage:              "suppress progress output",
				Aliases:            []string{"q"},
				DisableDefaultText: true,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       "2025 The glosslint Authors",
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			must(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			lineCheckCommand,
			termCheckCommand,
			glossaryCommand,
			searchCommand,
			dictCommand,
		},
	}
}

// corpusFlags are shared by every command that loads a corpus.
func corpusFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "ref",
			Usage:   "reference corpus `FILE` (repeatable)",
			Aliases: []string{"r"},
		},
		&cli.BoolFlag{
			Name:               "cross",
			Usage:              "compare on reference corpus text instead of native source",
			DisableDefaultText: true,
		},
		&cli.StringFlag{
			Name:  "script",
			Usage: "source script for word boundaries: `hangul`, han, or none",
			Value: "hangul",
		},
		&cli.BoolFlag{
			Name:               "naive",
			Usage:              "use the naive scanner instead of the automaton",
			DisableDefaultText: true,
		},
	}
}

// filterFlags configure the candidate filter chain.
func filterFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "max-len",
			Usage: "drop sources at or above `N` runes",
			Value: filter.DefaultMaxSourceLen,
		},
		&cli.IntFlag{
			Name:  "min-count",
			Usage: "drop sources occurring fewer than `N` times",
		},
		&cli.BoolFlag{
			Name:               "drop-sentences",
			Usage:              "drop sources ending in sentence punctuation",
			DisableDefaultText: true,
		},
	}
}

func filterOptions(c *cli.Context) filter.Options {
	return filter.Options{
		MaxSourceLen:   c.Int("max-len"),
		ExcludedScript: scriptFlag(c),
		DropSentences:  c.Bool("drop-sentences"),
		MinOccurrence:  c.Int("min-count"),
	}
}

func scriptFlag(c *cli.Context) match.Script {
	switch c.String("script") {
	case "han":
		return match.Han
	case "none", "":
		return match.Script{}
	default:
		return match.Hangul
	}
}

func matcherFlag(c *cli.Context) match.Builder {
	if c.Bool("naive") {
		return match.NewNaive
	}
	return match.NewAhoCorasick
}

func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

func newReporter(c *cli.Context) progress.Reporter {
	if c.Bool("quiet") {
		return progress.Nop
	}
	return progress.Func(func(message string, completed, total int) {
		if total == 0 || completed%1000 != 0 && completed != total {
			return
		}
		fmt.Fprintf(os.Stderr, "\r%s (%d/%d)", message, completed, total)
		if completed == total {
			fmt.Fprintln(os.Stderr)
		}
	})
}

// openBatch loads the corpus named by the command's arguments. Per-file
// errors are printed and skipped; only configuration errors abort.
func openBatch(c *cli.Context) (*glosslint.Batch, error) {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no corpus files", ErrFlagParse)
	}

	basis := resolve.Native
	if c.Bool("cross") {
		basis = resolve.CrossReferenced
	}

	b, errs := glosslint.Open(glosslint.Config{
		Paths:    paths,
		RefPaths: c.StringSlice("ref"),
		Basis:    basis,
		Matcher:  matcherFlag(c),
		Script:   scriptFlag(c),
		Logger:   newLogger(c),
		Reporter: newReporter(c),
	})
	for _, err := range errs {
		if b == nil {
			return nil, err
		}
		fmt.Fprintln(os.Stderr, err)
	}
	return b, nil
}
