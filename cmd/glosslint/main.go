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
	"os"
)

func main() {
	if err := newGlosslintApp().Run(os.Args); err != nil {
		switch {
		case errors.Is(err, ErrFindings):
			os.Exit(ExitCodeFindings)
		case errors.Is(err, ErrFlagParse):
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitCodeFlagParseError)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(ExitCodeUnknownError)
		}
	}
}
