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
	"os"
	"strings"

	"github.com/k3a/html2text"
	"github.com/rodaine/table"
)

func newTable(cols ...interface{}) table.Table {
	return table.New(cols...).WithWriter(os.Stdout)
}

// render flattens markup left in corpus text so tables stay readable.
// Plain text passes through untouched.
func render(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	return html2text.HTML2Text(s)
}
