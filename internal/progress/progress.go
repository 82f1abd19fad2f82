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

// Package progress defines the progress-reporting sink used by long batch
// phases: multi-file parsing, automaton construction, and full-corpus scans.
package progress

// Reporter receives progress updates. Report is called synchronously from
// the running phase with no thread guarantee; keeping the UI responsive is
// the caller's concern. There is no cancellation; a started phase runs to
// completion.
type Reporter interface {
	Report(message string, completed, total int)
}

// Func adapts a function to the Reporter interface.
type Func func(message string, completed, total int)

// Report implements [Reporter.Report].
func (f Func) Report(message string, completed, total int) {
	f(message, completed, total)
}

// Nop is a Reporter that discards updates.
var Nop Reporter = Func(func(string, int, int) {})
