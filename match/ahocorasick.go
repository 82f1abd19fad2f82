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

package match

// ahoCorasick is a byte-level Aho-Corasick automaton. Construction cost is
// proportional to the total pattern length; a scan visits each text byte
// once regardless of how many patterns are loaded.
type ahoCorasick struct {
	nodes    []acNode
	patterns []string
}

type acNode struct {
	next map[byte]int32

	// fail is the longest proper suffix of this node's path that is also a
	// path in the trie.
	fail int32

	// out lists indices of patterns ending at this node, including patterns
	// reachable through fail links.
	out []int32
}

// NewAhoCorasick builds an automaton over the pattern set. Duplicate
// patterns are matched once.
func NewAhoCorasick(patterns []string) (Matcher, error) {
	if err := validate(patterns); err != nil {
		return nil, err
	}

	m := &ahoCorasick{
		nodes: []acNode{{next: map[byte]int32{}}},
	}

	seen := map[string]bool{}
	for _, p := range patterns {
		if seen[p] {
			continue
		}
		seen[p] = true
		m.insert(p)
	}
	m.link()

	return m, nil
}

// insert adds a pattern path to the trie.
func (m *ahoCorasick) insert(p string) {
	cur := int32(0)
	for i := 0; i < len(p); i++ {
		b := p[i]
		next, ok := m.nodes[cur].next[b]
		if !ok {
			next = int32(len(m.nodes))
			m.nodes = append(m.nodes, acNode{next: map[byte]int32{}})
			m.nodes[cur].next[b] = next
		}
		cur = next
	}
	m.nodes[cur].out = append(m.nodes[cur].out, int32(len(m.patterns)))
	m.patterns = append(m.patterns, p)
}

// link computes fail links and merges output sets breadth-first.
func (m *ahoCorasick) link() {
	queue := make([]int32, 0, len(m.nodes))
	for _, next := range m.nodes[0].next {
		m.nodes[next].fail = 0
		queue = append(queue, next)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for b, next := range m.nodes[cur].next {
			queue = append(queue, next)

			f := m.nodes[cur].fail
			for {
				if t, ok := m.nodes[f].next[b]; ok && t != next {
					f = t
					break
				}
				if f == 0 {
					break
				}
				f = m.nodes[f].fail
			}
			m.nodes[next].fail = f
			m.nodes[next].out = append(m.nodes[next].out, m.nodes[f].out...)
		}
	}
}

// step advances the automaton from state by input byte b.
func (m *ahoCorasick) step(state int32, b byte) int32 {
	for {
		if next, ok := m.nodes[state].next[b]; ok {
			return next
		}
		if state == 0 {
			return 0
		}
		state = m.nodes[state].fail
	}
}

// Find implements [Matcher.Find].
func (m *ahoCorasick) Find(text string) []Match {
	var matches []Match
	state := int32(0)
	for i := 0; i < len(text); i++ {
		state = m.step(state, text[i])
		for _, pi := range m.nodes[state].out {
			p := m.patterns[pi]
			matches = append(matches, Match{
				Pattern: p,
				Start:   i + 1 - len(p),
				End:     i + 1,
			})
		}
	}
	sortMatches(matches)
	return matches
}
