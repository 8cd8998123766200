package ahocorasick

import (
	"fmt"
	"sort"
)

// Arena index of the root node, and the sentinel for an absent link.
const (
	rootIndex int32 = 0
	noLink    int32 = -1
)

// node is one prefix of the pattern dictionary. All cross-references
// (parent, fail, output) are indices into the owning arena, so no node
// ever dangles: the whole set lives and dies with the Automaton.
type node struct {
	// children maps an edge symbol to the child's arena index.
	children map[rune]int32

	// parent is the owning node's index; noLink for the root.
	parent int32

	// symbol labels the edge from parent to this node; undefined for the root.
	symbol rune

	// fail points to the node for the longest proper suffix of this node's
	// string that is also a trie prefix; the root points to itself.
	fail int32

	// output points to the nearest node on the failure chain whose string
	// is a complete pattern; noLink when no such node exists.
	output int32

	// word is true iff this node's string equals a dictionary pattern;
	// pattern then holds that string.
	word    bool
	pattern string
}

// Automaton is a frozen Aho-Corasick dictionary automaton.
// It is immutable after Build, so any number of Scanners may run against
// it concurrently without locking.
type Automaton struct {
	nodes    []node
	patterns map[string]struct{}
}

// Build constructs the automaton for the given pattern dictionary:
// every pattern is inserted into a trie, then one breadth-first pass
// resolves failure and output links for all nodes.
//
// Duplicate patterns are deduplicated; pattern order does not affect the
// result. Returns ErrEmptyPattern (with the offending position) if any
// pattern is the empty string; no partial automaton is returned.
func Build(patterns []string) (*Automaton, error) {
	a := &Automaton{
		nodes: []node{{
			children: make(map[rune]int32),
			parent:   noLink,
			fail:     rootIndex,
			output:   noLink,
		}},
		patterns: make(map[string]struct{}, len(patterns)),
	}
	for i, p := range patterns {
		if err := a.insert(p); err != nil {
			return nil, fmt.Errorf("%w (pattern %d)", err, i)
		}
	}
	a.link()

	return a, nil
}

// insert walks the trie from the root, allocating a node per missing edge
// symbol, and marks the terminal node as a word. Re-inserting an identical
// pattern only re-marks the terminal node, so duplicates are harmless.
func (a *Automaton) insert(pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	cur := rootIndex
	for _, symbol := range pattern {
		next, ok := a.nodes[cur].children[symbol]
		if !ok {
			next = int32(len(a.nodes))
			a.nodes = append(a.nodes, node{
				children: make(map[rune]int32),
				parent:   cur,
				symbol:   symbol,
				fail:     rootIndex,
				output:   noLink,
			})
			a.nodes[cur].children[symbol] = next
		}
		cur = next
	}
	a.nodes[cur].word = true
	a.nodes[cur].pattern = pattern
	a.patterns[pattern] = struct{}{}

	return nil
}

// link resolves failure and output links in one queue-driven breadth-first
// pass over the finished trie. Processing order is non-decreasing depth,
// which is what makes the computation well-founded: a node's failure link
// lands on a node of strictly smaller depth, whose own links are already
// final by the time the node is dequeued.
func (a *Automaton) link() {
	queue := make([]int32, 0, len(a.nodes))
	for _, child := range a.nodes[rootIndex].children {
		queue = append(queue, child)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		n := &a.nodes[cur]
		// Root's direct children keep fail = root from allocation.
		if n.parent != rootIndex {
			n.fail = a.resolveFail(n.parent, n.symbol)
		}
		// Nearest complete pattern on the failure chain.
		if f := &a.nodes[n.fail]; f.word {
			n.output = n.fail
		} else {
			n.output = f.output
		}

		for _, child := range n.children {
			queue = append(queue, child)
		}
	}
}

// resolveFail walks the parent's failure chain looking for a node with an
// outgoing edge for symbol; the root terminates the walk as the fallback.
func (a *Automaton) resolveFail(parent int32, symbol rune) int32 {
	cursor := a.nodes[parent].fail
	for {
		if child, ok := a.nodes[cursor].children[symbol]; ok {
			return child
		}
		if cursor == rootIndex {
			return rootIndex
		}
		cursor = a.nodes[cursor].fail
	}
}

// NodeCount reports the number of trie nodes, root included.
func (a *Automaton) NodeCount() int { return len(a.nodes) }

// PatternCount reports the number of distinct patterns in the dictionary.
func (a *Automaton) PatternCount() int { return len(a.patterns) }

// Patterns returns the distinct dictionary patterns in lexicographic order.
func (a *Automaton) Patterns() []string {
	out := make([]string, 0, len(a.patterns))
	for p := range a.patterns {
		out = append(out, p)
	}
	sort.Strings(out)

	return out
}
