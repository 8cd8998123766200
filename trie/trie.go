package trie

import (
	"errors"
	"sort"
)

// ErrEmptyWord is returned by Insert for the empty string; the empty word
// has no edges to store and is not representable in the tree.
var ErrEmptyWord = errors.New("trie: empty word")

// node is one shared prefix; word marks prefixes that are complete words.
type node struct {
	children map[rune]*node
	word     bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Trie is a mutable prefix tree over runes. The zero value is not usable;
// construct with New. A Trie is not safe for concurrent mutation.
type Trie struct {
	root  *node
	count int
}

// New returns an empty Trie.
func New() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word to the set. Inserting a word already present is a no-op.
// Returns ErrEmptyWord for the empty string.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	cur := t.root
	for _, symbol := range word {
		next := cur.children[symbol]
		if next == nil {
			next = newNode()
			cur.children[symbol] = next
		}
		cur = next
	}
	if !cur.word {
		cur.word = true
		t.count++
	}

	return nil
}

// Contains reports whether word itself was inserted (not merely a prefix
// of an inserted word). The empty string is never contained.
func (t *Trie) Contains(word string) bool {
	n := t.lookup(word)

	return n != nil && n.word
}

// HasPrefix reports whether any inserted word starts with prefix.
// The empty prefix reports false, matching Contains on empty input.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.lookup(prefix) != nil
}

// lookup walks the edges spelled by s; nil when the path is absent or s
// is empty.
func (t *Trie) lookup(s string) *node {
	if s == "" {
		return nil
	}
	cur := t.root
	for _, symbol := range s {
		if cur = cur.children[symbol]; cur == nil {
			return nil
		}
	}

	return cur
}

// Remove deletes word from the set, pruning any branch left without words,
// and reports whether the word was present.
func (t *Trie) Remove(word string) bool {
	if word == "" {
		return false
	}
	type edge struct {
		parent *node
		symbol rune
	}
	cur := t.root
	path := make([]edge, 0, len(word))
	for _, symbol := range word {
		next := cur.children[symbol]
		if next == nil {
			return false
		}
		path = append(path, edge{parent: cur, symbol: symbol})
		cur = next
	}
	if !cur.word {
		return false
	}
	cur.word = false
	t.count--

	// Prune childless non-word nodes bottom-up; stop at the first node
	// still needed as a word or as a shared prefix.
	for i := len(path) - 1; i >= 0; i-- {
		n := path[i].parent.children[path[i].symbol]
		if n.word || len(n.children) > 0 {
			break
		}
		delete(path[i].parent.children, path[i].symbol)
	}

	return true
}

// Len reports the number of distinct words in the set.
func (t *Trie) Len() int { return t.count }

// Walk calls fn for every word in lexicographic (rune order) sequence.
// If fn returns an error, the walk stops and that error is returned.
func (t *Trie) Walk(fn func(word string) error) error {
	if fn == nil {
		return nil
	}

	return walk(t.root, nil, fn)
}

func walk(n *node, prefix []rune, fn func(string) error) error {
	if n.word {
		if err := fn(string(prefix)); err != nil {
			return err
		}
	}
	symbols := make([]rune, 0, len(n.children))
	for symbol := range n.children {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	for _, symbol := range symbols {
		if err := walk(n.children[symbol], append(prefix, symbol), fn); err != nil {
			return err
		}
	}

	return nil
}
