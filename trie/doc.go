// Package trie implements a plain prefix tree over runes: membership,
// prefix and removal queries on a mutable set of words.
//
// 🚀 What is a trie?
//
//	A tree where each edge carries one symbol, so every path from the root
//	spells a prefix shared by the words below it.  Lookup cost depends only
//	on the query length, never on the number of stored words.  It's widely
//	used in:
//	  • Autocomplete & spell checking
//	  • Routing tables & longest-prefix match
//	  • Word games & dictionary filters
//
// ✨ Key features:
//   - Insert / Contains / HasPrefix / Remove in O(word length)
//   - Remove prunes dead branches so memory tracks the live word set
//   - Walk visits all words in lexicographic order with an abortable hook
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/textmatch/trie"
//
//	t := trie.New()
//	_ = t.Insert("car")
//	_ = t.Insert("cat")
//
//	t.Contains("car")  // true
//	t.HasPrefix("ca")  // true
//	t.Remove("car")    // true
//
// This package is independent of ahocorasick: the automaton embeds its own
// trie structure and never consults this one.
//
// Performance:
//
//   - Time:   O(L) per operation, L = word length
//   - Memory: O(total length of stored words)
package trie
