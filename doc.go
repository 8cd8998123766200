// Package textmatch is your in-memory toolkit for exact multi-pattern
// text search — from a plain prefix tree to a full Aho-Corasick automaton.
//
// 🚀 What is textmatch?
//
//	A modern, thread-safe-after-build library that brings together:
//		• Aho-Corasick: build one automaton from a whole dictionary, scan any
//		  text once, report every occurrence of every pattern — overlaps included
//		• Prefix tree: membership, prefix and removal queries over a word set
//
// ✨ Why choose textmatch?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable automatons, safe concurrent scanning
//   - Pure Go – no cgo, no hidden runtime deps
//   - Extensible – add custom hooks (OnMatch…) for custom logic
//
// Under the hood, everything is organized under two subpackages:
//
//	ahocorasick/ — dictionary automaton: trie + failure links + output links,
//	               linear-time scanning, overlapping match reporting
//	trie/        — standalone prefix tree for membership & prefix queries
//
// Quick ASCII example — the dictionary {he, she, his, hers} as a trie:
//
//	    root
//	    ├─ h ─ e*─ r ─ s*
//	    │  └─ i ─ s*
//	    └─ s ─ h ─ e*
//
//	starred nodes complete a pattern; failure links (not drawn) connect
//	each node to its longest proper suffix that is also a trie prefix.
//
// Dive into the package docs for full examples, complexity notes, and the
// scanning state machine in detail.
//
//	go get github.com/katalvlaran/textmatch
package textmatch
