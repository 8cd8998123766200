// Package ahocorasick builds a dictionary automaton over a fixed set of
// patterns and scans texts for every occurrence of every pattern — including
// overlapping occurrences — in a single left-to-right pass.
//
// 🚀 What is Aho-Corasick?
//
//	A multi-pattern generalization of Knuth-Morris-Pratt: all patterns are
//	stored in one trie, every trie node gets a failure link to its longest
//	proper suffix that is also a trie prefix, and an output link chaining it
//	to the nearest suffix that completes another pattern.  It's widely used in:
//	  • Keyword filtering & content moderation
//	  • Intrusion detection & malware signature scanning
//	  • Dictionary-based tokenization & highlighting
//	  • Bioinformatics motif search
//
// ✨ Key features:
//   - one Build, unlimited concurrent scans (the automaton is immutable)
//   - overlapping matches reported via output-link chains, no rescanning
//   - arena node storage: links are indices, teardown is dropping the value
//   - eager Scan with an OnMatch hook, lazy Matches iterator, or a manual
//     symbol-by-symbol Scanner — pick the surface that fits
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/textmatch/ahocorasick"
//
//	a, err := ahocorasick.Build([]string{"he", "she", "his", "hers"})
//	if err != nil { ... }
//
//	matches, _ := ahocorasick.Scan(a, "ahishers")
//	// {his 1 3} {she 3 5} {he 4 5} {hers 4 7}
//
//	for m := range a.Matches("ahishers") { ... } // lazy, restartable
//
// Symbols are runes: texts are consumed rune by rune and all match indices
// are 0-based inclusive rune offsets.  The package never normalizes input;
// case-folding or other preprocessing is the caller's job.
//
// Performance:
//
//   - Build: O(total pattern length)
//   - Scan:  O(text length + number of matches)
//
// See example_test.go for runnable scenarios.
package ahocorasick
