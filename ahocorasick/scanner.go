package ahocorasick

import (
	"fmt"
	"iter"
	"unicode/utf8"
)

// Scanner is a stateful cursor over one text. It holds only its current
// node and rune position, never mutating the automaton, so independent
// Scanners may share an automaton across goroutines.
type Scanner struct {
	a   *Automaton
	cur int32
	pos int
}

// NewScanner returns a fresh Scanner positioned at the automaton root.
// Returns ErrNilAutomaton for a nil automaton.
func NewScanner(a *Automaton) (*Scanner, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}

	return &Scanner{a: a, cur: rootIndex}, nil
}

// Consume advances the cursor by one symbol and returns every match ending
// at that symbol: the current node's own pattern first, then its output
// chain outward. Consume never fails; a symbol with no edge anywhere
// resolves to the root via failure links.
func (s *Scanner) Consume(symbol rune) []Match {
	nodes := s.a.nodes
	cur := s.cur
	// Follow failure links until an edge for symbol exists or the root
	// is reached; the root is its own fallback, so this terminates.
	for {
		if next, ok := nodes[cur].children[symbol]; ok {
			cur = next
			break
		}
		if cur == rootIndex {
			break
		}
		cur = nodes[cur].fail
	}
	s.cur = cur
	s.pos++

	var matches []Match
	if nodes[cur].word {
		matches = append(matches, s.matchAt(cur))
	}
	for link := nodes[cur].output; link != noLink; link = nodes[link].output {
		matches = append(matches, s.matchAt(link))
	}

	return matches
}

// matchAt builds the Match for the pattern node idx, ending at the symbol
// just consumed.
func (s *Scanner) matchAt(idx int32) Match {
	p := s.a.nodes[idx].pattern
	end := s.pos - 1

	return Match{Pattern: p, Start: end - utf8.RuneCountInString(p) + 1, End: end}
}

// Position reports the number of symbols consumed so far.
func (s *Scanner) Position() int { return s.pos }

// Reset rewinds the Scanner to the root, ready for a new text.
func (s *Scanner) Reset() { s.cur, s.pos = rootIndex, 0 }

// Scan feeds text through a fresh Scanner symbol by symbol and returns all
// matches in report order: increasing end offset, output-chain order within
// one offset. An OnMatch hook registered via WithOnMatch observes each
// match and may abort the scan by returning an error.
// Returns ErrNilAutomaton for a nil automaton.
func Scan(a *Automaton, text string, opts ...Option) ([]Match, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := Scanner{a: a, cur: rootIndex}
	var all []Match
	for _, symbol := range text {
		for _, m := range s.Consume(symbol) {
			if err := o.OnMatch(m); err != nil {
				return all, fmt.Errorf("ahocorasick: OnMatch error at offset %d: %w", m.End, err)
			}
			all = append(all, m)
		}
	}

	return all, nil
}

// Matches returns a lazy sequence of all matches of the dictionary in text.
// The sequence is restartable: each range starts a fresh Scanner, and the
// automaton itself is never mutated.
func (a *Automaton) Matches(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		s := Scanner{a: a, cur: rootIndex}
		for _, symbol := range text {
			for _, m := range s.Consume(symbol) {
				if !yield(m) {
					return
				}
			}
		}
	}
}
