package lexicon

import "cmp"

// Match reports a member found by a longest-match scan: the absolute
// offset into the scanned input one past its last symbol, and the word
// itself.
type Match[T cmp.Ordered] struct {
	End  int
	Word []T
}

// IndexOf scans input from position start, walking the automaton
// symbol-by-symbol, and returns the largest end such that
// input[start:end] is a member. If no such member exists (including when
// start is out of range), ok is false.
//
// At each position the current automaton state is checked for finality
// first — recording end as a candidate — and only then is the transition
// for that position attempted; this is what makes IndexOf return the
// longest match rather than the first one.
func (l *Lexicon[T]) IndexOf(input []T, start int) (end int, ok bool) {
	if start < 0 || start > len(input) || l.store.StateCount() == 0 {
		return 0, false
	}
	state := uint32(0)
	lastMatch := -1
	i := start
	for {
		if l.store.IsFinal(state) {
			lastMatch = i
		}
		if i == len(input) {
			break
		}
		next, found := l.store.TransitionFor(state, input[i])
		if !found {
			break
		}
		state = next
		i++
	}
	if lastMatch < 0 {
		return 0, false
	}
	return lastMatch, true
}

// Lookup is IndexOf plus the matched word itself.
func (l *Lexicon[T]) Lookup(input []T, start int) (Match[T], bool) {
	end, ok := l.IndexOf(input, start)
	if !ok {
		return Match[T]{}, false
	}
	return Match[T]{End: end, Word: append([]T(nil), input[start:end]...)}, true
}
