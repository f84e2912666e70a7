package lexicon

import "sort"

// Insert returns a new Lexicon containing every member of l plus w. If w is
// already a member, the returned Lexicon is structurally equal to l. The
// empty word is rejected with ErrEmptyWord.
//
// Insert rebuilds the whole automaton from scratch: the design has no
// incremental single-word insertion algorithm (only the whole-sorted-batch
// Builder), so this enumerates l's members, splices w into its sorted
// position, and reruns the Builder. This makes Insert O(size) rather than
// the O(word length) an incremental algorithm could offer.
func (l *Lexicon[T]) Insert(w []T) (*Lexicon[T], error) {
	if len(w) == 0 {
		return nil, ErrEmptyWord
	}
	words := l.enumerate()
	idx := sort.Search(len(words), func(i int) bool {
		return compareWords(words[i], w) >= 0
	})
	if idx < len(words) && compareWords(words[idx], w) == 0 {
		return l, nil
	}
	words = append(words, nil)
	copy(words[idx+1:], words[idx:])
	words[idx] = append([]T(nil), w...)
	return buildFromSortedUnique(words)
}

// Remove returns a new Lexicon containing every member of l except w. If w
// is not a member, the returned Lexicon is structurally equal to l.
func (l *Lexicon[T]) Remove(w []T) (*Lexicon[T], error) {
	if !l.Contains(w) {
		return l, nil
	}
	words := l.enumerate()
	idx := sort.Search(len(words), func(i int) bool {
		return compareWords(words[i], w) >= 0
	})
	words = append(words[:idx], words[idx+1:]...)
	if len(words) == 0 {
		return Empty[T](), nil
	}
	return buildFromSortedUnique(words)
}
