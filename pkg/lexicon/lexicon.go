// Package lexicon is the public surface of an immutable, sorted set of
// non-empty words over an arbitrary totally-ordered symbol type, backed by
// a minimal acyclic deterministic finite automaton (MADFA). It is the
// design's C4 component: the read-side algorithms layered on top of the
// automaton store (internal/automaton), the right-language signature
// (internal/signature) and the incremental builder (internal/builder).
//
// A Lexicon is never mutated after construction; Insert and Remove return
// a new value. All read operations are safe to call concurrently from
// multiple goroutines on the same Lexicon.
package lexicon

import (
	"cmp"
	"slices"

	"github.com/jamra/lexicon/internal/automaton"
	"github.com/jamra/lexicon/internal/builder"
)

// Lexicon is an immutable sorted set of words over symbol type T.
type Lexicon[T cmp.Ordered] struct {
	store *automaton.Store[T]
	size  int
}

// Empty returns the Lexicon containing no words.
func Empty[T cmp.Ordered]() *Lexicon[T] {
	return &Lexicon[T]{store: automaton.New[T]()}
}

// FromSeq builds a Lexicon from an arbitrary (possibly unsorted, possibly
// duplicated) slice of words. The words are sorted and deduplicated before
// being fed to the Builder.
func FromSeq[T cmp.Ordered](words [][]T) (*Lexicon[T], error) {
	sorted := make([][]T, len(words))
	copy(sorted, words)
	slices.SortFunc(sorted, compareWords[T])

	deduped := sorted[:0]
	for i, w := range sorted {
		if len(w) == 0 {
			return nil, ErrEmptyWord
		}
		if i > 0 && compareWords(w, sorted[i-1]) == 0 {
			continue
		}
		deduped = append(deduped, w)
	}
	return buildFromSortedUnique(deduped)
}

// SortedSource delivers words in strictly ascending order, no duplicates,
// signalling end of input with ok == false. It is the contract
// FromSortedIterator consumes.
type SortedSource[T cmp.Ordered] func() (word []T, ok bool)

// FromSortedIterator builds a Lexicon directly from a pre-sorted,
// pre-deduplicated source, skipping the sort/dedup pass FromSeq performs.
// The first word that is not strictly greater than its predecessor is
// reported as ErrOrderViolation.
func FromSortedIterator[T cmp.Ordered](src SortedSource[T]) (*Lexicon[T], error) {
	b := builder.New[T]()
	for {
		word, ok := src()
		if !ok {
			break
		}
		if err := b.Add(word); err != nil {
			return nil, err
		}
	}
	store, err := b.Result()
	if err != nil {
		return nil, err
	}
	return wrap(store), nil
}

// buildFromSortedUnique feeds an already-sorted, already-deduplicated word
// list through a fresh Builder. Every higher-level constructor (FromSeq,
// Range, Insert, Remove, Union, Intersect, Difference) that already has a
// canonical sorted word list in hand funnels through here.
func buildFromSortedUnique[T cmp.Ordered](words [][]T) (*Lexicon[T], error) {
	b := builder.NewWithSizeHint[T](len(words))
	for _, w := range words {
		if err := b.Add(w); err != nil {
			return nil, err
		}
	}
	store, err := b.Result()
	if err != nil {
		return nil, err
	}
	return wrap(store), nil
}

func wrap[T cmp.Ordered](store *automaton.Store[T]) *Lexicon[T] {
	l := &Lexicon[T]{store: store}
	for s := 0; s < store.StateCount(); s++ {
		l.size += store.FinalCount(uint32(s))
	}
	return l
}

// Contains reports whether w is a member. The empty word is never a
// member (I5: state 0 is never final).
func (l *Lexicon[T]) Contains(w []T) bool {
	if len(w) == 0 || l.store.StateCount() == 0 {
		return false
	}
	state := uint32(0)
	for _, sym := range w {
		next, ok := l.store.TransitionFor(state, sym)
		if !ok {
			return false
		}
		state = next
	}
	return l.store.IsFinal(state)
}

// Size returns the number of distinct words, Σ final_count over all
// states.
func (l *Lexicon[T]) Size() int {
	return l.size
}

// Length returns the number of automaton states. This is a diagnostic —
// it is the MADFA's state count, not the number of words.
func (l *Lexicon[T]) Length() int {
	return l.store.StateCount()
}

// Equal reports whether l and other accept the same word set. Because the
// automaton is always built by sorting and deduplicating its input before
// feeding the (deterministic) Builder, two Lexicons over the same word set
// end up with bit-identical state tables — so structural equality reduces
// to a direct comparison of the two stores, with no need to search for a
// graph isomorphism.
func (l *Lexicon[T]) Equal(other *Lexicon[T]) bool {
	if l.size != other.size || l.store.StateCount() != other.store.StateCount() {
		return false
	}
	for s := 0; s < l.store.StateCount(); s++ {
		state := uint32(s)
		if l.store.FinalCount(state) != other.store.FinalCount(state) {
			return false
		}
		a, b := l.store.Transitions(state), other.store.Transitions(state)
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i].Symbol != b[i].Symbol || a[i].Target != b[i].Target {
				return false
			}
		}
	}
	return true
}

func compareWords[T cmp.Ordered](a, b []T) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// enumerate collects every member into a freshly-allocated, ascending
// slice. Used internally by operations (Range, Insert, Remove, set
// algebra) that rebuild via the Builder rather than prune in place.
func (l *Lexicon[T]) enumerate() [][]T {
	words := make([][]T, 0, l.size)
	it := l.Iterator()
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, append([]T(nil), w...))
	}
	return words
}
