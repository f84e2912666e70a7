package lexicon

import "cmp"

// frame is one level of the explicit DFS stack: the state we are visiting
// and how far into its (ascending) transition list we have advanced.
type frame[T cmp.Ordered] struct {
	state uint32
	next  int
}

// WordIterator walks a Lexicon's members in ascending lexicographic order,
// pre-order (a state is reported as a member before any of its
// descendants). It holds O(depth) state, never O(size) — the whole word
// set is never materialised at once.
type WordIterator[T cmp.Ordered] struct {
	l       *Lexicon[T]
	stack   []frame[T]
	buf     []T
	pending bool // current buf is a member waiting to be returned
}

// Iterator returns a WordIterator over every member of l.
func (l *Lexicon[T]) Iterator() *WordIterator[T] {
	return l.iteratorFrom(nil)
}

// IteratorPrefix returns a WordIterator over every member beginning with
// prefix. If prefix itself has no matching path, Next immediately returns
// ok == false.
func (l *Lexicon[T]) IteratorPrefix(prefix []T) *WordIterator[T] {
	if len(prefix) == 0 || l.store.StateCount() == 0 {
		return l.iteratorFrom(prefix)
	}
	state := uint32(0)
	for _, sym := range prefix {
		next, ok := l.store.TransitionFor(state, sym)
		if !ok {
			return &WordIterator[T]{l: l} // empty: no path for prefix
		}
		state = next
	}
	it := &WordIterator[T]{l: l, buf: append([]T(nil), prefix...)}
	it.stack = append(it.stack, frame[T]{state: state})
	it.pending = l.store.IsFinal(state)
	return it
}

func (l *Lexicon[T]) iteratorFrom(prefix []T) *WordIterator[T] {
	it := &WordIterator[T]{l: l, buf: append([]T(nil), prefix...)}
	if l.store.StateCount() == 0 {
		return it
	}
	it.stack = append(it.stack, frame[T]{state: 0})
	it.pending = l.store.IsFinal(0)
	return it
}

// Next returns the next member in ascending order, or ok == false once
// exhausted. The returned slice is reused internally and is only valid
// until the following call to Next, like bufio.Scanner.Bytes; copy it if
// it must outlive that call.
func (it *WordIterator[T]) Next() ([]T, bool) {
	for {
		if it.pending {
			it.pending = false
			return it.buf, true
		}
		if len(it.stack) == 0 {
			return nil, false
		}
		top := &it.stack[len(it.stack)-1]
		edges := it.l.store.Transitions(top.state)
		if top.next >= len(edges) {
			it.stack = it.stack[:len(it.stack)-1]
			if len(it.buf) > 0 {
				it.buf = it.buf[:len(it.buf)-1]
			}
			continue
		}
		e := edges[top.next]
		top.next++
		it.buf = append(it.buf, e.Symbol)
		it.stack = append(it.stack, frame[T]{state: e.Target})
		it.pending = it.l.store.IsFinal(e.Target)
	}
}
