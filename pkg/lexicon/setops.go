package lexicon

import "cmp"

// Range returns a new Lexicon containing every member m of l with
// lo <= m < hi (by lexicographic order on T): lo is inclusive, hi is
// exclusive. Either bound may be nil to leave that side unbounded.
func (l *Lexicon[T]) Range(lo, hi []T) *Lexicon[T] {
	var kept [][]T
	it := l.Iterator()
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		if lo != nil && compareWords(w, lo) < 0 {
			continue
		}
		if hi != nil && compareWords(w, hi) >= 0 {
			break
		}
		kept = append(kept, append([]T(nil), w...))
	}
	out, err := buildFromSortedUnique(kept)
	if err != nil {
		// kept is already sorted, deduplicated (Lexicon members are
		// unique by construction) and non-empty-word: buildFromSortedUnique
		// cannot fail on such input.
		panic("lexicon: Range produced an invalid word set: " + err.Error())
	}
	return out
}

// Union returns the Lexicon accepting every word in l or other (or both).
func (l *Lexicon[T]) Union(other *Lexicon[T]) *Lexicon[T] {
	return merge(l, other, func(inA, inB bool) bool { return inA || inB })
}

// Intersect returns the Lexicon accepting every word in both l and other.
func (l *Lexicon[T]) Intersect(other *Lexicon[T]) *Lexicon[T] {
	return merge(l, other, func(inA, inB bool) bool { return inA && inB })
}

// Difference returns the Lexicon accepting every word in l that is not in
// other.
func (l *Lexicon[T]) Difference(other *Lexicon[T]) *Lexicon[T] {
	return merge(l, other, func(inA, inB bool) bool { return inA && !inB })
}

// merge implements Union/Intersect/Difference identically: a sorted
// two-pointer walk over both members lists (the same merge step a merge
// sort uses), keeping a word when keep(inA, inB) holds, then rebuilding via
// the Builder. The automaton has no native set-algebra traversal — the
// same enumerate/rebuild strategy Insert and Remove use — since the design
// only specifies incremental single-word construction, never a product
// construction over two automata.
func merge[T cmp.Ordered](a, b *Lexicon[T], keep func(inA, inB bool) bool) *Lexicon[T] {
	wa, wb := a.enumerate(), b.enumerate()
	var out [][]T
	i, j := 0, 0
	for i < len(wa) || j < len(wb) {
		switch {
		case i >= len(wa):
			if keep(false, true) {
				out = append(out, wb[j])
			}
			j++
		case j >= len(wb):
			if keep(true, false) {
				out = append(out, wa[i])
			}
			i++
		default:
			c := compareWords(wa[i], wb[j])
			switch {
			case c < 0:
				if keep(true, false) {
					out = append(out, wa[i])
				}
				i++
			case c > 0:
				if keep(false, true) {
					out = append(out, wb[j])
				}
				j++
			default:
				if keep(true, true) {
					out = append(out, wa[i])
				}
				i++
				j++
			}
		}
	}
	result, err := buildFromSortedUnique(out)
	if err != nil {
		panic("lexicon: set operation produced an invalid word set: " + err.Error())
	}
	return result
}
