// Package builder implements the online, single-pass MADFA construction
// algorithm (Daciuk et al., 2000, "Algorithm 1") — the design's C3
// component. It absorbs one sorted, duplicate-free word at a time,
// mutating an automaton.Store while using a signature registry to merge
// newly-created states with existing equivalent ones. After each Add the
// automaton is minimal except along the most recently added word's path,
// which is minimised once a later word diverges from it or Result runs.
package builder

import (
	"cmp"
	"errors"

	"github.com/jamra/lexicon/internal/automaton"
)

// Sentinel errors reported by Add. pkg/lexicon re-exports these under its
// own names so callers never need to import this package directly.
var (
	// ErrOrderViolation is returned when a word is not strictly greater
	// than the previously added word. The Builder's state is undefined
	// after this; Add will keep returning this error on every later call.
	ErrOrderViolation = errors.New("builder: word is not strictly greater than the previous word")

	// ErrEmptyWord is returned when the empty sequence is added.
	ErrEmptyWord = errors.New("builder: empty words are not supported")
)

// Builder constructs a minimal acyclic DFA from a strictly ascending,
// duplicate-free stream of words. One Builder instance serves one
// sequential stream of Adds, followed by a single Result call that
// detaches the finished automaton from the builder. Not safe for
// concurrent use.
type Builder[T cmp.Ordered] struct {
	store *automaton.Store[T]
	reg   *registry[T]

	// path/syms track the root-to-leaf path of the word most recently
	// added: path[i] --syms[i]--> path[i+1]. This is exactly the "latest
	// transitions path" the design refers to — we have it for free
	// because we just walked it to add the word, so there is no need to
	// search the store for "the most recently touched transition".
	path []uint32
	syms []T

	lastWord []T
	poisoned bool
	poisonErr error
}

// New returns an empty Builder.
func New[T cmp.Ordered]() *Builder[T] {
	return &Builder[T]{store: automaton.New[T](), reg: newRegistry[T]()}
}

// NewWithSizeHint returns an empty Builder with backing storage
// pre-reserved for the expected number of words, per the design's "size
// hint" allowance. The hint is a state-count estimate, not a hard cap.
func NewWithSizeHint[T cmp.Ordered](expectedWords int) *Builder[T] {
	return &Builder[T]{store: automaton.NewWithSizeHint[T](expectedWords), reg: newRegistry[T]()}
}

// Add absorbs one word. Words must arrive in strictly ascending
// lexicographic order with no duplicates; violating this is a programming
// error reported via ErrOrderViolation.
func (b *Builder[T]) Add(word []T) error {
	if b.poisoned {
		return b.poisonErr
	}
	if len(word) == 0 {
		return ErrEmptyWord
	}
	if b.store.StateCount() > 0 && !isStrictlyGreater(word, b.lastWord) {
		b.poisoned = true
		b.poisonErr = ErrOrderViolation
		return ErrOrderViolation
	}

	if b.store.StateCount() == 0 {
		b.store.AppendState() // state 0
		b.path = []uint32{0}
		b.syms = nil
	}

	// Step 2: walk the common-prefix endpoint p, recording the path we
	// actually traverse (which may be shorter than b.path if this word
	// diverges earlier than the last one did).
	p := uint32(0)
	consumed := 0
	for consumed < len(word) {
		next, ok := b.store.TransitionFor(p, word[consumed])
		if !ok {
			break
		}
		p = next
		consumed++
	}
	suffix := word[consumed:]

	// Step 3: if the word diverges, freeze everything on the previous
	// word's path strictly below the new common-prefix endpoint — it can
	// never grow again.
	if len(suffix) > 0 {
		b.freeze(p, consumed)
	}

	// Step 4: add the suffix.
	if len(suffix) == 0 {
		b.store.IncrementFinal(p, 1)
		b.path = b.path[:consumed+1]
		b.syms = b.syms[:consumed]
	} else {
		newPath := append([]uint32{}, b.path[:consumed+1]...)
		newSyms := append([]T{}, b.syms[:consumed]...)
		cur := p
		for i, sym := range suffix {
			child := b.store.AppendState()
			b.store.SetTransition(cur, sym, child)
			newSyms = append(newSyms, sym)
			newPath = append(newPath, child)
			cur = child
			if i == len(suffix)-1 {
				b.store.IncrementFinal(child, 1)
			}
		}
		b.path, b.syms = newPath, newSyms
	}

	b.lastWord = append([]T(nil), word...)
	return nil
}

// Result finalises construction — running replace-or-register one last
// time rooted at state 0 so every still-dangling state gets minimised —
// and returns the finished automaton. The Builder must not be used again
// afterwards.
func (b *Builder[T]) Result() (*automaton.Store[T], error) {
	if b.poisoned {
		return nil, b.poisonErr
	}
	if b.store.StateCount() > 0 {
		b.freeze(0, 0)
	}
	return b.store, nil
}

// freeze runs replace-or-register on the portion of the last word's path
// strictly below anchor (anchor is at b.path[anchorDepth]). It is named
// for what it does to the affected states: once processed, none of them
// can ever be mutated again.
func (b *Builder[T]) freeze(anchor uint32, anchorDepth int) {
	_ = anchor
	for i := len(b.path) - 2; i >= anchorDepth; i-- {
		s, sym, c := b.path[i], b.syms[i], b.path[i+1]

		rep, hash, merged := b.reg.find(b.store, c)
		if merged {
			// c is a duplicate of an already-registered state: redirect
			// s's transition to the existing representative, fold c's
			// final count into it, and delete c outright. c is always
			// the highest-indexed state at this point, since it was
			// only ever created as part of the chain we are now
			// freezing and nothing has been appended since.
			b.store.SetTransition(s, sym, rep)
			if fc := b.store.FinalCount(c); fc > 0 {
				b.store.IncrementFinal(rep, fc)
			}
			b.reg.forget(c)
			b.store.TruncateLast()
		} else {
			b.reg.register(hash, c)
		}

		// s's own signature may have just changed (its transition to c
		// was redirected, or c's identity under which s might have
		// already been registered has shifted). If s was itself already
		// frozen under an earlier signature, that entry is now stale and
		// must be dropped; s gets a fresh registration when it is
		// processed as the child of the next triple up (or, if s is the
		// anchor itself, it stays deliberately unregistered — anchors are
		// still live and may gain more children from future words).
		if _, ok := b.reg.registered(s); ok {
			b.reg.unregister(s)
		}
	}
}

func isStrictlyGreater[T cmp.Ordered](w, prev []T) bool {
	for i := 0; i < len(w) && i < len(prev); i++ {
		if w[i] != prev[i] {
			return w[i] > prev[i]
		}
	}
	return len(w) > len(prev)
}
