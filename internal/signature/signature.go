// Package signature computes the canonical right-language fingerprint the
// Builder uses to deduplicate states during construction (the design's C2
// component).
//
// The fingerprint is a fast, non-cryptographic xxhash of the state's
// (final?, sorted transitions) tuple, used exactly the way
// standardbeagle/lci's internal/core file-content store uses xxhash as a
// quick-equality pre-check: a hash match is only ever treated as a
// candidate, never as proof. Every hash hit is re-verified against the
// real symbol values and targets before the Builder accepts the merge.
package signature

import (
	"cmp"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/jamra/lexicon/internal/automaton"
)

// Hash is the stable ordinal used as the registry's primary key. Two
// states with equal Hash are merge *candidates*; Equal must still confirm
// the match.
type Hash = uint64

// Compute returns the fingerprint for a state given whether it is final
// and its outgoing edges in ascending symbol order.
func Compute[T cmp.Ordered](final bool, edges []automaton.Edge[T]) Hash {
	h := xxhash.New()
	if final {
		h.Write(finalMarker)
	} else {
		h.Write(nonFinalMarker)
	}
	for _, e := range edges {
		fmt.Fprintf(h, "%v\x00%d\x01", e.Symbol, e.Target)
	}
	return h.Sum64()
}

var (
	finalMarker    = []byte{1}
	nonFinalMarker = []byte{0}
)

// Equal reports whether two states have bit-exact identical right-language
// signatures: same final bit, same number of transitions, and every
// (symbol, target) pair equal in order. This is the full-value check the
// design mandates after a hash match, since xxhash collisions between
// non-equivalent states are possible (if astronomically unlikely) and must
// never be treated as a merge.
func Equal[T cmp.Ordered](aFinal bool, aEdges []automaton.Edge[T], bFinal bool, bEdges []automaton.Edge[T]) bool {
	if aFinal != bFinal || len(aEdges) != len(bEdges) {
		return false
	}
	for i := range aEdges {
		if aEdges[i].Symbol != bEdges[i].Symbol || aEdges[i].Target != bEdges[i].Target {
			return false
		}
	}
	return true
}
