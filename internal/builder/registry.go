package builder

import (
	"cmp"

	"github.com/jamra/lexicon/internal/automaton"
	"github.com/jamra/lexicon/internal/signature"
)

// registry maps right-language signatures to the representative state that
// owns that signature. Only states whose right-language is frozen (can no
// longer grow) are ever entered here.
type registry[T cmp.Ordered] struct {
	buckets    map[signature.Hash][]uint32
	signedHash map[uint32]signature.Hash
}

func newRegistry[T cmp.Ordered]() *registry[T] {
	return &registry[T]{
		buckets:    make(map[signature.Hash][]uint32),
		signedHash: make(map[uint32]signature.Hash),
	}
}

// find looks up the representative for state's current signature, if one
// is already registered under a different state index. It recomputes the
// signature fresh from the store every time, since a state's transitions
// may have just changed as part of the same replace-or-register pass.
func (r *registry[T]) find(store *automaton.Store[T], state uint32) (representative uint32, hash signature.Hash, ok bool) {
	final := store.IsFinal(state)
	edges := store.Transitions(state)
	hash = signature.Compute(final, edges)

	for _, candidate := range r.buckets[hash] {
		if candidate == state {
			continue
		}
		if signature.Equal(final, edges, store.IsFinal(candidate), store.Transitions(candidate)) {
			return candidate, hash, true
		}
	}
	return 0, hash, false
}

// register records state as the representative of hash.
func (r *registry[T]) register(hash signature.Hash, state uint32) {
	r.buckets[hash] = append(r.buckets[hash], state)
	r.signedHash[state] = hash
}

// registered reports whether state was previously frozen and registered,
// returning the hash it was registered under.
func (r *registry[T]) registered(state uint32) (signature.Hash, bool) {
	h, ok := r.signedHash[state]
	return h, ok
}

// unregister removes state's previous registration (used when one of its
// outgoing transitions was just redirected by a merge, which changes its
// own signature and would otherwise leave a stale, duplicate entry behind
// — the "minimality check on merge" the design calls out by name).
func (r *registry[T]) unregister(state uint32) {
	h, ok := r.signedHash[state]
	if !ok {
		return
	}
	bucket := r.buckets[h]
	for i, s := range bucket {
		if s == state {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(r.buckets, h)
	} else {
		r.buckets[h] = bucket
	}
	delete(r.signedHash, state)
}

// forget removes every trace of state without re-registering it anywhere.
// Used when state is deleted outright by a merge (it is absorbed into an
// existing representative and will never be addressed again).
func (r *registry[T]) forget(state uint32) {
	r.unregister(state)
}
