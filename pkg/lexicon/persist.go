package lexicon

import (
	"cmp"
	"encoding/json"

	"github.com/jamra/lexicon/internal/automaton"
)

// RawEdge is the serializable form of a single transition, keyed by its
// source state's position in RawState.
type RawEdge[T cmp.Ordered] struct {
	Symbol T      `json:"symbol"`
	Target uint32 `json:"target"`
}

// RawState is one automaton state in serialized form: its outgoing
// transitions, in ascending symbol order, and how many words terminate
// there.
type RawState[T cmp.Ordered] struct {
	Transitions []RawEdge[T] `json:"transitions"`
	FinalCount  int          `json:"final_count"`
}

// Raw is the full on-wire representation of a Lexicon's automaton: one
// RawState per state index, state 0 first.
type Raw[T cmp.Ordered] struct {
	States []RawState[T] `json:"states"`
}

// ToRaw flattens l's automaton into its serializable form.
func (l *Lexicon[T]) ToRaw() Raw[T] {
	raw := Raw[T]{States: make([]RawState[T], l.store.StateCount())}
	for s := 0; s < l.store.StateCount(); s++ {
		state := uint32(s)
		edges := l.store.Transitions(state)
		rs := RawState[T]{
			Transitions: make([]RawEdge[T], len(edges)),
			FinalCount:  l.store.FinalCount(state),
		}
		for i, e := range edges {
			rs.Transitions[i] = RawEdge[T]{Symbol: e.Symbol, Target: e.Target}
		}
		raw.States[s] = rs
	}
	return raw
}

// FromRaw rebuilds a Lexicon directly from a flattened state table, with
// no re-validation of minimality: a Raw value produced by ToRaw, or by any
// source that upholds the same invariants, round-trips exactly. Malformed
// input (a transition target index past the end of States) is rejected
// with ErrDimensionMismatch rather than panicking.
func FromRaw[T cmp.Ordered](raw Raw[T]) (*Lexicon[T], error) {
	store := automaton.NewWithSizeHint[T](len(raw.States))
	for range raw.States {
		store.AppendState()
	}
	total := 0
	for s, rs := range raw.States {
		state := uint32(s)
		for _, e := range rs.Transitions {
			if int(e.Target) >= len(raw.States) {
				return nil, ErrDimensionMismatch
			}
			store.SetTransition(state, e.Symbol, e.Target)
		}
		if rs.FinalCount > 0 {
			store.IncrementFinal(state, rs.FinalCount)
			total += rs.FinalCount
		}
	}
	return &Lexicon[T]{store: store, size: total}, nil
}

// MarshalJSON implements json.Marshaler via ToRaw.
func (l *Lexicon[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToRaw())
}

// UnmarshalJSON implements json.Unmarshaler via FromRaw. It must only be
// called on an already-allocated *Lexicon[T], e.g. `new(Lexicon[byte])`.
func (l *Lexicon[T]) UnmarshalJSON(data []byte) error {
	var raw Raw[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	built, err := FromRaw[T](raw)
	if err != nil {
		return err
	}
	*l = *built
	return nil
}
