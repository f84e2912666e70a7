package builder

import "testing"

func build(t *testing.T, words ...string) *Builder[byte] {
	t.Helper()
	b := New[byte]()
	for _, w := range words {
		if err := b.Add([]byte(w)); err != nil {
			t.Fatalf("Add(%q) = %v", w, err)
		}
	}
	return b
}

// S1: Lexicon() has size 0, length 0.
func TestEmptyLexicon(t *testing.T) {
	b := New[byte]()
	store, err := b.Result()
	if err != nil {
		t.Fatalf("Result() = %v", err)
	}
	if store.StateCount() != 0 {
		t.Fatalf("StateCount() = %d, want 0", store.StateCount())
	}
}

// S2: Lexicon("a","b","c") has length 2 (one start + one shared final).
func TestSharedFinalState(t *testing.T) {
	b := build(t, "a", "b", "c")
	store, err := b.Result()
	if err != nil {
		t.Fatalf("Result() = %v", err)
	}
	if store.StateCount() != 2 {
		t.Fatalf("StateCount() = %d, want 2", store.StateCount())
	}
}

// S3: Lexicon("aaa","aba","aca") has length 4 (shared first 'a', shared
// final 'a').
func TestSharedPrefixAndSuffix(t *testing.T) {
	b := build(t, "aaa", "aba", "aca")
	store, err := b.Result()
	if err != nil {
		t.Fatalf("Result() = %v", err)
	}
	if store.StateCount() != 4 {
		t.Fatalf("StateCount() = %d, want 4", store.StateCount())
	}
}

// S4: Lexicon("a","aaa") has length 4, and "aa" is not a member.
func TestNonMemberMidPath(t *testing.T) {
	b := build(t, "a", "aaa")
	store, err := b.Result()
	if err != nil {
		t.Fatalf("Result() = %v", err)
	}
	if store.StateCount() != 4 {
		t.Fatalf("StateCount() = %d, want 4", store.StateCount())
	}

	state := uint32(0)
	for _, sym := range []byte("aa") {
		next, ok := store.TransitionFor(state, sym)
		if !ok {
			t.Fatal("expected a path through \"aa\"")
		}
		state = next
	}
	if store.IsFinal(state) {
		t.Fatal("\"aa\" must not be a member")
	}
}

func TestOrderViolation(t *testing.T) {
	b := New[byte]()
	if err := b.Add([]byte("b")); err != nil {
		t.Fatalf("Add(\"b\") = %v", err)
	}
	if err := b.Add([]byte("a")); err != ErrOrderViolation {
		t.Fatalf("Add(\"a\") after \"b\" = %v, want ErrOrderViolation", err)
	}
	// the builder stays poisoned
	if err := b.Add([]byte("z")); err != ErrOrderViolation {
		t.Fatalf("Add after poisoning = %v, want ErrOrderViolation", err)
	}
	if _, err := b.Result(); err != ErrOrderViolation {
		t.Fatalf("Result() after poisoning = %v, want ErrOrderViolation", err)
	}
}

func TestEmptyWordRejected(t *testing.T) {
	b := New[byte]()
	if err := b.Add(nil); err != ErrEmptyWord {
		t.Fatalf("Add(nil) = %v, want ErrEmptyWord", err)
	}
}

func TestDuplicateWordIsOrderViolation(t *testing.T) {
	b := New[byte]()
	if err := b.Add([]byte("a")); err != nil {
		t.Fatalf("Add(\"a\") = %v", err)
	}
	if err := b.Add([]byte("a")); err != ErrOrderViolation {
		t.Fatalf("Add(\"a\") again = %v, want ErrOrderViolation", err)
	}
}

func TestFinalCountAccumulatesThroughMerge(t *testing.T) {
	// "a" and "b" both become a single merged final state; its final_count
	// must be 2, not 1, after the merge.
	b := build(t, "a", "b")
	store, err := b.Result()
	if err != nil {
		t.Fatalf("Result() = %v", err)
	}
	next, ok := store.TransitionFor(0, 'a')
	if !ok {
		t.Fatal("expected a transition on 'a' from the root")
	}
	if store.FinalCount(next) != 2 {
		t.Fatalf("FinalCount(merged state) = %d, want 2", store.FinalCount(next))
	}
}
