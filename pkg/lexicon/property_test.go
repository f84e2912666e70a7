package lexicon

import (
	"math/rand"
	"sort"
	"testing"
	"testing/quick"
)

// genWords produces a small slice of short, non-empty random words, used
// as the common input shape for every property below.
func genWords(r *rand.Rand, n int) [][]byte {
	n = n%12 + 1
	alphabet := []byte("abc")
	out := make([][]byte, n)
	for i := range out {
		length := r.Intn(4) + 1
		w := make([]byte, length)
		for j := range w {
			w[j] = alphabet[r.Intn(len(alphabet))]
		}
		out[i] = w
	}
	return out
}

func uniqueSorted(ws [][]byte) [][]byte {
	sorted := make([][]byte, len(ws))
	copy(sorted, ws)
	sort.Slice(sorted, func(i, j int) bool { return compareWords(sorted[i], sorted[j]) < 0 })
	out := sorted[:0]
	for i, w := range sorted {
		if i == 0 || compareWords(w, sorted[i-1]) != 0 {
			out = append(out, w)
		}
	}
	return out
}

// P1: Lexicon(W).contains(w) == (w in set(W)) for all w.
func TestPropertyContainsMatchesSet(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		for _, w := range ws {
			if !l.Contains(w) {
				return false
			}
		}
		if l.Contains([]byte("zzzzzzzzzz")) {
			return false
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// P2: Lexicon(W).iterator() yields the sorted, deduplicated members of W.
func TestPropertyIteratorYieldsSortedUniqueMembers(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		want := uniqueSorted(ws)
		got := l.enumerate()
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if string(got[i]) != string(want[i]) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// P3: Lexicon(W).size() == |set(W)|.
func TestPropertySizeMatchesSetCardinality(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		return l.Size() == len(uniqueSorted(ws))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// P4: construction is independent of input order and multiplicity.
func TestPropertyOrderAndMultiplicityIndependent(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l1, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}

		shuffled := make([][]byte, len(ws))
		copy(shuffled, ws)
		r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		withDuplicates := append(shuffled, ws...)
		l2, err := FromSeq(withDuplicates)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		return l1.Equal(l2)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// P6: (L + w).contains(w) and |L + w|.size == L.size + (w not in L ? 1 : 0).
func TestPropertyInsert(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		w := genWords(r, 1)[0]
		already := l.Contains(w)
		l2, err := l.Insert(w)
		if err != nil {
			t.Fatalf("Insert: %v", err)
		}
		if !l2.Contains(w) {
			return false
		}
		want := l.Size()
		if !already {
			want++
		}
		return l2.Size() == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// P7: (L - w).contains(w) == false and |L - w|.size == L.size - (w in L ? 1 : 0).
func TestPropertyRemove(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		w := genWords(r, 1)[0]
		present := l.Contains(w)
		l2, err := l.Remove(w)
		if err != nil {
			t.Fatalf("Remove: %v", err)
		}
		if l2.Contains(w) {
			return false
		}
		want := l.Size()
		if present {
			want--
		}
		return l2.Size() == want
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// P10: iterator(p) yields exactly the members starting with p, ascending.
func TestPropertyPrefixIteration(t *testing.T) {
	f := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		ws := genWords(r, 10)
		l, err := FromSeq(ws)
		if err != nil {
			t.Fatalf("FromSeq: %v", err)
		}
		prefix := genWords(r, 1)[0][:1]

		var want [][]byte
		for _, w := range uniqueSorted(ws) {
			if len(w) >= len(prefix) && string(w[:len(prefix)]) == string(prefix) {
				want = append(want, w)
			}
		}

		it := l.IteratorPrefix(prefix)
		var got [][]byte
		for {
			w, ok := it.Next()
			if !ok {
				break
			}
			got = append(got, append([]byte(nil), w...))
		}
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if string(got[i]) != string(want[i]) {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}
