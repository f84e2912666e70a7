package lexicon

import (
	"encoding/json"
	"sort"

	"github.com/jamra/lexicon/internal/fuzzy"
)

// FuzzyMatch is one approximate hit: the member word and its edit distance
// from the query. Word marshals to JSON as a plain string, not the
// base64 encoding []byte gets by default, since api/http serves these
// over the wire.
type FuzzyMatch struct {
	Word     []byte `json:"-"`
	Distance int
	Score    float64
}

// MarshalJSON renders Word as a string field alongside Distance and Score.
func (m FuzzyMatch) MarshalJSON() ([]byte, error) {
	type alias struct {
		Word     string  `json:"word"`
		Distance int     `json:"distance"`
		Score    float64 `json:"score"`
	}
	return json.Marshal(alias{Word: string(m.Word), Distance: m.Distance, Score: m.Score})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (m *FuzzyMatch) UnmarshalJSON(data []byte) error {
	var alias struct {
		Word     string  `json:"word"`
		Distance int     `json:"distance"`
		Score    float64 `json:"score"`
	}
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	m.Word = []byte(alias.Word)
	m.Distance = alias.Distance
	m.Score = alias.Score
	return nil
}

// FuzzySearch returns every member of l within maxDistance edits of query,
// most similar first. It is a supplement over the exact-membership API:
// where Contains/IndexOf/Lookup only ever follow transitions that exist,
// FuzzySearch enumerates the whole word set and scores each candidate,
// using a bloom-filter signature to skip obviously-unrelated candidates
// before paying for the full edit-distance computation.
//
// FuzzySearch only makes sense for byte-keyed Lexicons: edit distance is a
// string-similarity notion, not one that generalises to an arbitrary
// ordered symbol type.
func FuzzySearch(l *Lexicon[byte], query []byte, maxDistance int) []FuzzyMatch {
	qSig := fuzzy.Compute(query)
	var hits []FuzzyMatch

	it := l.Iterator()
	for {
		candidate, ok := it.Next()
		if !ok {
			break
		}
		if abs(len(candidate)-len(query)) > maxDistance {
			continue
		}
		if !qSig.MayMatch(fuzzy.Compute(candidate)) {
			continue
		}
		dist := fuzzy.Distance(query, candidate)
		if dist > maxDistance {
			continue
		}
		hits = append(hits, FuzzyMatch{
			Word:     append([]byte(nil), candidate...),
			Distance: dist,
			Score:    fuzzy.Score(query, candidate),
		})
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return string(hits[i].Word) < string(hits[j].Word)
	})
	return hits
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
