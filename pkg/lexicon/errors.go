package lexicon

import (
	"errors"

	"github.com/jamra/lexicon/internal/builder"
)

// ErrOrderViolation is returned by FromSortedIterator (and anything built
// on top of it) when the source delivers a word that is not strictly
// greater than the one before it.
var ErrOrderViolation = builder.ErrOrderViolation

// ErrEmptyWord is returned by any operation that would insert the empty
// sequence as a member. The empty word is never a member of a Lexicon.
var ErrEmptyWord = builder.ErrEmptyWord

// ErrDimensionMismatch is returned by FromRaw when a transition targets a
// state index past the end of the serialized state table.
var ErrDimensionMismatch = errors.New("lexicon: transition target outside the state table")
