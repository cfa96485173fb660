package banana

import (
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

// Constraint narrows a stream of candidate word strings (Filter) and
// lifts a surviving string into concrete placements on a board
// (CreateCandidates). The family is closed and small, so concrete
// constraints are plain structs rather than an open class hierarchy.
type Constraint interface {
	// Filter narrows words to those satisfying this constraint.
	Filter(words []string) []string
	// CreateCandidates lifts word into zero or more concrete
	// placements on board.
	CreateCandidates(board *Board, word string) []Word
}

// baseConstraint supplies the default pass-through Filter and
// empty CreateCandidates, so concrete constraints only need to
// override the behavior they change.
type baseConstraint struct{}

func (baseConstraint) Filter(words []string) []string { return words }

func (baseConstraint) CreateCandidates(*Board, string) []Word { return nil }

// InSet filters to only those words present in its backing set.
type InSet struct {
	baseConstraint
	words map[string]struct{}
}

// NewInSet builds an InSet constraint over words (validated and
// normalized to uppercase).
func NewInSet(words []string) (InSet, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		normalized, err := ValidateWord(w)
		if err != nil {
			return InSet{}, err
		}
		set[normalized] = struct{}{}
	}
	return InSet{words: set}, nil
}

func (c InSet) Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		normalized, err := ValidateWord(w)
		if err != nil {
			continue
		}
		if _, ok := c.words[normalized]; ok {
			out = append(out, normalized)
		}
	}
	return out
}

// Contains filters to words whose letter set is a superset of its
// required letters.
type Contains struct {
	baseConstraint
	letters map[string]struct{}
}

// NewContains builds a Contains constraint requiring every letter in
// letters to appear in a candidate word. It fails with ErrValidation
// if letters is empty or contains an invalid letter.
func NewContains(letters []string) (Contains, error) {
	set := make(map[string]struct{}, len(letters))
	for _, l := range letters {
		normalized, err := ValidateLetter(l)
		if err != nil {
			return Contains{}, err
		}
		set[normalized] = struct{}{}
	}
	if len(set) < 1 {
		return Contains{}, fmt.Errorf("%w: Contains must require at least one letter", ErrValidation)
	}
	return Contains{letters: set}, nil
}

func (c Contains) Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		normalized, err := ValidateWord(w)
		if err != nil {
			continue
		}
		ok := true
		for letter := range c.letters {
			if !containsRune(normalized, letter) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, normalized)
		}
	}
	return out
}

func containsRune(word, letter string) bool {
	for _, r := range word {
		if string(r) == letter {
			return true
		}
	}
	return false
}

// SortWordsByLen stably sorts candidate words by length, ascending
// unless Reverse is set.
type SortWordsByLen struct {
	baseConstraint
	Reverse bool
}

func (c SortWordsByLen) Filter(words []string) []string {
	out := slices.Clone(words)
	sort.SliceStable(out, func(i, j int) bool {
		if c.Reverse {
			return len(out[i]) > len(out[j])
		}
		return len(out[i]) < len(out[j])
	})
	return out
}

// Start places a word at the origin, ACROSS. It is used only to seed
// an empty board with the first word.
type Start struct {
	baseConstraint
}

func (Start) CreateCandidates(board *Board, word string) []Word {
	w, err := WordFromString(word, Position{}, ACROSS)
	if err != nil {
		return nil
	}
	return []Word{w}
}

// Anchor lifts word into every placement that runs through position
// in direction, passing through position at each of the word's
// |word| possible offsets. Only placements that CanPlaceWord accepts
// are yielded. Anchor is used to attach a new word perpendicularly
// through an existing tile.
type Anchor struct {
	baseConstraint
	Position  Position
	Direction Direction
}

func (a Anchor) CreateCandidates(board *Board, word string) []Word {
	var out []Word
	for i := 0; i < len([]rune(word)); i++ {
		start := a.Position.SubOffset(a.Direction.Scale(i))
		w, err := WordFromString(word, start, a.Direction)
		if err != nil {
			continue
		}
		if board.CanPlaceWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// And composes constraints left-to-right: Filter threads words
// through each child in order, and CreateCandidates concatenates
// every child's candidates.
type And struct {
	Constraints []Constraint
}

func NewAnd(constraints ...Constraint) And {
	return And{Constraints: constraints}
}

func (a And) Filter(words []string) []string {
	for _, c := range a.Constraints {
		words = c.Filter(words)
	}
	return words
}

func (a And) CreateCandidates(board *Board, word string) []Word {
	var out []Word
	for _, c := range a.Constraints {
		out = append(out, c.CreateCandidates(board, word)...)
	}
	return out
}
