package banana

import (
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"
)

// ConstraintGenerator produces the constraints describing every legal
// way to add one new word to board, given the letters still
// available.
type ConstraintGenerator interface {
	Generate(board *Board, letters Multiset) ([]Constraint, error)
}

// filterBuildableCacheSize bounds the memoized FilterBuildable
// results a SimpleConstraintGenerator keeps; a single search run
// revisits the same (letters) key often (sibling anchors in beam
// search typically share a letter pool), so a modest LRU pays for
// itself without growing unbounded over a long search.
const filterBuildableCacheSize = 4096

// SimpleConstraintGenerator yields a Start constraint for an empty
// board, and an Anchor+Contains constraint for every open anchor tile
// otherwise.
type SimpleConstraintGenerator struct {
	words []string
	cache *lru.Cache
	log   zerolog.Logger
}

// NewSimpleConstraintGenerator builds a generator over a dictionary's
// words. log defaults to a no-op logger if the zero value is passed.
func NewSimpleConstraintGenerator(words []string, log zerolog.Logger) (*SimpleConstraintGenerator, error) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		v, err := ValidateWord(w)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, v)
	}
	cache, err := lru.New(filterBuildableCacheSize)
	if err != nil {
		return nil, err
	}
	return &SimpleConstraintGenerator{words: normalized, cache: cache, log: log}, nil
}

// FilterBuildable returns an InSet constraint over every word in
// words whose letters are a submultiset of letters: the
// letter-availability prefilter shared by both the empty-board and
// anchor cases. Results are memoized per (word list, sorted letters)
// key; the word list is identified by its backing array and length,
// not by its contents.
func (g *SimpleConstraintGenerator) FilterBuildable(words []string, letters Multiset) (Constraint, error) {
	key := fmt.Sprintf("%p/%d/", words, len(words)) + lettersCacheKey(letters)
	if cached, ok := g.cache.Get(key); ok {
		return cached.(InSet), nil
	}

	buildable := make([]string, 0, len(words))
	for _, w := range words {
		if letters.ContainsSubmultiset(w) {
			buildable = append(buildable, w)
		}
	}
	inSet, err := NewInSet(buildable)
	if err != nil {
		return nil, err
	}
	g.cache.Add(key, inSet)
	return inSet, nil
}

func lettersCacheKey(letters Multiset) string {
	sorted := make([]string, len(letters))
	copy(sorted, letters)
	sort.Strings(sorted)
	return strings.Join(sorted, "")
}

// Generate implements ConstraintGenerator.
func (g *SimpleConstraintGenerator) Generate(board *Board, letters Multiset) ([]Constraint, error) {
	if board.Len() == 0 {
		can, err := g.FilterBuildable(g.words, letters)
		if err != nil {
			return nil, err
		}
		return []Constraint{NewAnd(can, Start{})}, nil
	}

	var constraints []Constraint
	for _, word := range board.GetWords() {
		direction := word.Direction.Orthogonal()
		for _, tile := range word.Tiles() {
			if _, occupied := board.Tile(tile.Position.Add(direction)); occupied {
				g.log.Debug().Stringer("tile", tile.Position).Msg("anchor blocked: occupied neighbor ahead")
				continue
			}
			if _, occupied := board.Tile(tile.Position.Sub(direction)); occupied {
				g.log.Debug().Stringer("tile", tile.Position).Msg("anchor blocked: occupied neighbor behind")
				continue
			}

			can, err := g.FilterBuildable(g.words, letters.Add(tile.Value))
			if err != nil {
				return nil, err
			}
			contains, err := NewContains([]string{tile.Value})
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, NewAnd(
				can,
				contains,
				Anchor{Position: tile.Position, Direction: direction},
			))
		}
	}
	return constraints, nil
}
