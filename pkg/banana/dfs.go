package banana

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DFS explores partial boards depth-first, backtracking on the first
// dead end and returning the first board that places every letter.
type DFS struct {
	words     []string
	wordSet   map[string]struct{}
	generator ConstraintGenerator
	Log       zerolog.Logger
}

// NewDFS builds a DFS search over words (validated at construction)
// using generator to produce constraints at each state.
func NewDFS(words []string, generator ConstraintGenerator, log zerolog.Logger) (*DFS, error) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		v, err := ValidateWord(w)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, v)
	}
	return &DFS{
		words:     normalized,
		wordSet:   wordSet(normalized),
		generator: generator,
		Log:       log,
	}, nil
}

// Search implements Search. It returns an ErrSearch-wrapped error if
// the frontier is exhausted without a board that places every letter.
func (s *DFS) Search(board *Board, letters Multiset) (*Board, error) {
	runID := uuid.New()
	log := s.Log.With().Str("run", runID.String()).Str("search", "dfs").Logger()

	result, err := s.search(board, letters, log)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fmt.Errorf("%w: no solution found", ErrSearch)
	}
	return result, nil
}

func (s *DFS) search(board *Board, letters Multiset, log zerolog.Logger) (*Board, error) {
	if letters.Len() == 0 {
		return board, nil
	}

	constraints, err := s.generator.Generate(board, letters)
	if err != nil {
		return nil, err
	}

	for _, constraint := range constraints {
		for _, word := range constraint.Filter(s.words) {
			for _, candidate := range constraint.CreateCandidates(board, word) {
				if !board.CanPlaceWord(candidate) {
					continue
				}
				candidateBoard := board.Copy()
				if err := candidateBoard.PlaceWord(candidate, false); err != nil {
					return nil, err
				}
				if candidateBoard.Equal(board) {
					continue
				}
				if !boardIsValid(candidateBoard, s.wordSet) {
					continue
				}
				candidateLetters := lettersWithoutWord(board, candidate, letters)

				log.Debug().Str("word", candidate.Value).Int("remaining", candidateLetters.Len()).Msg("descending")
				solution, err := s.search(candidateBoard, candidateLetters, log)
				if err != nil {
					return nil, err
				}
				if solution != nil {
					return solution, nil
				}
			}
		}
	}
	return nil, nil
}
