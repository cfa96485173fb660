package banana

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BeamWeights are the five coefficients combined into a node's beam
// search score. Defaults favor using letters, compact boards, longer
// words, more-constrained nodes (MCV-style), and rarer placed
// letters.
type BeamWeights struct {
	RemainingLetters    float64
	BoardDensity        float64
	AverageWordLength   float64
	ConstraintCount     float64
	AverageLetterRarity float64
}

// DefaultBeamWeights are reasonable starting weights: discourage
// leftover letters and node fan-out, encourage density, long words,
// and rare letters.
var DefaultBeamWeights = BeamWeights{
	RemainingLetters:    -1.0,
	BoardDensity:        1.0,
	AverageWordLength:   1.0,
	ConstraintCount:     -1.0,
	AverageLetterRarity: 1.0,
}

const (
	// DefaultBeamSize is the beam width BeamSearch keeps between
	// expansions when none is configured.
	DefaultBeamSize = 100
	// DefaultMaxDepth is 0, meaning unbounded depth.
	DefaultMaxDepth = 0
)

// beamNode is one partial board retained in the beam, together with
// the letters left to place and the constraints generated for this
// state (generated once, at insertion time, and reused at expansion).
type beamNode struct {
	board       *Board
	letters     Multiset
	constraints []Constraint
}

// BeamSearch explores partial boards breadth-first, keeping only the
// BeamSize highest-scoring nodes at each depth.
type BeamSearch struct {
	words     []string
	wordSet   map[string]struct{}
	generator ConstraintGenerator
	histogram LetterHistogram

	BeamSize int
	MaxDepth int
	Weights  BeamWeights
	Log      zerolog.Logger
}

// NewBeamSearch builds a BeamSearch over words using generator to
// produce constraints, and histogram for the letter-rarity term of
// the score. beamSize <= 0 defaults to DefaultBeamSize; maxDepth <= 0
// means unbounded.
func NewBeamSearch(
	words []string,
	generator ConstraintGenerator,
	histogram LetterHistogram,
	beamSize, maxDepth int,
	weights BeamWeights,
	log zerolog.Logger,
) (*BeamSearch, error) {
	normalized := make([]string, 0, len(words))
	for _, w := range words {
		v, err := ValidateWord(w)
		if err != nil {
			return nil, err
		}
		normalized = append(normalized, v)
	}
	if beamSize <= 0 {
		beamSize = DefaultBeamSize
	}
	return &BeamSearch{
		words:     normalized,
		wordSet:   wordSet(normalized),
		generator: generator,
		histogram: histogram,
		BeamSize:  beamSize,
		MaxDepth:  maxDepth,
		Weights:   weights,
		Log:       log,
	}, nil
}

func (s *BeamSearch) node(board *Board, letters Multiset) (beamNode, error) {
	constraints, err := s.generator.Generate(board, letters)
	if err != nil {
		return beamNode{}, err
	}
	return beamNode{board: board, letters: letters, constraints: constraints}, nil
}

func (s *BeamSearch) expand(n beamNode) ([]beamNode, error) {
	var successors []beamNode
	for _, constraint := range n.constraints {
		for _, word := range constraint.Filter(s.words) {
			for _, candidate := range constraint.CreateCandidates(n.board, word) {
				if !n.board.CanPlaceWord(candidate) {
					continue
				}
				candidateBoard := n.board.Copy()
				if err := candidateBoard.PlaceWord(candidate, false); err != nil {
					return nil, err
				}
				if candidateBoard.Equal(n.board) {
					continue
				}
				if !boardIsValid(candidateBoard, s.wordSet) {
					continue
				}
				candidateLetters := lettersWithoutWord(n.board, candidate, n.letters)
				successor, err := s.node(candidateBoard, candidateLetters)
				if err != nil {
					return nil, err
				}
				successors = append(successors, successor)
			}
		}
	}
	return successors, nil
}

// score combines the five weighted terms from BeamWeights into a
// single value; higher scores are kept first.
func (s *BeamSearch) score(n beamNode) float64 {
	density := boardDensity(n.board)
	avgWordLen := averageWordLength(n.board)
	avgRarity := s.averageLetterRarity(n.board)

	return s.Weights.RemainingLetters*float64(n.letters.Len()) +
		s.Weights.BoardDensity*density +
		s.Weights.AverageWordLength*avgWordLen +
		s.Weights.ConstraintCount*float64(len(n.constraints)) +
		s.Weights.AverageLetterRarity*avgRarity
}

func boardDensity(board *Board) float64 {
	if board.Len() == 0 {
		return 0
	}
	min, max := board.Bounds()
	area := (max.X - min.X + 1) * (max.Y - min.Y + 1)
	if area <= 0 {
		return 0
	}
	return float64(board.Len()) / float64(area)
}

func averageWordLength(board *Board) float64 {
	words := board.GetWords()
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += w.Len()
	}
	return float64(total) / float64(len(words))
}

func (s *BeamSearch) averageLetterRarity(board *Board) float64 {
	tiles := board.Tiles()
	if len(tiles) == 0 {
		return 0
	}
	var total float64
	for _, t := range tiles {
		freq, err := s.histogram.Frequency(t.Value)
		if err != nil {
			freq = 0
		}
		total += 1 - freq
	}
	return total / float64(len(tiles))
}

// Search implements Search. It returns an ErrSearch-wrapped error if
// the beam empties or the depth limit is reached before any node in
// the beam places every letter.
func (s *BeamSearch) Search(board *Board, letters Multiset) (*Board, error) {
	runID := uuid.New()
	log := s.Log.With().Str("run", runID.String()).Str("search", "beam").Logger()

	root, err := s.node(board, letters)
	if err != nil {
		return nil, err
	}
	beam := []beamNode{root}
	depth := 1

	for len(beam) > 0 {
		if s.MaxDepth > 0 && depth > s.MaxDepth {
			break
		}

		sort.SliceStable(beam, func(i, j int) bool {
			return s.score(beam[i]) > s.score(beam[j])
		})
		if len(beam) > s.BeamSize {
			beam = beam[:s.BeamSize]
		}
		log.Debug().Int("depth", depth).Int("beam_size", len(beam)).Msg("beam truncated")

		for _, n := range beam {
			if n.letters.Len() == 0 {
				return n.board, nil
			}
		}

		var next []beamNode
		for _, n := range beam {
			successors, err := s.expand(n)
			if err != nil {
				return nil, err
			}
			next = append(next, successors...)
		}
		beam = next
		log.Debug().Int("depth", depth).Int("expanded_size", len(beam)).Msg("beam expanded")
		depth++
	}

	return nil, fmt.Errorf("%w: beam search failed to find a solution", ErrSearch)
}
