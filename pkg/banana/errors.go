package banana

import "errors"

// Sentinel errors identifying the four error kinds the search and data
// model surface. Wrap one of these with fmt.Errorf("...: %w", Err...)
// at the boundary that detects the failure so callers can match with
// errors.Is.
var (
	// ErrValidation marks malformed input: an empty or non-alphabetic
	// letter, a non-single-character letter, or a non-alphabetic word.
	ErrValidation = errors.New("validation error")

	// ErrBoard marks an invalid placement attempted through
	// Board.PlaceWord with validation enabled.
	ErrBoard = errors.New("board error")

	// ErrSearch marks a search engine exhausting its frontier, or a
	// beam search reaching its depth limit, without finding a board
	// that consumes every letter.
	ErrSearch = errors.New("search error")

	// ErrInternalInvariant marks a condition that should be
	// unreachable given valid inputs, such as a Word built from a
	// non-linear tile sequence after its caller already validated
	// geometry.
	ErrInternalInvariant = errors.New("internal invariant error")
)
