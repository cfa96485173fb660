package banana

import "fmt"

// Word is an ordered, immutable sequence of two or more tiles that
// are colinear and contiguous in exactly one of the four directions.
type Word struct {
	tiles     []Tile
	Direction Direction
	Position  Position
	Value     string
}

// NewWord validates and builds a Word from an ordered tile sequence.
// Construction fails with ErrValidation if there are fewer than two
// tiles, if no direction joins the first two tiles, or if the
// sequence is not contiguous in that direction.
func NewWord(tiles []Tile) (Word, error) {
	if len(tiles) < 2 {
		return Word{}, fmt.Errorf("%w: word must have at least two tiles, not %d", ErrValidation, len(tiles))
	}

	var dir Direction
	found := false
	for _, d := range []Direction{ACROSS, DOWN, ACROSS.Negate(), DOWN.Negate()} {
		if tiles[0].Position.Add(d) == tiles[1].Position {
			dir = d
			found = true
			break
		}
	}
	if !found {
		return Word{}, fmt.Errorf("%w: word %v has invalid direction", ErrValidation, tiles)
	}

	for i := 0; i < len(tiles)-1; i++ {
		if tiles[i].Position.Add(dir) != tiles[i+1].Position {
			return Word{}, fmt.Errorf("%w: word %v has non-linear tiles", ErrValidation, tiles)
		}
	}

	value := make([]byte, 0, len(tiles))
	cp := make([]Tile, len(tiles))
	copy(cp, tiles)
	for _, t := range cp {
		value = append(value, t.Value...)
	}

	return Word{
		tiles:     cp,
		Direction: dir,
		Position:  cp[0].Position,
		Value:     string(value),
	}, nil
}

// WordFromString builds a Word by laying out wordStr's letters one
// per tile, starting at position and advancing by direction between
// each. It fails with ErrValidation if wordStr is not a valid word
// string (see ValidateWord) or if fewer than two letters are given.
func WordFromString(wordStr string, position Position, direction Direction) (Word, error) {
	normalized, err := ValidateWord(wordStr)
	if err != nil {
		return Word{}, err
	}
	tiles := make([]Tile, 0, len(normalized))
	pos := position
	for _, r := range normalized {
		tile, err := NewTile(string(r), pos)
		if err != nil {
			return Word{}, err
		}
		tiles = append(tiles, tile)
		pos = pos.Add(direction)
	}
	return NewWord(tiles)
}

// Len returns the number of tiles in the word.
func (w Word) Len() int {
	return len(w.tiles)
}

// Tiles returns the word's tiles in order. The returned slice must
// not be mutated.
func (w Word) Tiles() []Tile {
	return w.tiles
}

// Equal reports whether two words have identical tile sequences.
func (w Word) Equal(rhs Word) bool {
	if len(w.tiles) != len(rhs.tiles) {
		return false
	}
	for i := range w.tiles {
		if w.tiles[i] != rhs.tiles[i] {
			return false
		}
	}
	return true
}

func (w Word) String() string {
	return fmt.Sprintf("Word(value=%s, position=%v, direction=%v)", w.Value, w.Position, w.Direction)
}
