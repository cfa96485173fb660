package banana

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Board is a set of tiles keyed by position: no two tiles may share a
// position. A Board is mutable for AddTile/RemoveTile/PlaceWord, but
// search engines must treat a parent node's board as immutable and
// produce independent copies for successor states (see Copy).
type Board struct {
	tiles map[Position]Tile
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{tiles: make(map[Position]Tile)}
}

// NewBoardFromTiles returns a board seeded with tiles, later tiles at
// the same position overwriting earlier ones, matching AddTile's
// overwrite-by-position semantics.
func NewBoardFromTiles(tiles []Tile) *Board {
	b := NewBoard()
	for _, t := range tiles {
		b.AddTile(t)
	}
	return b
}

// Copy returns an independent board with the same tiles. Search
// engines use this to expand a node without mutating its parent.
func (b *Board) Copy() *Board {
	cp := make(map[Position]Tile, len(b.tiles))
	for k, v := range b.tiles {
		cp[k] = v
	}
	return &Board{tiles: cp}
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return len(b.tiles)
}

// Contains reports whether t is present on the board (by value and
// position).
func (b *Board) Contains(t Tile) bool {
	existing, ok := b.tiles[t.Position]
	return ok && existing == t
}

// Tile returns the tile at position, or false if the position is
// empty.
func (b *Board) Tile(position Position) (Tile, bool) {
	t, ok := b.tiles[position]
	return t, ok
}

// Tiles returns every tile on the board in no particular order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, 0, len(b.tiles))
	for _, t := range b.tiles {
		out = append(out, t)
	}
	return out
}

// AddTile places t on the board, overwriting by position: if a tile
// already occupies t.Position, it is replaced (even if its value
// differs).
func (b *Board) AddTile(t Tile) {
	b.tiles[t.Position] = t
}

// RemoveTile removes the tile at t.Position, if any. Removing an
// absent position is a no-op.
func (b *Board) RemoveTile(t Tile) {
	delete(b.tiles, t.Position)
}

// CanPlaceWord reports whether every tile of w either lands on an
// empty position or on a position already holding an equal tile.
func (b *Board) CanPlaceWord(w Word) bool {
	for _, t := range w.Tiles() {
		if existing, ok := b.tiles[t.Position]; ok && existing != t {
			return false
		}
	}
	return true
}

// PlaceWord places every tile of w on the board. If validate is true
// and CanPlaceWord(w) is false, it returns an ErrBoard-wrapped error
// and the board is left unchanged; otherwise it overwrites.
func (b *Board) PlaceWord(w Word, validate bool) error {
	if validate && !b.CanPlaceWord(w) {
		return fmt.Errorf("%w: cannot place word %v: conflicting tile", ErrBoard, w)
	}
	for _, t := range w.Tiles() {
		b.AddTile(t)
	}
	return nil
}

// GetWords enumerates every maximal horizontal or vertical run of two
// or more tiles on the board, each run reported exactly once.
func (b *Board) GetWords() []Word {
	var words []Word
	// Deterministic traversal: iterate positions in row-major order
	// so that search ordering (DFS first-success, beam ranking) is
	// reproducible across runs, since Go map iteration order is not.
	positions := make([]Position, 0, len(b.tiles))
	for p := range b.tiles {
		positions = append(positions, p)
	}
	sort.Slice(positions, func(i, j int) bool {
		if positions[i].Y != positions[j].Y {
			return positions[i].Y < positions[j].Y
		}
		return positions[i].X < positions[j].X
	})

	for _, pos := range positions {
		head := b.tiles[pos]
		for _, dir := range []Direction{ACROSS, DOWN} {
			if _, occupied := b.tiles[pos.Sub(dir)]; occupied {
				continue
			}
			tiles := []Tile{head}
			next := pos.Add(dir)
			for {
				t, ok := b.tiles[next]
				if !ok {
					break
				}
				tiles = append(tiles, t)
				next = next.Add(dir)
			}
			if len(tiles) < 2 {
				continue
			}
			word, err := NewWord(tiles)
			if err != nil {
				// Unreachable: tiles is built by walking a single
				// direction from a contiguous chain.
				panic(fmt.Errorf("%w: %v", ErrInternalInvariant, err))
			}
			words = append(words, word)
		}
	}
	return words
}

// Bounds returns the inclusive (min, max) corner positions spanning
// every tile on the board. An empty board reports ((0,0), (0,0)).
func (b *Board) Bounds() (min, max Position) {
	if len(b.tiles) == 0 {
		return Position{}, Position{}
	}
	first := true
	for p := range b.tiles {
		if first {
			min, max = p, p
			first = false
			continue
		}
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	return min, max
}

// String renders the board as a rectangle spanning its bounds, rows
// top-to-bottom, each row terminated by a newline, spaces for empty
// cells.
func (b *Board) String() string {
	min, max := b.Bounds()
	var sb strings.Builder
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			if t, ok := b.tiles[Position{X: x, Y: y}]; ok {
				sb.WriteString(t.Value)
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard parses a rectangular text rendering of a board: leading
// and trailing blank lines are dropped, the common leading indent of
// the remaining lines is stripped, and every non-whitespace character
// becomes a Tile at its (x, y) cell.
func ParseBoard(s string) (*Board, error) {
	lines := strings.Split(s, "\n")

	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	end := len(lines)
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	lines = lines[start:end]

	if len(lines) == 0 {
		return NewBoard(), nil
	}

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := 0
		for indent < len(line) && (line[indent] == ' ' || line[indent] == '\t') {
			indent++
		}
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent == -1 {
		minIndent = 0
	}

	b := NewBoard()
	for y, line := range lines {
		stripped := line
		if len(stripped) >= minIndent {
			stripped = stripped[minIndent:]
		} else {
			stripped = ""
		}
		for x, r := range []rune(stripped) {
			if unicode.IsSpace(r) {
				continue
			}
			tile, err := NewTile(string(r), Position{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			b.AddTile(tile)
		}
	}
	return b, nil
}

// Equal reports whether two boards hold the same set of tiles.
func (b *Board) Equal(rhs *Board) bool {
	if b == rhs {
		return true
	}
	if rhs == nil || len(b.tiles) != len(rhs.tiles) {
		return false
	}
	for pos, t := range b.tiles {
		if other, ok := rhs.tiles[pos]; !ok || other != t {
			return false
		}
	}
	return true
}
