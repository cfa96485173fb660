package banana

// Search explores partial boards, starting from an initial board and
// a multiset of available letters, looking for a board that places
// every letter while keeping every maximal run a dictionary word.
type Search interface {
	Search(board *Board, letters Multiset) (*Board, error)
}

// boardIsValid reports whether every maximal run on board is a word
// in words.
func boardIsValid(board *Board, words map[string]struct{}) bool {
	for _, w := range board.GetWords() {
		if _, ok := words[w.Value]; !ok {
			return false
		}
	}
	return true
}

// lettersWithoutWord computes the letters remaining after placing
// candidate on top of board: only the letters of tile positions that
// were not already occupied on board are deducted, since an anchor
// tile reused from the board is not consumed.
func lettersWithoutWord(board *Board, candidate Word, letters Multiset) Multiset {
	var used []string
	for _, t := range candidate.Tiles() {
		if _, occupied := board.Tile(t.Position); !occupied {
			used = append(used, t.Value)
		}
	}
	return letters.Sub(used)
}

func wordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
