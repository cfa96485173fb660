package banana

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func newDFSSolver(t *testing.T, words ...string) *DFS {
	t.Helper()
	generator, err := NewSimpleConstraintGenerator(words, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSimpleConstraintGenerator: %v", err)
	}
	dfs, err := NewDFS(words, generator, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewDFS: %v", err)
	}
	return dfs
}

func TestDFSSolvesEmptyBoardFirstWord(t *testing.T) {
	dfs := newDFSSolver(t, "CAB")
	letters, _ := MultisetFromString("CAB")
	solved, err := dfs.Search(NewBoard(), letters)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got, want := solved.String(), "CAB\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDFSSolvesSingleAnchor(t *testing.T) {
	dfs := newDFSSolver(t, "CAB", "BAD")
	board, err := ParseBoard("CAB\n")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	letters, _ := MultisetFromString("BD")
	solved, err := dfs.Search(board, letters)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !boardIsValid(solved, wordSet([]string{"CAB", "BAD"})) {
		t.Errorf("solved board %q contains a run that is not a dictionary word", solved.String())
	}
	if solved.Len() != 5 {
		t.Errorf("solved board has %d tiles, want 5 (CAB's 3 plus BAD's 2 new letters)", solved.Len())
	}
}

func TestDFSReportsErrSearchWhenUnsolvable(t *testing.T) {
	dfs := newDFSSolver(t, "CAB", "BAD")
	board, err := ParseBoard("CAB\n")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	letters, _ := MultisetFromString("XYZ")
	_, err = dfs.Search(board, letters)
	if !errors.Is(err, ErrSearch) {
		t.Errorf("error = %v, want ErrSearch", err)
	}
}

func TestDFSAttachesThroughMiddleLetter(t *testing.T) {
	// DAN passes through CAB's middle letter A, not one of its ends.
	dfs := newDFSSolver(t, "CAB", "DAN")
	board, err := ParseBoard("CAB\n")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	letters, _ := MultisetFromString("DN")
	solved, err := dfs.Search(board, letters)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if !boardIsValid(solved, wordSet([]string{"CAB", "DAN"})) {
		t.Errorf("solved board %q contains a run that is not a dictionary word", solved.String())
	}
	if !solved.Contains(Tile{Value: "D", Position: Position{X: 1, Y: -1}}) {
		t.Errorf("expected D directly above CAB's A, got:\n%s", solved.String())
	}
}
