package banana

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSimpleConstraintGeneratorEmptyBoard(t *testing.T) {
	g, err := NewSimpleConstraintGenerator([]string{"cab", "bad"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSimpleConstraintGenerator: %v", err)
	}
	letters, _ := MultisetFromString("CAB")
	constraints, err := g.Generate(NewBoard(), letters)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(constraints) != 1 {
		t.Fatalf("len(constraints) = %d, want 1 on an empty board", len(constraints))
	}
	words := constraints[0].Filter([]string{"CAB", "BAD"})
	if len(words) != 1 || words[0] != "CAB" {
		t.Errorf("Filter() = %v, want [CAB] (BAD isn't buildable from CAB's letters)", words)
	}
}

func TestSimpleConstraintGeneratorAnchorsExistingBoard(t *testing.T) {
	g, err := NewSimpleConstraintGenerator([]string{"cab", "bad"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSimpleConstraintGenerator: %v", err)
	}
	board, err := ParseBoard("CAB\n")
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	letters, _ := MultisetFromString("BD")
	constraints, err := g.Generate(board, letters)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(constraints) == 0 {
		t.Fatal("expected at least one anchor constraint against an occupied board")
	}

	var sawBAD bool
	for _, c := range constraints {
		for _, w := range c.Filter([]string{"CAB", "BAD"}) {
			for _, candidate := range c.CreateCandidates(board, w) {
				if candidate.Value == "BAD" {
					sawBAD = true
				}
			}
		}
	}
	if !sawBAD {
		t.Error("expected BAD to be reachable as a DOWN anchor through CAB's A, reusing the anchor letter")
	}
}

func TestSimpleConstraintGeneratorSkipsBlockedAnchors(t *testing.T) {
	g, err := NewSimpleConstraintGenerator([]string{"cab", "cef"}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSimpleConstraintGenerator: %v", err)
	}
	// A tile with an occupied perpendicular neighbor on either side is
	// not an open anchor.
	board := NewBoard()
	board.PlaceWord(mustWord(t, "CAB", Position{}, ACROSS), false)
	board.PlaceWord(mustWord(t, "CEF", Position{}, DOWN), false)

	letters, _ := MultisetFromString("CEF")
	constraints, err := g.Generate(board, letters)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, c := range constraints {
		for _, w := range c.Filter([]string{"CAB", "CEF"}) {
			for _, candidate := range c.CreateCandidates(board, w) {
				if candidate.Position == (Position{}) && candidate.Direction == ACROSS {
					t.Error("origin tile is not an open anchor once a perpendicular neighbor is occupied")
				}
			}
		}
	}
}

func mustWord(t *testing.T, s string, pos Position, dir Direction) Word {
	t.Helper()
	w, err := WordFromString(s, pos, dir)
	if err != nil {
		t.Fatalf("WordFromString(%q): %v", s, err)
	}
	return w
}
