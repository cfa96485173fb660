// Command banana solves a Bananagrams-style crossword construction
// problem: given a dictionary and a multiset of letter tiles, it
// prints a board where every maximal run is a dictionary word and
// every tile has been placed.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"banana/pkg/banana"
)

func main() {
	// Optional .env-sourced tuning defaults; absence is not an error,
	// flags still take effect either way.
	_ = godotenv.Load()

	var (
		dictPath = flag.String("dict", envOr("BANANA_DICT", ""), "path to a dictionary file, one or more words per line")
		letters  = flag.String("letters", envOr("BANANA_LETTERS", ""), "the available letters, e.g. CABBAGE")
		boardStr = flag.String("board", envOr("BANANA_BOARD", ""), "optional starting board text, as rendered by the solver")
		kind     = flag.String("search", envOr("BANANA_SEARCH", "beam"), "search engine to use: dfs or beam")
		beamSize = flag.Int("beam-size", envIntOr("BANANA_BEAM_SIZE", banana.DefaultBeamSize), "beam width for the beam search")
		maxDepth = flag.Int("max-depth", envIntOr("BANANA_MAX_DEPTH", banana.DefaultMaxDepth), "max search depth for the beam search, 0 for unbounded")
		verbose  = flag.Bool("v", false, "enable debug logging to stderr")
	)
	flag.Parse()

	log := zerolog.Nop()
	if *verbose {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	if *dictPath == "" || *letters == "" {
		fmt.Fprintln(os.Stderr, "usage: banana -dict <path> -letters <LETTERS> [-board <text>] [-search dfs|beam]")
		os.Exit(2)
	}

	if err := run(*dictPath, *letters, *boardStr, *kind, *beamSize, *maxDepth, log); err != nil {
		fmt.Fprintln(os.Stderr, "banana:", err)
		os.Exit(1)
	}
}

func run(dictPath, lettersStr, boardStr, kind string, beamSize, maxDepth int, log zerolog.Logger) error {
	dict, err := banana.NewDictionaryFromFile(dictPath)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	letters, err := banana.MultisetFromString(lettersStr)
	if err != nil {
		return fmt.Errorf("parsing letters: %w", err)
	}

	var board *banana.Board
	if boardStr == "" {
		board = banana.NewBoard()
	} else {
		board, err = banana.ParseBoard(boardStr)
		if err != nil {
			return fmt.Errorf("parsing starting board: %w", err)
		}
	}

	generator, err := banana.NewSimpleConstraintGenerator(dict.Words(), log)
	if err != nil {
		return fmt.Errorf("building constraint generator: %w", err)
	}

	var search banana.Search
	switch kind {
	case "dfs":
		search, err = banana.NewDFS(dict.Words(), generator, log)
	case "beam":
		search, err = banana.NewBeamSearch(dict.Words(), generator, banana.DefaultCorpus, beamSize, maxDepth, banana.DefaultBeamWeights, log)
	default:
		return fmt.Errorf("unknown search kind %q, must be dfs or beam", kind)
	}
	if err != nil {
		return fmt.Errorf("building search: %w", err)
	}

	solved, err := search.Search(board, letters)
	if err != nil {
		return err
	}

	fmt.Print(solved.String())
	return nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}
