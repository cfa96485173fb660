package banana

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Dictionary is a validated set of uppercase words with a per-letter
// index for fast containment filtering.
type Dictionary struct {
	words         map[string]struct{}
	wordsByLetter map[rune]map[string]struct{}
}

// NewDictionary validates and normalizes words, failing with
// ErrValidation on the first non-alphabetic token.
func NewDictionary(words []string) (*Dictionary, error) {
	d := &Dictionary{
		words:         make(map[string]struct{}, len(words)),
		wordsByLetter: make(map[rune]map[string]struct{}),
	}
	for _, w := range words {
		normalized, err := ValidateWord(w)
		if err != nil {
			return nil, err
		}
		d.words[normalized] = struct{}{}
		seen := make(map[rune]bool)
		for _, r := range normalized {
			if seen[r] {
				continue
			}
			seen[r] = true
			if d.wordsByLetter[r] == nil {
				d.wordsByLetter[r] = make(map[string]struct{})
			}
			d.wordsByLetter[r][normalized] = struct{}{}
		}
	}
	return d, nil
}

// NewDictionaryFromReader reads one-or-more whitespace-separated
// words per line from r.
func NewDictionaryFromReader(r io.Reader) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		for _, tok := range strings.Fields(sc.Text()) {
			words = append(words, tok)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return NewDictionary(words)
}

// NewDictionaryFromFile loads a dictionary from a file path, in the
// format described by NewDictionaryFromReader.
func NewDictionaryFromFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary %s: %w", path, err)
	}
	defer f.Close()
	return NewDictionaryFromReader(f)
}

// Contains reports whether word (normalized to uppercase) is in the
// dictionary.
func (d *Dictionary) Contains(word string) bool {
	normalized, err := ValidateWord(word)
	if err != nil {
		return false
	}
	_, ok := d.words[normalized]
	return ok
}

// Len returns the number of words in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words returns every word in the dictionary, sorted lexicographically
// so that callers threading this order into search (the CLI's
// constraint generator and search engines) get a deterministic,
// run-to-run-stable traversal.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// WordsThatContainLetter returns every dictionary word containing
// letter at least once.
func (d *Dictionary) WordsThatContainLetter(letter string) ([]string, error) {
	normalized, err := ValidateLetter(letter)
	if err != nil {
		return nil, err
	}
	set := d.wordsByLetter[[]rune(normalized)[0]]
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	return out, nil
}
