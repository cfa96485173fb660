package banana

import "fmt"

// LetterHistogram is a per-letter relative frequency table, with
// frequencies over present letters summing to 1.
type LetterHistogram struct {
	freq map[string]float64
}

// NewLetterHistogram derives a histogram from a corpus of words.
func NewLetterHistogram(words []string) (LetterHistogram, error) {
	counts := make(map[string]int)
	total := 0
	for _, w := range words {
		normalized, err := ValidateWord(w)
		if err != nil {
			return LetterHistogram{}, fmt.Errorf("invalid letter in word %q: %w", w, err)
		}
		for _, r := range normalized {
			counts[string(r)]++
			total++
		}
	}
	return newHistogramFromCounts(counts, total), nil
}

// NewLetterHistogramFromCounts derives a histogram directly from
// letter counts, e.g. a fixed corpus such as DefaultCorpus.
func NewLetterHistogramFromCounts(counts map[string]int) LetterHistogram {
	total := 0
	for _, c := range counts {
		total += c
	}
	return newHistogramFromCounts(counts, total)
}

func newHistogramFromCounts(counts map[string]int, total int) LetterHistogram {
	freq := make(map[string]float64, len(counts))
	if total > 0 {
		for letter, count := range counts {
			freq[letter] = float64(count) / float64(total)
		}
	}
	return LetterHistogram{freq: freq}
}

// Frequency returns the relative frequency of letter, 0 if absent.
func (h LetterHistogram) Frequency(letter string) (float64, error) {
	normalized, err := ValidateLetter(letter)
	if err != nil {
		return 0, err
	}
	return h.freq[normalized], nil
}

// WordFrequencies returns the per-letter frequency of each letter in
// word, in order.
func (h LetterHistogram) WordFrequencies(word string) ([]float64, error) {
	normalized, err := ValidateWord(word)
	if err != nil {
		return nil, err
	}
	out := make([]float64, 0, len(normalized))
	for _, r := range normalized {
		out = append(out, h.freq[string(r)])
	}
	return out, nil
}

// TotalWordFrequency sums the per-letter frequency of word.
func (h LetterHistogram) TotalWordFrequency(word string) (float64, error) {
	freqs, err := h.WordFrequencies(word)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, f := range freqs {
		total += f
	}
	return total, nil
}

// AverageWordFrequency averages the per-letter frequency of word.
func (h LetterHistogram) AverageWordFrequency(word string) (float64, error) {
	freqs, err := h.WordFrequencies(word)
	if err != nil {
		return 0, err
	}
	if len(freqs) == 0 {
		return 0, nil
	}
	total, _ := h.TotalWordFrequency(word)
	return total / float64(len(freqs)), nil
}

// MaxWordFrequency returns the highest per-letter frequency in word.
func (h LetterHistogram) MaxWordFrequency(word string) (float64, error) {
	freqs, err := h.WordFrequencies(word)
	if err != nil {
		return 0, err
	}
	var max float64
	for i, f := range freqs {
		if i == 0 || f > max {
			max = f
		}
	}
	return max, nil
}

// DefaultCorpus is the fixed English-like letter multiset the beam
// heuristic uses when no dictionary-derived histogram is configured.
var DefaultCorpus = NewLetterHistogramFromCounts(map[string]int{
	"A": 13, "B": 3, "C": 3, "D": 6, "E": 18, "F": 3, "G": 4, "H": 3,
	"I": 12, "J": 2, "K": 2, "L": 5, "M": 3, "N": 8, "O": 11, "P": 3,
	"Q": 2, "R": 9, "S": 6, "T": 9, "U": 6, "V": 3, "W": 3, "X": 2,
	"Y": 3, "Z": 2,
})

// Multiset is an ordered multiset of uppercase letters: the available
// tiles a search threads through as it consumes words.
type Multiset []string

// NewMultiset validates and normalizes a slice of single-character
// letters into a Multiset.
func NewMultiset(letters []string) (Multiset, error) {
	out := make(Multiset, 0, len(letters))
	for _, l := range letters {
		normalized, err := ValidateLetter(l)
		if err != nil {
			return nil, err
		}
		out = append(out, normalized)
	}
	return out, nil
}

// MultisetFromString splits a string into one-letter Multiset
// entries.
func MultisetFromString(s string) (Multiset, error) {
	letters := make([]string, 0, len(s))
	for _, r := range s {
		letters = append(letters, string(r))
	}
	return NewMultiset(letters)
}

// counts returns a letter -> count map for the multiset.
func (m Multiset) counts() map[string]int {
	counts := make(map[string]int, len(m))
	for _, l := range m {
		counts[l]++
	}
	return counts
}

// Sub returns the multiset remaining after removing every letter in
// used, each used letter deducted once per occurrence.
func (m Multiset) Sub(used []string) Multiset {
	counts := m.counts()
	for _, l := range used {
		if counts[l] > 0 {
			counts[l]--
		}
	}
	out := make(Multiset, 0, len(m))
	for _, l := range m {
		if counts[l] > 0 {
			out = append(out, l)
			counts[l]--
		}
	}
	return out
}

// Add returns the multiset with extra appended.
func (m Multiset) Add(extra ...string) Multiset {
	out := make(Multiset, 0, len(m)+len(extra))
	out = append(out, m...)
	out = append(out, extra...)
	return out
}

// ContainsSubmultiset reports whether word's letters form a
// submultiset of m: for every letter, word's count of it is <= m's.
func (m Multiset) ContainsSubmultiset(word string) bool {
	have := m.counts()
	for _, r := range word {
		letter := string(r)
		if have[letter] == 0 {
			return false
		}
		have[letter]--
	}
	return true
}

func (m Multiset) Len() int {
	return len(m)
}
