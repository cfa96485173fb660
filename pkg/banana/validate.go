package banana

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateLetter normalizes a single-character alphabetic string to
// uppercase, failing with ErrValidation for anything else.
func ValidateLetter(letter string) (string, error) {
	runes := []rune(letter)
	if len(runes) != 1 || !unicode.IsLetter(runes[0]) {
		return "", fmt.Errorf("%w: letter must be a single alpha character, not %q", ErrValidation, letter)
	}
	return strings.ToUpper(letter), nil
}

// ValidateWord normalizes an all-alphabetic string to uppercase,
// failing with ErrValidation for anything else (including the empty
// string).
func ValidateWord(word string) (string, error) {
	if word == "" || !isAlpha(word) {
		return "", fmt.Errorf("%w: word must be alpha, not %q", ErrValidation, word)
	}
	return strings.ToUpper(word), nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
