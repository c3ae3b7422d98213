package matchers

import (
	"strings"
	"unicode"
)

type Mode string

const (
	ModeInvalid Mode = ""

	// ModeBroad allows partial matches within words.
	// For example, the term "wet" will match "wet", "wetsvoorstel", and "hoofdwet".
	ModeBroad Mode = "broad"

	// ModeExact requires an exact match of the whole word.
	// For example, the term "wet" will match "wet" but not "wetsvoorstel".
	ModeExact Mode = "exact"
)

// Matches reports whether the term occurs in the text under the given mode.
// Comparison is case-insensitive. An unknown mode matches nothing.
func Matches(mode Mode, text, term string) bool {
	text = strings.ToLower(text)
	term = strings.ToLower(term)

	switch mode {
	case ModeBroad:
		return MatchesPartially(text, term)
	case ModeExact:
		return MatchesWholeWord(text, term)
	}
	return false
}

// MatchesWholeWord returns true if the term appears as a complete word in the text.
// Word boundaries are defined by non-alphanumeric characters or start/end of string.
func MatchesWholeWord(text, term string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], term)
		if pos == -1 {
			return false
		}
		pos += idx

		leftOk := pos == 0 || !isWordChar(rune(text[pos-1]))

		endPos := pos + len(term)
		rightOk := endPos == len(text) || !isWordChar(rune(text[endPos]))

		if leftOk && rightOk {
			return true
		}

		idx = pos + 1
		if idx >= len(text) {
			return false
		}
	}
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func MatchesPartially(text, term string) bool {
	return strings.Contains(text, term)
}
