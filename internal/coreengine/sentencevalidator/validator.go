// Package sentencevalidator decides whether an externally authored carrier
// sentence can be trusted for a dictation exercise, and paces accepted
// sentences with pedagogical pauses. Both operations are pure; retry policy
// belongs to the caller.
package sentencevalidator

import (
	"strings"
	"unicode"
)

// bannedMarkers are lowercase substrings that betray LLM meta/error output
// instead of a usable carrier sentence.
var bannedMarkers = []string{
	"i’m sorry",
	"je suis désolé",
	"as an ai",
	"en tant que",
	"cannot",
	"je ne peux pas",
	"gemini",
	"error",
	"###",
	"```",
}

// maxSentenceWords caps the carrier length; anything longer is almost
// certainly an explanation rather than a sentence.
const maxSentenceWords = 25

// Accept reports whether the candidate sentence is a valid carrier for the
// given spoken chunks. A valid carrier is non-empty, contains no banned
// marker and no digit, embeds every chunk verbatim exactly once, and stays
// within the word limit.
func Accept(candidate string, chunks []string) bool {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return false
	}

	lowered := strings.ToLower(trimmed)
	for _, marker := range bannedMarkers {
		if strings.Contains(lowered, marker) {
			return false
		}
	}

	for _, chunk := range chunks {
		if strings.Count(candidate, chunk) != 1 {
			return false
		}
	}

	for _, r := range candidate {
		if unicode.IsDigit(r) {
			return false
		}
	}

	if len(strings.Fields(candidate)) > maxSentenceWords {
		return false
	}

	return true
}
