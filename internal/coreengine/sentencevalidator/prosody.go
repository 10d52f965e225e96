package sentencevalidator

import "strings"

// pauseMarker is inserted before a chunk to create a listening pause.
const pauseMarker = "… "

// FormatWithPauses inserts a pause marker immediately before every chunk
// occurrence except the first. Chunks are located by sequential forward
// search, which also enforces their order. If any chunk cannot be found the
// sentence is returned unchanged; this function never fails on bad input
// because the sentence has already been validated upstream.
func FormatWithPauses(sentence string, chunks []string, pause bool) string {
	if len(chunks) < 2 {
		return sentence
	}

	type span struct{ start, end int }
	positions := make([]span, 0, len(chunks))

	pos := 0
	for _, chunk := range chunks {
		start := indexFrom(sentence, chunk, pos)
		if start < 0 {
			// Author violated chunk ordering; leave the sentence alone.
			return sentence
		}
		end := start + len(chunk)
		positions = append(positions, span{start, end})
		pos = end
	}

	if !pause {
		return sentence
	}

	// Insert back-to-front so earlier offsets stay valid.
	formatted := sentence
	for i := len(positions) - 1; i >= 1; i-- {
		start := positions[i].start
		formatted = formatted[:start] + pauseMarker + formatted[start:]
	}
	return formatted
}

// indexFrom is strings.Index constrained to start searching at offset from.
func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	idx := strings.Index(s[from:], substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}
