// Package answermetrics computes supplementary accuracy figures for session
// summaries. These are informational only: whether an answer counts as
// correct is decided by the strict positional checker, never by an edit
// distance.
package answermetrics

import (
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// DigitAccuracy returns 1 - normalized edit distance between the expected
// digit string and the learner's input, clamped to [0, 1]. An empty
// expected string yields 0 when anything was typed, 1 when nothing was.
func DigitAccuracy(expected string, got string) float64 {
	if expected == "" {
		if got == "" {
			return 1.0
		}
		return 0.0
	}

	options := levenshtein.Options{
		InsCost: 1,
		DelCost: 1,
		SubCost: 1,
		Matches: levenshtein.IdenticalRunes,
	}

	expRunes := []rune(expected)
	gotRunes := []rune(got)

	distance := levenshtein.DistanceForStrings(expRunes, gotRunes, options)
	accuracy := 1.0 - float64(distance)/float64(len(expRunes))
	if accuracy < 0 {
		return 0.0
	}
	return accuracy
}

// MeanDigitAccuracy averages DigitAccuracy over parallel slices of expected
// digits and inputs. Returns 0 when there is nothing to average.
func MeanDigitAccuracy(expected []string, got []string) float64 {
	n := len(expected)
	if len(got) < n {
		n = len(got)
	}
	if n == 0 {
		return 0.0
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += DigitAccuracy(expected[i], got[i])
	}
	return sum / float64(n)
}
