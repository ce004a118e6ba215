package analysis

import (
	"regexp"
	"strings"

	"github.com/noemalabs/noema/internal/domain"
)

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// FleschScorer computes the Flesch reading ease of a text. Scores are on the
// usual 0-100-ish scale (negative and >100 values are possible on degenerate
// input, callers clamp).
type FleschScorer struct{}

func NewFleschScorer() *FleschScorer {
	return &FleschScorer{}
}

func (s *FleschScorer) Score(text string) (float64, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0, domain.ErrDegenerateInput
	}

	sentences := 0
	for _, part := range sentenceSplit.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			sentences++
		}
	}
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	return 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord, nil
}

// countSyllables approximates syllables as runs of vowels, with a floor of
// one per word. Works for both Latin and Cyrillic vowels.
func countSyllables(word string) int {
	const vowels = "aeiouyаеёиоуыэюя"
	count := 0
	inRun := false
	for _, r := range strings.ToLower(word) {
		if strings.ContainsRune(vowels, r) {
			if !inRun {
				count++
				inRun = true
			}
		} else {
			inRun = false
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}
