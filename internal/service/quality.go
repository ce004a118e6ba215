package service

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

const (
	// CoherenceNormalizer and EvidenceNormalizer are the saturation point for
	// connector and evidence-pattern counts.
	CoherenceNormalizer = 3.0
	EvidenceNormalizer  = 3.0

	// StrategyDensityFactor converts word count into the per-category marker
	// budget: a category saturates at wordCount*0.1 marker hits.
	StrategyDensityFactor = 0.1

	// Readability path: clarity is Flesch/100 clamped to [0,1], complexity is
	// average sentence length over SentenceLengthNormalizer capped at 1.
	SentenceLengthNormalizer = 20.0

	// Fallback path, used when no readability capability is configured or the
	// text defeats it.
	FallbackClarityCenter = 15.0
	FallbackClaritySpread = 30.0
	FallbackClarityFloor  = 0.1
	FallbackComplexityCap = 50.0
)

// QualityService scores a thought's text on the five base metrics plus the
// strategy-specific competency score. It never mutates stored state; callers
// seal the result into the thought at creation time.
type QualityService struct {
	readability domain.ReadabilityScorer
	logger      *zap.Logger
}

// NewQualityService builds the scorer. A nil readability scorer switches the
// clarity/complexity pair to the word-count fallback heuristics.
func NewQualityService(readability domain.ReadabilityScorer, logger *zap.Logger) *QualityService {
	return &QualityService{readability: readability, logger: logger}
}

// AnalyzeThought computes the full metric set for one thought. Whitespace-only
// content returns neutral defaults.
func (s *QualityService) AnalyzeThought(content string, strategy domain.ThinkingStrategy, cat *catalog.Catalog) domain.ThoughtMetrics {
	metrics := domain.NewThoughtMetrics()
	if strings.TrimSpace(content) == "" {
		return metrics
	}

	lower := strings.ToLower(content)
	words := strings.Fields(content)
	wordCount := len(words)

	metrics.ClarityScore, metrics.ComplexityScore = s.clarityAndComplexity(content, wordCount)

	if score, ok := s.scoreStrategy(lower, wordCount, strategy, cat); ok {
		metrics.SetStrategyScore(strategy, score)
	}

	connectorCount := 0
	for _, conn := range cat.LogicalConnectors {
		if strings.Contains(lower, conn) {
			connectorCount++
		}
	}
	metrics.LogicalCoherence = min1(float64(connectorCount) / CoherenceNormalizer)

	evidenceCount := 0
	for _, pattern := range cat.EvidencePatterns {
		if pattern.MatchString(lower) {
			evidenceCount++
		}
	}
	metrics.EvidenceStrength = min1(float64(evidenceCount) / EvidenceNormalizer)

	if wordCount > 0 {
		unique := make(map[string]struct{}, wordCount)
		for _, w := range strings.Fields(lower) {
			unique[w] = struct{}{}
		}
		metrics.NoveltyScore = min1(float64(len(unique)) / float64(wordCount))
	}

	metrics.ConfidenceLevel = s.assessConfidence(lower, cat)

	s.logger.Debug("scored thought",
		zap.String("strategy", string(strategy)),
		zap.Float64("clarity", metrics.ClarityScore),
		zap.Float64("coherence", metrics.LogicalCoherence),
		zap.Float64("evidence", metrics.EvidenceStrength))
	return metrics
}

// clarityAndComplexity prefers the readability capability and falls back to
// pure word-count heuristics when it is absent or the text defeats it.
func (s *QualityService) clarityAndComplexity(content string, wordCount int) (clarity, complexity float64) {
	if s.readability != nil {
		flesch, err := s.readability.Score(content)
		if err == nil {
			clarity = clamp01(flesch / 100.0)
			sentences := countSentences(content)
			avgSentenceLen := float64(wordCount) / float64(max(sentences, 1))
			complexity = min1(avgSentenceLen / SentenceLengthNormalizer)
			return clarity, complexity
		}
		s.logger.Warn("readability scoring failed, using fallback heuristics", zap.Error(err))
	}

	diff := float64(wordCount) - FallbackClarityCenter
	if diff < 0 {
		diff = -diff
	}
	clarity = min1(maxf(FallbackClarityFloor, 1.0-diff/FallbackClaritySpread))
	complexity = min1(float64(wordCount) / FallbackComplexityCap)
	return clarity, complexity
}

// scoreStrategy runs the table-driven marker scorer for strategies that carry
// a profile. The score is the mean of per-category saturation scores plus an
// optional bonus term.
func (s *QualityService) scoreStrategy(lower string, wordCount int, strategy domain.ThinkingStrategy, cat *catalog.Catalog) (float64, bool) {
	profile, ok := cat.StrategyProfiles[strategy]
	if !ok {
		return 0, false
	}
	if wordCount == 0 {
		return 0, true
	}

	var scores []float64
	for _, category := range profile.Categories {
		count := 0
		for _, marker := range category.Markers {
			if strings.Contains(lower, marker) {
				count++
			}
		}
		scores = append(scores, min1(float64(count)/(float64(wordCount)*StrategyDensityFactor)))
	}

	if bonus := applyBonus(lower, profile.Bonus); bonus > 0 {
		scores = append(scores, bonus)
	}

	if len(scores) == 0 {
		return 0, true
	}
	total := 0.0
	for _, sc := range scores {
		total += sc
	}
	return total / float64(len(scores)), true
}

func applyBonus(lower string, rule catalog.BonusRule) float64 {
	switch rule.Kind {
	case catalog.BonusPairedKeywords:
		for _, pair := range rule.Pairs {
			if strings.Contains(lower, pair.Negative) && strings.Contains(lower, pair.Positive) {
				return rule.Score
			}
		}
	case catalog.BonusAnyKeyword:
		if containsAny(lower, rule.Words) {
			return rule.Score
		}
	case catalog.BonusPronounPeople:
		if containsAny(lower, rule.Pronouns) && containsAny(lower, rule.PeopleRefs) {
			return rule.Score
		}
	case catalog.BonusNoConcreteExamples:
		if !strings.ContainsAny(lower, "0123456789") && !containsAny(lower, rule.Words) {
			return rule.Score
		}
	}
	return 0
}

func (s *QualityService) assessConfidence(lower string, cat *catalog.Catalog) domain.ConfidenceLevel {
	uncertainty := 0
	for _, marker := range cat.UncertaintyMarkers {
		if strings.Contains(lower, marker) {
			uncertainty++
		}
	}
	certainty := 0
	for _, marker := range cat.CertaintyMarkers {
		if strings.Contains(lower, marker) {
			certainty++
		}
	}
	switch {
	case certainty > uncertainty:
		return domain.ConfidenceHigh
	case uncertainty > certainty:
		return domain.ConfidenceLow
	default:
		return domain.ConfidenceMedium
	}
}

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// countSentences counts the non-empty pieces left after splitting on sentence
// terminators, with a floor of one.
func countSentences(text string) int {
	count := 0
	for _, part := range sentenceTerminators.Split(text, -1) {
		if strings.TrimSpace(part) != "" {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

func min1(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	return v
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
