package service

import (
	"math"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

const (
	// StrategyHistoryCap bounds the recorded (strategy, effectiveness) pairs;
	// the oldest entry is dropped first.
	StrategyHistoryCap = 20
	// StrategyHistoryWindow is how many recent entries feed recommendations.
	StrategyHistoryWindow = 5

	// Context-analysis triggers.
	ComplexityTrigger = 0.7
	AmbiguityTrigger  = 0.6
	EmotionTrigger    = 0.5

	// SuccessfulEffectiveness marks a history entry worth repeating.
	SuccessfulEffectiveness = 0.7
	// MaxHistorySuggestions caps how many history-based suggestions join the
	// recommendation list.
	MaxHistorySuggestions = 2

	// Fallback effectiveness bands when nothing else fires.
	LowEffectiveness      = 0.5
	ModerateEffectiveness = 0.7

	// LongWordLength: words longer than this count toward complexity.
	LongWordLength = 7
	// ComplexityNormalizer scales the raw long-word x sentence-length product.
	ComplexityNormalizer = 5.0
	// AmbiguityDensityFactor mirrors the strategy marker budget: ambiguity
	// saturates at wordCount*0.1 marker hits.
	AmbiguityDensityFactor = 0.1
)

// ContextAnalysis is the heuristic read of a task description.
type ContextAnalysis struct {
	Complexity    float64 `json:"complexity"`
	Ambiguity     float64 `json:"ambiguity"`
	EmotionalTone float64 `json:"emotional_tone"`
	Domain        string  `json:"domain"`
}

// StrategySuggestion pairs a recommended strategy with its reason.
type StrategySuggestion struct {
	Strategy domain.ThinkingStrategy `json:"strategy"`
	Reason   string                  `json:"reason"`
}

// StrategyAdvice is the full response of the strategy adaptation.
type StrategyAdvice struct {
	ContextAnalysis      ContextAnalysis      `json:"context_analysis"`
	CurrentEffectiveness float64              `json:"current_effectiveness"`
	SuggestedStrategies  []StrategySuggestion `json:"suggested_strategies"`
	Reasoning            string               `json:"reasoning"`
}

type strategyRecord struct {
	Strategy      domain.ThinkingStrategy
	Effectiveness float64
}

// StrategyService recommends the next thinking strategy from the task
// context and a bounded history of how well past strategies worked. The
// history is process-global, matching the engine's single-operator model.
type StrategyService struct {
	mu      sync.Mutex
	history []strategyRecord
	logger  *zap.Logger
}

func NewStrategyService(logger *zap.Logger) *StrategyService {
	return &StrategyService{logger: logger}
}

// Suggest records the current strategy's effectiveness, analyzes the context
// and returns ranked strategy recommendations. Effectiveness outside [0,1]
// is rejected.
func (s *StrategyService) Suggest(current domain.ThinkingStrategy, effectiveness float64, context string, constraints []string, cat *catalog.Catalog) (StrategyAdvice, error) {
	if math.IsNaN(effectiveness) || effectiveness < 0 || effectiveness > 1 {
		return StrategyAdvice{}, domain.ErrInvalidEffectiveness
	}

	window := s.record(current, effectiveness)

	ctx := ContextAnalysis{
		Complexity:    analyzeComplexity(context),
		Ambiguity:     analyzeAmbiguity(context, cat),
		EmotionalTone: analyzeEmotionalTone(context, cat),
		Domain:        detectDomain(context, cat),
	}

	suggestions := []StrategySuggestion{}
	if ctx.Complexity > ComplexityTrigger {
		suggestions = append(suggestions,
			StrategySuggestion{domain.StrategySystemic, cat.T("reason_high_complexity")},
			StrategySuggestion{domain.StrategyAnalytical, cat.T("reason_detailed_analysis")})
	}
	if ctx.Ambiguity > AmbiguityTrigger {
		suggestions = append(suggestions,
			StrategySuggestion{domain.StrategyCritical, cat.T("reason_ambiguity_critical")},
			StrategySuggestion{domain.StrategyDialectical, cat.T("reason_opposing_viewpoints")})
	}
	if ctx.EmotionalTone > EmotionTrigger {
		suggestions = append(suggestions,
			StrategySuggestion{domain.StrategyEmpathetic, cat.T("reason_emotional_empathetic")},
			StrategySuggestion{domain.StrategyReflective, cat.T("reason_reflection_needed")})
	}

	added := 0
	for _, rec := range window {
		if rec.Effectiveness > SuccessfulEffectiveness && added < MaxHistorySuggestions {
			suggestions = append(suggestions, StrategySuggestion{rec.Strategy, cat.T("reason_previously_effective")})
			added++
		}
	}

	if len(suggestions) == 0 {
		switch {
		case effectiveness < LowEffectiveness:
			suggestions = append(suggestions,
				StrategySuggestion{domain.StrategyTree, cat.T("reason_explore_alternatives")},
				StrategySuggestion{domain.StrategyDialectical, cat.T("reason_opposing_viewpoints")},
				StrategySuggestion{domain.StrategyMetacognitive, cat.T("reason_analyze_approach")})
		case effectiveness < ModerateEffectiveness:
			suggestions = append(suggestions,
				StrategySuggestion{domain.StrategySystematic, cat.T("reason_systematic_analysis")},
				StrategySuggestion{domain.StrategyAnalytical, cat.T("reason_strict_logic")})
		default:
			suggestions = append(suggestions,
				StrategySuggestion{domain.StrategyCreative, cat.T("reason_creative_approach")},
				StrategySuggestion{domain.StrategyDivergent, cat.T("reason_more_alternatives")})
		}
	}

	s.logger.Info("strategy adaptation",
		zap.String("current", string(current)),
		zap.Float64("effectiveness", effectiveness),
		zap.Strings("constraints", constraints),
		zap.Int("suggestions", len(suggestions)))

	return StrategyAdvice{
		ContextAnalysis:      ctx,
		CurrentEffectiveness: effectiveness,
		SuggestedStrategies:  suggestions,
		Reasoning:            cat.T("recommendation_reasoning"),
	}, nil
}

// record appends to the bounded history and returns the recent window,
// newest entry included.
func (s *StrategyService) record(strategy domain.ThinkingStrategy, effectiveness float64) []strategyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, strategyRecord{strategy, effectiveness})
	if len(s.history) > StrategyHistoryCap {
		s.history = s.history[len(s.history)-StrategyHistoryCap:]
	}

	start := len(s.history) - StrategyHistoryWindow
	if start < 0 {
		start = 0
	}
	window := make([]strategyRecord, len(s.history)-start)
	copy(window, s.history[start:])
	return window
}

// HistoryLen reports the current history size.
func (s *StrategyService) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// analyzeComplexity multiplies the long-word ratio by the average sentence
// length. Sentence count here is the raw split count, trailing terminators
// included, so a single terminated sentence splits into two pieces.
func analyzeComplexity(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	words := strings.Fields(text)
	wordCount := len(words)
	if wordCount == 0 {
		return 0
	}
	longWords := 0
	for _, w := range words {
		if utf8.RuneCountInString(w) > LongWordLength {
			longWords++
		}
	}
	sentences := len(sentenceTerminators.Split(text, -1))
	if sentences == 0 {
		return 0
	}
	complexity := (float64(longWords) / float64(wordCount)) * (float64(wordCount) / float64(sentences))
	return min1(complexity / ComplexityNormalizer)
}

func analyzeAmbiguity(text string, cat *catalog.Catalog) float64 {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return 0
	}
	lower := strings.ToLower(text)
	count := 0
	for _, marker := range cat.AmbiguityMarkers {
		if strings.Contains(lower, marker) {
			count++
		}
	}
	return min1(float64(count) / (float64(wordCount) * AmbiguityDensityFactor))
}

// analyzeEmotionalTone measures how one-sided the emotional vocabulary is:
// 0 for neutral or balanced text, 1 when every emotional word points the
// same way.
func analyzeEmotionalTone(text string, cat *catalog.Catalog) float64 {
	lower := strings.ToLower(text)
	positive := 0
	for _, w := range cat.PositiveWords {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	negative := 0
	for _, w := range cat.NegativeWords {
		if strings.Contains(lower, w) {
			negative++
		}
	}
	total := positive + negative
	if total == 0 {
		return 0
	}
	diff := positive - negative
	if diff < 0 {
		diff = -diff
	}
	return float64(diff) / float64(total)
}

// detectDomain returns the first matching domain category's display name,
// "general" when nothing matches.
func detectDomain(text string, cat *catalog.Catalog) string {
	lower := strings.ToLower(text)
	for _, category := range cat.Domains {
		if containsAny(lower, category.Keywords) {
			return cat.T(category.Key)
		}
	}
	return cat.T("domain_general")
}
