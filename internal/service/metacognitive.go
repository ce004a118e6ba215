package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

const (
	MinAnalysisDepth = 1
	MaxAnalysisDepth = 5

	// CognitiveLoadThreshold triggers the decomposition recommendation.
	CognitiveLoadThreshold = 0.7
	// BiasVarietyThreshold: more unique biases than this triggers the bias
	// attention recommendation.
	BiasVarietyThreshold = 3
	// EffectivenessFloor triggers the strategy-change recommendation.
	EffectivenessFloor = 0.5
	// ConnectionDensityNormalizer converts a thought's relation count into
	// its contribution to cognitive load.
	ConnectionDensityNormalizer = 10.0
)

// ThinkingPatterns describes the type and strategy mix of a session.
type ThinkingPatterns struct {
	TypeDistribution     map[string]int `json:"thought_type_distribution"`
	StrategyDistribution map[string]int `json:"strategy_distribution"`
	DominantType         string         `json:"dominant_type,omitempty"`
	DominantStrategy     string         `json:"dominant_strategy,omitempty"`
}

// BiasAssessment aggregates bias detections across a session.
type BiasAssessment struct {
	TotalBiases      int            `json:"total_biases"`
	UniqueBiases     int            `json:"unique_biases"`
	DetectedBiases   []string       `json:"detected_biases"`
	BiasDistribution map[string]int `json:"bias_distribution"`
	BiasDensity      float64        `json:"bias_density"`
}

// MetacognitiveAnalysis is the self-assessment report over one session.
// Analysis carries the "no thoughts" note when the session is empty; the
// structured sections are then omitted.
type MetacognitiveAnalysis struct {
	FocusArea             string            `json:"focus_area,omitempty"`
	AnalysisDepth         int               `json:"analysis_depth,omitempty"`
	Analysis              string            `json:"analysis,omitempty"`
	ThinkingPatterns      *ThinkingPatterns `json:"thinking_patterns,omitempty"`
	StrategyEffectiveness float64           `json:"strategy_effectiveness"`
	CognitiveLoad         float64           `json:"cognitive_load"`
	BiasAssessment        *BiasAssessment   `json:"bias_assessment,omitempty"`
	Recommendations       []string          `json:"recommendations"`
}

// MetacognitiveService turns the engine's analyzers on its own output:
// pattern distributions, strategy effectiveness, cognitive load and bias
// aggregation over a session.
type MetacognitiveService struct {
	store  domain.ThoughtStore
	logger *zap.Logger
}

func NewMetacognitiveService(store domain.ThoughtStore, logger *zap.Logger) *MetacognitiveService {
	return &MetacognitiveService{store: store, logger: logger}
}

// Reflect runs the metacognitive analysis over a session. Referencing a new
// session id brings the session into existence empty rather than failing.
func (s *MetacognitiveService) Reflect(sessionID, focusArea string, depth int, cat *catalog.Catalog) (MetacognitiveAnalysis, error) {
	if depth < MinAnalysisDepth || depth > MaxAnalysisDepth {
		return MetacognitiveAnalysis{}, domain.ErrInvalidDepth
	}

	sessionID = sessionOrDefault(sessionID)
	s.store.Touch(sessionID)
	thoughts, _ := s.store.SessionThoughts(sessionID)
	if len(thoughts) == 0 {
		return MetacognitiveAnalysis{
			Analysis:        cat.T("analysis_no_thoughts"),
			Recommendations: []string{},
		}, nil
	}

	patterns := analyzePatterns(thoughts)
	effectiveness := evaluateEffectiveness(thoughts)
	load := assessCognitiveLoad(thoughts)
	biases := assessBiases(thoughts)

	recommendations := []string{}
	if load > CognitiveLoadThreshold {
		recommendations = append(recommendations, cat.T("recommend_break_down_task"))
	}
	if biases.UniqueBiases > BiasVarietyThreshold {
		recommendations = append(recommendations, cat.T("recommend_bias_attention"))
	}
	if effectiveness < EffectivenessFloor {
		recommendations = append(recommendations, cat.T("recommend_strategy_ineffective"))
	}

	s.logger.Debug("metacognitive reflection",
		zap.String("session_id", sessionID),
		zap.String("focus_area", focusArea),
		zap.Float64("effectiveness", effectiveness),
		zap.Float64("cognitive_load", load))

	return MetacognitiveAnalysis{
		FocusArea:             focusArea,
		AnalysisDepth:         depth,
		ThinkingPatterns:      &patterns,
		StrategyEffectiveness: effectiveness,
		CognitiveLoad:         load,
		BiasAssessment:        &biases,
		Recommendations:       recommendations,
	}, nil
}

func analyzePatterns(thoughts []*domain.Thought) ThinkingPatterns {
	typeDist := make(map[string]int)
	strategyDist := make(map[string]int)
	for _, t := range thoughts {
		typeDist[string(t.Type)]++
		strategyDist[string(t.Strategy)]++
	}
	return ThinkingPatterns{
		TypeDistribution:     typeDist,
		StrategyDistribution: strategyDist,
		DominantType:         dominantKey(typeDist),
		DominantStrategy:     dominantKey(strategyDist),
	}
}

// dominantKey picks the highest-count key, breaking count ties
// lexicographically so the result is stable.
func dominantKey(dist map[string]int) string {
	keys := make([]string, 0, len(dist))
	for k := range dist {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := ""
	bestCount := 0
	for _, k := range keys {
		if dist[k] > bestCount {
			best = k
			bestCount = dist[k]
		}
	}
	return best
}

// evaluateEffectiveness is the average of the four content-quality metrics
// over all thoughts, a proxy for how well the chosen strategies worked.
func evaluateEffectiveness(thoughts []*domain.Thought) float64 {
	total := 0.0
	for _, t := range thoughts {
		m := t.Metrics
		total += (m.ClarityScore + m.LogicalCoherence + m.EvidenceStrength + m.NoveltyScore) / 4.0
	}
	return total / float64(len(thoughts))
}

// assessCognitiveLoad blends average complexity with average connection
// density, capped at 1.
func assessCognitiveLoad(thoughts []*domain.Thought) float64 {
	totalComplexity := 0.0
	totalDensity := 0.0
	for _, t := range thoughts {
		totalComplexity += t.Metrics.ComplexityScore
		totalDensity += float64(t.ConnectionCount()) / ConnectionDensityNormalizer
	}
	n := float64(len(thoughts))
	return min1((totalComplexity/n + totalDensity/n) / 2.0)
}

func assessBiases(thoughts []*domain.Thought) BiasAssessment {
	distribution := make(map[string]int)
	total := 0
	for _, t := range thoughts {
		for _, bias := range t.CognitiveBiases {
			distribution[bias]++
			total++
		}
	}
	detected := make([]string, 0, len(distribution))
	for bias := range distribution {
		detected = append(detected, bias)
	}
	sort.Strings(detected)
	return BiasAssessment{
		TotalBiases:      total,
		UniqueBiases:     len(distribution),
		DetectedBiases:   detected,
		BiasDistribution: distribution,
		BiasDensity:      float64(total) / float64(len(thoughts)),
	}
}
