package domain

import (
	"time"
)

type ThoughtType string

const (
	ThoughtObservation     ThoughtType = "observation"
	ThoughtHypothesis      ThoughtType = "hypothesis"
	ThoughtAnalysis        ThoughtType = "analysis"
	ThoughtSynthesis       ThoughtType = "synthesis"
	ThoughtEvaluation      ThoughtType = "evaluation"
	ThoughtConclusion      ThoughtType = "conclusion"
	ThoughtQuestion        ThoughtType = "question"
	ThoughtAssumption      ThoughtType = "assumption"
	ThoughtCounterargument ThoughtType = "counterargument"
	ThoughtMetacognition   ThoughtType = "metacognition"
)

func ValidThoughtType(t string) bool {
	switch ThoughtType(t) {
	case ThoughtObservation, ThoughtHypothesis, ThoughtAnalysis, ThoughtSynthesis,
		ThoughtEvaluation, ThoughtConclusion, ThoughtQuestion, ThoughtAssumption,
		ThoughtCounterargument, ThoughtMetacognition:
		return true
	}
	return false
}

type ThinkingStrategy string

const (
	StrategyLinear        ThinkingStrategy = "linear"
	StrategyTree          ThinkingStrategy = "tree"
	StrategyDialectical   ThinkingStrategy = "dialectical"
	StrategySystematic    ThinkingStrategy = "systematic"
	StrategyCreative      ThinkingStrategy = "creative"
	StrategyAnalytical    ThinkingStrategy = "analytical"
	StrategyMetacognitive ThinkingStrategy = "metacognitive"
	StrategyCritical      ThinkingStrategy = "critical"
	StrategySystemic      ThinkingStrategy = "systemic"
	StrategyLateral       ThinkingStrategy = "lateral"
	StrategyStrategic     ThinkingStrategy = "strategic"
	StrategyEmpathetic    ThinkingStrategy = "empathetic"
	StrategyAbstract      ThinkingStrategy = "abstract"
	StrategyPractical     ThinkingStrategy = "practical"
	StrategyIntegrative   ThinkingStrategy = "integrative"
	StrategyEvolutionary  ThinkingStrategy = "evolutionary"
	StrategyConvergent    ThinkingStrategy = "convergent"
	StrategyDivergent     ThinkingStrategy = "divergent"
	StrategyReflective    ThinkingStrategy = "reflective"
)

func ValidThinkingStrategy(s string) bool {
	switch ThinkingStrategy(s) {
	case StrategyLinear, StrategyTree, StrategyDialectical, StrategySystematic,
		StrategyCreative, StrategyAnalytical, StrategyMetacognitive, StrategyCritical,
		StrategySystemic, StrategyLateral, StrategyStrategic, StrategyEmpathetic,
		StrategyAbstract, StrategyPractical, StrategyIntegrative, StrategyEvolutionary,
		StrategyConvergent, StrategyDivergent, StrategyReflective:
		return true
	}
	return false
}

// ConfidenceLevel is a five-point ordinal scale. It marshals as its name
// rather than its rank so exports stay readable.
type ConfidenceLevel int

const (
	ConfidenceVeryLow ConfidenceLevel = iota + 1
	ConfidenceLow
	ConfidenceMedium
	ConfidenceHigh
	ConfidenceVeryHigh
)

var confidenceNames = map[ConfidenceLevel]string{
	ConfidenceVeryLow:  "VERY_LOW",
	ConfidenceLow:      "LOW",
	ConfidenceMedium:   "MEDIUM",
	ConfidenceHigh:     "HIGH",
	ConfidenceVeryHigh: "VERY_HIGH",
}

func (c ConfidenceLevel) String() string {
	if name, ok := confidenceNames[c]; ok {
		return name
	}
	return "MEDIUM"
}

func (c ConfidenceLevel) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *ConfidenceLevel) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}
	if level, ok := ParseConfidenceLevel(s); ok {
		*c = level
	} else {
		*c = ConfidenceMedium
	}
	return nil
}

func ParseConfidenceLevel(name string) (ConfidenceLevel, bool) {
	for level, n := range confidenceNames {
		if n == name {
			return level, true
		}
	}
	return ConfidenceMedium, false
}

// ThoughtMetrics holds the per-thought quality scores. The five base scores
// are in [0,1]. Exactly one strategy score is populated, matching the
// thought's declared strategy; the rest stay at zero.
type ThoughtMetrics struct {
	ClarityScore     float64 `json:"clarity_score"`
	LogicalCoherence float64 `json:"logical_coherence"`
	EvidenceStrength float64 `json:"evidence_strength"`
	NoveltyScore     float64 `json:"novelty_score"`
	ComplexityScore  float64 `json:"complexity_score"`

	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`

	CriticalThinkingScore float64 `json:"critical_thinking_score"`
	SystemicThinkingScore float64 `json:"systemic_thinking_score"`
	LateralThinkingScore  float64 `json:"lateral_thinking_score"`
	StrategicScore        float64 `json:"strategic_score"`
	EmpathyScore          float64 `json:"empathy_score"`
	AbstractionScore      float64 `json:"abstraction_score"`
	PracticalityScore     float64 `json:"practicality_score"`
	IntegrationScore      float64 `json:"integration_score"`
	EvolutionScore        float64 `json:"evolution_score"`
	ConvergenceScore      float64 `json:"convergence_score"`
	DivergenceScore       float64 `json:"divergence_score"`
	ReflectionScore       float64 `json:"reflection_score"`
}

// NewThoughtMetrics returns metrics at their neutral defaults.
func NewThoughtMetrics() ThoughtMetrics {
	return ThoughtMetrics{ConfidenceLevel: ConfidenceMedium}
}

// StrategyScore returns the competency score slot that corresponds to the
// given strategy, or zero when the strategy has no marker-driven scorer.
func (m ThoughtMetrics) StrategyScore(s ThinkingStrategy) float64 {
	switch s {
	case StrategyCritical:
		return m.CriticalThinkingScore
	case StrategySystemic:
		return m.SystemicThinkingScore
	case StrategyLateral:
		return m.LateralThinkingScore
	case StrategyStrategic:
		return m.StrategicScore
	case StrategyEmpathetic:
		return m.EmpathyScore
	case StrategyAbstract:
		return m.AbstractionScore
	case StrategyPractical:
		return m.PracticalityScore
	case StrategyIntegrative:
		return m.IntegrationScore
	case StrategyEvolutionary:
		return m.EvolutionScore
	case StrategyConvergent:
		return m.ConvergenceScore
	case StrategyDivergent:
		return m.DivergenceScore
	case StrategyReflective:
		return m.ReflectionScore
	}
	return 0
}

// SetStrategyScore assigns the competency score slot for the given strategy.
// Strategies without a marker-driven scorer (linear, tree, ...) are a no-op.
func (m *ThoughtMetrics) SetStrategyScore(s ThinkingStrategy, score float64) {
	switch s {
	case StrategyCritical:
		m.CriticalThinkingScore = score
	case StrategySystemic:
		m.SystemicThinkingScore = score
	case StrategyLateral:
		m.LateralThinkingScore = score
	case StrategyStrategic:
		m.StrategicScore = score
	case StrategyEmpathetic:
		m.EmpathyScore = score
	case StrategyAbstract:
		m.AbstractionScore = score
	case StrategyPractical:
		m.PracticalityScore = score
	case StrategyIntegrative:
		m.IntegrationScore = score
	case StrategyEvolutionary:
		m.EvolutionScore = score
	case StrategyConvergent:
		m.ConvergenceScore = score
	case StrategyDivergent:
		m.DivergenceScore = score
	case StrategyReflective:
		m.ReflectionScore = score
	}
}

// QualityScore is the blended clarity/coherence/evidence average used for
// path rendering and session trends.
func (m ThoughtMetrics) QualityScore() float64 {
	return (m.ClarityScore + m.LogicalCoherence + m.EvidenceStrength) / 3.0
}

// Thought is the atomic unit of reasoning. Content is immutable after
// creation; only the children list grows as descendants arrive.
type Thought struct {
	ID          string           `json:"id"`
	Content     string           `json:"content"`
	Type        ThoughtType      `json:"type"`
	Strategy    ThinkingStrategy `json:"strategy"`
	ParentID    string           `json:"parent_id,omitempty"`
	ChildrenIDs []string         `json:"children_ids,omitempty"`
	BranchID    string           `json:"branch_id,omitempty"`
	RevisionOf  string           `json:"revision_of,omitempty"`
	Timestamp   time.Time        `json:"timestamp"`

	Metrics         ThoughtMetrics `json:"metrics"`
	CognitiveBiases []string       `json:"cognitive_biases"`
	Tags            []string       `json:"tags,omitempty"`

	// Cross-reference lists. Ids are kept as given; existence is not
	// validated.
	Supports    []string `json:"supports,omitempty"`
	Contradicts []string `json:"contradicts,omitempty"`
	BuildsOn    []string `json:"builds_on,omitempty"`
}

// ConnectionCount is the total number of non-tree relations, used by the
// cognitive load heuristic.
func (t *Thought) ConnectionCount() int {
	return len(t.Supports) + len(t.Contradicts) + len(t.BuildsOn)
}

// ThoughtDraft is the validated input for creating a thought. Metrics and
// CognitiveBiases are computed before the store call so the thought is
// complete the moment it becomes visible; a nil Metrics means analysis was
// skipped and neutral defaults apply.
type ThoughtDraft struct {
	Content     string
	Type        ThoughtType
	Strategy    ThinkingStrategy
	ParentID    string
	RevisionOf  string
	BranchID    string
	Supports    []string
	Contradicts []string
	BuildsOn    []string
	Tags        []string

	Metrics         *ThoughtMetrics
	CognitiveBiases []string
}

// DefaultSessionID is the session thoughts land in when the caller does not
// name one.
const DefaultSessionID = "default"
