package service

import (
	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

// SessionAnalysis is the coherence report for one session. Analysis carries
// the "no thoughts" note for empty sessions; the numeric fields are then all
// zero and ConsistencyAnalysis is omitted.
type SessionAnalysis struct {
	CoherenceScore          float64            `json:"coherence_score"`
	Analysis                string             `json:"analysis,omitempty"`
	ConsistencyAnalysis     *ConsistencyReport `json:"consistency_analysis,omitempty"`
	QualityTrend            float64            `json:"quality_trend"`
	AverageQuality          float64            `json:"average_quality"`
	ThoughtCount            int                `json:"thought_count"`
	CognitiveBiasesDetected int                `json:"cognitive_biases_detected"`
}

// SessionService analyzes whole sessions: cross-thought coherence and the
// quality trajectory from first to last thought.
type SessionService struct {
	store     domain.ThoughtStore
	validator *ValidationService
	logger    *zap.Logger
}

func NewSessionService(store domain.ThoughtStore, validator *ValidationService, logger *zap.Logger) *SessionService {
	return &SessionService{store: store, validator: validator, logger: logger}
}

// AnalyzeCoherence scores a session: coherence drops by the conflict ratio,
// the quality trend is last-minus-first blended quality. Unknown sessions are
// an error; known-but-empty sessions report a zero score with a note.
func (s *SessionService) AnalyzeCoherence(sessionID string, cat *catalog.Catalog) (SessionAnalysis, error) {
	thoughts, ok := s.store.SessionThoughts(sessionOrDefault(sessionID))
	if !ok {
		return SessionAnalysis{}, domain.ErrSessionNotFound
	}
	if len(thoughts) == 0 {
		return SessionAnalysis{Analysis: cat.T("analysis_no_thoughts")}, nil
	}

	contents := make([]string, len(thoughts))
	for i, t := range thoughts {
		contents[i] = t.Content
	}
	consistency := s.validator.CheckConsistency(contents, cat)

	qualityScores := make([]float64, len(thoughts))
	totalQuality := 0.0
	biasCount := 0
	for i, t := range thoughts {
		qualityScores[i] = t.Metrics.QualityScore()
		totalQuality += qualityScores[i]
		biasCount += len(t.CognitiveBiases)
	}

	trend := 0.0
	if len(qualityScores) > 1 {
		trend = qualityScores[len(qualityScores)-1] - qualityScores[0]
	}

	return SessionAnalysis{
		CoherenceScore:          1.0 - float64(len(consistency.Conflicts))/float64(len(thoughts)),
		ConsistencyAnalysis:     &consistency,
		QualityTrend:            trend,
		AverageQuality:          totalQuality / float64(len(thoughts)),
		ThoughtCount:            len(thoughts),
		CognitiveBiasesDetected: biasCount,
	}, nil
}
