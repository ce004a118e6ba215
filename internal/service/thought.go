// Package service implements the engine's analyzers and orchestration on top
// of the store and capability interfaces. Analyzers are pure; only the store
// and each service's own history carry state.
package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

// CreateThoughtInput is the resolved, enum-validated input for one thought.
// Confidence zero means "derive from the text"; a nonzero value overrides the
// analyzer's assessment.
type CreateThoughtInput struct {
	Content     string
	Type        domain.ThoughtType
	Strategy    domain.ThinkingStrategy
	ParentID    string
	RevisionOf  string
	BranchID    string
	Supports    []string
	Contradicts []string
	BuildsOn    []string
	Tags        []string
	Confidence  domain.ConfidenceLevel
	SessionID   string

	RequestAnalysis   bool
	RequestValidation bool
}

// ThoughtService owns the create path: analysis, validation, graph insertion
// and the async archive hand-off.
type ThoughtService struct {
	store     domain.ThoughtStore
	quality   *QualityService
	validator *ValidationService
	archiver  *ArchiverService
	logger    *zap.Logger
}

// NewThoughtService wires the create pipeline. The archiver may be nil when
// no archive backend is configured.
func NewThoughtService(store domain.ThoughtStore, quality *QualityService, validator *ValidationService, archiver *ArchiverService, logger *zap.Logger) *ThoughtService {
	return &ThoughtService{
		store:     store,
		quality:   quality,
		validator: validator,
		archiver:  archiver,
		logger:    logger,
	}
}

// Create analyzes, validates and stores one thought. The returned thought is
// the stored instance with its assigned id.
func (s *ThoughtService) Create(in CreateThoughtInput, cat *catalog.Catalog) (*domain.Thought, error) {
	if strings.TrimSpace(in.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	draft := domain.ThoughtDraft{
		Content:     in.Content,
		Type:        in.Type,
		Strategy:    in.Strategy,
		ParentID:    in.ParentID,
		RevisionOf:  in.RevisionOf,
		BranchID:    in.BranchID,
		Supports:    in.Supports,
		Contradicts: in.Contradicts,
		BuildsOn:    in.BuildsOn,
		Tags:        in.Tags,
	}

	if in.RequestAnalysis {
		metrics := s.quality.AnalyzeThought(in.Content, in.Strategy, cat)
		if in.Confidence != 0 {
			metrics.ConfidenceLevel = in.Confidence
		}
		draft.Metrics = &metrics
	}
	if in.RequestValidation {
		draft.CognitiveBiases = s.validator.DetectBiases(in.Content, cat)
	}

	t := s.store.Create(draft, in.SessionID)

	if s.archiver != nil {
		if snapshot, ok := s.store.Snapshot(t.ID); ok {
			s.archiver.Enqueue(sessionOrDefault(in.SessionID), snapshot)
		}
	}

	s.logger.Info("thought created",
		zap.String("thought_id", t.ID),
		zap.String("type", string(t.Type)),
		zap.String("strategy", string(t.Strategy)),
		zap.Int("biases", len(t.CognitiveBiases)))
	return t, nil
}

// Path returns the chain of thoughts from the root ancestor down to the given
// thought, or an empty path for an unknown id.
func (s *ThoughtService) Path(thoughtID string) []*domain.Thought {
	return s.store.PathTo(thoughtID)
}

// Get looks up a single thought.
func (s *ThoughtService) Get(thoughtID string) (*domain.Thought, bool) {
	return s.store.GetByID(thoughtID)
}

func sessionOrDefault(sessionID string) string {
	if sessionID == "" {
		return domain.DefaultSessionID
	}
	return sessionID
}
