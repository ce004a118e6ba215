package domain

import (
	"context"
	"errors"
)

var (
	ErrEmptyContent         = errors.New("thought content is empty")
	ErrThoughtNotFound      = errors.New("thought not found")
	ErrSessionNotFound      = errors.New("session not found")
	ErrUnsupportedFormat    = errors.New("unsupported export format")
	ErrCapabilityMissing    = errors.New("analysis capability unavailable")
	ErrDegenerateInput      = errors.New("no vocabulary in input texts")
	ErrInvalidDepth         = errors.New("analysis depth must be between 1 and 5")
	ErrInvalidEffectiveness = errors.New("effectiveness must be between 0 and 1")
)

// ThoughtStore owns the canonical thought/session state. Create serializes id
// assignment, parent linking and session append as one critical section.
type ThoughtStore interface {
	Create(draft ThoughtDraft, sessionID string) *Thought
	GetByID(id string) (*Thought, bool)
	Snapshot(id string) (Thought, bool)
	PathTo(id string) []*Thought
	SessionThoughts(sessionID string) ([]*Thought, bool)
	Touch(sessionID string)
	SessionIDs() []string
	Count() int
}

// ReadabilityScorer is the optional text-statistics capability. Score returns
// a Flesch-style reading ease value for the text.
type ReadabilityScorer interface {
	Score(text string) (float64, error)
}

// SimilarityProvider is the optional vector-space capability used by the
// consistency check and the archive embedding.
type SimilarityProvider interface {
	// SimilarityMatrix returns the full pairwise cosine similarity matrix
	// over the given texts.
	SimilarityMatrix(texts []string) ([][]float64, error)
	// Embed maps a text to a fixed-dimension hashed term-frequency vector.
	Embed(text string) []float32
}

// ThoughtArchiver persists thoughts outside the process. Failures are logged
// and never affect engine state.
type ThoughtArchiver interface {
	ArchiveThought(ctx context.Context, sessionID string, t *Thought, embedding []float32) error
}
