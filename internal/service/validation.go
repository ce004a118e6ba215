package service

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
)

const (
	// BiasMarkerThreshold is the minimum number of literal marker hits a bias
	// pattern needs before it can fire; a contextual cue is also required.
	BiasMarkerThreshold = 2

	// ConflictSimilarityThreshold: a contradiction-word pair only counts as a
	// conflict when the two thoughts are lexically dissimilar below this.
	ConflictSimilarityThreshold = 0.3
)

// Conflict is one detected contradiction between two thoughts, identified by
// their positions in the analyzed slice.
type Conflict struct {
	Thoughts   [2]int  `json:"thoughts"`
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

// ConsistencyReport is the outcome of the pairwise consistency check.
type ConsistencyReport struct {
	Consistent       bool        `json:"consistent"`
	Conflicts        []Conflict  `json:"conflicts"`
	SimilarityMatrix [][]float64 `json:"similarity_matrix"`
}

func emptyConsistency() ConsistencyReport {
	return ConsistencyReport{Consistent: true, Conflicts: []Conflict{}, SimilarityMatrix: [][]float64{}}
}

// ValidationService runs the cognitive checks: bias detection on single
// thoughts and logical consistency across a set of thoughts.
type ValidationService struct {
	similarity domain.SimilarityProvider
	logger     *zap.Logger
}

// NewValidationService builds the validator. A nil similarity provider
// disables the consistency check; it then always reports consistent.
func NewValidationService(similarity domain.SimilarityProvider, logger *zap.Logger) *ValidationService {
	return &ValidationService{similarity: similarity, logger: logger}
}

// DetectBiases returns the names of cognitive bias patterns present in the
// text. A pattern fires only on at least BiasMarkerThreshold marker hits
// together with at least one contextual cue, so a stray strong word alone
// never flags a bias.
func (s *ValidationService) DetectBiases(content string, cat *catalog.Catalog) []string {
	lower := strings.ToLower(content)
	var detected []string
	for _, bias := range cat.Biases {
		markerCount := 0
		for _, marker := range bias.Markers {
			if strings.Contains(lower, marker) {
				markerCount++
			}
		}
		if markerCount < BiasMarkerThreshold {
			continue
		}
		if containsAny(lower, bias.Context) {
			detected = append(detected, bias.Name)
		}
	}
	return detected
}

// CheckConsistency compares every thought pair for semantic contradictions:
// a (negative, positive) contradiction word pair split across two thoughts
// that are lexically dissimilar. Fewer than two thoughts, a disabled
// similarity capability, or token-free input all degrade to a consistent
// report rather than an error.
func (s *ValidationService) CheckConsistency(contents []string, cat *catalog.Catalog) ConsistencyReport {
	if s.similarity == nil || len(contents) < 2 {
		return emptyConsistency()
	}

	matrix, err := s.similarity.SimilarityMatrix(contents)
	if err != nil {
		if !errors.Is(err, domain.ErrDegenerateInput) {
			s.logger.Error("consistency check failed", zap.Error(err))
		}
		return emptyConsistency()
	}

	conflicts := []Conflict{}
	for i := range contents {
		lowerA := strings.ToLower(contents[i])
		for j := i + 1; j < len(contents); j++ {
			lowerB := strings.ToLower(contents[j])
			for _, pair := range cat.ContradictionPairs {
				if strings.Contains(lowerA, pair.Negative) && strings.Contains(lowerB, pair.Positive) {
					if matrix[i][j] < ConflictSimilarityThreshold {
						conflicts = append(conflicts, Conflict{
							Thoughts:   [2]int{i, j},
							Type:       cat.T("conflict_semantic_contradiction"),
							Confidence: 1.0 - matrix[i][j],
						})
					}
				}
			}
		}
	}

	return ConsistencyReport{
		Consistent:       len(conflicts) == 0,
		Conflicts:        conflicts,
		SimilarityMatrix: matrix,
	}
}
