// Package analysis implements the optional text-analysis capabilities:
// readability scoring and term-frequency vector similarity. Both are local
// computations behind a provider factory so the engine degrades to its
// documented fallback heuristics when a capability is switched off.
package analysis

import (
	"fmt"

	"github.com/noemalabs/noema/internal/domain"
)

// Provider constants
const (
	ProviderLocal = "local"
	ProviderNone  = "none"
)

// NewReadability creates a readability scorer based on the provider name.
// ProviderNone returns (nil, nil): a nil scorer means the capability is
// absent and callers must take the fallback path.
func NewReadability(provider string) (domain.ReadabilityScorer, error) {
	switch provider {
	case ProviderLocal:
		return NewFleschScorer(), nil
	case ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown analysis provider: %s (valid options: local, none)", provider)
	}
}

// NewSimilarity creates a vector similarity provider based on the provider
// name. ProviderNone returns (nil, nil) with the same contract as above.
func NewSimilarity(provider string) (domain.SimilarityProvider, error) {
	switch provider {
	case ProviderLocal:
		return NewTermVectorizer(), nil
	case ProviderNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown analysis provider: %s (valid options: local, none)", provider)
	}
}
