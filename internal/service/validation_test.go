package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noemalabs/noema/internal/analysis"
)

func newTestValidator() *ValidationService {
	return NewValidationService(analysis.NewTermVectorizer(), testLogger())
}

func TestDetectBiases_RequiresMarkersAndContext(t *testing.T) {
	v := newTestValidator()
	cat := enCatalog()

	// One marker, no cue.
	assert.Empty(t, v.DetectBiases("This is obviously true.", cat))

	// Three markers but no contextual cue.
	assert.Empty(t, v.DetectBiases("It always works, never fails, absolutely reliable.", cat))

	// A cue without enough markers.
	assert.Empty(t, v.DetectBiases("An assertion without evidence was made.", cat))
}

func TestDetectBiases_ConfirmationBias(t *testing.T) {
	v := newTestValidator()

	biases := v.DetectBiases("He is always right and never wrong, a pure assertion without evidence.", enCatalog())

	assert.Contains(t, biases, "confirmation bias")
}

func TestDetectBiases_NeutralTextClean(t *testing.T) {
	v := newTestValidator()

	biases := v.DetectBiases("The measurement suggests a moderate correlation between the variables.", enCatalog())

	assert.Empty(t, biases)
}

func TestCheckConsistency_TooFewThoughts(t *testing.T) {
	v := newTestValidator()

	report := v.CheckConsistency([]string{"single thought"}, enCatalog())

	assert.True(t, report.Consistent)
	assert.Empty(t, report.Conflicts)
	assert.Empty(t, report.SimilarityMatrix)
}

func TestCheckConsistency_NilSimilarityDegrades(t *testing.T) {
	v := NewValidationService(nil, testLogger())

	report := v.CheckConsistency([]string{"first claim", "second claim"}, enCatalog())

	assert.True(t, report.Consistent)
	assert.Empty(t, report.Conflicts)
}

func TestCheckConsistency_DetectsContradiction(t *testing.T) {
	v := newTestValidator()

	report := v.CheckConsistency([]string{
		"impossible deadline given resource scarcity",
		"completion looks possible with our new team",
	}, enCatalog())

	require.Len(t, report.Conflicts, 1)
	assert.False(t, report.Consistent)

	conflict := report.Conflicts[0]
	assert.Equal(t, [2]int{0, 1}, conflict.Thoughts)
	assert.Equal(t, "semantic_contradiction", conflict.Type)
	assert.InDelta(t, 1.0, conflict.Confidence, 1e-9, "disjoint vocabularies give zero similarity")
}

func TestCheckConsistency_SimilarTextsSuppressConflict(t *testing.T) {
	v := newTestValidator()

	// The contradiction pair is present but the thoughts share most of their
	// vocabulary, so they read as restatements rather than conflicts.
	report := v.CheckConsistency([]string{
		"the launch date is impossible for the team this quarter",
		"the launch date is possible for the team this quarter",
	}, enCatalog())

	assert.True(t, report.Consistent)
	assert.Empty(t, report.Conflicts)
}

func TestCheckConsistency_DegenerateInputDegrades(t *testing.T) {
	v := newTestValidator()

	report := v.CheckConsistency([]string{"...", "!!!"}, enCatalog())

	assert.True(t, report.Consistent)
	assert.Empty(t, report.Conflicts)
}

func TestCheckConsistency_MatrixShape(t *testing.T) {
	v := newTestValidator()
	texts := []string{"alpha beta", "gamma delta", "alpha gamma"}

	report := v.CheckConsistency(texts, enCatalog())

	require.Len(t, report.SimilarityMatrix, 3)
	for i := range report.SimilarityMatrix {
		require.Len(t, report.SimilarityMatrix[i], 3)
		assert.Equal(t, 1.0, report.SimilarityMatrix[i][i])
	}
}
