package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noemalabs/noema/internal/domain"
)

func suggestedStrategies(advice StrategyAdvice) []domain.ThinkingStrategy {
	out := make([]domain.ThinkingStrategy, len(advice.SuggestedStrategies))
	for i, s := range advice.SuggestedStrategies {
		out[i] = s.Strategy
	}
	return out
}

func TestSuggest_RejectsInvalidEffectiveness(t *testing.T) {
	svc := NewStrategyService(testLogger())

	for _, eff := range []float64{-0.1, 1.1, 2.0, math.NaN()} {
		_, err := svc.Suggest(domain.StrategyLinear, eff, "", nil, enCatalog())
		assert.ErrorIs(t, err, domain.ErrInvalidEffectiveness, "effectiveness %v", eff)
	}

	// Rejected scores must not leak into the effectiveness history.
	assert.Equal(t, 0, svc.HistoryLen())
}

func TestSuggest_HistoryCapped(t *testing.T) {
	svc := NewStrategyService(testLogger())

	for i := 0; i < 25; i++ {
		_, err := svc.Suggest(domain.StrategyLinear, 0.1, "", nil, enCatalog())
		require.NoError(t, err)
	}

	assert.Equal(t, StrategyHistoryCap, svc.HistoryLen())
}

func TestSuggest_LowEffectivenessFallback(t *testing.T) {
	svc := NewStrategyService(testLogger())

	advice, err := svc.Suggest(domain.StrategyLinear, 0.2, "", nil, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, []domain.ThinkingStrategy{
		domain.StrategyTree, domain.StrategyDialectical, domain.StrategyMetacognitive,
	}, suggestedStrategies(advice))
	assert.Equal(t, 0.2, advice.CurrentEffectiveness)
	assert.Equal(t, "Recommendations are based on context analysis and effectiveness history", advice.Reasoning)
}

func TestSuggest_ModerateEffectivenessFallback(t *testing.T) {
	svc := NewStrategyService(testLogger())

	advice, err := svc.Suggest(domain.StrategyLinear, 0.6, "", nil, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, []domain.ThinkingStrategy{
		domain.StrategySystematic, domain.StrategyAnalytical,
	}, suggestedStrategies(advice))
}

func TestSuggest_HighEffectivenessFallback(t *testing.T) {
	svc := NewStrategyService(testLogger())

	// Exactly at the success threshold: the just-recorded entry does not
	// count as previously effective, and neither fallback band matches.
	advice, err := svc.Suggest(domain.StrategyLinear, 0.7, "", nil, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, []domain.ThinkingStrategy{
		domain.StrategyCreative, domain.StrategyDivergent,
	}, suggestedStrategies(advice))
}

func TestSuggest_SuccessfulHistoryRepeated(t *testing.T) {
	svc := NewStrategyService(testLogger())

	advice, err := svc.Suggest(domain.StrategyTree, 0.9, "", nil, enCatalog())

	require.NoError(t, err)
	require.Len(t, advice.SuggestedStrategies, 1)
	assert.Equal(t, domain.StrategyTree, advice.SuggestedStrategies[0].Strategy)
	assert.Equal(t, "This strategy was effective in similar situations", advice.SuggestedStrategies[0].Reason)
}

func TestSuggest_HistorySuggestionsCapped(t *testing.T) {
	svc := NewStrategyService(testLogger())
	_, err := svc.Suggest(domain.StrategyTree, 0.9, "", nil, enCatalog())
	require.NoError(t, err)
	_, err = svc.Suggest(domain.StrategyCreative, 0.8, "", nil, enCatalog())
	require.NoError(t, err)

	advice, err := svc.Suggest(domain.StrategyLateral, 0.95, "", nil, enCatalog())

	require.NoError(t, err)
	assert.Len(t, advice.SuggestedStrategies, MaxHistorySuggestions)
}

func TestSuggest_ComplexContext(t *testing.T) {
	svc := NewStrategyService(testLogger())
	context := "absolutely fantastic engineering remarkable considerable wonderful developing architecture"

	advice, err := svc.Suggest(domain.StrategyLinear, 0.6, context, nil, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, 1.0, advice.ContextAnalysis.Complexity)
	assert.Equal(t, []domain.ThinkingStrategy{
		domain.StrategySystemic, domain.StrategyAnalytical,
	}, suggestedStrategies(advice))
}

func TestSuggest_AmbiguousContext(t *testing.T) {
	svc := NewStrategyService(testLogger())

	advice, err := svc.Suggest(domain.StrategyLinear, 0.6, "unclear or vague if ambiguous", nil, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, 1.0, advice.ContextAnalysis.Ambiguity)
	assert.Equal(t, []domain.ThinkingStrategy{
		domain.StrategyCritical, domain.StrategyDialectical,
	}, suggestedStrategies(advice))
}

func TestSuggest_EmotionalContext(t *testing.T) {
	svc := NewStrategyService(testLogger())

	advice, err := svc.Suggest(domain.StrategyLinear, 0.6, "terrible failure problem", nil, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, 1.0, advice.ContextAnalysis.EmotionalTone)
	assert.Equal(t, []domain.ThinkingStrategy{
		domain.StrategyEmpathetic, domain.StrategyReflective,
	}, suggestedStrategies(advice))
}

func TestAnalyzeComplexity(t *testing.T) {
	// Eight long words, one unterminated sentence: the raw product saturates.
	unterminated := "absolutely fantastic engineering remarkable considerable wonderful developing architecture"
	assert.Equal(t, 1.0, analyzeComplexity(unterminated))

	// A trailing terminator splits into two pieces, halving the average
	// sentence length: (8/8) * (8/2) / 5 = 0.8.
	assert.InDelta(t, 0.8, analyzeComplexity(unterminated+"."), 1e-9)

	assert.Equal(t, 0.0, analyzeComplexity(""))
	assert.Equal(t, 0.0, analyzeComplexity("   "))
}

func TestAnalyzeEmotionalTone_Balanced(t *testing.T) {
	tone := analyzeEmotionalTone("good bad", enCatalog())
	assert.Equal(t, 0.0, tone)
}

func TestDetectDomain(t *testing.T) {
	cat := enCatalog()

	assert.Equal(t, "programming", detectDomain("fix the bug in the code", cat))
	assert.Equal(t, "business", detectDomain("increase revenue for the client", cat))
	assert.Equal(t, "science", detectDomain("design an experiment to test the theory", cat))
	assert.Equal(t, "general", detectDomain("hello there", cat))
}
