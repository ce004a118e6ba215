package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/store"
)

func newTestSession() (*SessionService, *store.GraphStore) {
	graph := store.NewGraphStore()
	svc := NewSessionService(graph, newTestValidator(), testLogger())
	return svc, graph
}

func seedThought(graph *store.GraphStore, sessionID, content string, metrics domain.ThoughtMetrics, biases ...string) *domain.Thought {
	return graph.Create(domain.ThoughtDraft{
		Content:         content,
		Type:            domain.ThoughtAnalysis,
		Strategy:        domain.StrategyLinear,
		Metrics:         &metrics,
		CognitiveBiases: biases,
	}, sessionID)
}

func metricsWithQuality(clarity, coherence, evidence float64) domain.ThoughtMetrics {
	m := domain.NewThoughtMetrics()
	m.ClarityScore = clarity
	m.LogicalCoherence = coherence
	m.EvidenceStrength = evidence
	return m
}

func TestAnalyzeCoherence_UnknownSession(t *testing.T) {
	svc, _ := newTestSession()

	_, err := svc.AnalyzeCoherence("ghost", enCatalog())

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestAnalyzeCoherence_EmptyDefaultSession(t *testing.T) {
	svc, _ := newTestSession()

	analysis, err := svc.AnalyzeCoherence("", enCatalog())

	require.NoError(t, err)
	assert.Equal(t, 0.0, analysis.CoherenceScore)
	assert.Equal(t, "No thoughts to analyze", analysis.Analysis)
	assert.Zero(t, analysis.ThoughtCount)
}

func TestAnalyzeCoherence_NoConflictsFullScore(t *testing.T) {
	svc, graph := newTestSession()
	seedThought(graph, "s1", "the plan improves reliability", metricsWithQuality(0.6, 0.3, 0.0))
	seedThought(graph, "s1", "monitoring confirms the gains", metricsWithQuality(0.9, 0.6, 0.3))

	analysis, err := svc.AnalyzeCoherence("s1", enCatalog())

	require.NoError(t, err)
	assert.Equal(t, 1.0, analysis.CoherenceScore)
	require.NotNil(t, analysis.ConsistencyAnalysis)
	assert.True(t, analysis.ConsistencyAnalysis.Consistent)
	assert.Equal(t, 2, analysis.ThoughtCount)

	// quality per thought: (0.6+0.3+0)/3 = 0.3 and (0.9+0.6+0.3)/3 = 0.6
	assert.InDelta(t, 0.3, analysis.QualityTrend, 1e-9)
	assert.InDelta(t, 0.45, analysis.AverageQuality, 1e-9)
}

func TestAnalyzeCoherence_ConflictLowersScore(t *testing.T) {
	svc, graph := newTestSession()
	seedThought(graph, "s1", "impossible deadline given resource scarcity", domain.NewThoughtMetrics())
	seedThought(graph, "s1", "completion looks possible with our new team", domain.NewThoughtMetrics())

	analysis, err := svc.AnalyzeCoherence("s1", enCatalog())

	require.NoError(t, err)
	assert.InDelta(t, 0.5, analysis.CoherenceScore, 1e-9)
	assert.False(t, analysis.ConsistencyAnalysis.Consistent)
}

func TestAnalyzeCoherence_CountsBiases(t *testing.T) {
	svc, graph := newTestSession()
	seedThought(graph, "s1", "first", domain.NewThoughtMetrics(), "confirmation bias")
	seedThought(graph, "s1", "second", domain.NewThoughtMetrics(), "confirmation bias", "emotional reasoning")

	analysis, err := svc.AnalyzeCoherence("s1", enCatalog())

	require.NoError(t, err)
	assert.Equal(t, 3, analysis.CognitiveBiasesDetected)
}

func TestExport_UnsupportedFormat(t *testing.T) {
	svc, _ := newTestSession()

	_, err := svc.Export("", "yaml", enCatalog())

	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestExport_UnknownSession(t *testing.T) {
	svc, _ := newTestSession()

	_, err := svc.Export("ghost", FormatStructured, enCatalog())

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestExport_EmptyDefaultSessionStructured(t *testing.T) {
	svc, _ := newTestSession()

	export, err := svc.Export("", FormatStructured, enCatalog())

	require.NoError(t, err)
	structured, ok := export.(StructuredExport)
	require.True(t, ok)
	assert.Equal(t, domain.DefaultSessionID, structured.SessionID)
	assert.Zero(t, structured.ThoughtCount)
	assert.Empty(t, structured.Thoughts)
}

func TestExport_StructuredCarriesConnections(t *testing.T) {
	svc, graph := newTestSession()
	parent := seedThought(graph, "s1", "root idea", domain.NewThoughtMetrics())
	graph.Create(domain.ThoughtDraft{
		Content:  "child idea",
		Type:     domain.ThoughtHypothesis,
		Strategy: domain.StrategyTree,
		ParentID: parent.ID,
		Supports: []string{parent.ID},
	}, "s1")

	export, err := svc.Export("s1", FormatStructured, enCatalog())

	require.NoError(t, err)
	structured := export.(StructuredExport)
	require.Len(t, structured.Thoughts, 2)

	root := structured.Thoughts[0]
	child := structured.Thoughts[1]
	assert.Equal(t, []string{child.ID}, root.Connections.Children)
	assert.Equal(t, parent.ID, child.Connections.Parent)
	assert.Equal(t, []string{parent.ID}, child.Connections.Supports)
}

func TestExport_Narrative(t *testing.T) {
	svc, graph := newTestSession()
	seedThought(graph, "s1", "a memorable observation", metricsWithQuality(0.5, 0.5, 0.5), "confirmation bias")

	export, err := svc.Export("s1", FormatNarrative, enCatalog())

	require.NoError(t, err)
	narrative, ok := export.(NarrativeExport)
	require.True(t, ok)
	assert.Equal(t, FormatNarrative, narrative.Format)
	assert.True(t, strings.HasPrefix(narrative.Content, "# Thinking Session Export"))
	assert.Contains(t, narrative.Content, "a memorable observation")
	assert.Contains(t, narrative.Content, "confirmation bias")
	assert.Contains(t, narrative.Content, "### 1. Analysis")
}

func TestExport_Summary(t *testing.T) {
	svc, graph := newTestSession()
	seedThought(graph, "s1", "weak start", metricsWithQuality(0.2, 0.2, 0.2))
	seedThought(graph, "s1", "strong finish", metricsWithQuality(0.8, 0.8, 0.8))

	export, err := svc.Export("s1", FormatSummary, enCatalog())

	require.NoError(t, err)
	summary, ok := export.(SummaryExport)
	require.True(t, ok)
	assert.Equal(t, 2, summary.SessionSummary.TotalThoughts)
	assert.Greater(t, summary.SessionSummary.QualityTrend, 0.0)

	require.Len(t, summary.KeyInsights, 3)
	assert.Contains(t, summary.KeyInsights[0], "Processed 2 thoughts")
	assert.Contains(t, summary.KeyInsights[1], "Improving")
}

func TestValidExportFormat(t *testing.T) {
	for _, format := range []string{FormatStructured, FormatNarrative, FormatSummary} {
		if !ValidExportFormat(format) {
			t.Errorf("format %q should be valid", format)
		}
	}
	if ValidExportFormat("json") {
		t.Error("json is not an exposed format name")
	}
}
