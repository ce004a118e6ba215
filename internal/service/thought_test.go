package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noemalabs/noema/internal/analysis"
	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/store"
)

// recordingArchiver captures archive calls for assertions.
type recordingArchiver struct {
	mu       sync.Mutex
	archived []archivedCall
}

type archivedCall struct {
	sessionID string
	thought   domain.Thought
	embedding []float32
}

func (r *recordingArchiver) ArchiveThought(_ context.Context, sessionID string, t *domain.Thought, embedding []float32) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.archived = append(r.archived, archivedCall{sessionID: sessionID, thought: *t, embedding: embedding})
	return nil
}

func (r *recordingArchiver) calls() []archivedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]archivedCall(nil), r.archived...)
}

func newTestThoughtService(archiver *ArchiverService) (*ThoughtService, *store.GraphStore) {
	graph := store.NewGraphStore()
	svc := NewThoughtService(graph, newTestQuality(), newTestValidator(), archiver, testLogger())
	return svc, graph
}

func defaultInput(content string) CreateThoughtInput {
	return CreateThoughtInput{
		Content:           content,
		Type:              domain.ThoughtAnalysis,
		Strategy:          domain.StrategyLinear,
		RequestAnalysis:   true,
		RequestValidation: true,
	}
}

func TestCreate_EmptyContent(t *testing.T) {
	svc, _ := newTestThoughtService(nil)

	for _, content := range []string{"", "   ", "\t\n"} {
		_, err := svc.Create(defaultInput(content), enCatalog())
		assert.ErrorIs(t, err, domain.ErrEmptyContent, "content %q", content)
	}
}

func TestCreate_AnalyzesAndStores(t *testing.T) {
	svc, graph := newTestThoughtService(nil)

	created, err := svc.Create(defaultInput("The data clearly shows 95% improvement, therefore we should proceed."), enCatalog())

	require.NoError(t, err)
	assert.Equal(t, "thought_1", created.ID)
	assert.Greater(t, created.Metrics.EvidenceStrength, 0.0)
	assert.Equal(t, domain.ConfidenceHigh, created.Metrics.ConfidenceLevel)

	stored, ok := graph.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Metrics, stored.Metrics)
}

func TestCreate_ConfidenceOverride(t *testing.T) {
	svc, _ := newTestThoughtService(nil)

	in := defaultInput("The data clearly shows 95% improvement, therefore we should proceed.")
	in.Confidence = domain.ConfidenceVeryLow

	created, err := svc.Create(in, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, domain.ConfidenceVeryLow, created.Metrics.ConfidenceLevel)
}

func TestCreate_SkipsAnalysisWhenNotRequested(t *testing.T) {
	svc, _ := newTestThoughtService(nil)

	in := defaultInput("The data clearly shows 95% improvement, therefore we should proceed.")
	in.RequestAnalysis = false
	in.RequestValidation = false

	created, err := svc.Create(in, enCatalog())

	require.NoError(t, err)
	assert.Equal(t, domain.NewThoughtMetrics(), created.Metrics)
	assert.Empty(t, created.CognitiveBiases)
}

func TestCreate_SealsDetectedBiases(t *testing.T) {
	svc, _ := newTestThoughtService(nil)

	created, err := svc.Create(defaultInput("He is always right and never wrong, a pure assertion without evidence."), enCatalog())

	require.NoError(t, err)
	assert.Contains(t, created.CognitiveBiases, "confirmation bias")
}

func TestCreate_ArchivesSnapshot(t *testing.T) {
	backend := &recordingArchiver{}
	archiver := NewArchiverService(backend, analysis.NewTermVectorizer(), testLogger())
	archiver.Start()
	defer archiver.Stop()

	svc, _ := newTestThoughtService(archiver)

	in := defaultInput("a thought worth keeping")
	in.SessionID = "s1"
	created, err := svc.Create(in, enCatalog())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(backend.calls()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	call := backend.calls()[0]
	assert.Equal(t, "s1", call.sessionID)
	assert.Equal(t, created.ID, call.thought.ID)
	assert.Len(t, call.embedding, 64)
}

func TestCreate_ArchiveSessionDefaults(t *testing.T) {
	backend := &recordingArchiver{}
	archiver := NewArchiverService(backend, nil, testLogger())
	archiver.Start()
	defer archiver.Stop()

	svc, _ := newTestThoughtService(archiver)

	_, err := svc.Create(defaultInput("no session named"), enCatalog())
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(backend.calls()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	call := backend.calls()[0]
	assert.Equal(t, domain.DefaultSessionID, call.sessionID)
	assert.Nil(t, call.embedding)
}

func TestPath_WalksAncestry(t *testing.T) {
	svc, _ := newTestThoughtService(nil)

	root, err := svc.Create(defaultInput("root"), enCatalog())
	require.NoError(t, err)

	in := defaultInput("child")
	in.ParentID = root.ID
	child, err := svc.Create(in, enCatalog())
	require.NoError(t, err)

	path := svc.Path(child.ID)
	require.Len(t, path, 2)
	assert.Equal(t, root.ID, path[0].ID)
	assert.Equal(t, child.ID, path[1].ID)

	assert.Empty(t, svc.Path("thought_999"))
}
