package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	app := NewApp(nil, zap.NewNop())
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	// Generate one counted request first.
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.GreaterOrEqual(t, body["request_count"].(float64), 1.0)
	assert.Contains(t, body, "goroutines")
	assert.Contains(t, body, "memory")
}

func TestCreateThought(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/thoughts", map[string]any{
		"content":  "The data clearly shows 95% improvement, therefore we should proceed.",
		"type":     "analysis",
		"strategy": "analytical",
		"tags":     []string{"decision"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "thought_1", body["thought_id"])

	analysis := body["analysis"].(map[string]any)
	metrics := analysis["quality_metrics"].(map[string]any)
	assert.Greater(t, metrics["evidence_strength"].(float64), 0.0)
	assert.Greater(t, metrics["logical_coherence"].(float64), 0.0)
	assert.Equal(t, "HIGH", metrics["confidence_level"])

	metadata := body["metadata"].(map[string]any)
	assert.Equal(t, "analysis", metadata["thought_type"])
	assert.Equal(t, "analytical", metadata["strategy"])
	assert.NotEmpty(t, body["strategy_description"])
}

func TestCreateThought_EmptyContent(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/thoughts", map[string]any{"content": "   "})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body, "error")
}

func TestCreateThought_InvalidStrategy(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/thoughts", map[string]any{
		"content":  "valid content",
		"strategy": "telepathic",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestThoughtPath(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/thoughts", map[string]any{"content": "the root observation"})
	root := decodeBody(t, resp)
	rootID := root["thought_id"].(string)

	resp = postJSON(t, srv.URL+"/v1/thoughts", map[string]any{
		"content":   "a child hypothesis",
		"type":      "hypothesis",
		"parent_id": rootID,
	})
	child := decodeBody(t, resp)
	childID := child["thought_id"].(string)

	resp, err := http.Get(srv.URL + "/v1/thoughts/" + childID + "/path")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(2), body["path_length"])

	path := body["path"].([]any)
	require.Len(t, path, 2)
	first := path[0].(map[string]any)
	assert.Equal(t, rootID, first["thought_id"])
	assert.Equal(t, float64(1), first["step"])
}

func TestThoughtPath_UnknownID(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/thoughts/thought_999/path")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Contains(t, body["error"], "thought_999")
	assert.Empty(t, body["path"])
}

func TestSessionAnalysis(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/thoughts", map[string]any{
		"content":    "monitoring confirms the rollout is stable",
		"session_id": "rollout",
	})
	resp.Body.Close()

	resp, err := http.Get(srv.URL + "/v1/sessions/rollout/analysis")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, 1.0, body["coherence_score"])
	assert.Equal(t, float64(1), body["thought_count"])
}

func TestSessionAnalysis_UnknownSession(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/sessions/ghost/analysis")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionExport_EmptyDefault(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/sessions/default/export?format=structured")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, float64(0), body["thought_count"])
	assert.Empty(t, body["thoughts"])
}

func TestSessionExport_UnsupportedFormat(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/sessions/default/export?format=yaml")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCognitiveReflect(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/thoughts", map[string]any{
		"content":    "evaluating the migration plan step by step",
		"session_id": "migration",
	})
	resp.Body.Close()

	resp = postJSON(t, srv.URL+"/v1/cognitive/reflect", map[string]any{
		"session_id": "migration",
		"focus_area": "planning",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "planning", body["focus_area"])
	assert.Equal(t, float64(3), body["analysis_depth"])
	assert.Contains(t, body, "thinking_patterns")
	assert.Contains(t, body, "recommendations")
}

func TestCognitiveReflect_InvalidDepth(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/cognitive/reflect", map[string]any{
		"analysis_depth": 9,
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCognitiveStrategy(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/cognitive/strategy", map[string]any{
		"current_strategy":    "linear",
		"effectiveness_score": 0.3,
		"context":             "the requirements are unclear and possibly contradictory",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, 0.3, body["current_effectiveness"])

	suggestions := body["suggested_strategies"].([]any)
	assert.NotEmpty(t, suggestions)
	assert.NotEmpty(t, body["reasoning"])

	ctx := body["context_analysis"].(map[string]any)
	assert.Greater(t, ctx["ambiguity"].(float64), 0.0)
}

func TestCognitiveStrategy_MissingScore(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/v1/cognitive/strategy", map[string]any{
		"current_strategy": "linear",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "effectiveness_score is required", body["error"])
}
