package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/service"
)

type ThoughtHandler struct {
	svc         *service.ThoughtService
	defaultLang string
}

func NewThoughtHandler(svc *service.ThoughtService, defaultLang string) *ThoughtHandler {
	return &ThoughtHandler{svc: svc, defaultLang: defaultLang}
}

type createThoughtRequest struct {
	Content           string   `json:"content"`
	Type              string   `json:"type,omitempty"`
	Strategy          string   `json:"strategy,omitempty"`
	ParentID          string   `json:"parent_id,omitempty"`
	RevisionOf        string   `json:"revision_of,omitempty"`
	BranchID          string   `json:"branch_id,omitempty"`
	Supports          []string `json:"supports,omitempty"`
	Contradicts       []string `json:"contradicts,omitempty"`
	BuildsOn          []string `json:"builds_on,omitempty"`
	Tags              []string `json:"tags,omitempty"`
	Confidence        string   `json:"confidence,omitempty"`
	SessionID         string   `json:"session_id,omitempty"`
	Language          string   `json:"language,omitempty"`
	RequestAnalysis   *bool    `json:"request_analysis,omitempty"`
	RequestValidation *bool    `json:"request_validation,omitempty"`
}

type thoughtConnections struct {
	Supports    []string `json:"supports"`
	Contradicts []string `json:"contradicts"`
	BuildsOn    []string `json:"builds_on"`
	Children    []string `json:"children"`
}

type thoughtAnalysis struct {
	QualityMetrics  domain.ThoughtMetrics `json:"quality_metrics"`
	CognitiveBiases []string              `json:"cognitive_biases"`
	Connections     thoughtConnections    `json:"connections"`
}

type thoughtMetadata struct {
	Type      domain.ThoughtType      `json:"thought_type"`
	Strategy  domain.ThinkingStrategy `json:"strategy"`
	Timestamp time.Time               `json:"timestamp"`
	Tags      []string                `json:"tags"`
}

type createThoughtResponse struct {
	ThoughtID           string          `json:"thought_id"`
	Analysis            thoughtAnalysis `json:"analysis"`
	Metadata            thoughtMetadata `json:"metadata"`
	StrategyDescription string          `json:"strategy_description"`
}

func (h *ThoughtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createThoughtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cat := h.resolveCatalog(req.Language)

	thoughtType := domain.ThoughtAnalysis
	if req.Type != "" {
		if !domain.ValidThoughtType(req.Type) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid thought type: %s", req.Type))
			return
		}
		thoughtType = domain.ThoughtType(req.Type)
	}

	strategy := domain.StrategyLinear
	if req.Strategy != "" {
		if !domain.ValidThinkingStrategy(req.Strategy) {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid thinking strategy: %s", req.Strategy))
			return
		}
		strategy = domain.ThinkingStrategy(req.Strategy)
	}

	var confidence domain.ConfidenceLevel
	if req.Confidence != "" {
		level, ok := domain.ParseConfidenceLevel(req.Confidence)
		if !ok {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid confidence level: %s", req.Confidence))
			return
		}
		confidence = level
	}

	input := service.CreateThoughtInput{
		Content:           req.Content,
		Type:              thoughtType,
		Strategy:          strategy,
		ParentID:          req.ParentID,
		RevisionOf:        req.RevisionOf,
		BranchID:          req.BranchID,
		Supports:          req.Supports,
		Contradicts:       req.Contradicts,
		BuildsOn:          req.BuildsOn,
		Tags:              req.Tags,
		Confidence:        confidence,
		SessionID:         req.SessionID,
		RequestAnalysis:   boolOrDefault(req.RequestAnalysis, true),
		RequestValidation: boolOrDefault(req.RequestValidation, true),
	}

	thought, err := h.svc.Create(input, cat)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyContent) {
			writeError(w, http.StatusBadRequest, cat.T("error_empty_thought"))
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create thought")
		return
	}

	writeJSON(w, http.StatusCreated, createThoughtResponse{
		ThoughtID: thought.ID,
		Analysis: thoughtAnalysis{
			QualityMetrics:  thought.Metrics,
			CognitiveBiases: emptyIfNil(thought.CognitiveBiases),
			Connections: thoughtConnections{
				Supports:    emptyIfNil(thought.Supports),
				Contradicts: emptyIfNil(thought.Contradicts),
				BuildsOn:    emptyIfNil(thought.BuildsOn),
				Children:    emptyIfNil(thought.ChildrenIDs),
			},
		},
		Metadata: thoughtMetadata{
			Type:      thought.Type,
			Strategy:  thought.Strategy,
			Timestamp: thought.Timestamp,
			Tags:      emptyIfNil(thought.Tags),
		},
		StrategyDescription: cat.Description(thought.Strategy),
	})
}

type pathStep struct {
	Step         int                     `json:"step"`
	ThoughtID    string                  `json:"thought_id"`
	Content      string                  `json:"content"`
	Type         domain.ThoughtType      `json:"type"`
	Strategy     domain.ThinkingStrategy `json:"strategy"`
	QualityScore float64                 `json:"quality_score"`
}

type pathResponse struct {
	ThoughtID  string     `json:"thought_id"`
	PathLength int        `json:"path_length"`
	Path       []pathStep `json:"path"`
}

// GetPath walks the ancestry chain of a thought. An unknown id is reported
// inside a 200 payload with an empty path, not as an HTTP failure.
func (h *ThoughtHandler) GetPath(w http.ResponseWriter, r *http.Request) {
	thoughtID := chi.URLParam(r, "id")
	cat := h.resolveCatalog(r.URL.Query().Get("language"))

	path := h.svc.Path(thoughtID)
	if len(path) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{
			"error": fmt.Sprintf(cat.T("error_thought_not_found"), thoughtID),
			"path":  []pathStep{},
		})
		return
	}

	steps := make([]pathStep, 0, len(path))
	for i, t := range path {
		steps = append(steps, pathStep{
			Step:         i + 1,
			ThoughtID:    t.ID,
			Content:      t.Content,
			Type:         t.Type,
			Strategy:     t.Strategy,
			QualityScore: t.Metrics.QualityScore(),
		})
	}
	writeJSON(w, http.StatusOK, pathResponse{
		ThoughtID:  thoughtID,
		PathLength: len(path),
		Path:       steps,
	})
}

func (h *ThoughtHandler) resolveCatalog(lang string) *catalog.Catalog {
	if lang == "" {
		lang = h.defaultLang
	}
	return catalog.ForLanguage(lang)
}

func boolOrDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
