package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/service"
)

const defaultAnalysisDepth = 3

type CognitiveHandler struct {
	metacognitive *service.MetacognitiveService
	strategy      *service.StrategyService
	defaultLang   string
}

func NewCognitiveHandler(metacognitive *service.MetacognitiveService, strategy *service.StrategyService, defaultLang string) *CognitiveHandler {
	return &CognitiveHandler{metacognitive: metacognitive, strategy: strategy, defaultLang: defaultLang}
}

type reflectRequest struct {
	FocusArea string `json:"focus_area"`
	SessionID string `json:"session_id,omitempty"`
	Depth     int    `json:"analysis_depth,omitempty"`
	Language  string `json:"language,omitempty"`
}

// Reflect runs the metacognitive analysis over a session.
func (h *CognitiveHandler) Reflect(w http.ResponseWriter, r *http.Request) {
	var req reflectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cat := h.resolveCatalog(req.Language)

	if req.Depth == 0 {
		req.Depth = defaultAnalysisDepth
	}

	analysis, err := h.metacognitive.Reflect(req.SessionID, req.FocusArea, req.Depth, cat)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDepth) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "metacognitive analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

type adaptStrategyRequest struct {
	CurrentStrategy    string   `json:"current_strategy"`
	EffectivenessScore *float64 `json:"effectiveness_score"`
	Context            string   `json:"context"`
	Constraints        []string `json:"constraints,omitempty"`
	Language           string   `json:"language,omitempty"`
}

// AdaptStrategy records the current strategy's effectiveness and returns
// ranked next-strategy recommendations.
func (h *CognitiveHandler) AdaptStrategy(w http.ResponseWriter, r *http.Request) {
	var req adaptStrategyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	cat := h.resolveCatalog(req.Language)

	if !domain.ValidThinkingStrategy(req.CurrentStrategy) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid thinking strategy: %s", req.CurrentStrategy))
		return
	}
	if req.EffectivenessScore == nil {
		writeError(w, http.StatusBadRequest, "effectiveness_score is required")
		return
	}

	advice, err := h.strategy.Suggest(
		domain.ThinkingStrategy(req.CurrentStrategy),
		*req.EffectivenessScore,
		req.Context,
		req.Constraints,
		cat,
	)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidEffectiveness) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "strategy adaptation failed")
		return
	}
	writeJSON(w, http.StatusOK, advice)
}

func (h *CognitiveHandler) resolveCatalog(lang string) *catalog.Catalog {
	if lang == "" {
		lang = h.defaultLang
	}
	return catalog.ForLanguage(lang)
}
