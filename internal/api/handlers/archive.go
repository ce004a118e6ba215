package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/store"
)

const defaultSimilarLimit = 5

// ArchiveHandler serves the Postgres thought archive. It is only mounted
// when an archive backend is configured.
type ArchiveHandler struct {
	archive    *store.ArchiveStore
	similarity domain.SimilarityProvider
}

func NewArchiveHandler(archive *store.ArchiveStore, similarity domain.SimilarityProvider) *ArchiveHandler {
	return &ArchiveHandler{archive: archive, similarity: similarity}
}

// Get loads one archived thought by id.
func (h *ArchiveHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	thought, err := h.archive.GetArchived(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "archived thought not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "archive lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, thought)
}

// SessionCount reports how many thoughts a session has archived.
func (h *ArchiveHandler) SessionCount(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	count, err := h.archive.SessionThoughtCount(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "archive count failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session_id":     sessionID,
		"archived_count": count,
	})
}

// Similar finds archived thoughts closest to a query text by embedding
// distance.
func (h *ArchiveHandler) Similar(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}
	if h.similarity == nil {
		writeError(w, http.StatusServiceUnavailable, "similarity capability unavailable")
		return
	}

	limit := defaultSimilarLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	thoughts, err := h.archive.SimilarThoughts(r.Context(), h.similarity.Embed(query), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "archive search failed")
		return
	}
	if thoughts == nil {
		thoughts = []domain.Thought{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"query":    query,
		"thoughts": thoughts,
	})
}
