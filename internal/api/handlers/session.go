package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noemalabs/noema/internal/catalog"
	"github.com/noemalabs/noema/internal/domain"
	"github.com/noemalabs/noema/internal/service"
)

type SessionHandler struct {
	svc         *service.SessionService
	defaultLang string
}

func NewSessionHandler(svc *service.SessionService, defaultLang string) *SessionHandler {
	return &SessionHandler{svc: svc, defaultLang: defaultLang}
}

// Analyze runs the coherence analysis for the named session, or the default
// session when the route carries no id.
func (h *SessionHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	cat := h.resolveCatalog(r.URL.Query().Get("language"))

	analysis, err := h.svc.AnalyzeCoherence(sessionID, cat)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeError(w, http.StatusNotFound, cat.T("error_session_not_found"))
			return
		}
		writeError(w, http.StatusInternalServerError, "session analysis failed")
		return
	}
	writeJSON(w, http.StatusOK, analysis)
}

// Export renders the session in the requested format. The format defaults to
// structured; unknown formats are a 400, unknown sessions a 404.
func (h *SessionHandler) Export(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	cat := h.resolveCatalog(r.URL.Query().Get("language"))

	format := r.URL.Query().Get("format")
	if format == "" {
		format = service.FormatStructured
	}

	export, err := h.svc.Export(sessionID, format, cat)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFormat):
			writeError(w, http.StatusBadRequest, fmt.Sprintf(cat.T("error_unsupported_format"), format))
		case errors.Is(err, domain.ErrSessionNotFound):
			writeError(w, http.StatusNotFound, cat.T("error_session_not_found"))
		default:
			writeError(w, http.StatusInternalServerError, "session export failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, export)
}

func (h *SessionHandler) resolveCatalog(lang string) *catalog.Catalog {
	if lang == "" {
		lang = h.defaultLang
	}
	return catalog.ForLanguage(lang)
}
