package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
	"github.com/kako-jun/noun-gender-backend/internal/service/search"
)

// searchService defines the minimal interface needed by SearchHandler.
type searchService interface {
	Search(ctx context.Context, input search.Input) (*search.Result, error)
}

// SearchHandler serves the search endpoint.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /api/search?q=&languages=fr,de&limit=50.
// An omitted languages parameter selects nothing: the engine answers
// an empty result without touching the data source.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := parseIntParam(w, q.Get("limit"), "limit")
	if !ok {
		return
	}

	result, err := h.svc.Search(r.Context(), search.Input{
		Query:     q.Get("q"),
		Languages: parseLanguages(q.Get("languages")),
		Limit:     limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// parseLanguages splits a comma-separated language list. Blank input
// stays empty, which the engine treats as "search nothing"; validation
// of the codes is the engine's job.
func parseLanguages(raw string) []domain.Language {
	var langs []domain.Language
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		langs = append(langs, domain.Language(strings.ToLower(part)))
	}
	return langs
}

// parseIntParam parses an optional non-negative integer query parameter,
// writing a 400 response on garbage. Absent means zero.
func parseIntParam(w http.ResponseWriter, raw, name string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return v, true
}
