package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/kako-jun/noun-gender-backend/internal/config"
	"github.com/kako-jun/noun-gender-backend/internal/domain"
	"github.com/kako-jun/noun-gender-backend/internal/service/browse"
)

// browseService defines the minimal interface needed by WordsHandler.
type browseService interface {
	Browse(ctx context.Context, input browse.Input) (*browse.Page, error)
	LetterHistogram(ctx context.Context) (map[string]int, error)
	LetterHistogramAtPrefix(ctx context.Context, prefix string) (map[string]int, error)
	WordAtRank(ctx context.Context, prefix string, rank int) (string, error)
	WordRange(ctx context.Context, prefix string) (string, string, int, error)
}

// WordsHandler serves the alphabetic browse endpoints.
type WordsHandler struct {
	svc browseService
	cfg config.BrowseConfig
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc browseService, cfg config.BrowseConfig, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, cfg: cfg, log: logger.With("handler", "words")}
}

// List handles GET /api/words?limit=&offset=&language=&startsWith=.
// An omitted limit takes the configured page default; limit=0 is a valid
// request for an empty page.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit := h.cfg.DefaultLimit
	if raw := q.Get("limit"); raw != "" {
		var ok bool
		if limit, ok = parseIntParam(w, raw, "limit"); !ok {
			return
		}
	}

	offset, ok := parseIntParam(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	input := browse.Input{
		Limit:  limit,
		Offset: offset,
		Prefix: q.Get("startsWith"),
	}
	// "all" is the client's sentinel for no language filter.
	if raw := strings.ToLower(strings.TrimSpace(q.Get("language"))); raw != "" && raw != "all" {
		lang := domain.Language(raw)
		input.Language = &lang
	}

	page, err := h.svc.Browse(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// letterCount is one slot of the fixed a-z index.
type letterCount struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}

// Letters handles GET /api/words/letters.
func (h *WordsHandler) Letters(w http.ResponseWriter, r *http.Request) {
	histogram, err := h.svc.LetterHistogram(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, expandLetters(histogram))
}

// LettersAtPrefix handles GET /api/words/letters/{prefix}.
func (h *WordsHandler) LettersAtPrefix(w http.ResponseWriter, r *http.Request) {
	histogram, err := h.svc.LetterHistogramAtPrefix(r.Context(), r.PathValue("prefix"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, expandLetters(histogram))
}

// expandLetters turns the engine's sparse histogram into the fixed
// 26-entry a-z array clients render directly.
func expandLetters(histogram map[string]int) []letterCount {
	out := make([]letterCount, 0, 26)
	for c := byte('a'); c <= 'z'; c++ {
		letter := string(c)
		out = append(out, letterCount{Letter: letter, Count: histogram[letter]})
	}
	return out
}

// At handles GET /api/words/at?prefix=&offset=. A rank past the end of
// the prefix's word list answers 200 with an empty word, not 404: the
// slider polls this while being dragged.
func (h *WordsHandler) At(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset, ok := parseIntParam(w, q.Get("offset"), "offset")
	if !ok {
		return
	}

	word, err := h.svc.WordAtRank(r.Context(), q.Get("prefix"), offset)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"word": word})
}

// Range handles GET /api/words/range?prefix=.
func (h *WordsHandler) Range(w http.ResponseWriter, r *http.Request) {
	first, last, count, err := h.svc.WordRange(r.Context(), r.URL.Query().Get("prefix"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"first": first,
		"last":  last,
		"count": count,
	})
}
