package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// Input holds search parameters.
type Input struct {
	// Query is the free-text query. Must be non-blank after trimming.
	Query string

	// Languages is the set of allowed target languages. Empty means
	// "search nothing", not "search everything".
	Languages []domain.Language

	// Limit caps the fetched translation-row stream. Non-positive takes
	// the configured maximum.
	Limit int
}

// Result is a ranked, deduplicated search result.
type Result struct {
	Words []domain.WordGroup `json:"results"`
	Count int                `json:"count"`
}

// Search returns relevance-ranked word groups matching the query.
//
// An empty language set returns an empty result without touching the data
// source. The row cap applies before grouping, so the group count can
// come in under the limit. Data-source failures propagate whole: there is
// no partial result on error.
func (s *Service) Search(ctx context.Context, input Input) (*Result, error) {
	if len(input.Languages) == 0 {
		return &Result{Words: []domain.WordGroup{}}, nil
	}

	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, domain.NewValidationError("q", "must not be blank")
	}

	langs := lo.Uniq(input.Languages)
	for _, l := range langs {
		if !l.IsTarget() {
			return nil, domain.NewValidationError("languages", fmt.Sprintf("unsupported target language %q", l))
		}
	}

	limit := clampLimit(input.Limit, 1, s.cfg.MaxLimit, s.cfg.MaxLimit)

	rows, err := s.words.SearchRows(ctx, query, langs, limit)
	if err != nil {
		return nil, fmt.Errorf("search rows: %w", err)
	}

	groups := domain.AssembleRows(rows)
	if err := s.enrich(ctx, groups); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "search completed",
		slog.String("query", query),
		slog.Int("rows", len(rows)),
		slog.Int("groups", len(groups)),
	)

	return &Result{Words: groups, Count: len(groups)}, nil
}
