// Package search implements the relevance-ranked dictionary search engine.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/kako-jun/noun-gender-backend/internal/config"
	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// wordRepo is the slice of the data source this engine consumes.
type wordRepo interface {
	SearchRows(ctx context.Context, query string, langs []domain.Language, limit int) ([]domain.TranslationRow, error)
	MeaningsByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MeaningRow, error)
	MemoryTricksByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MemoryTrickRow, error)
	ExampleTranslationsByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ExampleTranslationRow, error)
}

// Service implements the search engine.
type Service struct {
	log   *slog.Logger
	words wordRepo
	cfg   config.SearchConfig
}

// NewService creates a new search service.
func NewService(logger *slog.Logger, words wordRepo, cfg config.SearchConfig) *Service {
	return &Service{
		log:   logger.With("service", "search"),
		words: words,
		cfg:   cfg,
	}
}

// enrich merges meanings, memory tricks, and translated example sentences
// into assembled groups. The three child queries are keyed by the word
// IDs already fixed by the main query, so issuing them sequentially is
// purely a latency choice, never a correctness one.
func (s *Service) enrich(ctx context.Context, groups []domain.WordGroup) error {
	if len(groups) == 0 {
		return nil
	}

	ids := domain.WordIDs(groups)

	meanings, err := s.words.MeaningsByWordIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch meanings: %w", err)
	}
	domain.MergeMeanings(groups, meanings)

	tricks, err := s.words.MemoryTricksByWordIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch memory tricks: %w", err)
	}
	domain.MergeMemoryTricks(groups, tricks)

	exampleTranslations, err := s.words.ExampleTranslationsByWordIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("fetch example translations: %w", err)
	}
	domain.MergeExampleTranslations(groups, exampleTranslations)

	return nil
}

// clampLimit bounds v to [min, max], falling back to def when v is not
// positive.
func clampLimit(v, min, max, def int) int {
	if v <= 0 {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
