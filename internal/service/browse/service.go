// Package browse implements the alphabetic browse/pagination engine:
// stable-ordered pages of word groups, letter-histogram drill-down, and
// the rank/range lookups driving a slider UI.
package browse

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
	PageHeadwords(ctx context.Context, f domain.BrowseFilter) ([]domain.HeadwordRef, error)
	TranslationRowsByWordIDs(ctx context.Context, ids []uuid.UUID, lang *domain.Language) ([]domain.TranslationRow, error)
	LetterCounts(ctx context.Context, prefix string) (map[string]int, error)
	WordAtRank(ctx context.Context, prefix string, rank int) (string, error)
	WordRange(ctx context.Context, prefix string) (string, string, int, error)
	MeaningsByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MeaningRow, error)
	MemoryTricksByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MemoryTrickRow, error)
	ExampleTranslationsByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ExampleTranslationRow, error)
}

// Service implements the browse engine.
type Service struct {
	log   *slog.Logger
	words wordRepo
	cfg   config.BrowseConfig
}

// NewService creates a new browse service.
func NewService(logger *slog.Logger, words wordRepo, cfg config.BrowseConfig) *Service {
	return &Service{
		log:   logger.With("service", "browse"),
		words: words,
		cfg:   cfg,
	}
}

// enrich merges meanings, memory tricks, and translated example sentences
// into assembled groups.
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
