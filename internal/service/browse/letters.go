package browse

import (
	"context"
	"fmt"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// LetterHistogram counts distinct headwords by first letter, restricted
// to the 26 lowercase Latin letters. Headwords whose first character is
// anything else are excluded from every bucket, not lumped into an
// "other" bucket. The result is sparse; presenting a fixed 26-entry
// index is the caller's concern.
func (s *Service) LetterHistogram(ctx context.Context) (map[string]int, error) {
	return s.letterHistogram(ctx, "")
}

// LetterHistogramAtPrefix counts headwords starting with prefix by the
// letter following it, supporting drill-down sub-indexes (after "s",
// counts for "sa".."sz"). Only headwords strictly longer than the prefix
// count.
func (s *Service) LetterHistogramAtPrefix(ctx context.Context, prefix string) (map[string]int, error) {
	return s.letterHistogram(ctx, prefix)
}

func (s *Service) letterHistogram(ctx context.Context, prefix string) (map[string]int, error) {
	counts, err := s.words.LetterCounts(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("letter counts: %w", err)
	}

	histogram := make(map[string]int, len(counts))
	for letter, count := range counts {
		if len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
			histogram[letter] = count
		}
	}
	return histogram, nil
}

// WordAtRank returns the headword at zero-based rank within the
// case-insensitive-sorted distinct headwords starting with prefix.
// Returns domain.ErrNotFound past the end.
//
// Unlike Browse and the histograms, this does not require a non-empty
// translation: it serves a slider preview, which may therefore name a
// headword the matching browse page drops.
func (s *Service) WordAtRank(ctx context.Context, prefix string, rank int) (string, error) {
	if rank < 0 {
		return "", domain.NewValidationError("offset", "must not be negative")
	}
	return s.words.WordAtRank(ctx, prefix, rank)
}

// WordRange returns the first and last headword and the distinct count
// for a prefix, for sizing a slider. Loose scope, same as WordAtRank.
func (s *Service) WordRange(ctx context.Context, prefix string) (first, last string, total int, err error) {
	return s.words.WordRange(ctx, prefix)
}
