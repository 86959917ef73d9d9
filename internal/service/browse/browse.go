package browse

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// Input holds browse-page parameters.
type Input struct {
	// Limit is the page size in distinct headwords. Zero yields an empty
	// page; values above the configured maximum are clamped.
	Limit int

	// Offset is the number of distinct headwords to skip.
	Offset int

	// Language optionally restricts membership and translations to one
	// target language.
	Language *domain.Language

	// Prefix optionally restricts to headwords starting with it
	// (case-insensitive).
	Prefix string
}

// Page is one stable-ordered browse page.
type Page struct {
	Words   []domain.WordGroup `json:"results"`
	HasMore bool               `json:"hasMore"`
}

// Browse returns one stable-ordered page of word groups.
//
// Page membership and order come from the distinct-headword selection: a
// word with translations in three languages is one page unit, not three.
// Assembled groups are re-projected into that selection's order, since
// map-based grouping does not preserve it. Calling twice with identical
// arguments against an unchanged store returns identical pages. HasMore
// comes from selecting one headword past the page.
func (s *Service) Browse(ctx context.Context, input Input) (*Page, error) {
	if input.Language != nil && !input.Language.IsTarget() {
		return nil, domain.NewValidationError("language", fmt.Sprintf("unsupported target language %q", *input.Language))
	}

	limit := input.Limit
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}
	if limit <= 0 {
		return &Page{Words: []domain.WordGroup{}}, nil
	}

	filter := domain.BrowseFilter{
		Language: input.Language,
		Prefix:   input.Prefix,
		Limit:    limit + 1,
		Offset:   input.Offset,
	}

	refs, err := s.words.PageHeadwords(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("page headwords: %w", err)
	}
	hasMore := len(refs) > limit
	if hasMore {
		refs = refs[:limit]
	}
	if len(refs) == 0 {
		// Nothing selected: do not issue an always-empty row query.
		return &Page{Words: []domain.WordGroup{}}, nil
	}

	ids := lo.Map(refs, func(ref domain.HeadwordRef, _ int) uuid.UUID { return ref.ID })

	rows, err := s.words.TranslationRowsByWordIDs(ctx, ids, input.Language)
	if err != nil {
		return nil, fmt.Errorf("translation rows: %w", err)
	}

	groups := domain.AssembleRows(rows)
	if err := s.enrich(ctx, groups); err != nil {
		return nil, err
	}

	// Re-project into the page selection's order.
	byID := make(map[uuid.UUID]domain.WordGroup, len(groups))
	for _, g := range groups {
		byID[g.WordID] = g
	}

	words := make([]domain.WordGroup, 0, len(refs))
	for _, ref := range refs {
		if g, ok := byID[ref.ID]; ok {
			words = append(words, g)
		}
	}
	return &Page{Words: words, HasMore: hasMore}, nil
}
