package word

import (
	"context"

	"github.com/samber/lo"

	postgres "github.com/kako-jun/noun-gender-backend/internal/adapter/postgres"
	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// Ranking tiers, ascending = more relevant. The gap at 25 is the
// short-word substring boost: it keeps entries like "ant" above long
// words that merely start with the query.
//
// Matching and rank are word-scoped: a word whose headword, any
// allowed-language translation, or any allowed-language search term
// matches contributes all of its allowed-language translation rows, each
// carrying the word's rank. The row stream is capped at LIMIT before any
// grouping, so one headword's rows each consume cap budget and a page can
// group down to fewer headwords than the limit.
const searchSQL = `
SELECT w.id, w.headword, t.lang, t.text, t.gender, e.sentence,
    CASE
        WHEN lower(w.headword) = lower($1) THEN 10
        WHEN EXISTS (
            SELECT 1 FROM translations tm
            WHERE tm.word_id = w.id AND tm.lang = ANY($2)
              AND lower(tm.text) = lower($1)
        ) THEN 20
        WHEN char_length(w.headword) <= 4 AND w.headword ILIKE $3 THEN 25
        WHEN w.headword ILIKE $4 THEN 30
        WHEN EXISTS (
            SELECT 1 FROM translations tm
            WHERE tm.word_id = w.id AND tm.lang = ANY($2)
              AND tm.text ILIKE $4
        ) THEN 40
        ELSE 50
    END AS rank
FROM words w
JOIN translations t ON t.word_id = w.id AND t.lang = ANY($2)
LEFT JOIN examples e ON e.word_id = w.id
WHERE w.headword ILIKE $3
   OR EXISTS (
        SELECT 1 FROM translations tm
        WHERE tm.word_id = w.id AND tm.lang = ANY($2)
          AND tm.text ILIKE $3
   )
   OR EXISTS (
        SELECT 1 FROM search_terms st
        WHERE st.word_id = w.id AND st.lang = ANY($2)
          AND st.term ILIKE $3
   )
ORDER BY rank, char_length(w.headword), lower(w.headword), t.lang, t.id
LIMIT $5`

// SearchRows returns the ranked, capped stream of translation rows
// matching query in the given target languages. Invalid translations
// (empty text, bad gender) are returned as-is; filtering them is the
// assembler's job, and they still consume cap budget.
func (r *Repo) SearchRows(ctx context.Context, query string, langs []domain.Language, limit int) ([]domain.TranslationRow, error) {
	codes := lo.Map(langs, func(l domain.Language, _ int) string { return l.String() })

	rows, err := r.pool.Query(ctx, searchSQL,
		query, codes, containsPattern(query), prefixPattern(query), limit)
	if err != nil {
		return nil, postgres.MapError(err, "search words")
	}
	defer rows.Close()

	out, err := scanTranslationRows(rows, true)
	if err != nil {
		return nil, postgres.MapError(err, "search words")
	}
	return out, nil
}
