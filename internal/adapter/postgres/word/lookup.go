package word

import (
	"context"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"

	postgres "github.com/kako-jun/noun-gender-backend/internal/adapter/postgres"
)

// Histogram membership requires a non-empty translation, same as browse
// pages. The rank/range lookups below deliberately do not: they feed a
// slider preview and stay cheap, so a preview can name a headword that a
// browse page would drop. Known discrepancy, kept on purpose.

const letterCountsSQL = `
SELECT lower(substr(w.headword, $1, 1)) AS letter, count(*)
FROM words w
WHERE char_length(w.headword) >= $1
  AND EXISTS (
      SELECT 1 FROM translations t
      WHERE t.word_id = w.id AND btrim(coalesce(t.text, '')) <> ''
  )
GROUP BY letter`

const letterCountsAtPrefixSQL = `
SELECT lower(substr(w.headword, $1, 1)) AS letter, count(*)
FROM words w
WHERE char_length(w.headword) >= $1
  AND w.headword ILIKE $2
  AND EXISTS (
      SELECT 1 FROM translations t
      WHERE t.word_id = w.id AND btrim(coalesce(t.text, '')) <> ''
  )
GROUP BY letter`

const wordAtRankSQL = `
SELECT w.headword
FROM words w
WHERE w.headword ILIKE $1
ORDER BY lower(w.headword), w.headword
OFFSET $2
LIMIT 1`

const wordRangeSQL = `
SELECT count(*),
       coalesce((array_agg(w.headword ORDER BY lower(w.headword), w.headword))[1], ''),
       coalesce((array_agg(w.headword ORDER BY lower(w.headword) DESC, w.headword DESC))[1], '')
FROM words w
WHERE w.headword ILIKE $1`

// LetterCounts counts headwords by the lowercased character at position
// len(prefix)+1, restricted to headwords starting with prefix (if any)
// and strictly longer than it. The raw map may contain non-Latin keys;
// restricting to a-z is the engine's policy, not the store's.
func (r *Repo) LetterCounts(ctx context.Context, prefix string) (map[string]int, error) {
	pos := utf8.RuneCountInString(prefix) + 1

	var (
		rows pgx.Rows
		err  error
	)
	if prefix == "" {
		rows, err = r.pool.Query(ctx, letterCountsSQL, pos)
	} else {
		rows, err = r.pool.Query(ctx, letterCountsAtPrefixSQL, pos, prefixPattern(prefix))
	}
	if err != nil {
		return nil, postgres.MapError(err, "letter counts")
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var (
			letter string
			count  int64
		)
		if err := rows.Scan(&letter, &count); err != nil {
			return nil, postgres.MapError(err, "letter counts")
		}
		counts[letter] = int(count)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "letter counts")
	}

	return counts, nil
}

// WordAtRank returns the headword at zero-based rank within the
// case-insensitive-sorted set of headwords starting with prefix.
// Returns domain.ErrNotFound when rank is past the end.
func (r *Repo) WordAtRank(ctx context.Context, prefix string, rank int) (string, error) {
	pattern := "%"
	if prefix != "" {
		pattern = prefixPattern(prefix)
	}

	var headword string
	err := r.pool.QueryRow(ctx, wordAtRankSQL, pattern, rank).Scan(&headword)
	if err != nil {
		return "", postgres.MapError(err, "word at rank")
	}
	return headword, nil
}

// WordRange returns the first and last headword (case-insensitive order)
// and the total count for a prefix. An empty range yields two empty
// strings and a zero count, not an error.
func (r *Repo) WordRange(ctx context.Context, prefix string) (string, string, int, error) {
	pattern := "%"
	if prefix != "" {
		pattern = prefixPattern(prefix)
	}

	// Aggregates always yield one row; an empty set comes back as
	// (0, '', '') via coalesce.
	var (
		first, last string
		count       int64
	)
	if err := r.pool.QueryRow(ctx, wordRangeSQL, pattern).Scan(&count, &first, &last); err != nil {
		return "", "", 0, postgres.MapError(err, "word range")
	}
	return first, last, int(count), nil
}
