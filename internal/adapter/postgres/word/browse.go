package word

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/kako-jun/noun-gender-backend/internal/adapter/postgres"
	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// PageHeadwords selects the distinct headwords forming one browse page:
// case-insensitive headword order, limit/offset over headwords (never over
// translation rows), membership requiring at least one non-empty
// translation in the filter's language scope.
func (r *Repo) PageHeadwords(ctx context.Context, f domain.BrowseFilter) ([]domain.HeadwordRef, error) {
	f.Normalize()
	if f.Limit == 0 {
		return []domain.HeadwordRef{}, nil
	}

	qb := psql.Select("w.id", "w.headword").From("words w")

	if f.Prefix != "" {
		qb = qb.Where("w.headword ILIKE ?", prefixPattern(f.Prefix))
	}
	if f.Language != nil {
		qb = qb.Where(
			"EXISTS (SELECT 1 FROM translations t WHERE t.word_id = w.id AND t.lang = ? AND btrim(coalesce(t.text, '')) <> '')",
			f.Language.String(),
		)
	} else {
		qb = qb.Where(
			"EXISTS (SELECT 1 FROM translations t WHERE t.word_id = w.id AND btrim(coalesce(t.text, '')) <> '')",
		)
	}

	qb = qb.
		OrderBy("lower(w.headword) ASC", "w.headword ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset))

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build page query")
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "page headwords")
	}
	defer rows.Close()

	refs := []domain.HeadwordRef{}
	for rows.Next() {
		var ref domain.HeadwordRef
		if err := rows.Scan(&ref.ID, &ref.Headword); err != nil {
			return nil, postgres.MapError(err, "page headwords")
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "page headwords")
	}

	return refs, nil
}

// TranslationRowsByWordIDs fetches the flat translation rows for exactly
// the given words, optionally restricted to one language. Callers must
// short-circuit on an empty ID set; this returns empty without a query.
func (r *Repo) TranslationRowsByWordIDs(ctx context.Context, ids []uuid.UUID, lang *domain.Language) ([]domain.TranslationRow, error) {
	if len(ids) == 0 {
		return []domain.TranslationRow{}, nil
	}

	qb := psql.
		Select("w.id", "w.headword", "t.lang", "t.text", "t.gender", "e.sentence").
		From("translations t").
		Join("words w ON w.id = t.word_id").
		LeftJoin("examples e ON e.word_id = w.id").
		Where("t.word_id = ANY(?::uuid[])", ids)

	if lang != nil {
		qb = qb.Where(sq.Eq{"t.lang": lang.String()})
	}

	qb = qb.OrderBy("lower(w.headword)", "w.headword", "t.lang", "t.id")

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "build rows query")
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "translation rows")
	}
	defer rows.Close()

	out, err := scanTranslationRows(rows, false)
	if err != nil {
		return nil, postgres.MapError(err, "translation rows")
	}
	return out, nil
}
