package word

import (
	"context"

	"github.com/google/uuid"

	postgres "github.com/kako-jun/noun-gender-backend/internal/adapter/postgres"
	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

const meaningsByWordIDsSQL = `
SELECT m.word_id, m.lang, m.gloss
FROM meanings m
WHERE m.word_id = ANY($1::uuid[])
ORDER BY m.word_id, m.lang`

const memoryTricksByWordIDsSQL = `
SELECT mt.word_id, mt.target_lang, mt.ui_lang, mt.text
FROM memory_tricks mt
WHERE mt.word_id = ANY($1::uuid[])
ORDER BY mt.word_id, mt.target_lang, mt.ui_lang`

const exampleTranslationsByWordIDsSQL = `
SELECT et.word_id, et.lang, et.sentence
FROM example_translations et
WHERE et.word_id = ANY($1::uuid[])
ORDER BY et.word_id, et.lang`

// MeaningsByWordIDs returns per-UI-language glosses for a batch of words.
func (r *Repo) MeaningsByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MeaningRow, error) {
	if len(ids) == 0 {
		return []domain.MeaningRow{}, nil
	}

	rows, err := r.pool.Query(ctx, meaningsByWordIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "meanings by word ids")
	}
	defer rows.Close()

	out := []domain.MeaningRow{}
	for rows.Next() {
		var (
			m    domain.MeaningRow
			lang string
		)
		if err := rows.Scan(&m.WordID, &lang, &m.Gloss); err != nil {
			return nil, postgres.MapError(err, "meanings by word ids")
		}
		m.Lang = domain.Language(lang)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "meanings by word ids")
	}

	return out, nil
}

// MemoryTricksByWordIDs returns mnemonic rows for a batch of words, one
// row per (word, target-language, UI-language) pairing. The assembler
// folds them into per-translation maps; flattening them into one column
// per UI language would need a join per language pairing instead.
func (r *Repo) MemoryTricksByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.MemoryTrickRow, error) {
	if len(ids) == 0 {
		return []domain.MemoryTrickRow{}, nil
	}

	rows, err := r.pool.Query(ctx, memoryTricksByWordIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "memory tricks by word ids")
	}
	defer rows.Close()

	out := []domain.MemoryTrickRow{}
	for rows.Next() {
		var (
			t              domain.MemoryTrickRow
			target, uiLang string
		)
		if err := rows.Scan(&t.WordID, &target, &uiLang, &t.Text); err != nil {
			return nil, postgres.MapError(err, "memory tricks by word ids")
		}
		t.TargetLang = domain.Language(target)
		t.UILang = domain.Language(uiLang)
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "memory tricks by word ids")
	}

	return out, nil
}

// ExampleTranslationsByWordIDs returns translated example sentences for a
// batch of words. Only languages with an authored translation appear.
func (r *Repo) ExampleTranslationsByWordIDs(ctx context.Context, ids []uuid.UUID) ([]domain.ExampleTranslationRow, error) {
	if len(ids) == 0 {
		return []domain.ExampleTranslationRow{}, nil
	}

	rows, err := r.pool.Query(ctx, exampleTranslationsByWordIDsSQL, ids)
	if err != nil {
		return nil, postgres.MapError(err, "example translations by word ids")
	}
	defer rows.Close()

	out := []domain.ExampleTranslationRow{}
	for rows.Next() {
		var (
			e    domain.ExampleTranslationRow
			lang string
		)
		if err := rows.Scan(&e.WordID, &lang, &e.Sentence); err != nil {
			return nil, postgres.MapError(err, "example translations by word ids")
		}
		e.Lang = domain.Language(lang)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "example translations by word ids")
	}

	return out, nil
}
