package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedWord inserts a headword and returns its id.
func SeedWord(t *testing.T, pool *pgxpool.Pool, headword string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO words (id, headword) VALUES ($1, $2)`,
		id, headword,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord %q: %v", headword, err)
	}
	return id
}

// SeedTranslation inserts one translation row. Gender is stored as given,
// including invalid values; only the query layer filters.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, lang, text, gender string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO translations (id, word_id, lang, text, gender) VALUES ($1, $2, $3, $4, $5)`,
		id, wordID, lang, text, gender,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation %s/%s: %v", lang, text, err)
	}
	return id
}

// SeedMeaning inserts a gloss for one UI language.
func SeedMeaning(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, lang, gloss string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO meanings (word_id, lang, gloss) VALUES ($1, $2, $3)`,
		wordID, lang, gloss,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeaning %s: %v", lang, err)
	}
}

// SeedExample inserts a word's example sentence.
func SeedExample(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, sentence string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO examples (word_id, sentence) VALUES ($1, $2)`,
		wordID, sentence,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExample: %v", err)
	}
}

// SeedExampleTranslation inserts a translated example sentence.
func SeedExampleTranslation(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, lang, sentence string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO example_translations (word_id, lang, sentence) VALUES ($1, $2, $3)`,
		wordID, lang, sentence,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedExampleTranslation %s: %v", lang, err)
	}
}

// SeedMemoryTrick inserts a mnemonic for one (target, UI) language pair.
func SeedMemoryTrick(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, targetLang, uiLang, text string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO memory_tricks (word_id, target_lang, ui_lang, text) VALUES ($1, $2, $3, $4)`,
		wordID, targetLang, uiLang, text,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMemoryTrick %s/%s: %v", targetLang, uiLang, err)
	}
}

// SeedSearchTerm inserts an extra searchable alias for a word.
func SeedSearchTerm(t *testing.T, pool *pgxpool.Pool, wordID uuid.UUID, lang, term string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO search_terms (word_id, lang, term) VALUES ($1, $2, $3)`,
		wordID, lang, term,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSearchTerm %q: %v", term, err)
	}
}
