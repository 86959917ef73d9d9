package domain

import "github.com/google/uuid"

// WordGroup is the assembled per-headword result: the headword, its
// per-UI-language meanings, an optional example sentence, and all valid
// translations. Every WordGroup returned by the engines carries at least
// one Translation.
type WordGroup struct {
	WordID       uuid.UUID         `json:"-"`
	Headword     string            `json:"word"`
	Meanings     map[string]string `json:"meanings,omitempty"`
	Example      *Example          `json:"example,omitempty"`
	Translations []Translation     `json:"translations"`
}

// Translation is one gendered translation of a headword into a target
// language. MemoryTricks maps UI-language codes to mnemonic text; absent
// entries are normal.
type Translation struct {
	Lang         Language          `json:"language"`
	Text         string            `json:"translation"`
	Gender       Gender            `json:"gender"`
	MemoryTricks map[string]string `json:"memoryTricks,omitempty"`
}

// Example is a headword's canonical example sentence plus a sparse map of
// translated sentences keyed by language code.
type Example struct {
	Sentence     string            `json:"sentence"`
	Translations map[string]string `json:"translations,omitempty"`
}

// TranslationRow is a flat joined row as returned by the data source:
// one translation attached to its headword, plus the headword's example
// sentence if one exists.
type TranslationRow struct {
	WordID          uuid.UUID
	Headword        string
	Lang            Language
	Text            string
	Gender          string
	ExampleSentence *string
}

// MeaningRow is a per-(word, UI-language) gloss row.
type MeaningRow struct {
	WordID uuid.UUID
	Lang   Language
	Gloss  string
}

// MemoryTrickRow is a per-(word, target-language, UI-language) mnemonic row.
type MemoryTrickRow struct {
	WordID     uuid.UUID
	TargetLang Language
	UILang     Language
	Text       string
}

// ExampleTranslationRow is a translated example sentence for one word and
// one language.
type ExampleTranslationRow struct {
	WordID   uuid.UUID
	Lang     Language
	Sentence string
}
