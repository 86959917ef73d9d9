package domain

import (
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// AssembleRows groups a flat, ordered stream of translation rows into
// WordGroups. Rules:
//
//   - A group is created on first sight of a word, in row order. The
//     example sentence is captured from that first row; later rows for the
//     same word never overwrite it.
//   - A row's translation is kept only if its text is non-empty after
//     trimming and its gender is one of m/f/n. Invalid rows are silently
//     skipped as dirty data, not treated as an error.
//   - Groups that end up with zero valid translations are dropped.
//
// Grouping is by word identity, never by folded case: rows for "Apple" and
// "apple" form two groups.
func AssembleRows(rows []TranslationRow) []WordGroup {
	groups := make(map[string]*WordGroup, len(rows))
	order := make([]string, 0, len(rows))

	for _, row := range rows {
		key := row.WordID.String()
		g, seen := groups[key]
		if !seen {
			g = &WordGroup{
				WordID:   row.WordID,
				Headword: row.Headword,
			}
			if row.ExampleSentence != nil && *row.ExampleSentence != "" {
				g.Example = &Example{Sentence: *row.ExampleSentence}
			}
			groups[key] = g
			order = append(order, key)
		}

		text := strings.TrimSpace(row.Text)
		gender := Gender(strings.ToLower(strings.TrimSpace(row.Gender)))
		if text == "" || !gender.IsValid() {
			continue
		}

		g.Translations = append(g.Translations, Translation{
			Lang:   row.Lang,
			Text:   text,
			Gender: gender,
		})
	}

	out := make([]WordGroup, 0, len(order))
	for _, key := range order {
		g := groups[key]
		if len(g.Translations) == 0 {
			continue
		}
		out = append(out, *g)
	}
	return out
}

// WordIDs returns the word IDs of the given groups, in order.
func WordIDs(groups []WordGroup) []uuid.UUID {
	return lo.Map(groups, func(g WordGroup, _ int) uuid.UUID { return g.WordID })
}

// MergeMeanings attaches per-UI-language glosses to their groups.
func MergeMeanings(groups []WordGroup, meanings []MeaningRow) {
	byWord := lo.GroupBy(meanings, func(m MeaningRow) uuid.UUID { return m.WordID })
	for i := range groups {
		rows, ok := byWord[groups[i].WordID]
		if !ok {
			continue
		}
		if groups[i].Meanings == nil {
			groups[i].Meanings = make(map[string]string, len(rows))
		}
		for _, m := range rows {
			groups[i].Meanings[m.Lang.String()] = m.Gloss
		}
	}
}

// MergeMemoryTricks attaches mnemonic text to each matching translation.
// A trick row targets every translation of its word in the trick's target
// language (same-language translation variants share mnemonics).
func MergeMemoryTricks(groups []WordGroup, tricks []MemoryTrickRow) {
	byWord := lo.GroupBy(tricks, func(t MemoryTrickRow) uuid.UUID { return t.WordID })
	for i := range groups {
		rows, ok := byWord[groups[i].WordID]
		if !ok {
			continue
		}
		for _, trick := range rows {
			for j := range groups[i].Translations {
				tr := &groups[i].Translations[j]
				if tr.Lang != trick.TargetLang {
					continue
				}
				if tr.MemoryTricks == nil {
					tr.MemoryTricks = make(map[string]string)
				}
				tr.MemoryTricks[trick.UILang.String()] = trick.Text
			}
		}
	}
}

// MergeExampleTranslations attaches translated example sentences to each
// group's example. Rows for groups without an example are ignored.
func MergeExampleTranslations(groups []WordGroup, rows []ExampleTranslationRow) {
	byWord := lo.GroupBy(rows, func(r ExampleTranslationRow) uuid.UUID { return r.WordID })
	for i := range groups {
		if groups[i].Example == nil {
			continue
		}
		translated, ok := byWord[groups[i].WordID]
		if !ok {
			continue
		}
		if groups[i].Example.Translations == nil {
			groups[i].Example.Translations = make(map[string]string, len(translated))
		}
		for _, r := range translated {
			groups[i].Example.Translations[r.Lang.String()] = r.Sentence
		}
	}
}
