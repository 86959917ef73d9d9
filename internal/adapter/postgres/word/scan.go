package word

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// scanTranslationRows scans the flat joined rows shared by search and
// browse. withRank consumes the trailing rank column search emits; the
// rank is an ordering key only and is not carried into the domain row.
func scanTranslationRows(rows pgx.Rows, withRank bool) ([]domain.TranslationRow, error) {
	out := []domain.TranslationRow{}
	for rows.Next() {
		var (
			id       uuid.UUID
			headword string
			lang     string
			text     pgtype.Text
			gender   pgtype.Text
			sentence pgtype.Text
			rank     int32
		)

		dest := []any{&id, &headword, &lang, &text, &gender, &sentence}
		if withRank {
			dest = append(dest, &rank)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		row := domain.TranslationRow{
			WordID:   id,
			Headword: headword,
			Lang:     domain.Language(lang),
			Text:     text.String,
			Gender:   gender.String,
		}
		if sentence.Valid {
			s := sentence.String
			row.ExampleSentence = &s
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
