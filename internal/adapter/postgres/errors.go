package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kako-jun/noun-gender-backend/internal/domain"
)

// MapError converts pgx errors to domain errors for the read path.
// context.DeadlineExceeded and context.Canceled pass through unmapped so
// callers can tell an abandoned request from missing data.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	return fmt.Errorf("%s: %w", op, err)
}
