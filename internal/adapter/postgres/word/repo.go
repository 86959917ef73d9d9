// Package word implements the dictionary read repository using PostgreSQL.
// Everything here is read-only: the corpus is populated out-of-band and the
// engines only project it. Fixed-shape queries are raw SQL constants;
// queries with optional filters are built with squirrel. All matching and
// ordering is case-insensitive (ILIKE / lower()), while stored casing is
// returned untouched.
package word

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds queries with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides dictionary reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// escapeLike escapes LIKE metacharacters so user input matches literally.
// Parameter binding already rules out injection; this fixes wildcard
// semantics (a query of "100%" must not match "100x").
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// containsPattern returns a LIKE pattern matching s anywhere.
func containsPattern(s string) string { return "%" + escapeLike(s) + "%" }

// prefixPattern returns a LIKE pattern matching s as a prefix.
func prefixPattern(s string) string { return escapeLike(s) + "%" }
