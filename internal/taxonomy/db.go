package taxonomy

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the subset of a pgx pool or connection used to read the taxonomy table.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// selectAliasesSQL reads aliases in declaration order: position orders skills and
// alias_position orders the aliases of one skill. Rows with a NULL alias declare a skill
// with no aliases beyond its own name.
const selectAliasesSQL = `SELECT canonical, category, alias
	FROM skill_aliases
	ORDER BY position, canonical, alias_position`

// Connect opens a connection pool for taxonomy reads and verifies it with a ping.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// LoadFromDB builds a taxonomy from the skill_aliases table.
func LoadFromDB(ctx context.Context, q Querier) (*Taxonomy, error) {
	rows, err := q.Query(ctx, selectAliasesSQL)
	if err != nil {
		return nil, &LoadError{Source: "postgres", Message: "failed to query skill_aliases", Cause: err}
	}

	type aliasRow struct {
		Canonical string
		Category  *string
		Alias     *string
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByPos[aliasRow])
	if err != nil {
		return nil, &LoadError{Source: "postgres", Message: "failed to scan skill_aliases", Cause: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Source: "postgres", Message: "no skills defined"}
	}

	entries := make([]Entry, 0)
	positions := make(map[string]int)
	for _, r := range records {
		pos, ok := positions[r.Canonical]
		if !ok {
			entry := Entry{Name: r.Canonical}
			if r.Category != nil {
				entry.Category = *r.Category
			}
			entries = append(entries, entry)
			pos = len(entries) - 1
			positions[r.Canonical] = pos
		}
		if r.Alias != nil && *r.Alias != "" {
			entries[pos].Aliases = append(entries[pos].Aliases, *r.Alias)
		}
	}

	return New("postgres:skill_aliases", entries)
}

// DBLoader loads the taxonomy from PostgreSQL each time it is called.
func DBLoader(q Querier) Loader {
	return func(ctx context.Context) (*Taxonomy, error) {
		return LoadFromDB(ctx, q)
	}
}
