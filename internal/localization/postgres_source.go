package localization

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS localization_entries (
	language TEXT NOT NULL,
	domain   TEXT NOT NULL,
	position INTEGER NOT NULL,
	id       TEXT NOT NULL,
	text     TEXT NOT NULL,
	PRIMARY KEY (language, domain, id)
);
CREATE TABLE IF NOT EXISTS base_item_categories (
	type_id  TEXT PRIMARY KEY,
	category TEXT NOT NULL
);`

// PostgresSource serves and stores dictionaries in PostgreSQL.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource creates a source over an open pool.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// EnsureSchema creates the dictionary tables.
func (s *PostgresSource) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("create localization schema: %w", err)
	}
	return nil
}

// LoadTable implements Source.
func (s *PostgresSource) LoadTable(ctx context.Context, lang Language, d Domain) (*Table, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, text FROM localization_entries
		WHERE language = $1 AND domain = $2
		ORDER BY position`, lang.String(), d.String())
	if err != nil {
		return nil, fmt.Errorf("query %s %s: %w", lang, d, err)
	}

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Entry])
	if err != nil {
		return nil, fmt.Errorf("scan %s %s: %w", lang, d, err)
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return NewTable(entries), nil
}

// LoadCategories implements Source.
func (s *PostgresSource) LoadCategories(ctx context.Context) (map[string]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT type_id, category FROM base_item_categories`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var id, category string
		if err := rows.Scan(&id, &category); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out[id] = category
	}
	return out, rows.Err()
}

// Seed replaces the stored dictionaries with tables in one transaction.
func (s *PostgresSource) Seed(ctx context.Context, tables *Tables) error {
	if err := s.EnsureSchema(ctx); err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE localization_entries, base_item_categories`); err != nil {
		return fmt.Errorf("truncate localization tables: %w", err)
	}

	var rows [][]any
	for _, lang := range tables.Languages() {
		for _, d := range Domains {
			t, ok := tables.Table(lang, d)
			if !ok {
				continue
			}
			for i, e := range t.Entries() {
				rows = append(rows, []any{lang.String(), d.String(), i, e.ID, e.Text})
			}
		}
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"localization_entries"},
		[]string{"language", "domain", "position", "id", "text"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy localization entries: %w", err)
	}

	var categories [][]any
	for id, c := range tables.Categories() {
		categories = append(categories, []any{id, c})
	}
	if _, err := tx.CopyFrom(ctx,
		pgx.Identifier{"base_item_categories"},
		[]string{"type_id", "category"},
		pgx.CopyFromRows(categories),
	); err != nil {
		return fmt.Errorf("copy categories: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info().Int64("entries", n).Int("categories", len(categories)).Msg("Seeded localization tables into PostgreSQL")
	return nil
}
