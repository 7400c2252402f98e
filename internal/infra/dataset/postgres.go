package dataset

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quickshop/assistant/internal/domain/faq"
)

// PostgresSource reads catalog entries from the catalog_entries table.
type PostgresSource struct {
	pool *pgxpool.Pool
}

// NewPostgresSource constructs the source.
func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

// Load implements faq.CatalogSource. Rows come back in insertion order
// so catalog iteration order is stable across reloads.
func (s *PostgresSource) Load(ctx context.Context) ([]faq.CatalogEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT questions, answer, category
		FROM catalog_entries
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []faq.CatalogEntry
	for rows.Next() {
		var entry faq.CatalogEntry
		if err := rows.Scan(&entry.Questions, &entry.Answer, &entry.Category); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

var _ faq.CatalogSource = (*PostgresSource)(nil)
