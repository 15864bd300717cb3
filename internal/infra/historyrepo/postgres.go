package historyrepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kezhang/textsmith/internal/domain/history"
)

// PostgresRepository persists history records using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert implements history.Repository.
func (r *PostgresRepository) Insert(ctx context.Context, record history.Record) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO text_history (id, kind, input, output, word_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, record.ID, string(record.Kind), record.Input, record.Output, record.WordCount, record.CreatedAt)
	return err
}

// Recent implements history.Repository, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]history.Record, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, input, output, word_count, created_at
		FROM text_history
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []history.Record
	for rows.Next() {
		var (
			record history.Record
			kind   string
		)
		if err := rows.Scan(&record.ID, &kind, &record.Input, &record.Output, &record.WordCount, &record.CreatedAt); err != nil {
			return nil, err
		}
		record.Kind = history.Kind(kind)
		out = append(out, record)
	}
	return out, rows.Err()
}

var _ history.Repository = (*PostgresRepository)(nil)
