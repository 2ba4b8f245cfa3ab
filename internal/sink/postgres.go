package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgRowSink implementa RowSink sobre una tabla append-only de Postgres.
// Alternativa al spreadsheet cuando DATABASE_URL está configurada.
type PgRowSink struct {
	pool *pgxpool.Pool
}

func NewPgRowSink(pool *pgxpool.Pool) *PgRowSink {
	return &PgRowSink{pool: pool}
}

func (s *PgRowSink) Append(ctx context.Context, row []string) error {
	const query = `
		INSERT INTO result_rows (id, fields, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := s.pool.Exec(ctx, query, uuid.NewString(), row, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: insert result row: %v", ErrUnavailable, err)
	}
	return nil
}
