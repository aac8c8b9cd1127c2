package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// HashStorage keeps hash tables in the kv_hash relation, one row per field.
type HashStorage struct {
	db DBTX
}

func NewHashStorage(db DBTX) *HashStorage {
	return &HashStorage{db: db}
}

const (
	upsertFieldQuery = `
		INSERT INTO kv_hash (table_name, field, value, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (table_name, field)
		DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	selectTableQuery = `SELECT field, value FROM kv_hash WHERE table_name = $1`
	deleteFieldQuery = `DELETE FROM kv_hash WHERE table_name = $1 AND field = $2`
)

// Set writes value under field in table, replacing any previous value.
func (s *HashStorage) Set(ctx context.Context, table, field string, value []byte) error {
	if table == "" || field == "" {
		return ErrEmptyKey
	}
	_, err := s.db.Exec(ctx, upsertFieldQuery, table, field, value)
	return err
}

// GetAll returns every field of table.
func (s *HashStorage) GetAll(ctx context.Context, table string) (map[string][]byte, error) {
	if table == "" {
		return nil, ErrEmptyKey
	}

	rows, err := s.db.Query(ctx, selectTableQuery, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]byte)
	for rows.Next() {
		var (
			field string
			value []byte
		)
		if err := rows.Scan(&field, &value); err != nil {
			return nil, err
		}
		out[field] = value
	}
	return out, rows.Err()
}

// Delete removes field from table. Deleting a missing field is not an error.
func (s *HashStorage) Delete(ctx context.Context, table, field string) error {
	if table == "" || field == "" {
		return ErrEmptyKey
	}
	_, err := s.db.Exec(ctx, deleteFieldQuery, table, field)
	return err
}
