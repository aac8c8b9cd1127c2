package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// HashStorage stores field/value pairs in Redis hashes. Every operation touches
// a single hash field, which Redis applies atomically.
type HashStorage struct {
	db redis.UniversalClient
}

// NewHashStorage wraps a go-redis client.
func NewHashStorage(client redis.UniversalClient) *HashStorage {
	return &HashStorage{db: client}
}

// Set writes value under field in table, replacing any previous value.
func (s *HashStorage) Set(ctx context.Context, table, field string, value []byte) error {
	if table == "" || field == "" {
		return ErrEmptyKey
	}
	return s.db.HSet(ctx, table, field, value).Err()
}

// GetAll returns every field of table. A missing table yields an empty map.
func (s *HashStorage) GetAll(ctx context.Context, table string) (map[string][]byte, error) {
	if table == "" {
		return nil, ErrEmptyKey
	}
	res, err := s.db.HGetAll(ctx, table).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(res))
	for field, value := range res {
		out[field] = []byte(value)
	}
	return out, nil
}

// Delete removes field from table. Deleting a missing field is not an error.
func (s *HashStorage) Delete(ctx context.Context, table, field string) error {
	if table == "" || field == "" {
		return ErrEmptyKey
	}
	return s.db.HDel(ctx, table, field).Err()
}

// Close terminates the Redis connection.
func (s *HashStorage) Close() error {
	return s.db.Close()
}
