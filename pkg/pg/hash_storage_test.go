package pg_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/publication/pkg/pg"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	execs    []execCall
	rows     [][2]any
	queryErr error
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("OK"), nil
}

func (f *fakeDB) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return &fakeRows{data: f.rows, pos: -1}, nil
}

type fakeRows struct {
	data [][2]any
	pos  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.NewCommandTag("SELECT") }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return r.data[r.pos][:], nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.pos++
	return r.pos < len(r.data)
}

func (r *fakeRows) Scan(dest ...any) error {
	*(dest[0].(*string)) = r.data[r.pos][0].(string)
	*(dest[1].(*[]byte)) = r.data[r.pos][1].([]byte)
	return nil
}

func TestHashStorage_Set(t *testing.T) {
	t.Parallel()

	db := &fakeDB{}
	store := pg.NewHashStorage(db)

	require.NoError(t, store.Set(context.Background(), "subs", "a", []byte("v")))
	require.Len(t, db.execs, 1)
	assert.True(t, strings.Contains(db.execs[0].sql, "ON CONFLICT"))
	assert.Equal(t, []any{"subs", "a", []byte("v")}, db.execs[0].args)
}

func TestHashStorage_GetAll(t *testing.T) {
	t.Parallel()

	db := &fakeDB{rows: [][2]any{
		{"a", []byte(`{"name":"Alice"}`)},
		{"b", []byte(`{"name":"Bob"}`)},
	}}
	store := pg.NewHashStorage(db)

	all, err := store.GetAll(context.Background(), "subs")
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"a": []byte(`{"name":"Alice"}`),
		"b": []byte(`{"name":"Bob"}`),
	}, all)

	db.queryErr = errors.New("connection reset")
	_, err = store.GetAll(context.Background(), "subs")
	assert.EqualError(t, err, "connection reset")
}

func TestHashStorage_Delete(t *testing.T) {
	t.Parallel()

	db := &fakeDB{}
	store := pg.NewHashStorage(db)

	require.NoError(t, store.Delete(context.Background(), "subs", "a"))
	require.Len(t, db.execs, 1)
	assert.Equal(t, []any{"subs", "a"}, db.execs[0].args)
}

func TestHashStorage_EmptyKeys(t *testing.T) {
	t.Parallel()

	db := &fakeDB{}
	store := pg.NewHashStorage(db)
	ctx := context.Background()

	assert.ErrorIs(t, store.Set(ctx, "", "a", nil), pg.ErrEmptyKey)
	assert.ErrorIs(t, store.Delete(ctx, "subs", ""), pg.ErrEmptyKey)
	_, err := store.GetAll(ctx, "")
	assert.ErrorIs(t, err, pg.ErrEmptyKey)
	assert.Empty(t, db.execs)
}

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := pg.Connect(context.Background(), pg.Config{})
	assert.ErrorIs(t, err, pg.ErrEmptyConnectionString)

	_, err = pg.Connect(context.Background(), pg.Config{ConnectionString: "postgres://%zz"})
	assert.ErrorIs(t, err, pg.ErrFailedToParseDBConfig)
}
