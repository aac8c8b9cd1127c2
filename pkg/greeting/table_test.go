package greeting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/publication/pkg/greeting"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	table := greeting.Default()
	assert.Equal(t, []string{
		"english", "french", "german", "italian", "portuguese", "spanish", "swedish",
	}, table.Languages())

	words, ok := table.Lookup("english")
	require.True(t, ok)
	assert.Equal(t, []string{"Hello", "Hi"}, words)
}

func TestTable_CaseInsensitive(t *testing.T) {
	t.Parallel()

	table := greeting.Default()
	for _, lang := range []string{"english", "English", "ENGLISH", "eNgLiSh"} {
		assert.True(t, table.Has(lang), lang)
	}
	assert.False(t, table.Has("klingon"))
	assert.False(t, table.Has(""))
}

func TestTable_LookupReturnsCopy(t *testing.T) {
	t.Parallel()

	table := greeting.Default()
	words, _ := table.Lookup("german")
	words[0] = "mutated"

	again, _ := table.Lookup("german")
	assert.Equal(t, "Hallo", again[0])
}

func TestNewTable_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries map[string][]string
		wantErr error
	}{
		{"empty table", nil, greeting.ErrEmptyTable},
		{"empty key", map[string][]string{"": {"Hi"}}, greeting.ErrEmptyTable},
		{"no greetings", map[string][]string{"english": {}}, greeting.ErrEmptyGreetings},
		{"blank greeting", map[string][]string{"english": {"Hi", ""}}, greeting.ErrEmptyGreetings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := greeting.NewTable(tt.entries)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Panics(t, func() { greeting.MustNewTable(nil) })
}

func TestTable_Greet(t *testing.T) {
	t.Parallel()

	table := greeting.Default()

	t.Run("first policy", func(t *testing.T) {
		t.Parallel()
		got, err := table.Greet("English", "Little Printer", greeting.First)
		require.NoError(t, err)
		assert.Equal(t, "Hello, Little Printer", got)
	})

	t.Run("nil policy defaults to first", func(t *testing.T) {
		t.Parallel()
		got, err := table.Greet("swedish", "Alice", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hallå, Alice", got)
	})

	t.Run("random policy stays within the language", func(t *testing.T) {
		t.Parallel()
		seen := map[string]bool{}
		for range 200 {
			got, err := table.Greet("german", "Bob", greeting.Random)
			require.NoError(t, err)
			seen[got] = true
		}
		assert.Equal(t, map[string]bool{"Hallo, Bob": true, "Tag, Bob": true}, seen)
	})

	t.Run("unknown language", func(t *testing.T) {
		t.Parallel()
		_, err := table.Greet("klingon", "Worf", greeting.Random)
		assert.ErrorIs(t, err, greeting.ErrUnknownLanguage)
	})
}

func TestRandom(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Salut", greeting.Random([]string{"Salut"}))
}
