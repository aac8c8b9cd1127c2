package subscription_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/publication/pkg/greeting"
	"github.com/dmitrymomot/publication/pkg/subscription"
)

func newValidator(t *testing.T) (*subscription.Validator, *subscription.MemoryHashStore) {
	t.Helper()
	hash := subscription.NewMemoryHashStore()
	return subscription.NewValidator(greeting.Default(), subscription.NewStore(hash)), hash
}

func TestValidator_Valid(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v, hash := newValidator(t)

	res, err := v.Validate(ctx, subscription.Input{
		Config:         `{"lang":"english","name":"Ada"}`,
		Endpoint:       "http://e/1",
		SubscriptionID: "s1",
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.NotNil(t, res.Errors)
	assert.Empty(t, res.Errors)

	raw, err := hash.GetAll(ctx, subscription.Table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","lang":"english","endpoint":"http://e/1"}`, string(raw["s1"]))
}

func TestValidator_LanguageCaseInsensitive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v, hash := newValidator(t)

	res, err := v.Validate(ctx, subscription.Input{
		Config:         `{"lang":"English","name":"Ada"}`,
		Endpoint:       "http://e/1",
		SubscriptionID: "s1",
	})
	require.NoError(t, err)
	assert.True(t, res.Valid)

	raw, err := hash.GetAll(ctx, subscription.Table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","lang":"English","endpoint":"http://e/1"}`, string(raw["s1"]))
}

func TestValidator_ErrorOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    subscription.Input
		expected []string
	}{
		{
			name:  "everything missing",
			input: subscription.Input{Config: `{}`},
			expected: []string{
				subscription.MsgLanguageRequired,
				subscription.MsgNameRequired,
				subscription.UnknownLanguageMessage(""),
				subscription.MsgEndpointRequired,
				subscription.MsgSubscriptionIDRequired,
			},
		},
		{
			name:     "unknown language",
			input:    subscription.Input{Config: `{"lang":"klingon","name":"Ada"}`, Endpoint: "http://e", SubscriptionID: "s"},
			expected: []string{"We couldn't find the language you selected (klingon) Please select another"},
		},
		{
			name:     "missing name",
			input:    subscription.Input{Config: `{"lang":"french"}`, Endpoint: "http://e", SubscriptionID: "s"},
			expected: []string{subscription.MsgNameRequired},
		},
		{
			name:     "missing endpoint and id",
			input:    subscription.Input{Config: `{"lang":"german","name":"Ada"}`},
			expected: []string{subscription.MsgEndpointRequired, subscription.MsgSubscriptionIDRequired},
		},
		{
			name:     "missing subscription id",
			input:    subscription.Input{Config: `{"lang":"german","name":"Ada"}`, Endpoint: "http://e"},
			expected: []string{subscription.MsgSubscriptionIDRequired},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			v, hash := newValidator(t)

			res, err := v.Validate(ctx, tt.input)
			require.NoError(t, err)
			assert.False(t, res.Valid)
			assert.Equal(t, tt.expected, res.Errors)

			raw, err := hash.GetAll(ctx, subscription.Table)
			require.NoError(t, err)
			assert.Empty(t, raw, "invalid configs must not be stored")
		})
	}
}

func TestValidator_MissingConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   string
		expected error
	}{
		{name: "empty", config: "", expected: subscription.ErrMissingConfig},
		{name: "blank", config: "   ", expected: subscription.ErrMissingConfig},
		{name: "not json", config: "lang=english", expected: subscription.ErrMalformedConfig},
		{name: "json array", config: `["english"]`, expected: subscription.ErrMalformedConfig},
		{name: "broken object", config: `{"lang":`, expected: subscription.ErrMalformedConfig},
		{name: "wrong types", config: `{"lang":1,"name":true}`, expected: subscription.ErrMalformedConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			v, hash := newValidator(t)

			_, err := v.Validate(ctx, subscription.Input{Config: tt.config, Endpoint: "http://e", SubscriptionID: "s"})
			assert.ErrorIs(t, err, tt.expected)

			raw, err := hash.GetAll(ctx, subscription.Table)
			require.NoError(t, err)
			assert.Empty(t, raw)
		})
	}
}

func TestValidator_StoreFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	v := subscription.NewValidator(greeting.Default(), subscription.NewStore(failingHashStore{err: boom}))

	_, err := v.Validate(context.Background(), subscription.Input{
		Config:         `{"lang":"english","name":"Ada"}`,
		Endpoint:       "http://e/1",
		SubscriptionID: "s1",
	})
	assert.ErrorIs(t, err, subscription.ErrFailedToSave)
	assert.ErrorIs(t, err, boom)
}

func TestValidator_Overwrites(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	v, hash := newValidator(t)

	for _, cfg := range []string{`{"lang":"english","name":"Ada"}`, `{"lang":"swedish","name":"Bo"}`} {
		res, err := v.Validate(ctx, subscription.Input{Config: cfg, Endpoint: "http://e/1", SubscriptionID: "s1"})
		require.NoError(t, err)
		require.True(t, res.Valid)
	}

	raw, err := hash.GetAll(ctx, subscription.Table)
	require.NoError(t, err)
	require.Len(t, raw, 1)
	assert.JSONEq(t, `{"name":"Bo","lang":"swedish","endpoint":"http://e/1"}`, string(raw["s1"]))
}
