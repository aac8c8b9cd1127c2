package push_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/publication/pkg/greeting"
	"github.com/dmitrymomot/publication/pkg/logger"
	"github.com/dmitrymomot/publication/pkg/push"
	"github.com/dmitrymomot/publication/pkg/subscription"
	"github.com/dmitrymomot/publication/pkg/webhook"
)

type recorder struct {
	mu     sync.Mutex
	bodies []string
	types  []string
}

func (r *recorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		r.mu.Lock()
		r.bodies = append(r.bodies, string(body))
		r.types = append(r.types, req.Header.Get("Content-Type"))
		r.mu.Unlock()
		w.WriteHeader(status)
	}
}

func (r *recorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bodies)
}

func newStore(t *testing.T, subs ...subscription.Subscription) *subscription.Store {
	t.Helper()
	store := subscription.NewStore(subscription.NewMemoryHashStore())
	for _, sub := range subs {
		require.NoError(t, store.Save(context.Background(), sub))
	}
	return store
}

func newDispatcher(store push.Store, opts ...push.Option) *push.Dispatcher {
	opts = append([]push.Option{push.WithPicker(greeting.First), push.WithLogger(logger.Discard())}, opts...)
	return push.NewDispatcher(store, greeting.Default(), webhook.NewSender(), opts...)
}

func TestPushAll_Delivered(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusOK))
	defer server.Close()

	store := newStore(t, subscription.Subscription{ID: "s1", Name: "Ada", Language: "english", Endpoint: server.URL + "/s1"})

	report, err := newDispatcher(store).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.Removed)
	require.Len(t, report.Results, 1)
	assert.NoError(t, report.Results[0].Err)
	assert.Equal(t, http.StatusOK, report.Results[0].StatusCode)

	require.Equal(t, 1, rec.calls())
	assert.Contains(t, rec.bodies[0], "Hello, Ada")
	assert.Equal(t, "text/html; charset=utf-8", rec.types[0])

	_, err = store.Get(context.Background(), "s1")
	assert.NoError(t, err)
}

func TestPushAll_GoneRemovesSubscription(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusGone))
	defer server.Close()

	store := newStore(t, subscription.Subscription{ID: "s1", Name: "Ada", Language: "english", Endpoint: server.URL + "/s1"})

	report, err := newDispatcher(store).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Delivered)
	assert.Equal(t, 1, report.Removed)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Removed)

	_, err = store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, subscription.ErrSubscriptionNotFound)
}

func TestPushAll_EmptyStore(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusOK))
	defer server.Close()

	report, err := newDispatcher(newStore(t)).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Delivered)
	assert.Equal(t, 0, report.Removed)
	assert.Empty(t, report.Results)
	assert.Equal(t, 0, rec.calls())
}

func TestPushAll_Mixed(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/ok", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	mux.HandleFunc("/gone", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusGone) })
	mux.HandleFunc("/error", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) })
	mux.HandleFunc("/notfound", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) })
	server := httptest.NewServer(mux)
	defer server.Close()

	store := newStore(t,
		subscription.Subscription{ID: "ok", Name: "A", Language: "french", Endpoint: server.URL + "/ok"},
		subscription.Subscription{ID: "gone", Name: "B", Language: "german", Endpoint: server.URL + "/gone"},
		subscription.Subscription{ID: "error", Name: "C", Language: "spanish", Endpoint: server.URL + "/error"},
		subscription.Subscription{ID: "notfound", Name: "D", Language: "italian", Endpoint: server.URL + "/notfound"},
	)

	report, err := newDispatcher(store).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, report.Delivered)
	assert.Equal(t, 1, report.Removed)
	assert.Len(t, report.Results, 4)

	for _, res := range report.Results {
		switch res.SubscriptionID {
		case "ok":
			assert.NoError(t, res.Err)
		case "gone":
			assert.True(t, res.Removed)
		case "error", "notfound":
			assert.ErrorIs(t, res.Err, webhook.ErrUnexpectedStatus)
			assert.False(t, res.Removed)
		}
	}

	entries, err := store.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestPushAll_NetworkErrorCountsAsDelivered(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	store := newStore(t, subscription.Subscription{ID: "s1", Name: "Ada", Language: "english", Endpoint: endpoint})

	report, err := newDispatcher(store).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.Removed)
	assert.ErrorIs(t, report.Results[0].Err, webhook.ErrDeliveryFailed)
}

func TestPushAll_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	store := newStore(t, subscription.Subscription{ID: "s1", Name: "Ada", Language: "english", Endpoint: server.URL})

	report, err := newDispatcher(store, push.WithTimeout(50*time.Millisecond)).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	assert.ErrorIs(t, report.Results[0].Err, webhook.ErrTimeout)
}

func TestPushAll_MalformedAndUnknownLanguage(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusOK))
	defer server.Close()

	ctx := context.Background()
	hash := subscription.NewMemoryHashStore()
	require.NoError(t, hash.Set(ctx, subscription.Table, "bad", []byte("{")))
	require.NoError(t, hash.Set(ctx, subscription.Table, "klingon", []byte(`{"name":"Worf","lang":"klingon","endpoint":"`+server.URL+`"}`)))

	report, err := newDispatcher(subscription.NewStore(hash)).PushAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Delivered)
	assert.Equal(t, 0, report.Removed)
	assert.Equal(t, 0, rec.calls())

	for _, res := range report.Results {
		switch res.SubscriptionID {
		case "bad":
			assert.ErrorIs(t, res.Err, subscription.ErrMalformedEntry)
		case "klingon":
			assert.ErrorIs(t, res.Err, greeting.ErrUnknownLanguage)
		}
	}
}

type failingStore struct {
	entries   []subscription.Entry
	allErr    error
	deleteErr error
}

func (f failingStore) All(context.Context) ([]subscription.Entry, error) { return f.entries, f.allErr }
func (f failingStore) Delete(context.Context, string) error              { return f.deleteErr }

func TestPushAll_LoadFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := newDispatcher(failingStore{allErr: boom}).PushAll(context.Background())
	assert.ErrorIs(t, err, push.ErrLoadSubscriptions)
	assert.ErrorIs(t, err, boom)
}

func TestPushAll_DeleteFailureCountsAsDelivered(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	store := failingStore{
		entries: []subscription.Entry{{Subscription: subscription.Subscription{
			ID: "s1", Name: "Ada", Language: "english", Endpoint: server.URL,
		}}},
		deleteErr: errors.New("boom"),
	}

	report, err := newDispatcher(store).PushAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Delivered)
	assert.Equal(t, 0, report.Removed)
	assert.ErrorIs(t, report.Results[0].Err, push.ErrRemove)
}

func TestPushAll_LogsOutcomes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusGone)
	}))
	defer server.Close()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatJSON))
	store := newStore(t, subscription.Subscription{ID: "s1", Name: "Ada", Language: "english", Endpoint: server.URL})

	_, err := newDispatcher(store, push.WithLogger(log)).PushAll(context.Background())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "subscription gone, removed")
	assert.Contains(t, buf.String(), `"subscription_id":"s1"`)
}

func TestNewDispatcher_PanicsOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { push.NewDispatcher(nil, greeting.Default(), webhook.NewSender()) })
}
