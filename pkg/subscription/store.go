package subscription

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// HashStore is a key-value-of-hash backend: a named table of field/value pairs.
// Implementations must apply each call atomically for its field.
type HashStore interface {
	Set(ctx context.Context, table, field string, value []byte) error
	GetAll(ctx context.Context, table string) (map[string][]byte, error)
	Delete(ctx context.Context, table, field string) error
}

// Entry is one stored subscription as read back from the backend.
// Err is set when the stored value could not be decoded; Subscription then
// only carries the ID.
type Entry struct {
	Subscription Subscription
	Err          error
}

// Store persists subscriptions in a HashStore.
type Store struct {
	hash  HashStore
	table string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithTable overrides the hash table name.
func WithTable(table string) StoreOption {
	return func(s *Store) {
		if table != "" {
			s.table = table
		}
	}
}

// NewStore creates a Store on top of hash.
// Panics if hash is nil.
func NewStore(hash HashStore, opts ...StoreOption) *Store {
	if hash == nil {
		panic("subscription: hash store is required")
	}

	s := &Store{hash: hash, table: Table}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Save writes sub under its ID, replacing any earlier value.
func (s *Store) Save(ctx context.Context, sub Subscription) error {
	if !sub.Complete() {
		return ErrInvalidSubscription
	}

	value, err := json.Marshal(sub)
	if err != nil {
		return errors.Join(ErrFailedToSave, err)
	}

	if err := s.hash.Set(ctx, s.table, sub.ID, value); err != nil {
		return errors.Join(ErrFailedToSave, err)
	}
	return nil
}

// All returns a snapshot of every stored subscription. Order is unspecified.
// Undecodable values are returned as entries with Err set so callers can
// report them without losing the rest.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	raw, err := s.hash.GetAll(ctx, s.table)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoad, err)
	}

	entries := make([]Entry, 0, len(raw))
	for id, value := range raw {
		sub, err := decode(id, value)
		entries = append(entries, Entry{Subscription: sub, Err: err})
	}
	return entries, nil
}

// Get returns the subscription stored under id.
func (s *Store) Get(ctx context.Context, id string) (Subscription, error) {
	raw, err := s.hash.GetAll(ctx, s.table)
	if err != nil {
		return Subscription{}, errors.Join(ErrFailedToLoad, err)
	}

	value, ok := raw[id]
	if !ok {
		return Subscription{}, ErrSubscriptionNotFound
	}
	return decode(id, value)
}

// Delete removes the subscription stored under id. Deleting a missing id is not an error.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.hash.Delete(ctx, s.table, id); err != nil {
		return errors.Join(ErrFailedToDelete, err)
	}
	return nil
}

func decode(id string, value []byte) (Subscription, error) {
	sub := Subscription{ID: id}
	if err := json.Unmarshal(value, &sub); err != nil {
		return Subscription{ID: id}, fmt.Errorf("%w: %s: %w", ErrMalformedEntry, id, err)
	}
	sub.ID = id
	return sub, nil
}
