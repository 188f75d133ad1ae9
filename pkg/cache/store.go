package cache

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Load] when no snapshot has been saved yet.
// The cache treats it as an empty snapshot.
var ErrNotFound = errors.New("cache snapshot not found")

// Store loads and saves the serialized cache snapshot.
//
// Save must replace the previous snapshot atomically: a concurrent or later
// Load sees either the old snapshot or the new one in full.
type Store interface {
	// Load returns the last saved snapshot, or ErrNotFound if there is none.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the snapshot with data.
	Save(ctx context.Context, data []byte) error

	// Clear removes the snapshot. Clearing an absent snapshot is not an error.
	Clear(ctx context.Context) error
}

// NullStore is a store that never keeps anything.
// Useful for testing or when caching should be disabled.
type NullStore struct{}

// NewNullStore creates a null store.
func NewNullStore() Store {
	return NullStore{}
}

// Load always reports a missing snapshot.
func (NullStore) Load(context.Context) ([]byte, error) { return nil, ErrNotFound }

// Save does nothing.
func (NullStore) Save(context.Context, []byte) error { return nil }

// Clear does nothing.
func (NullStore) Clear(context.Context) error { return nil }

// Ensure NullStore implements Store.
var _ Store = NullStore{}
