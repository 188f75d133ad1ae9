package cache

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/matzehuels/pyregraph/pkg/card"
	apperrors "github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/observability"
)

// keyType labels cache events reported to observability hooks.
const keyType = "card"

// Cache is a lazily loaded, lock-protected map from card name to [card.Card]
// backed by a [Store].
//
// The zero value is not usable - use New.
// Cache is safe for concurrent use by multiple goroutines.
type Cache struct {
	store Store

	initMu sync.Mutex // serializes loads
	loaded atomic.Bool

	mu    sync.RWMutex
	cards map[string]card.Card
}

// New creates a cache over store. Nothing is read until the first call that
// needs the map. A nil store behaves like NullStore.
func New(store Store) *Cache {
	if store == nil {
		store = NewNullStore()
	}
	return &Cache{store: store}
}

// Store returns the backing store.
func (c *Cache) Store() Store { return c.store }

// load reads the snapshot exactly once. A missing snapshot starts an empty
// map. On failure the cache stays unloaded and the error is returned to this
// caller only.
func (c *Cache) load(ctx context.Context) error {
	if c.loaded.Load() {
		return nil
	}
	c.initMu.Lock()
	defer c.initMu.Unlock()
	if c.loaded.Load() {
		return nil
	}

	cards := make(map[string]card.Card)
	data, err := c.store.Load(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return apperrors.Wrap(apperrors.ErrCodeCacheIO, err, "load card cache")
	default:
		if err := json.Unmarshal(data, &cards); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeCacheIO, err, "decode card cache")
		}
	}

	c.mu.Lock()
	c.cards = cards
	c.mu.Unlock()
	c.loaded.Store(true)
	return nil
}

// Get returns a copy of the card cached under name.
// The boolean reports whether the name was present. Get never mutates the
// cache; the only error it returns is a failed initial load.
func (c *Cache) Get(ctx context.Context, name string) (card.Card, bool, error) {
	if err := c.load(ctx); err != nil {
		return card.Card{}, false, err
	}

	c.mu.RLock()
	cd, ok := c.cards[name]
	c.mu.RUnlock()

	if !ok {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return card.Card{}, false, nil
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return cd.Clone(), true, nil
}

// Put stores cd under name and persists the whole map.
//
// The entry is kept in memory even when saving fails, so later lookups in
// this process still hit; the returned error then carries
// [apperrors.ErrCodeCacheIO].
func (c *Cache) Put(ctx context.Context, name string, cd card.Card) error {
	if err := c.load(ctx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.cards[name] = cd.Clone()
	data, err := json.Marshal(c.cards)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCacheIO, err, "encode card cache")
	}
	if err := c.store.Save(ctx, data); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCacheIO, err, "save card cache")
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
	return nil
}

// Len returns the number of cached cards.
func (c *Cache) Len(ctx context.Context) (int, error) {
	if err := c.load(ctx); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cards), nil
}

// Names returns the cached names in sorted order.
func (c *Cache) Names(ctx context.Context) ([]string, error) {
	if err := c.load(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	names := make([]string, 0, len(c.cards))
	for name := range c.cards {
		names = append(names, name)
	}
	c.mu.RUnlock()
	slices.Sort(names)
	return names, nil
}

// Clear empties the cache and removes the persisted snapshot.
func (c *Cache) Clear(ctx context.Context) error {
	c.initMu.Lock()
	defer c.initMu.Unlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.Clear(ctx); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeCacheIO, err, "clear card cache")
	}
	c.cards = make(map[string]card.Card)
	c.loaded.Store(true)
	return nil
}
