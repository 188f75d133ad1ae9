// Package cache persists resolved cards between runs.
//
// # Overview
//
// [Cache] is the name→card map consulted by the resolver before it calls the
// lookup service. It is created explicitly with [New] and handed to whoever
// needs it; there is no package-level instance, so tests can build isolated
// caches freely.
//
// The map is loaded lazily from a [Store] on first use. Concurrent first
// callers share a single load; if loading fails the error goes to the caller
// that triggered it and the next call tries again.
//
// # Persistence
//
// Every [Cache.Put] rewrites the whole snapshot through [Store.Save]. Stores
// must replace the previous snapshot atomically, so a reader never observes a
// partially written snapshot:
//
//   - [FileStore] writes a sibling ".tmp" file and renames it over the target
//   - [RedisStore] stores the snapshot under a single key with one SET
//   - [NullStore] keeps nothing (caching disabled)
//
// # Concurrency
//
// Reads take a shared lock, writes an exclusive one. Two concurrent Puts are
// serialized and each saves a full snapshot, so the later snapshot always
// contains the earlier entry.
package cache
