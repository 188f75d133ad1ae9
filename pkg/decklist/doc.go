// Package decklist turns a decklist text stream into resolved creature cards.
//
// Each line names one card, optionally prefixed by a quantity ("2 Birds of
// Paradise"). [Ingest] normalizes every line, resolves it with bounded
// concurrency, keeps only creatures, and trims their types down to the
// subtypes after the "—" separator.
//
// # Ordering
//
// Cards are yielded in completion order, not input order. Consumers that
// need a stable order must sort afterwards.
//
// # Failure
//
// The first error ends the sequence: it is yielded as the final element and
// all in-flight resolutions are cancelled. Cards that completed but were not
// consumed by then may be dropped.
package decklist
