// Package scryfall provides a client for the Scryfall card search API.
//
// Only the fuzzy named-card endpoint is used:
//
//	GET https://api.scryfall.com/cards/named?fuzzy=<name>
//
// Scryfall answers with the single best match for a possibly misspelled or
// partial name, or 404 when the name is ambiguous or unknown. Ambiguity is
// reported as not-found; this package does not try to disambiguate.
//
// Scryfall asks clients to stay under 10 requests per second and to send a
// descriptive User-Agent; the embedded [integrations.Client] does both.
package scryfall
