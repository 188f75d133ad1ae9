// Package integrations provides the HTTP plumbing for remote card lookups.
//
// # Overview
//
// Service-specific clients live in subpackages:
//
//   - [scryfall]: Scryfall card search API
//
// # Client Pattern
//
// Subpackage clients embed [Client] and add typed fetch methods:
//
//	client := scryfall.NewClient(integrations.Options{}, "")
//	c, err := client.NamedFuzzy(ctx, "goblin matron")
//
// [Client] handles:
//   - Client-side rate limiting (token bucket, [DefaultRateLimit] per second)
//   - A per-request timeout ([DefaultTimeout])
//   - Retry with exponential backoff for 5xx, 429 and transport failures
//   - Mapping HTTP statuses onto pkg/errors codes
//
// [scryfall]: github.com/matzehuels/pyregraph/pkg/integrations/scryfall
package integrations
