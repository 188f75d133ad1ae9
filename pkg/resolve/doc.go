// Package resolve turns normalized card names into [card.Card] values.
//
// A [Resolver] consults the card cache first and falls back to a remote
// [Lookup] on a miss. Remote answers are converted with [ToCard] and written
// back to the cache. Cache trouble never fails a resolution: read and write
// errors are logged at warn level and the lookup proceeds as if the cache
// were empty.
//
// [card.Card]: github.com/matzehuels/pyregraph/pkg/card.Card
package resolve
