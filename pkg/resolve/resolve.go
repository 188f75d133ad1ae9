package resolve

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyregraph/pkg/cache"
	"github.com/matzehuels/pyregraph/pkg/card"
	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/integrations/scryfall"
	"github.com/matzehuels/pyregraph/pkg/observability"
)

// Lookup fetches the remote record best matching a name.
// *scryfall.Client satisfies it.
type Lookup interface {
	NamedFuzzy(ctx context.Context, name string) (*scryfall.Card, error)
}

// Resolver resolves names cache-first. It is safe for concurrent use.
type Resolver struct {
	cache  *cache.Cache
	lookup Lookup
	logger *log.Logger
}

// New creates a Resolver. A nil cache resolves every name remotely; a nil
// logger discards output.
func New(c *cache.Cache, lookup Lookup, logger *log.Logger) *Resolver {
	if c == nil {
		c = cache.New(nil)
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Resolver{cache: c, lookup: lookup, logger: logger}
}

// Resolve returns the card for name.
//
// Cached cards are returned without a remote call. Otherwise the lookup
// result is converted with [ToCard] and stored under name. Errors come from
// the lookup (not found, network, rate limited) or from [ToCard].
func (r *Resolver) Resolve(ctx context.Context, name string) (card.Card, error) {
	start := time.Now()

	cd, hit, err := r.cache.Get(ctx, name)
	switch {
	case err != nil:
		r.logger.Warn("cache read failed", "card", name, "err", err)
	case !hit:
		r.logger.Info("cache miss", "card", name)
	}
	if hit {
		r.logger.Debug("cache hit", "card", name)
		observability.Pipeline().OnResolveComplete(ctx, observability.SourceCache, time.Since(start), nil)
		return cd, nil
	}

	cd, err = r.fetch(ctx, name)
	observability.Pipeline().OnResolveComplete(ctx, observability.SourceRemote, time.Since(start), err)
	if err != nil {
		return card.Card{}, err
	}

	if err := r.cache.Put(ctx, name, cd); err != nil {
		if errors.IsFatal(err) {
			return card.Card{}, err
		}
		r.logger.Warn("cache write failed", "card", name, "err", err)
	}
	return cd, nil
}

func (r *Resolver) fetch(ctx context.Context, name string) (card.Card, error) {
	rec, err := r.lookup.NamedFuzzy(ctx, name)
	if err != nil {
		return card.Card{}, err
	}
	r.logger.Debug("fetched", "card", name, "matched", rec.Name)
	return ToCard(rec)
}

// ToCard converts a lookup record into a Card.
//
// The type line is split on single spaces, keeping the separator token, so
// "Creature — Elf Druid" becomes ["Creature", "—", "Elf", "Druid"]. A missing
// type line yields no types. The mana cost must be present and a whole
// number in [0, 255]; anything else is a data-integrity error.
func ToCard(rec *scryfall.Card) (card.Card, error) {
	if rec == nil {
		return card.Card{}, errors.New(errors.ErrCodeInternal, "nil lookup record")
	}
	if rec.CMC == nil {
		return card.Card{}, errors.New(errors.ErrCodeDataIntegrity, "%s has no mana cost", rec.Name)
	}
	cmc, err := card.CMCFromFloat(*rec.CMC)
	if err != nil {
		return card.Card{}, errors.Wrap(errors.ErrCodeDataIntegrity, err, "%s", rec.Name)
	}

	types := []string{}
	if rec.TypeLine != nil {
		types = strings.Split(*rec.TypeLine, " ")
	}
	return card.Card{Name: rec.Name, CMC: cmc, Types: types}, nil
}
