package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/matzehuels/pyregraph/pkg/decklist"
	"github.com/matzehuels/pyregraph/pkg/observability"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
)

// Build ingests the decklist in r and folds the resulting cards into a graph
// linked by policy. Cards are inserted in completion order.
//
// opts must have been validated; policyName only labels logs and metrics.
// On error the partially built graph is discarded.
func Build[E comparable](ctx context.Context, r io.Reader, res decklist.Resolver, policyName string, policy podgraph.Policy[E], opts Options) (*podgraph.Graph[E], error) {
	hooks := observability.Pipeline()
	hooks.OnBuildStart(ctx, policyName)
	start := time.Now()

	g, err := build(ctx, r, res, policy, opts)

	nodes, edges := 0, 0
	if g != nil {
		nodes, edges = g.NodeCount(), g.EdgeCount()
	}
	hooks.OnBuildComplete(ctx, policyName, nodes, edges, time.Since(start), err)
	return g, err
}

func build[E comparable](ctx context.Context, r io.Reader, res decklist.Resolver, policy podgraph.Policy[E], opts Options) (*podgraph.Graph[E], error) {
	g := podgraph.New(policy)
	seq := decklist.Ingest(ctx, r, res, decklist.Options{
		Concurrency: opts.Concurrency,
		SkipBlank:   opts.SkipBlank,
	})

	for c, err := range seq {
		if err != nil {
			return nil, err
		}
		opts.Logger.Debug("added", "card", c.Name, "cmc", c.CMC)
		g.Insert(c)
		if opts.Progress != nil {
			opts.Progress(g.NodeCount(), c.Name)
		}
	}
	return g, nil
}
