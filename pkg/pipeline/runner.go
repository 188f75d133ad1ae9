package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyregraph/pkg/decklist"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
)

// Runner executes the pipeline against a resolver.
//
// The Runner is stateless except for the resolver and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Resolver decklist.Resolver
	Logger   *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(res decklist.Resolver, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Resolver: res, Logger: logger}
}

// Run reads a decklist from in, builds the graph for opts.Policy and renders
// the requested formats.
func (r *Runner) Run(ctx context.Context, in io.Reader, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	switch opts.Policy {
	case PolicyPyreOfHeroes:
		return execute[string](ctx, r, in, podgraph.PyreOfHeroes{}, opts)
	default:
		return execute[podgraph.NoInfo](ctx, r, in, podgraph.BirthingPod{}, opts)
	}
}

func execute[E comparable](ctx context.Context, r *Runner, in io.Reader, policy podgraph.Policy[E], opts Options) (*Result, error) {
	result := &Result{Stats: Stats{Policy: opts.Policy}}

	// Stage 1: Build
	buildStart := time.Now()
	g, err := Build(ctx, in, r.Resolver, opts.Policy, policy, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = g.NodeCount()
	result.Stats.EdgeCount = g.EdgeCount()
	for id := range g.Nodes() {
		if g.IsIsolated(id) {
			result.Stats.IsolatedCount++
		}
	}
	if opts.Highlight != "" {
		result.Stats.HighlightCount = g.ReachableTo(opts.Highlight).Len()
	}

	opts.Logger.Info("built graph",
		"policy", opts.Policy,
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, err := Render(ctx, g, opts.Policy, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	opts.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}
