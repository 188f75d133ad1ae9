// Package pkg provides the core libraries for Pyregraph pod graphs.
//
// # Overview
//
// Pyregraph reads a Magic: The Gathering decklist, resolves each card against
// Scryfall, and draws the chains that Birthing Pod or Pyre of Heroes can
// follow between the deck's creatures. The pkg directory is organized into
// four areas:
//
//  1. Domain - cards, pod graphs and their rendering
//  2. Resolution - the card cache and the Scryfall client
//  3. Orchestration - decklist ingestion and the pipeline runner
//  4. Infrastructure - errors, retries, metrics, configuration
//
// # Architecture
//
// The typical data flow:
//
//	Decklist (file or stdin)
//	         ↓
//	    [decklist] package (bounded concurrent ingestion, creature filter)
//	         ↓
//	    [resolve] package (cache first, then [integrations/scryfall])
//	         ↓
//	    [podgraph] package (policy-driven insertion, reachability)
//	         ↓
//	    [render/dot] package (DOT, plus SVG/PNG through Graphviz)
//
// # Quick Start
//
// Build and render a Pyre of Heroes graph:
//
//	store := cache.NewFileStore("cache.json")
//	client := scryfall.NewClient(integrations.Options{}, "")
//	res := resolve.New(cache.New(store), client, logger)
//
//	result, err := pipeline.NewRunner(res, logger).Run(ctx, os.Stdin, pipeline.Options{
//	    Policy:    pipeline.PolicyPyreOfHeroes,
//	    Highlight: "Chieftain",
//	})
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(result.Artifacts[pipeline.FormatDOT])
//
// # Main Packages
//
// ## Domain
//
// [card] - The resolved card value, decklist name trimming and mana value
// conversion.
//
// [podgraph] - Generic directed graph whose edges are decided by a policy at
// insertion time. BirthingPod links costs one apart; PyreOfHeroes also
// requires a shared creature type and labels the edge with it.
//
// [render/dot] - Graphviz document with one cluster per mana value, isolated
// and highlighted fills, and edge colors per label.
//
// [io] - Node-link JSON export of a pod graph.
//
// ## Resolution
//
// [cache] - Name to card map, loaded once from a [cache.Store] (file or
// Redis) and saved whole after every insertion.
//
// [resolve] - Cache-first resolver converting Scryfall records into cards.
//
// [integrations] - Rate-limited, retrying JSON client; [integrations/scryfall]
// wraps the named-card endpoint.
//
// ## Orchestration
//
// [decklist] - Concurrent ingestion yielding creatures in completion order
// and stopping at the first failure.
//
// [pipeline] - Options, validation and the Runner used by the CLI.
//
// ## Infrastructure
//
// [errors] - Structured errors with codes.
//
// [httputil] - Retry with exponential backoff.
//
// [observability] - Hook interfaces with a Prometheus implementation.
//
// [config] - TOML configuration file.
//
// [buildinfo] - Version data injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                  # All tests
//	go test ./pkg/podgraph/...     # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [card]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/card
// [podgraph]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/podgraph
// [render/dot]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/render/dot
// [io]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/cache
// [cache.Store]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/cache#Store
// [resolve]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/resolve
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/integrations
// [integrations/scryfall]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/integrations/scryfall
// [decklist]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/decklist
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/observability
// [config]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/config
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pyregraph/pkg/buildinfo
package pkg
