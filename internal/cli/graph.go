package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pyregraph/pkg/cache"
	"github.com/matzehuels/pyregraph/pkg/config"
	"github.com/matzehuels/pyregraph/pkg/errors"
	"github.com/matzehuels/pyregraph/pkg/integrations"
	"github.com/matzehuels/pyregraph/pkg/integrations/scryfall"
	"github.com/matzehuels/pyregraph/pkg/observability"
	"github.com/matzehuels/pyregraph/pkg/pipeline"
	"github.com/matzehuels/pyregraph/pkg/resolve"
)

// stdio is the input and output name that selects stdin/stdout.
const stdio = "-"

// graphOpts holds the command-line flags for the graph command.
// Flags left unset fall back to the config file.
type graphOpts struct {
	output      string // DOT path; other formats are written next to it
	formats     string // comma-separated: dot, svg, png, json
	highlight   string // highlight cards that can reach this one
	policy      string // birthing-pod or pyre-of-heroes
	concurrency int    // lookups in flight
	noCache     bool   // bypass the card cache
	skipBlank   bool   // ignore empty decklist lines
	metricsFile string // Prometheus text file written after the run
}

// graphCommand creates the graph command that turns a decklist into a pod graph.
func (c *CLI) graphCommand() *cobra.Command {
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph [decklist|-]",
		Short: "Build the pod graph of a decklist",
		Long: `Build the pod graph of a decklist.

Each line of the decklist names one card, optionally preceded by a quantity
("2 Llanowar Elves"). Cards are looked up on Scryfall (cached locally), only
creatures are kept, and an edge joins two creatures when the chosen policy
lets one be fetched from the other:

  birthing-pod     costs differ by exactly one
  pyre-of-heroes   costs differ by exactly one and a creature type is shared

The graph is written as a Graphviz DOT document, clustered by mana value.
Isolated creatures are filled in one color; with --highlight, every creature
that can eventually chain into the named card is filled in another.

Reads the decklist from stdin when no file or "-" is given.`,
		Example: `  pyregraph graph deck.txt
  pyregraph graph deck.txt --policy pyre-of-heroes -t "Goblin Chieftain" -f dot,svg
  cat deck.txt | pyregraph graph -o - | dot -Tpng > deck.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts.merge(cmd, cfg)

			input := stdio
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGraph(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), input, cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, `output DOT file ("-" for stdout)`)
	cmd.Flags().StringVarP(&opts.formats, "format", "f", pipeline.FormatDOT, "output formats: dot, svg, png, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.highlight, "highlight", "t", "", "highlight the cards that can reach the first card whose name contains this (case-sensitive; empty disables highlighting)")
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", pipeline.DefaultPolicy, "edge policy: "+strings.Join(pipeline.ValidPolicies, ", "))
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "maximum lookups in flight (default: number of CPUs)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the card cache")
	cmd.Flags().BoolVar(&opts.skipBlank, "skip-blank", false, "ignore empty decklist lines")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file")

	return cmd
}

// merge fills every flag the user did not set from cfg.
func (o *graphOpts) merge(cmd *cobra.Command, cfg config.Config) {
	flags := cmd.Flags()
	if !flags.Changed("output") {
		o.output = cfg.Output.Path
	}
	if !flags.Changed("format") {
		o.formats = strings.Join(cfg.Output.Formats, ",")
	}
	if !flags.Changed("policy") {
		o.policy = cfg.Pipeline.Policy
	}
	if !flags.Changed("concurrency") {
		o.concurrency = cfg.Pipeline.Concurrency
	}
	if !flags.Changed("skip-blank") {
		o.skipBlank = cfg.Pipeline.SkipBlankLines
	}
}

// runGraph resolves the decklist, builds the graph, and writes every artifact.
func (c *CLI) runGraph(ctx context.Context, stdin io.Reader, stdout io.Writer, input string, cfg config.Config, opts graphOpts) error {
	if err := errors.ValidatePath(opts.output); err != nil {
		return err
	}
	formats := parseFormats(opts.formats)
	if opts.output == stdio && !slices.Equal(formats, []string{pipeline.FormatDOT}) {
		return errors.New(errors.ErrCodeInvalidPath, "only the dot format can be written to stdout")
	}

	in, closeIn, err := openInput(input, stdin)
	if err != nil {
		return err
	}
	defer closeIn()

	store, closeStore, err := newStore(cfg, opts.noCache)
	if err != nil {
		return err
	}
	defer closeStore()

	var metrics *observability.Prometheus
	if opts.metricsFile != "" {
		metrics = observability.NewPrometheus()
		metrics.Register()
		defer observability.Reset()
	}

	spinner := newSpinnerWithContext(ctx, "Resolving cards...")
	spinner.out = c.logOut
	logger, _ := newRunLogger(spinner, c.Logger.GetLevel())
	ctx = withLogger(ctx, logger)
	logger.Debug("starting run", "input", input, "cache", describeStore(store, cfg), "policy", opts.policy)

	client := scryfall.NewClient(integrations.Options{
		Timeout:   cfg.Lookup.Timeout,
		RateLimit: cfg.Lookup.RatePerSecond,
	}, cfg.Lookup.BaseURL)
	resolver := resolve.New(cache.New(store), client, logger)
	runner := pipeline.NewRunner(resolver, logger)

	prog := newProgress(logger)
	spinner.Start()
	result, err := runner.Run(ctx, in, pipeline.Options{
		Policy:      opts.policy,
		Highlight:   opts.highlight,
		Formats:     formats,
		Concurrency: opts.concurrency,
		SkipBlank:   opts.skipBlank,
		Progress: func(added int, name string) {
			spinner.SetMessage(fmt.Sprintf("Resolving cards... %d added", added))
		},
	})
	if err != nil {
		spinner.StopWithError("Graph failed: " + errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(ctx, stdout, opts.output, result.Artifacts)
	if err != nil {
		return err
	}

	if metrics != nil {
		if err := metrics.WriteToTextfile(opts.metricsFile); err != nil {
			return errors.Wrap(errors.ErrCodeOutputIO, err, "write metrics %s", opts.metricsFile)
		}
		paths = append(paths, opts.metricsFile)
	}
	if opts.output == stdio {
		return nil
	}
	prog.done(fmt.Sprintf("Wrote %d files", len(paths)))

	stats := result.Stats
	printSuccess("Graph complete")
	for _, p := range paths {
		printFile(p)
	}
	printStats(stats.NodeCount, stats.EdgeCount, stats.IsolatedCount, stats.HighlightCount)
	if opts.highlight != "" && stats.HighlightCount == 0 {
		printWarning("No creature matches %q", opts.highlight)
	}
	_, hasDOT := result.Artifacts[pipeline.FormatDOT]
	_, hasSVG := result.Artifacts[pipeline.FormatSVG]
	if hasDOT && !hasSVG {
		printNewline()
		printNextStep("Render", "dot -Tsvg "+opts.output+" -o "+artifactPath(opts.output, pipeline.FormatSVG))
	}
	return nil
}

// openInput opens the decklist file, or stdin for "-".
func openInput(input string, stdin io.Reader) (io.Reader, func(), error) {
	if input == stdio {
		return stdin, func() {}, nil
	}
	if err := errors.ValidatePath(input); err != nil {
		return nil, nil, err
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open decklist %s", input)
	}
	return f, func() { _ = f.Close() }, nil
}

// artifactPath returns where format is written for the output path: the DOT
// document at output itself, other formats beside it with their extension.
func artifactPath(output, format string) string {
	if format == pipeline.FormatDOT {
		return output
	}
	base := strings.TrimSuffix(output, filepath.Ext(output))
	return base + "." + format
}

// writeArtifacts writes every artifact and returns the written paths in
// format order.
func writeArtifacts(ctx context.Context, stdout io.Writer, output string, artifacts map[string][]byte) ([]string, error) {
	logger := loggerFromContext(ctx)

	if output == stdio {
		if _, err := stdout.Write(artifacts[pipeline.FormatDOT]); err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutputIO, err, "write DOT to stdout")
		}
		return nil, nil
	}

	var paths []string
	for _, format := range pipeline.ValidFormats {
		data, ok := artifacts[format]
		if !ok {
			continue
		}
		path := artifactPath(output, format)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, errors.Wrap(errors.ErrCodeOutputIO, err, "create directory %s", dir)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, errors.Wrap(errors.ErrCodeOutputIO, err, "write %s", path)
		}
		logger.Debug("wrote artifact", "format", format, "path", path, "bytes", len(data))
		paths = append(paths, path)
	}
	return paths, nil
}
