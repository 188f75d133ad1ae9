// Package pipeline runs the decklist → pod graph → document pipeline.
//
// This package is the single entry point used by the CLI. It wires ingestion
// ([decklist.Ingest]), graph construction ([podgraph.Graph]) and rendering
// ([dot.Write], plus optional SVG, PNG and JSON outputs) for a policy chosen
// by name.
//
// # Usage
//
//	runner := pipeline.NewRunner(resolver, logger)
//	result, err := runner.Run(ctx, os.Stdin, pipeline.Options{
//	    Policy:    pipeline.PolicyPyreOfHeroes,
//	    Highlight: "Chieftain",
//	    Formats:   []string{pipeline.FormatDOT, pipeline.FormatSVG},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("graph.dot", result.Artifacts[pipeline.FormatDOT], 0o644)
//
// Generic callers that want the graph itself use [Build] with a concrete
// policy.
//
// [decklist.Ingest]: github.com/matzehuels/pyregraph/pkg/decklist.Ingest
// [podgraph.Graph]: github.com/matzehuels/pyregraph/pkg/podgraph.Graph
// [dot.Write]: github.com/matzehuels/pyregraph/pkg/render/dot.Write
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pyregraph/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and config
// =============================================================================

// Policy names accepted by [Options.Policy].
const (
	PolicyBirthingPod  = "birthing-pod"
	PolicyPyreOfHeroes = "pyre-of-heroes"

	// DefaultPolicy is used when Options.Policy is empty.
	DefaultPolicy = PolicyBirthingPod
)

// Format constants for output formats.
const (
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
)

// ValidPolicies lists the supported policy names in display order.
var ValidPolicies = []string{PolicyBirthingPod, PolicyPyreOfHeroes}

// ValidFormats lists the supported output formats in display order.
var ValidFormats = []string{FormatDOT, FormatSVG, FormatPNG, FormatJSON}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Policy selects the edge rule by name (DefaultPolicy when empty).
	Policy string `json:"policy,omitempty"`

	// Highlight marks the cards that can reach the first card whose name
	// contains it. Empty disables highlighting.
	Highlight string `json:"highlight,omitempty"`

	// Formats lists the artifacts to produce (FormatDOT when empty).
	Formats []string `json:"formats,omitempty"`

	// Concurrency caps lookups in flight (runtime.NumCPU() when zero).
	Concurrency int `json:"concurrency,omitempty"`

	// SkipBlank drops empty decklist lines instead of resolving them.
	SkipBlank bool `json:"skip_blank,omitempty"`

	// Runtime options (not serialized)
	Logger   *log.Logger                  `json:"-"`
	Progress func(added int, name string) `json:"-"` // called after each card joins the graph

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Policy         string
	NodeCount      int
	EdgeCount      int
	IsolatedCount  int
	HighlightCount int
	BuildTime      time.Duration
	RenderTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidatePolicy checks that a policy name is valid.
func ValidatePolicy(policy string) error {
	if !slices.Contains(ValidPolicies, policy) {
		return errors.New(errors.ErrCodeInvalidPolicy, "invalid policy: %q (must be one of: %s)",
			policy, strings.Join(ValidPolicies, ", "))
	}
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Policy == "" {
		o.Policy = DefaultPolicy
	}
	if err := ValidatePolicy(o.Policy); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatDOT}
	}
	o.Formats = dedupe(o.Formats)
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Concurrency < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "concurrency must not be negative, got %d", o.Concurrency)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Wants reports whether format is among the requested formats.
func (o *Options) Wants(format string) bool {
	return slices.Contains(o.Formats, format)
}

func dedupe(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
