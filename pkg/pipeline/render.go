package pipeline

import (
	"bytes"
	"context"
	"time"

	pgio "github.com/matzehuels/pyregraph/pkg/io"
	"github.com/matzehuels/pyregraph/pkg/observability"
	"github.com/matzehuels/pyregraph/pkg/podgraph"
	"github.com/matzehuels/pyregraph/pkg/render/dot"
)

// Render produces every artifact requested in opts.Formats from g.
//
// The DOT document is always built since the image formats are laid out
// from it; it is only returned when FormatDOT is requested.
func Render[E comparable](ctx context.Context, g *podgraph.Graph[E], policyName string, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts, err := render(ctx, g, policyName, opts)

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func render[E comparable](ctx context.Context, g *podgraph.Graph[E], policyName string, opts Options) (map[string][]byte, error) {
	var doc bytes.Buffer
	if err := dot.Write(&doc, g, dot.Options{Highlight: opts.Highlight}); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			artifacts[format] = doc.Bytes()
		case FormatSVG:
			svg, err := dot.RenderSVG(ctx, doc.String())
			if err != nil {
				return nil, err
			}
			artifacts[format] = svg
		case FormatPNG:
			png, err := dot.RenderPNG(ctx, doc.String())
			if err != nil {
				return nil, err
			}
			artifacts[format] = png
		case FormatJSON:
			var buf bytes.Buffer
			if err := pgio.WriteJSON(g, policyName, &buf); err != nil {
				return nil, err
			}
			artifacts[format] = buf.Bytes()
		}
	}
	return artifacts, nil
}
