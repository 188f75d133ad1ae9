// Package cli implements the pyregraph command-line interface.
//
// The graph command reads a decklist, resolves its cards through the local
// cache and Scryfall, and writes the pod graph as DOT (optionally SVG, PNG
// and JSON). The cache command inspects and clears the card cache. The CLI
// is built using cobra and logs through charmbracelet/log.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Each graph
// run gets its own logger tagged with a run ID, passed through
// context.Context to the helpers that write outputs.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// newLogger returns a logger writing to w at level, with "15:04:05.00"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// newRunLogger returns the logger for one graph run and its ID. Every line
// carries run=<id>. Pass a *Spinner as w so log lines clear the animation
// before they are printed.
func newRunLogger(w io.Writer, level log.Level) (*log.Logger, string) {
	id := uuid.NewString()
	return newLogger(w, level).With("run", id), id
}

// progress logs how long a step took.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond, e.g.
// "Wrote 3 files (1.234s)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches the run logger to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the run logger attached to ctx, or log.Default()
// outside a run.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
