package decklist

import (
	"bufio"
	"context"
	"io"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pyregraph/pkg/card"
	"github.com/matzehuels/pyregraph/pkg/errors"
)

// Resolver resolves a normalized card name.
// *resolve.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, name string) (card.Card, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, name string) (card.Card, error)

// Resolve calls f(ctx, name).
func (f ResolverFunc) Resolve(ctx context.Context, name string) (card.Card, error) {
	return f(ctx, name)
}

// Options configures [Ingest].
type Options struct {
	// Concurrency caps resolutions in flight. Zero or negative selects
	// runtime.NumCPU().
	Concurrency int

	// SkipBlank drops lines that are empty after normalization. When false,
	// blank lines are resolved like any other name, which normally fails.
	SkipBlank bool
}

func (o Options) withDefaults() Options {
	if o.Concurrency <= 0 {
		o.Concurrency = runtime.NumCPU()
	}
	return o
}

// Ingest returns a lazy sequence of the creature cards named in r.
//
// Nothing is read until the sequence is ranged over. Breaking out of the
// loop cancels outstanding resolutions and waits for them to return. The
// goroutine reading r is never waited for: a read blocked on a slow or idle
// stream is left behind and exits once the read returns. See the package
// documentation for ordering and failure semantics.
func Ingest(ctx context.Context, r io.Reader, res Resolver, opts Options) iter.Seq2[card.Card, error] {
	opts = opts.withDefaults()

	return func(yield func(card.Card, error) bool) {
		inner, cancel := context.WithCancel(ctx)
		defer cancel()

		g, gctx := errgroup.WithContext(inner)
		g.SetLimit(opts.Concurrency)

		lines := make(chan string)
		readErr := make(chan error, 1)
		go scan(inner.Done(), r, lines, readErr)

		results := make(chan card.Card)
		done := make(chan error, 1)
		go func() {
			schedule(gctx, g, lines, readErr, res, opts, results)
			done <- g.Wait()
		}()

		for {
			select {
			case cd := <-results:
				if !yield(cd, nil) {
					cancel()
					<-done
					return
				}
			case err := <-done:
				if err == nil {
					err = ctx.Err()
				}
				if err != nil {
					yield(card.Card{}, err)
				}
				return
			}
		}
	}
}

// scan sends every line of r on lines and closes it at EOF. A read error is
// put on errc before lines is closed. It gives up as soon as stop is closed.
func scan(stop <-chan struct{}, r io.Reader, lines chan<- string, errc chan<- error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		select {
		case lines <- sc.Text():
		case <-stop:
			return
		}
	}
	if err := sc.Err(); err != nil {
		errc <- err
	}
	close(lines)
}

// schedule starts one resolution per input line. It stops scheduling once
// ctx is done, without waiting for the next line; a read error is reported
// through the group.
func schedule(ctx context.Context, g *errgroup.Group, lines <-chan string, readErr <-chan error, res Resolver, opts Options, out chan<- card.Card) {
	for {
		var line string
		select {
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					g.Go(func() error {
						return errors.Wrap(errors.ErrCodeInvalidInput, err, "read decklist")
					})
				default:
				}
				return
			}
			line = l
		case <-ctx.Done():
			return
		}
		if ctx.Err() != nil {
			return
		}

		name := card.TrimName(line)
		if name == "" && opts.SkipBlank {
			continue
		}
		g.Go(func() error {
			cd, err := res.Resolve(ctx, name)
			if err != nil {
				return err
			}
			if !cd.IsCreature() {
				return nil
			}
			select {
			case out <- cd.Subtypes():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
}
