package layout

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/gardar/tatekumi/internal/logger"
)

var Logger = logger.GetLogger("layout")

// Continuation is the state threaded from page to page: true when the next
// page's first line opens an indented paragraph, false when it continues the
// last line already emitted.
type Continuation bool

// docState is the accumulator of the page fold.
type docState struct {
	lines []string
	next  Continuation
}

// Baseline returns the column baseline for the configured column count.
func Baseline(doc Document, cfg Config) float64 {
	if cfg.Columns == 1 {
		return math.Inf(1)
	}
	return ColumnBaseline(doc.Pages, cfg.BaselinePrefixPages)
}

// PreparePage computes the metrics of a page and orders its body fragments.
func PreparePage(page Page, baseline float64, cfg Config) (PreparedPage, error) {
	prepared := PreparedPage{Number: page.Number, Width: page.Width, Height: page.Height}
	metrics, ok := Metrics(page, cfg)
	if !ok {
		prepared.Skip = true
		return prepared, nil
	}
	frags, err := FilterBody(page, cfg.BodyType)
	if err != nil {
		return prepared, err
	}
	AssignColumns(frags, baseline)
	SortReadingOrder(frags)
	prepared.Fragments = frags
	prepared.Metrics = metrics
	prepared.Extents = ColumnExtents(frags)
	return prepared, nil
}

// PreparePages prepares every page concurrently. The result keeps source order.
func PreparePages(ctx context.Context, pages []Page, baseline float64, cfg Config) ([]PreparedPage, error) {
	prepared := make([]PreparedPage, len(pages))
	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := PreparePage(pages[i], baseline, cfg)
			if err != nil {
				return err
			}
			prepared[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return prepared, nil
}

// Reconstruct runs the full pipeline and returns the logical lines of doc.
func Reconstruct(ctx context.Context, doc Document, cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	baseline := Baseline(doc, cfg)
	Logger.Debug("column baseline", "baseline", baseline, "pages", len(doc.Pages))

	prepared, err := PreparePages(ctx, doc.Pages, baseline, cfg)
	if err != nil {
		return nil, err
	}
	return Fold(prepared, cfg), nil
}

// Fold assembles prepared pages in order, starting with an indented first line.
func Fold(pages []PreparedPage, cfg Config) []string {
	state := docState{next: true}
	for _, p := range pages {
		if p.Skip {
			Logger.Debug("page skipped, no body text", "page", p.Number)
			continue
		}
		state = mergePage(state, AssemblePage(p, state.next, cfg))
	}
	return state.lines
}

// mergePage appends one page's lines to the accumulated output. A page whose
// first line is not indented continues the last accumulated line.
func mergePage(state docState, page PageLines) docState {
	state.next = Continuation(page.NextPageIndent)
	if page.FirstIndent {
		state.lines = append(state.lines, page.Lines...)
		return state
	}
	if len(page.Lines) == 0 {
		return state
	}
	if len(state.lines) == 0 {
		state.lines = append(state.lines, page.Lines[0])
	} else {
		state.lines[len(state.lines)-1] += page.Lines[0]
	}
	state.lines = append(state.lines, page.Lines[1:]...)
	return state
}
