// Package digest wires aggregation, filtering and formatting into the
// end-to-end daily-digest build.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/aggregate"
	"github.com/pulsefeed/pulsefeed/internal/format"
	"github.com/pulsefeed/pulsefeed/internal/scrape"
	"github.com/pulsefeed/pulsefeed/internal/store"
	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// Pipeline builds dated digests from the aggregation core.
type Pipeline struct {
	aggregator *aggregate.Aggregator
	formatter  *format.Formatter
	enricher   *scrape.Enricher // nil when enrichment is disabled
	store      *store.Client    // nil when the query service is unconfigured
}

// Result holds one digest build.
type Result struct {
	Payload    string
	Report     format.CharacterReport
	Items      []models.ContentItem // the filtered, sorted selection
	ItemsTotal int                  // aggregated before date filtering
	Duration   time.Duration
	Errors     []error // non-fatal, diagnostic only
}

// New creates a digest pipeline. enricher and storeClient may be nil.
func New(aggregator *aggregate.Aggregator, formatter *format.Formatter, enricher *scrape.Enricher, storeClient *store.Client) *Pipeline {
	return &Pipeline{
		aggregator: aggregator,
		formatter:  formatter,
		enricher:   enricher,
		store:      storeClient,
	}
}

// Build aggregates all sources, keeps the items relevant to date, and
// renders them in the given mode. Failures of individual sources, of
// enrichment and of store indexing are recorded but never fail the build.
func (p *Pipeline) Build(ctx context.Context, date time.Time, mode format.Mode) *Result {
	start := time.Now()

	run := p.aggregator.Run(ctx)
	result := &Result{ItemsTotal: len(run.Items), Errors: run.Errors}

	selected := aggregate.SortByDateDesc(aggregate.FilterByDate(run.Items, date))

	if p.enricher != nil {
		selected = p.enricher.Enrich(ctx, selected)
	}

	if p.store != nil {
		if err := p.store.IndexItems(ctx, selected); err != nil {
			slog.Debug("digest indexing failed", "error", err)
			result.Errors = append(result.Errors, fmt.Errorf("index: %w", err))
		}
	}

	result.Items = selected
	result.Payload = p.formatter.Render(selected, mode)
	result.Report = format.CheckLength(result.Payload)
	result.Duration = time.Since(start)

	slog.Debug("digest built",
		"date", date.Format("2006-01-02"),
		"mode", mode,
		"items", len(selected),
		"chars", result.Report.Count,
		"source_errors", len(result.Errors),
	)
	return result
}

// Search queries previously indexed digest items.
func (p *Pipeline) Search(ctx context.Context, query string, limit int) ([]models.ContentItem, error) {
	if p.store == nil {
		return nil, fmt.Errorf("query service not configured")
	}
	return p.store.SearchItems(ctx, query, limit)
}
