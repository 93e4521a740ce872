// Package aggregate orchestrates every source fetcher, applies the
// static-fallback policy and produces one flat collection of normalized
// content items per run.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pulsefeed/pulsefeed/internal/fetcher"
	"github.com/pulsefeed/pulsefeed/internal/normalize"
	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// PostLoader supplies blog post records from the Git-backed CMS working
// copy. Implemented by the blog package.
type PostLoader interface {
	Posts(ctx context.Context) ([]models.ContentItem, error)
}

// Config holds aggregator configuration.
type Config struct {
	FetchTimeout time.Duration // per-fetcher deadline; zero disables it
}

// Aggregator fans out over all registered fetchers, collects whichever
// succeed and substitutes static sets where the live path yields nothing.
type Aggregator struct {
	config   Config
	fetchers []fetcher.Fetcher
	statics  map[models.Source][]models.ContentItem
	posts    PostLoader // nil when no blog source is configured
}

// Result holds one aggregation run's output.
type Result struct {
	Items    []models.ContentItem
	PerKind  map[models.Source]int
	Duration time.Duration
	Errors   []error // diagnostic only; never aborts the run
}

// New creates an Aggregator. statics maps each kind with a fallback (or
// static-only) content set; posts may be nil.
func New(config Config, fetchers []fetcher.Fetcher, statics map[models.Source][]models.ContentItem, posts PostLoader) *Aggregator {
	return &Aggregator{
		config:   config,
		fetchers: fetchers,
		statics:  statics,
		posts:    posts,
	}
}

// fetchOutcome is one settled fetcher invocation.
type fetchOutcome struct {
	kind    models.Source
	name    string
	records []fetcher.RawRecord
	err     error
}

// Run invokes every fetcher concurrently, waits for all to settle, then
// combines live, fallback and loader-backed contributions into one flat
// collection. No fetcher failure aborts or blocks the others, and none
// escapes to the caller.
func (a *Aggregator) Run(ctx context.Context) Result {
	start := time.Now()
	result := Result{PerKind: make(map[models.Source]int)}

	outcomes := a.fanOut(ctx)

	// Combination happens strictly after every fetcher has settled, so
	// apparent completion order never affects output.
	liveByKind := make(map[models.Source][]models.ContentItem)
	for _, outcome := range outcomes {
		if outcome.err != nil {
			slog.Debug("source fetch failed", "source", outcome.name, "kind", outcome.kind, "error", outcome.err)
			result.Errors = append(result.Errors, fmt.Errorf("%s: %w", outcome.name, outcome.err))
			continue
		}
		items := normalize.Records(outcome.records, outcome.kind)
		liveByKind[outcome.kind] = append(liveByKind[outcome.kind], items...)
	}

	// IDs are unique within a run; a collision means the same item arrived
	// through more than one feed and the later occurrence is dropped.
	seen := make(map[string]struct{})
	for kind, items := range a.combine(ctx, liveByKind, &result) {
		kept := make([]models.ContentItem, 0, len(items))
		for _, item := range items {
			if _, dup := seen[item.ID]; dup {
				continue
			}
			seen[item.ID] = struct{}{}
			kept = append(kept, item)
		}
		result.PerKind[kind] = len(kept)
		result.Items = append(result.Items, kept...)
	}

	result.Duration = time.Since(start)
	return result
}

// fanOut runs every fetcher in its own goroutine and blocks until all
// have settled. A panicking or hung fetcher degrades to zero records; the
// per-fetcher timeout keeps a hung one from blocking the batch wait.
func (a *Aggregator) fanOut(ctx context.Context) []fetchOutcome {
	outcomes := make([]fetchOutcome, len(a.fetchers))
	var wg sync.WaitGroup

	for i, f := range a.fetchers {
		wg.Add(1)
		go func(i int, f fetcher.Fetcher) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					outcomes[i] = fetchOutcome{kind: f.Kind(), name: f.Name(), err: fmt.Errorf("fetcher panic: %v", r)}
				}
			}()

			fetchCtx := ctx
			if a.config.FetchTimeout > 0 {
				var cancel context.CancelFunc
				fetchCtx, cancel = context.WithTimeout(ctx, a.config.FetchTimeout)
				defer cancel()
			}

			records, err := f.Fetch(fetchCtx)
			outcomes[i] = fetchOutcome{kind: f.Kind(), name: f.Name(), records: records, err: err}
		}(i, f)
	}

	wg.Wait()
	return outcomes
}

// combine applies the fallback policy per kind. Live data fully replaces
// the static set for a kind, except jobs and tools where the static set
// is a curated floor and both are always merged. Kinds without any live
// fetcher pass their static set straight through.
func (a *Aggregator) combine(ctx context.Context, liveByKind map[models.Source][]models.ContentItem, result *Result) map[models.Source][]models.ContentItem {
	combined := make(map[models.Source][]models.ContentItem)

	for kind, live := range liveByKind {
		combined[kind] = live
	}

	for kind, set := range a.statics {
		switch kind {
		case models.SourceJobs, models.SourceTools:
			combined[kind] = MergeDedupe(append(append([]models.ContentItem{}, set...), combined[kind]...))
		default:
			if len(combined[kind]) == 0 {
				combined[kind] = set
			}
		}
	}

	if a.posts != nil {
		posts, err := a.posts.Posts(ctx)
		if err != nil {
			slog.Debug("blog post load failed", "error", err)
			result.Errors = append(result.Errors, fmt.Errorf("blog: %w", err))
		} else {
			combined[models.SourceBlog] = posts
		}
	}

	return combined
}
