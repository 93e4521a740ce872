package fetcher

import (
	"context"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// RawRecord is a pre-normalization source record. It exists only between a
// fetcher and the normalizer; nothing downstream of the aggregator sees it.
type RawRecord struct {
	Title       string
	Link        string
	GUID        string
	PubDate     string
	Description string
	Category    string
	Tags        []string
}

// Fetcher retrieves zero or more raw records from one external feed for
// one source kind. A failed fetch returns an error and the caller treats
// it as zero records; fetchers never retry internally.
type Fetcher interface {
	// Kind returns the source kind this fetcher contributes to.
	Kind() models.Source
	// Name returns the human-readable feed name used for attribution.
	Name() string
	// Fetch retrieves the current records, newest first where the
	// upstream provides an order.
	Fetch(ctx context.Context) ([]RawRecord, error)
}

// cap bounds a record slice so one noisy source cannot dominate the
// merged timeline. n <= 0 leaves the slice unbounded.
func capRecords(records []RawRecord, n int) []RawRecord {
	if n > 0 && len(records) > n {
		return records[:n]
	}
	return records
}
