package fetcher

import (
	"context"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// RSSFetcher parses a syndication feed directly, bypassing the
// translation service. Used for feeds that already serve clean RSS/Atom.
type RSSFetcher struct {
	kind   models.Source
	name   string
	url    string
	cap    int
	parser *gofeed.Parser
}

// NewRSSFetcher creates a direct RSS fetcher for a single feed.
func NewRSSFetcher(kind models.Source, name, feedURL string, cap int) *RSSFetcher {
	return &RSSFetcher{
		kind:   kind,
		name:   name,
		url:    feedURL,
		cap:    cap,
		parser: gofeed.NewParser(),
	}
}

func (f *RSSFetcher) Kind() models.Source { return f.kind }

func (f *RSSFetcher) Name() string { return f.name }

func (f *RSSFetcher) Fetch(ctx context.Context) ([]RawRecord, error) {
	feed, err := f.parser.ParseURLWithContext(f.url, ctx)
	if err != nil {
		return nil, err
	}

	records := make([]RawRecord, 0, len(feed.Items))
	for _, entry := range feed.Items {
		pubDate := entry.Published
		if entry.PublishedParsed != nil {
			pubDate = entry.PublishedParsed.Format(time.RFC3339)
		}
		records = append(records, RawRecord{
			Title:       entry.Title,
			Link:        entry.Link,
			GUID:        entry.GUID,
			PubDate:     pubDate,
			Description: entry.Description,
			Tags:        entry.Categories,
		})
	}
	return capRecords(records, f.cap), nil
}
