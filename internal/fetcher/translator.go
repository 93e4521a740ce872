package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// TranslatorConfig holds feed-translation client configuration.
type TranslatorConfig struct {
	Endpoint string // feed-to-JSON service base URL
	Timeout  time.Duration
}

// TranslatorClient calls an external feed-to-JSON translation service.
type TranslatorClient struct {
	endpoint   string
	httpClient *http.Client
}

// NewTranslatorClient creates a translation service client.
func NewTranslatorClient(config TranslatorConfig) (*TranslatorClient, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("endpoint is required")
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &TranslatorClient{
		endpoint:   config.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// translateResponse is the translation service payload.
type translateResponse struct {
	Status string          `json:"status"`
	Items  []translateItem `json:"items"`
}

type translateItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	GUID        string `json:"guid"`
	PubDate     string `json:"pubDate"`
	Description string `json:"description"`
}

// Translate fetches feedURL through the translation service and returns
// the feed's items. A non-success status sentinel, a non-2xx response and
// a parse failure are all errors; the caller treats any of them as zero
// records.
func (c *TranslatorClient) Translate(ctx context.Context, feedURL string) ([]RawRecord, error) {
	reqURL := c.endpoint + "?rss_url=" + url.QueryEscape(feedURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("translation service error (status %d)", resp.StatusCode)
	}

	var payload translateResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if payload.Status != "ok" {
		return nil, fmt.Errorf("translation service status %q", payload.Status)
	}

	records := make([]RawRecord, 0, len(payload.Items))
	for _, item := range payload.Items {
		records = append(records, RawRecord{
			Title:       item.Title,
			Link:        item.Link,
			GUID:        item.GUID,
			PubDate:     item.PubDate,
			Description: item.Description,
		})
	}
	return records, nil
}

// FeedFetcher pulls one syndication feed through the translation service.
type FeedFetcher struct {
	client *TranslatorClient
	kind   models.Source
	name   string
	url    string
	cap    int
}

// NewFeedFetcher creates a fetcher for a single translated feed.
func NewFeedFetcher(client *TranslatorClient, kind models.Source, name, feedURL string, cap int) *FeedFetcher {
	return &FeedFetcher{client: client, kind: kind, name: name, url: feedURL, cap: cap}
}

func (f *FeedFetcher) Kind() models.Source { return f.kind }

func (f *FeedFetcher) Name() string { return f.name }

func (f *FeedFetcher) Fetch(ctx context.Context) ([]RawRecord, error) {
	records, err := f.client.Translate(ctx, f.url)
	if err != nil {
		return nil, err
	}
	return capRecords(records, f.cap), nil
}
