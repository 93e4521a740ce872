package fetcher

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

func newTranslatorServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("rss_url") == "" {
			t.Error("expected rss_url query parameter")
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestNewTranslatorClientRequiresEndpoint(t *testing.T) {
	if _, err := NewTranslatorClient(TranslatorConfig{}); err == nil {
		t.Error("expected error for empty endpoint")
	}
}

func TestTranslate(t *testing.T) {
	server := newTranslatorServer(t, http.StatusOK, `{
		"status": "ok",
		"items": [
			{
				"title": "New model released",
				"link": "https://example.com/release",
				"guid": "release-1",
				"pubDate": "2026-08-30 14:00:00",
				"description": "A new model."
			},
			{
				"title": "Benchmark results",
				"link": "https://example.com/bench",
				"guid": "bench-1",
				"pubDate": "2026-08-29 09:00:00",
				"description": "Numbers."
			}
		]
	}`)

	client, err := NewTranslatorClient(TranslatorConfig{Endpoint: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := client.Translate(t.Context(), "https://example.com/feed.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "New model released" {
		t.Errorf("unexpected title %q", records[0].Title)
	}
	if records[0].GUID != "release-1" {
		t.Errorf("unexpected guid %q", records[0].GUID)
	}
	if records[1].PubDate != "2026-08-29 09:00:00" {
		t.Errorf("unexpected pubDate %q", records[1].PubDate)
	}
}

func TestTranslateErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "error status sentinel",
			status: http.StatusOK,
			body:   `{"status": "error", "items": []}`,
		},
		{
			name:   "non-2xx response",
			status: http.StatusTooManyRequests,
			body:   `rate limited`,
		},
		{
			name:   "malformed payload",
			status: http.StatusOK,
			body:   `{"status": "ok", "items": [`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTranslatorServer(t, tt.status, tt.body)
			client, err := NewTranslatorClient(TranslatorConfig{Endpoint: server.URL})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := client.Translate(t.Context(), "https://example.com/feed.xml"); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFeedFetcherCapsRecords(t *testing.T) {
	server := newTranslatorServer(t, http.StatusOK, `{
		"status": "ok",
		"items": [
			{"title": "a", "link": "https://example.com/a", "pubDate": "2026-08-30"},
			{"title": "b", "link": "https://example.com/b", "pubDate": "2026-08-30"},
			{"title": "c", "link": "https://example.com/c", "pubDate": "2026-08-30"}
		]
	}`)

	client, err := NewTranslatorClient(TranslatorConfig{Endpoint: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := NewFeedFetcher(client, models.SourceNews, "Example", "https://example.com/feed.xml", 2)
	if f.Kind() != models.SourceNews {
		t.Errorf("unexpected kind %q", f.Kind())
	}

	records, err := f.Fetch(t.Context())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("expected cap of 2 records, got %d", len(records))
	}
}
