package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// ModelRank is one leaderboard entry.
type ModelRank struct {
	Name     string  `json:"name"`
	Provider string  `json:"provider"`
	URL      string  `json:"url"`
	Score    float64 `json:"score"`
}

// LeaderboardSnapshot is the leaderboard state at one point in time.
type LeaderboardSnapshot struct {
	Models  []ModelRank `json:"models"`
	Updated time.Time   `json:"updated"`
}

// LeaderboardConfig holds leaderboard client configuration.
type LeaderboardConfig struct {
	Endpoint string // empty means "always use the fallback snapshot"
	Timeout  time.Duration
}

// LeaderboardFetcher pulls the model leaderboard. When the live call
// fails or no endpoint is configured, it serves a locally simulated
// snapshot instead of surfacing an error.
type LeaderboardFetcher struct {
	endpoint   string
	httpClient *http.Client
	fallback   LeaderboardSnapshot
	cap        int
}

// NewLeaderboardFetcher creates a leaderboard fetcher with the given
// fallback snapshot.
func NewLeaderboardFetcher(config LeaderboardConfig, fallback LeaderboardSnapshot, cap int) *LeaderboardFetcher {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &LeaderboardFetcher{
		endpoint:   config.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		fallback:   fallback,
		cap:        cap,
	}
}

func (f *LeaderboardFetcher) Kind() models.Source { return models.SourceResearch }

func (f *LeaderboardFetcher) Name() string { return "Model Leaderboard" }

func (f *LeaderboardFetcher) Fetch(ctx context.Context) ([]RawRecord, error) {
	snapshot := f.fallback
	if f.endpoint != "" {
		live, err := f.fetchLive(ctx)
		if err != nil {
			slog.Debug("leaderboard fetch failed, using snapshot", "error", err)
		} else {
			snapshot = live
		}
	}
	return capRecords(snapshotRecords(snapshot), f.cap), nil
}

func (f *LeaderboardFetcher) fetchLive(ctx context.Context) (LeaderboardSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.endpoint, nil)
	if err != nil {
		return LeaderboardSnapshot{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return LeaderboardSnapshot{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LeaderboardSnapshot{}, fmt.Errorf("leaderboard error (status %d)", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return LeaderboardSnapshot{}, fmt.Errorf("failed to read response: %w", err)
	}

	var snapshot LeaderboardSnapshot
	if err := json.Unmarshal(body, &snapshot); err != nil {
		return LeaderboardSnapshot{}, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if len(snapshot.Models) == 0 {
		return LeaderboardSnapshot{}, fmt.Errorf("leaderboard returned no models")
	}
	return snapshot, nil
}

// snapshotRecords flattens a snapshot into dated raw records, best first.
func snapshotRecords(snapshot LeaderboardSnapshot) []RawRecord {
	updated := snapshot.Updated
	if updated.IsZero() {
		updated = time.Now()
	}
	records := make([]RawRecord, 0, len(snapshot.Models))
	for i, m := range snapshot.Models {
		records = append(records, RawRecord{
			Title:       fmt.Sprintf("#%d %s", i+1, m.Name),
			Link:        m.URL,
			PubDate:     updated.Format("2006-01-02"),
			Description: fmt.Sprintf("%s holds rank %d on the model leaderboard with a score of %.1f.", m.Name, i+1, m.Score),
			Category:    m.Provider,
		})
	}
	return records
}
