package store

import (
	"context"
	"log/slog"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

const toolsTable = "tools"

// Directory serves the tool directory: store rows when the query service
// is configured and healthy, the curated fallback otherwise. Reads never
// surface a failure.
type Directory struct {
	client   *Client
	fallback []models.ContentItem
}

// NewDirectory creates the tool directory over an optional client.
func NewDirectory(client *Client, fallback []models.ContentItem) *Directory {
	return &Directory{client: client, fallback: fallback}
}

// List returns the current tool entries.
func (d *Directory) List(ctx context.Context) []models.ContentItem {
	if d.client == nil {
		return d.fallback
	}
	if !d.client.Ping(ctx) {
		slog.Debug("query service unreachable, using fallback")
		return d.fallback
	}

	rows, err := d.client.Select(ctx, toolsTable, nil, "date", 100)
	if err != nil {
		slog.Debug("tool directory read failed, using fallback", "error", err)
		return d.fallback
	}
	if len(rows) == 0 {
		return d.fallback
	}

	items := make([]models.ContentItem, 0, len(rows))
	for _, row := range rows {
		item := rowToItem(row)
		if item.Source == "" {
			item.Source = models.SourceTools
		}
		items = append(items, item)
	}
	return items
}
