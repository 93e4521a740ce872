package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// itemsTable is the logical table holding aggregated content items for
// later search.
const itemsTable = "items"

// IndexItems writes a run's content items, keyed by item ID. Indexing is
// best-effort per item; the first failure is returned but earlier items
// stay written.
func (c *Client) IndexItems(ctx context.Context, items []models.ContentItem) error {
	for _, it := range items {
		row := Row{
			"id":               it.ID,
			"title":            it.Title,
			"description":      it.Description,
			"url":              it.URL,
			"date":             it.Date.Format(time.RFC3339),
			"date_granularity": string(it.Granularity),
			"source":           string(it.Source),
			"category":         it.Category,
			"tags":             it.Tags,
		}
		if err := c.index(ctx, itemsTable, it.ID, row); err != nil {
			return fmt.Errorf("failed to index item %s: %w", it.ID, err)
		}
	}
	return nil
}

// SearchItems runs a text query over indexed content items.
func (c *Client) SearchItems(ctx context.Context, query string, limit int) ([]models.ContentItem, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := c.search(ctx, itemsTable, query, []string{"title^2", "description", "category", "tags"}, limit)
	if err != nil {
		return nil, err
	}

	items := make([]models.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, rowToItem(row))
	}
	return items, nil
}

func rowToItem(row Row) models.ContentItem {
	str := func(key string) string {
		s, _ := row[key].(string)
		return s
	}

	date, _ := time.Parse(time.RFC3339, str("date"))
	var tags []string
	if raw, ok := row["tags"].([]any); ok {
		for _, t := range raw {
			if s, ok := t.(string); ok {
				tags = append(tags, s)
			}
		}
	}

	return models.ContentItem{
		ID:          str("id"),
		Title:       str("title"),
		Description: str("description"),
		URL:         str("url"),
		Date:        date,
		Granularity: models.Granularity(str("date_granularity")),
		Source:      models.Source(str("source")),
		Category:    str("category"),
		Tags:        tags,
	}
}

// search runs a multi_match query against one table.
func (c *Client) search(ctx context.Context, table, query string, fields []string, limit int) ([]Row, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  query,
				"fields": fields,
			},
		},
		"size": limit,
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.indexFor(table)),
		c.es.Search.WithBody(bytes.NewReader(data)),
	)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	rows := make([]Row, len(sr.Hits.Hits))
	for i, hit := range sr.Hits.Hits {
		rows[i] = hit.Source
	}
	return rows, nil
}
