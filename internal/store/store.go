// Package store is the hosted query service boundary: a thin
// select/insert/upsert layer over Elasticsearch, one index per logical
// table. The service is optional; a nil *Client means "not configured"
// and every consumer falls back to static/local behavior.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
)

// Config holds query service configuration.
type Config struct {
	Addresses   []string
	IndexPrefix string
	Username    string
	Password    string
}

// Row is one stored record.
type Row map[string]any

// Client wraps the Elasticsearch client with table-style operations.
type Client struct {
	es     *elasticsearch.Client
	prefix string
}

// New creates a query service client. A config with no addresses returns
// (nil, nil): the service is simply not configured, which is a supported
// steady state, not an error.
func New(config Config) (*Client, error) {
	if len(config.Addresses) == 0 {
		return nil, nil
	}
	if config.IndexPrefix == "" {
		config.IndexPrefix = "pulsefeed"
	}

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: config.Addresses,
		Username:  config.Username,
		Password:  config.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ES client: %w", err)
	}

	return &Client{es: es, prefix: config.IndexPrefix}, nil
}

// Ping checks whether the service is reachable.
func (c *Client) Ping(ctx context.Context) bool {
	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return !res.IsError()
}

func (c *Client) indexFor(table string) string {
	return c.prefix + "-" + table
}

// searchResponse is the ES search payload shape.
type searchResponse struct {
	Hits struct {
		Hits []struct {
			ID     string `json:"_id"`
			Source Row    `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

// Select returns rows from a table matching every filter exactly,
// optionally ordered by a field descending.
func (c *Client) Select(ctx context.Context, table string, filters map[string]string, orderBy string, limit int) ([]Row, error) {
	if limit <= 0 {
		limit = 100
	}

	must := make([]map[string]any, 0, len(filters))
	for field, value := range filters {
		must = append(must, map[string]any{
			"term": map[string]any{field + ".keyword": value},
		})
	}
	query := map[string]any{"match_all": map[string]any{}}
	if len(must) > 0 {
		query = map[string]any{"bool": map[string]any{"must": must}}
	}

	body := map[string]any{"query": query, "size": limit}
	if orderBy != "" {
		body["sort"] = []map[string]any{{orderBy: map[string]any{"order": "desc"}}}
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
		return nil, fmt.Errorf("select failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("select error: %s", res.String())
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

// Insert writes a new row with a generated ID.
func (c *Client) Insert(ctx context.Context, table string, row Row) error {
	return c.index(ctx, table, uuid.NewString(), row)
}

// Upsert writes a row keyed by its conflictKey field value: an existing
// row with the same value is overwritten, otherwise a new one is created.
// Reports whether a row already existed.
func (c *Client) Upsert(ctx context.Context, table string, row Row, conflictKey string) (bool, error) {
	value, ok := row[conflictKey].(string)
	if !ok || value == "" {
		return false, fmt.Errorf("upsert row missing conflict key %q", conflictKey)
	}

	existing, err := c.Select(ctx, table, map[string]string{conflictKey: value}, "", 1)
	if err != nil {
		return false, err
	}

	// Deterministic doc ID from the conflict value keeps the upsert
	// idempotent even when the prior select raced another writer.
	docID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(table+":"+value)).String()
	if err := c.index(ctx, table, docID, row); err != nil {
		return false, err
	}
	return len(existing) > 0, nil
}

func (c *Client) index(ctx context.Context, table, docID string, row Row) error {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}

	res, err := c.es.Index(
		c.indexFor(table),
		bytes.NewReader(data),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithDocumentID(docID),
	)
	if err != nil {
		return fmt.Errorf("insert failed: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("insert error: %s", res.String())
	}
	return nil
}
