// Package scrape fills missing item descriptions from the article page
// itself. Feed payloads regularly omit a summary; the page's own meta
// description is the next best source.
package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"github.com/pulsefeed/pulsefeed/internal/normalize"
	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// Config holds enricher configuration.
type Config struct {
	Timeout   time.Duration
	UserAgent string
}

// Enricher fetches single article pages for descriptions.
type Enricher struct {
	config Config
}

// New creates an Enricher with the given configuration.
func New(config Config) *Enricher {
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	if config.UserAgent == "" {
		config.UserAgent = "pulsefeed/1.0"
	}
	return &Enricher{config: config}
}

// pageContent is what one article page yields for enrichment.
type pageContent struct {
	title       string
	description string
}

// fetchPage pulls one article page and extracts its document title and a
// bounded plain-text description: the page's meta description when
// present, otherwise the opening of the body converted to markdown.
func (e *Enricher) fetchPage(ctx context.Context, pageURL string) (pageContent, error) {
	var meta string
	var bodyHTML string
	var docHTML string

	c := colly.NewCollector(colly.UserAgent(e.config.UserAgent))
	c.SetRequestTimeout(e.config.Timeout)

	c.OnRequest(func(r *colly.Request) {
		if ctx.Err() != nil {
			r.Abort()
		}
	})

	c.OnResponse(func(r *colly.Response) {
		docHTML = string(r.Body)
	})

	c.OnHTML("head", func(el *colly.HTMLElement) {
		meta = metaDescription(el.DOM)
	})

	c.OnHTML("article, main, body", func(el *colly.HTMLElement) {
		if bodyHTML == "" {
			html, err := el.DOM.Html()
			if err == nil {
				bodyHTML = html
			}
		}
	})

	if err := c.Visit(pageURL); err != nil {
		return pageContent{}, fmt.Errorf("failed to fetch page: %w", err)
	}
	c.Wait()

	if ctx.Err() != nil {
		return pageContent{}, ctx.Err()
	}

	page := pageContent{title: strings.TrimSpace(normalize.ExtractTitle(docHTML))}
	if meta != "" {
		page.description = normalize.Description(meta)
	} else if bodyHTML != "" {
		markdown, err := normalize.Markdown(bodyHTML)
		if err == nil && markdown != "" {
			page.description = normalize.Description(markdown)
		}
	}
	return page, nil
}

// Describe fetches pageURL and returns its extracted description.
func (e *Enricher) Describe(ctx context.Context, pageURL string) (string, error) {
	page, err := e.fetchPage(ctx, pageURL)
	if err != nil {
		return "", err
	}
	if page.description == "" {
		return "", fmt.Errorf("no description found")
	}
	return page.description, nil
}

// metaDescription prefers og:description over the plain meta description.
func metaDescription(head *goquery.Selection) string {
	if v, ok := head.Find(`meta[property="og:description"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		return v
	}
	if v, ok := head.Find(`meta[name="description"]`).Attr("content"); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return ""
}

// Enrich fills empty descriptions and titles in place of a copy. An item
// whose page yields nothing keeps its empty fields; enrichment never
// drops or fails a batch.
func (e *Enricher) Enrich(ctx context.Context, items []models.ContentItem) []models.ContentItem {
	out := make([]models.ContentItem, len(items))
	copy(out, items)

	for i, it := range out {
		if (it.Description != "" && it.Title != "") || it.URL == "" {
			continue
		}
		if ctx.Err() != nil {
			break
		}
		page, err := e.fetchPage(ctx, it.URL)
		if err != nil {
			slog.Debug("enrichment failed", "url", it.URL, "error", err)
			continue
		}
		if it.Description == "" && page.description != "" {
			out[i].Description = page.description
		}
		if it.Title == "" && page.title != "" {
			out[i].Title = page.title
		}
	}
	return out
}
