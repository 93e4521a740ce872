package normalize

import (
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/pulsefeed/pulsefeed/internal/fetcher"
	"github.com/pulsefeed/pulsefeed/pkg/models"
	"golang.org/x/net/html"
)

// MaxDescriptionLen bounds normalized descriptions; longer source text is
// cut here and suffixed with an ellipsis marker.
const MaxDescriptionLen = 150

const ellipsis = "..."

// UnknownCompany is the sentinel organization when the title/company
// heuristic matches neither pattern.
const UnknownCompany = "Unknown Company"

// Record converts one raw source record into at most one ContentItem.
// The only way a record is dropped is an unparseable date: defaulting to
// "now" would silently corrupt day/month filtering downstream.
func Record(raw fetcher.RawRecord, source models.Source) (models.ContentItem, bool) {
	date, granularity, ok := ParseDate(raw.PubDate)
	if !ok {
		return models.ContentItem{}, false
	}

	title := strings.TrimSpace(raw.Title)
	category := raw.Category
	if source == models.SourceJobs && category == "" {
		title, category = SplitTitleCompany(title)
	}

	return models.ContentItem{
		ID:          models.ItemID(source, raw.GUID, raw.Link, title, date),
		Title:       title,
		Description: Description(raw.Description),
		URL:         raw.Link,
		Date:        date,
		Granularity: granularity,
		Source:      source,
		Category:    category,
		Tags:        raw.Tags,
	}, true
}

// Records normalizes a batch, dropping records with unparseable dates.
func Records(raws []fetcher.RawRecord, source models.Source) []models.ContentItem {
	items := make([]models.ContentItem, 0, len(raws))
	for _, raw := range raws {
		if item, ok := Record(raw, source); ok {
			items = append(items, item)
		}
	}
	return items
}

// dayLayouts are tried, in order, for anything that is not a bare
// year-month or year-month-day string.
var dayLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate resolves a source date string into a point in time and its
// matching granularity. "2006-01" is month granularity, "2006-01-02" and
// any other parseable timestamp are day granularity. Unparseable input
// reports ok=false.
func ParseDate(value string) (time.Time, models.Granularity, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, "", false
	}

	if t, err := time.Parse("2006-01", value); err == nil {
		return t, models.GranularityMonth, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, models.GranularityDay, true
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, models.GranularityDay, true
		}
	}
	return time.Time{}, "", false
}

// Description strips markup from source text and bounds its length. The
// bound counts characters, not bytes, so multi-byte text is never cut
// mid-rune.
func Description(raw string) string {
	text := strings.TrimSpace(StripHTML(raw))
	if r := []rune(text); len(r) > MaxDescriptionLen {
		text = string(r[:MaxDescriptionLen]) + ellipsis
	}
	return text
}

// StripHTML returns the text content of an HTML fragment. Plain text
// passes through unchanged.
func StripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(b.String()), " ")
}

// Markdown converts an HTML document into markdown, for long-form digest
// bodies where structure is worth keeping.
func Markdown(htmlContent string) (string, error) {
	if htmlContent == "" {
		return "", nil
	}
	markdown, err := htmltomarkdown.ConvertString(htmlContent)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(markdown), nil
}

// ExtractTitle extracts the <title> content from an HTML document.
func ExtractTitle(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}

	var title string
	var findTitle func(*html.Node)
	findTitle = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil {
				title = n.FirstChild.Data
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findTitle(c)
		}
	}
	findTitle(doc)

	return strings.TrimSpace(title)
}

// SplitTitleCompany applies the best-effort heuristic for feed-derived
// job titles that carry no structured organization field. A colon splits
// organization from title; otherwise the text after the last " at " is
// the organization. The colon pattern is checked first and wins when both
// are present. Titles following neither convention keep their text and
// get the UnknownCompany sentinel.
func SplitTitleCompany(raw string) (title, company string) {
	if idx := strings.Index(raw, ":"); idx >= 0 {
		return strings.TrimSpace(raw[idx+1:]), strings.TrimSpace(raw[:idx])
	}
	if idx := strings.LastIndex(raw, " at "); idx >= 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+len(" at "):])
	}
	return raw, UnknownCompany
}
