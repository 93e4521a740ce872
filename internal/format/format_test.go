package format

import (
	"strings"
	"testing"
	"time"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

func sampleItems() []models.ContentItem {
	date := time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)
	return []models.ContentItem{
		{Title: "Model X Launches", Description: "Big news", URL: "https://a.co/1", Date: date, Source: models.SourceNews},
		{Title: "Scaling Laws Revisited", Description: "New paper", URL: "https://a.co/2", Date: date, Source: models.SourceResearch},
		{Title: "Acme hiring engineers", URL: "https://a.co/3", Date: date, Source: models.SourceJobs},
		{Title: "Agent frameworks compared", URL: "https://a.co/4", Date: date, Source: models.SourceVideo},
	}
}

func TestRender_EmptyCollectionSentinel(t *testing.T) {
	f := New(Config{})
	for _, mode := range []Mode{ModeShort, ModeLong, ModePlain} {
		got := f.Render(nil, mode)
		if got != NoContent {
			t.Errorf("Render(nil, %s) = %q, want sentinel", mode, got)
		}
		if got == "" {
			t.Errorf("Render(nil, %s) produced empty string", mode)
		}
	}
}

func TestRenderShort_TruncatesAndAppendsCTA(t *testing.T) {
	f := New(Config{ShortLimit: 2, CallToAction: "Read more at example.dev"})

	got := f.Render(sampleItems(), ModeShort)

	if !strings.Contains(got, "Model X Launches") || !strings.Contains(got, "Scaling Laws Revisited") {
		t.Error("short rendering should keep the first two items")
	}
	if strings.Contains(got, "Acme hiring engineers") {
		t.Error("short rendering should drop items beyond the limit")
	}
	if !strings.HasSuffix(got, "Read more at example.dev") {
		t.Error("short rendering should end with the call to action")
	}
}

func TestRenderLong_AllItemsWithLinksAndHashtags(t *testing.T) {
	f := New(Config{Hashtags: "#AI #News"})

	got := f.Render(sampleItems(), ModeLong)

	for _, it := range sampleItems() {
		if !strings.Contains(got, it.Title) {
			t.Errorf("long rendering missing item %q", it.Title)
		}
		if it.URL != "" && !strings.Contains(got, it.URL) {
			t.Errorf("long rendering missing link %q", it.URL)
		}
	}
	if !strings.HasSuffix(got, "#AI #News") {
		t.Error("long rendering should end with the hashtag footer")
	}
}

func TestRenderPlain_NumberedWithBanner(t *testing.T) {
	f := New(Config{})

	got := f.Render(sampleItems(), ModePlain)

	if !strings.Contains(got, "1. ") || !strings.Contains(got, "4. ") {
		t.Error("plain rendering should number every item")
	}
	if !strings.HasPrefix(got, "====") || !strings.HasSuffix(got, "====") {
		t.Error("plain rendering should be framed by banners")
	}
}

func TestGlyph_UnknownSourceFallsBack(t *testing.T) {
	if Glyph(models.SourceNews) == genericGlyph {
		t.Error("known source should have its own glyph")
	}
	if Glyph(models.Source("podcast")) != genericGlyph {
		t.Error("unknown source should fall back to the generic glyph")
	}
	for _, s := range models.Sources() {
		if Glyph(s) == genericGlyph {
			t.Errorf("source %q missing from the glyph table", s)
		}
	}
}

func TestRender_UnknownSourceItemIsKept(t *testing.T) {
	f := New(Config{})
	items := []models.ContentItem{{Title: "Mystery item", Source: models.Source("podcast")}}

	got := f.Render(items, ModeLong)
	if !strings.Contains(got, "Mystery item") {
		t.Error("items with unrecognized sources must still render")
	}
}

func TestCheckLength(t *testing.T) {
	within := strings.Repeat("a", 280)
	report := CheckLength(within)
	if report.Count != 280 || report.ExceedsLimit {
		t.Errorf("CheckLength(280 chars) = %+v", report)
	}

	over := strings.Repeat("b", 281)
	report = CheckLength(over)
	if !report.ExceedsLimit {
		t.Error("281 characters should exceed the limit")
	}

	// Counted in characters, not bytes.
	emoji := strings.Repeat("📰", 280)
	if CheckLength(emoji).ExceedsLimit {
		t.Error("280 multibyte characters should not exceed the limit")
	}
}
