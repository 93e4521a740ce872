package normalize

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/pulsefeed/pulsefeed/internal/fetcher"
	"github.com/pulsefeed/pulsefeed/pkg/models"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		wantYear    int
		wantMonth   time.Month
		wantDay     int
		granularity models.Granularity
		wantOK      bool
	}{
		{
			name:        "year-month is month granularity",
			value:       "2026-01",
			wantYear:    2026,
			wantMonth:   time.January,
			wantDay:     1,
			granularity: models.GranularityMonth,
			wantOK:      true,
		},
		{
			name:        "full date is day granularity",
			value:       "2026-01-16",
			wantYear:    2026,
			wantMonth:   time.January,
			wantDay:     16,
			granularity: models.GranularityDay,
			wantOK:      true,
		},
		{
			name:        "RFC3339 timestamp is day granularity",
			value:       "2026-01-16T09:00:00Z",
			wantYear:    2026,
			wantMonth:   time.January,
			wantDay:     16,
			granularity: models.GranularityDay,
			wantOK:      true,
		},
		{
			name:        "RFC1123 timestamp is day granularity",
			value:       "Fri, 16 Jan 2026 09:00:00 UTC",
			wantYear:    2026,
			wantMonth:   time.January,
			wantDay:     16,
			granularity: models.GranularityDay,
			wantOK:      true,
		},
		{
			name:   "garbage is rejected",
			value:  "sometime soon",
			wantOK: false,
		},
		{
			name:   "empty is rejected",
			value:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, granularity, ok := ParseDate(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Year() != tt.wantYear || got.Month() != tt.wantMonth || got.Day() != tt.wantDay {
				t.Errorf("ParseDate(%q) = %v, want %d-%d-%d", tt.value, got, tt.wantYear, tt.wantMonth, tt.wantDay)
			}
			if granularity != tt.granularity {
				t.Errorf("granularity = %q, want %q", granularity, tt.granularity)
			}
		})
	}
}

func TestRecord_HappyPath(t *testing.T) {
	raw := fetcher.RawRecord{
		Title:       "Model X Launches",
		Link:        "https://a.co/1",
		PubDate:     "2026-01-16T09:00:00Z",
		Description: "<p>Big news</p>",
	}

	item, ok := Record(raw, models.SourceNews)
	if !ok {
		t.Fatal("Record() dropped a valid record")
	}
	if item.Title != "Model X Launches" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.URL != "https://a.co/1" {
		t.Errorf("URL = %q", item.URL)
	}
	if item.Description != "Big news" {
		t.Errorf("Description = %q, want markup stripped", item.Description)
	}
	if item.Granularity != models.GranularityDay {
		t.Errorf("Granularity = %q, want day", item.Granularity)
	}
	if item.Date.Day() != 16 || item.Date.Month() != time.January {
		t.Errorf("Date = %v", item.Date)
	}
	if item.Source != models.SourceNews {
		t.Errorf("Source = %q", item.Source)
	}
	if item.ID == "" {
		t.Error("ID should be derived")
	}
}

func TestRecord_UnparseableDateDropsRecord(t *testing.T) {
	raw := fetcher.RawRecord{Title: "No date", Link: "https://a.co/2", PubDate: "yesterday-ish"}
	if _, ok := Record(raw, models.SourceNews); ok {
		t.Error("record with unparseable date should be dropped")
	}
}

func TestRecords_DropsOnlyOffendingRecord(t *testing.T) {
	raws := []fetcher.RawRecord{
		{Title: "Good", Link: "https://a.co/1", PubDate: "2026-01-16"},
		{Title: "Bad", Link: "https://a.co/2", PubDate: "???"},
		{Title: "Also good", Link: "https://a.co/3", PubDate: "2026-01"},
	}

	items := Records(raws, models.SourceNews)
	if len(items) != 2 {
		t.Fatalf("Records() kept %d items, want 2", len(items))
	}
}

func TestDescription_TruncationBound(t *testing.T) {
	long := strings.Repeat("a", 400)

	got := Description(long)
	if len(got) > MaxDescriptionLen+3 {
		t.Errorf("len = %d, want <= %d", len(got), MaxDescriptionLen+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated description should end with ellipsis")
	}

	short := "short enough"
	if Description(short) != short {
		t.Error("short descriptions should pass through")
	}
}

func TestDescription_MultiByteTruncation(t *testing.T) {
	// 149 ASCII bytes plus a two-byte rune straddling the boundary
	straddling := strings.Repeat("a", 149) + "é" + strings.Repeat("b", 200)

	got := Description(straddling)
	if !utf8.ValidString(got) {
		t.Errorf("truncated description is not valid UTF-8: %q", got)
	}
	if runes := []rune(got); len(runes) != MaxDescriptionLen+3 {
		t.Errorf("rune len = %d, want %d", len(runes), MaxDescriptionLen+3)
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("truncated description should end with ellipsis")
	}

	// 100 characters of three-byte runes: within the bound, over it in bytes
	cjk := strings.Repeat("模", 100)
	if got := Description(cjk); got != cjk {
		t.Errorf("%d-character description was altered: rune len = %d", len([]rune(cjk)), len([]rune(got)))
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text unchanged", "hello world", "hello world"},
		{"tags removed", "<p>Big <b>news</b></p>", "Big news"},
		{"script dropped", "<div>text<script>alert(1)</script></div>", "text"},
		{"whitespace collapsed", "<p>a</p>\n\n<p>b</p>", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripHTML(tt.in); got != tt.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitTitleCompany(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantTitle   string
		wantCompany string
	}{
		{"colon pattern", "Acme Corp: Senior Engineer", "Senior Engineer", "Acme Corp"},
		{"at pattern", "Senior Engineer at Acme Corp", "Senior Engineer", "Acme Corp"},
		{"neither pattern", "Senior Engineer", "Senior Engineer", UnknownCompany},
		{"colon wins when both present", "Acme Corp: Senior Engineer at Globex", "Senior Engineer at Globex", "Acme Corp"},
		{"last at occurrence splits", "Working at scale at Acme", "Working at scale", "Acme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, company := SplitTitleCompany(tt.raw)
			if title != tt.wantTitle || company != tt.wantCompany {
				t.Errorf("SplitTitleCompany(%q) = (%q, %q), want (%q, %q)",
					tt.raw, title, company, tt.wantTitle, tt.wantCompany)
			}
		})
	}
}

func TestRecord_JobsApplyHeuristicSplit(t *testing.T) {
	raw := fetcher.RawRecord{
		Title:   "Acme Corp: Senior Engineer",
		Link:    "https://jobs.example/1",
		PubDate: "2026-01-16",
	}

	item, ok := Record(raw, models.SourceJobs)
	if !ok {
		t.Fatal("Record() dropped a valid job record")
	}
	if item.Title != "Senior Engineer" {
		t.Errorf("Title = %q, want split title", item.Title)
	}
	if item.Category != "Acme Corp" {
		t.Errorf("Category = %q, want organization", item.Category)
	}
}

func TestRecord_Idempotent(t *testing.T) {
	raw := fetcher.RawRecord{
		Title:       "Stable",
		Link:        "https://a.co/s",
		GUID:        "guid-s",
		PubDate:     "2026-01-16",
		Description: "same in, same out",
	}

	first, ok1 := Record(raw, models.SourceNews)
	second, ok2 := Record(raw, models.SourceNews)
	if !ok1 || !ok2 {
		t.Fatal("Record() dropped a valid record")
	}
	if first.ID != second.ID || first.Title != second.Title ||
		first.Description != second.Description || !first.Date.Equal(second.Date) {
		t.Error("normalizing the same record twice should be pure")
	}
}
