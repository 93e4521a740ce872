package models

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Source identifies which subsystem produced a ContentItem. The set is
// closed: every value used as a lookup key downstream must be listed here.
type Source string

const (
	SourceNews     Source = "news"
	SourceVideo    Source = "video"
	SourceJobs     Source = "jobs"
	SourceTools    Source = "tools"
	SourceLearning Source = "learning"
	SourceResearch Source = "research"
	SourceBlog     Source = "blog"
	SourceTrending Source = "trending"
	SourceAgentic  Source = "agentic"
	SourceDecoded  Source = "decoded"
	SourceDeepMind Source = "deepmind"
	SourceRobotics Source = "robotics"
	SourceSkills   Source = "skills"
	SourceTimeline Source = "timeline"
)

// Sources returns every member of the closed source enum.
func Sources() []Source {
	return []Source{
		SourceNews, SourceVideo, SourceJobs, SourceTools, SourceLearning,
		SourceResearch, SourceBlog, SourceTrending, SourceAgentic,
		SourceDecoded, SourceDeepMind, SourceRobotics, SourceSkills,
		SourceTimeline,
	}
}

// Valid reports whether s is a member of the closed source enum.
func (s Source) Valid() bool {
	switch s {
	case SourceNews, SourceVideo, SourceJobs, SourceTools, SourceLearning,
		SourceResearch, SourceBlog, SourceTrending, SourceAgentic,
		SourceDecoded, SourceDeepMind, SourceRobotics, SourceSkills,
		SourceTimeline:
		return true
	}
	return false
}

// Granularity controls how an item's date is matched against a target day.
type Granularity string

const (
	// GranularityDay matches only on an exact calendar day.
	GranularityDay Granularity = "day"
	// GranularityMonth matches any day within the item's calendar month.
	GranularityMonth Granularity = "month"
)

// ContentItem is the canonical normalized record. Items are immutable value
// records built fresh on every aggregation run; nothing mutates them after
// construction.
type ContentItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	URL         string      `json:"url"`
	Date        time.Time   `json:"date"`
	Granularity Granularity `json:"date_granularity"`
	Source      Source      `json:"source"`
	Category    string      `json:"category,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
}

// OccursOn reports whether the item is relevant to the target date.
// Month-granularity items match on year and month; day-granularity items
// only on the exact calendar day. Calendar fields are compared as carried
// by the underlying times, with no zone normalization.
func (it ContentItem) OccursOn(target time.Time) bool {
	sameMonth := it.Date.Year() == target.Year() && it.Date.Month() == target.Month()
	if it.Granularity == GranularityMonth {
		return sameMonth
	}
	return sameMonth && it.Date.Day() == target.Day()
}

// ItemID derives a stable identity for a source item. The source-provided
// guid wins, then the link; otherwise a composite of source, title and date
// keeps the ID deterministic across runs.
func ItemID(source Source, guid, link, title string, date time.Time) string {
	key := guid
	if key == "" {
		key = link
	}
	if key == "" {
		key = fmt.Sprintf("%s|%s|%s", source, title, date.Format("2006-01-02"))
	}
	hash := sha256.Sum256([]byte(string(source) + ":" + key))
	return hex.EncodeToString(hash[:])[:16]
}
