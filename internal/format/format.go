// Package format renders filtered content collections into text payloads
// for the supported target surfaces.
package format

import (
	"fmt"
	"strings"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// Mode selects the target surface rendering.
type Mode string

const (
	// ModeShort truncates to a few terse items with a trailing
	// call-to-action, budgeted for a 280-character surface.
	ModeShort Mode = "short"
	// ModeLong renders every item with title, description and link, plus
	// a hashtag footer.
	ModeLong Mode = "long"
	// ModePlain renders a numbered list inside banner framing.
	ModePlain Mode = "plain"
)

// CharLimit is the character budget of the short configuration's target
// surface.
const CharLimit = 280

// NoContent is the sentinel payload for an empty collection; an empty
// string is never produced.
const NoContent = "No AI news for this date yet. Check back soon!"

// glyphs maps each source kind to its display glyph.
var glyphs = map[models.Source]string{
	models.SourceNews:     "📰",
	models.SourceVideo:    "🎥",
	models.SourceJobs:     "💼",
	models.SourceTools:    "🛠️",
	models.SourceLearning: "📚",
	models.SourceResearch: "🔬",
	models.SourceBlog:     "✍️",
	models.SourceTrending: "📈",
	models.SourceAgentic:  "🤖",
	models.SourceDecoded:  "🧩",
	models.SourceDeepMind: "🧠",
	models.SourceRobotics: "🦾",
	models.SourceSkills:   "🎯",
	models.SourceTimeline: "🕰️",
}

const genericGlyph = "🔹"

// Glyph returns the display glyph for a source kind. An unrecognized kind
// gets the generic glyph; it is never dropped.
func Glyph(source models.Source) string {
	if g, ok := glyphs[source]; ok {
		return g
	}
	return genericGlyph
}

// Config holds formatter configuration.
type Config struct {
	ShortLimit   int    // items kept in the short rendering
	CallToAction string // trailing line of the short rendering
	Hashtags     string // footer of the long rendering
}

// Formatter renders item collections per mode.
type Formatter struct {
	config Config
}

// New creates a Formatter, filling unset config fields with defaults.
func New(config Config) *Formatter {
	if config.ShortLimit <= 0 {
		config.ShortLimit = 3
	}
	return &Formatter{config: config}
}

// Render produces the text payload for the given mode.
func (f *Formatter) Render(items []models.ContentItem, mode Mode) string {
	if len(items) == 0 {
		return NoContent
	}
	switch mode {
	case ModeShort:
		return f.renderShort(items)
	case ModeLong:
		return f.renderLong(items)
	default:
		return f.renderPlain(items)
	}
}

func (f *Formatter) renderShort(items []models.ContentItem) string {
	if len(items) > f.config.ShortLimit {
		items = items[:f.config.ShortLimit]
	}

	var b strings.Builder
	b.WriteString("Today in AI:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s %s\n", Glyph(it.Source), it.Title)
	}
	if f.config.CallToAction != "" {
		b.WriteString(f.config.CallToAction)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) renderLong(items []models.ContentItem) string {
	var b strings.Builder
	b.WriteString("Today's AI Digest\n\n")
	for _, it := range items {
		fmt.Fprintf(&b, "%s %s\n", Glyph(it.Source), it.Title)
		if it.Description != "" {
			b.WriteString(it.Description)
			b.WriteString("\n")
		}
		if it.URL != "" {
			b.WriteString(it.URL)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if f.config.Hashtags != "" {
		b.WriteString(f.config.Hashtags)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (f *Formatter) renderPlain(items []models.ContentItem) string {
	const banner = "=========================================="

	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("  AI PULSE DAILY DIGEST\n")
	b.WriteString(banner + "\n\n")
	for i, it := range items {
		fmt.Fprintf(&b, "%d. %s %s\n", i+1, Glyph(it.Source), it.Title)
		if it.Description != "" {
			fmt.Fprintf(&b, "   %s\n", it.Description)
		}
		if it.URL != "" {
			fmt.Fprintf(&b, "   %s\n", it.URL)
		}
	}
	b.WriteString("\n" + banner)
	return b.String()
}

// CharacterReport describes a payload against the short surface's budget.
// It reports only; truncation is the caller's decision before formatting.
type CharacterReport struct {
	Count        int
	ExceedsLimit bool
}

// CheckLength reports the character count of a payload against CharLimit.
func CheckLength(payload string) CharacterReport {
	count := len([]rune(payload))
	return CharacterReport{
		Count:        count,
		ExceedsLimit: count > CharLimit,
	}
}
