package aggregate

import (
	"sort"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// MergeDedupe combines overlapping live and fallback contributions for a
// kind into one deduplicated, chronologically sorted sequence. The input
// is sorted descending by date first and then deduplicated by URL keeping
// the first occurrence, so the newest of any two records sharing a URL
// wins.
func MergeDedupe(items []models.ContentItem) []models.ContentItem {
	sorted := SortByDateDesc(items)

	seen := make(map[string]bool, len(sorted))
	out := make([]models.ContentItem, 0, len(sorted))
	for _, it := range sorted {
		if it.URL != "" && seen[it.URL] {
			continue
		}
		seen[it.URL] = true
		out = append(out, it)
	}
	return out
}

// SortByDateDesc returns a copy of items sorted newest first. The sort is
// stable so records sharing a date keep their input order.
func SortByDateDesc(items []models.ContentItem) []models.ContentItem {
	out := make([]models.ContentItem, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}
