package aggregate

import (
	"time"

	"github.com/pulsefeed/pulsefeed/pkg/models"
)

// FilterByDate returns the subset of items relevant to the target date,
// order preserved. Month-granularity items match any day in their month;
// day-granularity items only the exact day. The two must not be conflated
// because the same digest view presents "exactly today" news alongside
// "current this month" evergreen sets.
func FilterByDate(items []models.ContentItem, target time.Time) []models.ContentItem {
	out := make([]models.ContentItem, 0, len(items))
	for _, it := range items {
		if it.OccursOn(target) {
			out = append(out, it)
		}
	}
	return out
}
