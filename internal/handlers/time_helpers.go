package handlers

import (
	"time"

	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

// --------------------------------------------------
// Workshop-local time helpers
// --------------------------------------------------

func locationFromShop(shop *models.Workshop) *time.Location {
	if shop != nil && shop.Timezone != "" {
		if loc, err := time.LoadLocation(shop.Timezone); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(timezone.DefaultTimezone)
	return loc
}

func nowInShop(shop *models.Workshop) time.Time {
	return time.Now().In(locationFromShop(shop))
}

func parseDateInShop(shop *models.Workshop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}

func parseQueryDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}
