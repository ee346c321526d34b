package calendar

import (
	"math"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

// Hours of effort that consume one business day of workshop capacity.
const hoursPerWorkDay = 8

// WorkDays converts a category's estimated effort into whole business days.
// Any category, even a zero-hour one, consumes at least one day.
func WorkDays(estimatedHours float64) int {
	days := int(math.Ceil(estimatedHours / hoursPerWorkDay))
	if days < 1 {
		days = 1
	}
	return days
}

// TentativeDeliveryDate walks forward from the entry date counting only
// Monday–Friday until workDays+toleranceDays business days have passed, and
// returns the date the last counted day lands on. Saturdays and Sundays
// advance the date but are never counted. The workshop closed-days list is
// intentionally not consulted here.
func TentativeDeliveryDate(
	entryDate time.Time,
	estimatedHours float64,
	toleranceDays int,
) (time.Time, error) {

	if entryDate.IsZero() {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}
	if estimatedHours < 0 || toleranceDays < 0 {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}

	totalDays := WorkDays(estimatedHours) + toleranceDays

	date := entryDate
	counted := 0

	for counted < totalDays {
		date = date.AddDate(0, 0, 1)

		wd := date.Weekday()
		if wd == time.Saturday || wd == time.Sunday {
			continue
		}

		counted++
	}

	return date, nil
}
