package appointment

import (
	"time"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

// Slot is one bookable (date, HH:MM) pair. At most one non-cancelled
// appointment may hold a slot, workshop-wide.
type Slot struct {
	Date time.Time `json:"date"`
	Time string    `json:"time"`
}

type TimeSlot struct {
	Time string `json:"time"`
}

// ParseSlotTime validates an HH:MM wall-clock value.
func ParseSlotTime(hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}
	return t, nil
}

// NormalizeDate truncates a timestamp to midnight in its own location so
// stored dates compare by calendar day.
func NormalizeDate(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// FreeSlots walks the day grid from dayStart to dayEnd in gridMinutes steps
// and returns the times not held by an active appointment.
func FreeSlots(
	dayStart string,
	dayEnd string,
	gridMinutes int,
	taken map[string]bool,
) ([]TimeSlot, error) {

	start, err := ParseSlotTime(dayStart)
	if err != nil {
		return nil, err
	}
	end, err := ParseSlotTime(dayEnd)
	if err != nil {
		return nil, err
	}
	if gridMinutes <= 0 || !end.After(start) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}

	step := time.Duration(gridMinutes) * time.Minute

	slots := []TimeSlot{}
	for cur := start; cur.Before(end); cur = cur.Add(step) {
		hhmm := cur.Format("15:04")
		if taken[hhmm] {
			continue
		}
		slots = append(slots, TimeSlot{Time: hhmm})
	}

	return slots, nil
}
