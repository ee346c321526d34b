package appointment

import (
	"context"
	"time"

	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

// ======================================================
// SLOT CHECK
// ======================================================

type CheckAvailability struct {
	repo domain.Repository
}

func NewCheckAvailability(repo domain.Repository) *CheckAvailability {
	return &CheckAvailability{repo: repo}
}

// Execute answers whether (date, hhmm) can host a new appointment. A query
// failure comes back as availability_check_failed, never as a free slot.
func (uc *CheckAvailability) Execute(
	ctx context.Context,
	workshopID uint,
	date time.Time,
	hhmm string,
) (bool, error) {

	if _, err := domain.ParseSlotTime(hhmm); err != nil {
		return false, err
	}

	count, err := uc.repo.CountActiveAtSlot(ctx, workshopID, date, hhmm)
	if err != nil {
		return false, httperr.ErrBusiness(httperr.CodeAvailabilityCheck)
	}

	return count == 0, nil
}

// ======================================================
// DAY GRID
// ======================================================

type DayAvailability struct {
	repo domain.Repository

	dayStart    string
	dayEnd      string
	gridMinutes int
}

func NewDayAvailability(
	repo domain.Repository,
	dayStart string,
	dayEnd string,
	gridMinutes int,
) *DayAvailability {
	return &DayAvailability{
		repo:        repo,
		dayStart:    dayStart,
		dayEnd:      dayEnd,
		gridMinutes: gridMinutes,
	}
}

func (uc *DayAvailability) Execute(
	ctx context.Context,
	workshopID uint,
	date time.Time,
) ([]domain.TimeSlot, error) {

	times, err := uc.repo.ListActiveTimesForDay(ctx, workshopID, date)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAvailabilityCheck)
	}

	taken := make(map[string]bool, len(times))
	for _, t := range times {
		taken[t] = true
	}

	return domain.FreeSlots(uc.dayStart, uc.dayEnd, uc.gridMinutes, taken)
}
