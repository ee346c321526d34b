package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/atelierops/atelier-scheduler/internal/audit"
	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ScheduleInput struct {
	WorkshopID uint
	UserID     uint

	WorkID   *uint
	ClientID uint

	Date  string
	Time  string
	Notes string

	// AllowBackfill lets administrative entry book past dates.
	AllowBackfill bool
}

// ======================================================
// USE CASE
// ======================================================

type Schedule struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSchedule(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *Schedule {
	return &Schedule{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a slot. The availability pre-check gives fast feedback; the
// partial unique index on active slots is the actual guarantee, and its
// rejection surfaces as the same slot_conflict as the pre-check.
func (uc *Schedule) Execute(
	ctx context.Context,
	in ScheduleInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetWorkshopByID(ctx, in.WorkshopID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeMissingField)
	}

	loc := timezone.Location(shop.Timezone)

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}

	if _, err := domain.ParseSlotTime(in.Time); err != nil {
		return nil, err
	}

	if !in.AllowBackfill {
		today := domain.NormalizeDate(timezone.NowIn(shop.Timezone))
		if date.Before(today) {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidParameter)
		}
	}

	client, err := uc.repo.GetClient(ctx, in.WorkshopID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	// Availability pre-check. A failed query is never treated as free.
	count, err := uc.repo.CountActiveAtSlot(ctx, in.WorkshopID, date, in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeAvailabilityCheck)
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	ap := &models.Appointment{
		WorkshopID:      in.WorkshopID,
		WorkID:          in.WorkID,
		ClientID:        client.ID,
		AppointmentDate: domain.NormalizeDate(date),
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Reference:       uuid.NewString(),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) {
			// Lost the race against a concurrent booking.
			return nil, httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: in.WorkshopID,
		UserID:     &in.UserID,
		Action:     "appointment_scheduled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
