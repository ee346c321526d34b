package work

import (
	"context"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/audit"
	"github.com/atelierops/atelier-scheduler/internal/domain/calendar"
	domain "github.com/atelierops/atelier-scheduler/internal/domain/work"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
	ucappointment "github.com/atelierops/atelier-scheduler/internal/usecase/appointment"
)

// ======================================================
// INPUT
// ======================================================

type CreateInput struct {
	WorkshopID uint
	UserID     uint

	ClientID   uint
	CategoryID uint

	// Nil price falls back to the category base price; an explicit zero
	// records a free work.
	Price         *float64
	DepositAmount float64
	PaymentMethod string

	// Empty entry date means today in the workshop timezone.
	EntryDate string
	Notes     string

	// Required when the category demands an appointment.
	AppointmentDate  string
	AppointmentTime  string
	AppointmentNotes string
}

// ======================================================
// USE CASE
// ======================================================

type Create struct {
	repo      domain.Repository
	scheduler *ucappointment.Schedule
	audit     *audit.Dispatcher
}

func NewCreate(
	repo domain.Repository,
	scheduler *ucappointment.Schedule,
	audit *audit.Dispatcher,
) *Create {
	return &Create{
		repo:      repo,
		scheduler: scheduler,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Create) Execute(
	ctx context.Context,
	in CreateInput,
) (*models.Work, error) {

	shop, err := uc.repo.GetWorkshopByID(ctx, in.WorkshopID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	category, err := uc.repo.GetCategory(ctx, in.WorkshopID, in.CategoryID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	client, err := uc.repo.GetClient(ctx, in.WorkshopID, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	if (in.Price != nil && *in.Price < 0) || in.DepositAmount < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}

	loc := timezone.Location(shop.Timezone)

	entryDate := timezone.NowIn(shop.Timezone)
	if in.EntryDate != "" {
		entryDate, err = time.ParseInLocation("2006-01-02", in.EntryDate, loc)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidParameter)
		}
	}
	entryDate = time.Date(
		entryDate.Year(), entryDate.Month(), entryDate.Day(),
		0, 0, 0, 0,
		loc,
	)

	tentative, err := calendar.TentativeDeliveryDate(
		entryDate,
		category.EstimatedHours,
		category.ToleranceDays,
	)
	if err != nil {
		return nil, err
	}

	// Appointment fields are validated before anything is persisted, so a
	// missing_field rejection leaves no partial state behind.
	if category.RequiresAppointment {
		if in.AppointmentDate == "" || in.AppointmentTime == "" {
			return nil, httperr.ErrBusiness(httperr.CodeMissingField)
		}
	}

	price := category.BasePrice
	if in.Price != nil {
		price = *in.Price
	}

	w := &models.Work{
		WorkshopID:            in.WorkshopID,
		ClientID:              client.ID,
		CategoryID:            category.ID,
		Status:                string(domain.InitialStatus()),
		Price:                 price,
		DepositAmount:         in.DepositAmount,
		PaymentMethod:         in.PaymentMethod,
		EntryDate:             entryDate,
		TentativeDeliveryDate: tentative,
		Notes:                 in.Notes,
	}

	if err := uc.repo.CreateWork(ctx, w); err != nil {
		return nil, err
	}

	if category.RequiresAppointment {
		_, err := uc.scheduler.Execute(ctx, ucappointment.ScheduleInput{
			WorkshopID: in.WorkshopID,
			UserID:     in.UserID,
			WorkID:     &w.ID,
			ClientID:   client.ID,
			Date:       in.AppointmentDate,
			Time:       in.AppointmentTime,
			Notes:      in.AppointmentNotes,
		})
		if err != nil {
			// Undo the intake so a slot conflict leaves no orphan work.
			_ = uc.repo.DeleteWork(ctx, in.WorkshopID, w.ID)
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: in.WorkshopID,
		UserID:     &in.UserID,
		Action:     "work_created",
		Entity:     "work",
		EntityID:   &w.ID,
	})

	return w, nil
}
