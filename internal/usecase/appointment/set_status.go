package appointment

import (
	"context"

	"github.com/atelierops/atelier-scheduler/internal/audit"
	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

type SetStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	workshopID uint,
	userID uint,
	appointmentID uint,
	target string,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	ap, err := uc.repo.GetAppointment(ctx, workshopID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Transition(ap, domain.Status(target), now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: workshopID,
		UserID:     &userID,
		Action:     "appointment_" + target,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
