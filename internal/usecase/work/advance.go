package work

import (
	"context"

	"github.com/atelierops/atelier-scheduler/internal/audit"
	domain "github.com/atelierops/atelier-scheduler/internal/domain/work"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/notify"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

type Advance struct {
	repo     domain.Repository
	notifier *notify.Dispatcher
	audit    *audit.Dispatcher
}

func NewAdvance(
	repo domain.Repository,
	notifier *notify.Dispatcher,
	audit *audit.Dispatcher,
) *Advance {
	return &Advance{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// Execute moves a work order along its lifecycle. Reaching completed queues
// the client notification after the update is committed; a notify failure
// can neither block nor roll back the transition.
func (uc *Advance) Execute(
	ctx context.Context,
	workshopID uint,
	userID uint,
	workID uint,
	target string,
) (*models.Work, error) {

	shop, err := uc.repo.GetWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	w, err := uc.repo.GetWork(ctx, workshopID, workID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNotFound)
	}

	to := domain.Status(target)
	now := timezone.NowIn(shop.Timezone)

	if err := domain.Advance(w, to, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateWork(ctx, w); err != nil {
		return nil, err
	}

	if domain.NotificationEligible(w, to, w.Client.Phone) {
		msg := notify.ComposeReadyMessage(*shop, notify.WorkSummary{
			ClientName:   w.Client.Name,
			CategoryName: w.Category.Name,
			Status:       w.Status,
			Price:        w.Price,
			DepositPaid:  w.AmountPaid + w.DepositAmount,
			DeliveryDate: w.TentativeDeliveryDate.Format("02/01/2006"),
			Notes:        w.Notes,
		})

		uc.notifier.Dispatch(notify.Event{
			WorkshopID: workshopID,
			WorkID:     w.ID,
			Phone:      w.Client.Phone,
			Message:    msg,
		})
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: workshopID,
		UserID:     &userID,
		Action:     "work_" + target,
		Entity:     "work",
		EntityID:   &w.ID,
	})

	return w, nil
}
