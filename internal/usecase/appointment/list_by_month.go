package appointment

import (
	"context"
	"time"

	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/dto"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

type ListByMonth struct {
	repo domain.Repository
}

func NewListByMonth(repo domain.Repository) *ListByMonth {
	return &ListByMonth{repo: repo}
}

func (uc *ListByMonth) Execute(
	ctx context.Context,
	workshopID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	shop, err := uc.repo.GetWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		workshopID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	return toListDTOs(appointments), nil
}
