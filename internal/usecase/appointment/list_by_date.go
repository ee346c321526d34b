package appointment

import (
	"context"
	"time"

	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/dto"
	"github.com/atelierops/atelier-scheduler/internal/models"
	"github.com/atelierops/atelier-scheduler/internal/timezone"
)

type ListByDate struct {
	repo domain.Repository
}

func NewListByDate(repo domain.Repository) *ListByDate {
	return &ListByDate{repo: repo}
}

func (uc *ListByDate) Execute(
	ctx context.Context,
	workshopID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	shop, err := uc.repo.GetWorkshopByID(ctx, workshopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

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

func toListDTOs(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:         ap.ID,
			Date:       ap.AppointmentDate,
			Time:       ap.AppointmentTime,
			Status:     ap.Status,
			Reference:  ap.Reference,
			ClientName: ap.Client.Name,
			WorkID:     ap.WorkID,
		})
	}
	return out
}
