package appointment

import (
	"context"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/models"
)

type Repository interface {
	// -------- Workshop --------
	GetWorkshopByID(
		ctx context.Context,
		id uint,
	) (*models.Workshop, error)

	// -------- Client --------
	GetClient(
		ctx context.Context,
		workshopID uint,
		clientID uint,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CountActiveAtSlot(
		ctx context.Context,
		workshopID uint,
		date time.Time,
		hhmm string,
	) (int64, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		workshopID uint,
		appointmentID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListActiveTimesForDay(
		ctx context.Context,
		workshopID uint,
		date time.Time,
	) ([]string, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		workshopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
