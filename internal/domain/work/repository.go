package work

import (
	"context"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/models"
)

// ListFilters narrows work listings; zero values mean no filter.
type ListFilters struct {
	Status    string
	ClientID  uint
	EntryFrom time.Time
	EntryTo   time.Time
}

type Repository interface {
	GetWorkshopByID(
		ctx context.Context,
		id uint,
	) (*models.Workshop, error)

	GetCategory(
		ctx context.Context,
		workshopID uint,
		categoryID uint,
	) (*models.WorkCategory, error)

	GetClient(
		ctx context.Context,
		workshopID uint,
		clientID uint,
	) (*models.Client, error)

	CreateWork(
		ctx context.Context,
		w *models.Work,
	) error

	GetWork(
		ctx context.Context,
		workshopID uint,
		workID uint,
	) (*models.Work, error)

	UpdateWork(
		ctx context.Context,
		w *models.Work,
	) error

	DeleteWork(
		ctx context.Context,
		workshopID uint,
		workID uint,
	) error

	ListWorks(
		ctx context.Context,
		workshopID uint,
		filters ListFilters,
	) ([]models.Work, error)
}
