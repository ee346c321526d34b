package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	apdomain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	workdomain "github.com/atelierops/atelier-scheduler/internal/domain/work"
	"github.com/atelierops/atelier-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Workshop
// --------------------------------------------------

func (r *SchedulingGormRepository) GetWorkshopByID(
	ctx context.Context,
	id uint,
) (*models.Workshop, error) {

	var shop models.Workshop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Category
// --------------------------------------------------

func (r *SchedulingGormRepository) GetCategory(
	ctx context.Context,
	workshopID uint,
	categoryID uint,
) (*models.WorkCategory, error) {

	var cat models.WorkCategory
	if err := r.db.WithContext(ctx).
		Where("id = ? AND workshop_id = ?", categoryID, workshopID).
		First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *SchedulingGormRepository) GetClient(
	ctx context.Context,
	workshopID uint,
	clientID uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND workshop_id = ?", clientID, workshopID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CountActiveAtSlot counts non-cancelled appointments holding the exact
// (date, HH:MM) slot within one workshop's calendar.
func (r *SchedulingGormRepository) CountActiveAtSlot(
	ctx context.Context,
	workshopID uint,
	date time.Time,
	hhmm string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"workshop_id = ? AND appointment_date = ? AND appointment_time = ? AND status <> 'cancelled'",
			workshopID,
			apdomain.NormalizeDate(date),
			hhmm,
		).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	workshopID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND workshop_id = ?", appointmentID, workshopID).
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *SchedulingGormRepository) ListActiveTimesForDay(
	ctx context.Context,
	workshopID uint,
	date time.Time,
) ([]string, error) {

	var times []string
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"workshop_id = ? AND appointment_date = ? AND status <> 'cancelled'",
			workshopID,
			apdomain.NormalizeDate(date),
		).
		Order("appointment_time ASC").
		Pluck("appointment_time", &times).Error; err != nil {
		return nil, err
	}

	return times, nil
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	workshopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Preload("Client").
		Where(
			"workshop_id = ? AND appointment_date >= ? AND appointment_date < ?",
			workshopID,
			start,
			end,
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Work
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateWork(
	ctx context.Context,
	w *models.Work,
) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *SchedulingGormRepository) GetWork(
	ctx context.Context,
	workshopID uint,
	workID uint,
) (*models.Work, error) {

	var w models.Work
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Where("id = ? AND workshop_id = ?", workID, workshopID).
		First(&w).Error; err != nil {
		return nil, err
	}

	return &w, nil
}

func (r *SchedulingGormRepository) UpdateWork(
	ctx context.Context,
	w *models.Work,
) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *SchedulingGormRepository) DeleteWork(
	ctx context.Context,
	workshopID uint,
	workID uint,
) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND workshop_id = ?", workID, workshopID).
		Delete(&models.Work{}).Error
}

func (r *SchedulingGormRepository) ListWorks(
	ctx context.Context,
	workshopID uint,
	filters workdomain.ListFilters,
) ([]models.Work, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Category").
		Where("workshop_id = ?", workshopID)

	if filters.Status != "" {
		q = q.Where("status = ?", filters.Status)
	}
	if filters.ClientID != 0 {
		q = q.Where("client_id = ?", filters.ClientID)
	}
	if !filters.EntryFrom.IsZero() {
		q = q.Where("entry_date >= ?", filters.EntryFrom)
	}
	if !filters.EntryTo.IsZero() {
		q = q.Where("entry_date < ?", filters.EntryTo)
	}

	var works []models.Work
	if err := q.Order("entry_date DESC").Find(&works).Error; err != nil {
		return nil, err
	}

	return works, nil
}

// Compile-time checks
var (
	_ apdomain.Repository   = (*SchedulingGormRepository)(nil)
	_ workdomain.Repository = (*SchedulingGormRepository)(nil)
)
