package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/models"
)

// Ensure the mock implements the interface
var _ domain.Repository = (*mockSchedulingRepo)(nil)

// mockSchedulingRepo implements domain.Repository for testing.
type mockSchedulingRepo struct {
	shops        map[uint]*models.Workshop
	clients      map[uint]*models.Client
	appointments map[uint]*models.Appointment
	nextID       uint

	countErr  error
	createErr error
	updateErr error
	listErr   error
}

func newMockSchedulingRepo() *mockSchedulingRepo {
	shop := &models.Workshop{
		ID:       1,
		Name:     "Atelier Centro",
		Phone:    "911222333",
		Timezone: "UTC",
	}

	return &mockSchedulingRepo{
		shops: map[uint]*models.Workshop{
			1: shop,
			2: {ID: 2, Name: "Atelier Norte", Timezone: "UTC"},
		},
		clients: map[uint]*models.Client{
			10: {ID: 10, WorkshopID: 1, Name: "Ana", Phone: "600111222"},
			11: {ID: 11, WorkshopID: 1, Name: "Luis"},
			12: {ID: 12, WorkshopID: 2, Name: "Marta"},
		},
		appointments: make(map[uint]*models.Appointment),
	}
}

func (m *mockSchedulingRepo) GetWorkshopByID(ctx context.Context, id uint) (*models.Workshop, error) {
	if shop, ok := m.shops[id]; ok {
		return shop, nil
	}
	return nil, errors.New("workshop not found")
}

func (m *mockSchedulingRepo) GetClient(ctx context.Context, workshopID, clientID uint) (*models.Client, error) {
	if client, ok := m.clients[clientID]; ok && client.WorkshopID == workshopID {
		return client, nil
	}
	return nil, errors.New("client not found")
}

func (m *mockSchedulingRepo) CountActiveAtSlot(ctx context.Context, workshopID uint, date time.Time, hhmm string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}

	var count int64
	for _, ap := range m.appointments {
		if ap.WorkshopID == workshopID &&
			ap.AppointmentDate.Equal(domain.NormalizeDate(date)) &&
			ap.AppointmentTime == hhmm &&
			domain.Status(ap.Status).IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *mockSchedulingRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	ap.ID = m.nextID
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockSchedulingRepo) GetAppointment(ctx context.Context, workshopID, appointmentID uint) (*models.Appointment, error) {
	if ap, ok := m.appointments[appointmentID]; ok && ap.WorkshopID == workshopID {
		cp := *ap
		return &cp, nil
	}
	return nil, errors.New("appointment not found")
}

func (m *mockSchedulingRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockSchedulingRepo) ListActiveTimesForDay(ctx context.Context, workshopID uint, date time.Time) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var times []string
	for _, ap := range m.appointments {
		if ap.WorkshopID == workshopID &&
			ap.AppointmentDate.Equal(domain.NormalizeDate(date)) &&
			domain.Status(ap.Status).IsActive() {
			times = append(times, ap.AppointmentTime)
		}
	}
	return times, nil
}

func (m *mockSchedulingRepo) ListAppointmentsForPeriod(ctx context.Context, workshopID uint, start, end time.Time) ([]models.Appointment, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}

	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.WorkshopID != workshopID {
			continue
		}
		if ap.AppointmentDate.Before(start) || !ap.AppointmentDate.Before(end) {
			continue
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (m *mockSchedulingRepo) slotCount(date, hhmm string) int {
	n := 0
	for _, ap := range m.appointments {
		if ap.AppointmentDate.Format("2006-01-02") == date &&
			ap.AppointmentTime == hhmm &&
			domain.Status(ap.Status).IsActive() {
			n++
		}
	}
	return n
}
