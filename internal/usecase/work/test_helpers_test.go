package work

import (
	"context"
	"errors"
	"time"

	apdomain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	domain "github.com/atelierops/atelier-scheduler/internal/domain/work"
	"github.com/atelierops/atelier-scheduler/internal/models"
)

// Ensure the mock implements both repository interfaces, like the real
// GORM adapter does.
var (
	_ domain.Repository   = (*mockWorkshopRepo)(nil)
	_ apdomain.Repository = (*mockWorkshopRepo)(nil)
)

type mockWorkshopRepo struct {
	shops      map[uint]*models.Workshop
	clients    map[uint]*models.Client
	categories map[uint]*models.WorkCategory

	works        map[uint]*models.Work
	appointments map[uint]*models.Appointment
	nextWorkID   uint
	nextApID     uint

	createWorkErr error
	updateWorkErr error
	countErr      error
}

func newMockWorkshopRepo() *mockWorkshopRepo {
	return &mockWorkshopRepo{
		shops: map[uint]*models.Workshop{
			1: {ID: 1, Name: "Atelier Centro", Phone: "911222333", Timezone: "UTC"},
		},
		clients: map[uint]*models.Client{
			10: {ID: 10, WorkshopID: 1, Name: "Ana", Phone: "600111222"},
			11: {ID: 11, WorkshopID: 1, Name: "Luis"},
		},
		categories: map[uint]*models.WorkCategory{
			20: {
				ID: 20, WorkshopID: 1, Name: "Arreglo de traje",
				EstimatedHours: 16, ToleranceDays: 2,
				RequiresAppointment: true, Active: true, BasePrice: 45,
			},
			21: {
				ID: 21, WorkshopID: 1, Name: "Bajo de pantalón",
				EstimatedHours: 1, ToleranceDays: 0,
				Active: true, BasePrice: 12,
			},
		},
		works:        make(map[uint]*models.Work),
		appointments: make(map[uint]*models.Appointment),
	}
}

// -------- Workshop / Category / Client --------

func (m *mockWorkshopRepo) GetWorkshopByID(ctx context.Context, id uint) (*models.Workshop, error) {
	if shop, ok := m.shops[id]; ok {
		return shop, nil
	}
	return nil, errors.New("workshop not found")
}

func (m *mockWorkshopRepo) GetCategory(ctx context.Context, workshopID, categoryID uint) (*models.WorkCategory, error) {
	if cat, ok := m.categories[categoryID]; ok && cat.WorkshopID == workshopID {
		return cat, nil
	}
	return nil, errors.New("category not found")
}

func (m *mockWorkshopRepo) GetClient(ctx context.Context, workshopID, clientID uint) (*models.Client, error) {
	if client, ok := m.clients[clientID]; ok && client.WorkshopID == workshopID {
		return client, nil
	}
	return nil, errors.New("client not found")
}

// -------- Work --------

func (m *mockWorkshopRepo) CreateWork(ctx context.Context, w *models.Work) error {
	if m.createWorkErr != nil {
		return m.createWorkErr
	}
	m.nextWorkID++
	w.ID = m.nextWorkID
	cp := *w
	m.works[w.ID] = &cp
	return nil
}

func (m *mockWorkshopRepo) GetWork(ctx context.Context, workshopID, workID uint) (*models.Work, error) {
	if w, ok := m.works[workID]; ok && w.WorkshopID == workshopID {
		cp := *w
		cp.Client = *m.clients[w.ClientID]
		cp.Category = *m.categories[w.CategoryID]
		return &cp, nil
	}
	return nil, errors.New("work not found")
}

func (m *mockWorkshopRepo) UpdateWork(ctx context.Context, w *models.Work) error {
	if m.updateWorkErr != nil {
		return m.updateWorkErr
	}
	cp := *w
	m.works[w.ID] = &cp
	return nil
}

func (m *mockWorkshopRepo) DeleteWork(ctx context.Context, workshopID, workID uint) error {
	delete(m.works, workID)
	return nil
}

func (m *mockWorkshopRepo) ListWorks(ctx context.Context, workshopID uint, filters domain.ListFilters) ([]models.Work, error) {
	var out []models.Work
	for _, w := range m.works {
		if w.WorkshopID != workshopID {
			continue
		}
		if filters.Status != "" && w.Status != filters.Status {
			continue
		}
		out = append(out, *w)
	}
	return out, nil
}

// -------- Appointment (scheduler collaborator) --------

func (m *mockWorkshopRepo) CountActiveAtSlot(ctx context.Context, workshopID uint, date time.Time, hhmm string) (int64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}

	var count int64
	for _, ap := range m.appointments {
		if ap.WorkshopID == workshopID &&
			ap.AppointmentDate.Equal(apdomain.NormalizeDate(date)) &&
			ap.AppointmentTime == hhmm &&
			apdomain.Status(ap.Status).IsActive() {
			count++
		}
	}
	return count, nil
}

func (m *mockWorkshopRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	m.nextApID++
	ap.ID = m.nextApID
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockWorkshopRepo) GetAppointment(ctx context.Context, workshopID, appointmentID uint) (*models.Appointment, error) {
	if ap, ok := m.appointments[appointmentID]; ok && ap.WorkshopID == workshopID {
		cp := *ap
		return &cp, nil
	}
	return nil, errors.New("appointment not found")
}

func (m *mockWorkshopRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	cp := *ap
	m.appointments[ap.ID] = &cp
	return nil
}

func (m *mockWorkshopRepo) ListActiveTimesForDay(ctx context.Context, workshopID uint, date time.Time) ([]string, error) {
	var times []string
	for _, ap := range m.appointments {
		if ap.WorkshopID == workshopID &&
			ap.AppointmentDate.Equal(apdomain.NormalizeDate(date)) &&
			apdomain.Status(ap.Status).IsActive() {
			times = append(times, ap.AppointmentTime)
		}
	}
	return times, nil
}

func (m *mockWorkshopRepo) ListAppointmentsForPeriod(ctx context.Context, workshopID uint, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range m.appointments {
		if ap.WorkshopID == workshopID {
			out = append(out, *ap)
		}
	}
	return out, nil
}
