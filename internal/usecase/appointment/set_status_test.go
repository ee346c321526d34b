package appointment

import (
	"context"
	"testing"

	"github.com/atelierops/atelier-scheduler/internal/audit"
	domain "github.com/atelierops/atelier-scheduler/internal/domain/appointment"
	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

func TestSetStatusFollowsTable(t *testing.T) {
	repo := newMockSchedulingRepo()
	scheduleUC := newScheduleUC(repo)
	uc := NewSetStatus(repo, audit.NewDispatcher(audit.New(nil)))

	ap, err := scheduleUC.Execute(context.Background(), ScheduleInput{
		WorkshopID: 1, ClientID: 10,
		Date: "2030-06-10", Time: "10:00",
	})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	got, err := uc.Execute(context.Background(), 1, 1, ap.ID, "confirmed")
	if err != nil {
		t.Fatalf("scheduled -> confirmed failed: %v", err)
	}
	if got.Status != string(domain.StatusConfirmed) {
		t.Errorf("status = %s, want confirmed", got.Status)
	}

	if _, err := uc.Execute(context.Background(), 1, 1, ap.ID, "scheduled"); !httperr.IsBusiness(err, httperr.CodeIllegalTransition) {
		t.Errorf("confirmed -> scheduled: got %v, want illegal_transition", err)
	}

	if _, err := uc.Execute(context.Background(), 1, 1, ap.ID, "archived"); !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Errorf("unknown status: got %v, want invalid_status", err)
	}
}

func TestSetStatusUnknownAppointment(t *testing.T) {
	repo := newMockSchedulingRepo()
	uc := NewSetStatus(repo, audit.NewDispatcher(audit.New(nil)))

	if _, err := uc.Execute(context.Background(), 1, 1, 99, "confirmed"); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("got %v, want not_found", err)
	}
}
