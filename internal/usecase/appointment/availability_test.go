package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

func TestCheckAvailability(t *testing.T) {
	repo := newMockSchedulingRepo()
	scheduleUC := newScheduleUC(repo)
	uc := NewCheckAvailability(repo)

	day := time.Date(2030, time.June, 10, 0, 0, 0, 0, time.UTC)

	free, err := uc.Execute(context.Background(), 1, day, "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !free {
		t.Error("empty slot reported as taken")
	}

	if _, err := scheduleUC.Execute(context.Background(), ScheduleInput{
		WorkshopID: 1, ClientID: 10,
		Date: "2030-06-10", Time: "10:00",
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	free, err = uc.Execute(context.Background(), 1, day, "10:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if free {
		t.Error("taken slot reported as free")
	}
}

func TestCheckAvailabilityFailsClosed(t *testing.T) {
	repo := newMockSchedulingRepo()
	repo.countErr = errors.New("store unreachable")
	uc := NewCheckAvailability(repo)

	day := time.Date(2030, time.June, 10, 0, 0, 0, 0, time.UTC)

	free, err := uc.Execute(context.Background(), 1, day, "10:00")
	if !httperr.IsBusiness(err, httperr.CodeAvailabilityCheck) {
		t.Fatalf("got %v, want availability_check_failed", err)
	}
	if free {
		t.Error("query failure reported as available")
	}
}

func TestDayAvailabilityExcludesBookedSlots(t *testing.T) {
	repo := newMockSchedulingRepo()
	scheduleUC := newScheduleUC(repo)
	uc := NewDayAvailability(repo, "09:00", "11:00", 30)

	if _, err := scheduleUC.Execute(context.Background(), ScheduleInput{
		WorkshopID: 1, ClientID: 10,
		Date: "2030-06-10", Time: "09:30",
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	day := time.Date(2030, time.June, 10, 0, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, s := range slots {
		if s.Time == "09:30" {
			t.Error("booked slot offered as free")
		}
	}
	if len(slots) != 3 {
		t.Errorf("got %d free slots, want 3", len(slots))
	}
}

func TestDayAvailabilityIsScopedToWorkshop(t *testing.T) {
	repo := newMockSchedulingRepo()
	scheduleUC := newScheduleUC(repo)
	uc := NewDayAvailability(repo, "09:00", "11:00", 30)

	// Workshop 2 books 09:30; workshop 1's grid must not show it as taken.
	if _, err := scheduleUC.Execute(context.Background(), ScheduleInput{
		WorkshopID: 2, ClientID: 12,
		Date: "2030-06-10", Time: "09:30",
	}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	day := time.Date(2030, time.June, 10, 0, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(slots) != 4 {
		t.Errorf("got %d free slots, want 4", len(slots))
	}
}
