package work

import (
	"testing"
	"time"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
	"github.com/atelierops/atelier-scheduler/internal/models"
)

func TestCanAdvanceForwardOnly(t *testing.T) {
	allowed := []struct {
		from, to Status
	}{
		{StatusPending, StatusInProgress},
		{StatusInProgress, StatusCompleted},
		{StatusCompleted, StatusDelivered},
	}

	for _, tc := range allowed {
		if err := CanAdvance(tc.from, tc.to); err != nil {
			t.Errorf("%s -> %s should be allowed, got %v", tc.from, tc.to, err)
		}
	}

	denied := []struct {
		from, to Status
	}{
		{StatusPending, StatusCompleted},
		{StatusPending, StatusDelivered},
		{StatusInProgress, StatusDelivered},
		{StatusInProgress, StatusPending},
		{StatusCompleted, StatusInProgress},
		{StatusDelivered, StatusCompleted},
		{StatusDelivered, StatusCancelled},
		{StatusCancelled, StatusPending},
	}

	for _, tc := range denied {
		if err := CanAdvance(tc.from, tc.to); !httperr.IsBusiness(err, httperr.CodeIllegalTransition) {
			t.Errorf("%s -> %s: got %v, want illegal_transition", tc.from, tc.to, err)
		}
	}
}

func TestCanAdvanceCancellation(t *testing.T) {
	for _, from := range []Status{StatusPending, StatusInProgress, StatusCompleted} {
		if err := CanAdvance(from, StatusCancelled); err != nil {
			t.Errorf("cancel from %s should be allowed, got %v", from, err)
		}
	}
}

func TestCanAdvanceUnknownStatus(t *testing.T) {
	if err := CanAdvance(StatusPending, Status("shipped")); !httperr.IsBusiness(err, httperr.CodeInvalidStatus) {
		t.Errorf("got %v, want invalid_status", err)
	}
}

func TestAdvanceStampsActualDeliveryDate(t *testing.T) {
	now := time.Date(2026, time.April, 15, 17, 45, 0, 0, time.UTC)

	w := &models.Work{Status: string(StatusCompleted)}
	if err := Advance(w, StatusDelivered, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.ActualDeliveryDate == nil {
		t.Fatal("actual_delivery_date not stamped")
	}

	want := time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)
	if !w.ActualDeliveryDate.Equal(want) {
		t.Errorf("actual_delivery_date = %s, want %s", w.ActualDeliveryDate, want)
	}
}

func TestAdvanceKeepsManualDeliveryDate(t *testing.T) {
	manual := time.Date(2026, time.April, 10, 0, 0, 0, 0, time.UTC)
	w := &models.Work{
		Status:             string(StatusCompleted),
		ActualDeliveryDate: &manual,
	}

	if err := Advance(w, StatusDelivered, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !w.ActualDeliveryDate.Equal(manual) {
		t.Errorf("manually set delivery date was overwritten")
	}
}

func TestAdvanceRejectsSkippingStates(t *testing.T) {
	w := &models.Work{Status: string(StatusPending)}

	if err := Advance(w, StatusDelivered, time.Now()); !httperr.IsBusiness(err, httperr.CodeIllegalTransition) {
		t.Errorf("pending -> delivered: got %v, want illegal_transition", err)
	}
	if w.Status != string(StatusPending) {
		t.Errorf("status mutated on rejected transition")
	}
	if w.ActualDeliveryDate != nil {
		t.Errorf("delivery date stamped on rejected transition")
	}
}

func TestNotificationEligible(t *testing.T) {
	w := &models.Work{}

	if !NotificationEligible(w, StatusCompleted, "600111222") {
		t.Error("completed work with phone should be eligible")
	}
	if NotificationEligible(w, StatusCompleted, "") {
		t.Error("no phone, not eligible")
	}
	if NotificationEligible(w, StatusDelivered, "600111222") {
		t.Error("delivered is not the notification trigger")
	}
}
