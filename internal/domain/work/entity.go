package work

import (
	"time"

	"github.com/atelierops/atelier-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Advance moves a work order to the target status. Reaching delivered stamps
// the actual delivery date unless the operator already set one by hand.
func Advance(w *models.Work, to Status, now time.Time) error {
	if err := CanAdvance(Status(w.Status), to); err != nil {
		return err
	}

	w.Status = string(to)

	if to == StatusDelivered && w.ActualDeliveryDate == nil {
		delivered := time.Date(
			now.Year(), now.Month(), now.Day(),
			0, 0, 0, 0,
			now.Location(),
		)
		w.ActualDeliveryDate = &delivered
	}

	return nil
}

// NotificationEligible reports whether completing this work should trigger a
// client notification. The transition itself never depends on the answer.
func NotificationEligible(w *models.Work, to Status, clientPhone string) bool {
	return to == StatusCompleted && clientPhone != ""
}
