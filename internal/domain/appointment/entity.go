package appointment

import (
	"time"

	"github.com/atelierops/atelier-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to a new status, stamping the cancellation
// or completion time when a terminal state is reached.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCancelled:
		ap.CancelledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}

	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCancelled, now)
}

func Complete(ap *models.Appointment, now time.Time) error {
	return Transition(ap, StatusCompleted, now)
}
