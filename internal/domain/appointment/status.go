package appointment

import "github.com/atelierops/atelier-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled   Status = "scheduled"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func InitialStatus() Status {
	return StatusScheduled
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted,
		StatusCancelled, StatusRescheduled:
		return true
	}
	return false
}

// IsActive reports whether the appointment still holds its slot.
func (s Status) IsActive() bool {
	return s != StatusCancelled
}

// ===============================
// Transitions
// ===============================

// validTransitions is the enforced lifecycle. completed and cancelled are
// terminal; rescheduled may fall back to scheduled when a new slot is picked.
var validTransitions = map[Status]map[Status]bool{
	StatusScheduled: {
		StatusConfirmed:   true,
		StatusCancelled:   true,
		StatusRescheduled: true,
	},
	StatusConfirmed: {
		StatusCompleted:   true,
		StatusCancelled:   true,
		StatusRescheduled: true,
	},
	StatusRescheduled: {
		StatusScheduled: true,
		StatusConfirmed: true,
		StatusCompleted: true,
		StatusCancelled: true,
	},
}

// CanTransition validates a status change against the lifecycle table.
func CanTransition(from, to Status) error {
	if !to.IsValid() {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	targets, ok := validTransitions[from]
	if !ok || !targets[to] {
		return httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}

	return nil
}
