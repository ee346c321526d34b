package work

import "github.com/atelierops/atelier-scheduler/internal/httperr"

// ===============================
// Work Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func InitialStatus() Status {
	return StatusPending
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted,
		StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ===============================
// Transitions
// ===============================

// validTransitions: strictly forward through the pipeline, cancellation
// allowed from any non-terminal state.
var validTransitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusInProgress: true,
		StatusCancelled:  true,
	},
	StatusInProgress: {
		StatusCompleted: true,
		StatusCancelled: true,
	},
	StatusCompleted: {
		StatusDelivered: true,
		StatusCancelled: true,
	},
}

// CanAdvance validates a work status change against the lifecycle table.
func CanAdvance(from, to Status) error {
	if !to.IsValid() {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus)
	}

	targets, ok := validTransitions[from]
	if !ok || !targets[to] {
		return httperr.ErrBusiness(httperr.CodeIllegalTransition)
	}

	return nil
}
