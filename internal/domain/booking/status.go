package booking

import "github.com/suryadizhang/mh-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending               Status = "pending"
	StatusConfirmed             Status = "confirmed"
	StatusInProgress            Status = "in_progress"
	StatusCompleted             Status = "completed"
	StatusCancelled             Status = "cancelled"
	StatusNoShow                Status = "no_show"
	StatusRescheduled           Status = "rescheduled"
	StatusCancellationRequested Status = "cancellation_requested"
)

// OccupiesSlot diz se o booking ainda segura o (station, date, slot).
// cancellation_requested continua segurando o slot: é o motivo de
// existir um status separado em vez de cancelar direto.
func (s Status) OccupiesSlot() bool {
	switch s {
	case StatusCancelled, StatusNoShow, StatusRescheduled:
		return false
	}
	return true
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusNoShow ||
		s == StatusCompleted || s == StatusRescheduled
}

// OccupyingStatuses para filtros SQL de contagem de slot
var OccupyingStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
	string(StatusInProgress),
	string(StatusCompleted),
	string(StatusCancellationRequested),
}

// ===============================
// Validations
// ===============================

func CanRequestCancellation(current Status) error {
	if current == StatusCancellationRequested {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if current.IsTerminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func CanResolveCancellation(current Status) error {
	if current != StatusCancellationRequested {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}
