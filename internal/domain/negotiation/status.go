package negotiation

import "github.com/suryadizhang/mh-scheduler/internal/httperr"

// ===============================
// Negotiation Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsTerminal() bool {
	return s == StatusAccepted || s == StatusDeclined ||
		s == StatusExpired || s == StatusCancelled
}

func CanRespond(current Status) error {
	if current != StatusPending && current != StatusSent {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}
