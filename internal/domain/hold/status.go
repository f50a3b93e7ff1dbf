package hold

import "github.com/suryadizhang/mh-scheduler/internal/httperr"

// ===============================
// Hold Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConverted Status = "converted"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// Motivos de cancelamento automático
const (
	ReasonSigningTimeout = "signing_timeout"
	ReasonPaymentTimeout = "payment_timeout"
)

func (s Status) IsTerminal() bool {
	return s == StatusConverted || s == StatusExpired || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

func CanSign(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func CanPay(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
