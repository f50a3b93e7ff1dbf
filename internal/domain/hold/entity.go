package hold

import (
	"time"

	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Sign registra a assinatura do contrato e deriva o payment_deadline.
// payment_deadline nunca é setado de forma independente.
func Sign(h *models.SlotHold, now time.Time, paymentWindow time.Duration) error {
	if err := CanSign(Status(h.Status)); err != nil {
		return err
	}
	if h.AgreementSignedAt != nil {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if now.After(h.SigningDeadline) {
		// o sweep já deveria ter expirado este hold
		return httperr.ErrBusiness(httperr.CodeDeadlineExceeded)
	}

	h.AgreementSignedAt = &now
	deadline := now.Add(paymentWindow)
	h.PaymentDeadline = &deadline
	return nil
}

// Pay registra o depósito e converte o hold.
func Pay(h *models.SlotHold, now time.Time) error {
	if err := CanPay(Status(h.Status)); err != nil {
		return err
	}
	if h.AgreementSignedAt == nil || h.PaymentDeadline == nil {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if now.After(*h.PaymentDeadline) {
		return httperr.ErrBusiness(httperr.CodeDeadlineExceeded)
	}

	h.DepositPaidAt = &now
	h.Status = string(StatusConverted)
	return nil
}

// ExpireReason devolve o motivo de expiração aplicável, se houver.
// O sweep usa isto com filtros por status+deadline: nunca "last run".
func ExpireReason(h *models.SlotHold, now time.Time) (string, bool) {
	if Status(h.Status) != StatusPending {
		return "", false
	}
	if h.AgreementSignedAt == nil {
		if now.After(h.SigningDeadline) {
			return ReasonSigningTimeout, true
		}
		return "", false
	}
	if h.DepositPaidAt == nil && h.PaymentDeadline != nil && now.After(*h.PaymentDeadline) {
		return ReasonPaymentTimeout, true
	}
	return "", false
}

func MarkExpired(h *models.SlotHold, reason string) {
	h.Status = string(StatusExpired)
	h.CancellationReason = &reason
}

// NeedsSigningWarning: pendente, não assinado, aviso não enviado,
// dentro da janela [deadline-lead, deadline)
func NeedsSigningWarning(h *models.SlotHold, now time.Time, lead time.Duration) bool {
	if Status(h.Status) != StatusPending || h.AgreementSignedAt != nil {
		return false
	}
	if h.SigningWarningSentAt != nil {
		return false
	}
	return !now.Before(h.SigningDeadline.Add(-lead)) && now.Before(h.SigningDeadline)
}

func NeedsPaymentWarning(h *models.SlotHold, now time.Time, lead time.Duration) bool {
	if Status(h.Status) != StatusPending || h.AgreementSignedAt == nil || h.DepositPaidAt != nil {
		return false
	}
	if h.PaymentDeadline == nil || h.PaymentWarningSentAt != nil {
		return false
	}
	return !now.Before(h.PaymentDeadline.Add(-lead)) && now.Before(*h.PaymentDeadline)
}
