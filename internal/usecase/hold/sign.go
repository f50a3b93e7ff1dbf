package hold

import (
	"context"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type SignAgreementInput struct {
	HoldPublicID     uuid.UUID
	SignatureName    string
	AgreementVersion string
	ContentHash      string
}

type SignAgreement struct {
	repo  domain.Repository
	vars  *dynvars.Service
	audit *audit.Dispatcher
}

func NewSignAgreement(
	repo domain.Repository,
	vars *dynvars.Service,
	audit *audit.Dispatcher,
) *SignAgreement {
	return &SignAgreement{
		repo:  repo,
		vars:  vars,
		audit: audit,
	}
}

// Execute registra a assinatura e deriva o payment_deadline do momento
// da assinatura (nunca do signing_deadline).
func (uc *SignAgreement) Execute(
	ctx context.Context,
	in SignAgreementInput,
) (*models.SlotHold, error) {

	paymentWindow, err := uc.vars.PaymentWindow(ctx)
	if err != nil {
		return nil, err
	}

	var h *models.SlotHold

	err = uc.repo.InTx(ctx, func(tx domain.Repository) error {
		var err error
		h, err = tx.GetHoldByPublicID(ctx, in.HoldPublicID)
		if err != nil {
			return err
		}

		now := timezone.NowIn(h.Station.Timezone)
		if err := domain.Sign(h, now, paymentWindow); err != nil {
			return err
		}

		agreement := &models.SignedAgreement{
			HoldID:           h.ID,
			CustomerName:     h.CustomerName,
			SignatureName:    in.SignatureName,
			AgreementVersion: in.AgreementVersion,
			ContentHash:      in.ContentHash,
			SignedAt:         now,
		}
		if err := tx.CreateAgreement(ctx, agreement); err != nil {
			return err
		}

		return tx.UpdateHold(ctx, h)
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StationID: h.StationID,
		Action:    "agreement_signed",
		Entity:    "slot_hold",
		EntityID:  &h.ID,
	})

	return h, nil
}
