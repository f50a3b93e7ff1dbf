package negotiation

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/negotiation"
	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/dynvars"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/notify"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type ProposeInput struct {
	BookingPublicID uuid.UUID

	// deslocamento proposto; negativo = mais cedo
	ShiftMinutes int

	Channel string // sms | email
}

type Propose struct {
	repo     Repository
	vars     *dynvars.Service
	notifier notify.Notifier
	audit    *audit.Dispatcher
}

func NewPropose(
	repo Repository,
	vars *dynvars.Service,
	notifier notify.Notifier,
	audit *audit.Dispatcher,
) *Propose {
	return &Propose{
		repo:     repo,
		vars:     vars,
		notifier: notifier,
		audit:    audit,
	}
}

// Execute cria e envia a proposta de deslocamento. O incentivo é
// derivado do tier da magnitude, nunca escolhido livremente.
func (uc *Propose) Execute(
	ctx context.Context,
	in ProposeInput,
) (*models.BookingNegotiation, error) {

	incentive, err := domain.IncentiveForShift(in.ShiftMinutes)
	if err != nil {
		return nil, err
	}

	expiry, err := uc.vars.NegotiationExpiry(ctx)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByPublicID(ctx, in.BookingPublicID)
	if err != nil {
		return nil, err
	}

	open, err := uc.repo.GetOpenNegotiationForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, httperr.ErrBusiness("negotiation_already_open")
	}

	proposed, err := scheduling.ShiftSlot(b.SlotTime, in.ShiftMinutes)
	if err != nil {
		return nil, err
	}

	direction := "later"
	if in.ShiftMinutes < 0 {
		direction = "earlier"
	}

	magnitude := in.ShiftMinutes
	if magnitude < 0 {
		magnitude = -magnitude
	}

	now := timezone.Now()
	n := &models.BookingNegotiation{
		PublicID:         uuid.New(),
		BookingID:        b.ID,
		OriginalSlotTime: b.SlotTime,
		ProposedSlotTime: proposed,
		ShiftMinutes:     magnitude,
		ShiftDirection:   direction,
		Incentive:        incentive,
		Status:           string(domain.StatusPending),
		Channel:          in.Channel,
		ExpiresAt:        now.Add(expiry),
	}
	if err := uc.repo.CreateNegotiation(ctx, n); err != nil {
		return nil, err
	}

	err = uc.notifier.Send(ctx, in.Channel, b.CustomerPhone,
		notify.TemplateNegotiationOffer, map[string]any{
			"negotiation_id": n.PublicID.String(),
			"original_slot":  n.OriginalSlotTime,
			"proposed_slot":  n.ProposedSlotTime,
			"incentive":      n.Incentive,
			"expires_at":     n.ExpiresAt,
		})
	if err != nil {
		log.Printf("envio de proposta falhou para negotiation %d: %v", n.ID, err)
	} else {
		n.Status = string(domain.StatusSent)
		n.SentAt = &now
		if err := uc.repo.UpdateNegotiation(ctx, n); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		StationID: b.StationID,
		Action:    "negotiation_proposed",
		Entity:    "booking_negotiation",
		EntityID:  &n.ID,
	})

	return n, nil
}
