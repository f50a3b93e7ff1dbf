package negotiation

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/negotiation"
	"github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/httperr"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
	"github.com/suryadizhang/mh-scheduler/internal/usecase/assignment"
)

type RespondInput struct {
	NegotiationPublicID uuid.UUID
	Accept              bool
}

type Respond struct {
	repo     Repository
	assigner *assignment.AssignChef
	audit    *audit.Dispatcher
}

func NewRespond(
	repo Repository,
	assigner *assignment.AssignChef,
	audit *audit.Dispatcher,
) *Respond {
	return &Respond{
		repo:     repo,
		assigner: assigner,
		audit:    audit,
	}
}

// Execute registra a resposta do cliente. Aceite move o booking para o
// horário proposto e refaz a atribuição; recusa não toca no booking.
// O score de flexibilidade é atualizado em toda resposta.
func (uc *Respond) Execute(
	ctx context.Context,
	in RespondInput,
) (*models.BookingNegotiation, error) {

	n, err := uc.repo.GetNegotiationByPublicID(ctx, in.NegotiationPublicID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanRespond(domain.Status(n.Status)); err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBookingByPublicID(ctx, n.Booking.PublicID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(b.Station.Timezone)
	if now.After(n.ExpiresAt) {
		return nil, httperr.ErrBusiness(httperr.CodeDeadlineExceeded)
	}

	action := "negotiation_declined"
	if in.Accept {
		newAt, err := scheduling.SlotDatetime(
			b.EventDate, n.ProposedSlotTime, timezone.Location(b.Station.Timezone),
		)
		if err != nil {
			return nil, err
		}

		b.SlotTime = n.ProposedSlotTime
		b.BookingDatetime = newAt
		if err := uc.repo.UpdateBooking(ctx, b); err != nil {
			return nil, err
		}

		// horário mudou: viagem e score da atribuição ficaram velhos
		if err := uc.assigner.Recompute(ctx, b); err != nil {
			log.Printf("recompute da atribuição falhou para booking %d: %v", b.ID, err)
		}

		n.Status = string(domain.StatusAccepted)
		action = "negotiation_accepted"
	} else {
		n.Status = string(domain.StatusDeclined)
	}

	n.RespondedAt = &now
	if err := uc.repo.UpdateNegotiation(ctx, n); err != nil {
		return nil, err
	}

	if p, err := uc.repo.GetOrCreateProfile(ctx, b.CustomerPhone, b.CustomerName, b.CustomerEmail); err == nil {
		p.NegotiationsTotal++
		if in.Accept {
			p.NegotiationsAccepted++
		}
		p.FlexibilityScore = domain.FlexibilityScore(p.NegotiationsAccepted, p.NegotiationsTotal)
		if err := uc.repo.UpdateProfile(ctx, p); err != nil {
			log.Printf("atualização de perfil falhou para %s: %v", b.CustomerPhone, err)
		}
	}

	uc.audit.Dispatch(audit.Event{
		StationID: b.StationID,
		Action:    action,
		Entity:    "booking_negotiation",
		EntityID:  &n.ID,
	})

	return n, nil
}
