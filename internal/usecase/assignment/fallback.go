package assignment

import (
	"context"

	"github.com/google/uuid"
)

// Candidato à negociação de slot: outro booking ativo no mesmo
// (station, date, slot) que pode deslocar o horário em troca de
// incentivo de comida.
type FallbackCandidate struct {
	BookingPublicID uuid.UUID
	ShiftMinutes    int
}

// NegotiationFallback procura o candidato quando nenhum chef atende o
// slot. O deslocamento proposto é sempre o de menor custo (30 min);
// a direção fica com a proposta. Sem candidato devolve (nil, nil).
func (uc *AssignChef) NegotiationFallback(
	ctx context.Context,
	bookingPublicID uuid.UUID,
) (*FallbackCandidate, error) {

	b, err := uc.repo.GetBookingByPublicID(ctx, bookingPublicID)
	if err != nil {
		return nil, err
	}

	others, err := uc.repo.ListBookingsForSlot(ctx, b.StationID, b.EventDate, b.SlotTime)
	if err != nil {
		return nil, err
	}

	for i := range others {
		if others[i].ID == b.ID {
			continue
		}
		return &FallbackCandidate{
			BookingPublicID: others[i].PublicID,
			ShiftMinutes:    30,
		}, nil
	}
	return nil, nil
}
