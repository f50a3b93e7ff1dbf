package cancellation

import (
	"context"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

// ======================================================
// CANCELAMENTO EM DUAS ETAPAS: request
// ======================================================
//
// O slot continua ocupado até a resolução: é exatamente para isso que
// o status cancellation_requested existe.

type RequestInput struct {
	BookingPublicID uuid.UUID
	RequestedBy     string
	Reason          string
}

type Request struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequest(repo domain.Repository, audit *audit.Dispatcher) *Request {
	return &Request{repo: repo, audit: audit}
}

func (uc *Request) Execute(
	ctx context.Context,
	in RequestInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetByPublicID(ctx, in.BookingPublicID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(b.Station.Timezone)
	if err := domain.RequestCancellation(b, now, in.RequestedBy, in.Reason); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StationID: b.StationID,
		Action:    "cancellation_requested",
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
