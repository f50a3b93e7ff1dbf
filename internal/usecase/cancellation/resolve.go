package cancellation

import (
	"context"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/audit"
	domain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/timezone"
)

type ResolveInput struct {
	BookingPublicID uuid.UUID
	ResolvedBy      string
	Note            string
}

type Resolve struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewResolve(repo domain.Repository, audit *audit.Dispatcher) *Resolve {
	return &Resolve{repo: repo, audit: audit}
}

// Approve cancela de vez e libera o slot.
func (uc *Resolve) Approve(
	ctx context.Context,
	in ResolveInput,
) (*models.Booking, error) {
	return uc.resolve(ctx, in, true)
}

// Reject restaura o previous_status; o slot nunca chegou a ser liberado.
func (uc *Resolve) Reject(
	ctx context.Context,
	in ResolveInput,
) (*models.Booking, error) {
	return uc.resolve(ctx, in, false)
}

func (uc *Resolve) resolve(
	ctx context.Context,
	in ResolveInput,
	approve bool,
) (*models.Booking, error) {

	b, err := uc.repo.GetByPublicID(ctx, in.BookingPublicID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(b.Station.Timezone)

	action := "cancellation_rejected"
	if approve {
		err = domain.ApproveCancellation(b, now, in.ResolvedBy, in.Note)
		action = "cancellation_approved"
	} else {
		err = domain.RejectCancellation(b, now, in.ResolvedBy, in.Note)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StationID: b.StationID,
		Action:    action,
		Entity:    "booking",
		EntityID:  &b.ID,
	})

	return b, nil
}
