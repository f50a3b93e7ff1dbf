package hold

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type Repository interface {
	// -------- Station --------
	GetStationBySlug(
		ctx context.Context,
		slug string,
	) (*models.Station, error)

	// -------- Hold (create / lookup) --------
	CreateHold(
		ctx context.Context,
		h *models.SlotHold,
	) error

	GetHoldByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.SlotHold, error)

	UpdateHold(
		ctx context.Context,
		h *models.SlotHold,
	) error

	// -------- Contagem de slot (FOR UPDATE dentro de tx) --------
	CountAvailableChefs(
		ctx context.Context,
		stationID uint,
		weekday int,
		slotTime string,
	) (int, error)

	ListActiveHoldsForSlot(
		ctx context.Context,
		stationID uint,
		eventDate time.Time,
		slotTime string,
	) ([]models.SlotHold, error)

	ListActiveBookingsForSlot(
		ctx context.Context,
		stationID uint,
		eventDate time.Time,
		slotTime string,
	) ([]models.Booking, error)

	// -------- Conversão --------
	CreateAgreement(
		ctx context.Context,
		a *models.SignedAgreement,
	) error

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Sweeps (filtros por status+deadline) --------
	ListSigningWarningCandidates(
		ctx context.Context,
		now time.Time,
		lead time.Duration,
	) ([]models.SlotHold, error)

	ListPaymentWarningCandidates(
		ctx context.Context,
		now time.Time,
		lead time.Duration,
	) ([]models.SlotHold, error)

	// marcação condicional (WHERE ... IS NULL): devolve false se outro
	// sweep já marcou
	MarkSigningWarningSent(
		ctx context.Context,
		holdID uint,
		at time.Time,
	) (bool, error)

	MarkPaymentWarningSent(
		ctx context.Context,
		holdID uint,
		at time.Time,
	) (bool, error)

	ListExpireCandidates(
		ctx context.Context,
		now time.Time,
	) ([]models.SlotHold, error)

	ExpireHold(
		ctx context.Context,
		holdID uint,
		reason string,
	) (bool, error)

	// -------- Transação --------
	InTx(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
