package negotiation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type Repository interface {
	GetBookingByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetNegotiationByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.BookingNegotiation, error)

	// negociação não terminal do booking, se houver
	GetOpenNegotiationForBooking(
		ctx context.Context,
		bookingID uint,
	) (*models.BookingNegotiation, error)

	CreateNegotiation(
		ctx context.Context,
		n *models.BookingNegotiation,
	) error

	UpdateNegotiation(
		ctx context.Context,
		n *models.BookingNegotiation,
	) error

	ListByBooking(
		ctx context.Context,
		bookingID uint,
	) ([]models.BookingNegotiation, error)

	// expiração condicional (status pendente/sent + expires_at vencido)
	ListExpireCandidates(
		ctx context.Context,
		now time.Time,
	) ([]models.BookingNegotiation, error)

	ExpireNegotiation(
		ctx context.Context,
		negotiationID uint,
	) (bool, error)

	// perfil por telefone, criado se não existir
	GetOrCreateProfile(
		ctx context.Context,
		phone string,
		name string,
		email string,
	) (*models.CustomerProfile, error)

	UpdateProfile(
		ctx context.Context,
		p *models.CustomerProfile,
	) error
}
