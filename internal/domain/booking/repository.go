package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type Repository interface {
	GetStationBySlug(
		ctx context.Context,
		slug string,
	) (*models.Station, error)

	GetByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Booking, error)

	Update(
		ctx context.Context,
		b *models.Booking,
	) error

	ListByStationAndDate(
		ctx context.Context,
		stationID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// bookings ativos com evento futuro: sweep de urgência
	ListUpcomingActive(
		ctx context.Context,
		from time.Time,
	) ([]models.Booking, error)
}
