package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookingDomain "github.com/suryadizhang/mh-scheduler/internal/domain/booking"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) GetStationBySlug(
	ctx context.Context,
	slug string,
) (*models.Station, error) {

	var station models.Station
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND active = true", slug).
		First(&station).Error; err != nil {
		return nil, err
	}
	return &station, nil
}

func (r *BookingGormRepository) GetByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Station").
		Where("public_id = ?", publicID).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) Update(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) ListByStationAndDate(
	ctx context.Context,
	stationID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"station_id = ? AND booking_datetime >= ? AND booking_datetime < ?",
			stationID, start, end,
		).
		Order("booking_datetime ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) ListUpcomingActive(
	ctx context.Context,
	from time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"event_date >= ? AND status IN ?",
			from.Format("2006-01-02"), bookingOccupyingStatuses(),
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ bookingDomain.Repository = (*BookingGormRepository)(nil)
