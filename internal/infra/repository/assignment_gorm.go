package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/usecase/assignment"
)

type AssignmentGormRepository struct {
	db *gorm.DB
}

func NewAssignmentGormRepository(db *gorm.DB) *AssignmentGormRepository {
	return &AssignmentGormRepository{db: db}
}

func (r *AssignmentGormRepository) GetBookingByPublicID(
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

func (r *AssignmentGormRepository) GetChefByID(
	ctx context.Context,
	chefID uint,
) (*models.Chef, error) {

	var chef models.Chef
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", chefID).
		First(&chef).Error; err != nil {
		return nil, err
	}
	return &chef, nil
}

func (r *AssignmentGormRepository) ListAvailableChefs(
	ctx context.Context,
	stationID uint,
	weekday int,
	slotTime string,
) ([]models.Chef, error) {

	var chefs []models.Chef
	if err := r.db.WithContext(ctx).
		Joins("JOIN chef_availabilities ca ON ca.chef_id = chefs.id").
		Where(
			`chefs.station_id = ? AND chefs.active = true
			 AND ca.active = true AND ca.weekday = ?
			 AND ca.start_time <= ? AND ca.end_time > ?`,
			stationID, weekday, slotTime, slotTime,
		).
		Distinct("chefs.*").
		Order("chefs.id ASC").
		Find(&chefs).Error; err != nil {
		return nil, err
	}
	return chefs, nil
}

// bookings ativos do chef na data, via chef_assignments
func (r *AssignmentGormRepository) ListChefBookingsForDate(
	ctx context.Context,
	chefID uint,
	eventDate time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Joins("JOIN chef_assignments a ON a.booking_id = bookings.id").
		Where(
			"a.chef_id = ? AND bookings.event_date = ? AND bookings.status IN ?",
			chefID, eventDate.Format("2006-01-02"), bookingOccupyingStatuses(),
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// candidatos à negociação de deslocamento: bookings ativos no slot
func (r *AssignmentGormRepository) ListBookingsForSlot(
	ctx context.Context,
	stationID uint,
	eventDate time.Time,
	slotTime string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"station_id = ? AND event_date = ? AND slot_time = ? AND status IN ?",
			stationID, eventDate.Format("2006-01-02"), slotTime, bookingOccupyingStatuses(),
		).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// GetAssignmentByBookingID devolve (nil, nil) quando não existe.
func (r *AssignmentGormRepository) GetAssignmentByBookingID(
	ctx context.Context,
	bookingID uint,
) (*models.ChefAssignment, error) {

	var a models.ChefAssignment
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentGormRepository) CreateAssignment(
	ctx context.Context,
	a *models.ChefAssignment,
) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AssignmentGormRepository) UpdateAssignment(
	ctx context.Context,
	a *models.ChefAssignment,
) error {
	return r.db.WithContext(ctx).Save(a).Error
}

var _ assignment.Repository = (*AssignmentGormRepository)(nil)
