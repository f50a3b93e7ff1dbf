package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	negotiationDomain "github.com/suryadizhang/mh-scheduler/internal/domain/negotiation"
	"github.com/suryadizhang/mh-scheduler/internal/models"
	"github.com/suryadizhang/mh-scheduler/internal/usecase/negotiation"
)

type NegotiationGormRepository struct {
	db *gorm.DB
}

func NewNegotiationGormRepository(db *gorm.DB) *NegotiationGormRepository {
	return &NegotiationGormRepository{db: db}
}

func (r *NegotiationGormRepository) GetBookingByPublicID(
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

func (r *NegotiationGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *NegotiationGormRepository) GetNegotiationByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.BookingNegotiation, error) {

	var n models.BookingNegotiation
	if err := r.db.WithContext(ctx).
		Preload("Booking").
		Where("public_id = ?", publicID).
		First(&n).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// GetOpenNegotiationForBooking devolve (nil, nil) quando não existe.
func (r *NegotiationGormRepository) GetOpenNegotiationForBooking(
	ctx context.Context,
	bookingID uint,
) (*models.BookingNegotiation, error) {

	var n models.BookingNegotiation
	err := r.db.WithContext(ctx).
		Where(
			"booking_id = ? AND status IN ?",
			bookingID,
			[]string{
				string(negotiationDomain.StatusPending),
				string(negotiationDomain.StatusSent),
			},
		).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NegotiationGormRepository) CreateNegotiation(
	ctx context.Context,
	n *models.BookingNegotiation,
) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NegotiationGormRepository) UpdateNegotiation(
	ctx context.Context,
	n *models.BookingNegotiation,
) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *NegotiationGormRepository) ListByBooking(
	ctx context.Context,
	bookingID uint,
) ([]models.BookingNegotiation, error) {

	var list []models.BookingNegotiation
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *NegotiationGormRepository) ListExpireCandidates(
	ctx context.Context,
	now time.Time,
) ([]models.BookingNegotiation, error) {

	var list []models.BookingNegotiation
	if err := r.db.WithContext(ctx).
		Where(
			"status IN ? AND expires_at < ?",
			[]string{
				string(negotiationDomain.StatusPending),
				string(negotiationDomain.StatusSent),
			},
			now,
		).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ExpireNegotiation é condicional: false se outra rodada já expirou.
func (r *NegotiationGormRepository) ExpireNegotiation(
	ctx context.Context,
	negotiationID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.BookingNegotiation{}).
		Where(
			"id = ? AND status IN ?",
			negotiationID,
			[]string{
				string(negotiationDomain.StatusPending),
				string(negotiationDomain.StatusSent),
			},
		).
		Update("status", string(negotiationDomain.StatusExpired))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *NegotiationGormRepository) GetOrCreateProfile(
	ctx context.Context,
	phone string,
	name string,
	email string,
) (*models.CustomerProfile, error) {

	p := models.CustomerProfile{Phone: phone, Name: name, Email: email}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(&p).Error; err != nil {
		return nil, err
	}

	var out models.CustomerProfile
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *NegotiationGormRepository) UpdateProfile(
	ctx context.Context,
	p *models.CustomerProfile,
) error {
	return r.db.WithContext(ctx).Save(p).Error
}

var _ negotiation.Repository = (*NegotiationGormRepository)(nil)
