package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	holdDomain "github.com/suryadizhang/mh-scheduler/internal/domain/hold"
	schedDomain "github.com/suryadizhang/mh-scheduler/internal/domain/scheduling"
	"github.com/suryadizhang/mh-scheduler/internal/models"
)

type HoldGormRepository struct {
	db *gorm.DB
}

func NewHoldGormRepository(db *gorm.DB) *HoldGormRepository {
	return &HoldGormRepository{db: db}
}

// --------------------------------------------------
// Station
// --------------------------------------------------

func (r *HoldGormRepository) GetStationBySlug(
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

// --------------------------------------------------
// Hold
// --------------------------------------------------

func (r *HoldGormRepository) CreateHold(
	ctx context.Context,
	h *models.SlotHold,
) error {
	// o índice único parcial decide a corrida: o perdedor recebe 23505
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HoldGormRepository) GetHoldByPublicID(
	ctx context.Context,
	publicID uuid.UUID,
) (*models.SlotHold, error) {

	var h models.SlotHold
	if err := r.db.WithContext(ctx).
		Preload("Station").
		Where("public_id = ?", publicID).
		First(&h).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HoldGormRepository) UpdateHold(
	ctx context.Context,
	h *models.SlotHold,
) error {
	return r.db.WithContext(ctx).Save(h).Error
}

// --------------------------------------------------
// Contagem de slot
// --------------------------------------------------

func (r *HoldGormRepository) CountAvailableChefs(
	ctx context.Context,
	stationID uint,
	weekday int,
	slotTime string,
) (int, error) {

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ChefAvailability{}).
		Joins("JOIN chefs ON chefs.id = chef_availabilities.chef_id").
		Where(
			"chefs.station_id = ? AND chefs.active = true "+
				"AND chef_availabilities.weekday = ? AND chef_availabilities.active = true "+
				"AND chef_availabilities.start_time <= ? AND chef_availabilities.end_time > ?",
			stationID, weekday, slotTime, slotTime,
		).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *HoldGormRepository) ListActiveHoldsForSlot(
	ctx context.Context,
	stationID uint,
	eventDate time.Time,
	slotTime string,
) ([]models.SlotHold, error) {

	var holds []models.SlotHold
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"station_id = ? AND event_date = ? AND slot_time = ? AND status = ?",
			stationID, eventDate.Format("2006-01-02"), slotTime, "pending",
		).
		Find(&holds).Error; err != nil {
		return nil, err
	}
	return holds, nil
}

func (r *HoldGormRepository) ListActiveBookingsForSlot(
	ctx context.Context,
	stationID uint,
	eventDate time.Time,
	slotTime string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"station_id = ? AND event_date = ? AND slot_time = ? AND status IN ?",
			stationID, eventDate.Format("2006-01-02"), slotTime,
			bookingOccupyingStatuses(),
		).
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// --------------------------------------------------
// Conversão
// --------------------------------------------------

func (r *HoldGormRepository) CreateAgreement(
	ctx context.Context,
	a *models.SignedAgreement,
) error {
	// só Create: assinaturas são write-once (guard também no model)
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *HoldGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// --------------------------------------------------
// Sweeps
// --------------------------------------------------

func (r *HoldGormRepository) ListSigningWarningCandidates(
	ctx context.Context,
	now time.Time,
	lead time.Duration,
) ([]models.SlotHold, error) {

	var holds []models.SlotHold
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND agreement_signed_at IS NULL AND signing_warning_sent_at IS NULL "+
				"AND signing_deadline > ? AND signing_deadline <= ?",
			"pending", now, now.Add(lead),
		).
		Find(&holds).Error; err != nil {
		return nil, err
	}
	return holds, nil
}

func (r *HoldGormRepository) ListPaymentWarningCandidates(
	ctx context.Context,
	now time.Time,
	lead time.Duration,
) ([]models.SlotHold, error) {

	var holds []models.SlotHold
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND agreement_signed_at IS NOT NULL AND deposit_paid_at IS NULL "+
				"AND payment_warning_sent_at IS NULL "+
				"AND payment_deadline > ? AND payment_deadline <= ?",
			"pending", now, now.Add(lead),
		).
		Find(&holds).Error; err != nil {
		return nil, err
	}
	return holds, nil
}

func (r *HoldGormRepository) MarkSigningWarningSent(
	ctx context.Context,
	holdID uint,
	at time.Time,
) (bool, error) {

	// condicional no IS NULL: sweeps concorrentes nunca marcam duas vezes
	res := r.db.WithContext(ctx).
		Model(&models.SlotHold{}).
		Where("id = ? AND signing_warning_sent_at IS NULL AND status = ?", holdID, "pending").
		Update("signing_warning_sent_at", at)

	return res.RowsAffected > 0, res.Error
}

func (r *HoldGormRepository) MarkPaymentWarningSent(
	ctx context.Context,
	holdID uint,
	at time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.SlotHold{}).
		Where("id = ? AND payment_warning_sent_at IS NULL AND status = ?", holdID, "pending").
		Update("payment_warning_sent_at", at)

	return res.RowsAffected > 0, res.Error
}

func (r *HoldGormRepository) ListExpireCandidates(
	ctx context.Context,
	now time.Time,
) ([]models.SlotHold, error) {

	var holds []models.SlotHold
	if err := r.db.WithContext(ctx).
		Where(
			"status = ? AND ("+
				"(agreement_signed_at IS NULL AND signing_deadline < ?) OR "+
				"(agreement_signed_at IS NOT NULL AND deposit_paid_at IS NULL AND payment_deadline < ?)"+
				")",
			"pending", now, now,
		).
		Find(&holds).Error; err != nil {
		return nil, err
	}
	return holds, nil
}

func (r *HoldGormRepository) ExpireHold(
	ctx context.Context,
	holdID uint,
	reason string,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.SlotHold{}).
		Where("id = ? AND status = ?", holdID, "pending").
		Updates(map[string]any{
			"status":              "expired",
			"cancellation_reason": reason,
		})

	return res.RowsAffected > 0, res.Error
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *HoldGormRepository) InTx(
	ctx context.Context,
	fn func(holdDomain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&HoldGormRepository{db: tx})
	})
}

// Compile-time checks
var _ holdDomain.Repository = (*HoldGormRepository)(nil)
var _ schedDomain.Repository = (*HoldGormRepository)(nil)
