package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`

	StationID uint    `json:"station_id"`
	Station   Station `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"station"`

	HoldID *uint `json:"hold_id"`

	EventDate       time.Time `gorm:"type:date" json:"event_date"`
	SlotTime        string    `gorm:"size:5;not null" json:"slot_time"` // HH:mm
	BookingDatetime time.Time `json:"booking_datetime"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	VenueAddress  string   `gorm:"size:255" json:"venue_address"`
	VenueLat      *float64 `json:"venue_lat"`
	VenueLng      *float64 `json:"venue_lng"`
	GeocodeStatus string   `gorm:"size:20;default:'pending'" json:"geocode_status"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Toddlers int `json:"toddlers"`

	Status string `gorm:"size:30;default:'pending'" json:"status"`

	// workflow de cancelamento em duas etapas
	PreviousStatus          *string    `gorm:"size:30" json:"previous_status"`
	CancellationReason      *string    `gorm:"size:255" json:"cancellation_reason"`
	CancellationRequestedAt *time.Time `json:"cancellation_requested_at"`
	CancellationRequestedBy *string    `gorm:"size:100" json:"cancellation_requested_by"`
	CancellationResolvedAt  *time.Time `json:"cancellation_resolved_at"`
	CancellationResolvedBy  *string    `gorm:"size:100" json:"cancellation_resolved_by"`
	CancellationResolution  *string    `gorm:"size:255" json:"cancellation_resolution"`

	// flags de urgência recalculadas pelo sweep
	IsUrgent       bool   `json:"is_urgent"`
	DaysUntilEvent int    `json:"days_until_event"`
	BookingWindow  string `gorm:"size:20" json:"booking_window"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *Booking) GuestCount() int {
	return b.Adults + b.Children + b.Toddlers
}
