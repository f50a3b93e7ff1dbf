package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotHold é uma reserva temporária de (station, data, slot) enquanto o
// cliente assina o contrato e paga o depósito
type SlotHold struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`

	StationID uint    `json:"station_id"`
	Station   Station `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"station"`

	EventDate time.Time `gorm:"type:date" json:"event_date"`
	SlotTime  string    `gorm:"size:5;not null" json:"slot_time"` // HH:mm

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	VenueAddress string `gorm:"size:255" json:"venue_address"`

	Adults   int `json:"adults"`
	Children int `json:"children"`
	Toddlers int `json:"toddlers"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	SigningDeadline   time.Time  `json:"signing_deadline"`
	AgreementSignedAt *time.Time `json:"agreement_signed_at"`

	// derivado de agreement_signed_at; só existe depois da assinatura
	PaymentDeadline *time.Time `json:"payment_deadline"`
	DepositPaidAt   *time.Time `json:"deposit_paid_at"`

	SigningWarningSentAt *time.Time `json:"signing_warning_sent_at"`
	PaymentWarningSentAt *time.Time `json:"payment_warning_sent_at"`

	CancellationReason *string `gorm:"size:50" json:"cancellation_reason"`
	BookingID          *uint   `json:"booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *SlotHold) GuestCount() int {
	return h.Adults + h.Children + h.Toddlers
}
