package models

import (
	"time"

	"github.com/google/uuid"
)

// Proposta de deslocar um booking existente para liberar o slot,
// em troca de um incentivo de comida
type BookingNegotiation struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"public_id"`

	BookingID uint    `json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	OriginalSlotTime string `gorm:"size:5;not null" json:"original_slot_time"`
	ProposedSlotTime string `gorm:"size:5;not null" json:"proposed_slot_time"`

	// magnitude 30 ou 60; direção earlier | later
	ShiftMinutes   int    `json:"shift_minutes"`
	ShiftDirection string `gorm:"size:10" json:"shift_direction"`

	// free_noodles | free_appetizer, derivado do tier da magnitude
	Incentive string `gorm:"size:30;not null" json:"incentive"`

	Status  string `gorm:"size:20;default:'pending'" json:"status"`
	Channel string `gorm:"size:20" json:"channel"` // sms | email

	SentAt      *time.Time `json:"sent_at"`
	RespondedAt *time.Time `json:"responded_at"`
	ExpiresAt   time.Time  `json:"expires_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
