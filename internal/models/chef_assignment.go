package models

import "time"

type ChefAssignment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingID uint    `gorm:"uniqueIndex" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	ChefID uint `json:"chef_id"`
	Chef   Chef `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"chef"`

	AssignmentType string `gorm:"size:20;default:'auto'" json:"assignment_type"` // auto | manual | customer_requested

	TravelMinutes int     `json:"travel_minutes"`
	TravelKm      float64 `json:"travel_km"`

	// score normalizado 0-100 para auditoria
	EfficiencyScore float64 `json:"efficiency_score"`

	// booking adjacente do mesmo chef no dia (eficiência de rota)
	ChainBookingID *uint `json:"chain_booking_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
