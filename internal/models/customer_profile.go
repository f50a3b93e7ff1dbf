package models

import "time"

// Perfil leve do cliente, sem login, chaveado por telefone
type CustomerProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Phone string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Name  string `gorm:"size:100" json:"name"`
	Email string `gorm:"size:100" json:"email"`

	NegotiationsTotal    int `json:"negotiations_total"`
	NegotiationsAccepted int `json:"negotiations_accepted"`

	// accepted/total*10: sinal de priorização futura
	FlexibilityScore float64 `json:"flexibility_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
