package models

import "time"

// Usuário administrativo (ops). Clientes não têm login.
type User struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	StationID *uint    `json:"station_id"`
	Station   *Station `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"station,omitempty"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         string `gorm:"size:20;default:'admin'" json:"role"` // admin | super_admin

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsSuperAdmin() bool {
	return u.Role == "super_admin"
}
