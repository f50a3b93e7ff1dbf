package models

import "time"

// Disponibilidade semanal do chef, por weekday (0 = domingo)
type ChefAvailability struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ChefID uint `gorm:"index:idx_chef_weekday" json:"chef_id"`

	Weekday int `gorm:"index:idx_chef_weekday" json:"weekday"`

	StartTime string `json:"start_time"` // HH:mm
	EndTime   string `json:"end_time"`   // HH:mm
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
