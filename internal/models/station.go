package models

import "time"

// Station é um hub geográfico com seu próprio pool de chefs e raio de atendimento
type Station struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`

	Address  string  `gorm:"size:255" json:"address"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Timezone string  `gorm:"size:50" json:"timezone"`

	ServiceRadiusKm float64 `gorm:"default:80" json:"service_radius_km"`
	Active          bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
