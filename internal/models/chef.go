package models

import "time"

type Chef struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	StationID uint    `json:"station_id"`
	Station   Station `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"station"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`

	HomeLat float64 `json:"home_lat"`
	HomeLng float64 `json:"home_lng"`

	// raio próprio do chef; 0 = usa o raio da station
	ServiceRadiusKm float64 `json:"service_radius_km"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
