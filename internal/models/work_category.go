package models

import "time"

type WorkCategory struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	WorkshopID uint `json:"workshop_id"`

	Name           string  `gorm:"size:100;not null" json:"name"`
	Description    string  `gorm:"size:255" json:"description"`
	EstimatedHours float64 `json:"estimated_hours"`
	ToleranceDays  int     `json:"tolerance_days"`

	RequiresAppointment bool `gorm:"default:false" json:"requires_appointment"`
	Active              bool `gorm:"default:true" json:"active"`

	BasePrice float64 `json:"base_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
