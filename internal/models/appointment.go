package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkshopID uint     `json:"workshop_id"`
	Workshop   Workshop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"workshop"`

	// Optional: standalone calendar appointments carry no work.
	WorkID *uint `json:"work_id"`
	Work   *Work `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"work,omitempty"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// One slot = (workshop_id, appointment_date, appointment_time). A partial
	// unique index over non-cancelled rows backs the slot-exclusivity invariant.
	AppointmentDate time.Time `gorm:"type:date" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5" json:"appointment_time"`

	Status    string `gorm:"size:20;default:'scheduled'" json:"status"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
