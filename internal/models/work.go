package models

import "time"

type Work struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkshopID uint     `json:"workshop_id"`
	Workshop   Workshop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"workshop"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	CategoryID uint         `json:"category_id"`
	Category   WorkCategory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"category"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Price         float64 `json:"price"`
	DepositAmount float64 `json:"deposit_amount"`
	DepositStatus string  `gorm:"size:20;default:'pending'" json:"deposit_status"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `gorm:"size:50" json:"payment_method"`

	EntryDate             time.Time  `json:"entry_date"`
	TentativeDeliveryDate time.Time  `json:"tentative_delivery_date"`
	ActualDeliveryDate    *time.Time `json:"actual_delivery_date"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
