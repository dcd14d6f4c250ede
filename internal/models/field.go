package models

import (
	"time"

	"gorm.io/datatypes"
)

type Field struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SportID uint  `json:"sport_id"`
	Sport   Sport `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"sport"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	PricePerHour float64 `json:"price_per_hour"`
	Available   bool    `gorm:"default:true" json:"available"`

	// Public URLs, at most 3 per field.
	Images datatypes.JSONSlice[string] `json:"images"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
