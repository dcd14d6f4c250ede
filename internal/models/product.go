package models

import "time"

// Goods sold over the cashier counter (drinks, shuttlecocks, rental gear).
type Product struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string  `gorm:"size:100;not null" json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
