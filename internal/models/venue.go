package models

import "time"

// Venue is a single settings row. Open/close hours derive the bookable
// slot grid (hourly labels).
type Venue struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	Timezone  string `gorm:"size:50;default:'Asia/Jakarta'" json:"timezone"`
	OpenHour  int    `gorm:"default:7" json:"open_hour"`
	CloseHour int    `gorm:"default:24" json:"close_hour"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
