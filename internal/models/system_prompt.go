package models

import "time"

// SystemPrompt is a versioned text blob steering the chat assistant tone.
// At most one row is active at a time.
type SystemPrompt struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title    string `gorm:"size:100" json:"title"`
	Content  string `gorm:"type:text;not null" json:"content"`
	IsActive bool   `gorm:"default:false" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
