package models

import (
	"time"

	"gorm.io/datatypes"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FieldID uint  `gorm:"index:idx_bookings_field_date" json:"field_id"`
	Field   Field `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"field"`

	// Denormalized so booking rows stay readable after field edits.
	FieldName string `gorm:"size:100" json:"field_name"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	BookingDate string                      `gorm:"size:10;index:idx_bookings_field_date" json:"booking_date"`
	TimeSlots   datatypes.JSONSlice[string] `json:"time_slots"`
	TotalPrice  float64                     `json:"total_price"`

	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerPhone string `gorm:"size:20;not null" json:"customer_phone"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`

	Status        string `gorm:"size:20;default:'pending'" json:"status"`
	PaymentStatus string `gorm:"size:20;default:'pending'" json:"payment_status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
