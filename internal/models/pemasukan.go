package models

import "time"

// Pemasukan is one ledger row per finalized cashier transaction.
type Pemasukan struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvoiceNumber string `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`
	ReceiptToken  string `gorm:"size:36" json:"receipt_token"`

	Amount float64 `json:"amount"`

	BookingID *uint    `json:"booking_id"`
	Booking   *Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"booking,omitempty"`

	UserID      *uint  `json:"user_id"`
	CashierName string `gorm:"size:100" json:"cashier_name"`

	Items []PemasukanItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
}

type PemasukanItem struct {
	ID          uint `gorm:"primaryKey" json:"id"`
	PemasukanID uint `json:"pemasukan_id"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	ProductName string  `gorm:"size:100" json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
}
