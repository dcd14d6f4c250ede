package dto

import (
	"github.com/sportivaid/arena-booking/internal/models"
)

// BookingListItem flattens a booking row for admin lists.
type BookingListItem struct {
	ID            uint     `json:"id"`
	FieldID       uint     `json:"field_id"`
	FieldName     string   `json:"field_name"`
	SportName     string   `json:"sport_name"`
	BookingDate   string   `json:"booking_date"`
	TimeSlots     []string `json:"time_slots"`
	TotalPrice    float64  `json:"total_price"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"payment_status"`
	CreatedAt     string   `json:"created_at"`
}

func NewBookingListItem(b *models.Booking) BookingListItem {
	item := BookingListItem{
		ID:            b.ID,
		FieldID:       b.FieldID,
		FieldName:     b.FieldName,
		BookingDate:   b.BookingDate,
		TimeSlots:     []string(b.TimeSlots),
		TotalPrice:    b.TotalPrice,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if b.Field.Sport.Name != "" {
		item.SportName = b.Field.Sport.Name
	}
	return item
}

func NewBookingList(bookings []models.Booking) []BookingListItem {
	out := make([]BookingListItem, 0, len(bookings))
	for i := range bookings {
		out = append(out, NewBookingListItem(&bookings[i]))
	}
	return out
}
