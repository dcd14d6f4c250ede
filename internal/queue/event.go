package queue

const (
	QueueBookingCreated = "booking.created"
	QueueBookingPaid    = "booking.paid"
)

type BookingCreatedEvent struct {
	BookingID     uint     `json:"booking_id"`
	FieldID       uint     `json:"field_id"`
	FieldName     string   `json:"field_name"`
	BookingDate   string   `json:"booking_date"`
	TimeSlots     []string `json:"time_slots"`
	TotalPrice    float64  `json:"total_price"`
	CustomerName  string   `json:"customer_name"`
	CustomerPhone string   `json:"customer_phone"`
}

type BookingPaidEvent struct {
	BookingID     uint    `json:"booking_id"`
	InvoiceNumber string  `json:"invoice_number"`
	Amount        float64 `json:"amount"`
}
