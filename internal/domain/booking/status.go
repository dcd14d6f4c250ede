package booking

import "github.com/sportivaid/arena-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// ===============================
// Transitions
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// Pending and confirmed bookings may still be cancelled; cancellation is
// always a status flip, rows are never deleted.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status, payment PaymentStatus) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	if payment != PaymentPaid {
		return httperr.ErrBusiness("not_paid")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
