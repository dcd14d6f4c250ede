package booking

import (
	"time"

	"github.com/sportivaid/arena-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(b *models.Booking) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusConfirmed)
	return nil
}

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Complete(b *models.Booking, now time.Time) error {
	if err := CanComplete(Status(b.Status), PaymentStatus(b.PaymentStatus)); err != nil {
		return err
	}

	b.Status = string(StatusCompleted)
	b.CompletedAt = &now
	return nil
}

// MarkPaid is applied by the cashier flow; a paid pending booking is
// promoted to confirmed, completed bookings keep their status.
func MarkPaid(b *models.Booking) {
	b.PaymentStatus = string(PaymentPaid)
	if b.Status == string(StatusPending) {
		b.Status = string(StatusConfirmed)
	}
}
