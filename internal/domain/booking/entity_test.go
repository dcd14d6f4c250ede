package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportivaid/arena-booking/internal/models"
)

func TestConfirmFromPending(t *testing.T) {
	b := &models.Booking{Status: string(StatusPending)}
	require.NoError(t, Confirm(b))
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestConfirmRejectsNonPending(t *testing.T) {
	for _, s := range []Status{StatusConfirmed, StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(s)}
		assert.Error(t, Confirm(b), string(s))
	}
}

func TestCancelKeepsRow(t *testing.T) {
	now := time.Now()

	b := &models.Booking{Status: string(StatusConfirmed)}
	require.NoError(t, Cancel(b, now))
	assert.Equal(t, string(StatusCancelled), b.Status)
	require.NotNil(t, b.CancelledAt)
	assert.Equal(t, now, *b.CancelledAt)
}

func TestCancelRejectsFinishedBookings(t *testing.T) {
	for _, s := range []Status{StatusCancelled, StatusCompleted} {
		b := &models.Booking{Status: string(s)}
		assert.Error(t, Cancel(b, time.Now()), string(s))
	}
}

func TestCompleteRequiresPaidConfirmed(t *testing.T) {
	b := &models.Booking{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentPaid),
	}
	require.NoError(t, Complete(b, time.Now()))
	assert.Equal(t, string(StatusCompleted), b.Status)
	assert.NotNil(t, b.CompletedAt)

	unpaid := &models.Booking{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentPending),
	}
	assert.Error(t, Complete(unpaid, time.Now()))

	pending := &models.Booking{
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentPaid),
	}
	assert.Error(t, Complete(pending, time.Now()))
}

func TestMarkPaidPromotesPending(t *testing.T) {
	b := &models.Booking{
		Status:        string(StatusPending),
		PaymentStatus: string(PaymentPending),
	}
	MarkPaid(b)
	assert.Equal(t, string(PaymentPaid), b.PaymentStatus)
	assert.Equal(t, string(StatusConfirmed), b.Status)
}

func TestMarkPaidLeavesConfirmedAlone(t *testing.T) {
	b := &models.Booking{
		Status:        string(StatusConfirmed),
		PaymentStatus: string(PaymentPending),
	}
	MarkPaid(b)
	assert.Equal(t, string(StatusConfirmed), b.Status)
	assert.Equal(t, string(PaymentPaid), b.PaymentStatus)
}
