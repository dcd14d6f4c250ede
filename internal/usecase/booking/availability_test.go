package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/datatypes"

	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/models"
)

func TestBookedSlotsUnionsAcrossBookings(t *testing.T) {
	date := tomorrow()

	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 1, FieldID: 1, BookingDate: date, Status: "confirmed",
			TimeSlots: datatypes.JSONSlice[string]{"19:00", "18:00"}},
		{ID: 2, FieldID: 1, BookingDate: date, Status: "pending",
			TimeSlots: datatypes.JSONSlice[string]{"19:00", "21:00"}},
		{ID: 3, FieldID: 1, BookingDate: date, Status: "cancelled",
			TimeSlots: datatypes.JSONSlice[string]{"07:00"}},
		{ID: 4, FieldID: 2, BookingDate: date, Status: "confirmed",
			TimeSlots: datatypes.JSONSlice[string]{"09:00"}},
	}

	uc := NewGetAvailability(repo, nil)

	booked, err := uc.BookedSlots(context.Background(), 1, date)
	require.NoError(t, err)

	// Cancelled rows and other fields stay out of the union.
	assert.Equal(t, []string{"18:00", "19:00", "21:00"}, booked)
}

func TestBookedSlotsEmptyDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)

	booked, err := uc.BookedSlots(context.Background(), 1, tomorrow())
	require.NoError(t, err)
	assert.Empty(t, booked)
}

func TestFreeSlotsSubtractsBooked(t *testing.T) {
	date := tomorrow()

	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 1, FieldID: 1, BookingDate: date, Status: "confirmed",
			TimeSlots: datatypes.JSONSlice[string]{"18:00", "19:00"}},
	}

	uc := NewGetAvailability(repo, nil)

	free, err := uc.FreeSlots(context.Background(), 1, date, "")
	require.NoError(t, err)

	assert.NotContains(t, free, "18:00")
	assert.NotContains(t, free, "19:00")
	assert.Contains(t, free, "07:00")
	assert.Contains(t, free, "20:00")
	assert.Len(t, free, 15)
}

func TestFreeSlotsDayPartFilter(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, nil)

	free, err := uc.FreeSlots(context.Background(), 1, tomorrow(), domain.Afternoon)
	require.NoError(t, err)
	assert.Equal(t, []string{"15:00", "16:00", "17:00"}, free)
}
