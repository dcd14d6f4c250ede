package booking

import (
	"context"

	"github.com/sportivaid/arena-booking/internal/models"
)

type AvailabilityInput struct {
	FieldID uint
	Date    string // YYYY-MM-DD
}

type Repository interface {
	// -------- Venue / Field --------
	GetVenue(ctx context.Context) (*models.Venue, error)

	GetField(
		ctx context.Context,
		id uint,
	) (*models.Field, error)

	// -------- Customer --------
	GetOrCreateCustomer(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Customer, error)

	// -------- Booking (availability) --------
	ListBookingsForFieldDate(
		ctx context.Context,
		fieldID uint,
		date string,
	) ([]models.Booking, error)

	// -------- Booking (create / conflict) --------
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
