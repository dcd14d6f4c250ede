package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
)

// --------- fake repository ---------

type fakeRepo struct {
	venue    *models.Venue
	field    *models.Field
	bookings []models.Booking

	created  *models.Booking
	updated  *models.Booking
	conflict bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		venue: &models.Venue{
			Timezone: "Asia/Jakarta", OpenHour: 7, CloseHour: 24,
		},
		field: &models.Field{
			ID: 1, Name: "Court A", PricePerHour: 50000, Available: true,
		},
	}
}

func (r *fakeRepo) GetVenue(ctx context.Context) (*models.Venue, error) {
	return r.venue, nil
}

func (r *fakeRepo) GetField(ctx context.Context, id uint) (*models.Field, error) {
	if r.field == nil || r.field.ID != id {
		return nil, httperr.ErrBusiness("field_not_found")
	}
	return r.field, nil
}

func (r *fakeRepo) GetOrCreateCustomer(ctx context.Context, name, phone, email string) (*models.Customer, error) {
	return &models.Customer{ID: 7, Name: name, Phone: phone, Email: email}, nil
}

func (r *fakeRepo) ListBookingsForFieldDate(ctx context.Context, fieldID uint, date string) ([]models.Booking, error) {
	out := []models.Booking{}
	for _, b := range r.bookings {
		if b.FieldID == fieldID && b.BookingDate == date && b.Status != "cancelled" {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) CreateBookingIfFree(ctx context.Context, b *models.Booking) error {
	if r.conflict {
		return httperr.ErrBusiness("slot_conflict")
	}
	b.ID = uint(len(r.bookings) + 1)
	r.created = b
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *fakeRepo) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			return &r.bookings[i], nil
		}
	}
	return nil, httperr.ErrBusiness("booking_not_found")
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	r.updated = b
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// --------- helpers ---------

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		FieldID:       1,
		BookingDate:   tomorrow(),
		TimeSlots:     []string{"19:00", "18:00"},
		TotalPrice:    100000,
		CustomerName:  "Budi",
		CustomerPhone: "081234567890",
	}
}

// --------- tests ---------

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, uint(1), b.FieldID)
	assert.Equal(t, "Court A", b.FieldName)
	assert.Equal(t, uint(7), b.CustomerID)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "pending", b.PaymentStatus)
	// Slots come back sorted and deduplicated.
	assert.Equal(t, []string{"18:00", "19:00"}, []string(b.TimeSlots))
	assert.Equal(t, 100000.0, b.TotalPrice)
	require.NotNil(t, repo.created)
}

func TestCreateBookingRejectsConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.conflict = true
	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	require.Error(t, err)

	code, ok := httperr.BusinessCode(err)
	require.True(t, ok)
	assert.Equal(t, "slot_conflict", code)
}

func TestCreateBookingRejectsUnknownField(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	in := validInput()
	in.FieldID = 99

	_, err := uc.Execute(context.Background(), in)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "field_not_found", code)
}

func TestCreateBookingRejectsUnavailableField(t *testing.T) {
	repo := newFakeRepo()
	repo.field.Available = false
	uc := NewCreateBooking(repo, nil, nil, nil)

	_, err := uc.Execute(context.Background(), validInput())
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "field_unavailable", code)
}

func TestCreateBookingRejectsPastDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	in := validInput()
	in.BookingDate = "2020-01-01"

	_, err := uc.Execute(context.Background(), in)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "date_in_past", code)
}

func TestCreateBookingRejectsPriceMismatch(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	in := validInput()
	in.TotalPrice = 60000 // two slots at 50000 each

	_, err := uc.Execute(context.Background(), in)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "price_mismatch", code)
}

func TestCreateBookingRejectsBadSlots(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, nil, nil, nil)

	in := validInput()
	in.TimeSlots = []string{"18:30"}

	_, err := uc.Execute(context.Background(), in)
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "invalid_time_slot", code)
}
