package booking

import (
	"context"
	"math"
	"time"

	"gorm.io/datatypes"

	"github.com/sportivaid/arena-booking/internal/audit"
	"github.com/sportivaid/arena-booking/internal/cache"
	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
	"github.com/sportivaid/arena-booking/internal/queue"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	FieldID uint

	BookingDate string // YYYY-MM-DD
	TimeSlots   []string
	TotalPrice  float64

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *queue.Publisher
	cache  *cache.SlotCache
}

func NewCreateBooking(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	events *queue.Publisher,
	slotCache *cache.SlotCache,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		audit:  auditDispatcher,
		events: events,
		cache:  slotCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	field, err := uc.repo.GetField(ctx, in.FieldID)
	if err != nil {
		return nil, httperr.ErrBusiness("field_not_found")
	}
	if !field.Available {
		return nil, httperr.ErrBusiness("field_unavailable")
	}

	slots, err := domain.NormalizeSlots(in.TimeSlots)
	if err != nil {
		return nil, err
	}

	venue, err := uc.repo.GetVenue(ctx)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.BookingDate,
		timezone.Location(venue.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	now := timezone.NowIn(venue.Timezone)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	// Price is recomputed server side; the submitted figure must agree.
	price := field.PricePerHour * float64(len(slots))
	if math.Abs(price-in.TotalPrice) > 0.01 {
		return nil, httperr.ErrBusiness("price_mismatch")
	}

	customer, err := uc.repo.GetOrCreateCustomer(
		ctx,
		in.CustomerName,
		in.CustomerPhone,
		in.CustomerEmail,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		FieldID:       field.ID,
		FieldName:     field.Name,
		CustomerID:    customer.ID,
		BookingDate:   date.Format("2006-01-02"),
		TimeSlots:     datatypes.JSONSlice[string](slots),
		TotalPrice:    price,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.PaymentPending),
	}

	// Conflict scan + insert run atomically inside the repository.
	if err := uc.repo.CreateBookingIfFree(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, b.FieldID, b.BookingDate)

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	uc.events.Publish(ctx, queue.QueueBookingCreated, queue.BookingCreatedEvent{
		BookingID:     b.ID,
		FieldID:       b.FieldID,
		FieldName:     b.FieldName,
		BookingDate:   b.BookingDate,
		TimeSlots:     slots,
		TotalPrice:    b.TotalPrice,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
	})

	return b, nil
}
