package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Venue / Field
// --------------------------------------------------

func (r *BookingGormRepository) GetVenue(ctx context.Context) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).Order("id ASC").First(&venue).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *BookingGormRepository) GetField(
	ctx context.Context,
	id uint,
) (*models.Field, error) {

	var field models.Field
	if err := r.db.WithContext(ctx).
		Preload("Sport").
		First(&field, id).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// --------------------------------------------------
// Customer
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateCustomer(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Customer, error) {

	var customer models.Customer
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&customer).Error

	if err == nil {
		return &customer, nil
	}

	customer = models.Customer{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return nil, err
	}

	return &customer, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForFieldDate(
	ctx context.Context,
	fieldID uint,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where(
			"field_id = ? AND booking_date = ? AND status <> ?",
			fieldID, date, string(domain.StatusCancelled),
		).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Create (conflict-checked)
// --------------------------------------------------

// CreateBookingIfFree runs the overlap scan and the insert inside one
// transaction, serialized per field via a row lock, so two concurrent
// submissions for the same field/date cannot both pass the check.
func (r *BookingGormRepository) CreateBookingIfFree(
	ctx context.Context,
	b *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var field models.Field
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&field, b.FieldID).Error; err != nil {
			return httperr.ErrBusiness("field_not_found")
		}

		var existing []models.Booking
		if err := tx.
			Where(
				"field_id = ? AND booking_date = ? AND status <> ?",
				b.FieldID, b.BookingDate, string(domain.StatusCancelled),
			).
			Find(&existing).Error; err != nil {
			return err
		}

		requested := []string(b.TimeSlots)
		for _, other := range existing {
			if domain.HasOverlap([]string(other.TimeSlots), requested) {
				return httperr.ErrBusiness("slot_conflict")
			}
		}

		return tx.Create(b).Error
	})
}

// --------------------------------------------------
// State changes
// --------------------------------------------------

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
