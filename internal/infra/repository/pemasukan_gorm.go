package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookingDomain "github.com/sportivaid/arena-booking/internal/domain/booking"
	domain "github.com/sportivaid/arena-booking/internal/domain/payment"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

type PemasukanGormRepository struct {
	db *gorm.DB
}

func NewPemasukanGormRepository(db *gorm.DB) *PemasukanGormRepository {
	return &PemasukanGormRepository{db: db}
}

// FinalizeSale writes the ledger row, its item lines, flips every
// booking to paid and decrements product stock in one transaction.
// Any failure rolls the whole sale back.
func (r *PemasukanGormRepository) FinalizeSale(
	ctx context.Context,
	entry *models.Pemasukan,
	bookingIDs []uint,
	items []domain.SaleItem,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		entry.InvoiceNumber = nextInvoiceNumber(tx)

		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		for _, id := range bookingIDs {
			var b models.Booking
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&b, id).Error; err != nil {
				return httperr.ErrBusiness("booking_not_found")
			}

			if b.Status == string(bookingDomain.StatusCancelled) {
				return httperr.ErrBusiness("booking_cancelled")
			}
			if b.PaymentStatus == string(bookingDomain.PaymentPaid) {
				return httperr.ErrBusiness("already_paid")
			}

			bookingDomain.MarkPaid(&b)
			if err := tx.Save(&b).Error; err != nil {
				return err
			}
		}

		for _, item := range items {
			if item.Quantity <= 0 {
				return httperr.ErrBusiness("invalid_quantity")
			}

			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, item.ProductID).Error; err != nil {
				return httperr.ErrBusiness("product_not_found")
			}

			if product.Stock < item.Quantity {
				return httperr.ErrBusiness("insufficient_stock")
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			line := models.PemasukanItem{
				PemasukanID: entry.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    item.Quantity,
				UnitPrice:   product.Price,
			}
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *PemasukanGormRepository) ListEntries(
	ctx context.Context,
	from string,
	to string,
) ([]models.Pemasukan, error) {

	q := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Booking")

	if from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("created_at < ?", t.Add(24*time.Hour))
		}
	}

	var entries []models.Pemasukan
	if err := q.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// nextInvoiceNumber yields INV-YYYYMMDD-NNNN, sequenced per day. Runs
// inside the sale transaction so the count is stable.
func nextInvoiceNumber(tx *gorm.DB) string {
	now := timezone.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var count int64
	tx.Model(&models.Pemasukan{}).
		Where("created_at >= ?", dayStart).
		Count(&count)

	return FormatInvoiceNumber(now, count+1)
}

func FormatInvoiceNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("INV-%s-%04d", day.Format("20060102"), seq)
}

// Compile-time check
var _ domain.Repository = (*PemasukanGormRepository)(nil)
