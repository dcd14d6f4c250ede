package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/sportivaid/arena-booking/internal/domain/payment"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
)

type fakeSaleRepo struct {
	entry      *models.Pemasukan
	bookingIDs []uint
	items      []domain.SaleItem

	failWith string
}

func (r *fakeSaleRepo) FinalizeSale(
	ctx context.Context,
	entry *models.Pemasukan,
	bookingIDs []uint,
	items []domain.SaleItem,
) error {
	if r.failWith != "" {
		return httperr.ErrBusiness(r.failWith)
	}

	entry.ID = 1
	entry.InvoiceNumber = "INV-20250611-0001"
	r.entry = entry
	r.bookingIDs = bookingIDs
	r.items = items
	return nil
}

func (r *fakeSaleRepo) ListEntries(ctx context.Context, from, to string) ([]models.Pemasukan, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeSaleRepo)(nil)

func TestFinalizeSale(t *testing.T) {
	repo := &fakeSaleRepo{}
	uc := NewFinalizeSale(repo, nil, nil)

	userID := uint(3)
	entry, err := uc.Execute(context.Background(), FinalizeSaleInput{
		Amount:      175000,
		BookingIDs:  []uint{42},
		Items:       []SaleItemInput{{ProductID: 5, Quantity: 2}},
		CashierName: "Sari",
		UserID:      &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-20250611-0001", entry.InvoiceNumber)
	assert.NotEmpty(t, entry.ReceiptToken)
	assert.Equal(t, 175000.0, entry.Amount)
	require.NotNil(t, entry.BookingID)
	assert.Equal(t, uint(42), *entry.BookingID)

	assert.Equal(t, []uint{42}, repo.bookingIDs)
	require.Len(t, repo.items, 1)
	assert.Equal(t, uint(5), repo.items[0].ProductID)
	assert.Equal(t, 2, repo.items[0].Quantity)
}

func TestFinalizeSaleItemsOnly(t *testing.T) {
	repo := &fakeSaleRepo{}
	uc := NewFinalizeSale(repo, nil, nil)

	entry, err := uc.Execute(context.Background(), FinalizeSaleInput{
		Amount: 15000,
		Items:  []SaleItemInput{{ProductID: 1, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Nil(t, entry.BookingID)
}

func TestFinalizeSaleRejectsBadAmount(t *testing.T) {
	uc := NewFinalizeSale(&fakeSaleRepo{}, nil, nil)

	for _, amount := range []float64{0, -100} {
		_, err := uc.Execute(context.Background(), FinalizeSaleInput{
			Amount:     amount,
			BookingIDs: []uint{1},
		})
		code, _ := httperr.BusinessCode(err)
		assert.Equal(t, "invalid_amount", code)
	}
}

func TestFinalizeSaleRejectsEmptySale(t *testing.T) {
	uc := NewFinalizeSale(&fakeSaleRepo{}, nil, nil)

	_, err := uc.Execute(context.Background(), FinalizeSaleInput{Amount: 10000})
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "empty_sale", code)
}

func TestFinalizeSalePropagatesRepoErrors(t *testing.T) {
	repo := &fakeSaleRepo{failWith: "insufficient_stock"}
	uc := NewFinalizeSale(repo, nil, nil)

	_, err := uc.Execute(context.Background(), FinalizeSaleInput{
		Amount: 10000,
		Items:  []SaleItemInput{{ProductID: 1, Quantity: 3}},
	})
	code, _ := httperr.BusinessCode(err)
	assert.Equal(t, "insufficient_stock", code)
}
