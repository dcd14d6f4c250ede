package payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/sportivaid/arena-booking/internal/audit"
	domain "github.com/sportivaid/arena-booking/internal/domain/payment"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
	"github.com/sportivaid/arena-booking/internal/queue"
)

// ======================================================
// INPUT
// ======================================================

type SaleItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type FinalizeSaleInput struct {
	Amount     float64
	BookingIDs []uint
	Items      []SaleItemInput

	CashierName string
	UserID      *uint
}

// ======================================================
// USE CASE
// ======================================================

type FinalizeSale struct {
	repo   domain.Repository
	audit  *audit.Dispatcher
	events *queue.Publisher
}

func NewFinalizeSale(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	events *queue.Publisher,
) *FinalizeSale {
	return &FinalizeSale{
		repo:   repo,
		audit:  auditDispatcher,
		events: events,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *FinalizeSale) Execute(
	ctx context.Context,
	in FinalizeSaleInput,
) (*models.Pemasukan, error) {

	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}
	if len(in.BookingIDs) == 0 && len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_sale")
	}

	entry := &models.Pemasukan{
		ReceiptToken: uuid.NewString(),
		Amount:       in.Amount,
		UserID:       in.UserID,
		CashierName:  in.CashierName,
	}
	if len(in.BookingIDs) > 0 {
		entry.BookingID = &in.BookingIDs[0]
	}

	items := make([]domain.SaleItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, domain.SaleItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	// Ledger row, booking flips and stock decrements land atomically.
	if err := uc.repo.FinalizeSale(ctx, entry, in.BookingIDs, items); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "payment_finalized",
		Entity:   "pemasukan",
		EntityID: &entry.ID,
		Metadata: map[string]any{
			"invoice_number": entry.InvoiceNumber,
			"booking_ids":    in.BookingIDs,
		},
	})

	for _, id := range in.BookingIDs {
		uc.events.Publish(ctx, queue.QueueBookingPaid, queue.BookingPaidEvent{
			BookingID:     id,
			InvoiceNumber: entry.InvoiceNumber,
			Amount:        entry.Amount,
		})
	}

	return entry, nil
}
