package payment

import (
	"context"

	"github.com/sportivaid/arena-booking/internal/models"
)

type SaleItem struct {
	ProductID uint
	Quantity  int
}

// Repository finalizes a cashier sale as one unit of work: invoice
// numbering, ledger + item rows, booking payment flips and stock
// decrements either all land or none do.
type Repository interface {
	FinalizeSale(
		ctx context.Context,
		entry *models.Pemasukan,
		bookingIDs []uint,
		items []SaleItem,
	) error

	ListEntries(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Pemasukan, error)
}
