package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/httpresp"
	"github.com/sportivaid/arena-booking/internal/middleware"
	"github.com/sportivaid/arena-booking/internal/models"
	paymentUC "github.com/sportivaid/arena-booking/internal/usecase/payment"
)

type PemasukanHandler struct {
	db       *gorm.DB
	finalize *paymentUC.FinalizeSale
}

func NewPemasukanHandler(db *gorm.DB, finalize *paymentUC.FinalizeSale) *PemasukanHandler {
	return &PemasukanHandler{db: db, finalize: finalize}
}

type CreatePemasukanRequest struct {
	Amount     float64                   `json:"amount" binding:"required"`
	BookingIDs []uint                    `json:"booking_ids"`
	Items      []paymentUC.SaleItemInput `json:"items"`
	UserName   string                    `json:"user_name"`
}

// Create finalizes a cashier transaction: ledger row, booking payment
// flips and stock decrements land in one go.
func (h *PemasukanHandler) Create(c *gin.Context) {
	var req CreatePemasukanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var userID *uint
	if v, ok := c.Get(middleware.ContextUserID); ok {
		if id, ok := v.(uint); ok {
			userID = &id
		}
	}

	entry, err := h.finalize.Execute(c.Request.Context(), paymentUC.FinalizeSaleInput{
		Amount:      req.Amount,
		BookingIDs:  req.BookingIDs,
		Items:       req.Items,
		CashierName: req.UserName,
		UserID:      userID,
	})
	if err != nil {
		mapSaleErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"pemasukan": entry})
}

func (h *PemasukanHandler) List(c *gin.Context) {
	venue := venueFromDB(h.db)

	from := c.Query("from")
	to := c.Query("to")

	query := h.db.WithContext(c.Request.Context()).
		Preload("Items").
		Order("created_at DESC")

	if from != "" {
		start, err := parseDateInVenue(venue, from)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Parameter from harus berformat YYYY-MM-DD.")
			return
		}
		query = query.Where("created_at >= ?", start)
	}
	if to != "" {
		end, err := parseDateInVenue(venue, to)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Parameter to harus berformat YYYY-MM-DD.")
			return
		}
		query = query.Where("created_at < ?", end.AddDate(0, 0, 1))
	}

	var entries []models.Pemasukan
	if err := query.Find(&entries).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat pemasukan.")
		return
	}

	httpresp.List(c, entries)
}
