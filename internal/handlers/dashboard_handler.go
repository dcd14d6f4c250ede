package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/dto"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/models"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

// Stats aggregates today's bookings and the revenue ledger for the
// admin landing page.
func (h *DashboardHandler) Stats(c *gin.Context) {
	venue := venueFromDB(h.db)
	now := nowInVenue(venue)
	today := now.Format("2006-01-02")
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	ctx := c.Request.Context()

	var bookingsToday int64
	if err := h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_date = ? AND status <> ?", today, "cancelled").
		Count(&bookingsToday).Error; err != nil {
		httperr.Internal(c, "stats_failed", "Gagal memuat statistik.")
		return
	}

	var pendingPayments int64
	h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("payment_status = ? AND status <> ?", "pending", "cancelled").
		Count(&pendingPayments)

	var revenueToday, revenueMonth float64
	h.db.WithContext(ctx).
		Model(&models.Pemasukan{}).
		Where("created_at >= ?", dayStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueToday)
	h.db.WithContext(ctx).
		Model(&models.Pemasukan{}).
		Where("created_at >= ?", monthStart).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&revenueMonth)

	var customers int64
	h.db.WithContext(ctx).Model(&models.Customer{}).Count(&customers)

	var fields int64
	h.db.WithContext(ctx).
		Model(&models.Field{}).
		Where("available = ?", true).
		Count(&fields)

	type sportCount struct {
		SportName string `json:"sport_name"`
		Count     int64  `json:"count"`
	}
	var perSport []sportCount
	h.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("sports.name AS sport_name, COUNT(*) AS count").
		Joins("JOIN fields ON fields.id = bookings.field_id").
		Joins("JOIN sports ON sports.id = fields.sport_id").
		Where("bookings.status <> ?", "cancelled").
		Group("sports.name").
		Order("count DESC").
		Scan(&perSport)

	// Revenue per day over the last 7 days, oldest first.
	type dayRevenue struct {
		Date    string  `json:"date"`
		Revenue float64 `json:"revenue"`
	}
	revenueWeek := make([]dayRevenue, 0, 7)
	for i := 6; i >= 0; i-- {
		start := dayStart.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)

		var amount float64
		h.db.WithContext(ctx).
			Model(&models.Pemasukan{}).
			Where("created_at >= ? AND created_at < ?", start, end).
			Select("COALESCE(SUM(amount), 0)").
			Scan(&amount)

		revenueWeek = append(revenueWeek, dayRevenue{
			Date:    start.Format("2006-01-02"),
			Revenue: amount,
		})
	}

	var recent []models.Booking
	h.db.WithContext(ctx).
		Preload("Field.Sport").
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	c.JSON(http.StatusOK, gin.H{
		"date":              today,
		"bookings_today":    bookingsToday,
		"pending_payments":  pendingPayments,
		"revenue_today":     revenueToday,
		"revenue_month":     revenueMonth,
		"customers":         customers,
		"active_fields":     fields,
		"bookings_by_sport": perSport,
		"revenue_week":      revenueWeek,
		"recent_bookings":   dto.NewBookingList(recent),
	})
}
