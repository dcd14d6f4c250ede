package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/sportivaid/arena-booking/internal/domain/booking"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

type VenueHandler struct {
	db *gorm.DB
}

func NewVenueHandler(db *gorm.DB) *VenueHandler {
	return &VenueHandler{db: db}
}

type VenueRequest struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Timezone  string `json:"timezone"`
	OpenHour  *int   `json:"open_hour"`
	CloseHour *int   `json:"close_hour"`
}

func (h *VenueHandler) Get(c *gin.Context) {
	venue := venueFromDB(h.db)
	c.JSON(http.StatusOK, gin.H{
		"venue": venue,
		"slots": domain.DayGrid(venue.OpenHour, venue.CloseHour),
	})
}

func (h *VenueHandler) Update(c *gin.Context) {
	var req VenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	venue := venueFromDB(h.db)
	venue.Name = req.Name
	venue.Address = req.Address
	venue.Phone = req.Phone

	if req.Timezone != "" {
		if !timezone.IsValid(req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Zona waktu tidak dikenal.")
			return
		}
		venue.Timezone = req.Timezone
	}

	open, close := venue.OpenHour, venue.CloseHour
	if req.OpenHour != nil {
		open = *req.OpenHour
	}
	if req.CloseHour != nil {
		close = *req.CloseHour
	}
	if open < 0 || close > 24 || open >= close {
		httperr.BadRequest(c, "invalid_hours", "Jam buka harus sebelum jam tutup (0-24).")
		return
	}
	venue.OpenHour = open
	venue.CloseHour = close

	if err := h.db.WithContext(c.Request.Context()).Save(venue).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal memperbarui pengaturan venue.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"venue": venue})
}
