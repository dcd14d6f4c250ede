package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/dto"
	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/httpresp"
	"github.com/sportivaid/arena-booking/internal/middleware"
	"github.com/sportivaid/arena-booking/internal/models"
	bookingUC "github.com/sportivaid/arena-booking/internal/usecase/booking"
)

type BookingHandler struct {
	db           *gorm.DB
	availability *bookingUC.GetAvailability
	create       *bookingUC.CreateBooking
	confirm      *bookingUC.ConfirmBooking
	cancel       *bookingUC.CancelBooking
	complete     *bookingUC.CompleteBooking
}

func NewBookingHandler(
	db *gorm.DB,
	availability *bookingUC.GetAvailability,
	create *bookingUC.CreateBooking,
	confirm *bookingUC.ConfirmBooking,
	cancel *bookingUC.CancelBooking,
	complete *bookingUC.CompleteBooking,
) *BookingHandler {
	return &BookingHandler{
		db:           db,
		availability: availability,
		create:       create,
		confirm:      confirm,
		cancel:       cancel,
		complete:     complete,
	}
}

// --------- Requests ---------

type CreateBookingRequest struct {
	FieldID       uint     `json:"field_id" binding:"required"`
	BookingDate   string   `json:"booking_date" binding:"required"`
	TimeSlots     []string `json:"time_slots" binding:"required"`
	TotalPrice    float64  `json:"total_price"`
	CustomerName  string   `json:"customer_name" binding:"required"`
	CustomerPhone string   `json:"customer_phone" binding:"required"`
	CustomerEmail string   `json:"customer_email"`
}

// --------- Public ---------

// CheckAvailability answers GET /booking/check-availability?fieldId=&date=
// with the union of taken slots. Frontends subtract it from the grid.
func (h *BookingHandler) CheckAvailability(c *gin.Context) {
	fieldID, err := strconv.ParseUint(c.Query("fieldId"), 10, 32)
	if err != nil || fieldID == 0 {
		httperr.BadRequest(c, "invalid_field_id", "Parameter fieldId tidak valid.")
		return
	}

	date := c.Query("date")
	venue := venueFromDB(h.db)
	if _, err := parseDateInVenue(venue, date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Parameter date harus berformat YYYY-MM-DD.")
		return
	}

	booked, err := h.availability.BookedSlots(c.Request.Context(), uint(fieldID), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Gagal memuat ketersediaan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fieldId":     uint(fieldID),
		"date":        date,
		"bookedSlots": booked,
	})
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	b, err := h.create.Execute(c.Request.Context(), bookingUC.CreateBookingInput{
		FieldID:       req.FieldID,
		BookingDate:   req.BookingDate,
		TimeSlots:     req.TimeSlots,
		TotalPrice:    req.TotalPrice,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": b})
}

// --------- Admin ---------

func (h *BookingHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	venue := venueFromDB(h.db)
	if date == "" {
		date = nowInVenue(venue).Format("2006-01-02")
	} else if _, err := parseDateInVenue(venue, date); err != nil {
		httperr.BadRequest(c, "invalid_date", "Parameter date harus berformat YYYY-MM-DD.")
		return
	}

	var bookings []models.Booking
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Field.Sport").
		Where("booking_date = ?", date).
		Order("id ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat daftar booking.")
		return
	}

	httpresp.List(c, dto.NewBookingList(bookings))
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	month := c.Query("month") // YYYY-MM
	venue := venueFromDB(h.db)
	if month == "" {
		month = nowInVenue(venue).Format("2006-01")
	}
	if len(month) != 7 {
		httperr.BadRequest(c, "invalid_month", "Parameter month harus berformat YYYY-MM.")
		return
	}

	var bookings []models.Booking
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Field.Sport").
		Where("booking_date LIKE ?", month+"%").
		Order("booking_date ASC, id ASC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat daftar booking.")
		return
	}

	httpresp.List(c, dto.NewBookingList(bookings))
}

func (h *BookingHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID booking tidak valid.")
		return
	}

	var b models.Booking
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Field.Sport").
		Preload("Customer").
		First(&b, uint(id)).Error; err != nil {
		httperr.NotFound(c, "booking_not_found", "Booking tidak ditemukan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": b})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	h.transition(c, func(userID, bookingID uint) (*models.Booking, error) {
		return h.confirm.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, func(userID, bookingID uint) (*models.Booking, error) {
		return h.cancel.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, func(userID, bookingID uint) (*models.Booking, error) {
		return h.complete.Execute(c.Request.Context(), userID, bookingID)
	})
}

func (h *BookingHandler) transition(
	c *gin.Context,
	exec func(userID, bookingID uint) (*models.Booking, error),
) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID booking tidak valid.")
		return
	}

	userID, _ := c.Get(middleware.ContextUserID)
	uid, _ := userID.(uint)

	b, err := exec(uid, uint(id))
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": b})
}
