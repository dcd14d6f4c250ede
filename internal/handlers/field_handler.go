package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/httpresp"
	"github.com/sportivaid/arena-booking/internal/media"
	"github.com/sportivaid/arena-booking/internal/models"
)

const maxFieldImages = 3

type FieldHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewFieldHandler(db *gorm.DB, uploader *media.Uploader) *FieldHandler {
	return &FieldHandler{db: db, uploader: uploader}
}

type FieldRequest struct {
	SportID      uint    `json:"sport_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	PricePerHour float64 `json:"price_per_hour" binding:"required"`
	Available    *bool   `json:"available"`
}

func (h *FieldHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).
		Preload("Sport").
		Order("id ASC")

	if sportID := c.Query("sportId"); sportID != "" {
		id, err := strconv.ParseUint(sportID, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_sport_id", "Parameter sportId tidak valid.")
			return
		}
		query = query.Where("sport_id = ?", uint(id))
	}

	var fields []models.Field
	if err := query.Find(&fields).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat daftar lapangan.")
		return
	}
	httpresp.List(c, fields)
}

func (h *FieldHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID lapangan tidak valid.")
		return
	}

	var field models.Field
	if err := h.db.WithContext(c.Request.Context()).
		Preload("Sport").
		First(&field, uint(id)).Error; err != nil {
		httperr.NotFound(c, "field_not_found", "Lapangan tidak ditemukan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"field": field})
}

func (h *FieldHandler) Create(c *gin.Context) {
	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var sport models.Sport
	if err := h.db.WithContext(c.Request.Context()).First(&sport, req.SportID).Error; err != nil {
		httperr.BadRequest(c, "sport_not_found", "Olahraga tidak ditemukan.")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	field := models.Field{
		SportID:      req.SportID,
		Name:         req.Name,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
		Available:    available,
		Images:       datatypes.JSONSlice[string]{},
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&field).Error; err != nil {
		httperr.Internal(c, "create_failed", "Gagal membuat lapangan.")
		return
	}

	field.Sport = sport
	c.JSON(http.StatusCreated, gin.H{"field": field})
}

func (h *FieldHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID lapangan tidak valid.")
		return
	}

	var field models.Field
	if err := h.db.WithContext(c.Request.Context()).First(&field, uint(id)).Error; err != nil {
		httperr.NotFound(c, "field_not_found", "Lapangan tidak ditemukan.")
		return
	}

	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	field.SportID = req.SportID
	field.Name = req.Name
	field.Description = req.Description
	field.PricePerHour = req.PricePerHour
	if req.Available != nil {
		field.Available = *req.Available
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&field).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal memperbarui lapangan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"field": field})
}

// Delete refuses while bookings still reference the field; history
// stays intact.
func (h *FieldHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID lapangan tidak valid.")
		return
	}

	var bookingCount int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.Booking{}).
		Where("field_id = ?", uint(id)).
		Count(&bookingCount)
	if bookingCount > 0 {
		httperr.BadRequest(c, "field_in_use", "Lapangan masih memiliki riwayat booking.")
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&models.Field{}, uint(id))
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Gagal menghapus lapangan.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "field_not_found", "Lapangan tidak ditemukan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// --------- Images ---------

func (h *FieldHandler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_unavailable", "Penyimpanan gambar tidak dikonfigurasi.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID lapangan tidak valid.")
		return
	}

	var field models.Field
	if err := h.db.WithContext(c.Request.Context()).First(&field, uint(id)).Error; err != nil {
		httperr.NotFound(c, "field_not_found", "Lapangan tidak ditemukan.")
		return
	}

	if len(field.Images) >= maxFieldImages {
		httperr.BadRequest(c, "too_many_images", "Maksimal 3 gambar per lapangan.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "File gambar wajib diunggah.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Gagal membaca file gambar.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadFieldImage(c.Request.Context(), field.ID, file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Gagal mengunggah gambar.")
		return
	}

	field.Images = append(field.Images, url)
	if err := h.db.WithContext(c.Request.Context()).Save(&field).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal menyimpan gambar.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url, "images": field.Images})
}

func (h *FieldHandler) DeleteImage(c *gin.Context) {
	if h.uploader == nil {
		httperr.Internal(c, "storage_unavailable", "Penyimpanan gambar tidak dikonfigurasi.")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID lapangan tidak valid.")
		return
	}

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	var field models.Field
	if err := h.db.WithContext(c.Request.Context()).First(&field, uint(id)).Error; err != nil {
		httperr.NotFound(c, "field_not_found", "Lapangan tidak ditemukan.")
		return
	}

	kept := make(datatypes.JSONSlice[string], 0, len(field.Images))
	found := false
	for _, img := range field.Images {
		if img == req.URL {
			found = true
			continue
		}
		kept = append(kept, img)
	}
	if !found {
		httperr.NotFound(c, "image_not_found", "Gambar tidak ditemukan pada lapangan ini.")
		return
	}

	if err := h.uploader.DeleteFieldImage(c.Request.Context(), req.URL); err != nil {
		httperr.Internal(c, "delete_failed", "Gagal menghapus gambar dari penyimpanan.")
		return
	}

	field.Images = kept
	if err := h.db.WithContext(c.Request.Context()).Save(&field).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal menyimpan perubahan gambar.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"images": field.Images})
}
