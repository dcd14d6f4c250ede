package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/httpresp"
	"github.com/sportivaid/arena-booking/internal/models"
)

type SportHandler struct {
	db *gorm.DB
}

func NewSportHandler(db *gorm.DB) *SportHandler {
	return &SportHandler{db: db}
}

type SportRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (h *SportHandler) List(c *gin.Context) {
	var sports []models.Sport
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&sports).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat daftar olahraga.")
		return
	}
	httpresp.List(c, sports)
}

func (h *SportHandler) Create(c *gin.Context) {
	var req SportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	sport := models.Sport{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&sport).Error; err != nil {
		httperr.BadRequest(c, "sport_exists", "Olahraga dengan nama ini sudah ada.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sport": sport})
}

func (h *SportHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID olahraga tidak valid.")
		return
	}

	var sport models.Sport
	if err := h.db.WithContext(c.Request.Context()).First(&sport, uint(id)).Error; err != nil {
		httperr.NotFound(c, "sport_not_found", "Olahraga tidak ditemukan.")
		return
	}

	var req SportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	sport.Name = req.Name
	sport.Description = req.Description
	sport.Icon = req.Icon

	if err := h.db.WithContext(c.Request.Context()).Save(&sport).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal memperbarui olahraga.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"sport": sport})
}

// Delete refuses while fields still reference the sport.
func (h *SportHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID olahraga tidak valid.")
		return
	}

	var fieldCount int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.Field{}).
		Where("sport_id = ?", uint(id)).
		Count(&fieldCount)
	if fieldCount > 0 {
		httperr.BadRequest(c, "sport_in_use", "Olahraga masih dipakai oleh lapangan.")
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&models.Sport{}, uint(id))
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Gagal menghapus olahraga.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "sport_not_found", "Olahraga tidak ditemukan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
