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

type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type ProductRequest struct {
	Name   string  `json:"name" binding:"required"`
	Price  float64 `json:"price" binding:"required"`
	Stock  int     `json:"stock"`
	Active *bool   `json:"active"`
}

func (h *ProductHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Order("id ASC")
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat daftar barang.")
		return
	}
	httpresp.List(c, products)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	product := models.Product{
		Name:   req.Name,
		Price:  req.Price,
		Stock:  req.Stock,
		Active: active,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&product).Error; err != nil {
		httperr.Internal(c, "create_failed", "Gagal membuat barang.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID barang tidak valid.")
		return
	}

	var product models.Product
	if err := h.db.WithContext(c.Request.Context()).First(&product, uint(id)).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Barang tidak ditemukan.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Stock = req.Stock
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.WithContext(c.Request.Context()).Save(&product).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal memperbarui barang.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID barang tidak valid.")
		return
	}

	var soldCount int64
	h.db.WithContext(c.Request.Context()).
		Model(&models.PemasukanItem{}).
		Where("product_id = ?", uint(id)).
		Count(&soldCount)
	if soldCount > 0 {
		// Keep the ledger resolvable; hide the product instead.
		if err := h.db.WithContext(c.Request.Context()).
			Model(&models.Product{}).
			Where("id = ?", uint(id)).
			Update("active", false).Error; err != nil {
			httperr.Internal(c, "delete_failed", "Gagal menonaktifkan barang.")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
		return
	}

	result := h.db.WithContext(c.Request.Context()).Delete(&models.Product{}, uint(id))
	if result.Error != nil {
		httperr.Internal(c, "delete_failed", "Gagal menghapus barang.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "product_not_found", "Barang tidak ditemukan.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
