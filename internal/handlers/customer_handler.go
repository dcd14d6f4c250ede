package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sportivaid/arena-booking/internal/httperr"
	"github.com/sportivaid/arena-booking/internal/httpresp"
	"github.com/sportivaid/arena-booking/internal/models"
)

type CustomerHandler struct {
	db *gorm.DB
}

func NewCustomerHandler(db *gorm.DB) *CustomerHandler {
	return &CustomerHandler{db: db}
}

func (h *CustomerHandler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Order("id DESC")

	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var customers []models.Customer
	if err := query.Limit(200).Find(&customers).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat daftar pelanggan.")
		return
	}
	httpresp.List(c, customers)
}
