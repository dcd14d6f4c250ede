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

type SystemPromptHandler struct {
	db *gorm.DB
}

func NewSystemPromptHandler(db *gorm.DB) *SystemPromptHandler {
	return &SystemPromptHandler{db: db}
}

type SystemPromptRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" binding:"required"`
}

func (h *SystemPromptHandler) List(c *gin.Context) {
	var prompts []models.SystemPrompt
	if err := h.db.WithContext(c.Request.Context()).
		Order("updated_at DESC").
		Find(&prompts).Error; err != nil {
		httperr.Internal(c, "list_failed", "Gagal memuat system prompt.")
		return
	}
	httpresp.List(c, prompts)
}

func (h *SystemPromptHandler) Create(c *gin.Context) {
	var req SystemPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	prompt := models.SystemPrompt{
		Title:   req.Title,
		Content: req.Content,
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&prompt).Error; err != nil {
		httperr.Internal(c, "create_failed", "Gagal membuat system prompt.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"prompt": prompt})
}

func (h *SystemPromptHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID prompt tidak valid.")
		return
	}

	var prompt models.SystemPrompt
	if err := h.db.WithContext(c.Request.Context()).First(&prompt, uint(id)).Error; err != nil {
		httperr.NotFound(c, "prompt_not_found", "System prompt tidak ditemukan.")
		return
	}

	var req SystemPromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	prompt.Title = req.Title
	prompt.Content = req.Content

	if err := h.db.WithContext(c.Request.Context()).Save(&prompt).Error; err != nil {
		httperr.Internal(c, "update_failed", "Gagal memperbarui system prompt.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

// Activate flips the chosen prompt on and every other prompt off in one
// transaction, keeping the single-active invariant.
func (h *SystemPromptHandler) Activate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID prompt tidak valid.")
		return
	}

	var prompt models.SystemPrompt
	txErr := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&prompt, uint(id)).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.SystemPrompt{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&prompt).Update("is_active", true).Error
	})
	if txErr != nil {
		if txErr == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "prompt_not_found", "System prompt tidak ditemukan.")
			return
		}
		httperr.Internal(c, "activate_failed", "Gagal mengaktifkan system prompt.")
		return
	}

	prompt.IsActive = true
	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

func (h *SystemPromptHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID prompt tidak valid.")
		return
	}

	var prompt models.SystemPrompt
	if err := h.db.WithContext(c.Request.Context()).First(&prompt, uint(id)).Error; err != nil {
		httperr.NotFound(c, "prompt_not_found", "System prompt tidak ditemukan.")
		return
	}
	if prompt.IsActive {
		httperr.BadRequest(c, "prompt_active", "Nonaktifkan prompt sebelum menghapus.")
		return
	}

	if err := h.db.WithContext(c.Request.Context()).Delete(&prompt).Error; err != nil {
		httperr.Internal(c, "delete_failed", "Gagal menghapus system prompt.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
