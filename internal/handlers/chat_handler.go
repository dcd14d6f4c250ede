package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportivaid/arena-booking/internal/chat"
	"github.com/sportivaid/arena-booking/internal/timezone"
)

type ChatHandler struct {
	engine *chat.Engine
}

func NewChatHandler(engine *chat.Engine) *ChatHandler {
	return &ChatHandler{engine: engine}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message             string         `json:"message" binding:"required"`
	ConversationHistory []ChatMessage  `json:"conversationHistory"`
	UserRole            string         `json:"userRole"`
	UserID              string         `json:"userId"`
	ContextData         map[string]any `json:"contextData"`
}

// Chat runs the rule engine over the message and returns a reply with
// optional follow-up actions for the widget to render.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "invalid_request",
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "empty_message",
		})
		return
	}

	reply := h.engine.Respond(c.Request.Context(), chat.Input{
		Message:  message,
		UserRole: req.UserRole,
		Now:      timezone.Now(),
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"response": gin.H{
			"message": reply.Message,
			"actions": reply.Actions,
			"intent":  reply.Intent,
		},
	})
}
