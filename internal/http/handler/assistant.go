package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/service"
)

// AssistantHandler serves the generative wellness assistant.
type AssistantHandler struct {
	assistant service.AssistantService
}

func NewAssistantHandler(assistant service.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Chat handles POST /ai-chat.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.assistant.Chat(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
		case errors.Is(err, service.ErrModerationBlocked):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "message was rejected by moderation"})
		case errors.Is(err, service.ErrUnconfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "assistant is not available"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reply"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AssistantResponse{Response: reply})
}
