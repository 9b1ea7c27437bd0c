package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/service"
)

// ChatHandler serves the rule-based companion chatbot.
type ChatHandler struct {
	chat service.ChatService
}

func NewChatHandler(chat service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// Chat handles POST /chatbot.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, label, err := h.chat.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate reply"})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Reply: reply, Emotion: string(label)})
}
