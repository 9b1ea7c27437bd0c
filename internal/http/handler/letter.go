package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/service"
	"mindhaven.app/server/internal/store"
)

// LetterHandler serves the anonymous letters board.
type LetterHandler struct {
	board service.BoardService
}

func NewLetterHandler(board service.BoardService) *LetterHandler {
	return &LetterHandler{board: board}
}

// Submit handles POST /letters.
func (h *LetterHandler) Submit(c *gin.Context) {
	var req dto.SubmitLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content and username are required"})
		return
	}

	letter, err := h.board.Submit(c.Request.Context(), req.Content, req.Username)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "letter content must not be empty"})
		case errors.Is(err, service.ErrModerationBlocked):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "letter was rejected by moderation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit letter"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "letter submitted",
		"letter":  dto.ToLetterResponse(letter),
	})
}

// Fetch handles GET /letters.
func (h *LetterHandler) Fetch(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	sort := c.DefaultQuery("sort", "latest")

	letters, err := h.board.List(c.Request.Context(), sort, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch letters"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLetterResponses(letters))
}

// Recent handles GET /letters/recent, the home-page widget feed.
func (h *LetterHandler) Recent(c *gin.Context) {
	letters, err := h.board.Recent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch letters"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLetterResponses(letters))
}

// Like handles POST /letters/:id/like.
func (h *LetterHandler) Like(c *gin.Context) {
	letterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid letter id"})
		return
	}

	likes, err := h.board.Like(c.Request.Context(), letterID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to like letter"})
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{Message: "letter liked", NewLikes: likes})
}

// Reply handles POST /letters/:id/reply.
func (h *LetterHandler) Reply(c *gin.Context) {
	letterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid letter id"})
		return
	}

	var req dto.ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	if err := h.board.Reply(c.Request.Context(), letterID, req.Text(), req.Username); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "reply content must not be empty"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add reply"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "reply added"})
}

// Delete handles DELETE /letters/:id.
func (h *LetterHandler) Delete(c *gin.Context) {
	letterID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid letter id"})
		return
	}

	var req dto.DeleteLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	if err := h.board.Delete(c.Request.Context(), letterID, req.Username); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete a letter"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "letter not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete letter"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "letter deleted"})
}
