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

// JournalHandler serves mood journaling.
type JournalHandler struct {
	journal service.JournalService
}

func NewJournalHandler(journal service.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// Create handles POST /journal.
func (h *JournalHandler) Create(c *gin.Context) {
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content and username are required"})
		return
	}

	entry, err := h.journal.Create(c.Request.Context(), req.Username, req.Content, req.Mood)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "journal content must not be empty"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create journal entry"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}

// List handles GET /journal/:username.
func (h *JournalHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	entries, err := h.journal.List(c.Request.Context(), c.Param("username"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch journal entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponses(entries))
}

// Stats handles GET /journal/:username/stats.
func (h *JournalHandler) Stats(c *gin.Context) {
	moods, err := h.journal.Stats(c.Request.Context(), c.Param("username"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute journal stats"})
		return
	}

	total := 0
	for _, n := range moods {
		total += n
	}
	c.JSON(http.StatusOK, dto.JournalStatsResponse{Moods: moods, Total: total})
}

// Delete handles DELETE /journal/:id.
func (h *JournalHandler) Delete(c *gin.Context) {
	entryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal entry id"})
		return
	}

	var req dto.DeleteJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	if err := h.journal.Delete(c.Request.Context(), entryID, req.Username); err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "only the author can delete an entry"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "journal entry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete journal entry"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "journal entry deleted"})
}
