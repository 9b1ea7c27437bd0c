package dto

import (
	"strconv"
	"time"

	"mindhaven.app/server/internal/model"
)

type CreateJournalRequest struct {
	Content  string `json:"content" binding:"required"`
	Username string `json:"username" binding:"required"`
	Mood     string `json:"mood"`
}

type DeleteJournalRequest struct {
	Username string `json:"username" binding:"required"`
}

type JournalResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Timestamp time.Time `json:"timestamp"`
}

type JournalStatsResponse struct {
	Moods map[string]int `json:"moods"`
	Total int            `json:"total"`
}

func ToJournalResponse(e *model.JournalEntry) JournalResponse {
	return JournalResponse{
		ID:        strconv.FormatInt(e.ID, 10),
		Username:  e.Username,
		Content:   e.Content,
		Mood:      e.Mood,
		Timestamp: e.Timestamp,
	}
}

func ToJournalResponses(entries []model.JournalEntry) []JournalResponse {
	out := make([]JournalResponse, 0, len(entries))
	for i := range entries {
		out = append(out, ToJournalResponse(&entries[i]))
	}
	return out
}
