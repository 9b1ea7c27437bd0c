package dto

import (
	"strconv"
	"time"

	"mindhaven.app/server/internal/model"
)

type SubmitLetterRequest struct {
	Content  string `json:"content" binding:"required"`
	Username string `json:"username" binding:"required"`
}

// ReplyRequest accepts the reply text under either key; older clients send
// "content", newer ones "replyContent".
type ReplyRequest struct {
	ReplyContent string `json:"replyContent"`
	Content      string `json:"content"`
	Username     string `json:"username" binding:"required"`
}

func (r ReplyRequest) Text() string {
	if r.ReplyContent != "" {
		return r.ReplyContent
	}
	return r.Content
}

type DeleteLetterRequest struct {
	Username string `json:"username" binding:"required"`
}

type ReplyResponse struct {
	Content   string    `json:"content"`
	Username  string    `json:"username"`
	Timestamp time.Time `json:"timestamp"`
}

type LetterResponse struct {
	ID        string          `json:"id"`
	Content   string          `json:"content"`
	Username  string          `json:"username"`
	Likes     int             `json:"likes"`
	Replies   []ReplyResponse `json:"replies"`
	Timestamp time.Time       `json:"timestamp"`
}

type LikeResponse struct {
	Message  string `json:"message"`
	NewLikes int    `json:"newLikes"`
}

func ToLetterResponse(l *model.Letter) LetterResponse {
	replies := make([]ReplyResponse, 0, len(l.Replies))
	for _, r := range l.Replies {
		replies = append(replies, ReplyResponse{
			Content:   r.Content,
			Username:  r.Username,
			Timestamp: r.Timestamp,
		})
	}
	return LetterResponse{
		ID:        strconv.FormatInt(l.ID, 10),
		Content:   l.Content,
		Username:  l.Username,
		Likes:     l.Likes,
		Replies:   replies,
		Timestamp: l.Timestamp,
	}
}

func ToLetterResponses(letters []model.Letter) []LetterResponse {
	out := make([]LetterResponse, 0, len(letters))
	for i := range letters {
		out = append(out, ToLetterResponse(&letters[i]))
	}
	return out
}
