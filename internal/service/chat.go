package service

import (
	"context"
	"strings"

	"mindhaven.app/server/internal/emotion"
)

// ChatService is the rule-based chatbot: keyword emotion detection plus a
// canned supportive reply. No external calls, no state.
type ChatService interface {
	Chat(ctx context.Context, message string) (reply string, label emotion.Label, err error)
}

type chatService struct{}

func NewChatService() ChatService {
	return &chatService{}
}

func (s *chatService) Chat(_ context.Context, message string) (string, emotion.Label, error) {
	if strings.TrimSpace(message) == "" {
		return "", "", ErrValidation
	}

	label := emotion.Classify(message)
	return emotion.Respond(label), label, nil
}
