package handler_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mindhaven.app/server/internal/emotion"
	"mindhaven.app/server/internal/http/dto"
	"mindhaven.app/server/internal/http/handler"
	"mindhaven.app/server/internal/service"
)

var _ = Describe("ChatHandler", func() {
	var (
		chat   *mockChat
		router *gin.Engine
	)

	BeforeEach(func() {
		chat = &mockChat{}
		router = gin.New()
		router.POST("/chatbot", handler.NewChatHandler(chat).Chat)
	})

	It("returns the reply and detected emotion", func() {
		chat.chatFn = func(_ context.Context, message string) (string, emotion.Label, error) {
			Expect(message).To(Equal("I feel sad"))
			return "I'm sorry you're feeling low.", emotion.LabelSad, nil
		}

		w := doJSON(router, http.MethodPost, "/chatbot", gin.H{"message": "I feel sad"})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp dto.ChatResponse
		decodeBody(w, &resp)
		Expect(resp.Reply).To(ContainSubstring("sorry"))
		Expect(resp.Emotion).To(Equal("sad"))
	})

	It("returns 400 without a message", func() {
		w := doJSON(router, http.MethodPost, "/chatbot", gin.H{})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 for a blank message", func() {
		chat.chatFn = func(context.Context, string) (string, emotion.Label, error) {
			return "", "", service.ErrValidation
		}
		w := doJSON(router, http.MethodPost, "/chatbot", gin.H{"message": "   "})
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})
})

var _ = Describe("AssistantHandler", func() {
	var (
		assistant *mockAssistant
		router    *gin.Engine
	)

	BeforeEach(func() {
		assistant = &mockAssistant{}
		router = gin.New()
		router.POST("/ai-chat", handler.NewAssistantHandler(assistant).Chat)
	})

	It("returns the assistant reply", func() {
		assistant.chatFn = func(context.Context, string) (string, error) {
			return "take a deep breath", nil
		}
		w := doJSON(router, http.MethodPost, "/ai-chat", gin.H{"message": "long day"})
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp dto.AssistantResponse
		decodeBody(w, &resp)
		Expect(resp.Response).To(Equal("take a deep breath"))
	})

	It("returns 503 when the assistant is unconfigured", func() {
		assistant.chatFn = func(context.Context, string) (string, error) {
			return "", service.ErrUnconfigured
		}
		w := doJSON(router, http.MethodPost, "/ai-chat", gin.H{"message": "hello"})
		Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
	})

	It("returns 422 when moderation blocks the message", func() {
		assistant.chatFn = func(context.Context, string) (string, error) {
			return "", service.ErrModerationBlocked
		}
		w := doJSON(router, http.MethodPost, "/ai-chat", gin.H{"message": "abusive"})
		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("returns 500 on provider failure", func() {
		assistant.chatFn = func(context.Context, string) (string, error) {
			return "", errors.New("upstream 500")
		}
		w := doJSON(router, http.MethodPost, "/ai-chat", gin.H{"message": "hello"})
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
	})
})
