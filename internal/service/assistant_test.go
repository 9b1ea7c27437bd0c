package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mindhaven.app/server/common/llm"
	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/service"
)

var _ = Describe("AssistantService", func() {
	llmCfg := config.LLMConfig{Timeout: time.Second, MaxTokens: 256}
	allowAll := service.NewModerationService(fixedLLM("OK"), config.LLMConfig{Timeout: time.Second})
	blockAll := service.NewModerationService(fixedLLM("FLAGGED"), config.LLMConfig{Timeout: time.Second})

	It("rejects an empty message", func() {
		svc := service.NewAssistantService(fixedLLM("hi"), allowAll, llmCfg)
		_, err := svc.Chat(context.Background(), "  ")
		Expect(err).To(MatchError(service.ErrValidation))
	})

	It("reports unconfigured when no client is set", func() {
		svc := service.NewAssistantService(nil, allowAll, llmCfg)
		_, err := svc.Chat(context.Background(), "hello")
		Expect(err).To(MatchError(service.ErrUnconfigured))
	})

	It("blocks a flagged message before calling the model", func() {
		called := false
		client := &mockLLM{completeFn: func(context.Context, llm.Request) (string, error) {
			called = true
			return "should not happen", nil
		}}
		svc := service.NewAssistantService(client, blockAll, llmCfg)
		_, err := svc.Chat(context.Background(), "abusive text")
		Expect(err).To(MatchError(service.ErrModerationBlocked))
		Expect(called).To(BeFalse())
	})

	It("returns the model reply", func() {
		svc := service.NewAssistantService(fixedLLM("take a deep breath"), allowAll, llmCfg)
		reply, err := svc.Chat(context.Background(), "I had a stressful day")
		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(Equal("take a deep breath"))
	})

	It("wraps provider failures", func() {
		client := &mockLLM{completeFn: func(context.Context, llm.Request) (string, error) {
			return "", errors.New("upstream 500")
		}}
		svc := service.NewAssistantService(client, allowAll, llmCfg)
		_, err := svc.Chat(context.Background(), "hello")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("upstream 500"))
	})
})
