package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mindhaven.app/server/internal/emotion"
	"mindhaven.app/server/internal/service"
)

var _ = Describe("ChatService", func() {
	var chat service.ChatService

	BeforeEach(func() {
		chat = service.NewChatService()
	})

	It("rejects an empty message", func() {
		_, _, err := chat.Chat(context.Background(), "   ")
		Expect(err).To(MatchError(service.ErrValidation))
	})

	It("detects the emotion and replies to it", func() {
		reply, label, err := chat.Chat(context.Background(), "I feel so anxious about tomorrow")
		Expect(err).NotTo(HaveOccurred())
		Expect(label).To(Equal(emotion.LabelAnxious))
		Expect(reply).To(Equal(emotion.Respond(emotion.LabelAnxious)))
	})

	It("falls back to a neutral reply", func() {
		reply, label, err := chat.Chat(context.Background(), "just checking in")
		Expect(err).NotTo(HaveOccurred())
		Expect(label).To(Equal(emotion.LabelNeutral))
		Expect(reply).NotTo(BeEmpty())
	})

	It("is deterministic for the same message", func() {
		first, label1, err := chat.Chat(context.Background(), "feeling lonely tonight")
		Expect(err).NotTo(HaveOccurred())
		second, label2, err := chat.Chat(context.Background(), "feeling lonely tonight")
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(Equal(second))
		Expect(label1).To(Equal(label2))
	})
})
