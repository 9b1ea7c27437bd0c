package service_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"mindhaven.app/server/core/config"
	"mindhaven.app/server/internal/service"
	"mindhaven.app/server/internal/store"
)

var _ = Describe("JournalService", func() {
	var (
		journals *memJournalStore
		svc      service.JournalService
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		journals = newMemJournalStore()
		svc = service.NewJournalService(journals, config.BoardConfig{FeedPageSize: 10, MaxPageSize: 50})
	})

	Describe("Create", func() {
		It("keeps a caller-supplied mood", func() {
			entry, err := svc.Create(ctx, "alice", "an uneventful day", "content")
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.Mood).To(Equal("content"))
		})

		It("classifies the mood from the text when left blank", func() {
			entry, err := svc.Create(ctx, "alice", "I was so worried all day", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.Mood).To(Equal("anxious"))
		})

		It("rejects blank content", func() {
			_, err := svc.Create(ctx, "alice", "  ", "")
			Expect(err).To(MatchError(service.ErrValidation))
		})
	})

	Describe("Stats", func() {
		It("counts entries per mood for one account", func() {
			for _, mood := range []string{"sad", "sad", "happy"} {
				_, err := svc.Create(ctx, "alice", "entry text", mood)
				Expect(err).NotTo(HaveOccurred())
			}
			_, err := svc.Create(ctx, "bob", "entry text", "sad")
			Expect(err).NotTo(HaveOccurred())

			counts, err := svc.Stats(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(map[string]int{"sad": 2, "happy": 1}))
		})
	})

	Describe("Delete", func() {
		It("lets the author delete their entry", func() {
			entry, err := svc.Create(ctx, "alice", "entry text", "sad")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Delete(ctx, entry.ID, "alice")).To(Succeed())
			_, err = journals.Get(ctx, entry.ID)
			Expect(err).To(MatchError(store.ErrNotFound))
		})

		It("refuses deletion by anyone else", func() {
			entry, err := svc.Create(ctx, "alice", "entry text", "sad")
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Delete(ctx, entry.ID, "bob")).To(MatchError(service.ErrForbidden))
		})

		It("returns not found for a missing entry", func() {
			Expect(svc.Delete(ctx, 999, "alice")).To(MatchError(store.ErrNotFound))
		})
	})
})
